// Package empty provides constructors for fresh, non-nil empty containers.
//
// Every call returns a new, independent instance, which is what the
// null-avoidance helpers rely on when they substitute a default for nil.
//
// Example usage:
//
//	names := empty.Slice[string]()       // []string{}, not nil
//	scores := empty.Map[string, int]()   // map[string]int{}, ready for writes
//	seen := empty.Set[string]()          // map[string]empty.T{}
//	for range empty.Seq[int]() {}        // never iterates
package empty

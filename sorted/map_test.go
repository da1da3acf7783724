package sorted

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()

		var m Map[string, int]

		assert.True(t, m.IsEmpty())
		m.Add("a", 1)
		assert.Equal(t, 1, m.Size())
	})

	t.Run("iterates in key order", func(t *testing.T) {
		t.Parallel()

		m := NewMap[string, int]()
		m.Add("k3", 3)
		m.Add("k1", 1)
		m.Add("k2", 2)

		var keys []string

		var values []int

		for k, v := range m.Seq() {
			keys = append(keys, k)
			values = append(values, v)
		}

		assert.Equal(t, []string{"k1", "k2", "k3"}, keys)
		assert.Equal(t, []int{1, 2, 3}, values)
		assert.Equal(t, keys, slices.Collect(m.Keys()))
	})

	t.Run("add replaces existing value", func(t *testing.T) {
		t.Parallel()

		m := FromMap(map[int]string{2: "b", 1: "a"})
		m.Add(2, "B")

		v, ok := m.Get(2)
		assert.True(t, ok)
		assert.Equal(t, "B", v)
		assert.Equal(t, 2, m.Size())
		assert.Equal(t, "map[1:a 2:B]", m.String())
	})

	t.Run("remove and contains", func(t *testing.T) {
		t.Parallel()

		m := FromMap(map[string]int{"a": 1, "b": 2})

		assert.True(t, m.Contains("a"))
		assert.True(t, m.Remove("a"))
		assert.False(t, m.Remove("a"))
		assert.False(t, m.Contains("a"))

		_, ok := m.Get("a")
		assert.False(t, ok)
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		t.Parallel()

		m := FromMap(map[int]int{1: 1, 2: 2, 3: 3})
		count := 0

		for range m.Seq() {
			count++

			break
		}

		assert.Equal(t, 1, count)
	})
}

package sorted

import (
	"cmp"
	"fmt"
)

// tree is a red-black tree keyed by an ordered type. It keeps the usual
// invariants:
//  1. Every node is either red or black
//  2. The root is black
//  3. All leaves (nil nodes) are considered black
//  4. Red nodes cannot have red children
//  5. Every path from a node to its leaves contains the same number of black nodes
//
// so lookups, inserts and removals are O(log n). The zero value is an empty tree.
type tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// color is the color of a tree node. Black is true so that the color of a
// freshly allocated node is red.
type color bool

const black, red color = true, false

type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	color  color
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

func (n *node[K, V]) String() string {
	c := "red"
	if n.color == black {
		c = "black"
	}

	return fmt.Sprintf("(%#v : %s)", n.key, c)
}

func isRed[K cmp.Ordered, V any](n *node[K, V]) bool {
	return n != nil && n.color == red
}

func (t *tree[K, V]) getNode(key K) *node[K, V] {
	n := t.root

	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}

	return nil
}

func (t *tree[K, V]) get(key K) (V, bool) {
	if n := t.getNode(key); n != nil {
		return n.value, true
	}

	var zero V

	return zero, false
}

// put inserts or replaces the value under key. It returns true if the key
// was not present before.
func (t *tree[K, V]) put(key K, value V) bool {
	var parent *node[K, V]

	n := t.root
	c := 0

	for n != nil {
		parent = n

		c = cmp.Compare(key, n.key)

		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			n.value = value

			return false
		}
	}

	z := &node[K, V]{key: key, value: value, color: red, parent: parent}

	switch {
	case parent == nil:
		t.root = z
	case c < 0:
		parent.left = z
	default:
		parent.right = z
	}

	t.size++
	t.fixupPut(z)

	return true
}

// remove deletes key. It returns false if the key was absent.
//
//nolint:varnamelen
func (t *tree[K, V]) remove(key K) bool {
	z := t.getNode(key)
	if z == nil {
		return false
	}

	y := z
	yOriginalColor := y.color

	// x takes y's place; xParent is tracked separately because x may be nil.
	var x, xParent *node[K, V]

	switch {
	case z.left == nil:
		x, xParent = z.right, z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x, xParent = z.left, z.parent
		t.transplant(z, z.left)
	default:
		y = minimum(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		t.transplant(z, y)

		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	t.size--

	if yOriginalColor == black {
		t.fixupDelete(x, xParent)
	}

	return true
}

// rotateLeft performs a left rotation around node x:
//
//	  x                y
//	 / \              / \
//	A   y      =>    x   C
//	   / \          / \
//	  B   C        A   B
//
//nolint:dupword,varnamelen
func (t *tree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent

	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	y.left = x
	x.parent = y
}

// rotateRight is the mirror image of rotateLeft.
//
//nolint:varnamelen
func (t *tree[K, V]) rotateRight(y *node[K, V]) {
	x := y.left
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	x.parent = y.parent

	switch {
	case y.parent == nil:
		t.root = x
	case y == y.parent.left:
		y.parent.left = x
	default:
		y.parent.right = x
	}

	x.right = y
	y.parent = x
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
func (t *tree[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// fixupPut restores the invariants after z was inserted red:
//  1. parent is black: nothing to do
//  2. parent and uncle are red: recolor and continue from the grandparent
//  3. parent is red, uncle is black: rotate and recolor
//
//nolint:varnamelen
func (t *tree[K, V]) fixupPut(z *node[K, V]) {
	for isRed(z.parent) {
		grandparent := z.parent.parent

		if z.parent == grandparent.left {
			y := grandparent.right
			if isRed(y) {
				z.parent.color = black
				y.color = black
				grandparent.color = red
				z = grandparent

				continue
			}

			if z == z.parent.right {
				z = z.parent
				t.rotateLeft(z)
			}

			z.parent.color = black
			grandparent.color = red
			t.rotateRight(grandparent)
		} else {
			y := grandparent.left
			if isRed(y) {
				z.parent.color = black
				y.color = black
				grandparent.color = red
				z = grandparent

				continue
			}

			if z == z.parent.left {
				z = z.parent
				t.rotateRight(z)
			}

			z.parent.color = black
			grandparent.color = red
			t.rotateLeft(grandparent)
		}
	}

	t.root.color = black
}

// fixupDelete restores the black height after a black node was removed.
// x carries the extra black and may be nil, so its parent is passed in.
//
//nolint:varnamelen,dupl,cyclop
func (t *tree[K, V]) fixupDelete(x, parent *node[K, V]) {
	for x != t.root && !isRed(x) {
		if x == parent.left {
			w := parent.right
			if isRed(w) {
				w.color = black
				parent.color = red
				t.rotateLeft(parent)
				w = parent.right
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = parent
				parent = x.parent

				continue
			}

			if !isRed(w.right) {
				w.left.color = black
				w.color = red
				t.rotateRight(w)
				w = parent.right
			}

			w.color = parent.color
			parent.color = black
			w.right.color = black
			t.rotateLeft(parent)
			x = t.root
		} else {
			w := parent.left
			if isRed(w) {
				w.color = black
				parent.color = red
				t.rotateRight(parent)
				w = parent.left
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = parent
				parent = x.parent

				continue
			}

			if !isRed(w.left) {
				w.right.color = black
				w.color = red
				t.rotateLeft(w)
				w = parent.left
			}

			w.color = parent.color
			parent.color = black
			w.left.color = black
			t.rotateRight(parent)
			x = t.root
		}
	}

	if x != nil {
		x.color = black
	}
}

func minimum[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func maximum[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}

	return n
}

// walk visits the nodes in ascending key order until visit returns false.
func (t *tree[K, V]) walk(visit func(*node[K, V]) bool) {
	walkNode(t.root, visit)
}

func walkNode[K cmp.Ordered, V any](n *node[K, V], visit func(*node[K, V]) bool) bool {
	if n == nil {
		return true
	}

	return walkNode(n.left, visit) && visit(n) && walkNode(n.right, visit)
}

package avl

import (
	"cmp"
	"iter"
)

// node is one tree entry plus its cached subtree height.
type node[K cmp.Ordered, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	height      int
}

// Tree is an AVL tree mapping keys of type K to values of type V.
// The zero value is an empty tree ready to use.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of entries.
func (t *Tree[K, V]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool { return t.root == nil }

// Height returns the height of the tree; 0 when empty.
func (t *Tree[K, V]) Height() int { return height(t.root) }

// Insert stores value under key. If key is already present its value is
// replaced in place, the shape of the tree is left untouched and replaced
// is true.
func (t *Tree[K, V]) Insert(key K, value V) (replaced bool) {
	t.root, replaced = insert(t.root, key, value)
	if !replaced {
		t.size++
	}

	return replaced
}

// Get returns the value stored under key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	n := t.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V

	return zero, false
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Delete removes key and reports whether it was present. All other
// entries are preserved.
func (t *Tree[K, V]) Delete(key K) bool {
	var removed bool
	t.root, removed = remove(t.root, key)
	if removed {
		t.size--
	}

	return removed
}

// All returns an in-order iterator over the entries, ascending by key.
// The sequence is lazy and may be ranged over again; it reflects the tree
// at the time each range starts. Mutating the tree during a range is not
// supported.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(t.root, yield)
	}
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	out := make([]K, 0, t.size)
	for k := range t.All() {
		out = append(out, k)
	}

	return out
}

// Values returns all values ordered by key.
func (t *Tree[K, V]) Values() []V {
	out := make([]V, 0, t.size)
	for _, v := range t.All() {
		out = append(out, v)
	}

	return out
}

// walk yields n's subtree in order; false means the consumer stopped.
func walk[K cmp.Ordered, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return walk(n.left, yield) && yield(n.key, n.value) && walk(n.right, yield)
}

// SPDX-License-Identifier: MIT
//
// File: balance.go
// Role: height bookkeeping and the four rotation cases. Every rotation
// returns the new subtree root; callers re-link it into the parent.

package avl

import "cmp"

func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return n.height
}

func (n *node[K, V]) update() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func (n *node[K, V]) balance() int {
	return height(n.left) - height(n.right)
}

// rotateRight lifts n.left into n's place and returns it.
func rotateRight[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	n.update()
	l.update()

	return l
}

// rotateLeft lifts n.right into n's place and returns it.
func rotateLeft[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	n.update()
	r.update()

	return r
}

// rebalance refreshes n's height and applies at most one single or double
// rotation. Returns the new subtree root.
func rebalance[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	n.update()
	switch b := n.balance(); {
	case b > 1:
		if n.left.balance() < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case b < -1:
		if n.right.balance() > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}

	return n
}

// insert adds or replaces key below n and returns the new subtree root.
func insert[K cmp.Ordered, V any](n *node[K, V], key K, value V) (*node[K, V], bool) {
	if n == nil {
		return &node[K, V]{key: key, value: value, height: 1}, false
	}

	var replaced bool
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, replaced = insert(n.left, key, value)
	case c > 0:
		n.right, replaced = insert(n.right, key, value)
	default:
		n.value = value
		return n, true
	}
	if replaced {
		return n, true
	}

	return rebalance(n), false
}

// remove deletes key below n and returns the new subtree root.
func remove[K cmp.Ordered, V any](n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, removed = remove(n.left, key)
	case c > 0:
		n.right, removed = remove(n.right, key)
	default:
		removed = true
		switch {
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		}
		// Two children: copy the in-order successor up, then delete it
		// from the right subtree.
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.key, n.value = succ.key, succ.value
		n.right, _ = remove(n.right, succ.key)
	}
	if !removed {
		return n, false
	}

	return rebalance(n), true
}

// Package avl provides a height-balanced binary search tree (AVL tree)
// keyed by any ordered type. Flights use it to index reservations by code.
//
// Every node caches the height of its subtree. After each structural change
// heights are recomputed bottom-up along the surgery path, and a node whose
// balance factor (left height − right height) leaves [-1, 1] is repaired by
// one of the four canonical rotations:
//
//	balance > 1,  left child balance ≥ 0   → single right rotation
//	balance > 1,  left child balance < 0   → left-right rotation
//	balance < -1, right child balance ≤ 0  → single left rotation
//	balance < -1, right child balance > 0  → right-left rotation
//
// Subtrees are owned by their parent. Insert, delete and every rotation
// take a subtree and return its (possibly new) root, which the caller
// stores back into the parent link; no node carries a parent pointer.
//
// Delete removes exactly the matching node. A node with two children is
// replaced by its in-order successor (leftmost node of the right subtree)
// and the successor's original position is then deleted recursively.
//
// Complexity:
//
//   - Insert, Get, Delete: O(log n)
//   - All (full iteration): O(n), O(log n) extra stack.
//
// Concurrency: a Tree is not safe for concurrent use; callers serialize
// access (flight.Flight does so under its owner's lock).
package avl

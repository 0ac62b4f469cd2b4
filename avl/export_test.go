package avl

import "cmp"

// CheckInvariants verifies ordering, cached heights and balance factors of
// every node and returns the first violation found.
func CheckInvariants[K cmp.Ordered, V any](t *Tree[K, V]) string {
	count := 0
	var check func(n *node[K, V], lo, hi *K) (int, string)
	check = func(n *node[K, V], lo, hi *K) (int, string) {
		if n == nil {
			return 0, ""
		}
		count++
		if lo != nil && cmp.Compare(n.key, *lo) <= 0 {
			return 0, "key order violated on the left bound"
		}
		if hi != nil && cmp.Compare(n.key, *hi) >= 0 {
			return 0, "key order violated on the right bound"
		}
		lh, msg := check(n.left, lo, &n.key)
		if msg != "" {
			return 0, msg
		}
		rh, msg := check(n.right, &n.key, hi)
		if msg != "" {
			return 0, msg
		}
		if n.height != 1+max(lh, rh) {
			return 0, "stale cached height"
		}
		if d := lh - rh; d < -1 || d > 1 {
			return 0, "balance factor out of range"
		}

		return n.height, ""
	}
	if _, msg := check(t.root, nil, nil); msg != "" {
		return msg
	}
	if count != t.size {
		return "size mismatch"
	}

	return ""
}

package series

// node is one AVL tree node. height is the height of the subtree rooted
// here (a leaf has height 1).
type node struct {
	key, val    float64
	left, right *node
	height      int
}

// heightOf returns the height of n, treating nil as 0.
func heightOf(n *node) int {
	if n == nil {
		return 0
	}

	return n.height
}

// balanceOf returns the balance factor of n: height(left) − height(right).
func balanceOf(n *node) int {
	if n == nil {
		return 0
	}

	return heightOf(n.left) - heightOf(n.right)
}

// refresh recomputes n.height from its children.
func (n *node) refresh() {
	hl, hr := heightOf(n.left), heightOf(n.right)
	if hl > hr {
		n.height = hl + 1
	} else {
		n.height = hr + 1
	}
}

// rotateRight performs a single right rotation around n and returns the new
// subtree root.
func rotateRight(n *node) *node {
	l := n.left
	n.left = l.right
	l.right = n
	n.refresh()
	l.refresh()

	return l
}

// rotateLeft performs a single left rotation around n and returns the new
// subtree root.
func rotateLeft(n *node) *node {
	r := n.right
	n.right = r.left
	r.left = n
	n.refresh()
	r.refresh()

	return r
}

// rebalance restores the AVL invariant (|balance| ≤ 1) at n after an insert
// somewhere below it, and returns the (possibly new) subtree root.
func rebalance(n *node) *node {
	n.refresh()

	switch b := balanceOf(n); {
	case b > 1: // left-heavy
		if balanceOf(n.left) < 0 {
			n.left = rotateLeft(n.left) // left-right case
		}

		return rotateRight(n)
	case b < -1: // right-heavy
		if balanceOf(n.right) > 0 {
			n.right = rotateRight(n.right) // right-left case
		}

		return rotateLeft(n)
	default:
		return n
	}
}

// insert adds (key, val) to the subtree rooted at n, overwriting the value
// when key already exists. Returns the new subtree root and whether a node
// was added (false on overwrite).
//
// Complexity: O(log n).
func insert(n *node, key, val float64) (*node, bool) {
	if n == nil {
		return &node{key: key, val: val, height: 1}, true
	}

	var added bool
	switch {
	case key < n.key:
		n.left, added = insert(n.left, key, val)
	case key > n.key:
		n.right, added = insert(n.right, key, val)
	default:
		n.val = val // existing key: overwrite, shape unchanged

		return n, false
	}

	return rebalance(n), added
}

// floor returns the node with the largest key ≤ key in the subtree rooted
// at n, or nil if no such node exists.
//
// Complexity: O(log n).
func floor(n *node, key float64) *node {
	var best *node
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			best = n // candidate; a closer one may sit in the right subtree
			n = n.right
		default:
			return n // exact hit
		}
	}

	return best
}

// ceiling returns the node with the smallest key ≥ key in the subtree rooted
// at n, or nil if no such node exists.
//
// Complexity: O(log n).
func ceiling(n *node, key float64) *node {
	var best *node
	for n != nil {
		switch {
		case key > n.key:
			n = n.right
		case key < n.key:
			best = n // candidate; a closer one may sit in the left subtree
			n = n.left
		default:
			return n // exact hit
		}
	}

	return best
}

// minNode returns the leftmost node of the subtree rooted at n (nil for nil).
func minNode(n *node) *node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}

	return n
}

// maxNode returns the rightmost node of the subtree rooted at n (nil for nil).
func maxNode(n *node) *node {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}

	return n
}

// ascend visits the subtree rooted at n in key order, calling fn for each
// observation. Visiting stops early when fn returns false; ascend reports
// whether the full visit completed.
func ascend(n *node, fn func(Observation) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(Observation{Key: n.key, Val: n.val}) {
		return false
	}

	return ascend(n.right, fn)
}

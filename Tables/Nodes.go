package Tables

import "golang.org/x/exp/constraints"

// A node in the SizedMap
// The zero value is meaningless.
type node[K constraints.Ordered, V any, S constraints.Unsigned] struct {
	k    K
	v    V
	l, r nodePtr[K, V, S]
	sz   S
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in SizedMap. The value of this node has
// both node.l, node.r = itself, and sz=0. k and v are the zero values of
// their types. Reading a child's sz therefore never needs a nil check.
type nodePtr[K constraints.Ordered, V any, S constraints.Unsigned] *node[K, V, S]

// A node in the BSTree. Carries no subtree size; that engine answers no
// order statistic queries and only needs the three links a rotation rewrites.
// Absent children are plain nil here.
type bstNode[I any] struct {
	it   I
	l, r *bstNode[I]
}

// rotLeft performs a left rotation on the subtree rooted at *n: the right
// child becomes the subtree root, its old left subtree becomes the demoted
// node's right subtree. n is passed by reference in order to modify its
// content. (*n).r must not be nil.
// The in-order sequence of the subtree is unchanged; only three links move.
// Time: O(1); Space: O(1)
func rotLeft[I any](n **bstNode[I]) {
	c := *n
	rc := c.r
	c.r = rc.l
	rc.l = c
	*n = rc
}

// rotRight performs a right rotation on the subtree rooted at *n, the mirror
// of rotLeft. (*n).l must not be nil.
// Time: O(1); Space: O(1)
func rotRight[I any](n **bstNode[I]) {
	c := *n
	lc := c.l
	c.l = lc.r
	lc.r = c
	*n = lc
}

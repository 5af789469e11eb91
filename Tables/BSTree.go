package Tables

import "golang.org/x/exp/constraints"

// Item is what a BSTree stores: anything exposing an ordered key through
// Key(). Two items are the same entry iff their keys are equal; whatever
// else an item carries rides along with its key.
type Item[K constraints.Ordered] interface {
	Key() K
}

// Pair is a ready-made Item pairing a key with an arbitrary value.
type Pair[K constraints.Ordered, V any] struct {
	K K
	V V
}

func (p Pair[K, V]) Key() K { return p.K }

// BSTree is a plain binary search tree of Items with explicit rotation
// support and no repeated keys. Unlike SizedMap it carries no subtree sizes
// and answers no order statistic queries; its point is InsertRoot, which
// rotates a freshly inserted item all the way up the search path so that
// recently inserted items sit near the root. As with SizedMap there is no
// rebalancing, so the height D is unbounded in the worst case.
// The zero value is an empty tree ready for use.
type BSTree[I Item[K], K constraints.Ordered] struct {
	root  *bstNode[I]
	count uint
}

// MakeBSTree returns an empty BSTree.
func MakeBSTree[I Item[K], K constraints.Ordered]() *BSTree[I, K] {
	return &BSTree[I, K]{}
}

func (u *BSTree[I, K]) insert(curPtr **bstNode[I], it I) bool {
	if cur := *curPtr; cur == nil {
		*curPtr = &bstNode[I]{it: it}
		return true
	} else if k := it.Key(); k < cur.it.Key() {
		return u.insert(&cur.l, it)
	} else if k == cur.it.Key() {
		return false
	} else {
		return u.insert(&cur.r, it)
	}
}

// Insert it into the tree by standard descent, creating a leaf where the
// search runs off the tree. Returns false if an item with the same key is
// already present, leaving the tree unchanged. Recursive.
// Time: O(D)
func (u *BSTree[I, K]) Insert(it I) bool {
	if u.insert(&u.root, it) {
		u.count++
		return true
	}
	return false
}

// insertRoot descends like insert, but after the recursive call created the
// new leaf somewhere below, the current subtree is rotated so that the new
// item moves one level up: a right rotation if it went left, a left rotation
// if it went right. By the time the recursion fully unwinds the new item is
// the subtree root and the displaced nodes are redistributed into its left
// and right subtrees, in order.
func (u *BSTree[I, K]) insertRoot(curPtr **bstNode[I], it I) bool {
	if cur := *curPtr; cur == nil {
		*curPtr = &bstNode[I]{it: it}
		return true
	} else if k := it.Key(); k < cur.it.Key() {
		if !u.insertRoot(&cur.l, it) {
			return false
		}
		rotRight(curPtr)
		return true
	} else if k == cur.it.Key() {
		return false
	} else {
		if !u.insertRoot(&cur.r, it) {
			return false
		}
		rotLeft(curPtr)
		return true
	}
}

// InsertRoot inserts it and rotates it up the search path so that it ends
// up as the root of the whole tree. The in-order sequence afterwards is the
// same as after a plain Insert; only the shape differs. Returns false if
// the key is already present, leaving the tree unchanged. Recursive.
// Time: O(D)
func (u *BSTree[I, K]) InsertRoot(it I) bool {
	if u.insertRoot(&u.root, it) {
		u.count++
		return true
	}
	return false
}

// RotateLeft rotates the whole tree at its root, promoting the root's right
// child. Returns false without touching the tree when there is no right
// child to promote.
// Time: O(1); Space: O(1)
func (u *BSTree[I, K]) RotateLeft() bool {
	if u.root == nil || u.root.r == nil {
		return false
	}
	rotLeft(&u.root)
	return true
}

// RotateRight rotates the whole tree at its root, promoting the root's left
// child. Returns false without touching the tree when there is no left
// child to promote.
// Time: O(1); Space: O(1)
func (u *BSTree[I, K]) RotateRight() bool {
	if u.root == nil || u.root.l == nil {
		return false
	}
	rotRight(&u.root)
	return true
}

func (u *BSTree[I, K]) search(cur *bstNode[I], k K) (I, bool) {
	if cur == nil {
		return *new(I), false
	} else if k < cur.it.Key() {
		return u.search(cur.l, k)
	} else if k == cur.it.Key() {
		return cur.it, true
	} else {
		return u.search(cur.r, k)
	}
}

// Search returns the item stored under k. Recursive.
// Time: O(D)
func (u *BSTree[I, K]) Search(k K) (I, bool) {
	return u.search(u.root, k)
}

func (u *BSTree[I, K]) each(cur *bstNode[I], f func(I) bool) bool {
	if cur == nil {
		return true
	}
	return u.each(cur.l, f) && f(cur.it) && u.each(cur.r, f)
}

// Each calls f on every item in ascending key order, stopping early when f
// returns false. Recursive.
// Time: O(n)
func (u *BSTree[I, K]) Each(f func(I) bool) {
	u.each(u.root, f)
}

// Items returns all items in ascending key order, fully materialized.
// Time: O(n)
func (u *BSTree[I, K]) Items() []I {
	its := make([]I, 0, u.count)
	u.each(u.root, func(it I) bool {
		its = append(its, it)
		return true
	})
	return its
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[I, K]) Size() uint {
	return u.count
}

func (u *BSTree[I, K]) corrupt(cur *bstNode[I]) bool {
	if cur.l != nil {
		if !(cur.l.it.Key() < cur.it.Key()) || u.corrupt(cur.l) {
			return true
		}
	}
	if cur.r != nil {
		if !(cur.it.Key() < cur.r.it.Key()) || u.corrupt(cur.r) {
			return true
		}
	}
	return false
}

// Corrupt returns whether some node violates the key ordering against its
// children. Recursive.
func (u *BSTree[I, K]) Corrupt() bool {
	return u.root != nil && u.corrupt(u.root)
}

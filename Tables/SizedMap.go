package Tables

import (
	"golang.org/x/exp/constraints"
)

// SizedMap is a binary search tree symbol table with no repeated keys.
// Every node stores the size of the subtree rooted at it, sz=l.sz+r.sz+1,
// which is what makes the order statistic queries Select and RankOf and the
// range count RangeSize O(D) instead of O(n).
// K is the type of keys, V the type of values, S is the type of the
// variables used for storing the sizes of different subtrees.
// This struct holds a root pointer and a corresponding nilPtr used as nil
// described in nodePtr.
// The tree performs no rebalancing: its shape is determined entirely by the
// insertion order. For keys inserted in random order the height D is
// ~2 ln n on average, but inserting keys in sorted order degrades the tree
// to a list and every O(D) operation to O(n). Callers that need a height
// guarantee should use a balancing tree; this one trades the guarantee for
// simpler mutations and exact textbook behavior.
// Note that due to the way uint works in Go, and that the Map interface
// defines the return value of some functions to be uint, S shouldn't be
// any type that will cause overflow when converted to uint. Generally, you
// should let S be a wide upperbound for the size of the table.
type SizedMap[K constraints.Ordered, V any, S constraints.Unsigned] struct {
	root   nodePtr[K, V, S] //the root of the tree. It should be nilPtr initially.
	nilPtr nodePtr[K, V, S] // nilPtr is the pointer used instead of nil here, it follows the description in nodePtr
	// key comparisons performed across all Put calls and the number of Put
	// calls, kept only for the PutCost diagnostic.
	cmps, puts uint
}

// MakeSizedMap returns a SizedMap satisfying the above definitions for
// nilPtr, root, and types.
// SizedMap shouldn't be created directly using struct literal.
func MakeSizedMap[K constraints.Ordered, V any, S constraints.Unsigned]() *SizedMap[K, V, S] {
	z := new(node[K, V, S])
	z.l, z.r = z, z
	return &SizedMap[K, V, S]{root: z, nilPtr: z}
}

// FromSorted builds a SizedMap from parallel slices of keys and values
// recursively, producing a perfectly balanced shape. This is faster than
// repeatedly calling Put. keys must be sorted in ascending order and mustn't
// contain duplicates; vals[i] is the value of keys[i] and len(vals) must
// equal len(keys).
// If safe==true, this function will check if the conditions on keys are met
// and panic with InvalidSliceError if the conditions are broken. Otherwise,
// this function won't perform the check, and it is up to the user to ensure
// the conditions are met (otherwise the tree will be corrupt).
// Time: O(n).
func FromSorted[K constraints.Ordered, V any, S constraints.Unsigned](keys []K, vals []V, safe bool) *SizedMap[K, V, S] {
	z := new(node[K, V, S])
	z.l, z.r = z, z
	var build func([]K, []V) nodePtr[K, V, S]
	if safe {
		build = func(ks []K, vs []V) nodePtr[K, V, S] {
			if len(ks) > 0 {
				mid := len(ks) >> 1
				l, r := build(ks[0:mid], vs[0:mid]), build(ks[mid+1:], vs[mid+1:])
				if (l == z || l.k < ks[mid]) && (r == z || ks[mid] < r.k) {
					return &node[K, V, S]{ks[mid], vs[mid], l, r, S(len(ks))}
				} else {
					panic(InvalidSliceError[K]{l.k, ks[mid], ks[mid], r.k})
				}
			} else {
				return z
			}
		}
	} else {
		build = func(ks []K, vs []V) nodePtr[K, V, S] {
			if len(ks) > 0 {
				mid := len(ks) >> 1
				return &node[K, V, S]{ks[mid], vs[mid], build(ks[0:mid], vs[0:mid]), build(ks[mid+1:], vs[mid+1:]), S(len(ks))}
			} else {
				return z
			}
		}
	}
	return &SizedMap[K, V, S]{root: build(keys, vals), nilPtr: z}
}

// Size returns the size of the table.
// Time: O(1); Space: O(1)
func (u *SizedMap[K, V, S]) Size() uint {
	return uint(u.root.sz)
}

// put the pair (k, v) into the subtree rooting at cur recursively. cur is
// passed by reference. Returns true if a new node was created, false if an
// existing key had its value overwritten. Subtree sizes along the search
// path are recomputed from the children after the recursive call returns.
func (u *SizedMap[K, V, S]) put(curPtr *nodePtr[K, V, S], k K, v V) bool {
	if cur := *curPtr; cur == u.nilPtr {
		*curPtr = &node[K, V, S]{k, v, u.nilPtr, u.nilPtr, 1}
		return true
	} else {
		u.cmps++
		inserted := false
		if k < cur.k {
			inserted = u.put(&cur.l, k, v)
		} else if k == cur.k {
			cur.v = v
			return false
		} else {
			inserted = u.put(&cur.r, k, v)
		}
		if inserted {
			cur.sz = cur.l.sz + cur.r.sz + 1
		}
		return inserted
	}

}

// Put [Map.Put]. Recursive.
// It is a wrapper for put.
// Time: O(D)
func (u *SizedMap[K, V, S]) Put(k K, v V) {
	u.puts++
	u.put(&u.root, k, v)
}

// Get [Map.Get]
// Time: O(D); Space: O(1)
func (u *SizedMap[K, V, S]) Get(k K) (V, bool) {
	for cur := u.root; cur != u.nilPtr; {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return cur.v, true
		} else {
			cur = cur.r
		}
	}
	return *new(V), false
}

// Has [Map.Has]
// Time: O(D); Space: O(1)
func (u *SizedMap[K, V, S]) Has(k K) bool {
	for cur := u.root; cur != u.nilPtr; {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// remove k from the subtree rooting at cur recursively. cur is passed by
// reference. Returns false if the removal failed (k doesn't exist in u),
// otherwise true. A node with two children is removed Hibbard style: its
// key and value are replaced by those of the minimum of its right subtree,
// and that minimum is spliced out by promoting its right child. Sizes along
// both search paths are decremented.
// Time: O(D)
func (u *SizedMap[K, V, S]) remove(curPtr *nodePtr[K, V, S], k K) bool {
	if cur := *curPtr; cur == u.nilPtr {
		return false
	} else {
		deleted := false
		if k < cur.k {
			deleted = u.remove(&cur.l, k)
		} else if k == cur.k {
			deleted = true
			if cur.l == u.nilPtr {
				*curPtr = cur.r
			} else if cur.r == u.nilPtr {
				*curPtr = cur.l
			} else {
				t := &cur.r
				for (*t).l != u.nilPtr {
					(*t).sz--
					t = &(*t).l
				}
				cur.k, cur.v = (*t).k, (*t).v
				*t = (*t).r
			}
		} else {
			deleted = u.remove(&cur.r, k)
		}
		if deleted {
			cur.sz--
		}
		return deleted
	}

}

// Remove [Map.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *SizedMap[K, V, S]) Remove(k K) bool {
	return u.remove(&u.root, k)
}

// RemoveMin [Map.RemoveMin]. The minimum has no left child, so it is
// spliced out by promoting its right child into the parent's link; sizes
// along the left spine are decremented on the way down.
// Time: O(D); Space: O(1)
func (u *SizedMap[K, V, S]) RemoveMin() (K, bool) {
	if u.root == u.nilPtr {
		return *new(K), false
	}
	cur := &u.root
	for (*cur).l != u.nilPtr {
		(*cur).sz--
		cur = &(*cur).l
	}
	k := (*cur).k
	*cur = (*cur).r
	return k, true
}

// RemoveMax [Map.RemoveMax], the mirror of RemoveMin.
// Time: O(D); Space: O(1)
func (u *SizedMap[K, V, S]) RemoveMax() (K, bool) {
	if u.root == u.nilPtr {
		return *new(K), false
	}
	cur := &u.root
	for (*cur).r != u.nilPtr {
		(*cur).sz--
		cur = &(*cur).r
	}
	k := (*cur).k
	*cur = (*cur).l
	return k, true
}

// Minimum [Map.Minimum]
// Time: O(D); Space: O(1)
func (u *SizedMap[K, V, S]) Minimum() (K, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.k, false
	} else {
		for cur.l != u.nilPtr {
			cur = cur.l
		}
		return cur.k, true
	}
}

// Maximum [Map.Maximum]
// Time: O(D); Space: O(1)
func (u *SizedMap[K, V, S]) Maximum() (K, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.k, false
	} else {
		for cur.r != u.nilPtr {
			cur = cur.r
		}
		return cur.k, true
	}
}

// Floor [Map.Floor]. The walk goes left when the current key is too large;
// when it goes right the current key is <= k and becomes the best candidate
// so far, to be returned if nothing further right qualifies.
// Time: O(D); Space: O(1)
func (u *SizedMap[K, V, S]) Floor(k K) (K, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return cur.k, true
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.k, p != u.nilPtr
}

// Ceiling [Map.Ceiling], the mirror of Floor.
// Time: O(D); Space: O(1)
func (u *SizedMap[K, V, S]) Ceiling(k K) (K, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if k < cur.k {
			p = cur
			cur = cur.l
		} else if k == cur.k {
			return cur.k, true
		} else {
			cur = cur.r
		}
	}
	return p.k, p != u.nilPtr
}

// Select [Map.Select]
// Returns (x, true) if k < Size(), otherwise (zero, false).
// This function utilizes the subtree sizes: at each node the target rank is
// compared to the size of the left subtree to decide the direction, so no
// scanning is needed.
// Time: O(D); Space: O(1)
func (u *SizedMap[K, V, S]) Select(k uint) (K, bool) {
	if cur, t := u.root, S(k); t < cur.sz {
		for {
			if t < cur.l.sz {
				cur = cur.l
			} else if t == cur.l.sz {
				return cur.k, true
			} else {
				t -= cur.l.sz + 1
				cur = cur.r
			}
		}
	} else {
		return *new(K), false
	}

}

// RankOf [Map.RankOf]
// This function utilizes the subtree sizes: keys skipped by a right turn
// are counted wholesale as l.sz+1 instead of being visited.
// Time: O(D); Space: O(1)
func (u *SizedMap[K, V, S]) RankOf(k K) uint {
	cur := u.root
	var ra S = 0
	for cur != u.nilPtr {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return uint(ra + cur.l.sz)
		} else {
			ra += cur.l.sz + 1
			cur = cur.r
		}
	}
	return uint(ra)
}

// Keys [Map.Keys]. Recursive.
// Time: O(n)
func (u *SizedMap[K, V, S]) Keys() []K {
	ks := make([]K, 0, u.root.sz)
	var inorder func(nodePtr[K, V, S])
	inorder = func(cur nodePtr[K, V, S]) {
		if cur != u.nilPtr {
			inorder(cur.l)
			ks = append(ks, cur.k)
			inorder(cur.r)
		}
	}
	inorder(u.root)
	return ks
}

// RangeKeys [Map.RangeKeys]. Recursive. The in-order traversal descends
// into a subtree only if it can intersect [lo, hi]: left only when
// lo < cur.k, right only when cur.k < hi.
// Time: O(D + len(result))
func (u *SizedMap[K, V, S]) RangeKeys(lo, hi K) []K {
	var ks []K
	var inorder func(nodePtr[K, V, S])
	inorder = func(cur nodePtr[K, V, S]) {
		if cur == u.nilPtr {
			return
		}
		if lo < cur.k {
			inorder(cur.l)
		}
		if lo <= cur.k && cur.k <= hi {
			ks = append(ks, cur.k)
		}
		if cur.k < hi {
			inorder(cur.r)
		}
	}
	inorder(u.root)
	return ks
}

// RangeSize [Map.RangeSize], computed from two RankOf calls without
// materializing the keys. RankOf counts keys strictly below its argument,
// so hi itself is added back when present.
// Time: O(D); Space: O(1)
func (u *SizedMap[K, V, S]) RangeSize(lo, hi K) uint {
	if hi < lo {
		return 0
	}
	if n := u.RankOf(hi) - u.RankOf(lo); u.Has(hi) {
		return n + 1
	} else {
		return n
	}
}

// InOrder [Map.InOrder]. Uses morris traversal: right links are temporarily
// rewritten to thread the successor, so besides not modifying the table
// during the iteration, the returned function must be called until it
// reports false for the links to be fully restored.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *SizedMap[K, V, S]) InOrder() func() (K, bool) {
	cur := u.root
	return func() (r K, has bool) {
		if cur == u.nilPtr {
			return
		} else {
			has = true
			for cur != u.nilPtr {
				if cur.l == u.nilPtr {
					r = cur.k
					cur = cur.r
					break
				} else {
					p := cur.l
					for p.r != u.nilPtr && p.r != cur {
						p = p.r
					}
					if p.r != cur {
						p.r = cur
						cur = cur.l
					} else {
						p.r = u.nilPtr
						r = cur.k
						cur = cur.r
						break
					}
				}
			}
			return
		}

	}
}

func (u *SizedMap[K, V, S]) each(cur nodePtr[K, V, S], f func(K, V) bool) bool {
	if cur == u.nilPtr {
		return true
	}
	return u.each(cur.l, f) && f(cur.k, cur.v) && u.each(cur.r, f)
}

// Each [Map.Each]. Recursive.
// Time: O(n)
func (u *SizedMap[K, V, S]) Each(f func(K, V) bool) {
	u.each(u.root, f)
}

// PutCost reports the average number of key comparisons per Put over the
// lifetime of the table: 1 + total comparisons / total Puts. For keys
// inserted in random order this approaches ~1.39 lg n. Purely a diagnostic;
// 0 when Put was never called.
func (u *SizedMap[K, V, S]) PutCost() float64 {
	if u.puts == 0 {
		return 0
	}
	return 1 + float64(u.cmps)/float64(u.puts)
}

func (u *SizedMap[K, V, S]) corrupt(cur nodePtr[K, V, S]) bool {
	if cur.sz != cur.l.sz+cur.r.sz+1 {
		return true
	}
	if cur.l != u.nilPtr {
		if !(cur.l.k < cur.k) || u.corrupt(cur.l) {
			return true
		}
	}
	if cur.r != u.nilPtr {
		if !(cur.k < cur.r.k) || u.corrupt(cur.r) {
			return true
		}
	}
	return false
}

// Corrupt [Map.Corrupt]. Recursive. Checks at every node that both children
// are ordered against it and that sz == l.sz + r.sz + 1.
func (u *SizedMap[K, V, S]) Corrupt() bool {
	return u.root != u.nilPtr && u.corrupt(u.root)
}

func (u *SizedMap[K, V, S]) minDepth(c nodePtr[K, V, S], cd uint) uint {
	if c == u.nilPtr {
		return cd - 1
	}
	return min(u.minDepth(c.l, cd+1), u.minDepth(c.r, cd+1))
}

// MinDepth of the tree. Since the tree doesn't rebalance, comparing this
// against MaxDepth shows how degenerate the shape has become.
func (u *SizedMap[K, V, S]) MinDepth() uint {
	return u.minDepth(u.root, 0)
}

func (u *SizedMap[K, V, S]) maxDepth(c nodePtr[K, V, S], cd uint) uint {
	if c == u.nilPtr {
		return cd - 1
	}
	return max(u.maxDepth(c.l, cd+1), u.maxDepth(c.r, cd+1))
}

// MaxDepth of the tree, the D in the time bounds of the other methods.
func (u *SizedMap[K, V, S]) MaxDepth() uint {
	return u.maxDepth(u.root, 0)
}

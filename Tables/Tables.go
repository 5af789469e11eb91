package Tables

import "fmt"

// Map represents an ordered symbol table implemented using nodes.
// Receivers that have A bool as A second return value indicate whether
// the first return value is defined. For example, calling Minimum on an
// empty table returns (x K, false); the value of x should not be used.
// Queries that can miss (Get, Floor, Ceiling, Select) report the miss
// through the bool instead of an error, since A miss is the expected
// recoverable outcome of A lookup.
// If an implementation didn't specify anything special, then the implemented
// receivers follow the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Map[K, V any] interface {
	//Put the pair (k, v) into the table. The value of an existing key is
	//overwritten in place; the key set is unchanged in that case.
	Put(k K, v V)
	//Get the value paired with k.
	Get(k K) (V, bool)
	//Has reports whether k is in the table. Even though the second return
	//value of Get achieves the same, use Has when only existence matters,
	//as it skips copying the value.
	Has(k K) bool
	//Remove k and its value from the table. Returns false if k isn't present.
	Remove(k K) bool
	//RemoveMin deletes the smallest key, returning it.
	RemoveMin() (K, bool)
	//RemoveMax deletes the largest key, returning it.
	RemoveMax() (K, bool)
	//Minimum key of the table.
	Minimum() (K, bool)
	//Maximum key of the table.
	Maximum() (K, bool)
	//Floor returns the largest key <= k.
	Floor(k K) (K, bool)
	//Ceiling returns the smallest key >= k.
	Ceiling(k K) (K, bool)
	//Select returns the key of rank k in the table, 0 indexed, so
	//Select(0) is the minimum. k must be < Size().
	Select(k uint) (K, bool)
	//RankOf k in the table: the number of keys strictly less than k.
	//k itself need not be present. Inverse of Select over present keys.
	RankOf(k K) uint
	//Keys of the table in ascending order, fully materialized.
	Keys() []K
	//RangeKeys returns the keys in [lo, hi] in ascending order.
	RangeKeys(lo, hi K) []K
	//RangeSize returns the number of keys in [lo, hi].
	RangeSize(lo, hi K) uint
	//Size of the table.
	Size() uint
	//InOrder returns A closure function f acting like an iterator. f
	//gives keys in the in-order traversal of the table.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The table must not be modified during the iteration of f, otherwise
	//it could corrupt the table. There will be no panic if such cases
	//happen so design the algorithm with this in mind.
	InOrder() func() (K, bool)
	//Each calls f on every pair in ascending key order, stopping early
	//when f returns false.
	Each(f func(K, V) bool)
	//Corrupt returns whether the table has corrupt structures, when the
	//key or size at some node violates the properties of that specific
	//implementation. This is to be distinguished from whether the tree
	//is balanced or not.
	Corrupt() bool
}

// InvalidSliceError reports a violation of the sorted-without-duplicates
// precondition of FromSorted.
type InvalidSliceError[K any] struct {
	Left, Mid1, Mid2, Right K
}

func (e InvalidSliceError[K]) Error() string {
	return fmt.Sprintf("slice isn't sorted in ascending order without duplicates: (%v, %v), (%v, %v)", e.Left, e.Mid1, e.Mid2, e.Right)
}

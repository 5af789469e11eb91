package Tables

import (
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 20000
	tAddValRange = 40000
)

var _ Map[int, int] = (*SizedMap[int, int, uint32])(nil)

func TestSizedMap_Put(t *testing.T) {
	tree := MakeSizedMap[int, int, uint32]()
	content := make(map[int]int)
	for n := 0; n < tAddN; n++ {
		k := rg.Intn(tAddValRange)
		tree.Put(k, k*2)
		content[k] = k * 2
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
	for k, v := range content {
		if got, in := tree.Get(k); !in || got != v {
			t.Errorf("key %v has (%v, %v), want (%v, true)", k, got, in, v)
		}
	}
	if _, in := tree.Get(tAddValRange + 1); in {
		t.Errorf("tree has non existent key %v", tAddValRange+1)
	}
	ks := tree.Keys()
	if len(ks) != len(content) {
		t.Errorf("keys length is %d, want %d", len(ks), len(content))
	}
	if !slices.IsSorted(ks) {
		t.Error("keys are not sorted")
	}
	t.Logf("put cost: %f, min depth: %d, max depth: %d.\n", tree.PutCost(), tree.MinDepth(), tree.MaxDepth())
}

func TestSizedMap_PutOverwrite(t *testing.T) {
	tree := MakeSizedMap[string, int, uint8]()
	tree.Put("a", 1)
	tree.Put("b", 2)
	tree.Put("a", 3)
	if tree.Size() != 2 {
		t.Errorf("tree size is %d, want 2", tree.Size())
	}
	if v, in := tree.Get("a"); !in || v != 3 {
		t.Errorf("key a has (%v, %v), want (3, true)", v, in)
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
}

func TestSizedMap_Remove(t *testing.T) {
	tree := MakeSizedMap[int, struct{}, uint16]()
	content := make(map[int]struct{})
	if tree.Remove(0) {
		t.Error("removed from an empty tree")
	}
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Put(a[i], struct{}{})
		content[a[i]] = struct{}{}
	}
	for i, m := 0, rg.Intn(len(a)); i < m; i++ {
		_, in := content[a[i]]
		if tree.Remove(a[i]) != in {
			t.Errorf("failed to remove key %v", a[i])
		}
		if tree.Remove(a[i]) {
			t.Errorf("can remove a second time key %v", a[i])
		}
		delete(content, a[i])
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if ks := tree.Keys(); !slices.IsSorted(ks) || len(ks) != len(content) {
		t.Error("keys are wrong after removal")
	}
}

func TestSizedMap_RemoveMinMax(t *testing.T) {
	tree := MakeSizedMap[int, struct{}, uint16]()
	if _, in := tree.RemoveMin(); in {
		t.Error("removed the minimum of an empty tree")
	}
	if _, in := tree.RemoveMax(); in {
		t.Error("removed the maximum of an empty tree")
	}
	content := make(map[int]struct{})
	for n := 0; n < tAddN; n++ {
		k := rg.Intn(tAddValRange)
		tree.Put(k, struct{}{})
		content[k] = struct{}{}
	}
	sorted := make([]int, 0, len(content))
	for k := range content {
		sorted = append(sorted, k)
	}
	slices.Sort(sorted)
	for i := 0; i < len(sorted)/2; i++ {
		k, in := tree.RemoveMin()
		if !in || k != sorted[i] {
			t.Fatalf("wrong minimum removed (%v, %v), want %v", k, in, sorted[i])
		}
	}
	for i := len(sorted) - 1; i >= len(sorted)/2; i-- {
		k, in := tree.RemoveMax()
		if !in || k != sorted[i] {
			t.Fatalf("wrong maximum removed (%v, %v), want %v", k, in, sorted[i])
		}
	}
	if tree.Size() != 0 {
		t.Errorf("tree size is %d, want 0", tree.Size())
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
}

func TestSizedMap_SelectRankOf(t *testing.T) {
	tree := MakeSizedMap[int, struct{}, uint16]()
	content := make(map[int]struct{})
	for n := 0; n < tAddN; n++ {
		k := rg.Intn(tAddValRange)
		tree.Put(k, struct{}{})
		content[k] = struct{}{}
	}
	sorted := make([]int, 0, len(content))
	for k := range content {
		sorted = append(sorted, k)
	}
	slices.Sort(sorted)
	for i, v := range sorted {
		k, in := tree.Select(uint(i))
		if !in {
			t.Fatalf("nil at rank %d", i)
		}
		if k != v {
			t.Fatalf("wrong key at rank %d, want %d has %d", i, v, k)
		}
		if ra := tree.RankOf(v); ra != uint(i) {
			t.Fatalf("wrong rank of %d, want %d has %d", v, i, ra)
		}
	}
	if _, in := tree.Select(tree.Size()); in {
		t.Error("rank Size() should be out of range")
	}
	if ra := tree.RankOf(tAddValRange + 1); ra != tree.Size() {
		t.Errorf("rank above all keys is %d, want %d", ra, tree.Size())
	}
	if ra := tree.RankOf(-1); ra != 0 {
		t.Errorf("rank below all keys is %d, want 0", ra)
	}
}

func TestSizedMap_FloorCeiling(t *testing.T) {
	tree := MakeSizedMap[int, struct{}, uint16]()
	for i := 0; i < tAddN; i++ {
		tree.Put(i*2, struct{}{})
	}
	for i := 0; i < tAddN; i++ {
		if f, in := tree.Floor(i * 2); !in || f != i*2 {
			t.Fatalf("wrong floor of present key (%v, %v), want %d", f, in, i*2)
		}
		if c, in := tree.Ceiling(i * 2); !in || c != i*2 {
			t.Fatalf("wrong ceiling of present key (%v, %v), want %d", c, in, i*2)
		}
		if f, in := tree.Floor(i*2 + 1); !in || f != i*2 {
			t.Fatalf("wrong floor of %d (%v, %v), want %d", i*2+1, f, in, i*2)
		}
	}
	for i := 1; i < tAddN; i++ {
		if c, in := tree.Ceiling(i*2 - 1); !in || c != i*2 {
			t.Fatalf("wrong ceiling of %d (%v, %v), want %d", i*2-1, c, in, i*2)
		}
	}
	if _, in := tree.Floor(-1); in {
		t.Error("shouldn't have a floor below all keys")
	}
	if _, in := tree.Ceiling(tAddN * 2); in {
		t.Error("shouldn't have a ceiling above all keys")
	}
}

func TestSizedMap_Range(t *testing.T) {
	tree := MakeSizedMap[int, struct{}, uint16]()
	content := make(map[int]struct{})
	for n := 0; n < tAddN; n++ {
		k := rg.Intn(tAddValRange)
		tree.Put(k, struct{}{})
		content[k] = struct{}{}
	}
	sorted := make([]int, 0, len(content))
	for k := range content {
		sorted = append(sorted, k)
	}
	slices.Sort(sorted)
	for n := 0; n < 100; n++ {
		lo, hi := rg.Intn(tAddValRange), rg.Intn(tAddValRange)
		want := make([]int, 0)
		for _, k := range sorted {
			if lo <= k && k <= hi {
				want = append(want, k)
			}
		}
		if got := tree.RangeKeys(lo, hi); !slices.Equal(got, want) {
			t.Fatalf("wrong keys in [%d, %d]", lo, hi)
		}
		if n := tree.RangeSize(lo, hi); n != uint(len(want)) {
			t.Fatalf("wrong size of [%d, %d], want %d has %d", lo, hi, len(want), n)
		}
	}
	if n := tree.RangeSize(1, 0); n != 0 {
		t.Errorf("size of an empty range is %d, want 0", n)
	}
}

func TestSizedMap_InOrder(t *testing.T) {
	tree := MakeSizedMap[int, struct{}, uint16]()
	content := make(map[int]struct{})
	for n := 0; n < tAddN; n++ {
		k := rg.Intn(tAddValRange)
		tree.Put(k, struct{}{})
		content[k] = struct{}{}
	}
	var s []int
	f := tree.InOrder()
	for k, has := f(); has; k, has = f() {
		s = append(s, k)
	}
	if int(tree.Size()) != len(s) {
		t.Errorf("iterated size is %d, want %d", len(s), tree.Size())
	}
	if !slices.IsSorted(s) {
		t.Error("iterated keys are not sorted")
	}
	for _, v := range s {
		if _, in := content[v]; !in {
			t.Errorf("iterated non existent key %v", v)
		}
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt after a full iteration")
	}
}

func TestSizedMap_Each(t *testing.T) {
	tree := MakeSizedMap[int, int, uint16]()
	for n := 0; n < tAddN; n++ {
		k := rg.Intn(tAddValRange)
		tree.Put(k, k*3)
	}
	var s []int
	tree.Each(func(k, v int) bool {
		if v != k*3 {
			t.Errorf("key %v has value %v, want %v", k, v, k*3)
		}
		s = append(s, k)
		return true
	})
	if int(tree.Size()) != len(s) {
		t.Errorf("visited %d pairs, want %d", len(s), tree.Size())
	}
	if !slices.IsSorted(s) {
		t.Error("visited keys are not sorted")
	}
	n := 0
	tree.Each(func(int, int) bool {
		n++
		return n < 10
	})
	if n != 10 {
		t.Errorf("early stop visited %d pairs, want 10", n)
	}
}

func TestSizedMap_FromSorted(t *testing.T) {
	content := make([]int, tAddN)
	for i := range content {
		content[i] = i * 2
	}
	vals := make([]int, len(content))
	for i := range vals {
		vals[i] = content[i] + 1
	}
	tree := FromSorted[int, int, uint16](content, vals, true)
	if int(tree.Size()) != len(content) {
		t.Fatalf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
	if !slices.Equal(tree.Keys(), content) {
		t.Fatal("keys differ from the source slice")
	}
	for i, k := range content {
		if v, in := tree.Get(k); !in || v != vals[i] {
			t.Fatalf("key %v has (%v, %v), want (%v, true)", k, v, in, vals[i])
		}
	}
	if d := tree.MaxDepth(); d > 16 {
		t.Errorf("built tree is not balanced, depth %d", d)
	}
}

func TestSizedMap_FromSortedInvalid(t *testing.T) {
	defer func() {
		if _, is := recover().(InvalidSliceError[int]); !is {
			t.Error("expected an InvalidSliceError panic")
		}
	}()
	FromSorted[int, int, uint16]([]int{3, 2, 1}, []int{0, 0, 0}, true)
}

func TestSizedMap_PutCost(t *testing.T) {
	tree := MakeSizedMap[int, struct{}, uint32]()
	if tree.PutCost() != 0 {
		t.Errorf("put cost of an untouched table is %f, want 0", tree.PutCost())
	}
	for _, k := range rg.Perm(tAddN) {
		tree.Put(k, struct{}{})
	}
	// ~1.39 lg n expected for random insertion order; 3 lg n is a loose
	// upper bound that still catches degenerate shapes.
	if c, lgn := tree.PutCost(), 14.3; c <= 1 || c > 3*lgn {
		t.Errorf("put cost %f is implausible for %d random puts", c, tAddN)
	}
	t.Logf("put cost: %f.\n", tree.PutCost())
}

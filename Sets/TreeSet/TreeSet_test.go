package TreeSet

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/ansel1/merry"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/g-m-twostay/go-containers/Trees"
)

func TestTreeSet_All(t *testing.T) {
	S := New[int](uint8(0))
	for i := 0; i < 10; i++ {
		if !S.Put(i) {
			t.Error("wrong put 1")
		}
		if S.Put(i) {
			t.Error("wrong put 2")
		}
	}
	for i := 0; i < 10; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 5; i++ {
		if !S.Remove(i) {
			t.Error("wrong remove 1")
		}
		if S.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 5; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if e, ok := S.Minimum(); !ok || e != 5 {
		t.Error("wrong minimum", e)
	}
	if e, ok := S.Maximum(); !ok || e != 9 {
		t.Error("wrong maximum", e)
	}
	if e, ok := S.Successor(7); !ok || e != 8 {
		t.Error("wrong successor", e)
	}
	if e, ok := S.Predecessor(7); !ok || e != 6 {
		t.Error("wrong predecessor", e)
	}
	if _, ok := S.Successor(4); ok {
		t.Error("successor of absent element")
	}
	for i := 5; i < 10; i++ {
		if e, ok := S.Take(); !ok || e != i {
			t.Error("wrong take", e)
		}
	}
	if _, ok := S.Take(); ok || S.Size() != 0 {
		t.Error("take from empty set")
	}
}

func TestTreeSet_Random(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	S := New[int](uint16(0))
	ref := treeset.NewWithIntComparator()
	for range 20000 {
		e := rg.Intn(2000)
		if rg.Intn(3) == 0 {
			if S.Remove(e) != ref.Contains(e) {
				t.Fatal("wrong remove", e)
			}
			ref.Remove(e)
		} else {
			if S.Put(e) == ref.Contains(e) {
				t.Fatal("wrong put", e)
			}
			ref.Add(e)
		}
	}
	if S.Size() != uint(ref.Size()) {
		t.Fatal("wrong size", S.Size(), ref.Size())
	}
	got := slices.Collect(S.All())
	for i, v := range ref.Values() {
		if got[i] != v.(int) {
			t.Fatal("wrong order at", i)
		}
	}
	if err := S.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestTreeSet_Extended(t *testing.T) {
	A, B := New[int](uint(0)), New[int](uint(0))
	for i := 0; i < 20; i++ {
		A.Put(i)
	}
	for i := 10; i < 30; i++ {
		B.Put(i)
	}
	even := A.Filter(func(e int) bool { return e%2 == 0 })
	if even.Size() != 10 || even.Has(3) || !even.Has(4) {
		t.Error("wrong filter")
	}
	if A.Eq(B) {
		t.Error("wrong eq 1")
	}
	C := New[int](uint(0))
	if C.PutAll(A) != 20 || !C.Eq(A) || !A.Eq(C) {
		t.Error("wrong eq 2")
	}
	C.Intersect(B)
	if C.Size() != 10 || C.Has(9) || !C.Has(10) {
		t.Error("wrong intersect")
	}
	if A.RemoveAll(C) != 10 || A.Size() != 10 {
		t.Error("wrong remove all")
	}
	A.Union(B)
	if A.Size() != 30 {
		t.Error("wrong union")
	}
	dropped := 0
	A.SetClean(func(int) { dropped++ })
	A.Clear()
	if dropped != 30 {
		t.Error("wrong clean count", dropped)
	}
}

func TestTreeSet_Full(t *testing.T) {
	S := New[int](uint8(0))
	for i := 0; i < 255; i++ {
		if err := S.Add(i); err != nil {
			t.Fatal(err)
		}
	}
	if S.Put(255) || S.Add(255) == nil {
		t.Error("put into a full set")
	}
	if S.Add(0) != nil {
		t.Error("adding an existing element failed")
	}
}

func TestTreeSet_Nil(t *testing.T) {
	var S *TreeSet[int, uint]
	if S.Put(1) || S.Has(1) || S.Remove(1) || S.Size() != 0 {
		t.Error("nil set isn't empty")
	}
	if err := S.Add(1); !merry.Is(err, Trees.ErrNoInit) {
		t.Error("wrong add on nil set", err)
	}
	if _, ok := S.Take(); ok {
		t.Error("take from nil set")
	}
	if _, ok := S.Minimum(); ok {
		t.Error("minimum of nil set")
	}
	S.Range(func(int) bool {
		t.Error("nil set ranges")
		return false
	})
	A := New[int](uint(0))
	A.Put(1)
	if A.Eq(S) || S.Eq(A) || A.PutAll(S) != 0 || S.PutAll(A) != 0 {
		t.Error("wrong set algebra with nil set")
	}
	if f := S.Filter(func(int) bool { return true }); f.Size() != 0 || f.Put(1) {
		t.Error("filter of nil set")
	}
	S.Clear()
	S.SetClean(func(int) {})
}

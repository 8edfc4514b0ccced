package TreeSet

import (
	"slices"
	"strings"
	"testing"
)

func ltInt(a, b int) bool {
	return a < b
}
func eqInt(a, b int) bool {
	return a == b
}

// CTreeSet must behave exactly as TreeSet when given the built-in order.
func TestCTreeSet_Parity(t *testing.T) {
	ct := New1(ltInt, eqInt)
	tree := New[int]()
	for n := 0; n < tAddN; n++ {
		b := rg.Intn(tAddValRange)
		if ct.Insert(b) != tree.Insert(b) {
			t.Errorf("insert of key %v diverged", b)
		}
	}
	for n := 0; n < tAddN/2; n++ {
		b := rg.Intn(tAddValRange)
		if ct.Remove(b) != tree.Remove(b) {
			t.Errorf("remove of key %v diverged", b)
		}
		if ct.Has(b) != tree.Has(b) {
			t.Errorf("has of key %v diverged", b)
		}
	}
	if ct.Size() != tree.Size() {
		t.Errorf("tree size is %d, want %d", ct.Size(), tree.Size())
	}
	if !slices.Equal(collect(ct.InOrder()), collect(tree.InOrder())) {
		t.Error("in-order traversals diverged")
	}
	if ct.corrupt() {
		t.Error("parent links are inconsistent")
	}
}

func TestCTreeSet_CustomOrder(t *testing.T) {
	//case-insensitive strings: eq must agree with lt, see the CTreeSet doc
	lt := func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	}
	eq := func(a, b string) bool {
		return strings.EqualFold(a, b)
	}
	S := New1(lt, eq)
	for _, v := range []string{"Pear", "apple", "FIG", "fig", "PEAR"} {
		S.Insert(v)
	}
	if S.Size() != 3 {
		t.Errorf("tree size is %d, want 3", S.Size())
	}
	if !S.Has("Fig") {
		t.Error("tree does not have key Fig")
	}
	if got := collect(S.InOrder()); !slices.Equal(got, []string{"apple", "FIG", "Pear"}) {
		t.Errorf("in-order traversal gave %v", got)
	}
	if v, ok := S.Minimum(); !ok || v != "apple" {
		t.Errorf("minimum is %v, want apple", v)
	}
	if v, ok := S.Maximum(); !ok || v != "Pear" {
		t.Errorf("maximum is %v, want Pear", v)
	}
	if !S.Remove("pear") || S.Has("PEAR") {
		t.Error("failed to remove key pear")
	}
}

func TestBuild1(t *testing.T) {
	a := []int{1, 3, 5, 7, 9}
	S := Build1(a, ltInt, eqInt, true)
	if int(S.Size()) != len(a) || !slices.Equal(collect(S.InOrder()), a) {
		t.Error("Build1 produced a wrong tree")
	}
	defer func() {
		if _, ok := recover().(InvalidSliceError[int]); !ok {
			t.Error("Build1 accepted an unsorted slice")
		}
	}()
	Build1([]int{3, 1}, ltInt, eqInt, true)
}

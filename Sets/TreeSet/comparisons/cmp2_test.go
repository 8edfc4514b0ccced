package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/ordered-set/Sets/TreeSet"
)

// membership baselines against hash tables: https://github.com/cornelk/hashmap
// and https://github.com/alphadose/haxmap used as sets. They hash instead of
// comparing, so they bound the cost of dropping ordered traversal.
func setupHashMap(b *testing.B) *hashmap.Map[int, struct{}] {
	b.Helper()
	m := hashmap.New[int, struct{}]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Set(i, struct{}{})
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[int, struct{}] {
	b.Helper()
	m := haxmap.New[int, struct{}]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Set(i, struct{}{})
	}
	return m
}

func Benchmark2MemberTreeSet(b *testing.B) {
	t := setupTreeSet(b, rg.Perm(benchmarkItemCount))
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if !t.Has(i) {
				b.Fail()
			}
		}
	}
}

func Benchmark2MemberHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if _, ok := m.Get(i); !ok {
				b.Fail()
			}
		}
	}
}

func Benchmark2MemberHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if _, ok := m.Get(i); !ok {
				b.Fail()
			}
		}
	}
}

func Benchmark2InsertHashMap(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := hashmap.New[int, struct{}]()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Set(i, struct{}{})
		}
	}
}

func Benchmark2InsertHaxMap(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := haxmap.New[int, struct{}]()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Set(i, struct{}{})
		}
	}
}

func Benchmark2InsertTreeSetOrdered(b *testing.B) {
	//worst case: ascending keys degenerate the unbalanced tree into a chain
	for n := 0; n < b.N; n++ {
		t := TreeSet.New[int]()
		for i := 0; i < 1<<10; i++ {
			t.Insert(i)
		}
	}
}

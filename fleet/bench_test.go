package fleet

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

var benchSizes = []int{100, 1000}

func benchIDs(size int) []Ship {
	rd := rand.New(rand.NewSource(0x123456789abcdef0))
	ids := ShuffledIDs(rd, size)

	ships := make([]Ship, len(ids))
	for i, id := range ids {
		ships[i] = RandomShip(rd, id)
	}
	return ships
}

func BenchmarkInsert(b *testing.B) {
	for _, size := range benchSizes {
		ships := benchIDs(size)

		for _, kind := range []TreeType{BST, AVL, Splay} {
			b.Run(fmt.Sprintf("size=%d/%v", size, kind), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					f := New(kind)
					for _, s := range ships {
						f.Insert(s)
					}
				}
			})
		}

		// baselines: other ordered trees doing the same inserts
		b.Run(fmt.Sprintf("size=%d/google-btree", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tr := btree.NewOrderedG[int](8)
				for _, s := range ships {
					tr.ReplaceOrInsert(s.ID)
				}
			}
		})

		b.Run(fmt.Sprintf("size=%d/gods-avltree", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tr := avltree.NewWithIntComparator()
				for _, s := range ships {
					tr.Put(s.ID, s)
				}
			}
		})

		b.Run(fmt.Sprintf("size=%d/llrb", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tr := llrb.New()
				for _, s := range ships {
					tr.ReplaceOrInsert(llrb.Int(s.ID))
				}
			}
		})
	}
}

func BenchmarkRemove(b *testing.B) {
	for _, size := range benchSizes {
		ships := benchIDs(size)

		for _, kind := range []TreeType{BST, AVL} {
			f := New(kind)
			for _, s := range ships {
				f.Insert(s)
			}

			b.Run(fmt.Sprintf("size=%d/%v", size, kind), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					b.StopTimer()
					c := f.Clone()
					b.StartTimer()
					for _, s := range ships[:size/2] {
						c.Remove(s.ID)
					}
				}
			})
		}
	}
}

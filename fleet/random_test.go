package fleet

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oracle tracks the IDs a fleet should hold.
type oracle struct {
	*btree.BTreeG[int]
}

func newOracle() oracle {
	return oracle{btree.NewOrderedG[int](8)}
}

func (o oracle) ids() []int {
	var out []int
	o.Ascend(func(id int) bool {
		out = append(out, id)
		return true
	})
	return out
}

func TestRandomOperations(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 20
	const size = 300

	for _, kind := range []TreeType{BST, AVL, Splay} {
		for i := 0; i < rounds; i++ {
			seed := int64(seedrd.Uint64())

			t.Run(fmt.Sprintf("%v/round=%d", kind, i), func(t *testing.T) {
				rd := rand.New(rand.NewSource(seed))
				f, o := New(kind), newOracle()

				ids := ShuffledIDs(rd, size)
				for _, id := range ids {
					require.True(t, f.Insert(RandomShip(rd, id)))
					o.ReplaceOrInsert(id)

					require.NoError(t, f.Verify())
					if kind == Splay {
						root, _ := f.Root()
						require.Equal(t, id, root.ID, "inserted ship was not splayed")
					}
				}

				require.Equal(t, o.ids(), f.IDs())
				require.Equal(t, size, f.Len())

				// duplicates change nothing
				before := f.Dump()
				for _, id := range ids[:size/10] {
					require.False(t, f.Insert(ship(id)))
				}
				require.Equal(t, before, f.Dump())

				// remove half, with some misses mixed in
				for j := 0; j < size/2; j++ {
					id := MinID + rd.Intn(MaxID-MinID+1)
					if j%2 == 0 {
						id = ids[rd.Intn(len(ids))]
					}

					_, present := o.Get(id)
					removed := f.Remove(id)

					switch {
					case kind == Splay:
						require.False(t, removed)
					case present:
						require.True(t, removed)
						o.Delete(id)
					default:
						require.False(t, removed)
					}

					require.NoError(t, f.Verify())
				}

				assert.Equal(t, o.ids(), f.IDs())
			})
		}
	}
}

func TestRandomSetType(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x0fedcba987654321))

	for i := 0; i < 10; i++ {
		seed := int64(seedrd.Uint64())

		t.Run(fmt.Sprintf("round=%d", i), func(t *testing.T) {
			for _, from := range []TreeType{BST, Splay} {
				f := BuildRandom(from, 200, seed)
				want := f.Ships()

				f.SetType(AVL)

				require.NoError(t, f.Verify())
				assert.Equal(t, want, f.Ships())
			}
		})
	}
}

func TestBuildRandom(t *testing.T) {
	a := BuildRandom(BST, 100, 42)
	b := BuildRandom(BST, 100, 42)

	assert.Equal(t, 100, a.Len())
	assert.Equal(t, a.Dump(), b.Dump(), "same seed, different tree")
	assert.NoError(t, a.Verify())

	a.InOrder(func(s Ship) bool {
		assert.True(t, s.Type.Valid())
		assert.Equal(t, Alive, s.State)
		return true
	})
}

func TestShuffledIDs(t *testing.T) {
	rd := rand.New(rand.NewSource(1))

	ids := ShuffledIDs(rd, 1000)
	seen := make(map[int]bool)
	for _, id := range ids {
		assert.True(t, InRange(id))
		assert.False(t, seen[id], "duplicate %d", id)
		seen[id] = true
	}
	assert.Len(t, ids, 1000)

	assert.Len(t, ShuffledIDs(rd, MaxID-MinID+100), MaxID-MinID+1)
	assert.Empty(t, ShuffledIDs(rd, -1))
}

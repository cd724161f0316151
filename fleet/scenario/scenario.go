// Package scenario holds end-to-end checks of fleet behaviour.
// Each scenario builds its own fleets from a seed, so scenarios may
// run concurrently with each other.
package scenario

import (
	"errors"
	"fmt"
	"math/rand"

	"go.lepak.sg/fleet/fleet"
)

// Params sizes a scenario run.
type Params struct {
	Seed int64
	// Size is the number of ships in the larger fleets. Smaller
	// fleets and removal counts are derived from it.
	Size int
}

// DefaultSize matches the largest fleets of the classic checks.
const DefaultSize = 300

type Scenario struct {
	Name string
	Run  func(p Params) error
}

var ErrFailed = errors.New("scenario failed")

func failf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrFailed}, args...)...)
}

// All lists every scenario in the order they are reported.
var All = []Scenario{
	{"AVL balance after insertions", avlBalanceAfterInsertions},
	{"BST property after insertions", bstPropertyAfterInsertions},
	{"Splay tree operations", splayOperations},
	{"Splay tree heights accuracy", splayHeights},
	{"BST remove normal case", bstRemoveNormal},
	{"BST remove edge case", bstRemoveEdge},
	{"AVL balance after removals", avlBalanceAfterRemovals},
	{"BST property after AVL and BST removals", bstPropertyAfterRemovals},
	{"BST heights accuracy after removals", bstHeightsAfterRemovals},
	{"Switching to AVL rebalances", switchToAVL},
	{"Assignment normal case", assignNormal},
	{"Assignment error case", assignEmpty},
}

// fill inserts n random ships into each of fs, the same ships in the
// same order, and returns their IDs in insertion order.
func fill(rd *rand.Rand, n int, fs ...*fleet.Fleet) []int {
	ids := fleet.ShuffledIDs(rd, n)
	for _, id := range ids {
		s := fleet.RandomShip(rd, id)
		for _, f := range fs {
			f.Insert(s)
		}
	}
	return ids
}

// removeSome removes n distinct IDs, picked at random from ids, from
// each of fs. It fails if any fleet refuses a removal.
func removeSome(rd *rand.Rand, ids []int, n int, fs ...*fleet.Fleet) error {
	if n > len(ids) {
		n = len(ids)
	}

	pick := make([]int, len(ids))
	copy(pick, ids)
	rd.Shuffle(len(pick), func(i, j int) {
		pick[i], pick[j] = pick[j], pick[i]
	})

	for _, id := range pick[:n] {
		for _, f := range fs {
			if !f.Remove(id) {
				return failf("%v fleet did not remove %d", f.Type(), id)
			}
			if f.Contains(id) {
				return failf("%v fleet still contains %d", f.Type(), id)
			}
		}
	}

	return nil
}

func verify(fs ...*fleet.Fleet) error {
	for _, f := range fs {
		if err := f.Verify(); err != nil {
			return fmt.Errorf("%w: %v fleet: %v", ErrFailed, f.Type(), err)
		}
	}
	return nil
}

func avlBalanceAfterInsertions(p Params) error {
	rd := rand.New(rand.NewSource(p.Seed))
	f := fleet.New(fleet.AVL)

	fill(rd, p.Size, f)

	return verify(f)
}

func bstPropertyAfterInsertions(p Params) error {
	rd := rand.New(rand.NewSource(p.Seed))
	f := fleet.New(fleet.BST)

	fill(rd, p.Size/2, f)

	return verify(f)
}

func splayOperations(p Params) error {
	rd := rand.New(rand.NewSource(p.Seed))
	f := fleet.New(fleet.Splay)

	for _, id := range fleet.ShuffledIDs(rd, p.Size/2) {
		f.Insert(fleet.RandomShip(rd, id))

		if root, _ := f.Root(); root.ID != id {
			return failf("root is %d after inserting %d", root.ID, id)
		}
	}

	return verify(f)
}

func splayHeights(p Params) error {
	rd := rand.New(rand.NewSource(p.Seed))
	f := fleet.New(fleet.Splay)

	fill(rd, p.Size/2, f)

	return verify(f)
}

func bstRemoveNormal(p Params) error {
	rd := rand.New(rand.NewSource(p.Seed))
	f := fleet.New(fleet.BST)

	ids := fill(rd, p.Size/2, f)
	if err := removeSome(rd, ids, 1, f); err != nil {
		return err
	}

	return verify(f)
}

func bstRemoveEdge(Params) error {
	f := fleet.New(fleet.BST)

	f.Insert(fleet.Ship{ID: fleet.MinID, Type: fleet.Communicator, State: fleet.Lost})
	f.Remove(fleet.MinID)

	if !f.Empty() {
		return failf("fleet not empty after removing its only ship: %s", f.Dump())
	}

	return nil
}

func avlBalanceAfterRemovals(p Params) error {
	rd := rand.New(rand.NewSource(p.Seed))
	f := fleet.New(fleet.AVL)

	ids := fill(rd, p.Size, f)
	if err := removeSome(rd, ids, p.Size/2, f); err != nil {
		return err
	}

	return verify(f)
}

func bstPropertyAfterRemovals(p Params) error {
	rd := rand.New(rand.NewSource(p.Seed))
	bst, avl := fleet.New(fleet.BST), fleet.New(fleet.AVL)

	ids := fill(rd, p.Size, bst, avl)
	if err := removeSome(rd, ids, p.Size/2, bst, avl); err != nil {
		return err
	}

	return verify(bst, avl)
}

func bstHeightsAfterRemovals(p Params) error {
	rd := rand.New(rand.NewSource(p.Seed))
	f := fleet.New(fleet.BST)

	ids := fill(rd, p.Size/2, f)
	if err := removeSome(rd, ids, p.Size/6, f); err != nil {
		return err
	}

	return verify(f)
}

func switchToAVL(p Params) error {
	f := fleet.BuildRandom(fleet.BST, p.Size/2, p.Seed)
	want := f.IDs()

	f.SetType(fleet.AVL)

	if err := verify(f); err != nil {
		return err
	}

	got := f.IDs()
	if len(got) != len(want) {
		return failf("rebalancing changed the fleet size from %d to %d", len(want), len(got))
	}
	for i := range got {
		if got[i] != want[i] {
			return failf("rebalancing changed ship %d into %d", want[i], got[i])
		}
	}

	return nil
}

func assignNormal(p Params) error {
	src := fleet.BuildRandom(fleet.BST, p.Size/3, p.Seed)

	var dst fleet.Fleet
	dst.Assign(src)

	// the dump has every ID and height in tree order, so equal dumps
	// mean equal shapes
	if src.Dump() != dst.Dump() {
		return failf("copy differs from the original")
	}

	if err := verify(&dst); err != nil {
		return err
	}

	before := src.Dump()
	if root, ok := dst.Root(); ok {
		dst.Remove(root.ID)
	}
	if src.Dump() != before {
		return failf("changing the copy changed the original")
	}

	return nil
}

func assignEmpty(Params) error {
	var src, dst fleet.Fleet

	dst.Assign(&src)

	if !dst.Empty() {
		return failf("copy of an empty fleet is not empty")
	}

	return nil
}

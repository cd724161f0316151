package fleet

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Census counts the ships of each type.
// Types with no ships are absent from the map.
func (f *Fleet) Census() map[ShipType]int {
	return countBy(f, func(s Ship) ShipType { return s.Type })
}

// StateCensus counts the ships in each state.
func (f *Fleet) StateCensus() map[State]int {
	return countBy(f, func(s Ship) State { return s.State })
}

func countBy[K comparable](f *Fleet, key func(Ship) K) map[K]int {
	c := make(map[K]int)

	f.InOrder(func(s Ship) bool {
		c[key(s)]++
		return true
	})

	return c
}

// GroupByType returns the ships grouped by type. Groups are ordered
// by type and ships within a group by ID. Empty groups are left out.
func (f *Fleet) GroupByType() [][]Ship {
	groups := make(map[ShipType][]Ship)

	// in-order, so each group comes out sorted by ID
	f.InOrder(func(s Ship) bool {
		groups[s.Type] = append(groups[s.Type], s)
		return true
	})

	types := maps.Keys(groups)
	slices.Sort(types)

	out := make([][]Ship, len(types))
	for i, t := range types {
		out[i] = groups[t]
	}

	return out
}

package fleet

import (
	"math/rand"
)

// ShuffledIDs returns n distinct valid ship IDs in random order.
// n is capped at the number of valid IDs.
func ShuffledIDs(rd *rand.Rand, n int) []int {
	const span = MaxID - MinID + 1

	if n > span {
		n = span
	}
	if n < 0 {
		n = 0
	}

	// a partial Fisher-Yates over the whole range
	ids := make([]int, span)
	for i := range ids {
		ids[i] = MinID + i
	}

	for i := 0; i < n; i++ {
		j := i + rd.Intn(span-i)
		ids[i], ids[j] = ids[j], ids[i]
	}

	return ids[:n:n]
}

// RandomShip returns an alive ship of a random type with the given ID.
func RandomShip(rd *rand.Rand, id int) Ship {
	return Ship{
		ID:    id,
		Type:  ShipType(rd.Intn(numShipTypes)),
		State: Alive,
	}
}

// BuildRandom builds a fleet of the given discipline with num ships.
// IDs are distinct, valid and inserted in a random order.
// The seed is a parameter, which ensures repeatable results.
func BuildRandom(kind TreeType, num int, seed int64) *Fleet {
	rd := rand.New(rand.NewSource(seed))

	f := New(kind)
	for _, id := range ShuffledIDs(rd, num) {
		f.Insert(RandomShip(rd, id))
	}

	return f
}

package fleet

import (
	"fmt"
)

// Valid ship IDs are in [MinID, MaxID].
const (
	MinID = 10000
	MaxID = 99999
)

// InRange is true if id is a valid ship ID.
func InRange(id int) bool {
	return id >= MinID && id <= MaxID
}

type ShipType int

const (
	Cargo ShipType = iota
	Telescope
	Communicator
	FuelCarrier
	RoboCarrier

	numShipTypes = iota
)

func (t ShipType) Valid() bool {
	return t >= 0 && t < numShipTypes
}

func (t ShipType) String() string {
	switch t {
	case Cargo:
		return "CARGO"
	case Telescope:
		return "TELESCOPE"
	case Communicator:
		return "COMMUNICATOR"
	case FuelCarrier:
		return "FUELCARRIER"
	case RoboCarrier:
		return "ROBOCARRIER"
	default:
		return fmt.Sprintf("ShipType(%d)", int(t))
	}
}

type State int

const (
	Alive State = iota
	Lost
	Unknown
)

func (s State) Valid() bool {
	return s >= Alive && s <= Unknown
}

func (s State) String() string {
	switch s {
	case Alive:
		return "ALIVE"
	case Lost:
		return "LOST"
	case Unknown:
		return "UNKNOWN"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Ship is the record stored in a Fleet. Only ID takes part in
// ordering; Type and State are carried along.
type Ship struct {
	ID    int
	Type  ShipType
	State State
}

func (s Ship) String() string {
	return fmt.Sprintf("%d:%v:%v", s.ID, s.Type, s.State)
}

// shipData is what a node carries besides its key.
type shipData struct {
	typ   ShipType
	state State
}

func (s Ship) data() shipData {
	return shipData{typ: s.Type, state: s.State}
}

func shipOf(n *node) Ship {
	return Ship{
		ID:    n.Key,
		Type:  n.Extra.typ,
		State: n.Extra.state,
	}
}

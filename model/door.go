package model

// MinDoorWidth is the narrowest door the placement tool will commit, in world
// units.
const MinDoorWidth = 20.0

// OpeningDirection is the side a door sweeps open towards, relative to the
// hinge->frame baseline.
type OpeningDirection int

const (
	OpenRight OpeningDirection = iota
	OpenLeft
)

func (d OpeningDirection) String() string {
	if d == OpenLeft {
		return "left"
	}
	return "right"
}

// HingeSide says which wall end the hinge is closer to.
type HingeSide int

const (
	HingeStart HingeSide = iota
	HingeEnd
)

func (h HingeSide) String() string {
	if h == HingeEnd {
		return "end"
	}
	return "start"
}

// Door is an opening placed on a wall. WallID is a lookup into the plan's wall
// collection; the plan keeps it consistent by deleting dependent doors when
// their wall is deleted. Position is parametric along the wall, 0 at Start and
// 1 at End, and marks the center of the opening.
type Door struct {
	ID       int
	WallID   int
	Position float64
	Width    float64
	Opening  OpeningDirection
	Hinge    HingeSide
}

package model

import "github.com/jakecoffman/cp"

// Plan is the in-memory wall/door collection the editor works on. Entities get
// plan-scoped integer IDs starting at 1; 0 is never a valid ID.
type Plan struct {
	Walls []Wall
	Doors []Door

	nextID int
}

// NewPlan wraps externally supplied collections in a plan. The ID counter
// resumes past the highest ID present.
func NewPlan(walls []Wall, doors []Door) Plan {
	p := Plan{Walls: walls, Doors: doors}
	for _, w := range walls {
		if w.ID > p.nextID {
			p.nextID = w.ID
		}
	}
	for _, d := range doors {
		if d.ID > p.nextID {
			p.nextID = d.ID
		}
	}
	return p
}

// Clone returns a deep copy. Walls and doors are value types, so copying the
// slices is enough.
func (p Plan) Clone() Plan {
	c := p
	c.Walls = append([]Wall(nil), p.Walls...)
	c.Doors = append([]Door(nil), p.Doors...)
	return c
}

// AddWall assigns an ID and appends the wall, returning the stored copy.
func (p *Plan) AddWall(w Wall) Wall {
	p.nextID++
	w.ID = p.nextID
	p.Walls = append(p.Walls, w)
	return w
}

// AddDoor assigns an ID and appends the door, returning the stored copy.
func (p *Plan) AddDoor(d Door) Door {
	p.nextID++
	d.ID = p.nextID
	p.Doors = append(p.Doors, d)
	return d
}

// Wall looks up a wall by ID.
func (p *Plan) Wall(id int) (Wall, bool) {
	for _, w := range p.Walls {
		if w.ID == id {
			return w, true
		}
	}
	return Wall{}, false
}

// UpdateWall replaces the stored wall with the same ID.
func (p *Plan) UpdateWall(w Wall) bool {
	for i := range p.Walls {
		if p.Walls[i].ID == w.ID {
			p.Walls[i] = w
			return true
		}
	}
	return false
}

// DoorsOn returns the doors placed on the given wall.
func (p *Plan) DoorsOn(wallID int) []Door {
	var out []Door
	for _, d := range p.Doors {
		if d.WallID == wallID {
			out = append(out, d)
		}
	}
	return out
}

// RemoveWall deletes the wall and cascades to every door placed on it, so the
// plan never holds a door whose wall lookup fails.
func (p *Plan) RemoveWall(id int) bool {
	found := false
	walls := p.Walls[:0]
	for _, w := range p.Walls {
		if w.ID == id {
			found = true
			continue
		}
		walls = append(walls, w)
	}
	p.Walls = walls
	if !found {
		return false
	}
	doors := p.Doors[:0]
	for _, d := range p.Doors {
		if d.WallID != id {
			doors = append(doors, d)
		}
	}
	p.Doors = doors
	return true
}

// RemoveDoor deletes a door by ID.
func (p *Plan) RemoveDoor(id int) bool {
	for i, d := range p.Doors {
		if d.ID == id {
			p.Doors = append(p.Doors[:i], p.Doors[i+1:]...)
			return true
		}
	}
	return false
}

// WallAt hit-tests the plan: the wall whose centerline is closest to pt wins,
// as long as it is within maxDist.
func (p *Plan) WallAt(pt cp.Vector, maxDist float64) (Wall, bool) {
	best := Wall{}
	bestDist := maxDist
	found := false
	for _, w := range p.Walls {
		if d := w.DistanceTo(pt); d <= bestDist {
			best = w
			bestDist = d
			found = true
		}
	}
	return best, found
}

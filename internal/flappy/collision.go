package flappy

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether r and o overlap. Boxes that only share an
// edge do not overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Outcome is the result of a single Step.
type Outcome int

const (
	Running Outcome = iota
	Collided
	OutOfBounds
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Collided:
		return "collided"
	case OutOfBounds:
		return "out of bounds"
	}
	return "unknown"
}

// PipeBoxes returns the solid parts of a pipe: the box above the gap and
// the box below it, down to the bottom of the window.
func (t Tuning) PipeBoxes(p Position) (top, bottom Rect) {
	half := t.PipeGap / 2
	top = Rect{X: p.X, Y: 0, W: t.PipeWidth, H: p.Y - half}
	bottom = Rect{X: p.X, Y: p.Y + half, W: t.PipeWidth, H: t.WindowHeight - (p.Y + half)}
	return top, bottom
}

// PlayerBox returns the player's hit box. Position is its top-left corner.
func (t Tuning) PlayerBox(p Position) Rect {
	return Rect{X: p.X, Y: p.Y, W: t.PlayerSize, H: t.PlayerSize}
}

func (s *Session) checkCollisions() Outcome {
	player := *PositionComponent.Get(s.playerEntry())
	box := s.tuning.PlayerBox(player)
	for _, pipe := range *PipesComponent.Get(s.pipesEntry()) {
		top, bottom := s.tuning.PipeBoxes(pipe)
		if box.Intersects(top) || box.Intersects(bottom) {
			return Collided
		}
	}
	if player.Y < 0 || player.Y > s.tuning.WindowHeight {
		return OutOfBounds
	}
	return Running
}

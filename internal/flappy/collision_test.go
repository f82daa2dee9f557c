package flappy

import "testing"

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 100, Y: 200, W: 15, H: 15}
	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 90, Y: 0, W: 50, H: 210}, true},
		{"contained", Rect{X: 0, Y: 0, W: 500, H: 500}, true},
		{"above", Rect{X: 90, Y: 0, W: 50, H: 150}, false},
		{"touching left edge", Rect{X: 50, Y: 0, W: 50, H: 720}, false},
		{"touching bottom edge", Rect{X: 90, Y: 215, W: 50, H: 100}, false},
		{"right of", Rect{X: 116, Y: 200, W: 10, H: 10}, false},
	}
	for _, c := range cases {
		if got := a.Intersects(c.b); got != c.want {
			t.Fatalf("%s: Intersects = %v, want %v", c.name, got, c.want)
		}
		if got := c.b.Intersects(a); got != c.want {
			t.Fatalf("%s (swapped): Intersects = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestPipeBoxes(t *testing.T) {
	top, bottom := DefaultTuning().PipeBoxes(Position{X: 90, Y: 300})
	if top != (Rect{X: 90, Y: 0, W: 50, H: 250}) {
		t.Fatalf("top = %+v", top)
	}
	if bottom != (Rect{X: 90, Y: 350, W: 50, H: 370}) {
		t.Fatalf("bottom = %+v", bottom)
	}
}

// pipesAway keeps every pipe except the first far right of the player.
func pipesAway(first Position) []Position {
	return []Position{first, {X: 3000, Y: 300}, {X: 3100, Y: 300}, {X: 3200, Y: 300}, {X: 3300, Y: 300}}
}

func TestCheckCollisions(t *testing.T) {
	cases := []struct {
		name   string
		player Position
		pipe   Position
		want   Outcome
	}{
		{"hits top pipe", Position{X: 100, Y: 200}, Position{X: 90, Y: 300}, Collided},
		{"hits bottom pipe", Position{X: 100, Y: 200}, Position{X: 90, Y: 150}, Collided},
		{"through gap", Position{X: 100, Y: 200}, Position{X: 90, Y: 210}, Running},
		{"pipe passed", Position{X: 100, Y: 200}, Position{X: 40, Y: 600}, Running},
		{"above window", Position{X: 100, Y: -1}, Position{X: 2000, Y: 300}, OutOfBounds},
		{"below window", Position{X: 100, Y: 721}, Position{X: 2000, Y: 300}, OutOfBounds},
		{"on floor line", Position{X: 100, Y: 720}, Position{X: 2000, Y: 300}, Running},
		{"on ceiling line", Position{X: 100, Y: 0}, Position{X: 2000, Y: 300}, Running},
	}
	for _, c := range cases {
		s := NewSession(DefaultTuning(), fixedRand(0), nil)
		setPlayer(s, c.player, 0)
		setPipes(s, pipesAway(c.pipe))
		if got := s.checkCollisions(); got != c.want {
			t.Fatalf("%s: outcome = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestStepEndsOnCollision(t *testing.T) {
	s := NewSession(DefaultTuning(), fixedRand(0), nil)
	setPlayer(s, Position{X: 100, Y: 200}, 0)
	// After the frame the pipe sits at x=90 and its top box reaches y=250.
	setPipes(s, pipesAway(Position{X: 95, Y: 300}))

	if out := s.Step(false); out != Collided {
		t.Fatalf("outcome = %v, want collided", out)
	}
}

func TestStepEndsWhenFallingOut(t *testing.T) {
	s := NewSession(DefaultTuning(), fixedRand(0), nil)
	setPlayer(s, Position{X: 100, Y: 715}, 5)
	setPipes(s, pipesAway(Position{X: 2000, Y: 300}))

	if out := s.Step(false); out != OutOfBounds {
		t.Fatalf("outcome = %v, want out of bounds", out)
	}
}

func TestOutcomeString(t *testing.T) {
	if Collided.String() != "collided" || OutOfBounds.String() != "out of bounds" || Running.String() != "running" {
		t.Fatal("unexpected outcome names")
	}
}

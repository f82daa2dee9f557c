// Package flappy holds the game state of one play session and advances it
// frame by frame. It knows nothing about windows, input devices or drawing.
package flappy

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Rand is the random source used to place pipe gaps. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Session owns every entity of a game from start to game over.
type Session struct {
	tuning Tuning
	world  donburi.World
	player donburi.Entity
	pipes  donburi.Entity

	// lastPipe is the index of the most recently placed pipe; the next
	// recycled pipe is chained PipeDistance to its right.
	lastPipe int

	rng Rand
	log *zap.Logger
}

// NewSession spawns the player and the pipe set. The first pipe starts at
// the right edge of the window and the rest follow at PipeDistance.
func NewSession(t Tuning, rng Rand, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		tuning:   t,
		world:    donburi.NewWorld(),
		lastPipe: t.PipeCount - 1,
		rng:      rng,
		log:      log,
	}

	s.player = s.world.Create(PlayerTag, PositionComponent, VelocityComponent)
	player := s.world.Entry(s.player)
	PositionComponent.SetValue(player, Position{X: t.PlayerStartX, Y: t.PlayerStartY})
	VelocityComponent.SetValue(player, 0)

	pipes := make([]Position, t.PipeCount)
	for i := range pipes {
		x := t.WindowWidth
		if i > 0 {
			x = pipes[i-1].X + t.PipeDistance
		}
		pipes[i] = Position{X: x, Y: s.gapY()}
	}
	s.pipes = s.world.Create(PipeSetTag, PipesComponent)
	PipesComponent.SetValue(s.world.Entry(s.pipes), pipes)

	return s
}

// Step advances the session by one frame: player motion, pipe scrolling
// and recycling, then collision tests.
func (s *Session) Step(jump bool) Outcome {
	s.movePlayer(jump)
	s.scrollPipes()
	return s.checkCollisions()
}

func (s *Session) movePlayer(jump bool) {
	playerQuery.Each(s.world, func(e *donburi.Entry) {
		pos := PositionComponent.Get(e)
		vel := VelocityComponent.Get(e)
		*vel += Velocity(s.tuning.Gravity)
		if jump {
			*vel = Velocity(s.tuning.JumpImpulse)
		}
		pos.Y += float64(*vel)
	})
}

// scrollPipes moves every pipe left, then recycles the ones past the left
// edge in ascending index order. A pipe recycled earlier in the pass is the
// reference for the next one.
func (s *Session) scrollPipes() {
	pipeQuery.Each(s.world, func(e *donburi.Entry) {
		pipes := *PipesComponent.Get(e)
		for i := range pipes {
			pipes[i].X -= s.tuning.ScrollSpeed
		}
		for i := range pipes {
			if pipes[i].X >= -s.tuning.PipeWidth {
				continue
			}
			pipes[i] = Position{
				X: pipes[s.lastPipe].X + s.tuning.PipeDistance,
				Y: s.gapY(),
			}
			s.log.Debug("pipe recycled",
				zap.Int("pipe", i),
				zap.Int("after", s.lastPipe),
				zap.Float64("x", pipes[i].X),
				zap.Float64("gap_y", pipes[i].Y))
			s.lastPipe = i
		}
	})
}

// gapY draws a gap center from [GapMargin, WindowHeight-GapMargin) in whole
// pixels.
func (s *Session) gapY() float64 {
	span := int(s.tuning.WindowHeight - 2*s.tuning.GapMargin)
	return s.tuning.GapMargin + float64(s.rng.Intn(span))
}

func (s *Session) playerEntry() *donburi.Entry {
	if !s.world.Valid(s.player) {
		panic("flappy: player entity missing")
	}
	return s.world.Entry(s.player)
}

func (s *Session) pipesEntry() *donburi.Entry {
	if !s.world.Valid(s.pipes) {
		panic("flappy: pipe set entity missing")
	}
	return s.world.Entry(s.pipes)
}

// Tuning returns the constants the session was created with.
func (s *Session) Tuning() Tuning { return s.tuning }

// Player returns the player's position and velocity.
func (s *Session) Player() (Position, Velocity) {
	e := s.playerEntry()
	return *PositionComponent.Get(e), *VelocityComponent.Get(e)
}

// Pipes returns a copy of the pipe positions in index order.
func (s *Session) Pipes() []Position {
	pipes := *PipesComponent.Get(s.pipesEntry())
	out := make([]Position, len(pipes))
	copy(out, pipes)
	return out
}

// LastPipe returns the index of the most recently placed pipe.
func (s *Session) LastPipe() int { return s.lastPipe }

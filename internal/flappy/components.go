package flappy

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Position is a world-space point. For pipes Y is the center of the gap.
type Position struct {
	X, Y float64
}

// Velocity is the player's vertical speed, positive when falling.
type Velocity float64

var (
	PlayerTag         = donburi.NewTag()
	PipeSetTag        = donburi.NewTag()
	PositionComponent = donburi.NewComponentType[Position]()
	VelocityComponent = donburi.NewComponentType[Velocity]()
	PipesComponent    = donburi.NewComponentType[[]Position]()
)

var (
	playerQuery = donburi.NewQuery(filter.Contains(PlayerTag, PositionComponent, VelocityComponent))
	pipeQuery   = donburi.NewQuery(filter.Contains(PipeSetTag, PipesComponent))
)

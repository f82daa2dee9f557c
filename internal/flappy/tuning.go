package flappy

// Tuning holds the constants of one session. Distances are in window
// pixels, speeds in pixels per frame.
type Tuning struct {
	WindowWidth  float64
	WindowHeight float64

	PlayerStartX float64
	PlayerStartY float64
	PlayerSize   float64
	Gravity      float64 // added to velocity every frame
	JumpImpulse  float64 // velocity is reset to this on jump

	PipeCount    int
	PipeWidth    float64
	PipeDistance float64 // horizontal spacing between chained pipes
	PipeGap      float64 // full height of the opening
	ScrollSpeed  float64
	GapMargin    float64 // gap centers stay this far from the top and bottom
}

// DefaultTuning returns the stock game constants.
func DefaultTuning() Tuning {
	return Tuning{
		WindowWidth:  1280,
		WindowHeight: 720,

		PlayerStartX: 100,
		PlayerStartY: 200,
		PlayerSize:   15,
		Gravity:      0.8,
		JumpImpulse:  -10,

		PipeCount:    5,
		PipeWidth:    50,
		PipeDistance: 550,
		PipeGap:      100,
		ScrollSpeed:  5,
		GapMargin:    100,
	}
}

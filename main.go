package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/flappy"
)

// this struct implements ebiten.Game interface
type Game struct {
	session *flappy.Session
	tuning  flappy.Tuning
	log     *zap.Logger
	frames  int
}

func NewGame(t flappy.Tuning, rng flappy.Rand, log *zap.Logger) *Game {
	return &Game{
		session: flappy.NewSession(t, rng, log.Named("session")),
		tuning:  t,
		log:     log,
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.log.Info("quit", zap.Int("frames", g.frames))
		return ebiten.Termination
	}

	jump := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
	g.frames++
	if out := g.session.Step(jump); out != flappy.Running {
		pos, vel := g.session.Player()
		g.log.Info("game over",
			zap.Stringer("reason", out),
			zap.Int("frames", g.frames),
			zap.Float64("y", pos.Y),
			zap.Float64("velocity", float64(vel)))
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	for _, pipe := range g.session.Pipes() {
		top, bottom := g.tuning.PipeBoxes(pipe)
		FillRect(screen, top, pipeColor)
		FillRect(screen, bottom, pipeColor)
	}
	pos, _ := g.session.Player()
	FillCircle(screen, pos, g.tuning.PlayerSize, playerColor)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.tuning.WindowWidth), int(g.tuning.WindowHeight)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	seed := cfg.Session.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := NewGame(cfg.Tuning(), rand.New(rand.NewSource(seed)), log)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	log.Info("session start",
		zap.String("title", cfg.Window.Title),
		zap.Int("pipes", cfg.Pipes.Count),
		zap.Int64("seed", seed))

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// loadConfig reads FLAPPY_CONFIG when set, otherwise the embedded defaults.
func loadConfig() (*config.Config, error) {
	if p := os.Getenv("FLAPPY_CONFIG"); p != "" {
		return config.Load(p)
	}
	return config.Parse(Default_toml, config.TOML)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// Package blockfall implements a falling-block puzzle game with score-based
// piece unlocks. The deterministic simulation lives in the engine
// subpackage; this package adapts it to the platform's game interface.
package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// fxSeedSalt decorrelates the presentation RNG from the gameplay stream so
// particle effects can never influence piece selection.
const fxSeedSalt = 0x9e3779b9

// bannerDurationTicks is how long unlock banners stay on screen.
const bannerDurationTicks = 120

// Package-level settings applied before game creation (set by the CLI).
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path for the next game instance.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game instance.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// Game adapts the blockfall engine to the platform game interface.
type Game struct {
	eng    *engine.Engine
	cfg    core.RuntimeConfig
	params engine.Params

	// Presentation-only state.
	fx          *engine.RNG
	particles   []engine.Particle
	banner      string
	bannerTicks int

	highScore    int
	newHighScore bool
}

// New creates a new blockfall game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blockfall"
}

// EngineParams resolves the engine parameters the game would run with,
// honoring the configured path and difficulty preset. Used by the replay
// verifier, which must simulate with the same rules as live play.
func EngineParams() engine.Params {
	bcfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		bcfg = config.DefaultBlockfallConfig()
	}
	if config.KnownPreset(difficultyPreset) {
		config.ApplyBlockfallPreset(&bcfg, difficultyPreset)
	}
	return paramsFromConfig(bcfg)
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.params = EngineParams()

	g.eng = engine.New(g.params)
	g.eng.SetHighScore(g.highScore)
	g.eng.Start(cfg.Seed)

	g.fx = engine.NewRNG(cfg.Seed ^ fxSeedSalt)
	g.particles = nil
	g.banner = ""
	g.bannerTicks = 0
	g.newHighScore = false
}

// paramsFromConfig converts the YAML configuration into engine parameters.
func paramsFromConfig(cfg config.BlockfallConfig) engine.Params {
	return engine.Params{
		BaseGravityMS: cfg.Gravity.BaseDelayMS,
		MinGravityMS:  cfg.Gravity.MinDelayMS,
		GravitySlope:  cfg.Gravity.Slope,
		TimeDivisorMS: cfg.Gravity.TimeDivisorMS,
		ScoreDivisor:  cfg.Gravity.ScoreDivisor,
		LevelEase:     cfg.Gravity.LevelEase,

		LockDelayMS:       cfg.Lock.DelayMS,
		FloatLockDelayMS:  cfg.Lock.FloatDelayMS,
		DangerLockDelayMS: cfg.Lock.DangerDelayMS,
		MaxLockMS:         cfg.Lock.MaxTotalMS,

		ClearDelayMS: cfg.Clear.DelayMS,

		UnlockStep:  cfg.Progression.UnlockStep,
		Progression: cfg.Progression.Enabled,

		FloatChance:   cfg.Pieces.FloatChance,
		SpecialWeight: cfg.Pieces.SpecialWeight,
		FloatBudget:   cfg.Pieces.FloatBudget,

		SoftDropPoint: cfg.Scoring.SoftDropPoint,
		HardDropPoint: cfg.Scoring.HardDropPoint,
		ComboBonus:    cfg.Scoring.ComboBonus,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng == nil {
		return core.StepResult{State: g.State()}
	}
	s := g.eng.State()

	if s.Phase != engine.PhaseGameOver {
		if in.Has(core.ActionPause) {
			g.eng.TogglePause()
		}
		if in.Has(core.ActionLeft) {
			g.eng.Move(-1, 0)
		}
		if in.Has(core.ActionRight) {
			g.eng.Move(1, 0)
		}
		if in.Has(core.ActionSoftDrop) {
			g.eng.Move(0, 1)
		}
		if in.Has(core.ActionUp) {
			g.eng.PressUp()
		}
		if in.Has(core.ActionRotateCW) {
			g.eng.Rotate(1)
		}
		if in.Has(core.ActionRotateCCW) {
			g.eng.Rotate(-1)
		}
		if in.Has(core.ActionHardDrop) {
			g.eng.HardDrop()
		}
		if in.Has(core.ActionHold) {
			g.eng.Hold()
		}
	}

	g.eng.Tick(g.cfg.TickMillis())
	g.consumeEvents()
	g.particles = engine.Advance(g.particles, g.cfg.TickMillis()/1000.0)
	if g.bannerTicks > 0 {
		g.bannerTicks--
		if g.bannerTicks == 0 {
			g.banner = ""
		}
	}

	return core.StepResult{State: g.State()}
}

// consumeEvents drains the engine's side-effect buffer into presentation
// state: particle bursts for clears, banners for unlocks.
func (g *Game) consumeEvents() {
	ev := g.eng.Drain()
	for _, ce := range ev.Cleared {
		g.particles = append(g.particles, engine.Burst(ce, g.fx)...)
	}
	for _, u := range ev.Unlocks {
		if u.Kind == engine.KindNone {
			g.banner = "LEVEL UP!"
		} else {
			g.banner = u.Kind.String() + " UNLOCKED!"
		}
		g.bannerTicks = bannerDurationTicks
	}
	if ev.NewHighScore {
		g.newHighScore = true
		g.highScore = g.eng.HighScore()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	s := g.eng.State()
	return core.GameState{
		Score:    s.Score,
		GameOver: s.Phase == engine.PhaseGameOver,
		Paused:   s.Phase == engine.PhasePaused,
	}
}

// SetHighScore installs the persisted baseline shown in the HUD and used
// for new-record detection. Called by the platform before Reset.
func (g *Game) SetHighScore(v int) {
	g.highScore = v
	if g.eng != nil {
		g.eng.SetHighScore(v)
	}
}

// Proof finalizes the current game into a verifiable replay record.
func (g *Game) Proof() engine.Proof {
	return g.eng.Proof(g.ID(), g.cfg.TickMillis())
}

// Register the game with the registry
func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
}

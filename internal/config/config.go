// Package config provides YAML-based game configuration loading and
// difficulty presets for the blockfall platform.
package config

// BlockfallConfig contains all tunables for the falling-block game.
type BlockfallConfig struct {
	Gravity     GravityConfig     `yaml:"gravity"`
	Lock        LockConfig        `yaml:"lock"`
	Clear       ClearConfig       `yaml:"clear"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Pieces      PiecesConfig      `yaml:"pieces"`
	Progression ProgressionConfig `yaml:"progression"`
}

// GravityConfig defines the fall-speed curve. Delay per row is
// max(min_delay_ms, base_delay_ms - pressure*slope) eased by level_ease per
// level, where pressure is the larger of elapsed/time_divisor_ms and
// score/score_divisor.
type GravityConfig struct {
	BaseDelayMS   float64 `yaml:"base_delay_ms"`
	MinDelayMS    float64 `yaml:"min_delay_ms"`
	Slope         float64 `yaml:"slope"`
	TimeDivisorMS float64 `yaml:"time_divisor_ms"`
	ScoreDivisor  float64 `yaml:"score_divisor"`
	LevelEase     float64 `yaml:"level_ease"`
}

// LockConfig defines the lock-delay windows in milliseconds.
type LockConfig struct {
	DelayMS       float64 `yaml:"delay_ms"`
	FloatDelayMS  float64 `yaml:"float_delay_ms"`
	DangerDelayMS float64 `yaml:"danger_delay_ms"`
	MaxTotalMS    float64 `yaml:"max_total_ms"`
}

// ClearConfig defines the line-clear animation timing.
type ClearConfig struct {
	DelayMS float64 `yaml:"delay_ms"`
}

// ScoringConfig defines drop and combo point values.
type ScoringConfig struct {
	SoftDropPoint int `yaml:"soft_drop_point"`
	HardDropPoint int `yaml:"hard_drop_point"`
	ComboBonus    int `yaml:"combo_bonus"`
}

// PiecesConfig defines the piece-selection policy.
type PiecesConfig struct {
	FloatChance   float64 `yaml:"float_chance"`
	SpecialWeight float64 `yaml:"special_weight"`
	FloatBudget   int     `yaml:"float_budget"`
}

// ProgressionConfig defines how unlocks and levels advance.
type ProgressionConfig struct {
	Enabled    bool `yaml:"enabled"`
	UnlockStep int  `yaml:"unlock_step"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// KnownPreset returns true for a recognized preset name.
func KnownPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

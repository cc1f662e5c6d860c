package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default blockfall configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Gravity: GravityConfig{
			BaseDelayMS:   1000,
			MinDelayMS:    50,
			Slope:         3,
			TimeDivisorMS: 2000,
			ScoreDivisor:  200,
			LevelEase:     1.05,
		},
		Lock: LockConfig{
			DelayMS:       500,
			FloatDelayMS:  600,
			DangerDelayMS: 1000,
			MaxTotalMS:    5000,
		},
		Clear: ClearConfig{
			DelayMS: 300,
		},
		Scoring: ScoringConfig{
			SoftDropPoint: 1,
			HardDropPoint: 2,
			ComboBonus:    50,
		},
		Pieces: PiecesConfig{
			FloatChance:   0.07,
			SpecialWeight: 0.5,
			FloatBudget:   7,
		},
		Progression: ProgressionConfig{
			Enabled:    true,
			UnlockStep: 3000,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blockfall":
		return defaultBlockfallYAML
	default:
		return nil
	}
}

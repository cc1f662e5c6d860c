package engine

// Params holds every tunable the simulation reads. All durations are in
// milliseconds. Zero values are not usable; start from DefaultParams.
type Params struct {
	// Gravity. Effective delay per cell is
	//   max(MinGravityMS, BaseGravityMS - pressure*GravitySlope) * LevelEase^(level-1)
	// where pressure = max(elapsed/TimeDivisorMS, score/ScoreDivisor).
	BaseGravityMS float64
	MinGravityMS  float64
	GravitySlope  float64
	TimeDivisorMS float64
	ScoreDivisor  float64
	LevelEase     float64

	// Lock timing.
	LockDelayMS       float64
	FloatLockDelayMS  float64
	DangerLockDelayMS float64
	MaxLockMS         float64

	// Clear animation.
	ClearDelayMS float64

	// Progression.
	UnlockStep  int
	Progression bool

	// Piece selection.
	FloatChance   float64
	SpecialWeight float64
	FloatBudget   int

	// Scoring.
	SoftDropPoint int
	HardDropPoint int
	ComboBonus    int
}

// DefaultParams returns the standard ruleset.
func DefaultParams() Params {
	return Params{
		BaseGravityMS: 1000,
		MinGravityMS:  50,
		GravitySlope:  3,
		TimeDivisorMS: 2000,
		ScoreDivisor:  200,
		LevelEase:     1.05,

		LockDelayMS:       500,
		FloatLockDelayMS:  600,
		DangerLockDelayMS: 1000,
		MaxLockMS:         5000,

		ClearDelayMS: 300,

		UnlockStep:  3000,
		Progression: true,

		FloatChance:   0.07,
		SpecialWeight: 0.5,
		FloatBudget:   7,

		SoftDropPoint: 1,
		HardDropPoint: 2,
		ComboBonus:    50,
	}
}

// LineValues maps cleared-line count to base score, multiplied by level at
// award time. Index 0 is unused.
var LineValues = [5]int{0, 100, 300, 500, 800}

package engine

// Sound identifies a sound-trigger the engine emits at well-defined points.
// The engine never synthesizes audio; sinks decide what (if anything) to do.
type Sound int

const (
	SoundNone Sound = iota
	SoundMove
	SoundRotate
	SoundDrop
	SoundLand
	SoundLock
	SoundClear
	SoundHold
	SoundUnlock
	SoundGameOver
	SoundPause
	SoundDenied
)

// String returns a short identifier for the sound.
func (s Sound) String() string {
	switch s {
	case SoundMove:
		return "move"
	case SoundRotate:
		return "rotate"
	case SoundDrop:
		return "drop"
	case SoundLand:
		return "land"
	case SoundLock:
		return "lock"
	case SoundClear:
		return "clear"
	case SoundHold:
		return "hold"
	case SoundUnlock:
		return "unlock"
	case SoundGameOver:
		return "gameover"
	case SoundPause:
		return "pause"
	case SoundDenied:
		return "denied"
	default:
		return "none"
	}
}

// SoundEvent is a fire-and-forget audio trigger. Lines carries the cleared
// line count for SoundClear and is zero otherwise.
type SoundEvent struct {
	Sound Sound
	Lines int
}

// ClearEvent is emitted exactly once per clearing event, at the moment full
// lines are detected: the cleared row indices plus a snapshot of their
// pre-removal colors. This is the particle generator's trigger contract.
type ClearEvent struct {
	Rows   []int
	Colors [][]Color
}

// UnlockEvent is emitted when a score milestone unlocks a piece kind.
// Kind is KindNone when the unlock list is already exhausted (the level
// still advances).
type UnlockEvent struct {
	Kind  Kind
	Level int
}

// Events accumulates everything the engine emitted since the last drain.
// Side effects are buffered rather than called inline so that slow sinks
// can never block a tick.
type Events struct {
	Sounds       []SoundEvent
	Cleared      []ClearEvent
	Unlocks      []UnlockEvent
	NewHighScore bool
}

func (ev *Events) sound(s Sound) {
	ev.Sounds = append(ev.Sounds, SoundEvent{Sound: s})
}

func (ev *Events) clear(rows []int, colors [][]Color) {
	ev.Sounds = append(ev.Sounds, SoundEvent{Sound: SoundClear, Lines: len(rows)})
	ev.Cleared = append(ev.Cleared, ClearEvent{Rows: rows, Colors: colors})
}

package engine

import (
	"fmt"
	"hash/fnv"
)

// Phase is the top-level state of the simulation.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseClearing
	PhasePaused
	PhaseGameOver
)

// String returns a short name for logs and proofs.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseClearing:
		return "clearing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the complete simulation state. Everything the renderer or a
// checkpoint needs lives here; the engine holds no hidden fields beyond the
// RNG stream and the recorder.
type State struct {
	Phase Phase

	Board   Board
	Current *Piece
	Next    *Piece
	Held    *Piece
	CanHold bool

	// DeathPiece is the piece drawn frozen above the well after a death
	// lock. It is cosmetic; it is never placed into Board rows below zero.
	DeathPiece *Piece

	Score        int
	Lines        int
	Level        int
	Combo        int
	PiecesPlaced int

	Unlocked   map[Kind]bool
	Milestones int

	// Timers, all milliseconds.
	GravityAcc    float64
	LockTimer     float64
	TotalLockTime float64
	ClearTimer    float64
	ElapsedMS     float64

	// DangerSpawn marks the current piece as having spawned into an
	// occupied cell with at least one escape move available.
	DangerSpawn bool

	// ClearingRows are the rows awaiting removal while Phase==PhaseClearing.
	ClearingRows []int

	// Generation counts spawned pieces, Frame counts simulation ticks.
	Generation int
	Frame      uint64
}

func newState() *State {
	return &State{
		Phase:    PhaseMenu,
		Board:    NewBoard(),
		Level:    1,
		CanHold:  true,
		Unlocked: map[Kind]bool{},
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Board = s.Board.Clone()
	c.Current = s.Current.Clone()
	c.Next = s.Next.Clone()
	c.Held = s.Held.Clone()
	c.DeathPiece = s.DeathPiece.Clone()
	c.Unlocked = make(map[Kind]bool, len(s.Unlocked))
	for k, v := range s.Unlocked {
		c.Unlocked[k] = v
	}
	c.ClearingRows = append([]int(nil), s.ClearingRows...)
	return &c
}

// Hash folds the observable state into a 64-bit digest. It is order-stable
// across runs and is what replay proofs commit to.
func (s *State) Hash() uint64 {
	h := fnv.New64a()
	write := func(vals ...int64) {
		var buf [8]byte
		for _, v := range vals {
			u := uint64(v)
			for i := 0; i < 8; i++ {
				buf[i] = byte(u >> (8 * i))
			}
			h.Write(buf[:])
		}
	}
	write(int64(s.Phase), int64(s.Score), int64(s.Lines), int64(s.Level),
		int64(s.Combo), int64(s.PiecesPlaced), int64(s.Generation), int64(s.Frame))
	write(int64(s.Board.Hash()))
	hashPiece := func(p *Piece) {
		if p == nil {
			write(-1)
			return
		}
		write(int64(p.Kind), int64(p.X), int64(p.Y), int64(p.Rot), int64(p.Variant), int64(p.UpMoves))
	}
	hashPiece(s.Current)
	hashPiece(s.Next)
	hashPiece(s.Held)
	return h.Sum64()
}

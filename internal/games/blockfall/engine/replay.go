package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ActionKind tags a recorded command.
type ActionKind int

const (
	ActMove ActionKind = iota
	ActRotate
	ActHardDrop
	ActHold
	ActPause
	ActUp
)

// Action is one recorded command with only the fields its kind needs.
type Action struct {
	Kind ActionKind `json:"k"`
	DX   int        `json:"dx,omitempty"`
	DY   int        `json:"dy,omitempty"`
	Dir  int        `json:"d,omitempty"`
}

// TimedAction pins an action to the simulation frame it was issued on.
type TimedAction struct {
	Frame uint64 `json:"f"`
	Action
}

// Recorder accumulates the ordered action log for one game.
type Recorder struct {
	seed    int64
	actions []TimedAction
}

// NewRecorder starts an empty log for the given seed.
func NewRecorder(seed int64) *Recorder {
	return &Recorder{seed: seed}
}

// Record appends one action at the given frame.
func (r *Recorder) Record(frame uint64, a Action) {
	r.actions = append(r.actions, TimedAction{Frame: frame, Action: a})
}

// Len returns the number of recorded actions.
func (r *Recorder) Len() int { return len(r.actions) }

// Proof is the portable outcome record: seed plus action log plus the final
// figures, checksummed so a verifier can detect tampering before replaying.
type Proof struct {
	Version    int           `json:"version"`
	GameID     string        `json:"game_id"`
	Seed       int64         `json:"seed"`
	TickMS     float64       `json:"tick_ms"`
	Actions    []TimedAction `json:"actions"`
	FinalFrame uint64        `json:"final_frame"`
	FinalScore int           `json:"final_score"`
	FinalLines int           `json:"final_lines"`
	BoardHash  uint64        `json:"board_hash"`
	Checksum   string        `json:"checksum"`
}

const proofVersion = 1

// Proof finalizes the current game into a verifiable record. tickMS must be
// the fixed timestep the host loop used.
func (e *Engine) Proof(gameID string, tickMS float64) Proof {
	s := e.state
	p := Proof{
		Version:    proofVersion,
		GameID:     gameID,
		Seed:       e.seed,
		TickMS:     tickMS,
		Actions:    append([]TimedAction(nil), e.recorder.actions...),
		FinalFrame: s.Frame,
		FinalScore: s.Score,
		FinalLines: s.Lines,
		BoardHash:  s.Hash(),
	}
	p.Checksum = p.checksum()
	return p
}

func (p Proof) checksum() string {
	q := p
	q.Checksum = ""
	raw, _ := json.Marshal(q)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Replay reconstructs the final state from a proof under the given ruleset:
// tick up to each logged frame, apply the action, then tick out to the final
// frame. The returned engine holds the reconstructed state.
func Replay(p Proof, params Params) (*Engine, error) {
	if p.TickMS <= 0 {
		return nil, fmt.Errorf("replay: invalid tick interval %v", p.TickMS)
	}
	e := New(params)
	e.Start(p.Seed)
	for _, ta := range p.Actions {
		if ta.Frame < e.state.Frame {
			return nil, fmt.Errorf("replay: action log out of order at frame %d", ta.Frame)
		}
		for e.state.Frame < ta.Frame {
			if e.state.Phase == PhaseGameOver {
				return nil, fmt.Errorf("replay: game ended at frame %d before logged action at frame %d", e.state.Frame, ta.Frame)
			}
			e.Tick(p.TickMS)
		}
		e.apply(ta.Action)
	}
	for e.state.Frame < p.FinalFrame && e.state.Phase != PhaseGameOver {
		e.Tick(p.TickMS)
	}
	return e, nil
}

// Verify replays the proof and checks its checksum and final figures against
// the reconstruction.
func Verify(p Proof, params Params) error {
	if p.Checksum != p.checksum() {
		return fmt.Errorf("verify: checksum mismatch")
	}
	e, err := Replay(p, params)
	if err != nil {
		return err
	}
	s := e.State()
	if s.Score != p.FinalScore {
		return fmt.Errorf("verify: score %d, proof says %d", s.Score, p.FinalScore)
	}
	if s.Lines != p.FinalLines {
		return fmt.Errorf("verify: lines %d, proof says %d", s.Lines, p.FinalLines)
	}
	if h := s.Hash(); h != p.BoardHash {
		return fmt.Errorf("verify: state hash %x, proof says %x", h, p.BoardHash)
	}
	return nil
}

// apply dispatches a logged action through the unrecorded internal paths so
// replaying does not re-record.
func (e *Engine) apply(a Action) {
	if !e.acceptsCommands() && a.Kind != ActPause {
		return
	}
	switch a.Kind {
	case ActMove:
		e.move(a.DX, a.DY)
	case ActRotate:
		e.rotate(a.Dir)
	case ActHardDrop:
		e.hardDrop()
	case ActHold:
		e.hold()
	case ActPause:
		e.togglePause()
	case ActUp:
		e.pressUp()
	}
}

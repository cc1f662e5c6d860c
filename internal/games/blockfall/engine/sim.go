package engine

// Engine is the deterministic falling-block simulation. It is single
// threaded by contract: the host loop calls Tick at a fixed logical rate and
// all command methods run to completion between ticks. The engine emits side
// effects only through the Events buffer, drained by the caller after each
// advance.
type Engine struct {
	params Params
	state  *State
	rng    *RNG
	seed   int64

	snapshot *State
	recorder *Recorder
	events   Events

	highScore int
}

// checkpointInterval is how many frames pass between snapshot validations.
const checkpointInterval = 60

// New returns an engine in the menu phase. Call Start to begin a game.
func New(params Params) *Engine {
	return &Engine{
		params:   params,
		state:    newState(),
		rng:      NewRNG(0),
		recorder: NewRecorder(0),
	}
}

// State returns the live simulation state. Callers must treat it as
// read-only; mutating it bypasses the recorder and breaks replay.
func (e *Engine) State() *State { return e.state }

// Params returns the active ruleset.
func (e *Engine) Params() Params { return e.params }

// Seed returns the seed of the current game.
func (e *Engine) Seed() int64 { return e.seed }

// SetHighScore installs the persisted baseline the engine compares against
// at game over. Call before or right after Start.
func (e *Engine) SetHighScore(v int) { e.highScore = v }

// HighScore returns the current baseline, which may have been raised by a
// finished game.
func (e *Engine) HighScore() int { return e.highScore }

// Drain returns all events emitted since the previous drain and clears the
// buffer.
func (e *Engine) Drain() Events {
	ev := e.events
	e.events = Events{}
	return ev
}

// Start resets everything and begins a new game with the given seed: fresh
// board, reseeded random stream, cleared action log, two spawned pieces.
func (e *Engine) Start(seed int64) {
	e.seed = seed
	e.rng = NewRNG(seed)
	e.recorder = NewRecorder(seed)
	e.state = newState()
	for _, k := range StandardKinds {
		e.state.Unlocked[k] = true
	}
	e.state.Unlocked[KindFloat] = true
	e.state.Next = e.drawPiece()
	e.snapshot = nil
	e.spawnNext()
}

// Tick advances the simulation by dtMS milliseconds of logical time. The
// host calls it at a fixed rate; dt must be the same every call for replays
// to reproduce.
func (e *Engine) Tick(dtMS float64) {
	s := e.state
	if s.Phase == PhaseMenu || s.Phase == PhaseGameOver {
		return
	}
	s.Frame++
	if s.Frame%checkpointInterval == 0 {
		e.checkpoint()
		s = e.state
	}
	if s.Phase == PhasePaused {
		return
	}
	s.ElapsedMS += dtMS

	switch s.Phase {
	case PhaseFalling:
		e.tickFalling(dtMS)
	case PhaseLocking:
		e.tickLocking(dtMS)
	case PhaseClearing:
		e.tickClearing(dtMS)
	}
}

// GravityDelayMS is the effective per-row fall delay right now. Exposed for
// display smoothing; it is a pure derivation of state. With progression
// disabled the delay stays pinned at the base value: no time or score
// pressure, no level easing.
func (e *Engine) GravityDelayMS() float64 {
	delay := e.params.BaseGravityMS
	if e.params.Progression {
		s := e.state
		pressure := s.ElapsedMS / e.params.TimeDivisorMS
		if sp := float64(s.Score) / e.params.ScoreDivisor; sp > pressure {
			pressure = sp
		}
		delay -= pressure * e.params.GravitySlope
	}
	if delay < e.params.MinGravityMS {
		delay = e.params.MinGravityMS
	}
	if e.params.Progression {
		for i := 1; i < e.state.Level; i++ {
			delay *= e.params.LevelEase
		}
	}
	return delay
}

// CanFall reports whether the current piece has room to descend one row.
func (e *Engine) CanFall() bool {
	s := e.state
	if s.Current == nil {
		return false
	}
	return s.Board.Fits(s.Current.Shape, s.Current.X, s.Current.Y+1)
}

func (e *Engine) tickFalling(dtMS float64) {
	s := e.state
	s.GravityAcc += dtMS
	delay := e.GravityDelayMS()
	if s.GravityAcc < delay {
		return
	}
	s.GravityAcc = 0
	if e.CanFall() {
		s.Current.Y++
		if !e.CanFall() {
			e.enterLocking()
			e.events.sound(SoundLand)
		}
		return
	}
	e.enterLocking()
	e.events.sound(SoundLand)
}

func (e *Engine) tickLocking(dtMS float64) {
	s := e.state
	if e.CanFall() {
		s.Phase = PhaseFalling
		s.GravityAcc = 0
		return
	}
	s.LockTimer += dtMS
	s.TotalLockTime += dtMS
	if s.TotalLockTime >= e.params.MaxLockMS {
		e.lockPiece()
		return
	}
	if s.LockTimer >= e.lockDelayMS() {
		e.lockPiece()
	}
}

func (e *Engine) tickClearing(dtMS float64) {
	s := e.state
	s.ClearTimer += dtMS
	if s.ClearTimer >= e.params.ClearDelayMS {
		e.finalizeClear()
	}
}

func (e *Engine) lockDelayMS() float64 {
	s := e.state
	switch {
	case s.DangerSpawn:
		return e.params.DangerLockDelayMS
	case s.Current != nil && s.Current.Kind == KindFloat:
		return e.params.FloatLockDelayMS
	default:
		return e.params.LockDelayMS
	}
}

// enterLocking starts a fresh locking window. TotalLockTime is reset here
// and only here, so move and rotate extensions cannot stall a piece past
// MaxLockMS within one window.
func (e *Engine) enterLocking() {
	s := e.state
	s.Phase = PhaseLocking
	s.LockTimer = 0
	s.TotalLockTime = 0
}

// afterShift re-evaluates falling vs locking after a successful move or
// rotate. A piece that can fall again returns to FALLING; one still grounded
// gets its lock timer (but not the total-lock ceiling) reset.
func (e *Engine) afterShift() {
	s := e.state
	if e.CanFall() {
		if s.Phase == PhaseLocking {
			s.Phase = PhaseFalling
			s.GravityAcc = 0
		}
		return
	}
	switch s.Phase {
	case PhaseFalling:
		e.enterLocking()
		e.events.sound(SoundLand)
	case PhaseLocking:
		s.LockTimer = 0
	}
}

// Move shifts the current piece by (dx,dy) if the target fits, recording the
// command for replay. It reports whether the move was applied.
func (e *Engine) Move(dx, dy int) bool {
	if !e.acceptsCommands() {
		return false
	}
	e.recorder.Record(e.state.Frame, Action{Kind: ActMove, DX: dx, DY: dy})
	return e.move(dx, dy)
}

func (e *Engine) move(dx, dy int) bool {
	s := e.state
	p := s.Current
	if p == nil {
		return false
	}
	if dy < 0 {
		if p.Kind != KindFloat || p.UpMoves >= e.params.FloatBudget {
			e.events.sound(SoundDenied)
			return false
		}
	}
	if !s.Board.Fits(p.Shape, p.X+dx, p.Y+dy) {
		// A float blocked sideways may slip one row down instead,
		// letting it slide off ledges.
		if p.Kind == KindFloat && dy == 0 && dx != 0 &&
			s.Board.Fits(p.Shape, p.X+dx, p.Y+1) {
			p.X += dx
			p.Y++
			s.GravityAcc = 0
			e.events.sound(SoundMove)
			e.afterShift()
			return true
		}
		e.events.sound(SoundDenied)
		return false
	}
	p.X += dx
	p.Y += dy
	if dy != 0 {
		s.GravityAcc = 0
	}
	if dy < 0 {
		p.UpMoves++
	}
	if dy > 0 {
		s.Score += e.params.SoftDropPoint * dy
		e.checkUnlocks()
	}
	e.events.sound(SoundMove)
	e.afterShift()
	return true
}

// Rotate turns the current piece by dir (+1 clockwise, -1 counter-clockwise)
// with wall kicks, recording the command. It reports success.
func (e *Engine) Rotate(dir int) bool {
	if !e.acceptsCommands() {
		return false
	}
	e.recorder.Record(e.state.Frame, Action{Kind: ActRotate, Dir: dir})
	return e.rotate(dir)
}

func (e *Engine) rotate(dir int) bool {
	s := e.state
	p := s.Current
	if p == nil {
		return false
	}
	if p.Kind == KindO {
		e.events.sound(SoundRotate)
		return true
	}
	rotated := p.Shape.Rotated(dir)
	to := ((p.Rot+dir)%4 + 4) % 4
	for _, k := range KickOffsets(p.Kind, p.Rot, to) {
		if s.Board.Fits(rotated, p.X+k.DX, p.Y+k.DY) {
			p.Shape = rotated
			p.X += k.DX
			p.Y += k.DY
			p.Rot = to
			e.events.sound(SoundRotate)
			e.afterShift()
			return true
		}
	}
	e.events.sound(SoundDenied)
	return false
}

// HardDrop slams the current piece to its landing row and locks it
// immediately, awarding distance points.
func (e *Engine) HardDrop() bool {
	if !e.acceptsCommands() {
		return false
	}
	e.recorder.Record(e.state.Frame, Action{Kind: ActHardDrop})
	return e.hardDrop()
}

func (e *Engine) hardDrop() bool {
	s := e.state
	p := s.Current
	if p == nil {
		return false
	}
	landing := s.Board.DropRow(p.Shape, p.X, p.Y)
	dist := landing - p.Y
	p.Y = landing
	if dist > 0 {
		s.Score += e.params.HardDropPoint * dist
		e.checkUnlocks()
	}
	e.events.sound(SoundDrop)
	e.lockPiece()
	return true
}

// Hold swaps the current piece with the held one (or the next piece on
// first use). Rejected until the next lock once used.
func (e *Engine) Hold() bool {
	if !e.acceptsCommands() {
		return false
	}
	e.recorder.Record(e.state.Frame, Action{Kind: ActHold})
	return e.hold()
}

func (e *Engine) hold() bool {
	s := e.state
	if s.Current == nil || !s.CanHold {
		e.events.sound(SoundDenied)
		return false
	}
	cur := s.Current.Kind
	if s.Held == nil {
		s.Current = NewPiece(s.Next.Kind, e.rng)
		s.Next = e.drawPiece()
	} else {
		s.Current = NewPiece(s.Held.Kind, e.rng)
	}
	s.Held = NewPiece(cur, e.rng)
	s.CanHold = false
	s.Phase = PhaseFalling
	s.GravityAcc = 0
	s.LockTimer = 0
	e.events.sound(SoundHold)
	return true
}

// PressUp is the contextual up command: a float piece with remaining budget
// moves up one cell, anything else rotates clockwise.
func (e *Engine) PressUp() bool {
	if !e.acceptsCommands() {
		return false
	}
	e.recorder.Record(e.state.Frame, Action{Kind: ActUp})
	return e.pressUp()
}

func (e *Engine) pressUp() bool {
	p := e.state.Current
	if p != nil && p.Kind == KindFloat && p.UpMoves < e.params.FloatBudget {
		return e.move(0, -1)
	}
	return e.rotate(1)
}

// TogglePause pauses from FALLING or LOCKING and always resumes to FALLING.
func (e *Engine) TogglePause() bool {
	s := e.state
	switch s.Phase {
	case PhaseFalling, PhaseLocking:
		e.recorder.Record(s.Frame, Action{Kind: ActPause})
		s.Phase = PhasePaused
		e.events.sound(SoundPause)
		return true
	case PhasePaused:
		e.recorder.Record(s.Frame, Action{Kind: ActPause})
		s.Phase = PhaseFalling
		e.events.sound(SoundPause)
		return true
	default:
		return false
	}
}

func (e *Engine) togglePause() bool {
	s := e.state
	switch s.Phase {
	case PhaseFalling, PhaseLocking:
		s.Phase = PhasePaused
		return true
	case PhasePaused:
		s.Phase = PhaseFalling
		return true
	default:
		return false
	}
}

func (e *Engine) acceptsCommands() bool {
	switch e.state.Phase {
	case PhaseFalling, PhaseLocking:
		return true
	default:
		return false
	}
}

// lockPiece finalizes the current piece: death lock if still above the
// board, otherwise place, scan lines, and either animate the clear or spawn
// the next piece.
func (e *Engine) lockPiece() {
	s := e.state
	p := s.Current
	if p == nil {
		return
	}
	if p.Y < 0 {
		s.Board = s.Board.Place(p.Shape, p.X, p.Y, p.Color)
		s.DeathPiece = p.Clone()
		s.Current = nil
		e.gameOver()
		return
	}
	s.Board = s.Board.Place(p.Shape, p.X, p.Y, p.Color)
	s.Current = nil
	s.PiecesPlaced++
	s.DangerSpawn = false
	s.CanHold = true
	e.events.sound(SoundLock)

	lines := s.Board.FullLines()
	if len(lines) > 0 {
		colors := make([][]Color, len(lines))
		for i, row := range lines {
			colors[i] = s.Board.RowColors(row)
		}
		e.events.clear(lines, colors)
		s.ClearingRows = lines
		s.ClearTimer = 0
		s.Phase = PhaseClearing
		return
	}
	e.spawnNext()
}

// finalizeClear removes the flagged rows, awards score, and advances to the
// next piece. Combo resets only on a zero-line clear event, which the lock
// procedure never produces; the asymmetry is intentional and kept.
func (e *Engine) finalizeClear() {
	s := e.state
	n := len(s.ClearingRows)
	s.Board = s.Board.RemoveLines(s.ClearingRows)
	if n > 0 {
		idx := n
		if idx > 4 {
			idx = 4
		}
		s.Score += LineValues[idx]*s.Level + e.params.ComboBonus*s.Combo*s.Level
		s.Lines += n
		s.Combo++
	} else {
		s.Combo = 0
	}
	s.ClearingRows = nil
	s.ClearTimer = 0
	e.checkUnlocks()
	e.spawnNext()
}

// checkUnlocks advances milestones for every UnlockStep points crossed,
// unlocking the next special kind in order and raising the level each time.
func (e *Engine) checkUnlocks() {
	if !e.params.Progression {
		return
	}
	s := e.state
	for s.Milestones < s.Score/e.params.UnlockStep {
		s.Milestones++
		s.Level++
		kind := KindNone
		for _, k := range UnlockOrder {
			if !s.Unlocked[k] {
				s.Unlocked[k] = true
				kind = k
				break
			}
		}
		e.events.Unlocks = append(e.events.Unlocks, UnlockEvent{Kind: kind, Level: s.Level})
		e.events.sound(SoundUnlock)
	}
}

// spawnNext promotes the queued piece to current. A clean fit enters
// FALLING; a partial block with an escape move enters LOCKING under the
// danger delay; a full block ends the game.
func (e *Engine) spawnNext() {
	s := e.state
	s.Current = s.Next
	s.Next = e.drawPiece()
	s.Generation++
	s.GravityAcc = 0
	s.DangerSpawn = false

	p := s.Current
	if s.Board.Fits(p.Shape, p.X, p.Y) {
		s.Phase = PhaseFalling
		return
	}
	if e.canEscape(p) {
		s.DangerSpawn = true
		e.enterLocking()
		return
	}
	e.gameOver()
}

// canEscape probes the documented escape moves for a blocked spawn: one cell
// left, right, or down, or a rotation in either direction with kicks.
func (e *Engine) canEscape(p *Piece) bool {
	b := e.state.Board
	if b.Fits(p.Shape, p.X-1, p.Y) || b.Fits(p.Shape, p.X+1, p.Y) || b.Fits(p.Shape, p.X, p.Y+1) {
		return true
	}
	for _, dir := range []int{1, -1} {
		rotated := p.Shape.Rotated(dir)
		to := ((p.Rot+dir)%4 + 4) % 4
		for _, k := range KickOffsets(p.Kind, p.Rot, to) {
			if b.Fits(rotated, p.X+k.DX, p.Y+k.DY) {
				return true
			}
		}
	}
	return false
}

func (e *Engine) gameOver() {
	s := e.state
	s.Phase = PhaseGameOver
	e.events.sound(SoundGameOver)
	if s.Score > e.highScore {
		e.highScore = s.Score
		e.events.NewHighScore = true
	}
}

// drawPiece selects the next kind: an independent float override when float
// is unlocked, otherwise cumulative-weight sampling over the unlocked set
// with standards at weight 1 and specials at SpecialWeight.
func (e *Engine) drawPiece() *Piece {
	s := e.state
	if s.Unlocked[KindFloat] && e.rng.Next() < e.params.FloatChance {
		return NewPiece(KindFloat, e.rng)
	}
	total := 0.0
	for _, k := range StandardKinds {
		if s.Unlocked[k] {
			total += 1.0
		}
	}
	for _, k := range SpecialKinds {
		if s.Unlocked[k] {
			total += e.params.SpecialWeight
		}
	}
	pick := e.rng.Next() * total
	last := StandardKinds[0]
	for _, k := range StandardKinds {
		if s.Unlocked[k] {
			if pick < 1.0 {
				return NewPiece(k, e.rng)
			}
			pick -= 1.0
			last = k
		}
	}
	for _, k := range SpecialKinds {
		if s.Unlocked[k] && e.params.SpecialWeight > 0 {
			if pick < e.params.SpecialWeight {
				return NewPiece(k, e.rng)
			}
			pick -= e.params.SpecialWeight
			last = k
		}
	}
	// pick can land on total itself through float rounding
	return NewPiece(last, e.rng)
}

// checkpoint validates the live state every checkpointInterval frames. A
// valid state becomes the new snapshot; an invalid one is replaced by the
// last snapshot with the active piece dropped, or a full menu reset when no
// snapshot exists yet.
func (e *Engine) checkpoint() {
	if err := Validate(e.state); err == nil {
		e.snapshot = e.state.Clone()
		return
	}
	if e.snapshot != nil {
		restored := e.snapshot.Clone()
		restored.Frame = e.state.Frame
		restored.Current = nil
		e.state = restored
		if e.state.Phase != PhaseMenu && e.state.Phase != PhaseGameOver {
			e.spawnNext()
		}
		return
	}
	e.state = newState()
}

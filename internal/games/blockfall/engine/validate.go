package engine

import "fmt"

// ValidationError describes a single consistency violation found in a state.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validate checks structural invariants of a state. A nil return means the
// state is safe to keep simulating from; any error means the last checkpoint
// should be restored instead.
func Validate(s *State) error {
	if s == nil {
		return ValidationError{Code: "nil_state", Message: "state is nil"}
	}
	if s.Board.Rows() != BoardRows {
		return ValidationError{Code: "bad_rows", Message: fmt.Sprintf("board has %d rows, want %d", s.Board.Rows(), BoardRows)}
	}
	for y := 0; y < s.Board.Rows(); y++ {
		if s.Board.RowLen(y) != BoardCols {
			return ValidationError{Code: "bad_cols", Message: fmt.Sprintf("row %d has %d cols, want %d", y, s.Board.RowLen(y), BoardCols)}
		}
	}
	if s.Score < 0 {
		return ValidationError{Code: "neg_score", Message: fmt.Sprintf("score %d", s.Score)}
	}
	if s.Lines < 0 {
		return ValidationError{Code: "neg_lines", Message: fmt.Sprintf("lines %d", s.Lines)}
	}
	if s.Combo < 0 {
		return ValidationError{Code: "neg_combo", Message: fmt.Sprintf("combo %d", s.Combo)}
	}
	if s.Level < 1 {
		return ValidationError{Code: "bad_level", Message: fmt.Sprintf("level %d", s.Level)}
	}
	if s.Current != nil && !s.Current.Kind.Known() {
		return ValidationError{Code: "bad_kind", Message: fmt.Sprintf("current piece kind %d", int(s.Current.Kind))}
	}
	if (s.Phase == PhaseFalling || s.Phase == PhaseLocking) && s.Current == nil {
		return ValidationError{Code: "no_piece", Message: "active phase without a current piece"}
	}
	return nil
}

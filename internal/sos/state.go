package sos

import (
	"fmt"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

// WriteState copies the engine-owned fields into state, keeping its ID and timestamps.
func (that *Engine) WriteState(state *entity.GameState) {
	state.Size = that.board.Size()
	state.Variant = that.rules.variant()
	state.Seats = that.seats
	state.Board = that.board.Rows()
	state.Turn = that.turn.Current()
	state.Scores = that.scores
	state.Sequences = that.ledger.Sequences()
	state.Winner = that.winner
	state.Moves = that.moves

	state.Status = entity.StatusOngoing
	if that.IsGameOver() {
		state.Status = entity.StatusFinished
	}
}

// Restore rebuilds an engine from a stored snapshot.
func Restore(state *entity.GameState, opts ...Option) (*Engine, error) {
	if state.Size != len(state.Board) {
		return nil, fmt.Errorf("%w: size %d but %d rows", apperror.ErrCorruptState, state.Size, len(state.Board))
	}

	board, err := BoardFromRows(state.Board)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptState, err)
	}

	for _, seq := range state.Sequences {
		if !matches(board, seq.ID) {
			return nil, fmt.Errorf("%w: sequence %s is not on the board", apperror.ErrCorruptState, seq.ID)
		}
	}

	if state.Turn != entity.PlayerOne && state.Turn != entity.PlayerTwo {
		return nil, fmt.Errorf("%w: unknown player %q", apperror.ErrCorruptState, state.Turn)
	}

	if state.Scores.P1 < 0 || state.Scores.P2 < 0 {
		return nil, fmt.Errorf("%w: negative score", apperror.ErrCorruptState)
	}

	if state.IsFinished() == (state.Winner == entity.WinnerNone) {
		return nil, fmt.Errorf("%w: status %q with winner %q", apperror.ErrCorruptState, state.Status, state.Winner)
	}

	if state.Variant == entity.VariantSimple && state.Scores != (entity.Scores{}) {
		return nil, fmt.Errorf("%w: simple game with scores %+v", apperror.ErrCorruptState, state.Scores)
	}

	if state.IsOngoing() {
		if board.IsFull() {
			return nil, fmt.Errorf("%w: ongoing game on a full board", apperror.ErrCorruptState)
		}

		// a simple game ends on its first sequence.
		if state.Variant == entity.VariantSimple && len(state.Sequences) > 0 {
			return nil, fmt.Errorf("%w: ongoing simple game with %d sequences", apperror.ErrCorruptState, len(state.Sequences))
		}
	}

	engine, err := build(board, LedgerFrom(state.Sequences), state.Variant, append([]Option{WithSeats(state.Seats)}, opts...))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptState, err)
	}

	engine.turn = NewTurnTracker(state.Turn)
	engine.scores = state.Scores
	engine.winner = state.Winner
	engine.moves = state.Moves

	return engine, nil
}

package sos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

func TestEngine_WriteState(t *testing.T) {
	t.Run("Keeps the session fields and fills the rest", func(t *testing.T) {
		// Given: a general game where p1 scored once
		engine, err := New(3, entity.VariantGeneral, WithSeats(entity.Seats{P1: entity.HumanSeat, P2: entity.ComputerSeat}))
		require.NoError(t, err)
		engine.Place(0, 0, entity.LetterS)
		engine.Place(0, 1, entity.LetterO)
		engine.Place(0, 2, entity.LetterS)

		state := &entity.GameState{ID: "game-1"}

		// When: the engine writes its state
		engine.WriteState(state)

		// Then: the snapshot mirrors the engine
		assert.Equal(t, "game-1", state.ID)
		assert.Equal(t, 3, state.Size)
		assert.Equal(t, entity.VariantGeneral, state.Variant)
		assert.Equal(t, entity.ComputerSeat, state.Seats.P2)
		assert.Equal(t, rowsOf("SOS", "...", "..."), state.Board)
		assert.Equal(t, entity.PlayerOne, state.Turn)
		assert.Equal(t, entity.Scores{P1: 1}, state.Scores)
		require.Len(t, state.Sequences, 1)
		assert.Equal(t, id(entity.Horizontal, 0, 0), state.Sequences[0].ID)
		assert.Equal(t, entity.StatusOngoing, state.Status)
		assert.Equal(t, entity.WinnerNone, state.Winner)
		assert.Equal(t, 3, state.Moves)
	})

	t.Run("Marks finished games", func(t *testing.T) {
		engine := midGame(t, entity.VariantSimple, entity.PlayerTwo, entity.Scores{}, "SO.", "...", "...")
		engine.Place(0, 2, entity.LetterS)

		state := &entity.GameState{}
		engine.WriteState(state)

		assert.True(t, state.IsFinished())
		assert.Equal(t, entity.WinnerOf(entity.PlayerTwo), state.Winner)
	})
}

func TestRestore(t *testing.T) {
	t.Run("Round trips a game in progress", func(t *testing.T) {
		// Given: a general game saved after p1 scored
		engine, err := New(3, entity.VariantGeneral)
		require.NoError(t, err)
		engine.Place(0, 0, entity.LetterS)
		engine.Place(0, 1, entity.LetterO)
		engine.Place(0, 2, entity.LetterS)

		state := &entity.GameState{}
		engine.WriteState(state)

		// When: it is restored
		restored, err := Restore(state)
		require.NoError(t, err)

		// Then: it continues exactly where it left off
		assert.Equal(t, engine.Board().Rows(), restored.Board().Rows())
		assert.Equal(t, engine.Scores(), restored.Scores())
		assert.Equal(t, engine.CurrentPlayer(), restored.CurrentPlayer())
		assert.Equal(t, engine.Sequences(), restored.Sequences())

		// And: the credited sequence is not counted again
		result := restored.Place(1, 0, entity.LetterO)
		assert.Zero(t, result.SequencesFound)
		assert.Equal(t, entity.Scores{P1: 1}, restored.Scores())
		assert.Equal(t, entity.PlayerTwo, restored.CurrentPlayer())
	})

	t.Run("Round trips a finished game", func(t *testing.T) {
		engine := midGame(t, entity.VariantSimple, entity.PlayerOne, entity.Scores{}, "SO.", "...", "...")
		engine.Place(0, 2, entity.LetterS)

		state := &entity.GameState{}
		engine.WriteState(state)

		restored, err := Restore(state)
		require.NoError(t, err)

		assert.True(t, restored.IsGameOver())
		assert.Equal(t, entity.WinnerOf(entity.PlayerOne), restored.Winner())
	})

	t.Run("Rejects corrupt snapshots", func(t *testing.T) {
		valid := func() *entity.GameState {
			return &entity.GameState{
				Size:    3,
				Variant: entity.VariantGeneral,
				Seats:   entity.HumanSeats(),
				Board:   rowsOf("SOS", "...", "..."),
				Turn:    entity.PlayerOne,
				Scores:  entity.Scores{P1: 1},
				Sequences: []entity.Sequence{{
					ID:     id(entity.Horizontal, 0, 0),
					Cells:  id(entity.Horizontal, 0, 0).Cells(),
					Player: entity.PlayerOne,
				}},
				Status: entity.StatusOngoing,
			}
		}

		_, err := Restore(valid())
		require.NoError(t, err)

		tests := []struct {
			name   string
			modify func(state *entity.GameState)
		}{
			{name: "size does not match rows", modify: func(state *entity.GameState) { state.Size = 4 }},
			{name: "ragged board", modify: func(state *entity.GameState) { state.Board[1] = state.Board[1][:2] }},
			{name: "unknown letter", modify: func(state *entity.GameState) { state.Board[2][2] = "X" }},
			{name: "too small", modify: func(state *entity.GameState) {
				state.Size = 2
				state.Board = rowsOf("SO", "..")
				state.Sequences = nil
			}},
			{name: "credited sequence missing from the board", modify: func(state *entity.GameState) {
				state.Sequences[0].ID = id(entity.Vertical, 0, 0)
			}},
			{name: "unknown turn", modify: func(state *entity.GameState) { state.Turn = "p3" }},
			{name: "negative score", modify: func(state *entity.GameState) { state.Scores.P2 = -1 }},
			{name: "finished without a winner", modify: func(state *entity.GameState) { state.Status = entity.StatusFinished }},
			{name: "winner while ongoing", modify: func(state *entity.GameState) { state.Winner = entity.WinnerDraw }},
			{name: "unknown variant", modify: func(state *entity.GameState) { state.Variant = "blitz" }},
			{name: "unknown seat", modify: func(state *entity.GameState) { state.Seats.P2 = "robot" }},
			{name: "simple game with scores", modify: func(state *entity.GameState) {
				state.Variant = entity.VariantSimple
				state.Sequences = nil
			}},
			{name: "ongoing game on a full board", modify: func(state *entity.GameState) {
				state.Board = rowsOf("SOS", "SSO", "OOS")
			}},
			{name: "ongoing simple game with a credited sequence", modify: func(state *entity.GameState) {
				state.Variant = entity.VariantSimple
				state.Scores = entity.Scores{}
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				state := valid()
				tt.modify(state)

				_, err := Restore(state)

				require.ErrorIs(t, err, apperror.ErrCorruptState)
			})
		}
	})
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
)

type stubStrategy struct {
	move entity.Move
	ok   bool
}

func (that stubStrategy) ProposeMove(*sos.Board, *sos.Ledger) (entity.Move, bool) {
	return that.move, that.ok
}

func TestBotService_PlayComputerTurns(t *testing.T) {
	t.Run("Does nothing while a human is to move", func(t *testing.T) {
		// Given: a game where p1 is human
		engine, err := sos.New(3, entity.VariantSimple, sos.WithSeats(entity.Seats{P1: entity.HumanSeat, P2: entity.ComputerSeat}))
		require.NoError(t, err)

		// When: computer turns are played
		results, err := NewBotService().PlayComputerTurns(engine)

		// Then: no move is made
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Len(t, engine.Board().EmptyCells(), 9)
	})

	t.Run("Plays one move and hands the turn back", func(t *testing.T) {
		// Given: p1 human has moved and p2 is the computer
		engine, err := sos.New(5, entity.VariantSimple,
			sos.WithSeats(entity.Seats{P1: entity.HumanSeat, P2: entity.ComputerSeat}),
			sos.WithStrategy(sos.NewSeededHeuristic([]byte("bot"))),
		)
		require.NoError(t, err)
		engine.Place(0, 0, entity.LetterO)

		// When: computer turns are played
		results, err := NewBotService().PlayComputerTurns(engine)

		// Then: the computer made one move as p2
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Valid)
		assert.Equal(t, entity.PlayerTwo, results[0].Player)
		assert.Equal(t, entity.PlayerOne, engine.CurrentPlayer())
	})

	t.Run("Keeps playing on extra turns", func(t *testing.T) {
		// Given: a general game where the computer can complete three sequences in a row
		engine, err := sos.Restore(&entity.GameState{
			Size:    5,
			Variant: entity.VariantGeneral,
			Seats:   entity.Seats{P1: entity.ComputerSeat, P2: entity.HumanSeat},
			Board: [][]entity.Letter{
				{"S", "O", "", "", ""},
				{"", "", "", "", ""},
				{"S", "O", "", "", ""},
				{"", "", "", "", ""},
				{"S", "O", "", "", ""},
			},
			Turn:   entity.PlayerOne,
			Status: entity.StatusOngoing,
		}, sos.WithStrategy(sos.NewSeededHeuristic([]byte("extra"))))
		require.NoError(t, err)

		// When: computer turns are played
		results, err := NewBotService().PlayComputerTurns(engine)

		// Then: every move but the last scored, and the points add up
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(results), 3)

		scored := 0
		for _, result := range results[:len(results)-1] {
			assert.Positive(t, result.SequencesFound)
			scored += result.SequencesFound
		}

		last := results[len(results)-1]
		scored += last.SequencesFound

		assert.GreaterOrEqual(t, scored, 3)
		assert.Equal(t, scored, engine.Scores().P1)
		assert.True(t, engine.IsGameOver() || engine.CurrentPlayer() == entity.PlayerTwo)
	})

	t.Run("Plays a computer-only game to the end", func(t *testing.T) {
		for _, variant := range []entity.Variant{entity.VariantSimple, entity.VariantGeneral} {
			engine, err := sos.New(4, variant, sos.WithSeats(entity.Seats{P1: entity.ComputerSeat, P2: entity.ComputerSeat}))
			require.NoError(t, err)

			results, err := NewBotService().PlayComputerTurns(engine)

			require.NoError(t, err)
			assert.NotEmpty(t, results)
			assert.True(t, engine.IsGameOver())
			assert.True(t, results[len(results)-1].GameOver)
		}
	})

	t.Run("Reports a strategy that proposes an illegal move", func(t *testing.T) {
		engine, err := sos.New(3, entity.VariantSimple,
			sos.WithSeats(entity.Seats{P1: entity.ComputerSeat, P2: entity.HumanSeat}),
			sos.WithStrategy(stubStrategy{move: entity.Move{Row: 9, Col: 9, Letter: entity.LetterS}, ok: true}),
		)
		require.NoError(t, err)

		_, err = NewBotService().PlayComputerTurns(engine)

		require.ErrorIs(t, err, apperror.ErrComputerMoveFails)
		assert.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})

	t.Run("Reports a strategy that finds no move", func(t *testing.T) {
		engine, err := sos.New(3, entity.VariantSimple,
			sos.WithSeats(entity.Seats{P1: entity.ComputerSeat, P2: entity.HumanSeat}),
			sos.WithStrategy(stubStrategy{ok: false}),
		)
		require.NoError(t, err)

		_, err = NewBotService().PlayComputerTurns(engine)

		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

package sos

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

// rowsOf turns strings such as "SO." into board rows; '.' marks an empty cell.
func rowsOf(rows ...string) [][]entity.Letter {
	out := make([][]entity.Letter, len(rows))
	for r, row := range rows {
		out[r] = make([]entity.Letter, len(row))
		for c, ch := range row {
			if ch != '.' {
				out[r][c] = entity.Letter(string(ch))
			}
		}
	}

	return out
}

func mustBoard(t *testing.T, rows ...string) *Board {
	t.Helper()

	board, err := BoardFromRows(rowsOf(rows...))
	require.NoError(t, err)

	return board
}

// midGame restores an ongoing game with nothing credited yet.
func midGame(t *testing.T, variant entity.Variant, turn entity.Player, scores entity.Scores, rows ...string) *Engine {
	t.Helper()

	engine, err := Restore(&entity.GameState{
		Size:    len(rows),
		Variant: variant,
		Seats:   entity.HumanSeats(),
		Board:   rowsOf(rows...),
		Turn:    turn,
		Scores:  scores,
		Status:  entity.StatusOngoing,
	})
	require.NoError(t, err)

	return engine
}

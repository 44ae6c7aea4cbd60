package sos

import (
	"fmt"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

// rules is what a variant contributes on top of the shared board, scanner and ledger.
type rules interface {
	variant() entity.Variant
	// score applies the scoring effect of formed new sequences made by player.
	score(scores *entity.Scores, player entity.Player, formed int)
	// outcome returns the winner after a move, WinnerNone while the game runs.
	outcome(player entity.Player, formed int, full bool, scores entity.Scores) entity.Winner
	// keepsTurn reports whether the mover moves again.
	keepsTurn(formed int) bool
}

func rulesFor(variant entity.Variant) (rules, error) {
	switch variant {
	case entity.VariantSimple:
		return simpleRules{}, nil
	case entity.VariantGeneral:
		return generalRules{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidVariant, variant)
	}
}

// simpleRules: the first sequence wins, a full board without one is a draw.
type simpleRules struct{}

func (simpleRules) variant() entity.Variant {
	return entity.VariantSimple
}

func (simpleRules) score(*entity.Scores, entity.Player, int) {}

func (simpleRules) outcome(player entity.Player, formed int, full bool, _ entity.Scores) entity.Winner {
	switch {
	case formed > 0:
		return entity.WinnerOf(player)
	case full:
		return entity.WinnerDraw
	default:
		return entity.WinnerNone
	}
}

func (simpleRules) keepsTurn(int) bool {
	return false
}

// generalRules: every sequence scores, forming one earns another move,
// the game ends only when the board is full.
type generalRules struct{}

func (generalRules) variant() entity.Variant {
	return entity.VariantGeneral
}

func (generalRules) score(scores *entity.Scores, player entity.Player, formed int) {
	scores.Add(player, formed)
}

func (generalRules) outcome(_ entity.Player, _ int, full bool, scores entity.Scores) entity.Winner {
	if !full {
		return entity.WinnerNone
	}

	return scores.Leader()
}

func (generalRules) keepsTurn(formed int) bool {
	return formed > 0
}

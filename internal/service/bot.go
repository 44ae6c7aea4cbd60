package service

import (
	"fmt"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
)

type BotService interface {
	// PlayComputerTurns places moves for computer seats until a human is to
	// move or the game is over.
	PlayComputerTurns(engine *sos.Engine) ([]entity.MoveResult, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

func (that *botService) PlayComputerTurns(engine *sos.Engine) ([]entity.MoveResult, error) {
	var results []entity.MoveResult

	// every move fills a cell, so this many turns is always enough
	limit := engine.Size() * engine.Size()

	for range limit {
		if engine.IsGameOver() || !engine.Seats().Of(engine.CurrentPlayer()).IsComputer() {
			return results, nil
		}

		move, ok, err := engine.ProposeComputerMove()
		if err != nil {
			return results, fmt.Errorf("bot failed to propose a move: %w", err)
		}

		if !ok {
			return results, apperror.ErrNoAvailableMoves
		}

		result := engine.Place(move.Row, move.Col, move.Letter)
		if !result.Valid {
			return results, fmt.Errorf("%w: %s: %w", apperror.ErrComputerMoveFails, move, result.Err)
		}

		results = append(results, result)
	}

	return results, nil
}

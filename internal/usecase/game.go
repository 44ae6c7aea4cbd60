package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
)

// errRejected aborts a transaction after an invalid placement so nothing is stored.
var errRejected = errors.New("move rejected")

type GameUseCase interface {
	NewGame(ctx context.Context, params NewGameParams) (*entity.TurnReport, error)
	GetGame(ctx context.Context, id string) (*entity.GameState, error)
	EndGame(ctx context.Context, id string) error

	MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.TurnReport, error)
	PlayComputerTurns(ctx context.Context, id string) (*entity.TurnReport, error)
	ProposeMove(ctx context.Context, id string) (entity.Move, error)
}

// NewGameParams carries raw client input. Empty fields fall back to defaults.
type NewGameParams struct {
	Size    *int
	Variant string
	P1      string
	P2      string
}

type Defaults struct {
	Size    int
	Variant entity.Variant
}

type gameService interface {
	CreateGame(ctx context.Context, engine *sos.Engine) (*entity.GameState, error)
	GetGameByID(ctx context.Context, id string) (*entity.GameState, error)
	LoadEngine(ctx context.Context, id string) (*sos.Engine, *entity.GameState, error)
	PlayGame(ctx context.Context, id string, play func(engine *sos.Engine) error) (*entity.GameState, error)
	DeleteGame(ctx context.Context, id string) error
}

type botService interface {
	PlayComputerTurns(engine *sos.Engine) ([]entity.MoveResult, error)
}

type gameUseCase struct {
	logger   *slog.Logger
	defaults Defaults

	gameService gameService
	botService  botService
	engineOpts  []sos.Option
}

// NewGameUseCase builds new engines with engineOpts; gameService must restore them with the same options.
func NewGameUseCase(logger *slog.Logger, defaults Defaults, gameService gameService, botService botService, engineOpts ...sos.Option) GameUseCase {
	return &gameUseCase{
		logger:      logger,
		defaults:    defaults,
		gameService: gameService,
		botService:  botService,
		engineOpts:  engineOpts,
	}
}

func (that *gameUseCase) NewGame(ctx context.Context, params NewGameParams) (*entity.TurnReport, error) {
	log := that.logger.With("method", "NewGame")

	size := that.defaults.Size
	if params.Size != nil {
		size = *params.Size
	}

	variant := that.defaults.Variant
	if params.Variant != "" {
		parsed, err := entity.ParseVariant(params.Variant)
		if err != nil {
			return nil, err
		}
		variant = parsed
	}

	seats, err := parseSeats(params.P1, params.P2)
	if err != nil {
		return nil, err
	}

	engine, err := sos.New(size, variant, append([]sos.Option{sos.WithSeats(seats)}, that.engineOpts...)...)
	if err != nil {
		return nil, fmt.Errorf("could not start game: %w", err)
	}

	computerMoves, err := that.botService.PlayComputerTurns(engine)
	if err != nil {
		return nil, fmt.Errorf("computer failed to open the game: %w", err)
	}

	game, err := that.gameService.CreateGame(ctx, engine)
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	log.Info("game created", "gameID", game.ID, "size", size, "variant", variant, "p1", seats.P1, "p2", seats.P2)

	return &entity.TurnReport{ComputerMoves: nonNil(computerMoves), Game: game}, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, id string) (*entity.GameState, error) {
	game, err := that.gameService.GetGameByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) EndGame(ctx context.Context, id string) error {
	if err := that.gameService.DeleteGame(ctx, id); err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	that.logger.With("method", "EndGame").Info("game ended", "gameID", id)

	return nil
}

// MakeTurn places a human move and then lets computer seats answer.
//
// An invalid placement comes back as a report with Valid=false and is not stored.
func (that *gameUseCase) MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.TurnReport, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	var report *entity.TurnReport

	game, err := that.gameService.PlayGame(ctx, id, func(engine *sos.Engine) error {
		report = &entity.TurnReport{}

		if !engine.IsGameOver() && engine.Seats().Of(engine.CurrentPlayer()).IsComputer() {
			return fmt.Errorf("%w: %s is played by the computer", apperror.ErrNotYourTurn, engine.CurrentPlayer())
		}

		result := engine.Place(move.Row, move.Col, move.Letter)
		report.Result = &result

		if !result.Valid {
			return errRejected
		}

		computerMoves, err := that.botService.PlayComputerTurns(engine)
		if err != nil {
			return err
		}

		report.ComputerMoves = computerMoves

		return nil
	})

	if errors.Is(err, errRejected) {
		log.Debug("move rejected", "move", move.String(), "reason", report.Result.Reason)

		current, getErr := that.GetGame(ctx, id)
		if getErr != nil {
			return nil, getErr
		}

		report.Game = current
		report.ComputerMoves = nonNil(report.ComputerMoves)

		return report, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	report.Game = game
	report.ComputerMoves = nonNil(report.ComputerMoves)

	log.Debug("turn played",
		"move", move.String(),
		"sequences", report.Result.SequencesFound+lo.SumBy(report.ComputerMoves, sequencesFound),
		"computerMoves", len(report.ComputerMoves),
		"status", game.Status,
	)

	return report, nil
}

// PlayComputerTurns lets computer seats move until a human is to move or the game ends.
func (that *gameUseCase) PlayComputerTurns(ctx context.Context, id string) (*entity.TurnReport, error) {
	var computerMoves []entity.MoveResult

	game, err := that.gameService.PlayGame(ctx, id, func(engine *sos.Engine) error {
		if engine.IsGameOver() {
			return apperror.ErrGameFinished
		}

		if player := engine.CurrentPlayer(); !engine.Seats().Of(player).IsComputer() {
			return fmt.Errorf("%w: %s", apperror.ErrHumanSeat, player)
		}

		var err error
		computerMoves, err = that.botService.PlayComputerTurns(engine)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to play computer turns: %w", err)
	}

	return &entity.TurnReport{ComputerMoves: nonNil(computerMoves), Game: game}, nil
}

// ProposeMove asks the computer seat to move for its move without playing it.
func (that *gameUseCase) ProposeMove(ctx context.Context, id string) (entity.Move, error) {
	engine, _, err := that.gameService.LoadEngine(ctx, id)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to load game: %w", err)
	}

	move, ok, err := engine.ProposeComputerMove()
	if err != nil {
		return entity.Move{}, err
	}

	if !ok {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return move, nil
}

func parseSeats(p1, p2 string) (entity.Seats, error) {
	first, err := entity.ParseSeatKind(p1)
	if err != nil {
		return entity.Seats{}, err
	}

	second, err := entity.ParseSeatKind(p2)
	if err != nil {
		return entity.Seats{}, err
	}

	return entity.Seats{P1: first, P2: second}, nil
}

func sequencesFound(result entity.MoveResult) int {
	return result.SequencesFound
}

func nonNil(results []entity.MoveResult) []entity.MoveResult {
	if results == nil {
		return []entity.MoveResult{}
	}

	return results
}

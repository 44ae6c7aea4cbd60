package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
)

type GameService interface {
	CreateGame(ctx context.Context, engine *sos.Engine) (*entity.GameState, error)
	GetGameByID(ctx context.Context, id string) (*entity.GameState, error)
	// LoadEngine restores the stored game into a private engine.
	LoadEngine(ctx context.Context, id string) (*sos.Engine, *entity.GameState, error)
	// PlayGame restores the game, runs play on it and stores the outcome in one
	// transaction. Nothing is stored when play fails.
	PlayGame(ctx context.Context, id string, play func(engine *sos.Engine) error) (*entity.GameState, error)
	DeleteGame(ctx context.Context, id string) error
}

type gameRepo interface {
	Create(ctx context.Context, game *entity.GameState) error
	GetByID(ctx context.Context, id string) (*entity.GameState, error)
	Update(ctx context.Context, id string, mutate func(game *entity.GameState) error) (*entity.GameState, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameService struct {
	gameRepo   gameRepo
	engineOpts []sos.Option
	now        func() time.Time
}

// NewGameService stores games in gameRepo; engineOpts are applied to every restored engine.
func NewGameService(gameRepo gameRepo, engineOpts ...sos.Option) GameService {
	return &gameService{
		gameRepo:   gameRepo,
		engineOpts: engineOpts,
		now:        time.Now,
	}
}

func (that *gameService) CreateGame(ctx context.Context, engine *sos.Engine) (*entity.GameState, error) {
	now := that.now().UTC()

	game := &entity.GameState{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	engine.WriteState(game)

	if err := that.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game in storage: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.GameState, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) LoadEngine(ctx context.Context, id string) (*sos.Engine, *entity.GameState, error) {
	game, err := that.GetGameByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	engine, err := sos.Restore(game, that.engineOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to restore game %s: %w", id, err)
	}

	return engine, game, nil
}

func (that *gameService) PlayGame(ctx context.Context, id string, play func(engine *sos.Engine) error) (*entity.GameState, error) {
	game, err := that.gameRepo.Update(ctx, id, func(game *entity.GameState) error {
		engine, err := sos.Restore(game, that.engineOpts...)
		if err != nil {
			return fmt.Errorf("failed to restore game %s: %w", id, err)
		}

		if err = play(engine); err != nil {
			return err
		}

		engine.WriteState(game)
		game.UpdatedAt = that.now().UTC()

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gameService) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

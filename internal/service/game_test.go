package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
	mockedService "github.com/rocketscienceinc/sos-backend/mocks/service"
)

var errStorageDown = errors.New("storage down")

// applyUpdate makes the mocked Update behave like the real one on a single stored game.
func applyUpdate(stored *entity.GameState) func(context.Context, string, func(*entity.GameState) error) (*entity.GameState, error) {
	return func(_ context.Context, _ string, mutate func(*entity.GameState) error) (*entity.GameState, error) {
		game := *stored
		if err := mutate(&game); err != nil {
			return nil, err
		}
		*stored = game
		return &game, nil
	}
}

func newStoredGame(t *testing.T, variant entity.Variant) *entity.GameState {
	t.Helper()

	engine, err := sos.New(3, variant)
	require.NoError(t, err)

	game := &entity.GameState{ID: "game-1"}
	engine.WriteState(game)

	return game
}

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a fresh game under a new uuid", func(t *testing.T) {
		// Given: a repository that accepts the game
		mockRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockRepo)

		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.GameState")).
			Return(nil).
			Once()

		engine, err := sos.New(4, entity.VariantGeneral)
		require.NoError(t, err)

		// When: CreateGame is called
		game, err := gameService.CreateGame(ctx, engine)

		// Then: the stored game has an id, timestamps and the engine state
		require.NoError(t, err)
		_, err = uuid.Parse(game.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, game.Size)
		assert.Equal(t, entity.VariantGeneral, game.Variant)
		assert.True(t, game.IsOngoing())
		assert.False(t, game.CreatedAt.IsZero())
		assert.Equal(t, game.CreatedAt, game.UpdatedAt)
	})

	t.Run("Returns error when the repository fails", func(t *testing.T) {
		mockRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockRepo)

		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.GameState")).
			Return(errStorageDown).
			Once()

		engine, err := sos.New(3, entity.VariantSimple)
		require.NoError(t, err)

		game, err := gameService.CreateGame(ctx, engine)

		require.ErrorIs(t, err, errStorageDown)
		assert.Nil(t, game)
	})
}

func TestGameService_LoadEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("Restores the stored game", func(t *testing.T) {
		mockRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockRepo)

		stored := newStoredGame(t, entity.VariantGeneral)
		stored.Board[1][1] = entity.LetterO
		stored.Turn = entity.PlayerTwo

		mockRepo.EXPECT().GetByID(mock.Anything, "game-1").Return(stored, nil).Once()

		engine, game, err := gameService.LoadEngine(ctx, "game-1")

		require.NoError(t, err)
		assert.Equal(t, stored, game)
		assert.Equal(t, entity.PlayerTwo, engine.CurrentPlayer())
		assert.False(t, engine.Board().IsEmpty(1, 1))
	})

	t.Run("Rejects a corrupt game", func(t *testing.T) {
		mockRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockRepo)

		stored := newStoredGame(t, entity.VariantGeneral)
		stored.Size = 5

		mockRepo.EXPECT().GetByID(mock.Anything, "game-1").Return(stored, nil).Once()

		_, _, err := gameService.LoadEngine(ctx, "game-1")

		require.ErrorIs(t, err, apperror.ErrCorruptState)
	})

	t.Run("Passes not found through", func(t *testing.T) {
		mockRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockRepo)

		mockRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, apperror.ErrGameNotFound).Once()

		_, _, err := gameService.LoadEngine(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameService_PlayGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes the played moves back", func(t *testing.T) {
		// Given: a stored simple game
		mockRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockRepo)
		stored := newStoredGame(t, entity.VariantSimple)

		mockRepo.EXPECT().
			Update(mock.Anything, "game-1", mock.Anything).
			RunAndReturn(applyUpdate(stored)).
			Once()

		// When: a move is played through PlayGame
		game, err := gameService.PlayGame(ctx, "game-1", func(engine *sos.Engine) error {
			result := engine.Place(0, 0, entity.LetterS)
			require.True(t, result.Valid)
			return nil
		})

		// Then: the stored state holds the move
		require.NoError(t, err)
		assert.Equal(t, entity.LetterS, game.Board[0][0])
		assert.Equal(t, entity.PlayerTwo, game.Turn)
		assert.Equal(t, 1, game.Moves)
		assert.Equal(t, "game-1", game.ID)
		assert.False(t, game.UpdatedAt.IsZero())
	})

	t.Run("Stores nothing when play fails", func(t *testing.T) {
		mockRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockRepo)
		stored := newStoredGame(t, entity.VariantSimple)

		mockRepo.EXPECT().
			Update(mock.Anything, "game-1", mock.Anything).
			RunAndReturn(applyUpdate(stored)).
			Once()

		_, err := gameService.PlayGame(ctx, "game-1", func(*sos.Engine) error {
			return errStorageDown
		})

		require.ErrorIs(t, err, errStorageDown)
		assert.Zero(t, stored.Moves)
	})
}

func TestGameService_DeleteGame(t *testing.T) {
	ctx := context.Background()

	mockRepo := mockedService.NewMockgameRepo(t)
	gameService := NewGameService(mockRepo)

	mockRepo.EXPECT().DeleteByID(mock.Anything, "game-1").Return(nil).Once()
	mockRepo.EXPECT().DeleteByID(mock.Anything, "missing").Return(apperror.ErrGameNotFound).Once()

	require.NoError(t, gameService.DeleteGame(ctx, "game-1"))
	require.ErrorIs(t, gameService.DeleteGame(ctx, "missing"), apperror.ErrGameNotFound)
}

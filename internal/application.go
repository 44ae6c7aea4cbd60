package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/sos-backend/internal/config"
	"github.com/rocketscienceinc/sos-backend/internal/repository"
	"github.com/rocketscienceinc/sos-backend/internal/repository/storage"
	"github.com/rocketscienceinc/sos-backend/internal/service"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
	"github.com/rocketscienceinc/sos-backend/internal/usecase"
	"github.com/rocketscienceinc/sos-backend/transport/rest"
	"github.com/rocketscienceinc/sos-backend/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisStorage, err := storage.NewRedis(ctx, conf.Redis)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	// one strategy for new and restored engines.
	engineOpts := []sos.Option{sos.WithStrategy(sos.NewHeuristic())}

	gameRepo := repository.NewGameRepository(redisStorage, conf.Game.SessionTTL)
	gameService := service.NewGameService(gameRepo, engineOpts...)
	botService := service.NewBotService()

	defaults := usecase.Defaults{Size: conf.Game.DefaultSize, Variant: conf.Game.Variant()}
	gameUseCase := usecase.NewGameUseCase(logger, defaults, gameService, botService, engineOpts...)

	wsServer := websocket.New(logger, gameUseCase)
	redisCheck := func(ctx context.Context) error {
		return redisStorage.Ping(ctx).Err()
	}

	router := rest.NewRouter(logger, gameUseCase, wsServer, redisCheck)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)

	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/othello-backend/internal/config"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/repository"
	"github.com/rocketscienceinc/othello-backend/internal/repository/storage"
	"github.com/rocketscienceinc/othello-backend/internal/service"
	"github.com/rocketscienceinc/othello-backend/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	first, computer, err := conf.Engine.Players()
	if err != nil {
		return fmt.Errorf("invalid engine config: %w", err)
	}

	game := entity.NewGame(first, computer)

	settings := service.Settings{
		Depth:       conf.Engine.Depth,
		Pruning:     conf.Engine.Pruning,
		Debug:       conf.Engine.Debug,
		Diagnostics: conf.Engine.Diagnostics,
	}

	var session *service.Session
	var consoleServer *console.Server

	if conf.Redis.Enabled {
		redisClient, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		statsRepo := repository.NewStatsRepository(redisClient, conf.Redis.StatsLimit)
		session = service.NewSession(logger, game, settings, statsRepo)
		consoleServer = console.New(logger, session, statsRepo, out)
	} else {
		session = service.NewSession(logger, game, settings, nil)
		consoleServer = console.New(logger, session, nil, out)
	}

	log.Info("Starting game", "game_id", game.ID, "first", first, "computer", computer, "depth", settings.Depth)

	if err := consoleServer.Serve(ctx, in); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down")

	return nil
}

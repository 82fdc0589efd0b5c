package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the game on the process console until the players stop.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, interrupting the game", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameEvents, closeEvents := initGameEvents(ctx, log, conf)
	defer closeEvents()

	input := console.NewPrompter(os.Stdin, os.Stdout)
	defer input.Close()
	output := console.NewRenderer(os.Stdout)

	gameManager := usecase.NewGameManager(logger, input, output, gameEvents)
	session := usecase.NewSession(logger, gameManager, input, output)

	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}

// initGameEvents - connects the spectator feed when it is enabled. An unreachable
// redis only disables the feed, the game itself does not depend on it.
func initGameEvents(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameEventRepository, func()) {
	noop := func() {}

	if !conf.Events.Enabled {
		return repository.NewNopGameEventRepository(), noop
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		log.Warn("could not connect to redis storage, round events disabled", "error", err)
		return repository.NewNopGameEventRepository(), noop
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	gameEvents, err := repository.NewGameEventRepository(redisStorage.Connection, conf.Events.Channel)
	if err != nil {
		log.Warn("invalid event feed configuration, round events disabled", "error", err)
		closeStorage()
		return repository.NewNopGameEventRepository(), noop
	}

	log.Info("publishing round events", "channel", conf.Events.Channel, "redis", conf.Redis.GetRedisAddr())

	return gameEvents, closeStorage
}

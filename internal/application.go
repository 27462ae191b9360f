package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs the game session on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	preset, err := presetMarks(conf.Players)
	if err != nil {
		return fmt.Errorf("invalid players config: %w", err)
	}

	term := console.New(os.Stdin, os.Stdout)
	session := usecase.NewGameSession(logger, term, preset)

	// the session blocks on stdin, so it cannot observe cancellation by itself
	sessionErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting game session")
		sessionErrCh <- session.Run(ctx)
	}()

	return awaitSession(ctx, log, sessionErrCh)
}

// awaitSession waits for the session to end or the context to be canceled.
// A session stopped by cancellation is a normal shutdown.
func awaitSession(ctx context.Context, log *slog.Logger, sessionErrCh <-chan error) error {
	select {
	case err := <-sessionErrCh:
		if errors.Is(err, context.Canceled) {
			log.Info("Game session canceled, shutting down")
			return nil
		}

		if err != nil {
			return fmt.Errorf("game session error: %w", err)
		}

		log.Info("Game session finished")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func presetMarks(players config.Players) ([2]entity.Mark, error) {
	var preset [2]entity.Mark

	if !players.IsPreset() {
		return preset, nil
	}

	for i, raw := range []string{players.FirstMark, players.SecondMark} {
		mark, err := entity.NewMark(raw)
		if err != nil {
			return preset, fmt.Errorf("player %d: %w", i+1, err)
		}
		preset[i] = mark
	}

	return preset, nil
}

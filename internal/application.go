package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/storage"
	"github.com/rocketscienceinc/connectfour/internal/transport/redis"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
	"github.com/rocketscienceinc/connectfour/transport/terminal"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

type publisher interface {
	Publish(ctx context.Context, event *entity.Event) error
}

// RunApp - runs the application in the configured mode.
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
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var notifier *redis.Client
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		notifier = redis.New(logger, redisStorage.Connection, conf.Redis.Channel)
	}

	switch conf.Mode {
	case config.ModeWatch:
		return watch(ctx, log, notifier)
	default:
		// keep the interface nil when notifications are off
		var pub publisher
		if notifier != nil {
			pub = notifier
		}

		return play(ctx, logger, conf, pub)
	}
}

func play(ctx context.Context, logger *slog.Logger, conf *config.Config, pub publisher) error {
	manager := usecase.NewGameManager(logger, pub, usecase.Settings{
		Height:   conf.Board.Height,
		Width:    conf.Board.Width,
		Color1:   conf.Players.Color1,
		Color2:   conf.Players.Color2,
		WinCheck: connectfour.WinCheck(conf.Board.WinCheck),
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not init screen: %w", err)
	}
	defer screen.Fini()

	return terminal.New(logger, screen, manager).Run(ctx)
}

func watch(ctx context.Context, log *slog.Logger, notifier *redis.Client) error {
	if notifier == nil {
		return fmt.Errorf("%w: watch mode", ErrAddrNotFound)
	}

	printer := terminal.NewPrinter(os.Stdout)

	log.Info("Watching games")

	if err := notifier.Watch(ctx, printer.Print); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/pkg"
)

type publisher interface {
	Publish(ctx context.Context, event *entity.Event) error
}

// Settings are applied to every game the manager starts.
type Settings struct {
	Height   int
	Width    int
	Color1   string
	Color2   string
	WinCheck connectfour.WinCheck
}

// GameManager runs one game at a time for a presentation layer and reports state changes.
type GameManager struct {
	logger    *slog.Logger
	publisher publisher
	settings  Settings

	gameID string
	engine *connectfour.Engine
}

// NewGameManager creates a manager. A nil publisher disables notifications.
func NewGameManager(logger *slog.Logger, publisher publisher, settings Settings) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		publisher: publisher,
		settings:  settings,
	}
}

// StartGame replaces the current game, if any, with a fresh one.
func (that *GameManager) StartGame(ctx context.Context) (*connectfour.Engine, error) {
	engine, err := connectfour.StartGame(
		that.settings.Height,
		that.settings.Width,
		that.settings.Color1,
		that.settings.Color2,
		connectfour.WithWinCheck(that.settings.WinCheck),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	that.gameID = pkg.GenerateGameID()
	that.engine = engine

	that.logger.Info("game started",
		"game_id", that.gameID,
		"height", engine.Height(),
		"width", engine.Width(),
		"win_check", that.settings.WinCheck,
	)

	that.publish(ctx, &entity.Event{
		Type:    entity.EventGameStarted,
		GameID:  that.gameID,
		Height:  engine.Height(),
		Width:   engine.Width(),
		Players: engine.Players(),
	})

	return engine, nil
}

// Play forwards the move to the current game. Rejections are returned as results, not errors.
func (that *GameManager) Play(ctx context.Context, column int) (connectfour.MoveResult, error) {
	if that.engine == nil {
		return connectfour.MoveResult{}, apperror.ErrGameIsNotStarted
	}

	log := that.logger.With("method", "Play", "game_id", that.gameID)

	result := that.engine.Play(column)
	if result.Rejected() {
		log.Debug("move rejected", "column", column, "reason", result.Reason)
		return result, nil
	}

	player, _ := that.engine.Player(result.Player)
	log.Debug("piece placed", "player", result.Player, "row", result.Row, "column", result.Column, "board", that.engine.Board())

	that.publish(ctx, &entity.Event{
		Type:     entity.EventPiecePlaced,
		GameID:   that.gameID,
		Player:   player.ID,
		Color:    player.Color,
		Position: &entity.Position{Row: result.Row, Column: result.Column},
	})

	if result.Outcome != entity.OutcomeNone {
		that.finishGame(ctx, result)
	}

	return result, nil
}

func (that *GameManager) finishGame(ctx context.Context, result connectfour.MoveResult) {
	message := entity.ResultMessage(result.Outcome, result.Winner)

	that.logger.Info("game over", "game_id", that.gameID, "outcome", result.Outcome, "winner", result.Winner)

	that.publish(ctx, &entity.Event{
		Type:    entity.EventGameOver,
		GameID:  that.gameID,
		Outcome: result.Outcome,
		Winner:  result.Winner,
		Message: message,
		Board:   that.engine.Board(),
	})
}

// publish never fails the move: an accepted move cannot be taken back.
func (that *GameManager) publish(ctx context.Context, event *entity.Event) {
	if that.publisher == nil {
		return
	}

	if err := that.publisher.Publish(ctx, event); err != nil {
		that.logger.Error("failed to publish event", "game_id", event.GameID, "type", event.Type, "error", err)
	}
}

// Engine returns the current game, nil before the first StartGame.
func (that *GameManager) Engine() *connectfour.Engine {
	return that.engine
}

func (that *GameManager) GameID() string {
	return that.gameID
}

package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/testing/suite"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestClient_Channel(t *testing.T) {
	client := New(testLogger(), nil, "connectfour")

	assert.Equal(t, "connectfour:game:abc", client.Channel("abc"))
}

func TestClient_PublishSubscribe(t *testing.T) {
	ctx, st := suite.New(t)

	client := New(st.Logger, st.Redis, "connectfour")

	// Given: a subscription to every game
	sub, err := client.Subscribe(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sub.Close()
	})

	// When: events of two games are published
	placed := &entity.Event{
		Type:     entity.EventPiecePlaced,
		GameID:   "game-1",
		Player:   entity.Player1,
		Color:    "red",
		Position: &entity.Position{Row: 5, Column: 0},
	}
	over := &entity.Event{
		Type:    entity.EventGameOver,
		GameID:  "game-2",
		Outcome: entity.OutcomeTied,
		Message: "Tie!",
	}
	require.NoError(t, client.Publish(ctx, placed))
	require.NoError(t, client.Publish(ctx, over))

	// Then: both arrive in order with a zero row intact
	got, err := sub.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, placed, got)

	got, err = sub.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, over, got)
}

func TestClient_Watch(t *testing.T) {
	ctx, st := suite.New(t)

	client := New(st.Logger, st.Redis, "connectfour")
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	received := make(chan *entity.Event, 1)
	done := make(chan error, 1)

	// Given: a watcher running in the background
	go func() {
		done <- client.Watch(watchCtx, func(event *entity.Event) {
			select {
			case received <- event:
			case <-watchCtx.Done():
			}
		})
	}()

	// When: a malformed payload and then a valid event are published until one is seen
	event := &entity.Event{Type: entity.EventGameStarted, GameID: "game-3", Height: 6, Width: 7}
	require.Eventually(t, func() bool {
		assert.NoError(t, st.Redis.Publish(ctx, client.Channel("junk"), "{not json").Err())
		assert.NoError(t, client.Publish(ctx, event))

		select {
		case got := <-received:
			return assert.Equal(t, event, got)
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 10*time.Second, 200*time.Millisecond)

	// Then: cancelling the context stops the watcher cleanly
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

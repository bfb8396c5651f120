package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var (
	ErrSubscriptionClosed = errors.New("subscription closed")
	ErrMalformedEvent     = errors.New("malformed event")
)

// Client fans game events out over Redis pub/sub, one channel per game.
type Client struct {
	logger *slog.Logger
	client *redis.Client
	prefix string
}

func New(logger *slog.Logger, client *redis.Client, prefix string) *Client {
	return &Client{
		logger: logger.With("component", "redis_events"),
		client: client,
		prefix: prefix,
	}
}

// Channel returns the channel events of the game are published on.
func (that *Client) Channel(gameID string) string {
	return that.prefix + ":game:" + gameID
}

func (that *Client) pattern() string {
	return that.prefix + ":game:*"
}

// Publish sends the event to the game's channel.
func (that *Client) Publish(ctx context.Context, event *entity.Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, that.Channel(event.GameID), eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Subscription receives events of every game under the client's prefix.
type Subscription struct {
	pubsub   *redis.PubSub
	messages <-chan *redis.Message
}

// Subscribe returns once Redis has confirmed the subscription.
func (that *Client) Subscribe(ctx context.Context) (*Subscription, error) {
	pubsub := that.client.PSubscribe(ctx, that.pattern())

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", that.pattern(), err)
	}

	return &Subscription{
		pubsub:   pubsub,
		messages: pubsub.Channel(),
	}, nil
}

// Next blocks until the next event arrives or ctx is done.
func (that *Subscription) Next(ctx context.Context) (*entity.Event, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case msg, ok := <-that.messages:
		if !ok {
			return nil, ErrSubscriptionClosed
		}

		var event entity.Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			return nil, fmt.Errorf("%w on %s: %w", ErrMalformedEvent, msg.Channel, err)
		}

		return &event, nil
	}
}

func (that *Subscription) Close() error {
	if err := that.pubsub.Close(); err != nil {
		return fmt.Errorf("failed to close subscription: %w", err)
	}

	return nil
}

// Watch hands every event to handle until ctx is cancelled. Malformed payloads are logged and skipped.
func (that *Client) Watch(ctx context.Context, handle func(*entity.Event)) error {
	log := that.logger.With("method", "Watch")

	sub, err := that.Subscribe(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err = sub.Close(); err != nil {
			log.Error("could not close subscription", "error", err)
		}
	}()

	log.Info("watching game events", "pattern", that.pattern())

	for {
		event, nextErr := sub.Next(ctx)

		switch {
		case nextErr == nil:
			handle(event)
		case errors.Is(nextErr, ErrMalformedEvent):
			log.Warn("skipping event", "error", nextErr)
		case ctx.Err() != nil:
			return nil
		default:
			return nextErr
		}
	}
}

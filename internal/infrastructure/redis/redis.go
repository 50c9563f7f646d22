package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Client wraps the go-redis client behind the two operations the SDK
// needs: publishing mirrored session events and tailing them from
// another process.
type Client struct {
	*redis.Client
}

func NewClient(addr string) *Client {
	return &Client{Client: redis.NewClient(&redis.Options{Addr: addr})}
}

type Message = redis.Message

var ErrFailedToReceiveMessage = errors.New("failed to receive message")

// Subscribe tails the given channel. The returned closure blocks in the
// handler loop until the context is cancelled or the handler errors.
func (c *Client) Subscribe(ctx context.Context, channel string) func(handler func(Message) error) error {
	pubsub := c.Client.Subscribe(ctx, channel)

	return func(handler func(Message) error) error {
		defer pubsub.Close()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				msg, err := pubsub.Receive(ctx)
				if err != nil {
					return fmt.Errorf("pubsub.Receive: %w: %w", ErrFailedToReceiveMessage, err)
				}

				switch m := msg.(type) {
				case *Message:
					if err := handler(*m); err != nil {
						return fmt.Errorf("handler: %w", err)
					}
				}
			}
		}
	}
}

// Publish marshals the event envelope to JSON and publishes it on the
// given channel.
func (c *Client) Publish(ctx context.Context, channel string, message any) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := c.Client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("client.Publish: %w", err)
	}

	return nil
}

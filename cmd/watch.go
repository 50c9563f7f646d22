package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arthurdotwork/atrium/internal/infrastructure/config"
	"github.com/arthurdotwork/atrium/internal/infrastructure/redis"
	"github.com/arthurdotwork/atrium/internal/infrastructure/runner"
	"github.com/spf13/cobra"
)

// Watch tails the mirrored session events from redis and prints them.
func Watch(ctx context.Context, c *cobra.Command) error {
	cfgPath, _ := c.Flags().GetString("config")

	cfg, err := config.Load(ctx, cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	redisClient := redis.NewClient(cfg.RedisAddr)

	r := runner.New(ctx)
	r.Go(func() error {
		subscriber := redisClient.Subscribe(ctx, cfg.Channel)
		errCh := make(chan error, 1)

		go func() {
			errCh <- subscriber(func(msg redis.Message) error {
				fmt.Println(msg.Payload)
				return nil
			})
		}()

		select {
		case <-ctx.Done():
			slog.DebugContext(ctx, "context done, stopping watcher")
			return nil
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("subscriber: %w", err)
			}
		}

		return nil
	})

	if err := r.Wait(); err != nil {
		return fmt.Errorf("errGroup.Wait: %w", err)
	}

	return nil
}

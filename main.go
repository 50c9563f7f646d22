package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthurdotwork/atrium/cmd"
	"github.com/arthurdotwork/atrium/internal/infrastructure/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	level := slog.LevelInfo
	if os.Getenv("ATRIUM_DEBUG") != "" {
		level = slog.LevelDebug
	}
	log.Config(ctx, level)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sig
		slog.DebugContext(ctx, "received signal, initiating shutdown")
		cancel()
	}()

	root := &cobra.Command{Use: "atrium"}
	root.PersistentFlags().String("config", "", "path to the config file")

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "sign in and keep the session alive",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Run(ctx, c)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "tail the mirrored session events from redis",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Watch(ctx, c)
		},
	})

	if err := root.ExecuteContext(ctx); err != nil {
		slog.ErrorContext(ctx, "error running command", "error", err)
		os.Exit(1)
	}
}

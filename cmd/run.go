package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arthurdotwork/atrium/internal/adapters/secondary/announcer"
	"github.com/arthurdotwork/atrium/internal/adapters/secondary/rest"
	"github.com/arthurdotwork/atrium/internal/adapters/secondary/stream"
	"github.com/arthurdotwork/atrium/internal/domain"
	"github.com/arthurdotwork/atrium/internal/features/admin"
	"github.com/arthurdotwork/atrium/internal/features/contacts"
	"github.com/arthurdotwork/atrium/internal/features/filetransfer"
	"github.com/arthurdotwork/atrium/internal/features/presence"
	"github.com/arthurdotwork/atrium/internal/infrastructure/config"
	"github.com/arthurdotwork/atrium/internal/infrastructure/eventbus"
	"github.com/arthurdotwork/atrium/internal/infrastructure/log"
	"github.com/arthurdotwork/atrium/internal/infrastructure/redis"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// Run signs a session in and keeps it alive until the context is
// cancelled.
func Run(ctx context.Context, c *cobra.Command) error {
	cfgPath, _ := c.Flags().GetString("config")

	cfg, err := config.Load(ctx, cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	if cfg.Debug {
		log.Config(ctx, slog.LevelDebug)
	}

	creds := domain.Credentials{Username: cfg.Username, Password: cfg.Password}
	if !creds.Present() {
		creds, err = promptCredentials()
		if err != nil {
			return fmt.Errorf("promptCredentials: %w", err)
		}
	}

	bus := eventbus.New()
	defer bus.Close()

	restClient := rest.NewClient(cfg.APIURL, creds, bus)
	transport := stream.NewChannel(cfg.StreamURL, bus, cfg.PingPeriod)

	directory := domain.NewDirectoryService(restClient, transport, bus)
	contactsService := contacts.NewService(restClient)
	presenceService := presence.NewService(transport)
	adminService := admin.NewService(restClient)
	fileService := filetransfer.NewService(restClient)

	session := domain.NewSessionService(
		transport,
		restClient,
		bus,
		directory,
		contactsService,
		presenceService,
		[]domain.FeatureModule{contactsService, presenceService, directory, adminService, fileService},
		domain.Options{Credentials: creds, NoStream: cfg.NoStream, NoTokenRenew: cfg.NoRenew},
	)

	redisClient := redis.NewClient(cfg.RedisAddr)
	eventAnnouncer := announcer.NewAnnouncer(redisClient, bus, cfg.Channel)
	eventAnnouncer.Subscribe(ctx)
	defer eventAnnouncer.Close()

	if err := session.Start(ctx); err != nil {
		return fmt.Errorf("session.Start: %w", err)
	}

	if err := session.Signin(ctx, false); err != nil {
		return fmt.Errorf("session.Signin: %w", err)
	}

	slog.InfoContext(ctx, "session established", "state", session.State().String(), "rooms", len(directory.GetAll()))

	<-ctx.Done()

	slog.DebugContext(ctx, "context done, stopping session")

	stopCtx := context.WithoutCancel(ctx)
	if err := session.Stop(stopCtx); err != nil {
		return fmt.Errorf("session.Stop: %w", err)
	}

	return nil
}

func promptCredentials() (domain.Credentials, error) {
	usernamePrompt := promptui.Prompt{Label: "Username"}
	username, err := usernamePrompt.Run()
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("prompt.Run: %w", err)
	}

	passwordPrompt := promptui.Prompt{Label: "Password", Mask: '*'}
	password, err := passwordPrompt.Run()
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("prompt.Run: %w", err)
	}

	return domain.Credentials{Username: username, Password: password}, nil
}

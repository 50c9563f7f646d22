package presence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arthurdotwork/atrium/internal/domain"
)

// Service announces the user's own availability on the streaming
// channel.
type Service struct {
	transport domain.TransportChannel
}

func NewService(transport domain.TransportChannel) *Service {
	return &Service{transport: transport}
}

func (s *Service) Name() string { return "presence" }

func (s *Service) Start(ctx context.Context, _ domain.TransportChannel, _ domain.AuthGateway) error {
	slog.DebugContext(ctx, "presence module started")
	return nil
}

func (s *Service) Stop(ctx context.Context) error {
	slog.DebugContext(ctx, "presence module stopped")
	return nil
}

// Announce sends the initial global presence, part of every
// (re-)synchronization.
func (s *Service) Announce(ctx context.Context) error {
	if err := s.transport.SendPresence(ctx, "", true); err != nil {
		return fmt.Errorf("transport.SendPresence: %w", err)
	}

	return nil
}

// SetAvailable toggles the user's global availability.
func (s *Service) SetAvailable(ctx context.Context, available bool) error {
	if err := s.transport.SendPresence(ctx, "", available); err != nil {
		return fmt.Errorf("transport.SendPresence: %w", err)
	}

	return nil
}

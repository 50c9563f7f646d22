package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arthurdotwork/atrium/internal/domain"
)

type API interface {
	CreateUser(ctx context.Context, username, displayName string) (domain.Contact, error)
	DeleteUser(ctx context.Context, id string) error
}

// Service exposes the administrative operations of the control channel.
type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

func (s *Service) Name() string { return "admin" }

func (s *Service) Start(ctx context.Context, _ domain.TransportChannel, _ domain.AuthGateway) error {
	slog.DebugContext(ctx, "admin module started")
	return nil
}

func (s *Service) Stop(ctx context.Context) error {
	slog.DebugContext(ctx, "admin module stopped")
	return nil
}

func (s *Service) CreateUser(ctx context.Context, username, displayName string) (domain.Contact, error) {
	if username == "" {
		return domain.Contact{}, fmt.Errorf("empty username: %w", domain.ErrBadRequest)
	}

	contact, err := s.api.CreateUser(ctx, username, displayName)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("api.CreateUser: %w", err)
	}

	return contact, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("empty id: %w", domain.ErrBadRequest)
	}

	if err := s.api.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("api.DeleteUser: %w", err)
	}

	return nil
}

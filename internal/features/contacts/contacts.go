package contacts

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/arthurdotwork/atrium/internal/domain"
)

type RosterAPI interface {
	GetRoster(ctx context.Context) ([]domain.Contact, error)
}

// Service caches the identity/contact directory. The cache is refreshed
// as part of every (re-)synchronization.
type Service struct {
	api RosterAPI

	mu     sync.RWMutex
	roster map[string]domain.Contact
}

func NewService(api RosterAPI) *Service {
	return &Service{
		api:    api,
		roster: make(map[string]domain.Contact),
	}
}

func (s *Service) Name() string { return "contacts" }

func (s *Service) Start(ctx context.Context, _ domain.TransportChannel, _ domain.AuthGateway) error {
	slog.DebugContext(ctx, "contacts module started")
	return nil
}

func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.roster = make(map[string]domain.Contact)
	s.mu.Unlock()

	slog.DebugContext(ctx, "contacts module stopped")
	return nil
}

// Resync replaces the cached roster with the backend's.
func (s *Service) Resync(ctx context.Context) error {
	roster, err := s.api.GetRoster(ctx)
	if err != nil {
		return fmt.Errorf("api.GetRoster: %w", err)
	}

	next := make(map[string]domain.Contact, len(roster))
	for _, contact := range roster {
		next[contact.ID] = contact
	}

	s.mu.Lock()
	s.roster = next
	s.mu.Unlock()

	slog.DebugContext(ctx, "roster refreshed", "contacts", len(roster))
	return nil
}

func (s *Service) GetAll() []domain.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Contact, 0, len(s.roster))
	for _, contact := range s.roster {
		out = append(out, contact)
	}

	return out
}

// GetByID returns the cached contact, or a zero contact when unknown.
func (s *Service) GetByID(id string) (domain.Contact, error) {
	if id == "" {
		return domain.Contact{}, fmt.Errorf("empty id: %w", domain.ErrBadRequest)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.roster[id], nil
}

package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Credentials gate session startup; how they are provisioned is the
// caller's concern.
type Credentials struct {
	Username string
	Password string
}

func (c Credentials) Present() bool {
	return c.Username != "" && c.Password != ""
}

// Options tune the session modes. NoStream skips the streaming channel
// entirely (and with it the re-synchronization step); NoTokenRenew skips
// interactive token renewal.
type Options struct {
	Credentials  Credentials
	NoStream     bool
	NoTokenRenew bool
}

// SessionService orchestrates the session lifecycle: it sequences the
// startup of the feature modules, drives sign-in and reconnection, and
// monitors token renewal. It owns the SessionState; everything else only
// reads snapshots of it.
type SessionService struct {
	transport TransportChannel
	gateway   AuthGateway
	bus       Bus
	directory *DirectoryService
	contacts  ContactsDirectory
	presence  PresenceAnnouncer
	features  []FeatureModule
	opts      Options

	mu      sync.RWMutex
	state   SessionState
	started []FeatureModule

	subscriptions map[Topic]string
}

func NewSessionService(
	transport TransportChannel,
	gateway AuthGateway,
	bus Bus,
	directory *DirectoryService,
	contacts ContactsDirectory,
	presence PresenceAnnouncer,
	features []FeatureModule,
	opts Options,
) *SessionService {
	return &SessionService{
		transport:     transport,
		gateway:       gateway,
		bus:           bus,
		directory:     directory,
		contacts:      contacts,
		presence:      presence,
		features:      features,
		opts:          opts,
		state:         StateInit,
		subscriptions: make(map[Topic]string),
	}
}

// State returns a read-only snapshot of the current session state.
func (s *SessionService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *SessionService) transitionTo(ctx context.Context, state SessionState) {
	s.mu.Lock()
	previous := s.state
	s.state = state
	s.mu.Unlock()

	slog.DebugContext(ctx, "session state changed", "from", previous.String(), "to", state.String())
	s.bus.Publish(ctx, StateChanged{State: state})
}

// Start verifies the credentials, wires the lifecycle event handlers and
// starts every feature module in dependency order. The first failing
// module aborts the whole sequence; no partial start is reported as
// Started.
func (s *SessionService) Start(ctx context.Context) error {
	if !s.opts.Credentials.Present() {
		return fmt.Errorf("credentials are missing: %w", ErrBadRequest)
	}

	s.subscriptions[TopicSignInRequired] = s.bus.Subscribe(TopicSignInRequired, func(ctx context.Context, _ Event) {
		if err := s.Signin(ctx, true); err != nil {
			slog.ErrorContext(ctx, "error signing in after token expiry", "error", err)
		}
	})

	s.subscriptions[TopicTransportReconnectAttempt] = s.bus.Subscribe(TopicTransportReconnectAttempt, func(ctx context.Context, _ Event) {
		s.transitionTo(ctx, StateReconnecting)
	})

	s.subscriptions[TopicTransportDisconnected] = s.bus.Subscribe(TopicTransportDisconnected, func(ctx context.Context, _ Event) {
		s.transitionTo(ctx, StateDisconnected)
	})

	s.subscriptions[TopicTransportReconnected] = s.bus.Subscribe(TopicTransportReconnected, func(ctx context.Context, _ Event) {
		s.onReconnected(ctx)
	})

	for _, feature := range s.features {
		if err := feature.Start(ctx, s.transport, s.gateway); err != nil {
			return fmt.Errorf("start %s: %w", feature.Name(), err)
		}

		s.mu.Lock()
		s.started = append(s.started, feature)
		s.mu.Unlock()

		slog.DebugContext(ctx, "feature module started", "module", feature.Name())
	}

	s.transitionTo(ctx, StateStarted)
	return nil
}

// Signin authenticates on the control channel, establishes the streaming
// session and re-synchronizes the local state. Connected is reported as
// soon as authentication succeeds, Ready only once re-sync completed.
// forceDisconnect tears the streaming session down first, used when a
// renewed identity requires a clean resumption.
func (s *SessionService) Signin(ctx context.Context, forceDisconnect bool) error {
	if forceDisconnect {
		slog.DebugContext(ctx, "forcing streaming session disconnect before sign-in")
		if err := s.transport.Disconnect(ctx); err != nil {
			return fmt.Errorf("transport.Disconnect: %w", err)
		}
	}

	s.transitionTo(ctx, StateConnecting)

	session, err := s.gateway.Authenticate(ctx)
	if err != nil {
		return fmt.Errorf("gateway.Authenticate: %w", err)
	}

	s.directory.SetIdentity(session.Identity)

	if !s.opts.NoStream {
		if err := s.transport.Connect(ctx, session.Identity); err != nil {
			return fmt.Errorf("transport.Connect: %w", err)
		}
	}

	s.armTokenSurvey(ctx)
	s.transitionTo(ctx, StateConnected)

	if s.opts.NoStream {
		slog.DebugContext(ctx, "no streaming channel, skipping re-synchronization")
		return nil
	}

	if err := s.resynchronize(ctx); err != nil {
		return fmt.Errorf("resynchronize: %w", err)
	}

	s.transitionTo(ctx, StateReady)
	return nil
}

// Stop shuts the modules down in reverse dependency order. A failing
// stop aborts the remaining sequence and is reported to the caller.
func (s *SessionService) Stop(ctx context.Context) error {
	s.mu.Lock()
	started := s.started
	s.started = nil
	s.mu.Unlock()

	for i := len(started) - 1; i >= 0; i-- {
		if err := started[i].Stop(ctx); err != nil {
			return fmt.Errorf("stop %s: %w", started[i].Name(), err)
		}

		slog.DebugContext(ctx, "feature module stopped", "module", started[i].Name())
	}

	if !s.opts.NoStream {
		if err := s.transport.Disconnect(ctx); err != nil {
			return fmt.Errorf("transport.Disconnect: %w", err)
		}
	}

	for topic, id := range s.subscriptions {
		s.bus.Unsubscribe(topic, id)
		delete(s.subscriptions, topic)
	}

	s.transitionTo(ctx, StateStopped)
	return nil
}

// resynchronize refreshes the contact roster, the room directory and the
// initial presence, in that order. The first failing step aborts the
// rest.
func (s *SessionService) resynchronize(ctx context.Context) error {
	if err := s.contacts.Resync(ctx); err != nil {
		return fmt.Errorf("contacts.Resync: %w", err)
	}

	if err := s.directory.Refresh(ctx); err != nil {
		return fmt.Errorf("directory.Refresh: %w", err)
	}

	if err := s.presence.Announce(ctx); err != nil {
		return fmt.Errorf("presence.Announce: %w", err)
	}

	return nil
}

// onReconnected re-establishes the control channel and re-synchronizes.
// The feature modules stay registered; only the session-scoped state is
// rebuilt. A failure ends the attempt in Failed; the transport's own
// retry may trigger further attempts.
func (s *SessionService) onReconnected(ctx context.Context) {
	if _, err := s.gateway.Reconnect(ctx); err != nil {
		slog.ErrorContext(ctx, "error reconnecting control channel", "error", err)
		s.transitionTo(ctx, StateFailed)
		return
	}

	s.transitionTo(ctx, StateConnected)

	if err := s.resynchronize(ctx); err != nil {
		slog.ErrorContext(ctx, "error re-synchronizing after reconnect", "error", err)
		s.transitionTo(ctx, StateFailed)
		return
	}

	s.transitionTo(ctx, StateReady)
}

// armTokenSurvey subscribes to renewal and expiry notifications. Expiry
// tears both listeners down before publishing sign-in-required, so the
// recovery runs outside the notification callback and never twice.
func (s *SessionService) armTokenSurvey(ctx context.Context) {
	if s.opts.NoTokenRenew || s.opts.NoStream {
		slog.DebugContext(ctx, "token survey disabled")
		return
	}

	var renewedID, expiredID string

	renewedID = s.bus.Subscribe(TopicTokenRenewed, func(ctx context.Context, _ Event) {
		slog.DebugContext(ctx, "token renewed")
		s.gateway.StartTokenSurvey(ctx)
	})

	expiredID = s.bus.Subscribe(TopicTokenExpired, func(ctx context.Context, _ Event) {
		slog.DebugContext(ctx, "token expired, sign-in required")
		s.bus.Unsubscribe(TopicTokenRenewed, renewedID)
		s.bus.Unsubscribe(TopicTokenExpired, expiredID)
		s.bus.Publish(ctx, SignInRequired{})
	})

	s.gateway.StartTokenSurvey(ctx)
}

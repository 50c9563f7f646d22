package domain

import (
	"context"
)

// Identity is the backend identifier of the logged-in user.
type Identity struct {
	UserID  string
	Address string
}

type Token struct {
	Value string
}

// AuthSession is what the gateway hands back after authentication.
type AuthSession struct {
	Identity Identity
	Token    Token
}

// Bus is the process-wide publish/subscribe hub. Subscribe returns a
// handle for Unsubscribe. Handlers for one topic run sequentially, in
// publication order.
type Bus interface {
	Publish(ctx context.Context, event Event)
	Subscribe(topic Topic, handler func(ctx context.Context, event Event)) string
	Unsubscribe(topic Topic, id string)
}

// TransportChannel is the long-lived streaming connection. Connectivity
// changes and backend pushes surface on the bus, not through return
// values.
type TransportChannel interface {
	Connect(ctx context.Context, identity Identity) error
	Disconnect(ctx context.Context) error
	// SendPresence announces availability on a room address. An empty
	// address announces the user's own global presence.
	SendPresence(ctx context.Context, address string, available bool) error
}

// AuthGateway is the token-based control channel.
type AuthGateway interface {
	Authenticate(ctx context.Context) (AuthSession, error)
	Reconnect(ctx context.Context) (Token, error)
	// StartTokenSurvey arms expiry monitoring; renewal and expiry are
	// reported through the bus.
	StartTokenSurvey(ctx context.Context)
}

// RoomAPI is the backend room surface. Every mutation either returns the
// fresh authoritative snapshot or leaves the caller to re-fetch it.
type RoomAPI interface {
	CreateRoom(ctx context.Context, name, description string, withHistory bool) (Room, error)
	GetRoom(ctx context.Context, id string) (Room, error)
	GetRooms(ctx context.Context) ([]Room, error)
	DeleteRoom(ctx context.Context, id string) error
	InviteMember(ctx context.Context, contactID, roomID string, asModerator, withInvitation bool, reason string) error
	CancelInvitation(ctx context.Context, contactID, roomID string) (Room, error)
	UnsubscribeMember(ctx context.Context, contactID, roomID string) (Room, error)
	LeaveRoom(ctx context.Context, roomID string) error
	AcceptInvitation(ctx context.Context, roomID string) error
	DeclineInvitation(ctx context.Context, roomID string) error
	SetCustomData(ctx context.Context, roomID string, data map[string]string) (map[string]string, error)
}

// FeatureModule is a subsystem started and stopped by the orchestrator.
// Modules keep no session state of their own beyond what Start hands
// them.
type FeatureModule interface {
	Name() string
	Start(ctx context.Context, transport TransportChannel, gateway AuthGateway) error
	Stop(ctx context.Context) error
}

// ContactsDirectory refreshes the identity/contact roster during
// re-synchronization.
type ContactsDirectory interface {
	Resync(ctx context.Context) error
}

// PresenceAnnouncer sends the user's initial global presence during
// re-synchronization.
type PresenceAnnouncer interface {
	Announce(ctx context.Context) error
}

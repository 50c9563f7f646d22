package domain

// Topic identifies one event stream on the bus. Ordering is FIFO within
// a topic; nothing is guaranteed across topics.
type Topic string

const (
	TopicTransportConnected        Topic = "transport.connected"
	TopicTransportReconnectAttempt Topic = "transport.reconnect-attempt"
	TopicTransportReconnected      Topic = "transport.reconnected"
	TopicTransportDisconnected     Topic = "transport.disconnected"

	TopicTokenRenewed   Topic = "auth.token-renewed"
	TopicTokenExpired   Topic = "auth.token-expired"
	TopicSignInRequired Topic = "session.sign-in-required"
	TopicStateChanged   Topic = "session.state-changed"

	TopicInvitationReceived    Topic = "room.invitation-received"
	TopicAffiliationChanged    Topic = "room.affiliation-changed"
	TopicOwnAffiliationChanged Topic = "room.own-affiliation-changed"
	TopicRoomPresenceChanged   Topic = "room.presence-changed"

	TopicInvitationDetailsReceived    Topic = "room.invitation-details-received"
	TopicAffiliationDetailsChanged    Topic = "room.affiliation-details-changed"
	TopicOwnAffiliationDetailsChanged Topic = "room.own-affiliation-details-changed"
)

// Event is a tagged payload published on the bus.
type Event interface {
	Topic() Topic
}

type TransportConnected struct{}

func (TransportConnected) Topic() Topic { return TopicTransportConnected }

type TransportReconnectAttempt struct{}

func (TransportReconnectAttempt) Topic() Topic { return TopicTransportReconnectAttempt }

type TransportReconnected struct{}

func (TransportReconnected) Topic() Topic { return TopicTransportReconnected }

type TransportDisconnected struct{}

func (TransportDisconnected) Topic() Topic { return TopicTransportDisconnected }

type TokenRenewed struct{}

func (TokenRenewed) Topic() Topic { return TopicTokenRenewed }

type TokenExpired struct{}

func (TokenExpired) Topic() Topic { return TopicTokenExpired }

type SignInRequired struct{}

func (SignInRequired) Topic() Topic { return TopicSignInRequired }

type StateChanged struct {
	State SessionState
}

func (StateChanged) Topic() Topic { return TopicStateChanged }

// InvitationReceived is pushed by the backend when the local user is
// invited to a room it may not know about yet.
type InvitationReceived struct {
	RoomID string
}

func (InvitationReceived) Topic() Topic { return TopicInvitationReceived }

// AffiliationChanged is pushed by the backend when another member's
// membership changed in a room the local user belongs to.
type AffiliationChanged struct {
	RoomID   string
	MemberID string
	Status   MembershipStatus
}

func (AffiliationChanged) Topic() Topic { return TopicAffiliationChanged }

// OwnAffiliationChanged is pushed by the backend when the local user's
// own membership changed.
type OwnAffiliationChanged struct {
	RoomID string
	Status MembershipStatus
}

func (OwnAffiliationChanged) Topic() Topic { return TopicOwnAffiliationChanged }

// RoomPresenceChanged is pushed by the backend once the local user's
// presence in a room has been acknowledged.
type RoomPresenceChanged struct {
	Address string
}

func (RoomPresenceChanged) Topic() Topic { return TopicRoomPresenceChanged }

// InvitationDetailsReceived carries the authoritative room snapshot after
// an invitation push has been resolved.
type InvitationDetailsReceived struct {
	Room Room
}

func (InvitationDetailsReceived) Topic() Topic { return TopicInvitationDetailsReceived }

type AffiliationDetailsChanged struct {
	Room Room
}

func (AffiliationDetailsChanged) Topic() Topic { return TopicAffiliationDetailsChanged }

type OwnAffiliationDetailsChanged struct {
	Room Room
}

func (OwnAffiliationDetailsChanged) Topic() Topic { return TopicOwnAffiliationDetailsChanged }

package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// DirectoryService owns the authoritative in-memory set of known rooms.
// Every mutation goes through it so the membership invariants hold; local
// state is only written after the backend confirmed the change.
type DirectoryService struct {
	api       RoomAPI
	transport TransportChannel
	bus       Bus

	mu       sync.RWMutex
	identity Identity
	rooms    map[string]Room

	subscriptions map[Topic]string
}

func NewDirectoryService(api RoomAPI, transport TransportChannel, bus Bus) *DirectoryService {
	return &DirectoryService{
		api:           api,
		transport:     transport,
		bus:           bus,
		rooms:         make(map[string]Room),
		subscriptions: make(map[Topic]string),
	}
}

func (s *DirectoryService) Name() string { return "rooms" }

// Start subscribes the directory to the backend-pushed membership events.
func (s *DirectoryService) Start(ctx context.Context, _ TransportChannel, _ AuthGateway) error {
	s.subscriptions[TopicInvitationReceived] = s.bus.Subscribe(TopicInvitationReceived, s.onInvitationReceived)
	s.subscriptions[TopicAffiliationChanged] = s.bus.Subscribe(TopicAffiliationChanged, s.onAffiliationChanged)
	s.subscriptions[TopicOwnAffiliationChanged] = s.bus.Subscribe(TopicOwnAffiliationChanged, s.onOwnAffiliationChanged)

	slog.DebugContext(ctx, "room directory started")
	return nil
}

func (s *DirectoryService) Stop(ctx context.Context) error {
	for topic, id := range s.subscriptions {
		s.bus.Unsubscribe(topic, id)
		delete(s.subscriptions, topic)
	}

	s.mu.Lock()
	s.rooms = make(map[string]Room)
	s.mu.Unlock()

	slog.DebugContext(ctx, "room directory stopped")
	return nil
}

// SetIdentity binds the directory to the logged-in user. The orchestrator
// calls it after each successful authentication.
func (s *DirectoryService) SetIdentity(identity Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
}

func (s *DirectoryService) self() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Create remote-creates a room and waits for the backend to acknowledge
// the local user's presence in it before registering it locally.
func (s *DirectoryService) Create(ctx context.Context, name, description string, withHistory bool) (Room, error) {
	if name == "" {
		return Room{}, fmt.Errorf("empty name: %w", ErrBadRequest)
	}

	if description == "" {
		return Room{}, fmt.Errorf("empty description: %w", ErrBadRequest)
	}

	room, err := s.api.CreateRoom(ctx, name, description, withHistory)
	if err != nil {
		return Room{}, fmt.Errorf("api.CreateRoom: %w", err)
	}

	confirmed := make(chan struct{}, 1)
	subID := s.bus.Subscribe(TopicRoomPresenceChanged, func(ctx context.Context, event Event) {
		if e, ok := event.(RoomPresenceChanged); ok && e.Address == room.Address {
			select {
			case confirmed <- struct{}{}:
			default:
			}
		}
	})
	defer s.bus.Unsubscribe(TopicRoomPresenceChanged, subID)

	if err := s.transport.SendPresence(ctx, room.Address, true); err != nil {
		return Room{}, fmt.Errorf("transport.SendPresence: %w", err)
	}

	select {
	case <-confirmed:
	case <-ctx.Done():
		return Room{}, fmt.Errorf("waiting for room presence: %w", ctx.Err())
	}

	s.upsert(room)

	slog.DebugContext(ctx, "room created", "room_id", room.ID)
	return room.Snapshot(), nil
}

// IsClosed reports whether no membership is invited or accepted anymore.
func (s *DirectoryService) IsClosed(room Room) (bool, error) {
	if room.ID == "" {
		return false, fmt.Errorf("empty room: %w", ErrBadRequest)
	}

	return room.Closed(), nil
}

// Close unsubscribes every member and then the local user, one remote
// call at a time. Removing the local user last avoids racing with the
// backend notifications emitted for the other members.
func (s *DirectoryService) Close(ctx context.Context, room Room) (Room, error) {
	if room.ID == "" {
		return Room{}, fmt.Errorf("empty room: %w", ErrBadRequest)
	}

	if room.Closed() {
		slog.DebugContext(ctx, "room already closed", "room_id", room.ID)
		return room, nil
	}

	self := s.self()

	queue := make([]string, 0, len(room.Members)+1)
	for _, m := range room.Members {
		if m.MemberID != self.UserID {
			queue = append(queue, m.MemberID)
		}
	}
	queue = append(queue, self.UserID)

	for _, memberID := range queue {
		if _, err := s.Remove(ctx, memberID, room); err != nil {
			return Room{}, fmt.Errorf("remove %s: %w", memberID, err)
		}
	}

	updated, err := s.api.GetRoom(ctx, room.ID)
	if err != nil {
		return Room{}, fmt.Errorf("api.GetRoom: %w", err)
	}

	s.upsert(updated)

	slog.DebugContext(ctx, "room closed", "room_id", room.ID)
	return updated.Snapshot(), nil
}

// Delete closes the room first, then remote-deletes it and drops it from
// the local set. A failing close aborts the delete.
func (s *DirectoryService) Delete(ctx context.Context, room Room) error {
	if room.ID == "" {
		return fmt.Errorf("empty room: %w", ErrBadRequest)
	}

	updated, err := s.Close(ctx, room)
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	if err := s.api.DeleteRoom(ctx, updated.ID); err != nil {
		return fmt.Errorf("api.DeleteRoom: %w", err)
	}

	s.mu.Lock()
	delete(s.rooms, updated.ID)
	s.mu.Unlock()

	slog.DebugContext(ctx, "room deleted", "room_id", updated.ID)
	return nil
}

// Leave removes the local user from the room. A moderator may only leave
// when another accepted moderator remains.
func (s *DirectoryService) Leave(ctx context.Context, room Room) error {
	if room.ID == "" {
		return fmt.Errorf("empty room: %w", ErrBadRequest)
	}

	self := s.self()
	if !room.HasOtherAcceptedModerator(self.UserID) {
		return fmt.Errorf("no other accepted moderator in room %s: %w", room.ID, ErrForbidden)
	}

	if err := s.api.LeaveRoom(ctx, room.ID); err != nil {
		return fmt.Errorf("api.LeaveRoom: %w", err)
	}

	if err := s.transport.SendPresence(ctx, room.Address, false); err != nil {
		return fmt.Errorf("transport.SendPresence: %w", err)
	}

	slog.DebugContext(ctx, "room left", "room_id", room.ID)
	return nil
}

// Invite invites a contact into the room and refreshes the local snapshot.
func (s *DirectoryService) Invite(ctx context.Context, contactID string, room Room, asModerator, withInvitation bool, reason string) (Room, error) {
	if contactID == "" {
		return Room{}, fmt.Errorf("empty contact: %w", ErrBadRequest)
	}

	if room.ID == "" {
		return Room{}, fmt.Errorf("empty room: %w", ErrBadRequest)
	}

	if err := s.api.InviteMember(ctx, contactID, room.ID, asModerator, withInvitation, reason); err != nil {
		return Room{}, fmt.Errorf("api.InviteMember: %w", err)
	}

	updated, err := s.api.GetRoom(ctx, room.ID)
	if err != nil {
		return Room{}, fmt.Errorf("api.GetRoom: %w", err)
	}

	s.upsert(updated)

	slog.DebugContext(ctx, "contact invited", "room_id", room.ID, "contact_id", contactID)
	return updated.Snapshot(), nil
}

// Remove removes a contact from the room. An invited contact has its
// invitation cancelled, an accepted contact is unsubscribed, anyone else
// is a no-op returning the room unchanged.
func (s *DirectoryService) Remove(ctx context.Context, contactID string, room Room) (Room, error) {
	if contactID == "" {
		return Room{}, fmt.Errorf("empty contact: %w", ErrBadRequest)
	}

	if room.ID == "" {
		return Room{}, fmt.Errorf("empty room: %w", ErrBadRequest)
	}

	membership, _ := room.Member(contactID)

	switch membership.Status {
	case StatusInvited:
		updated, err := s.api.CancelInvitation(ctx, contactID, room.ID)
		if err != nil {
			return Room{}, fmt.Errorf("api.CancelInvitation: %w", err)
		}

		s.upsert(updated)
		return updated.Snapshot(), nil
	case StatusAccepted:
		updated, err := s.api.UnsubscribeMember(ctx, contactID, room.ID)
		if err != nil {
			return Room{}, fmt.Errorf("api.UnsubscribeMember: %w", err)
		}

		s.upsert(updated)
		return updated.Snapshot(), nil
	default:
		slog.DebugContext(ctx, "contact not a member of room", "room_id", room.ID, "contact_id", contactID)
		return room, nil
	}
}

// AcceptInvitation confirms a pending invitation and announces presence
// in the room, mirroring Create.
func (s *DirectoryService) AcceptInvitation(ctx context.Context, room Room) (Room, error) {
	if room.ID == "" {
		return Room{}, fmt.Errorf("empty room: %w", ErrBadRequest)
	}

	if err := s.api.AcceptInvitation(ctx, room.ID); err != nil {
		return Room{}, fmt.Errorf("api.AcceptInvitation: %w", err)
	}

	if err := s.transport.SendPresence(ctx, room.Address, true); err != nil {
		return Room{}, fmt.Errorf("transport.SendPresence: %w", err)
	}

	updated, err := s.api.GetRoom(ctx, room.ID)
	if err != nil {
		return Room{}, fmt.Errorf("api.GetRoom: %w", err)
	}

	s.upsert(updated)
	return updated.Snapshot(), nil
}

// DeclineInvitation declines a pending invitation.
func (s *DirectoryService) DeclineInvitation(ctx context.Context, room Room) (Room, error) {
	if room.ID == "" {
		return Room{}, fmt.Errorf("empty room: %w", ErrBadRequest)
	}

	if err := s.api.DeclineInvitation(ctx, room.ID); err != nil {
		return Room{}, fmt.Errorf("api.DeclineInvitation: %w", err)
	}

	updated, err := s.api.GetRoom(ctx, room.ID)
	if err != nil {
		return Room{}, fmt.Errorf("api.GetRoom: %w", err)
	}

	s.upsert(updated)
	return updated.Snapshot(), nil
}

// SetCustomData replaces the room's custom data. The backend echoes the
// accepted value, so no full re-fetch is needed.
func (s *DirectoryService) SetCustomData(ctx context.Context, room Room, data map[string]string) (Room, error) {
	if room.ID == "" {
		return Room{}, fmt.Errorf("empty room: %w", ErrBadRequest)
	}

	accepted, err := s.api.SetCustomData(ctx, room.ID, data)
	if err != nil {
		return Room{}, fmt.Errorf("api.SetCustomData: %w", err)
	}

	s.mu.Lock()
	stored, ok := s.rooms[room.ID]
	if !ok {
		stored = room
	}
	stored = stored.Snapshot()
	stored.CustomData = accepted
	s.rooms[room.ID] = stored
	s.mu.Unlock()

	return stored.Snapshot(), nil
}

// Refresh loads the full room list from the backend and announces
// presence in every room the local user has accepted.
func (s *DirectoryService) Refresh(ctx context.Context) error {
	rooms, err := s.api.GetRooms(ctx)
	if err != nil {
		return fmt.Errorf("api.GetRooms: %w", err)
	}

	next := make(map[string]Room, len(rooms))
	for _, room := range rooms {
		next[room.ID] = room
	}

	self := s.self()

	s.mu.Lock()
	s.rooms = next
	s.mu.Unlock()

	for _, room := range rooms {
		membership, ok := room.Member(self.UserID)
		if !ok || membership.Status != StatusAccepted {
			continue
		}

		if err := s.transport.SendPresence(ctx, room.Address, true); err != nil {
			slog.ErrorContext(ctx, "error announcing room presence", "room_id", room.ID, "error", err)
		}
	}

	slog.DebugContext(ctx, "room directory refreshed", "rooms", len(rooms))
	return nil
}

// GetAll returns a snapshot of every known room.
func (s *DirectoryService) GetAll() []Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		out = append(out, room.Snapshot())
	}

	return out
}

// GetByID returns the room with the given id, or a zero room when unknown.
func (s *DirectoryService) GetByID(id string) (Room, error) {
	if id == "" {
		return Room{}, fmt.Errorf("empty id: %w", ErrBadRequest)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if room, ok := s.rooms[id]; ok {
		return room.Snapshot(), nil
	}

	return Room{}, nil
}

// GetByAddress returns the room bound to the given transport address, or
// a zero room when unknown.
func (s *DirectoryService) GetByAddress(address string) (Room, error) {
	if address == "" {
		return Room{}, fmt.Errorf("empty address: %w", ErrBadRequest)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.rooms {
		if room.Address == address {
			return room.Snapshot(), nil
		}
	}

	return Room{}, nil
}

// GetAllPending returns the rooms where the local user holds an
// unresolved invitation.
func (s *DirectoryService) GetAllPending() []Room {
	self := s.self()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Room
	for _, room := range s.rooms {
		if membership, ok := room.Member(self.UserID); ok && membership.Status == StatusInvited {
			out = append(out, room.Snapshot())
		}
	}

	return out
}

func (s *DirectoryService) upsert(room Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room
}

func (s *DirectoryService) onInvitationReceived(ctx context.Context, event Event) {
	e, ok := event.(InvitationReceived)
	if !ok {
		return
	}

	updated, err := s.api.GetRoom(ctx, e.RoomID)
	if err != nil {
		slog.ErrorContext(ctx, "error fetching room after invitation", "room_id", e.RoomID, "error", err)
		return
	}

	s.upsert(updated)
	s.bus.Publish(ctx, InvitationDetailsReceived{Room: updated.Snapshot()})
}

func (s *DirectoryService) onAffiliationChanged(ctx context.Context, event Event) {
	e, ok := event.(AffiliationChanged)
	if !ok {
		return
	}

	updated, err := s.api.GetRoom(ctx, e.RoomID)
	if err != nil {
		slog.ErrorContext(ctx, "error fetching room after affiliation change", "room_id", e.RoomID, "error", err)
		return
	}

	s.upsert(updated)
	s.bus.Publish(ctx, AffiliationDetailsChanged{Room: updated.Snapshot()})
}

func (s *DirectoryService) onOwnAffiliationChanged(ctx context.Context, event Event) {
	e, ok := event.(OwnAffiliationChanged)
	if !ok {
		return
	}

	updated, err := s.api.GetRoom(ctx, e.RoomID)
	if err != nil {
		slog.ErrorContext(ctx, "error fetching room after own affiliation change", "room_id", e.RoomID, "error", err)
		return
	}

	s.upsert(updated)

	// Covers both a fresh membership and a re-acceptance after being
	// re-invited.
	if e.Status == StatusAccepted {
		if err := s.transport.SendPresence(ctx, updated.Address, true); err != nil {
			slog.ErrorContext(ctx, "error announcing room presence", "room_id", updated.ID, "error", err)
		}
	}

	s.bus.Publish(ctx, OwnAffiliationDetailsChanged{Room: updated.Snapshot()})
}

package domain

type MemberRole string

const (
	RoleModerator MemberRole = "moderator"
	RoleMember    MemberRole = "member"
)

type MembershipStatus string

const (
	StatusInvited  MembershipStatus = "invited"
	StatusAccepted MembershipStatus = "accepted"
	StatusDeclined MembershipStatus = "declined"
	StatusLeft     MembershipStatus = "left"
)

// Membership scopes one user's relationship to one room.
type Membership struct {
	MemberID string
	Role     MemberRole
	Status   MembershipStatus
}

func (m Membership) Active() bool {
	return m.Status == StatusInvited || m.Status == StatusAccepted
}

// Room is a multi-party conversation with persistent membership. The
// authoritative copy lives in the backend; local copies are always full
// snapshots replaced as a whole, never merged field by field.
type Room struct {
	ID          string
	Address     string
	Name        string
	Description string
	CustomData  map[string]string
	Members     []Membership
}

// Closed reports whether no membership is invited or accepted anymore.
func (r Room) Closed() bool {
	for _, m := range r.Members {
		if m.Active() {
			return false
		}
	}

	return true
}

// Member returns the membership of the given user, if any.
func (r Room) Member(memberID string) (Membership, bool) {
	for _, m := range r.Members {
		if m.MemberID == memberID {
			return m, true
		}
	}

	return Membership{}, false
}

// HasOtherAcceptedModerator reports whether a moderator other than the
// given user has accepted the room. A moderator may only leave when this
// holds.
func (r Room) HasOtherAcceptedModerator(memberID string) bool {
	for _, m := range r.Members {
		if m.MemberID == memberID {
			continue
		}

		if m.Role == RoleModerator && m.Status == StatusAccepted {
			return true
		}
	}

	return false
}

// Snapshot returns a deep copy so callers never observe in-place mutation.
func (r Room) Snapshot() Room {
	out := r

	if r.Members != nil {
		out.Members = make([]Membership, len(r.Members))
		copy(out.Members, r.Members)
	}

	if r.CustomData != nil {
		out.CustomData = make(map[string]string, len(r.CustomData))
		for k, v := range r.CustomData {
			out.CustomData[k] = v
		}
	}

	return out
}

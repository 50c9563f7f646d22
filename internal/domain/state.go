package domain

// SessionState is the orchestrator's view of the session lifecycle.
// Exactly one state is active at a time; only transitions change it.
type SessionState int

const (
	StateInit SessionState = iota
	StateStarted
	StateConnecting
	StateConnected
	StateReady
	StateReconnecting
	StateDisconnected
	StateFailed
	StateStopped
)

func (s SessionState) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateStarted:
		return "started"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateReady:
		return "ready"
	case StateReconnecting:
		return "reconnecting"
	case StateDisconnected:
		return "disconnected"
	case StateFailed:
		return "failed"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

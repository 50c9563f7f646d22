package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/arthurdotwork/atrium/internal/domain"
	"github.com/gorilla/websocket"
)

const (
	writeTimeout      = 10 * time.Second
	redialAttempts    = 3
	redialBackoff     = 2 * time.Second
	defaultPingPeriod = 54 * time.Second
)

// Channel is the streaming-protocol adapter. It keeps a websocket open
// towards the backend, forwards backend pushes onto the bus and reports
// its own connectivity through the transport topics.
type Channel struct {
	url        string
	bus        domain.Bus
	pingPeriod time.Duration

	mu       sync.Mutex
	conn     *websocket.Conn
	cancel   context.CancelFunc
	identity domain.Identity
}

func NewChannel(url string, bus domain.Bus, pingPeriod time.Duration) *Channel {
	if pingPeriod <= 0 {
		pingPeriod = defaultPingPeriod
	}

	return &Channel{
		url:        url,
		bus:        bus,
		pingPeriod: pingPeriod,
	}
}

func (c *Channel) Connect(ctx context.Context, identity domain.Identity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("websocket.DialContext: %w", err)
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.conn = conn
	c.cancel = cancel
	c.identity = identity

	go c.readLoop(loopCtx, conn)
	go c.pingLoop(loopCtx, conn)

	c.bus.Publish(ctx, domain.TransportConnected{})
	return nil
}

func (c *Channel) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	c.cancel()
	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("conn.Close: %w", err)
	}

	c.conn = nil
	return nil
}

type presenceMessage struct {
	Type      string `json:"type"`
	Address   string `json:"address"`
	Available bool   `json:"available"`
}

// SendPresence announces availability on a room address; an empty
// address targets the user's own global presence.
func (c *Channel) SendPresence(ctx context.Context, address string, available bool) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return fmt.Errorf("streaming session is not connected: %w", domain.ErrRemoteFailure)
	}

	msg := presenceMessage{Type: "presence", Address: address, Available: available}

	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("conn.SetWriteDeadline: %w", err)
	}

	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("conn.WriteJSON: %w", err)
	}

	return nil
}

type pushMessage struct {
	Type     string `json:"type"`
	RoomID   string `json:"roomId"`
	MemberID string `json:"memberId"`
	Status   string `json:"status"`
	Address  string `json:"address"`
}

func (c *Channel) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			slog.ErrorContext(ctx, "error reading from streaming session", "error", err)
			c.redial(ctx)
			return
		}

		var msg pushMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			slog.ErrorContext(ctx, "error decoding backend push", "error", err)
			continue
		}

		c.dispatch(ctx, msg)
	}
}

func (c *Channel) dispatch(ctx context.Context, msg pushMessage) {
	switch msg.Type {
	case "invitation":
		c.bus.Publish(ctx, domain.InvitationReceived{RoomID: msg.RoomID})
	case "affiliation":
		c.bus.Publish(ctx, domain.AffiliationChanged{
			RoomID:   msg.RoomID,
			MemberID: msg.MemberID,
			Status:   domain.MembershipStatus(msg.Status),
		})
	case "own-affiliation":
		c.bus.Publish(ctx, domain.OwnAffiliationChanged{
			RoomID: msg.RoomID,
			Status: domain.MembershipStatus(msg.Status),
		})
	case "room-presence":
		c.bus.Publish(ctx, domain.RoomPresenceChanged{Address: msg.Address})
	default:
		slog.DebugContext(ctx, "unknown backend push", "type", msg.Type)
	}
}

// redial tries to re-establish the websocket a few times before giving
// the connection up as lost.
func (c *Channel) redial(ctx context.Context) {
	c.mu.Lock()
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	identity := c.identity
	c.mu.Unlock()

	for attempt := 1; attempt <= redialAttempts; attempt++ {
		c.bus.Publish(ctx, domain.TransportReconnectAttempt{})

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(attempt) * redialBackoff):
		}

		if err := c.Connect(ctx, identity); err != nil {
			slog.ErrorContext(ctx, "error re-establishing streaming session", "attempt", attempt, "error", err)
			continue
		}

		c.bus.Publish(ctx, domain.TransportReconnected{})
		return
	}

	c.bus.Publish(ctx, domain.TransportDisconnected{})
}

func (c *Channel) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(c.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				slog.DebugContext(ctx, "error pinging streaming session", "error", err)
				return
			}
		}
	}
}

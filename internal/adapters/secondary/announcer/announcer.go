package announcer

import (
	"context"
	"log/slog"

	"github.com/arthurdotwork/atrium/internal/domain"
	"github.com/arthurdotwork/atrium/internal/infrastructure/redis"
)

// Announcer mirrors the high-level room and session events onto a redis
// channel so out-of-process consumers (UI layers, bots) can follow them.
type Announcer struct {
	redisClient *redis.Client
	bus         domain.Bus
	channel     string

	subscriptions map[domain.Topic]string
}

func NewAnnouncer(redisClient *redis.Client, bus domain.Bus, channel string) *Announcer {
	return &Announcer{
		redisClient:   redisClient,
		bus:           bus,
		channel:       channel,
		subscriptions: make(map[domain.Topic]string),
	}
}

type envelope struct {
	Topic string `json:"topic"`
	Event any    `json:"event"`
}

// Subscribe mirrors the detailed room events and the session state
// changes until Close is called.
func (a *Announcer) Subscribe(ctx context.Context) {
	topics := []domain.Topic{
		domain.TopicInvitationDetailsReceived,
		domain.TopicAffiliationDetailsChanged,
		domain.TopicOwnAffiliationDetailsChanged,
		domain.TopicStateChanged,
	}

	for _, topic := range topics {
		a.subscriptions[topic] = a.bus.Subscribe(topic, func(ctx context.Context, event domain.Event) {
			if err := a.redisClient.Publish(ctx, a.channel, envelope{
				Topic: string(event.Topic()),
				Event: event,
			}); err != nil {
				slog.ErrorContext(ctx, "error mirroring event to redis", "topic", string(event.Topic()), "error", err)
			}
		})
	}
}

func (a *Announcer) Close() {
	for topic, id := range a.subscriptions {
		a.bus.Unsubscribe(topic, id)
		delete(a.subscriptions, topic)
	}
}

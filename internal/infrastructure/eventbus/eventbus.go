package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/arthurdotwork/atrium/internal/domain"
	"github.com/google/uuid"
)

const queueSize = 64

type subscription struct {
	id      string
	handler func(ctx context.Context, event domain.Event)
}

type queued struct {
	ctx   context.Context
	event domain.Event
}

type topicState struct {
	queue chan queued

	mu   sync.RWMutex
	subs []subscription

	// sendMu guards the queue against Close. It must not be the same
	// lock as mu: the dispatcher takes mu while draining, and a pending
	// writer would stall it behind a publisher blocked on a full queue.
	sendMu sync.RWMutex
	closed bool
}

// Bus is an in-process publish/subscribe hub. Each topic gets its own
// dispatch goroutine, so events on one topic are handled to completion,
// in publication order, one at a time; topics do not block each other.
type Bus struct {
	mu     sync.Mutex
	topics map[domain.Topic]*topicState
	wg     sync.WaitGroup
	closed bool
}

func New() *Bus {
	return &Bus{
		topics: make(map[domain.Topic]*topicState),
	}
}

func (b *Bus) topic(t domain.Topic) *topicState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}

	ts, ok := b.topics[t]
	if !ok {
		ts = &topicState{queue: make(chan queued, queueSize)}
		b.topics[t] = ts

		b.wg.Add(1)
		go b.dispatch(ts)
	}

	return ts
}

func (b *Bus) dispatch(ts *topicState) {
	defer b.wg.Done()

	for q := range ts.queue {
		ts.mu.RLock()
		subs := make([]subscription, len(ts.subs))
		copy(subs, ts.subs)
		ts.mu.RUnlock()

		for _, sub := range subs {
			sub.handler(q.ctx, q.event)
		}
	}
}

// Publish enqueues the event for its topic. It is a no-op after Close.
func (b *Bus) Publish(ctx context.Context, event domain.Event) {
	ts := b.topic(event.Topic())
	if ts == nil {
		slog.DebugContext(ctx, "event published on closed bus", "topic", string(event.Topic()))
		return
	}

	// The send must hold the topic lock: Close closes the queue under the
	// same lock, so a publisher that passed the closed check can never
	// send on a closed channel.
	ts.sendMu.RLock()
	defer ts.sendMu.RUnlock()

	if ts.closed {
		slog.DebugContext(ctx, "event published on closed bus", "topic", string(event.Topic()))
		return
	}

	ts.queue <- queued{ctx: ctx, event: event}
}

// Subscribe registers a handler on the topic and returns its handle.
func (b *Bus) Subscribe(topic domain.Topic, handler func(ctx context.Context, event domain.Event)) string {
	ts := b.topic(topic)
	if ts == nil {
		return ""
	}

	id := uuid.NewString()

	ts.mu.Lock()
	ts.subs = append(ts.subs, subscription{id: id, handler: handler})
	ts.mu.Unlock()

	return id
}

// Unsubscribe removes the handler registered under the given handle.
func (b *Bus) Unsubscribe(topic domain.Topic, id string) {
	b.mu.Lock()
	ts, ok := b.topics[topic]
	b.mu.Unlock()

	if !ok {
		return
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	for i, sub := range ts.subs {
		if sub.id == id {
			ts.subs = append(ts.subs[:i], ts.subs[i+1:]...)
			return
		}
	}
}

// Close drains every topic and waits for the dispatchers to exit.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}

	b.closed = true
	topics := make([]*topicState, 0, len(b.topics))
	for _, ts := range b.topics {
		topics = append(topics, ts)
	}
	b.mu.Unlock()

	for _, ts := range topics {
		ts.sendMu.Lock()
		ts.closed = true
		close(ts.queue)
		ts.sendMu.Unlock()
	}

	b.wg.Wait()
}

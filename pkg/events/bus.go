package events

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/metrics-lab/staticpress/pkg/metrics"
)

// subscriberBuffer is the per-subscriber channel capacity. A
// subscriber that falls this far behind starts losing events.
const subscriberBuffer = 64

// Bus is the in-process publish/subscribe hub. Publishing never
// blocks: events to slow subscribers are dropped and counted. There is
// no replay; durable state lives in the database, the bus only carries
// live progress.
type Bus struct {
	logger *slog.Logger

	mu     sync.RWMutex
	topics map[string]map[int]chan Event
	nextID int

	dropMu  sync.Mutex
	dropped map[string]int64
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		logger:  slog.With("component", "events.bus"),
		topics:  make(map[string]map[int]chan Event),
		dropped: make(map[string]int64),
	}
}

// Subscribe registers a subscriber on a topic. The returned cancel
// function removes the subscription and closes the channel; it is safe
// to call more than once.
func (b *Bus) Subscribe(topic string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[int]chan Event)
		b.topics[topic] = subs
	}
	id := b.nextID
	b.nextID++
	subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			// The close must hold the write lock: Publish sends under the
			// read lock, so a channel is never closed mid-send.
			b.mu.Lock()
			if subs, ok := b.topics[topic]; ok {
				delete(subs, id)
				if len(subs) == 0 {
					delete(b.topics, topic)
				}
			}
			close(ch)
			b.mu.Unlock()
		})
	}
	return ch, cancel
}

// Publish delivers an event to every current subscriber of the topic.
// Delivery to a full subscriber channel is dropped, never blocked on.
// Sends stay under the read lock so they cannot race a subscriber
// cancelling; the sends are non-blocking, so the lock is never held
// for long.
func (b *Bus) Publish(topic string, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.topics[topic] {
		select {
		case ch <- event:
		default:
			b.recordDrop(topic)
		}
	}
}

// SubscriberCount returns the number of active subscribers on a topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}

// DroppedCount returns how many events were dropped on a topic because
// a subscriber was not keeping up.
func (b *Bus) DroppedCount(topic string) int64 {
	b.dropMu.Lock()
	defer b.dropMu.Unlock()
	return b.dropped[topic]
}

func (b *Bus) recordDrop(topic string) {
	b.dropMu.Lock()
	b.dropped[topic]++
	n := b.dropped[topic]
	b.dropMu.Unlock()
	kind, _, _ := strings.Cut(topic, ":")
	metrics.EventsDropped.WithLabelValues(kind).Inc()
	if n == 1 || n%100 == 0 {
		b.logger.Warn("Dropping events for slow subscriber", "topic", topic, "dropped_total", n)
	}
}

package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishReachesSubscriber(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(BuildTopic("site_1"))
	defer cancel()

	bus.Publish(BuildTopic("site_1"), Event{Type: TypeLog, Payload: NewLogPayload("info", "crawl", "started")})

	select {
	case ev := <-ch:
		assert.Equal(t, TypeLog, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestBus_TopicIsolation(t *testing.T) {
	bus := NewBus()
	buildCh, cancelBuild := bus.Subscribe(BuildTopic("site_1"))
	defer cancelBuild()
	agentCh, cancelAgent := bus.Subscribe(AgentTopic("site_1"))
	defer cancelAgent()

	bus.Publish(BuildTopic("site_1"), Event{Type: TypePhase})

	select {
	case <-buildCh:
	case <-time.After(time.Second):
		t.Fatal("build subscriber did not receive event")
	}
	select {
	case <-agentCh:
		t.Fatal("agent subscriber received build event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_FanOut(t *testing.T) {
	bus := NewBus()
	topic := BuildTopic("site_1")

	ch1, cancel1 := bus.Subscribe(topic)
	defer cancel1()
	ch2, cancel2 := bus.Subscribe(topic)
	defer cancel2()

	bus.Publish(topic, Event{Type: TypeDone})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, TypeDone, ev.Type)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive fan-out event")
		}
	}
}

func TestBus_PublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	bus := NewBus()
	done := make(chan struct{})
	go func() {
		bus.Publish(BuildTopic("nobody"), Event{Type: TypeLog})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked with no subscribers")
	}
}

func TestBus_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus()
	topic := BuildTopic("site_1")
	_, cancel := bus.Subscribe(topic)
	defer cancel()

	// Fill the subscriber buffer and keep publishing; none of these
	// sends may block the publisher.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			bus.Publish(topic, Event{Type: TypeLog})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
	assert.Equal(t, int64(subscriberBuffer), bus.DroppedCount(topic))
}

func TestBus_CancelRemovesSubscription(t *testing.T) {
	bus := NewBus()
	topic := BuildTopic("site_1")

	ch, cancel := bus.Subscribe(topic)
	require.Equal(t, 1, bus.SubscriberCount(topic))

	cancel()
	assert.Equal(t, 0, bus.SubscriberCount(topic))

	_, open := <-ch
	assert.False(t, open, "channel closed after cancel")

	// Second cancel is a no-op.
	cancel()
}

// TestBus_ConcurrentPublishAndCancel churns subscriptions while a
// publisher hammers the topic. Run with -race: a send must never hit
// a channel that cancel already closed.
func TestBus_ConcurrentPublishAndCancel(t *testing.T) {
	bus := NewBus()
	topic := BuildTopic("site_1")

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				bus.Publish(topic, Event{Type: TypeLog})
			}
		}
	}()

	for i := 0; i < 500; i++ {
		_, cancel := bus.Subscribe(topic)
		cancel()
	}

	close(stop)
	wg.Wait()
	assert.Equal(t, 0, bus.SubscriberCount(topic))
}

func TestTopicNames(t *testing.T) {
	assert.Equal(t, "build:site_1", BuildTopic("site_1"))
	assert.Equal(t, "agent:site_1", AgentTopic("site_1"))
	assert.Equal(t, "live-edit:site_1", LiveEditTopic("site_1", ""))
	assert.Equal(t, "live-edit:site_1:chat_9", LiveEditTopic("site_1", "chat_9"))
}

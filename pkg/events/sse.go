package events

import (
	"io"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

// heartbeatInterval is how often an idle SSE stream emits a heartbeat
// comment so intermediaries keep the connection open.
const heartbeatInterval = 15 * time.Second

// StreamSSE bridges a bus topic onto a Server-Sent Events response.
// It blocks until the client disconnects or the request context is
// cancelled, then detaches the subscription.
func StreamSSE(c *gin.Context, bus *Bus, topic string) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	ch, cancel := bus.Subscribe(topic)
	defer cancel()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-ch:
			if !ok {
				return false
			}
			sse.Encode(w, sse.Event{
				Event: event.Type,
				Data:  event.Payload,
			})
			return event.Type != TypeDone
		case <-heartbeat.C:
			sse.Encode(w, sse.Event{
				Event: TypeHeartbeat,
				Data:  map[string]string{"timestamp": Now()},
			})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

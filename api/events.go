package api

import (
	"io"

	"flightdesk/internal/notify"

	"github.com/gin-gonic/gin"
)

// EventHandler is the realtime channel: an SSE stream carrying every event
// broadcast after a successful mutation. Clients connected at broadcast
// time get the event; there is no replay.
type EventHandler struct {
	hub *notify.Hub
}

func NewEventHandler(hub *notify.Hub) *EventHandler {
	return &EventHandler{hub: hub}
}

func (h *EventHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.stream)
}

func (h *EventHandler) stream(c *gin.Context) {
	id, events := h.hub.Subscribe()
	defer h.hub.Unsubscribe(id)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, ev.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okuzmina/standup_bot/internal/chat"
)

// EventHandler handles inbound chat events from the bot host.
type EventHandler struct {
	standups StandupCoordinator
}

// NewEventHandler creates a new event handler.
func NewEventHandler(standups StandupCoordinator) *EventHandler {
	return &EventHandler{standups: standups}
}

// Mention handles POST /events/mention. A mention that records a report is
// acknowledged with a reply; self-mentions and mentions with no applicable
// team or standup are ignored with 204.
func (h *EventHandler) Mention(c *gin.Context) {
	var event MentionEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	res, err := h.standups.HandleMention(c.Request.Context(), chat.NormalizeRoom(event.Room), event.Sender, event.Text)
	if err != nil {
		ServiceError(c, err)
		return
	}
	if res == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, MentionResponse{Reply: res.Reply, Room: res.Team.Room})
}

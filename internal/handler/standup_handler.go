package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/okuzmina/standup_bot/internal/chat"
)

// StandupHandler handles the standup lifecycle commands.
type StandupHandler struct {
	standups StandupCoordinator
}

// NewStandupHandler creates a new standup handler.
func NewStandupHandler(standups StandupCoordinator) *StandupHandler {
	return &StandupHandler{standups: standups}
}

// Start handles POST /standup/start.
func (h *StandupHandler) Start(c *gin.Context) {
	var req StandupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	res, err := h.standups.Start(c.Request.Context(), req.TeamName, chat.NormalizeRoom(req.Room))
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, StartResponse{Reply: res.Prompt, Room: res.Team.Room})
}

// Status handles GET /standup/status.
func (h *StandupHandler) Status(c *gin.Context) {
	teamName := c.Query("team_name")
	room := chat.NormalizeRoom(c.Query("room"))

	res, err := h.standups.Status(c.Request.Context(), teamName, room)
	if err != nil {
		ServiceError(c, err)
		return
	}

	resp := StatusResponse{
		Reports: make([]ReportResponse, 0, len(res.Reports)),
		Waiting: res.Waiting,
	}
	for _, r := range res.Reports {
		resp.Reports = append(resp.Reports, ReportResponse{Member: r.Member, Text: r.Text})
	}
	resp.Reply = statusReply(&resp)
	c.JSON(http.StatusOK, resp)
}

// statusReply renders the reply the bot says in the room for a status query.
func statusReply(resp *StatusResponse) string {
	if len(resp.Reports) == 0 {
		return "The standup has started but nobody has reported anything yet."
	}

	var b strings.Builder
	b.WriteString("## All the current messages\n")
	for _, r := range resp.Reports {
		fmt.Fprintf(&b, "*%s*:\n\n%s\n", r.Member, r.Text)
	}
	if len(resp.Waiting) > 0 {
		fmt.Fprintf(&b, "I am still waiting on %s", strings.Join(resp.Waiting, ", "))
	} else {
		b.WriteString("Everybody has reported, you are ready to end the standup.")
	}
	return b.String()
}

// End handles POST /standup/end.
func (h *StandupHandler) End(c *gin.Context) {
	var req StandupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	res, err := h.standups.End(c.Request.Context(), req.TeamName, chat.NormalizeRoom(req.Room))
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CommandResponse{
		Reply: fmt.Sprintf("Message sent to %s.", res.To),
	})
}

// Cancel handles POST /standup/cancel.
func (h *StandupHandler) Cancel(c *gin.Context) {
	var req StandupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	team, err := h.standups.Cancel(c.Request.Context(), req.TeamName, chat.NormalizeRoom(req.Room))
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CommandResponse{
		Reply: fmt.Sprintf("Standup for %s cancelled.", team.Name),
	})
}

// Cover handles POST /standup/cover.
func (h *StandupHandler) Cover(c *gin.Context) {
	var req CoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	if err := h.standups.Cover(c.Request.Context(), req.TeamName, req.Member, req.Message); err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CommandResponse{
		Reply: fmt.Sprintf("Message recorded for %s.", req.Member),
	})
}

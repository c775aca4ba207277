package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/okuzmina/standup_bot/internal/chat"
)

// TeamHandler handles the team and member commands.
type TeamHandler struct {
	directory TeamDirectory
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(directory TeamDirectory) *TeamHandler {
	return &TeamHandler{directory: directory}
}

// AddTeam handles POST /teams/add.
func (h *TeamHandler) AddTeam(c *gin.Context) {
	var req AddTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	team, err := h.directory.AddTeam(c.Request.Context(), req.Name, chat.NormalizeRoom(req.Room), req.Email)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CommandResponse{
		Reply: "Team added.",
		Team:  toTeamResponse(team),
	})
}

// RemoveTeam handles POST /teams/remove.
func (h *TeamHandler) RemoveTeam(c *gin.Context) {
	var req RemoveTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	if err := h.directory.RemoveTeam(c.Request.Context(), req.Name); err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CommandResponse{Reply: "Team removed."})
}

// ListTeams handles GET /teams/list.
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.directory.ListTeams(c.Request.Context())
	if err != nil {
		ServiceError(c, err)
		return
	}

	resp := TeamListResponse{Teams: make([]TeamResponse, 0, len(teams))}
	if len(teams) == 0 {
		resp.Reply = "No team."
		c.JSON(http.StatusOK, resp)
		return
	}

	lines := make([]string, 0, len(teams))
	for i := range teams {
		t := toTeamResponse(&teams[i])
		resp.Teams = append(resp.Teams, *t)
		lines = append(lines, fmt.Sprintf("%s: room %s, email %s, members: %s",
			t.Name, t.Room, t.Email, strings.Join(t.Members, ", ")))
	}
	resp.Reply = strings.Join(lines, "\n")
	c.JSON(http.StatusOK, resp)
}

// AddMember handles POST /members/add.
func (h *TeamHandler) AddMember(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	team, err := h.directory.AddMember(c.Request.Context(), req.TeamName, req.Handle)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CommandResponse{
		Reply: fmt.Sprintf("Done.\n\nAll members for %s: %s.", team.Name, strings.Join(team.Members, ", ")),
		Team:  toTeamResponse(team),
	})
}

// RemoveMember handles POST /members/remove.
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	team, err := h.directory.RemoveMember(c.Request.Context(), req.TeamName, req.Handle)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CommandResponse{
		Reply: fmt.Sprintf("Done.\n\nAll remaining members for %s: %s.", team.Name, strings.Join(team.Members, ", ")),
		Team:  toTeamResponse(team),
	})
}

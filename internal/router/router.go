package router

import (
	"github.com/gin-gonic/gin"

	"github.com/okuzmina/standup_bot/internal/handler"
)

// SetupRoutes configures all command and event routes.
func SetupRoutes(
	teamHandler *handler.TeamHandler,
	standupHandler *handler.StandupHandler,
	eventHandler *handler.EventHandler,
) *gin.Engine {
	r := gin.Default()

	// Team directory commands
	r.POST("/teams/add", teamHandler.AddTeam)
	r.POST("/teams/remove", teamHandler.RemoveTeam)
	r.GET("/teams/list", teamHandler.ListTeams)
	r.POST("/members/add", teamHandler.AddMember)
	r.POST("/members/remove", teamHandler.RemoveMember)

	// Standup lifecycle commands
	r.POST("/standup/start", standupHandler.Start)
	r.GET("/standup/status", standupHandler.Status)
	r.POST("/standup/end", standupHandler.End)
	r.POST("/standup/cancel", standupHandler.Cancel)
	r.POST("/standup/cover", standupHandler.Cover)

	// Inbound chat events
	r.POST("/events/mention", eventHandler.Mention)

	return r
}

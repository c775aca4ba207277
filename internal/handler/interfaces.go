package handler

import (
	"context"

	"github.com/okuzmina/standup_bot/internal/domain"
	"github.com/okuzmina/standup_bot/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// TeamDirectory defines the team registry operations used by handlers.
type TeamDirectory interface {
	AddTeam(ctx context.Context, name, room, email string) (*domain.Team, error)
	RemoveTeam(ctx context.Context, name string) error
	ListTeams(ctx context.Context) ([]domain.Team, error)
	AddMember(ctx context.Context, teamName, rawHandle string) (*domain.Team, error)
	RemoveMember(ctx context.Context, teamName, rawHandle string) (*domain.Team, error)
}

// StandupCoordinator defines the standup lifecycle operations used by
// handlers.
type StandupCoordinator interface {
	Start(ctx context.Context, explicitName, room string) (*service.StartResult, error)
	Status(ctx context.Context, explicitName, room string) (*service.StatusResult, error)
	End(ctx context.Context, explicitName, room string) (*service.EndResult, error)
	Cancel(ctx context.Context, explicitName, room string) (*domain.Team, error)
	Cover(ctx context.Context, teamName, member, message string) error
	HandleMention(ctx context.Context, room, sender, body string) (*service.MentionResult, error)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/okuzmina/standup_bot/internal/domain"
	"github.com/okuzmina/standup_bot/internal/repository"
)

// TeamService owns the team directory: team CRUD and roster mutation. The
// session engine only reads teams through it.
type TeamService struct {
	teams    repository.TeamStore
	resolver IdentityResolver
}

// NewTeamService creates a new team service.
func NewTeamService(teams repository.TeamStore, resolver IdentityResolver) *TeamService {
	return &TeamService{teams: teams, resolver: resolver}
}

// AddTeam registers a team with an empty roster. The name and the room must
// both be unique across the directory.
func (s *TeamService) AddTeam(ctx context.Context, name, room, email string) (*domain.Team, error) {
	team := domain.Team{Name: name, Room: room, Email: email, Members: []string{}}
	if err := s.teams.Create(ctx, team); err != nil {
		switch {
		case errors.Is(err, repository.ErrTeamExists):
			return nil, fmt.Errorf("team %s: %w", name, ErrDuplicateName)
		case errors.Is(err, repository.ErrRoomTaken):
			return nil, fmt.Errorf("room %s: %w", room, ErrDuplicateRoom)
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return &team, nil
}

// RemoveTeam deletes a team. Any active standup for the team is cancelled by
// the registry cascade.
func (s *TeamService) RemoveTeam(ctx context.Context, name string) error {
	if err := s.teams.Delete(ctx, name); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return fmt.Errorf("team %s: %w", name, ErrNotFound)
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// ListTeams returns all registered teams in insertion order.
func (s *TeamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// ResolveTeam looks a team up by explicit name when given, otherwise by the
// room the command came from. With neither available the context is
// ambiguous.
func (s *TeamService) ResolveTeam(ctx context.Context, explicitName, room string) (*domain.Team, error) {
	switch {
	case explicitName != "":
		team, err := s.teams.GetByName(ctx, explicitName)
		if err != nil {
			if errors.Is(err, repository.ErrTeamNotFound) {
				return nil, fmt.Errorf("team %s: %w", explicitName, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to get team: %w", err)
		}
		return team, nil
	case room != "":
		team, err := s.teams.GetByRoom(ctx, room)
		if err != nil {
			if errors.Is(err, repository.ErrTeamNotFound) {
				return nil, fmt.Errorf("room %s: %w", room, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to get team: %w", err)
		}
		return team, nil
	}
	return nil, ErrAmbiguousContext
}

// AddMember resolves the raw handle to a canonical identity and appends it to
// the roster. Returns the refreshed team.
func (s *TeamService) AddMember(ctx context.Context, teamName, rawHandle string) (*domain.Team, error) {
	id, err := s.resolver.Resolve(rawHandle)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnresolvableIdentity, err)
	}

	if err := s.teams.AddMember(ctx, teamName, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrTeamNotFound):
			return nil, fmt.Errorf("team %s: %w", teamName, ErrNotFound)
		case errors.Is(err, repository.ErrMemberExists):
			return nil, fmt.Errorf("%s: %w", id, ErrAlreadyMember)
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	return s.refresh(ctx, teamName)
}

// RemoveMember resolves the raw handle and drops it from the roster. Returns
// the refreshed team.
func (s *TeamService) RemoveMember(ctx context.Context, teamName, rawHandle string) (*domain.Team, error) {
	id, err := s.resolver.Resolve(rawHandle)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnresolvableIdentity, err)
	}

	if err := s.teams.RemoveMember(ctx, teamName, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrTeamNotFound):
			return nil, fmt.Errorf("team %s: %w", teamName, ErrNotFound)
		case errors.Is(err, repository.ErrMemberNotFound):
			return nil, fmt.Errorf("%s: %w", id, ErrNotAMember)
		}
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}
	return s.refresh(ctx, teamName)
}

func (s *TeamService) refresh(ctx context.Context, teamName string) (*domain.Team, error) {
	team, err := s.teams.GetByName(ctx, teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated team: %w", err)
	}
	return team, nil
}

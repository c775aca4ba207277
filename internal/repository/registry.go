// Package repository defines the persistent registry contracts for teams and
// standup sessions. Implementations must apply every mutation as an atomic
// read-modify-write; callers never see a partially applied change.
package repository

import (
	"context"
	"errors"

	"github.com/okuzmina/standup_bot/internal/domain"
)

var (
	ErrTeamExists      = errors.New("team already exists")
	ErrRoomTaken       = errors.New("room already taken")
	ErrTeamNotFound    = errors.New("team not found")
	ErrMemberExists    = errors.New("member already present")
	ErrMemberNotFound  = errors.New("member not present")
	ErrSessionExists   = errors.New("session already exists")
	ErrSessionNotFound = errors.New("no session")
)

// TeamStore is the durable team registry.
type TeamStore interface {
	// Create inserts a team. Returns ErrTeamExists or ErrRoomTaken when the
	// name or room uniqueness invariant would be violated.
	Create(ctx context.Context, team domain.Team) error

	// Delete removes a team and, by cascade, any active session it has.
	// Returns ErrTeamNotFound when absent.
	Delete(ctx context.Context, name string) error

	// List returns all teams in insertion order.
	List(ctx context.Context) ([]domain.Team, error)

	// GetByName returns the team with the given name, or ErrTeamNotFound.
	GetByName(ctx context.Context, name string) (*domain.Team, error)

	// GetByRoom returns the team bound to the given room, or ErrTeamNotFound.
	GetByRoom(ctx context.Context, room string) (*domain.Team, error)

	// AddMember appends a canonical identity to the team roster. Returns
	// ErrTeamNotFound or ErrMemberExists.
	AddMember(ctx context.Context, teamName, memberID string) error

	// RemoveMember drops a canonical identity from the team roster. Returns
	// ErrTeamNotFound or ErrMemberNotFound.
	RemoveMember(ctx context.Context, teamName, memberID string) error
}

// SessionStore is the durable standup session registry. Key presence is the
// "active" flag; there is no separate status field.
type SessionStore interface {
	// Create opens a session for the team. The existence check and the insert
	// are a single atomic step: of two concurrent Create calls for the same
	// team, exactly one succeeds and the other gets ErrSessionExists.
	// Returns ErrTeamNotFound when the team is absent.
	Create(ctx context.Context, teamName string) error

	// Get returns the session state for the team. An absent key is the
	// Inactive state, not an error.
	Get(ctx context.Context, teamName string) (domain.SessionState, error)

	// UpsertReport records a member's report, overwriting any earlier text
	// while keeping the original arrival position. Returns ErrSessionNotFound
	// when the team has no active session.
	UpsertReport(ctx context.Context, teamName, member, text string) error

	// Delete closes the session, discarding its reports. Returns
	// ErrSessionNotFound when absent.
	Delete(ctx context.Context, teamName string) error
}

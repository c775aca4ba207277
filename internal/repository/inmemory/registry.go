// Package inmemory implements the registry stores in a process-local map.
// It is safe for concurrent access and best suited for tests.
package inmemory

import (
	"context"
	"sync"

	"github.com/okuzmina/standup_bot/internal/domain"
	"github.com/okuzmina/standup_bot/internal/repository"
)

// Registry is a volatile rendition of the persistent registry. Teams and
// sessions share one mutex, so every operation is an atomic read-modify-write
// and a team deletion cancels its session in the same step. Returned values
// are copies to prevent external mutation of internal state.
type Registry struct {
	mu       sync.RWMutex
	teams    map[string]*domain.Team
	order    []string // team insertion order
	sessions map[string]*domain.Session
}

// NewRegistry constructs an empty in-memory registry.
func NewRegistry() *Registry {
	return &Registry{
		teams:    make(map[string]*domain.Team),
		sessions: make(map[string]*domain.Session),
	}
}

// Teams returns the team store view of the registry.
func (r *Registry) Teams() repository.TeamStore {
	return teamStore{r}
}

// Sessions returns the session store view of the registry.
func (r *Registry) Sessions() repository.SessionStore {
	return sessionStore{r}
}

type teamStore struct {
	r *Registry
}

type sessionStore struct {
	r *Registry
}

var (
	_ repository.TeamStore    = teamStore{}
	_ repository.SessionStore = sessionStore{}
)

func (s teamStore) Create(_ context.Context, team domain.Team) error {
	r := s.r
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[team.Name]; ok {
		return repository.ErrTeamExists
	}
	for _, t := range r.teams {
		if t.Room == team.Room {
			return repository.ErrRoomTaken
		}
	}
	r.teams[team.Name] = cloneTeam(&team)
	r.order = append(r.order, team.Name)
	return nil
}

// Delete removes a team and cancels any active session it has.
func (s teamStore) Delete(_ context.Context, name string) error {
	r := s.r
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[name]; !ok {
		return repository.ErrTeamNotFound
	}
	delete(r.teams, name)
	delete(r.sessions, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s teamStore) List(_ context.Context) ([]domain.Team, error) {
	r := s.r
	r.mu.RLock()
	defer r.mu.RUnlock()
	teams := make([]domain.Team, 0, len(r.order))
	for _, name := range r.order {
		teams = append(teams, *cloneTeam(r.teams[name]))
	}
	return teams, nil
}

func (s teamStore) GetByName(_ context.Context, name string) (*domain.Team, error) {
	r := s.r
	r.mu.RLock()
	defer r.mu.RUnlock()
	team, ok := r.teams[name]
	if !ok {
		return nil, repository.ErrTeamNotFound
	}
	return cloneTeam(team), nil
}

func (s teamStore) GetByRoom(_ context.Context, room string) (*domain.Team, error) {
	r := s.r
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range r.order {
		if r.teams[name].Room == room {
			return cloneTeam(r.teams[name]), nil
		}
	}
	return nil, repository.ErrTeamNotFound
}

func (s teamStore) AddMember(_ context.Context, teamName, memberID string) error {
	r := s.r
	r.mu.Lock()
	defer r.mu.Unlock()
	team, ok := r.teams[teamName]
	if !ok {
		return repository.ErrTeamNotFound
	}
	if team.HasMember(memberID) {
		return repository.ErrMemberExists
	}
	team.Members = append(team.Members, memberID)
	return nil
}

func (s teamStore) RemoveMember(_ context.Context, teamName, memberID string) error {
	r := s.r
	r.mu.Lock()
	defer r.mu.Unlock()
	team, ok := r.teams[teamName]
	if !ok {
		return repository.ErrTeamNotFound
	}
	for i, m := range team.Members {
		if m == memberID {
			team.Members = append(team.Members[:i], team.Members[i+1:]...)
			return nil
		}
	}
	return repository.ErrMemberNotFound
}

// Create opens a session. The existence check and the insert happen under one
// lock, so of two concurrent calls for the same team exactly one wins.
func (s sessionStore) Create(_ context.Context, teamName string) error {
	r := s.r
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[teamName]; !ok {
		return repository.ErrTeamNotFound
	}
	if _, ok := r.sessions[teamName]; ok {
		return repository.ErrSessionExists
	}
	r.sessions[teamName] = &domain.Session{TeamName: teamName, Reports: make([]domain.Report, 0)}
	return nil
}

func (s sessionStore) Get(_ context.Context, teamName string) (domain.SessionState, error) {
	r := s.r
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[teamName]
	if !ok {
		return domain.Inactive(), nil
	}
	return domain.Active(cloneSession(session)), nil
}

// UpsertReport overwrites an earlier report in place, keeping its arrival
// position.
func (s sessionStore) UpsertReport(_ context.Context, teamName, member, text string) error {
	r := s.r
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[teamName]
	if !ok {
		return repository.ErrSessionNotFound
	}
	for i := range session.Reports {
		if session.Reports[i].Member == member {
			session.Reports[i].Text = text
			return nil
		}
	}
	session.Reports = append(session.Reports, domain.Report{Member: member, Text: text})
	return nil
}

func (s sessionStore) Delete(_ context.Context, teamName string) error {
	r := s.r
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[teamName]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(r.sessions, teamName)
	return nil
}

func cloneTeam(t *domain.Team) *domain.Team {
	cp := *t
	cp.Members = append([]string(nil), t.Members...)
	return &cp
}

func cloneSession(s *domain.Session) *domain.Session {
	cp := *s
	cp.Reports = append([]domain.Report(nil), s.Reports...)
	return &cp
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/okuzmina/standup_bot/internal/domain"
	"github.com/okuzmina/standup_bot/internal/repository"
)

// TeamStore implements repository.TeamStore on PostgreSQL.
type TeamStore struct {
	db *sql.DB
}

// NewTeamStore creates a new PostgreSQL team store.
func NewTeamStore(db *sql.DB) *TeamStore {
	return &TeamStore{db: db}
}

var _ repository.TeamStore = (*TeamStore)(nil)

const teamColumns = `
	t.team_name, t.room, t.notification_email,
	COALESCE(array_agg(m.member_id ORDER BY m.position)
		FILTER (WHERE m.member_id IS NOT NULL), '{}')
`

// Create inserts a team. Uniqueness of name and room is enforced by the
// table constraints, so the check and the insert are one atomic statement.
func (s *TeamStore) Create(ctx context.Context, team domain.Team) error {
	query := `INSERT INTO teams (team_name, room, notification_email) VALUES ($1, $2, $3)`
	_, err := s.db.ExecContext(ctx, query, team.Name, team.Room, team.Email)
	if err != nil {
		if isUniqueViolation(err, "teams_pkey") {
			return repository.ErrTeamExists
		}
		if isUniqueViolation(err, "teams_room_key") {
			return repository.ErrRoomTaken
		}
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

// Delete removes a team; members and any active session go with it via the
// ON DELETE CASCADE chain.
func (s *TeamStore) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM teams WHERE team_name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return repository.ErrTeamNotFound
	}
	return nil
}

// List returns all teams in insertion order.
func (s *TeamStore) List(ctx context.Context) ([]domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		LEFT JOIN team_members m ON m.team_name = t.team_name
		GROUP BY t.team_name, t.room, t.notification_email, t.position
		ORDER BY t.position
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]domain.Team, 0)
	for rows.Next() {
		var team domain.Team
		members := pq.StringArray{}
		if err := rows.Scan(&team.Name, &team.Room, &team.Email, &members); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		team.Members = members
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return teams, nil
}

// GetByName retrieves a team with its members in insertion order.
func (s *TeamStore) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	return s.getBy(ctx, "t.team_name", name)
}

// GetByRoom retrieves the team bound to a room.
func (s *TeamStore) GetByRoom(ctx context.Context, room string) (*domain.Team, error) {
	return s.getBy(ctx, "t.room", room)
}

func (s *TeamStore) getBy(ctx context.Context, column, value string) (*domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		LEFT JOIN team_members m ON m.team_name = t.team_name
		WHERE ` + column + ` = $1
		GROUP BY t.team_name, t.room, t.notification_email
	`
	var team domain.Team
	members := pq.StringArray{}
	err := s.db.QueryRowContext(ctx, query, value).Scan(&team.Name, &team.Room, &team.Email, &members)
	if err == sql.ErrNoRows {
		return nil, repository.ErrTeamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	team.Members = members
	return &team, nil
}

// AddMember appends a canonical identity to the roster. The foreign key
// rejects unknown teams, the primary key rejects duplicates.
func (s *TeamStore) AddMember(ctx context.Context, teamName, memberID string) error {
	query := `INSERT INTO team_members (team_name, member_id) VALUES ($1, $2)`
	_, err := s.db.ExecContext(ctx, query, teamName, memberID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrTeamNotFound
		}
		if isUniqueViolation(err, "team_members_pkey") {
			return repository.ErrMemberExists
		}
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// RemoveMember drops a canonical identity from the roster.
func (s *TeamStore) RemoveMember(ctx context.Context, teamName, memberID string) error {
	query := `DELETE FROM team_members WHERE team_name = $1 AND member_id = $2`
	res, err := s.db.ExecContext(ctx, query, teamName, memberID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		exists, err := s.exists(ctx, teamName)
		if err != nil {
			return err
		}
		if !exists {
			return repository.ErrTeamNotFound
		}
		return repository.ErrMemberNotFound
	}
	return nil
}

// exists checks if a team exists.
func (s *TeamStore) exists(ctx context.Context, teamName string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM teams WHERE team_name = $1)`
	if err := s.db.QueryRowContext(ctx, query, teamName).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return exists, nil
}

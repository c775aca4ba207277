package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okuzmina/standup_bot/internal/domain"
	"github.com/okuzmina/standup_bot/internal/repository"
)

// SessionStore implements repository.SessionStore on PostgreSQL.
type SessionStore struct {
	db *sql.DB
}

// NewSessionStore creates a new PostgreSQL session store.
func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

var _ repository.SessionStore = (*SessionStore)(nil)

// Create opens a session for the team. ON CONFLICT DO NOTHING makes the
// check-then-create a single atomic statement: of two concurrent calls for
// the same team, exactly one inserts the row.
func (s *SessionStore) Create(ctx context.Context, teamName string) error {
	query := `INSERT INTO standups (team_name) VALUES ($1) ON CONFLICT (team_name) DO NOTHING`
	res, err := s.db.ExecContext(ctx, query, teamName)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrTeamNotFound
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return repository.ErrSessionExists
	}
	return nil
}

// Get returns the session state for the team. An absent row is the Inactive
// state, not an error.
func (s *SessionStore) Get(ctx context.Context, teamName string) (domain.SessionState, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM standups WHERE team_name = $1)`
	if err := s.db.QueryRowContext(ctx, query, teamName).Scan(&exists); err != nil {
		return domain.Inactive(), fmt.Errorf("failed to check session existence: %w", err)
	}
	if !exists {
		return domain.Inactive(), nil
	}

	query = `
		SELECT member_id, report_text
		FROM standup_reports
		WHERE team_name = $1
		ORDER BY position
	`
	rows, err := s.db.QueryContext(ctx, query, teamName)
	if err != nil {
		return domain.Inactive(), fmt.Errorf("failed to get session reports: %w", err)
	}
	defer rows.Close()

	session := &domain.Session{TeamName: teamName, Reports: make([]domain.Report, 0)}
	for rows.Next() {
		var report domain.Report
		if err := rows.Scan(&report.Member, &report.Text); err != nil {
			return domain.Inactive(), fmt.Errorf("failed to scan report: %w", err)
		}
		session.Reports = append(session.Reports, report)
	}
	if err := rows.Err(); err != nil {
		return domain.Inactive(), fmt.Errorf("rows iteration error: %w", err)
	}
	return domain.Active(session), nil
}

// UpsertReport records a member's report. The conflict branch updates the
// text only, so the original arrival position survives an overwrite.
func (s *SessionStore) UpsertReport(ctx context.Context, teamName, member, text string) error {
	query := `
		INSERT INTO standup_reports (team_name, member_id, report_text)
		VALUES ($1, $2, $3)
		ON CONFLICT (team_name, member_id)
		DO UPDATE SET report_text = EXCLUDED.report_text
	`
	_, err := s.db.ExecContext(ctx, query, teamName, member, text)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrSessionNotFound
		}
		return fmt.Errorf("failed to record report: %w", err)
	}
	return nil
}

// Delete closes the session; its reports cascade away.
func (s *SessionStore) Delete(ctx context.Context, teamName string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM standups WHERE team_name = $1`, teamName)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return repository.ErrSessionNotFound
	}
	return nil
}

package postgres

import (
	"database/sql"
	"fmt"
)

// schema covers the team registry and the standup session registry.
// Row presence in standups is the "active" flag; the ON DELETE CASCADE chain
// cancels a session when its team is removed.
const schema = `
CREATE TABLE IF NOT EXISTS teams (
	team_name          TEXT PRIMARY KEY,
	room               TEXT NOT NULL,
	notification_email TEXT NOT NULL,
	position           BIGSERIAL,
	CONSTRAINT teams_room_key UNIQUE (room)
);

CREATE TABLE IF NOT EXISTS team_members (
	team_name TEXT NOT NULL REFERENCES teams (team_name) ON DELETE CASCADE,
	member_id TEXT NOT NULL,
	position  BIGSERIAL,
	PRIMARY KEY (team_name, member_id)
);

CREATE TABLE IF NOT EXISTS standups (
	team_name  TEXT PRIMARY KEY REFERENCES teams (team_name) ON DELETE CASCADE,
	started_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS standup_reports (
	team_name   TEXT NOT NULL REFERENCES standups (team_name) ON DELETE CASCADE,
	member_id   TEXT NOT NULL,
	report_text TEXT NOT NULL,
	position    BIGSERIAL,
	PRIMARY KEY (team_name, member_id)
);
`

// EnsureSchema applies the registry schema. Statements are idempotent.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

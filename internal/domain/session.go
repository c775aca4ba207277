package domain

// Report is one collected status entry.
type Report struct {
	Member string `json:"member"`
	Text   string `json:"text"`
}

// Session is the mutable state of one in-progress standup for exactly one
// team. Reports are kept in arrival order; a member reporting twice keeps the
// original position with the text replaced.
type Session struct {
	TeamName string   `json:"team_name"`
	Reports  []Report `json:"reports"`
}

// Reported reports whether the member has already submitted a report.
func (s *Session) Reported(member string) bool {
	for _, r := range s.Reports {
		if r.Member == member {
			return true
		}
	}
	return false
}

// SessionState is the standup lifecycle state for one team: either no standup
// is running, or exactly one session is.
type SessionState struct {
	session *Session
}

// Inactive is the state of a team with no running standup.
func Inactive() SessionState {
	return SessionState{}
}

// Active wraps a running session.
func Active(s *Session) SessionState {
	return SessionState{session: s}
}

// IsActive reports whether a standup is running.
func (st SessionState) IsActive() bool {
	return st.session != nil
}

// Session returns the running session, or nil when inactive.
func (st SessionState) Session() *Session {
	return st.session
}

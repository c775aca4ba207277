package handler

// AddTeamRequest represents request body for POST /teams/add.
type AddTeamRequest struct {
	Name  string `json:"name" binding:"required"`
	Room  string `json:"room" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// RemoveTeamRequest represents request body for POST /teams/remove.
type RemoveTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// MemberRequest represents request body for POST /members/add and
// POST /members/remove.
type MemberRequest struct {
	TeamName string `json:"team_name" binding:"required"`
	Handle   string `json:"handle" binding:"required"`
}

// StandupRequest represents request body for the standup lifecycle commands.
// Both fields are optional: with no explicit team name the team is resolved
// from the room the command was issued in.
type StandupRequest struct {
	TeamName string `json:"team_name"`
	Room     string `json:"room"`
}

// CoverRequest represents request body for POST /standup/cover.
type CoverRequest struct {
	TeamName string `json:"team_name" binding:"required"`
	Member   string `json:"member" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// MentionEvent represents request body for POST /events/mention: an inbound
// message that referenced the bot.
type MentionEvent struct {
	Sender string `json:"sender" binding:"required"`
	Room   string `json:"room"`
	Text   string `json:"text" binding:"required"`
}

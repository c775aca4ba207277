package domain

// Team is a named group of chat identities tied to one room and one
// notification email. Members hold canonical identities in insertion order;
// duplicates are forbidden.
type Team struct {
	Name    string   `json:"name"`
	Room    string   `json:"room"`
	Email   string   `json:"notification_email"`
	Members []string `json:"members"`
}

// HasMember reports whether the canonical identity belongs to the team.
func (t *Team) HasMember(id string) bool {
	for _, m := range t.Members {
		if m == id {
			return true
		}
	}
	return false
}

package recommend

import "time"

// Entry is one stored recommendation returned by the external advisor
// service. Only the history of past calls lives here; the multipart call
// itself is made by the client against the advisor directly.
type Entry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Text      string    `json:"text"`
	Mode      string    `json:"mode,omitempty"`
	AgentType string    `json:"agent_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

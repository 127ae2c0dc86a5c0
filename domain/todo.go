package domain

import "time"

// Todo represents a single to-do entry. Content is the raw Markdown source
// exactly as the owner typed it; rendering happens in the browser.
type Todo struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"owner_id"`
	Content        string     `json:"content"`
	CreatedAt      time.Time  `json:"created_at"`
	MarkedAsDoneAt *time.Time `json:"marked_as_done_at,omitempty"`
}

func (t *Todo) IsDone() bool {
	return t != nil && t.MarkedAsDoneAt != nil
}

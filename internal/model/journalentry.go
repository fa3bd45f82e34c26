package model

import "time"

// JournalEntry represents a free-text journal note that trades can reference
// through their journalId field. No referential integrity is enforced from the
// trade side; deleting an entry clears the back-references instead.
type JournalEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

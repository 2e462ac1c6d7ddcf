package entities

import "time"

// ProcessNote is a free-text annotation. Notes are created and deleted, never edited.
type ProcessNote struct {
	ID        int64     `json:"id"`
	ProcessID int64     `json:"process_id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

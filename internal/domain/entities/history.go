package entities

import "time"

// ProcessHistoryEntry is an audit record written after every stage transition. The core
// only ever creates entries.
type ProcessHistoryEntry struct {
	ID        int64     `json:"id,omitempty"`
	ProcessID int64     `json:"process_id"`
	OldStatus *string   `json:"old_status"`
	NewStatus *string   `json:"new_status"`
	ChangedBy int64     `json:"changed_by"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// NewTransitionEntry builds the entry recorded for a status change. A nil old status
// marks the creation of the process.
func NewTransitionEntry(processID int64, oldStatus *string, newStatus string, changedBy int64, note string) ProcessHistoryEntry {
	return ProcessHistoryEntry{
		ProcessID: processID,
		OldStatus: oldStatus,
		NewStatus: &newStatus,
		ChangedBy: changedBy,
		Note:      &note,
	}
}

package entities

import "time"

// Process is a unit of installation work linked to a quote.
//
// Status holds the raw persisted state: either a legacy value (pending, in_progress, done,
// cancelled) or a numeric stage "1".."7". Use CurrentStage to read it.
type Process struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CreatedBy  int64     `json:"created_by"`
	AssignedTo int64     `json:"assigned_to"`
	Status     string    `json:"status"`
	QuoteID    int64     `json:"quote_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (p Process) CurrentStage() Stage {
	return MapStatusToStage(p.Status)
}

// ProcessUpdate is the full-record body accepted by PUT /processes/{id}.
type ProcessUpdate struct {
	Name       string `json:"name"`
	CreatedBy  int64  `json:"created_by"`
	AssignedTo int64  `json:"assigned_to"`
	Status     string `json:"status"`
	QuoteID    int64  `json:"quote_id"`
}

// ProcessDraft is the body accepted by POST /processes.
type ProcessDraft struct {
	Name       string `json:"name"`
	CreatedBy  int64  `json:"created_by"`
	AssignedTo int64  `json:"assigned_to"`
	Status     string `json:"status,omitempty"`
	QuoteID    int64  `json:"quote_id"`
}

// ProcessFilter narrows the process listing. Zero values mean "no filter".
type ProcessFilter struct {
	Status  string
	QuoteID int64
}

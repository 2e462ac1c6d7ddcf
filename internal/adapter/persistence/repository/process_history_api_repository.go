package repository

import (
	"context"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/infrastructure/portalapi"
	"portal_electro/internal/usecase/interfaces"
)

type ProcessHistoryAPIRepository struct {
	api *portalapi.Client
}

var _ interfaces.IProcessHistoryRepository = (*ProcessHistoryAPIRepository)(nil)

func NewProcessHistoryAPIRepository(api *portalapi.Client) *ProcessHistoryAPIRepository {
	return &ProcessHistoryAPIRepository{api: api}
}

func (r *ProcessHistoryAPIRepository) Create(ctx context.Context, entry entities.ProcessHistoryEntry) (entities.ProcessHistoryEntry, error) {
	body := historyBody{
		ProcessID: entry.ProcessID,
		OldStatus: entry.OldStatus,
		NewStatus: entry.NewStatus,
		ChangedBy: entry.ChangedBy,
		Note:      entry.Note,
	}
	var out entities.ProcessHistoryEntry
	if err := r.api.Post(ctx, processHistoryResource, body, &out); err != nil {
		return entities.ProcessHistoryEntry{}, mapAPIError(err)
	}
	return out, nil
}

// historyBody leaves id and created_at to the backend.
type historyBody struct {
	ProcessID int64   `json:"process_id"`
	OldStatus *string `json:"old_status"`
	NewStatus *string `json:"new_status"`
	ChangedBy int64   `json:"changed_by"`
	Note      *string `json:"note"`
}

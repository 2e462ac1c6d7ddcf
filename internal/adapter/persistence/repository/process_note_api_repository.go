package repository

import (
	"context"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/infrastructure/portalapi"
	"portal_electro/internal/usecase/interfaces"
)

type noteBody struct {
	ProcessID int64  `json:"process_id"`
	Note      string `json:"note"`
}

type ProcessNoteAPIRepository struct {
	api *portalapi.Client
}

var _ interfaces.IProcessNoteRepository = (*ProcessNoteAPIRepository)(nil)

func NewProcessNoteAPIRepository(api *portalapi.Client) *ProcessNoteAPIRepository {
	return &ProcessNoteAPIRepository{api: api}
}

func (r *ProcessNoteAPIRepository) ListByProcess(ctx context.Context, processID int64) ([]entities.ProcessNote, error) {
	var out []entities.ProcessNote
	if err := r.api.Get(ctx, processNotesResource, byProcess(processID), &out); err != nil {
		return nil, mapAPIError(err)
	}
	return out, nil
}

func (r *ProcessNoteAPIRepository) Create(ctx context.Context, processID int64, note string) (entities.ProcessNote, error) {
	var out entities.ProcessNote
	if err := r.api.Post(ctx, processNotesResource, noteBody{ProcessID: processID, Note: note}, &out); err != nil {
		return entities.ProcessNote{}, mapAPIError(err)
	}
	return out, nil
}

func (r *ProcessNoteAPIRepository) Delete(ctx context.Context, id int64) error {
	return mapAPIError(r.api.Delete(ctx, resourcePath(processNotesResource, id)))
}

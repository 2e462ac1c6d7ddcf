package repository

import (
	"context"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/infrastructure/portalapi"
	"portal_electro/internal/usecase/interfaces"
	"strconv"
)

// ProcessAPIRepository reads and writes processes through the portal backend.
type ProcessAPIRepository struct {
	api *portalapi.Client
}

var _ interfaces.IProcessRepository = (*ProcessAPIRepository)(nil)

func NewProcessAPIRepository(api *portalapi.Client) *ProcessAPIRepository {
	return &ProcessAPIRepository{api: api}
}

func (r *ProcessAPIRepository) List(ctx context.Context, filter entities.ProcessFilter) ([]entities.Process, error) {
	query := map[string]string{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.QuoteID > 0 {
		query["quote_id"] = strconv.FormatInt(filter.QuoteID, 10)
	}

	var out []entities.Process
	if err := r.api.Get(ctx, processesResource, query, &out); err != nil {
		return nil, mapAPIError(err)
	}
	return out, nil
}

func (r *ProcessAPIRepository) GetByID(ctx context.Context, id int64) (entities.Process, error) {
	var out entities.Process
	if err := r.api.Get(ctx, resourcePath(processesResource, id), nil, &out); err != nil {
		return entities.Process{}, mapAPIError(err)
	}
	return out, nil
}

func (r *ProcessAPIRepository) Create(ctx context.Context, draft entities.ProcessDraft) (entities.Process, error) {
	var out entities.Process
	if err := r.api.Post(ctx, processesResource, draft, &out); err != nil {
		return entities.Process{}, mapAPIError(err)
	}
	return out, nil
}

func (r *ProcessAPIRepository) Update(ctx context.Context, id int64, update entities.ProcessUpdate) (entities.Process, error) {
	var out entities.Process
	if err := r.api.Put(ctx, resourcePath(processesResource, id), update, &out); err != nil {
		return entities.Process{}, mapAPIError(err)
	}
	return out, nil
}

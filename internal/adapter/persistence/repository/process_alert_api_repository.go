package repository

import (
	"context"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/infrastructure/portalapi"
	"portal_electro/internal/usecase/interfaces"
)

type ProcessAlertAPIRepository struct {
	api *portalapi.Client
}

var _ interfaces.IProcessAlertRepository = (*ProcessAlertAPIRepository)(nil)

func NewProcessAlertAPIRepository(api *portalapi.Client) *ProcessAlertAPIRepository {
	return &ProcessAlertAPIRepository{api: api}
}

func (r *ProcessAlertAPIRepository) ListByProcess(ctx context.Context, processID int64) ([]entities.ProcessAlert, error) {
	var out []entities.ProcessAlert
	if err := r.api.Get(ctx, processAlertsResource, byProcess(processID), &out); err != nil {
		return nil, mapAPIError(err)
	}
	return out, nil
}

func (r *ProcessAlertAPIRepository) Create(ctx context.Context, draft entities.AlertDraft) (entities.ProcessAlert, error) {
	var out entities.ProcessAlert
	if err := r.api.Post(ctx, processAlertsResource, draft, &out); err != nil {
		return entities.ProcessAlert{}, mapAPIError(err)
	}
	return out, nil
}

func (r *ProcessAlertAPIRepository) Update(ctx context.Context, id int64, update entities.AlertUpdate) (entities.ProcessAlert, error) {
	var out entities.ProcessAlert
	if err := r.api.Put(ctx, resourcePath(processAlertsResource, id), update, &out); err != nil {
		return entities.ProcessAlert{}, mapAPIError(err)
	}
	return out, nil
}

func (r *ProcessAlertAPIRepository) Delete(ctx context.Context, id int64) error {
	return mapAPIError(r.api.Delete(ctx, resourcePath(processAlertsResource, id)))
}

package repository

import (
	"context"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/infrastructure/portalapi"
	"portal_electro/internal/usecase/interfaces"
)

type ServiceReportAPIRepository struct {
	api *portalapi.Client
}

var _ interfaces.IServiceReportRepository = (*ServiceReportAPIRepository)(nil)

func NewServiceReportAPIRepository(api *portalapi.Client) *ServiceReportAPIRepository {
	return &ServiceReportAPIRepository{api: api}
}

func (r *ServiceReportAPIRepository) ListByProcess(ctx context.Context, processID int64) ([]entities.ServiceReport, error) {
	var out []entities.ServiceReport
	if err := r.api.Get(ctx, serviceReportsResource, byProcess(processID), &out); err != nil {
		return nil, mapAPIError(err)
	}
	return out, nil
}

func (r *ServiceReportAPIRepository) Create(ctx context.Context, payload entities.ServiceReportPayload) (entities.ServiceReport, error) {
	var out entities.ServiceReport
	if err := r.api.Post(ctx, serviceReportsResource, payload, &out); err != nil {
		return entities.ServiceReport{}, mapAPIError(err)
	}
	return out, nil
}

func (r *ServiceReportAPIRepository) Update(ctx context.Context, id int64, payload entities.ServiceReportPayload) (entities.ServiceReport, error) {
	var out entities.ServiceReport
	if err := r.api.Put(ctx, resourcePath(serviceReportsResource, id), payload, &out); err != nil {
		return entities.ServiceReport{}, mapAPIError(err)
	}
	return out, nil
}

package repository

import (
	"context"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/infrastructure/portalapi"
	"portal_electro/internal/usecase/interfaces"
)

type CatalogAPIRepository struct {
	api *portalapi.Client
}

var _ interfaces.ICatalogRepository = (*CatalogAPIRepository)(nil)

func NewCatalogAPIRepository(api *portalapi.Client) *CatalogAPIRepository {
	return &CatalogAPIRepository{api: api}
}

func (r *CatalogAPIRepository) ListCatalog(ctx context.Context) ([]entities.CatalogProduct, error) {
	var out []entities.CatalogProduct
	if err := r.api.Get(ctx, catalogResource, nil, &out); err != nil {
		return nil, mapAPIError(err)
	}
	return out, nil
}

func (r *CatalogAPIRepository) ListCablesAndAccessories(ctx context.Context) ([]entities.CableOrAccessory, error) {
	var out []entities.CableOrAccessory
	if err := r.api.Get(ctx, cablesResource, nil, &out); err != nil {
		return nil, mapAPIError(err)
	}
	return out, nil
}

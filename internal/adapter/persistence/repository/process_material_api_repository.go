package repository

import (
	"context"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/infrastructure/portalapi"
	"portal_electro/internal/usecase/interfaces"
)

// materialWire is the flat material line of the backend: both foreign keys and the
// joined display columns of both catalogs.
type materialWire struct {
	ID               int64  `json:"id"`
	ProcessID        int64  `json:"process_id"`
	CatalogID        *int64 `json:"catalog_id"`
	CableAccessoryID *int64 `json:"cable_accessory_id"`
	Quantity         int    `json:"quantity"`

	CatalogReference   string `json:"catalog_reference"`
	CatalogDescription string `json:"catalog_description"`
	CatalogImageURL    string `json:"catalog_image_url"`
	CatalogPrice       string `json:"catalog_price"`

	CableName            string `json:"cable_name"`
	CableDescription     string `json:"cable_description"`
	CableMeasurementType string `json:"cable_measurement_type"`
	CablePrice           string `json:"cable_price"`
}

// materialBody is the create/update body. The unused foreign key goes out as null.
type materialBody struct {
	ProcessID        int64  `json:"process_id"`
	CatalogID        *int64 `json:"catalog_id"`
	CableAccessoryID *int64 `json:"cable_accessory_id"`
	Quantity         int    `json:"quantity"`
}

func toMaterialBody(in entities.MaterialInput) materialBody {
	return materialBody{
		ProcessID:        in.ProcessID,
		CatalogID:        int64Ptr(in.Ref.CatalogID()),
		CableAccessoryID: int64Ptr(in.Ref.CableAccessoryID()),
		Quantity:         in.Quantity,
	}
}

// fromMaterialWire picks the populated source. A line carrying neither key keeps a nil
// Source.
func fromMaterialWire(w materialWire) entities.ProcessMaterial {
	m := entities.ProcessMaterial{ID: w.ID, ProcessID: w.ProcessID, Quantity: w.Quantity}
	switch {
	case derefInt64(w.CatalogID) > 0:
		m.Source = entities.CatalogMaterial{
			CatalogID:   *w.CatalogID,
			Reference:   w.CatalogReference,
			Description: w.CatalogDescription,
			ImageURL:    w.CatalogImageURL,
			Price:       w.CatalogPrice,
		}
	case derefInt64(w.CableAccessoryID) > 0:
		m.Source = entities.CableMaterial{
			CableAccessoryID: *w.CableAccessoryID,
			Name:             w.CableName,
			Description:      w.CableDescription,
			MeasurementType:  w.CableMeasurementType,
			Price:            w.CablePrice,
		}
	}
	return m
}

type ProcessMaterialAPIRepository struct {
	api *portalapi.Client
}

var _ interfaces.IProcessMaterialRepository = (*ProcessMaterialAPIRepository)(nil)

func NewProcessMaterialAPIRepository(api *portalapi.Client) *ProcessMaterialAPIRepository {
	return &ProcessMaterialAPIRepository{api: api}
}

func (r *ProcessMaterialAPIRepository) ListByProcess(ctx context.Context, processID int64) ([]entities.ProcessMaterial, error) {
	var wire []materialWire
	if err := r.api.Get(ctx, processMaterialsResource, byProcess(processID), &wire); err != nil {
		return nil, mapAPIError(err)
	}
	out := make([]entities.ProcessMaterial, 0, len(wire))
	for _, w := range wire {
		out = append(out, fromMaterialWire(w))
	}
	return out, nil
}

func (r *ProcessMaterialAPIRepository) Create(ctx context.Context, in entities.MaterialInput) (entities.ProcessMaterial, error) {
	var w materialWire
	if err := r.api.Post(ctx, processMaterialsResource, toMaterialBody(in), &w); err != nil {
		return entities.ProcessMaterial{}, mapAPIError(err)
	}
	return fromMaterialWire(w), nil
}

func (r *ProcessMaterialAPIRepository) Update(ctx context.Context, id int64, in entities.MaterialInput) (entities.ProcessMaterial, error) {
	var w materialWire
	if err := r.api.Put(ctx, resourcePath(processMaterialsResource, id), toMaterialBody(in), &w); err != nil {
		return entities.ProcessMaterial{}, mapAPIError(err)
	}
	return fromMaterialWire(w), nil
}

func (r *ProcessMaterialAPIRepository) Delete(ctx context.Context, id int64) error {
	return mapAPIError(r.api.Delete(ctx, resourcePath(processMaterialsResource, id)))
}

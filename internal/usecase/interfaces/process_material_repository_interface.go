package interfaces

import (
	"context"
	"portal_electro/internal/domain/entities"
)

// IProcessMaterialRepository abstracts /process-materials.
//
// Inputs are already validated: every MaterialInput references exactly one source, so
// exactly one of catalog_id / cable_accessory_id goes out non-zero.

type IProcessMaterialRepository interface {
	ListByProcess(ctx context.Context, processID int64) ([]entities.ProcessMaterial, error)
	Create(ctx context.Context, in entities.MaterialInput) (entities.ProcessMaterial, error)
	Update(ctx context.Context, id int64, in entities.MaterialInput) (entities.ProcessMaterial, error)
	Delete(ctx context.Context, id int64) error
}

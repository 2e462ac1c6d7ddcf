package interfaces

import (
	"context"
	"portal_electro/internal/domain/entities"
)

// IProcessRepository abstracts the backend's /processes resource.

type IProcessRepository interface {
	List(ctx context.Context, filter entities.ProcessFilter) ([]entities.Process, error)
	GetByID(ctx context.Context, id int64) (entities.Process, error)
	Create(ctx context.Context, draft entities.ProcessDraft) (entities.Process, error)
	Update(ctx context.Context, id int64, update entities.ProcessUpdate) (entities.Process, error)
}

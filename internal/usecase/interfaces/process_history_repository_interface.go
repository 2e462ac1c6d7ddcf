package interfaces

import (
	"context"
	"portal_electro/internal/domain/entities"
)

// IProcessHistoryRepository is write-only from the portal's point of view.

type IProcessHistoryRepository interface {
	Create(ctx context.Context, entry entities.ProcessHistoryEntry) (entities.ProcessHistoryEntry, error)
}

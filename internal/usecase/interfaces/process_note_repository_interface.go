package interfaces

import (
	"context"
	"portal_electro/internal/domain/entities"
)

type IProcessNoteRepository interface {
	ListByProcess(ctx context.Context, processID int64) ([]entities.ProcessNote, error)
	Create(ctx context.Context, processID int64, note string) (entities.ProcessNote, error)
	Delete(ctx context.Context, id int64) error
}

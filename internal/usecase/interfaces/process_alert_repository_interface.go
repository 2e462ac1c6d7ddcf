package interfaces

import (
	"context"
	"portal_electro/internal/domain/entities"
)

// IProcessAlertRepository abstracts /process-alerts. Resolving an alert is an Update.

type IProcessAlertRepository interface {
	ListByProcess(ctx context.Context, processID int64) ([]entities.ProcessAlert, error)
	Create(ctx context.Context, draft entities.AlertDraft) (entities.ProcessAlert, error)
	Update(ctx context.Context, id int64, update entities.AlertUpdate) (entities.ProcessAlert, error)
	Delete(ctx context.Context, id int64) error
}

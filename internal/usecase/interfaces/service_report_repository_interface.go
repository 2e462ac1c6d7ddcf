package interfaces

import (
	"context"
	"portal_electro/internal/domain/entities"
)

// IServiceReportRepository abstracts /service-reports. ListByProcess returns a list even
// though a process is expected to have a single report.

type IServiceReportRepository interface {
	ListByProcess(ctx context.Context, processID int64) ([]entities.ServiceReport, error)
	Create(ctx context.Context, payload entities.ServiceReportPayload) (entities.ServiceReport, error)
	Update(ctx context.Context, id int64, payload entities.ServiceReportPayload) (entities.ServiceReport, error)
}

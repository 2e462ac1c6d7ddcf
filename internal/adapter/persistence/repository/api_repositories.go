package repository

import (
	"portal_electro/internal/infrastructure/portalapi"
	"portal_electro/internal/usecase"
)

// NewProcessRepositories wires every backend resource over one API client. The signature
// store and the edit locker are left for the caller to choose.
func NewProcessRepositories(api *portalapi.Client) usecase.ProcessRepositories {
	return usecase.ProcessRepositories{
		Processes: NewProcessAPIRepository(api),
		Materials: NewProcessMaterialAPIRepository(api),
		Notes:     NewProcessNoteAPIRepository(api),
		Alerts:    NewProcessAlertAPIRepository(api),
		History:   NewProcessHistoryAPIRepository(api),
		Reports:   NewServiceReportAPIRepository(api),
		Catalog:   NewCatalogAPIRepository(api),
	}
}

package repository

import (
	"errors"
	"fmt"
	"portal_electro/internal/infrastructure/portalapi"
	"portal_electro/internal/usecase/interfaces"
	"strconv"
)

// Backend resources.
const (
	processesResource        = "/processes"
	processMaterialsResource = "/process-materials"
	processNotesResource     = "/process-notes"
	processAlertsResource    = "/process-alerts"
	processHistoryResource   = "/process-history"
	serviceReportsResource   = "/service-reports"
	catalogResource          = "/catalog"
	cablesResource           = "/cables-and-accessories"
)

func resourcePath(resource string, id int64) string {
	return resource + "/" + strconv.FormatInt(id, 10)
}

func byProcess(processID int64) map[string]string {
	return map[string]string{"process_id": strconv.FormatInt(processID, 10)}
}

// mapAPIError marks backend 404s with interfaces.ErrNotFound and keeps the original error
// in the chain.
func mapAPIError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *portalapi.APIError
	if errors.As(err, &apiErr) && apiErr.NotFound() {
		return fmt.Errorf("%w: %w", interfaces.ErrNotFound, err)
	}
	return err
}

func int64Ptr(v int64) *int64 {
	if v <= 0 {
		return nil
	}
	return &v
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

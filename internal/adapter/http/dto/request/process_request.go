package request

import (
	"errors"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/usecase"
	"strings"
)

var ErrInvalidMaterialKind = errors.New("invalid material kind")

type CreateProcessRequest struct {
	Name       string `json:"name" binding:"required"`
	AssignedTo int64  `json:"assigned_to"`
	QuoteID    int64  `json:"quote_id"`
}

func (r CreateProcessRequest) ToNewProcess() usecase.NewProcess {
	return usecase.NewProcess{Name: r.Name, AssignedTo: r.AssignedTo, QuoteID: r.QuoteID}
}

type OpenViewRequest struct {
	ProcessID int64 `json:"process_id" binding:"required"`
}

// EditProcessRequest is the edit-commit of the header. Stage is validated by the use case
// so an out-of-range value gets the user-facing message.
type EditProcessRequest struct {
	Name       string `json:"name"`
	Stage      int    `json:"stage"`
	AssignedTo *int64 `json:"assigned_to"`
}

func (r EditProcessRequest) ToEdit() usecase.ProcessEdit {
	return usecase.ProcessEdit{Name: r.Name, Stage: entities.Stage(r.Stage), AssignedTo: r.AssignedTo}
}

// MaterialRequest accepts either the flat foreign keys or a picker selection (kind +
// item_id). The selection wins when both are sent.
type MaterialRequest struct {
	CatalogID        int64  `json:"catalog_id"`
	CableAccessoryID int64  `json:"cable_accessory_id"`
	Kind             string `json:"kind"`
	ItemID           int64  `json:"item_id"`
	Quantity         *int   `json:"quantity"`
}

// Selection returns the picker reference, if the request carries one.
func (r MaterialRequest) Selection() (entities.MaterialRef, bool, error) {
	kind := strings.TrimSpace(r.Kind)
	if kind == "" {
		return entities.MaterialRef{}, false, nil
	}
	ref := entities.MaterialRef{Kind: entities.MaterialSourceKind(kind), ID: r.ItemID}
	if !ref.Kind.Valid() {
		return entities.MaterialRef{}, false, ErrInvalidMaterialKind
	}
	return ref, true, nil
}

// ToDraft builds the add-form draft. A missing quantity defaults to one.
func (r MaterialRequest) ToDraft() entities.MaterialDraft {
	d := entities.NewMaterialDraft()
	d.CatalogID = r.CatalogID
	d.CableAccessoryID = r.CableAccessoryID
	if r.Quantity != nil {
		d.Quantity = *r.Quantity
	}
	return d
}

type NoteRequest struct {
	Note string `json:"note"`
}

type AlertRequest struct {
	AlertType string `json:"alert_type"`
	Message   string `json:"message"`
}

func (r AlertRequest) ToNewAlert() usecase.NewAlert {
	return usecase.NewAlert{Type: r.AlertType, Message: r.Message}
}

// SignatureRequest carries the signature pad image, typically a PNG data URL.
type SignatureRequest struct {
	Data string `json:"data"`
}

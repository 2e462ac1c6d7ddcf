package response

import (
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/usecase"
	"time"

	"github.com/google/uuid"
)

type StageResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

func FromStage(d entities.StageDescriptor) StageResponse {
	return StageResponse{ID: int(d.ID), Name: d.Name, Description: d.Description, Icon: d.Icon, Color: d.Color}
}

func FromStages(ds []entities.StageDescriptor) []StageResponse {
	out := make([]StageResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromStage(d))
	}
	return out
}

type ProcessResponse struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	CreatedBy  int64         `json:"created_by"`
	AssignedTo int64         `json:"assigned_to"`
	Status     string        `json:"status"`
	Stage      StageResponse `json:"stage"`
	QuoteID    int64         `json:"quote_id"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func FromProcess(p entities.Process) ProcessResponse {
	stage, _ := entities.StageByID(p.CurrentStage())
	return ProcessResponse{
		ID:         p.ID,
		Name:       p.Name,
		CreatedBy:  p.CreatedBy,
		AssignedTo: p.AssignedTo,
		Status:     p.Status,
		Stage:      FromStage(stage),
		QuoteID:    p.QuoteID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

type StageCountResponse struct {
	Stage int    `json:"stage"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ProcessBoardResponse struct {
	Processes []ProcessResponse    `json:"processes"`
	Counts    []StageCountResponse `json:"counts"`
}

func FromBoard(b usecase.ProcessBoard) ProcessBoardResponse {
	out := ProcessBoardResponse{Processes: make([]ProcessResponse, 0, len(b.Entries))}
	for _, e := range b.Entries {
		out.Processes = append(out.Processes, FromProcess(e.Process))
	}
	for _, c := range b.Counts() {
		out.Counts = append(out.Counts, StageCountResponse{Stage: int(c.Stage), Name: c.Name, Count: c.Count})
	}
	return out
}

// MaterialResponse flattens the material source for the UI. Kind is empty for a line that
// references nothing.
type MaterialResponse struct {
	ID              int64  `json:"id"`
	Kind            string `json:"kind"`
	ItemID          int64  `json:"item_id"`
	Label           string `json:"label"`
	Reference       string `json:"reference,omitempty"`
	Description     string `json:"description,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
	MeasurementType string `json:"measurement_type,omitempty"`
	UnitPrice       string `json:"unit_price"`
	Quantity        int    `json:"quantity"`
	LineTotal       string `json:"line_total"`
}

func FromMaterial(m entities.ProcessMaterial) MaterialResponse {
	out := MaterialResponse{
		ID:        m.ID,
		Label:     m.Label(),
		Quantity:  m.Quantity,
		LineTotal: m.LineTotal().StringFixed(2),
	}
	switch src := m.Source.(type) {
	case entities.CatalogMaterial:
		out.Kind = string(src.Kind())
		out.ItemID = src.CatalogID
		out.Reference = src.Reference
		out.Description = src.Description
		out.ImageURL = src.ImageURL
		out.UnitPrice = src.Price
	case entities.CableMaterial:
		out.Kind = string(src.Kind())
		out.ItemID = src.CableAccessoryID
		out.Description = src.Description
		out.MeasurementType = src.MeasurementType
		out.UnitPrice = src.Price
	}
	return out
}

type SignatureResponse struct {
	Data       string    `json:"data"`
	CapturedBy int64     `json:"captured_by"`
	CapturedAt time.Time `json:"captured_at"`
}

type ProcessDetailResponse struct {
	Process        ProcessResponse         `json:"process"`
	Materials      []MaterialResponse      `json:"materials"`
	MaterialsTotal string                  `json:"materials_total"`
	Notes          []entities.ProcessNote  `json:"notes"`
	Alerts         []entities.ProcessAlert `json:"alerts"`
	OpenAlerts     int                     `json:"open_alerts"`
	ServiceReport  *entities.ServiceReport `json:"service_report"`
	Signature      *SignatureResponse      `json:"signature"`
	Finished       bool                    `json:"finished"`
}

func FromProcessDetail(d entities.ProcessDetail) ProcessDetailResponse {
	out := ProcessDetailResponse{
		Process:        FromProcess(d.Process),
		Materials:      make([]MaterialResponse, 0, len(d.Materials)),
		MaterialsTotal: d.MaterialsTotal().StringFixed(2),
		Notes:          d.Notes,
		Alerts:         d.Alerts,
		OpenAlerts:     d.OpenAlerts(),
		ServiceReport:  d.ServiceReport,
		Finished:       d.IsFinished(),
	}
	for _, m := range d.Materials {
		out.Materials = append(out.Materials, FromMaterial(m))
	}
	if d.Signature != nil {
		out.Signature = &SignatureResponse{Data: d.Signature.Data, CapturedBy: d.Signature.CapturedBy, CapturedAt: d.Signature.CapturedAt}
	}
	return out
}

type ConfirmationResponse struct {
	Token  uuid.UUID `json:"token"`
	Kind   string    `json:"kind"`
	ID     int64     `json:"id"`
	Prompt string    `json:"prompt"`
}

func FromConfirmation(c usecase.Confirmation) ConfirmationResponse {
	return ConfirmationResponse{Token: c.Token, Kind: string(c.Target.Kind), ID: c.Target.ID, Prompt: c.Prompt}
}

// ViewResponse is the snapshot of an open process view. Warning is set when the edit was
// saved but its audit entry was not.
type ViewResponse struct {
	ViewID              uuid.UUID             `json:"view_id"`
	Detail              ProcessDetailResponse `json:"detail"`
	PendingConfirmation *ConfirmationResponse `json:"pending_confirmation"`
	Warning             string                `json:"warning,omitempty"`
}

func FromView(id uuid.UUID, lc usecase.IProcessLifecycle, detail entities.ProcessDetail) ViewResponse {
	out := ViewResponse{ViewID: id, Detail: FromProcessDetail(detail)}
	if c, ok := lc.PendingConfirmation(); ok {
		cr := FromConfirmation(c)
		out.PendingConfirmation = &cr
	}
	return out
}

type ReportFormResponse struct {
	ViewID uuid.UUID                  `json:"view_id"`
	Form   entities.ServiceReportForm `json:"form"`
}

type MaterialSearchResponse struct {
	Catalog []entities.CatalogProduct   `json:"catalog"`
	Cables  []entities.CableOrAccessory `json:"cables"`
}

func FromMaterialSearch(r usecase.MaterialSearchResult) MaterialSearchResponse {
	out := MaterialSearchResponse{Catalog: r.Catalog, Cables: r.Cables}
	if out.Catalog == nil {
		out.Catalog = []entities.CatalogProduct{}
	}
	if out.Cables == nil {
		out.Cables = []entities.CableOrAccessory{}
	}
	return out
}

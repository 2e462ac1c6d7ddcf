package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidProcess = errors.New("invalid process")

// ProcessDetail is the aggregate the lifecycle controller works on: a process with its
// materials, notes, alerts and (at most one) service report. Build it with
// NewProcessDetail so list fields are never nil.
type ProcessDetail struct {
	Process       Process
	Materials     []ProcessMaterial
	Notes         []ProcessNote
	Alerts        []ProcessAlert
	ServiceReport *ServiceReport
	Signature     *Signature
}

// NewProcessDetail assembles the aggregate. Only the first report is kept: the backend
// answers with a list but a process carries a single report.
func NewProcessDetail(p Process, materials []ProcessMaterial, notes []ProcessNote, alerts []ProcessAlert, reports []ServiceReport) (ProcessDetail, error) {
	if p.ID <= 0 {
		return ProcessDetail{}, ErrInvalidProcess
	}

	d := ProcessDetail{
		Process:   p,
		Materials: append([]ProcessMaterial{}, materials...),
		Notes:     append([]ProcessNote{}, notes...),
		Alerts:    append([]ProcessAlert{}, alerts...),
	}
	if len(reports) > 0 {
		r := reports[0]
		d.ServiceReport = &r
	}
	return d, nil
}

func (d ProcessDetail) CurrentStage() Stage {
	return d.Process.CurrentStage()
}

// IsFinished reports whether the process reached Completion and the client signed.
func (d ProcessDetail) IsFinished() bool {
	return d.CurrentStage().IsTerminal() && d.Signature != nil
}

// Clone returns a copy that shares no slices or pointers with d.
func (d ProcessDetail) Clone() ProcessDetail {
	out := ProcessDetail{
		Process:   d.Process,
		Materials: append([]ProcessMaterial{}, d.Materials...),
		Notes:     append([]ProcessNote{}, d.Notes...),
		Alerts:    make([]ProcessAlert, len(d.Alerts)),
	}
	for i, a := range d.Alerts {
		if a.ResolvedAt != nil {
			t := *a.ResolvedAt
			a.ResolvedAt = &t
		}
		out.Alerts[i] = a
	}
	if d.ServiceReport != nil {
		r := *d.ServiceReport
		out.ServiceReport = &r
	}
	if d.Signature != nil {
		s := *d.Signature
		out.Signature = &s
	}
	return out
}

func (d ProcessDetail) FindMaterial(id int64) (ProcessMaterial, int, bool) {
	for i, m := range d.Materials {
		if m.ID == id {
			return m, i, true
		}
	}
	return ProcessMaterial{}, -1, false
}

func (d ProcessDetail) FindNote(id int64) (ProcessNote, int, bool) {
	for i, n := range d.Notes {
		if n.ID == id {
			return n, i, true
		}
	}
	return ProcessNote{}, -1, false
}

func (d ProcessDetail) FindAlert(id int64) (ProcessAlert, int, bool) {
	for i, a := range d.Alerts {
		if a.ID == id {
			return a, i, true
		}
	}
	return ProcessAlert{}, -1, false
}

func (d ProcessDetail) OpenAlerts() int {
	n := 0
	for _, a := range d.Alerts {
		if a.IsOpen() {
			n++
		}
	}
	return n
}

// MaterialsTotal sums the line totals of every material.
func (d ProcessDetail) MaterialsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, m := range d.Materials {
		total = total.Add(m.LineTotal())
	}
	return total
}

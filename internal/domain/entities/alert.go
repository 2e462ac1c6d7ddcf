package entities

import (
	"errors"
	"time"
)

var ErrUnknownAlertType = errors.New("unknown alert type")

// AlertType is the fixed vocabulary of alert categories.
type AlertType string

const (
	AlertTypeGeneral     AlertType = "general"
	AlertTypeMateriales  AlertType = "materiales"
	AlertTypeInstalacion AlertType = "instalacion"
	AlertTypeTransporte  AlertType = "transporte"
	AlertTypeSeguridad   AlertType = "seguridad"
	AlertTypeCliente     AlertType = "cliente"
	DefaultAlertType               = AlertTypeGeneral
)

var alertTypes = []AlertType{
	AlertTypeGeneral,
	AlertTypeMateriales,
	AlertTypeInstalacion,
	AlertTypeTransporte,
	AlertTypeSeguridad,
	AlertTypeCliente,
}

func AlertTypes() []AlertType {
	out := make([]AlertType, len(alertTypes))
	copy(out, alertTypes)
	return out
}

func (t AlertType) Valid() bool {
	for _, v := range alertTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ParseAlertType maps user input to the vocabulary; empty input yields the default.
func ParseAlertType(raw string) (AlertType, error) {
	if raw == "" {
		return DefaultAlertType, nil
	}
	t := AlertType(raw)
	if !t.Valid() {
		return "", ErrUnknownAlertType
	}
	return t, nil
}

// AlertStatus is open until resolved; closed is terminal.
type AlertStatus string

const (
	AlertStatusOpen   AlertStatus = "open"
	AlertStatusClosed AlertStatus = "closed"
)

// ProcessAlert is an issue flagged on a process.
type ProcessAlert struct {
	ID         int64       `json:"id"`
	ProcessID  int64       `json:"process_id"`
	ReportedBy int64       `json:"reported_by"`
	AlertType  AlertType   `json:"alert_type"`
	Message    string      `json:"message"`
	Status     AlertStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	ResolvedAt *time.Time  `json:"resolved_at"`
}

func (a ProcessAlert) IsOpen() bool {
	return a.Status != AlertStatusClosed
}

// ResolutionTime clamps now so that resolved_at never precedes created_at.
func (a ProcessAlert) ResolutionTime(now time.Time) time.Time {
	if now.Before(a.CreatedAt) {
		return a.CreatedAt
	}
	return now
}

// AlertDraft is the body of POST /process-alerts.
type AlertDraft struct {
	ProcessID  int64       `json:"process_id"`
	ReportedBy int64       `json:"reported_by"`
	AlertType  AlertType   `json:"alert_type"`
	Message    string      `json:"message"`
	Status     AlertStatus `json:"status"`
}

// AlertUpdate is the partial body of PUT /process-alerts/{id} used to resolve an alert.
type AlertUpdate struct {
	Status     AlertStatus `json:"status"`
	ResolvedAt *time.Time  `json:"resolved_at"`
}

package entities

import "time"

// Flag is a boolean carried as 0/1 on the wire.
type Flag int

const (
	FlagOff Flag = 0
	FlagOn  Flag = 1
)

// Normalize clamps any non-zero value to 1.
func (f Flag) Normalize() Flag {
	if f != FlagOff {
		return FlagOn
	}
	return FlagOff
}

func (f Flag) Toggle() Flag {
	if f.Normalize() == FlagOn {
		return FlagOff
	}
	return FlagOn
}

func (f Flag) Bool() bool {
	return f.Normalize() == FlagOn
}

// ReportFlag names one of the report's boolean fields.
type ReportFlag string

const (
	ReportFlagPending                ReportFlag = "pending"
	ReportFlagPreviousServiceCharged ReportFlag = "previous_service_charged"
	ReportFlagWarranty               ReportFlag = "warranty"
	ReportFlagSolved                 ReportFlag = "solved"
	ReportFlagTrainingGiven          ReportFlag = "training_given"
	ReportFlagAdsInstalled           ReportFlag = "ads_installed"
	ReportFlagEquipmentTests         ReportFlag = "equipment_tests"
	ReportFlagWorkAreaClean          ReportFlag = "work_area_clean"
)

func ReportFlags() []ReportFlag {
	return []ReportFlag{
		ReportFlagPending,
		ReportFlagPreviousServiceCharged,
		ReportFlagWarranty,
		ReportFlagSolved,
		ReportFlagTrainingGiven,
		ReportFlagAdsInstalled,
		ReportFlagEquipmentTests,
		ReportFlagWorkAreaClean,
	}
}

// ServiceReport is the technical completion report of a process, as returned by the API.
// Monetary values are strings; times are "HH:mm:ss".
type ServiceReport struct {
	ID        int64 `json:"id"`
	ProcessID int64 `json:"process_id"`

	City        string `json:"city"`
	ServiceDate string `json:"service_date"`
	Address     string `json:"address"`

	RequestedBy string `json:"requested_by"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`

	NITDocument string `json:"nit_document"`
	Company     string `json:"company"`

	ServiceValue       string `json:"service_value"`
	ServiceValueNote   string `json:"service_value_note"`
	ServiceDescription string `json:"service_description"`

	Pending                Flag   `json:"pending"`
	PendingDescription     string `json:"pending_description"`
	PreviousServiceCharged Flag   `json:"previous_service_charged"`
	Warranty               Flag   `json:"warranty"`
	Solved                 Flag   `json:"solved"`
	TrainingGiven          Flag   `json:"training_given"`
	AdsInstalled           Flag   `json:"ads_installed"`
	EquipmentTests         Flag   `json:"equipment_tests"`
	WorkAreaClean          Flag   `json:"work_area_clean"`

	EntryTime string `json:"entry_time"`
	ExitTime  string `json:"exit_time"`

	RepresentativeName string `json:"representative_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceReportPayload is the create/update body: the report without id and timestamps.
type ServiceReportPayload struct {
	ProcessID int64 `json:"process_id"`

	City        string `json:"city"`
	ServiceDate string `json:"service_date"`
	Address     string `json:"address"`

	RequestedBy string `json:"requested_by"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`

	NITDocument string `json:"nit_document"`
	Company     string `json:"company"`

	ServiceValue       string `json:"service_value"`
	ServiceValueNote   string `json:"service_value_note"`
	ServiceDescription string `json:"service_description"`

	Pending                Flag   `json:"pending"`
	PendingDescription     string `json:"pending_description"`
	PreviousServiceCharged Flag   `json:"previous_service_charged"`
	Warranty               Flag   `json:"warranty"`
	Solved                 Flag   `json:"solved"`
	TrainingGiven          Flag   `json:"training_given"`
	AdsInstalled           Flag   `json:"ads_installed"`
	EquipmentTests         Flag   `json:"equipment_tests"`
	WorkAreaClean          Flag   `json:"work_area_clean"`

	EntryTime string `json:"entry_time"`
	ExitTime  string `json:"exit_time"`

	RepresentativeName string `json:"representative_name"`
}

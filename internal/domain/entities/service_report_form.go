package entities

import (
	"errors"
	"time"
)

const (
	DefaultEntryTime = "08:00:00"
	DefaultExitTime  = "17:00:00"

	isoDateLayout = "2006-01-02"
)

var ErrUnknownReportFlag = errors.New("unknown report flag")

// ServiceReportForm is the editable state of a process's service report. ID is zero until
// the report exists on the backend; once a create succeeds the returned id is adopted so
// the next save becomes an update.
type ServiceReportForm struct {
	ID int64 `json:"id,omitempty"`
	ServiceReportPayload
}

// ReportToForm builds the form for report, or the default form of processID when no report
// exists yet. today supplies the default service date.
func ReportToForm(report *ServiceReport, processID int64, today time.Time) ServiceReportForm {
	if report == nil {
		return ServiceReportForm{
			ServiceReportPayload: ServiceReportPayload{
				ProcessID:   processID,
				ServiceDate: today.Format(isoDateLayout),
				Solved:      FlagOn,
				EntryTime:   DefaultEntryTime,
				ExitTime:    DefaultExitTime,
			},
		}
	}

	serviceDate := DatePart(report.ServiceDate)
	if serviceDate == "" {
		serviceDate = today.Format(isoDateLayout)
	}

	return ServiceReportForm{
		ID: report.ID,
		ServiceReportPayload: ServiceReportPayload{
			ProcessID:              report.ProcessID,
			City:                   report.City,
			ServiceDate:            serviceDate,
			Address:                report.Address,
			RequestedBy:            report.RequestedBy,
			Email:                  report.Email,
			Phone:                  report.Phone,
			NITDocument:            report.NITDocument,
			Company:                report.Company,
			ServiceValue:           report.ServiceValue,
			ServiceValueNote:       report.ServiceValueNote,
			ServiceDescription:     report.ServiceDescription,
			Pending:                report.Pending.Normalize(),
			PendingDescription:     report.PendingDescription,
			PreviousServiceCharged: report.PreviousServiceCharged.Normalize(),
			Warranty:               report.Warranty.Normalize(),
			Solved:                 report.Solved.Normalize(),
			TrainingGiven:          report.TrainingGiven.Normalize(),
			AdsInstalled:           report.AdsInstalled.Normalize(),
			EquipmentTests:         report.EquipmentTests.Normalize(),
			WorkAreaClean:          report.WorkAreaClean.Normalize(),
			EntryTime:              report.EntryTime,
			ExitTime:               report.ExitTime,
			RepresentativeName:     report.RepresentativeName,
		},
	}
}

// Payload strips the id and normalizes flags and times for submission.
func (f ServiceReportForm) Payload() ServiceReportPayload {
	p := f.ServiceReportPayload
	p.EntryTime = NormalizeTime(p.EntryTime)
	p.ExitTime = NormalizeTime(p.ExitTime)
	p.NormalizeFlags()
	return p
}

// NormalizeFlags clamps every report flag to 0 or 1.
func (p *ServiceReportPayload) NormalizeFlags() {
	for _, flag := range ReportFlags() {
		ptr, _ := p.flag(flag)
		*ptr = ptr.Normalize()
	}
}

// Toggle flips the named flag 0 <-> 1.
func (f *ServiceReportForm) Toggle(flag ReportFlag) error {
	ptr, err := f.flag(flag)
	if err != nil {
		return err
	}
	*ptr = ptr.Toggle()
	return nil
}

// Flag returns the current value of the named flag.
func (f ServiceReportForm) Flag(flag ReportFlag) (Flag, error) {
	ptr, err := f.flag(flag)
	if err != nil {
		return FlagOff, err
	}
	return *ptr, nil
}

func (p *ServiceReportPayload) flag(flag ReportFlag) (*Flag, error) {
	switch flag {
	case ReportFlagPending:
		return &p.Pending, nil
	case ReportFlagPreviousServiceCharged:
		return &p.PreviousServiceCharged, nil
	case ReportFlagWarranty:
		return &p.Warranty, nil
	case ReportFlagSolved:
		return &p.Solved, nil
	case ReportFlagTrainingGiven:
		return &p.TrainingGiven, nil
	case ReportFlagAdsInstalled:
		return &p.AdsInstalled, nil
	case ReportFlagEquipmentTests:
		return &p.EquipmentTests, nil
	case ReportFlagWorkAreaClean:
		return &p.WorkAreaClean, nil
	default:
		return nil, ErrUnknownReportFlag
	}
}

// NormalizeTime turns an "HH:mm" input value into the "HH:mm:ss" form the backend expects.
// Any other value passes through unchanged.
func NormalizeTime(v string) string {
	if len(v) == 5 {
		return v + ":00"
	}
	return v
}

// DatePart keeps the ISO date portion (first 10 characters) of a date or date-time string.
func DatePart(v string) string {
	if len(v) > 10 {
		return v[:10]
	}
	return v
}

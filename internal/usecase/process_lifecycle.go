package usecase

import (
	"context"
	"fmt"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/session"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultHistoryNote  = "Actualización de etapa desde panel de procesos"
	CreationHistoryNote = "Proceso creado"
)

// LifecycleOptions configures how a ProcessLifecycle persists state changes.
type LifecycleOptions struct {
	Encoding    entities.StatusEncoding
	HistoryNote string
	Clock       func() time.Time
}

func (o LifecycleOptions) withDefaults() LifecycleOptions {
	if !o.Encoding.Valid() {
		o.Encoding = entities.StatusEncodingLegacy
	}
	if strings.TrimSpace(o.HistoryNote) == "" {
		o.HistoryNote = DefaultHistoryNote
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

// ProcessEdit is the edit-commit of the process header. A nil AssignedTo keeps the
// current assignee.
type ProcessEdit struct {
	Name       string
	Stage      entities.Stage
	AssignedTo *int64
}

// NewAlert is the user input for an alert. An empty Type means "general".
type NewAlert struct {
	Type    string
	Message string
}

type ConfirmationKind string

const (
	ConfirmMaterialRemoval ConfirmationKind = "material"
	ConfirmNoteRemoval     ConfirmationKind = "note"
	ConfirmAlertRemoval    ConfirmationKind = "alert"
)

type ConfirmationTarget struct {
	Kind ConfirmationKind `json:"kind"`
	ID   int64            `json:"id"`
}

// Confirmation is the pending yes/no gate of a destructive action. Only the holder of
// Token can resolve it.
type Confirmation struct {
	Token  uuid.UUID          `json:"token"`
	Target ConfirmationTarget `json:"target"`
	Prompt string             `json:"prompt"`
}

// IProcessLifecycle owns the edits of one open process aggregate.
//
// Every mutating operation validates first, then calls the backend, and only then applies
// the result locally. On failure the aggregate is left as it was and a typed error
// (ValidationError, TransportError, AuditWriteError) is returned together with the
// current aggregate.
type IProcessLifecycle interface {
	Detail() entities.ProcessDetail
	IsFinished() bool

	CommitEdit(ctx context.Context, edit ProcessEdit) (entities.ProcessDetail, error)

	AddMaterial(ctx context.Context, draft entities.MaterialDraft) (entities.ProcessDetail, error)
	UpdateMaterial(ctx context.Context, id int64, patch entities.MaterialPatch) (entities.ProcessDetail, error)
	RequestMaterialRemoval(id int64) (Confirmation, error)

	AddNote(ctx context.Context, text string) (entities.ProcessDetail, bool, error)
	RequestNoteRemoval(id int64) (Confirmation, error)

	CreateAlert(ctx context.Context, in NewAlert) (entities.ProcessDetail, error)
	ResolveAlert(ctx context.Context, id int64) (entities.ProcessDetail, error)
	RequestAlertRemoval(id int64) (Confirmation, error)

	PendingConfirmation() (Confirmation, bool)
	Confirm(ctx context.Context, token uuid.UUID) (entities.ProcessDetail, error)
	Cancel(token uuid.UUID) error

	ReportForm() entities.ServiceReportForm
	ReplaceReportForm(form entities.ServiceReportForm) entities.ServiceReportForm
	ToggleReportFlag(flag entities.ReportFlag) (entities.ServiceReportForm, error)
	SaveReport(ctx context.Context) (entities.ServiceReportForm, error)

	AttachSignature(ctx context.Context, sig entities.Signature) (entities.ProcessDetail, error)
}

type ProcessLifecycle struct {
	mu      sync.Mutex
	repos   ProcessRepositories
	opts    LifecycleOptions
	logger  *zap.Logger
	detail  entities.ProcessDetail
	form    entities.ServiceReportForm
	pending *Confirmation
}

var _ IProcessLifecycle = (*ProcessLifecycle)(nil)

func NewProcessLifecycle(detail entities.ProcessDetail, repos ProcessRepositories, opts LifecycleOptions, logger *zap.Logger) *ProcessLifecycle {
	opts = opts.withDefaults()
	detail = detail.Clone()
	return &ProcessLifecycle{
		repos:  repos,
		opts:   opts,
		logger: logger.Named("lifecycle").With(zap.Int64("process_id", detail.Process.ID)),
		detail: detail,
		form:   entities.ReportToForm(detail.ServiceReport, detail.Process.ID, opts.Clock()),
	}
}

func (l *ProcessLifecycle) Detail() entities.ProcessDetail {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.detail.Clone()
}

func (l *ProcessLifecycle) IsFinished() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.detail.IsFinished()
}

func (l *ProcessLifecycle) CommitEdit(ctx context.Context, edit ProcessEdit) (entities.ProcessDetail, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	name := strings.TrimSpace(edit.Name)
	if name == "" {
		return l.reject("name", ErrEmptyProcessName)
	}
	if !edit.Stage.Valid() {
		return l.reject("stage", ErrStageOutOfRange)
	}

	current := l.detail.Process
	assignee := current.AssignedTo
	if edit.AssignedTo != nil {
		assignee = *edit.AssignedTo
	}
	newStatus := l.opts.Encoding.Encode(edit.Stage)

	release, err := l.lockProcess(ctx, current.ID)
	if err != nil {
		return l.transportFailure("save the process", err)
	}
	defer release()

	update := entities.ProcessUpdate{
		Name:       name,
		CreatedBy:  current.CreatedBy,
		AssignedTo: assignee,
		Status:     newStatus,
		QuoteID:    current.QuoteID,
	}
	updated, err := l.repos.Processes.Update(ctx, current.ID, update)
	if err != nil {
		return l.transportFailure("save the process", err)
	}
	if updated.ID == 0 {
		// Backend acknowledged without echoing the record.
		updated = current
		updated.Name = update.Name
		updated.AssignedTo = update.AssignedTo
		updated.Status = update.Status
		updated.UpdatedAt = l.opts.Clock()
	}
	l.detail.Process = updated
	l.logger.Info("process updated",
		zap.String("old_status", current.Status),
		zap.String("new_status", updated.Status),
		zap.Int("stage", int(updated.CurrentStage())),
	)

	oldStatus := current.Status
	entry := entities.NewTransitionEntry(current.ID, &oldStatus, newStatus, actingUser(ctx, assignee), l.opts.HistoryNote)
	if _, err := l.repos.History.Create(ctx, entry); err != nil {
		l.logger.Error("history entry not written", zap.Error(err))
		return l.detail.Clone(), &AuditWriteError{ProcessID: current.ID, Err: err}
	}
	return l.detail.Clone(), nil
}

func (l *ProcessLifecycle) AddMaterial(ctx context.Context, draft entities.MaterialDraft) (entities.ProcessDetail, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	in, err := draft.Validate(l.detail.Process.ID)
	if err != nil {
		return l.reject(materialField(err), err)
	}
	created, err := l.repos.Materials.Create(ctx, in)
	if err != nil {
		return l.transportFailure("add the material", err)
	}
	l.detail.Materials = append(l.detail.Materials, created)
	return l.detail.Clone(), nil
}

func (l *ProcessLifecycle) UpdateMaterial(ctx context.Context, id int64, patch entities.MaterialPatch) (entities.ProcessDetail, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, idx, ok := l.detail.FindMaterial(id)
	if !ok {
		return l.detail.Clone(), ErrMaterialNotFound
	}
	in, err := patch.Apply(current).Validate(l.detail.Process.ID)
	if err != nil {
		return l.reject(materialField(err), err)
	}
	updated, err := l.repos.Materials.Update(ctx, id, in)
	if err != nil {
		return l.transportFailure("update the material", err)
	}
	if updated.ID == 0 {
		// No record echoed: rebuild the line from what was sent. The display fields only
		// survive when the source did not change.
		updated = current
		updated.Quantity = in.Quantity
		if current.Ref() != in.Ref {
			updated.Source = entities.MaterialSourceFor(in.Ref)
		}
	}
	l.detail.Materials[idx] = updated
	return l.detail.Clone(), nil
}

func (l *ProcessLifecycle) RequestMaterialRemoval(id int64) (Confirmation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, _, ok := l.detail.FindMaterial(id)
	if !ok {
		return Confirmation{}, ErrMaterialNotFound
	}
	return l.ask(ConfirmMaterialRemoval, id, fmt.Sprintf("Delete material %q from the process?", m.Label())), nil
}

// AddNote ignores blank text: added is false and nothing is sent.
func (l *ProcessLifecycle) AddNote(ctx context.Context, text string) (entities.ProcessDetail, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return l.detail.Clone(), false, nil
	}
	note, err := l.repos.Notes.Create(ctx, l.detail.Process.ID, text)
	if err != nil {
		d, terr := l.transportFailure("add the note", err)
		return d, false, terr
	}
	l.detail.Notes = append(l.detail.Notes, note)
	return l.detail.Clone(), true, nil
}

func (l *ProcessLifecycle) RequestNoteRemoval(id int64) (Confirmation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, _, ok := l.detail.FindNote(id); !ok {
		return Confirmation{}, ErrNoteNotFound
	}
	return l.ask(ConfirmNoteRemoval, id, "Delete this note?"), nil
}

func (l *ProcessLifecycle) CreateAlert(ctx context.Context, in NewAlert) (entities.ProcessDetail, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := strings.TrimSpace(in.Message)
	if message == "" {
		return l.reject("message", ErrEmptyAlertMessage)
	}
	alertType, err := entities.ParseAlertType(strings.TrimSpace(in.Type))
	if err != nil {
		return l.reject("alert_type", err)
	}

	p := l.detail.Process
	reporter := p.AssignedTo
	if reporter == 0 {
		reporter = p.CreatedBy
	}
	created, err := l.repos.Alerts.Create(ctx, entities.AlertDraft{
		ProcessID:  p.ID,
		ReportedBy: reporter,
		AlertType:  alertType,
		Message:    message,
		Status:     entities.AlertStatusOpen,
	})
	if err != nil {
		return l.transportFailure("create the alert", err)
	}
	if created.Status == "" {
		created.Status = entities.AlertStatusOpen
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = l.opts.Clock()
	}
	l.detail.Alerts = append([]entities.ProcessAlert{created}, l.detail.Alerts...)
	return l.detail.Clone(), nil
}

// ResolveAlert closes an open alert. A closed alert is rejected with ErrAlertAlreadyClosed
// so its original resolved_at is never overwritten.
func (l *ProcessLifecycle) ResolveAlert(ctx context.Context, id int64) (entities.ProcessDetail, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, idx, ok := l.detail.FindAlert(id)
	if !ok {
		return l.detail.Clone(), ErrAlertNotFound
	}
	if !a.IsOpen() {
		return l.detail.Clone(), ErrAlertAlreadyClosed
	}

	resolvedAt := a.ResolutionTime(l.opts.Clock())
	updated, err := l.repos.Alerts.Update(ctx, id, entities.AlertUpdate{
		Status:     entities.AlertStatusClosed,
		ResolvedAt: &resolvedAt,
	})
	if err != nil {
		return l.transportFailure("resolve the alert", err)
	}
	if updated.ID == 0 || updated.ResolvedAt == nil {
		updated = a
		updated.Status = entities.AlertStatusClosed
		updated.ResolvedAt = &resolvedAt
	}
	l.detail.Alerts[idx] = updated
	return l.detail.Clone(), nil
}

func (l *ProcessLifecycle) RequestAlertRemoval(id int64) (Confirmation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, _, ok := l.detail.FindAlert(id); !ok {
		return Confirmation{}, ErrAlertNotFound
	}
	return l.ask(ConfirmAlertRemoval, id, "Delete this alert?"), nil
}

func (l *ProcessLifecycle) PendingConfirmation() (Confirmation, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending == nil {
		return Confirmation{}, false
	}
	return *l.pending, true
}

// Confirm executes the pending destructive action. The slot is cleared whether or not
// the backend call succeeds.
func (l *ProcessLifecycle) Confirm(ctx context.Context, token uuid.UUID) (entities.ProcessDetail, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.pending == nil || l.pending.Token != token {
		return l.detail.Clone(), ErrNoPendingConfirmation
	}
	target := l.pending.Target
	l.pending = nil

	switch target.Kind {
	case ConfirmMaterialRemoval:
		if err := l.repos.Materials.Delete(ctx, target.ID); err != nil {
			return l.transportFailure("delete the material", err)
		}
		if _, idx, ok := l.detail.FindMaterial(target.ID); ok {
			l.detail.Materials = append(l.detail.Materials[:idx], l.detail.Materials[idx+1:]...)
		}
	case ConfirmNoteRemoval:
		if err := l.repos.Notes.Delete(ctx, target.ID); err != nil {
			return l.transportFailure("delete the note", err)
		}
		if _, idx, ok := l.detail.FindNote(target.ID); ok {
			l.detail.Notes = append(l.detail.Notes[:idx], l.detail.Notes[idx+1:]...)
		}
	case ConfirmAlertRemoval:
		if err := l.repos.Alerts.Delete(ctx, target.ID); err != nil {
			return l.transportFailure("delete the alert", err)
		}
		if _, idx, ok := l.detail.FindAlert(target.ID); ok {
			l.detail.Alerts = append(l.detail.Alerts[:idx], l.detail.Alerts[idx+1:]...)
		}
	}
	l.logger.Info("removal confirmed", zap.String("kind", string(target.Kind)), zap.Int64("target_id", target.ID))
	return l.detail.Clone(), nil
}

func (l *ProcessLifecycle) Cancel(token uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.pending == nil || l.pending.Token != token {
		return ErrNoPendingConfirmation
	}
	l.pending = nil
	return nil
}

func (l *ProcessLifecycle) ReportForm() entities.ServiceReportForm {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.form
}

// ReplaceReportForm takes the user's field edits. The report id and the process id stay
// under the controller's control, and flags are clamped to 0/1.
func (l *ProcessLifecycle) ReplaceReportForm(form entities.ServiceReportForm) entities.ServiceReportForm {
	l.mu.Lock()
	defer l.mu.Unlock()

	form.ID = l.form.ID
	form.ProcessID = l.detail.Process.ID
	form.NormalizeFlags()
	l.form = form
	return l.form
}

func (l *ProcessLifecycle) ToggleReportFlag(flag entities.ReportFlag) (entities.ServiceReportForm, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.form.Toggle(flag); err != nil {
		l.logger.Debug("validation failed", zap.String("field", string(flag)), zap.Error(err))
		return l.form, newValidationError(string(flag), err)
	}
	return l.form, nil
}

// SaveReport upserts the report: update when the form already has an id, create otherwise.
// A created report's id is adopted so the next save updates it.
func (l *ProcessLifecycle) SaveReport(ctx context.Context) (entities.ServiceReportForm, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	payload := l.form.Payload()
	var (
		saved entities.ServiceReport
		err   error
	)
	if l.form.ID > 0 {
		saved, err = l.repos.Reports.Update(ctx, l.form.ID, payload)
	} else {
		saved, err = l.repos.Reports.Create(ctx, payload)
	}
	if err != nil {
		l.logger.Error("service report save failed", zap.Int64("report_id", l.form.ID), zap.Error(err))
		return l.form, &TransportError{Action: "save the service report", Err: err}
	}

	id := saved.ID
	if id == 0 {
		id = l.form.ID
	}
	l.form = entities.ServiceReportForm{ID: id, ServiceReportPayload: payload}

	report := reportFromPayload(id, payload)
	if saved.ID != 0 {
		report.CreatedAt = saved.CreatedAt
		report.UpdatedAt = saved.UpdatedAt
	}
	l.detail.ServiceReport = &report
	return l.form, nil
}

// AttachSignature stores the client sign-off. It is only accepted at the Completion stage.
func (l *ProcessLifecycle) AttachSignature(ctx context.Context, sig entities.Signature) (entities.ProcessDetail, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.detail.CurrentStage().IsTerminal() {
		return l.reject("signature", ErrSignatureNotAllowed)
	}
	if err := sig.Validate(); err != nil {
		return l.reject("signature", err)
	}
	sig.ProcessID = l.detail.Process.ID
	if sig.CapturedBy == 0 {
		sig.CapturedBy = actingUser(ctx, l.detail.Process.AssignedTo)
	}
	if sig.CapturedAt.IsZero() {
		sig.CapturedAt = l.opts.Clock()
	}

	if l.repos.Signatures != nil {
		if err := l.repos.Signatures.Save(ctx, sig); err != nil {
			return l.transportFailure("save the signature", err)
		}
	}
	l.detail.Signature = &sig
	l.logger.Info("client signature attached", zap.Int64("captured_by", sig.CapturedBy))
	return l.detail.Clone(), nil
}

// ask replaces any pending confirmation with a new one for target.
func (l *ProcessLifecycle) ask(kind ConfirmationKind, id int64, prompt string) Confirmation {
	c := Confirmation{
		Token:  uuid.New(),
		Target: ConfirmationTarget{Kind: kind, ID: id},
		Prompt: prompt,
	}
	l.pending = &c
	return c
}

func (l *ProcessLifecycle) lockProcess(ctx context.Context, processID int64) (func(), error) {
	if l.repos.EditLocker == nil {
		return func() {}, nil
	}
	return l.repos.EditLocker.Lock(ctx, processID)
}

func (l *ProcessLifecycle) reject(field string, err error) (entities.ProcessDetail, error) {
	l.logger.Debug("validation failed", zap.String("field", field), zap.Error(err))
	return l.detail.Clone(), newValidationError(field, err)
}

func (l *ProcessLifecycle) transportFailure(action string, err error) (entities.ProcessDetail, error) {
	l.logger.Error("backend call failed", zap.String("action", action), zap.Error(err))
	return l.detail.Clone(), &TransportError{Action: action, Err: err}
}

func materialField(err error) string {
	if err == entities.ErrMaterialQuantity {
		return "quantity"
	}
	return "source"
}

// actingUser is the user of the request credentials, or fallback when the caller did not
// identify itself.
func actingUser(ctx context.Context, fallback int64) int64 {
	if c, ok := session.FromContext(ctx); ok && c.UserID > 0 {
		return c.UserID
	}
	return fallback
}

func reportFromPayload(id int64, p entities.ServiceReportPayload) entities.ServiceReport {
	return entities.ServiceReport{
		ID:                     id,
		ProcessID:              p.ProcessID,
		City:                   p.City,
		ServiceDate:            p.ServiceDate,
		Address:                p.Address,
		RequestedBy:            p.RequestedBy,
		Email:                  p.Email,
		Phone:                  p.Phone,
		NITDocument:            p.NITDocument,
		Company:                p.Company,
		ServiceValue:           p.ServiceValue,
		ServiceValueNote:       p.ServiceValueNote,
		ServiceDescription:     p.ServiceDescription,
		Pending:                p.Pending,
		PendingDescription:     p.PendingDescription,
		PreviousServiceCharged: p.PreviousServiceCharged,
		Warranty:               p.Warranty,
		Solved:                 p.Solved,
		TrainingGiven:          p.TrainingGiven,
		AdsInstalled:           p.AdsInstalled,
		EquipmentTests:         p.EquipmentTests,
		WorkAreaClean:          p.WorkAreaClean,
		EntryTime:              p.EntryTime,
		ExitTime:               p.ExitTime,
		RepresentativeName:     p.RepresentativeName,
	}
}

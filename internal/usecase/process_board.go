package usecase

import (
	"context"
	"portal_electro/internal/domain/entities"
	"strings"

	"go.uber.org/zap"
)

// BoardEntry is a listed process with its derived stage.
type BoardEntry struct {
	Process entities.Process `json:"process"`
	Stage   entities.Stage   `json:"stage"`
}

// StageCount is the number of listed processes currently at Stage.
type StageCount struct {
	Stage entities.Stage `json:"stage"`
	Name  string         `json:"name"`
	Count int            `json:"count"`
}

// ProcessBoard is the process list. Counts are always derived from Entries.
type ProcessBoard struct {
	Entries []BoardEntry
}

func NewProcessBoard(processes []entities.Process) ProcessBoard {
	entries := make([]BoardEntry, 0, len(processes))
	for _, p := range processes {
		entries = append(entries, BoardEntry{Process: p, Stage: p.CurrentStage()})
	}
	return ProcessBoard{Entries: entries}
}

// Counts returns one count per stage, in registry order.
func (b ProcessBoard) Counts() []StageCount {
	stages := entities.Stages()
	out := make([]StageCount, len(stages))
	for i, d := range stages {
		out[i] = StageCount{Stage: d.ID, Name: d.Name}
	}
	for _, e := range b.Entries {
		if e.Stage.Valid() {
			out[int(e.Stage)-1].Count++
		}
	}
	return out
}

func (b ProcessBoard) ByStage(s entities.Stage) []BoardEntry {
	var out []BoardEntry
	for _, e := range b.Entries {
		if e.Stage == s {
			out = append(out, e)
		}
	}
	return out
}

// Replace returns a board where the entry of p.ID is replaced by p. Unknown processes
// leave the board unchanged.
func (b ProcessBoard) Replace(p entities.Process) ProcessBoard {
	entries := make([]BoardEntry, len(b.Entries))
	copy(entries, b.Entries)
	for i, e := range entries {
		if e.Process.ID == p.ID {
			entries[i] = BoardEntry{Process: p, Stage: p.CurrentStage()}
		}
	}
	return ProcessBoard{Entries: entries}
}

// NewProcess is the input of the "new process" flow.
type NewProcess struct {
	Name       string
	AssignedTo int64
	QuoteID    int64
}

// IProcessListUseCase lists processes and opens them for editing.
//
//   - List loads the board (optionally filtered by status or quote).
//   - Create registers a process at the Creation stage.
//   - Open loads the aggregate and registers a view owning its lifecycle controller.

type IProcessListUseCase interface {
	List(ctx context.Context, filter entities.ProcessFilter) (ProcessBoard, error)
	Create(ctx context.Context, in NewProcess) (entities.Process, error)
	Open(ctx context.Context, id int64) (ProcessView, error)
}

type ProcessListUseCase struct {
	repos  ProcessRepositories
	loader IProcessDetailLoader
	views  *ViewRegistry
	opts   LifecycleOptions
	logger *zap.Logger
}

var _ IProcessListUseCase = (*ProcessListUseCase)(nil)

func NewProcessListUseCase(repos ProcessRepositories, loader IProcessDetailLoader, views *ViewRegistry, opts LifecycleOptions, logger *zap.Logger) *ProcessListUseCase {
	return &ProcessListUseCase{
		repos:  repos,
		loader: loader,
		views:  views,
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

func (u *ProcessListUseCase) List(ctx context.Context, filter entities.ProcessFilter) (ProcessBoard, error) {
	filter.Status = strings.TrimSpace(filter.Status)
	processes, err := u.repos.Processes.List(ctx, filter)
	if err != nil {
		u.logger.Error("process list failed", zap.String("status", filter.Status), zap.Int64("quote_id", filter.QuoteID), zap.Error(err))
		return ProcessBoard{}, &TransportError{Action: "load the processes", Err: err}
	}
	return NewProcessBoard(processes), nil
}

// Create writes the process and its creation history entry. A failed history write
// returns the created process together with an AuditWriteError.
func (u *ProcessListUseCase) Create(ctx context.Context, in NewProcess) (entities.Process, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Process{}, newValidationError("name", ErrEmptyProcessName)
	}

	status := u.opts.Encoding.Encode(entities.StageCreation)
	creator := actingUser(ctx, in.AssignedTo)
	created, err := u.repos.Processes.Create(ctx, entities.ProcessDraft{
		Name:       name,
		CreatedBy:  creator,
		AssignedTo: in.AssignedTo,
		Status:     status,
		QuoteID:    in.QuoteID,
	})
	if err != nil {
		u.logger.Error("process create failed", zap.Error(err))
		return entities.Process{}, &TransportError{Action: "create the process", Err: err}
	}
	if created.Status == "" {
		created.Status = status
	}

	entry := entities.NewTransitionEntry(created.ID, nil, created.Status, creator, CreationHistoryNote)
	if _, err := u.repos.History.Create(ctx, entry); err != nil {
		u.logger.Error("history entry not written", zap.Int64("process_id", created.ID), zap.Error(err))
		return created, &AuditWriteError{ProcessID: created.ID, Err: err}
	}
	u.logger.Info("process created", zap.Int64("process_id", created.ID), zap.Int64("quote_id", created.QuoteID))
	return created, nil
}

func (u *ProcessListUseCase) Open(ctx context.Context, id int64) (ProcessView, error) {
	detail, err := u.loader.LoadByID(ctx, id)
	if err != nil {
		return ProcessView{}, err
	}
	lifecycle := NewProcessLifecycle(detail, u.repos, u.opts, u.logger)
	return u.views.Open(id, lifecycle)
}

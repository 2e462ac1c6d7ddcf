package usecase

import (
	"context"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProcessRepositories bundles the backend ports the process use cases depend on.
// Signatures and EditLocker are optional.
type ProcessRepositories struct {
	Processes  interfaces.IProcessRepository
	Materials  interfaces.IProcessMaterialRepository
	Notes      interfaces.IProcessNoteRepository
	Alerts     interfaces.IProcessAlertRepository
	History    interfaces.IProcessHistoryRepository
	Reports    interfaces.IServiceReportRepository
	Catalog    interfaces.ICatalogRepository
	Signatures interfaces.ISignatureRepository
	EditLocker interfaces.IProcessEditLocker
}

// IProcessDetailLoader assembles the ProcessDetail aggregate.
//
//   - Load fans out the four sub-fetches (materials, notes, alerts, reports) and fails as a
//     whole if any of them fails.
//   - LoadByID fetches the process first.

type IProcessDetailLoader interface {
	Load(ctx context.Context, p entities.Process) (entities.ProcessDetail, error)
	LoadByID(ctx context.Context, id int64) (entities.ProcessDetail, error)
}

type ProcessDetailLoader struct {
	repos  ProcessRepositories
	logger *zap.Logger
}

var _ IProcessDetailLoader = (*ProcessDetailLoader)(nil)

func NewProcessDetailLoader(repos ProcessRepositories, logger *zap.Logger) *ProcessDetailLoader {
	return &ProcessDetailLoader{repos: repos, logger: logger.Named("detail_loader")}
}

type loadPartError struct {
	part string
	err  error
}

func (e *loadPartError) Error() string { return e.part + ": " + e.err.Error() }
func (e *loadPartError) Unwrap() error { return e.err }

func part(name string, err error) error {
	if err == nil {
		return nil
	}
	return &loadPartError{part: name, err: err}
}

func (l *ProcessDetailLoader) Load(ctx context.Context, p entities.Process) (entities.ProcessDetail, error) {
	if p.ID <= 0 {
		return entities.ProcessDetail{}, ErrInvalidProcessID
	}

	var (
		materials []entities.ProcessMaterial
		notes     []entities.ProcessNote
		alerts    []entities.ProcessAlert
		reports   []entities.ServiceReport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		materials, err = l.repos.Materials.ListByProcess(gctx, p.ID)
		return part("materials", err)
	})
	g.Go(func() error {
		var err error
		notes, err = l.repos.Notes.ListByProcess(gctx, p.ID)
		return part("notes", err)
	})
	g.Go(func() error {
		var err error
		alerts, err = l.repos.Alerts.ListByProcess(gctx, p.ID)
		return part("alerts", err)
	})
	g.Go(func() error {
		var err error
		reports, err = l.repos.Reports.ListByProcess(gctx, p.ID)
		return part("service_reports", err)
	})

	if err := g.Wait(); err != nil {
		loadErr := &PartialLoadError{ProcessID: p.ID, Err: err}
		if pe, ok := err.(*loadPartError); ok {
			loadErr.Part = pe.part
			loadErr.Err = pe.err
		}
		l.logger.Error("process detail load failed",
			zap.Int64("process_id", p.ID),
			zap.String("part", loadErr.Part),
			zap.Error(loadErr.Err),
		)
		return entities.ProcessDetail{}, loadErr
	}

	if len(reports) > 1 {
		l.logger.Warn("process has more than one service report; keeping the first",
			zap.Int64("process_id", p.ID),
			zap.Int("report_count", len(reports)),
		)
	}

	detail, err := entities.NewProcessDetail(p, materials, notes, alerts, reports)
	if err != nil {
		return entities.ProcessDetail{}, err
	}
	detail.Signature = l.loadSignature(ctx, p.ID)

	l.logger.Debug("process detail loaded",
		zap.Int64("process_id", p.ID),
		zap.Int("materials", len(detail.Materials)),
		zap.Int("notes", len(detail.Notes)),
		zap.Int("alerts", len(detail.Alerts)),
		zap.Bool("has_report", detail.ServiceReport != nil),
	)
	return detail, nil
}

func (l *ProcessDetailLoader) LoadByID(ctx context.Context, id int64) (entities.ProcessDetail, error) {
	if id <= 0 {
		return entities.ProcessDetail{}, ErrInvalidProcessID
	}
	p, err := l.repos.Processes.GetByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return entities.ProcessDetail{}, ErrProcessNotFound
		}
		l.logger.Error("process fetch failed", zap.Int64("process_id", id), zap.Error(err))
		return entities.ProcessDetail{}, &TransportError{Action: "load the process", Err: err}
	}
	return l.Load(ctx, p)
}

// loadSignature is best effort: the signature is not part of the aggregate's load contract.
func (l *ProcessDetailLoader) loadSignature(ctx context.Context, processID int64) *entities.Signature {
	if l.repos.Signatures == nil {
		return nil
	}
	sig, found, err := l.repos.Signatures.GetByProcessID(ctx, processID)
	if err != nil {
		l.logger.Warn("signature lookup failed", zap.Int64("process_id", processID), zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}
	return &sig
}

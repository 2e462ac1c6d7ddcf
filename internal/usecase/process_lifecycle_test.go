package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portal_electro/internal/domain/entities"
	"portal_electro/internal/session"
	mock_interfaces "portal_electro/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func sampleDetail(t *testing.T) entities.ProcessDetail {
	t.Helper()
	d, err := entities.NewProcessDetail(sampleProcess(),
		[]entities.ProcessMaterial{
			{ID: 1, ProcessID: 10, Quantity: 2, Source: entities.CatalogMaterial{CatalogID: 5, Description: "Cámara domo"}},
		},
		[]entities.ProcessNote{{ID: 7, ProcessID: 10, Note: "Cliente ausente"}},
		[]entities.ProcessAlert{{ID: 3, ProcessID: 10, Status: entities.AlertStatusOpen, CreatedAt: fixedNow.Add(-time.Hour)}},
		nil,
	)
	require.NoError(t, err)
	return d
}

func newTestLifecycle(t *testing.T, repos ProcessRepositories, opts LifecycleOptions) *ProcessLifecycle {
	t.Helper()
	opts.Clock = fixedClock
	return NewProcessLifecycle(sampleDetail(t), repos, opts, zap.NewNop())
}

func withUser(userID int64) context.Context {
	return session.WithCredentials(context.Background(), session.Credentials{Token: "tkn", UserID: userID})
}

func TestProcessLifecycle_CommitEdit_Validation(t *testing.T) {
	cases := []struct {
		name  string
		edit  ProcessEdit
		field string
	}{
		{"blank name", ProcessEdit{Name: "   ", Stage: 2}, "name"},
		{"stage zero", ProcessEdit{Name: "ok", Stage: 0}, "stage"},
		{"stage eight", ProcessEdit{Name: "ok", Stage: 8}, "stage"},
		{"negative stage", ProcessEdit{Name: "ok", Stage: -1}, "stage"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newRepoMocks(ctrl) // no expectations: any backend call fails the test
			l := newTestLifecycle(t, m.repos(), LifecycleOptions{})
			before := l.Detail()

			d, err := l.CommitEdit(withUser(1), tc.edit)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			assert.Equal(t, before, d)
			assert.Equal(t, before, l.Detail())
		})
	}
}

func TestProcessLifecycle_CommitEdit(t *testing.T) {
	t.Run("legacy encoding collapses middle stages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		gomock.InOrder(
			m.processes.EXPECT().Update(gomock.Any(), int64(10), entities.ProcessUpdate{
				Name: "Instalación CCTV bodega", CreatedBy: 1, AssignedTo: 2, Status: "in_progress", QuoteID: 77,
			}).Return(entities.Process{ID: 10, Name: "Instalación CCTV bodega", CreatedBy: 1, AssignedTo: 2, Status: "in_progress", QuoteID: 77}, nil),
			m.history.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.ProcessHistoryEntry) (entities.ProcessHistoryEntry, error) {
					require.NotNil(t, e.OldStatus)
					require.NotNil(t, e.NewStatus)
					require.NotNil(t, e.Note)
					assert.Equal(t, int64(10), e.ProcessID)
					assert.Equal(t, "3", *e.OldStatus)
					assert.Equal(t, "in_progress", *e.NewStatus)
					assert.Equal(t, int64(99), e.ChangedBy)
					assert.Equal(t, DefaultHistoryNote, *e.Note)
					return e, nil
				}),
		)

		d, err := l.CommitEdit(withUser(99), ProcessEdit{Name: "  Instalación CCTV bodega ", Stage: entities.StageTransport})
		require.NoError(t, err)
		assert.Equal(t, "Instalación CCTV bodega", d.Process.Name)
		// in_progress reads back as Validation, not Transport.
		assert.Equal(t, entities.StageValidation, d.CurrentStage())
	})

	t.Run("numeric encoding and explicit assignee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{Encoding: entities.StatusEncodingNumeric, HistoryNote: "cambio"})

		assignee := int64(5)
		m.processes.EXPECT().Update(gomock.Any(), int64(10), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, u entities.ProcessUpdate) (entities.Process, error) {
				assert.Equal(t, "5", u.Status)
				assert.Equal(t, int64(5), u.AssignedTo)
				return entities.Process{}, nil
			})
		m.history.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ProcessHistoryEntry) (entities.ProcessHistoryEntry, error) {
				assert.Equal(t, "cambio", *e.Note)
				// No user id in the context: the assignee is recorded.
				assert.Equal(t, int64(5), e.ChangedBy)
				return e, nil
			})

		d, err := l.CommitEdit(context.Background(), ProcessEdit{Name: "Proceso", Stage: entities.StageTransport, AssignedTo: &assignee})
		require.NoError(t, err)
		assert.Equal(t, entities.StageTransport, d.CurrentStage())
		assert.Equal(t, int64(5), d.Process.AssignedTo)
		assert.Equal(t, fixedNow, d.Process.UpdatedAt)
	})

	t.Run("update failure keeps the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})
		before := l.Detail()

		m.processes.EXPECT().Update(gomock.Any(), int64(10), gomock.Any()).Return(entities.Process{}, errors.New("502"))

		d, err := l.CommitEdit(withUser(1), ProcessEdit{Name: "x", Stage: 7})
		var te *TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, "Could not save the process.", UserMessage(err))
		assert.Equal(t, before, d)
		assert.Equal(t, before, l.Detail())
	})

	t.Run("history failure surfaces an audit error after saving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		m.processes.EXPECT().Update(gomock.Any(), int64(10), gomock.Any()).Return(entities.Process{ID: 10, Name: "x", Status: "done"}, nil)
		m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ProcessHistoryEntry{}, errors.New("500"))

		d, err := l.CommitEdit(withUser(1), ProcessEdit{Name: "x", Stage: 7})
		var ae *AuditWriteError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, entities.StageCompletion, d.CurrentStage())
		assert.Equal(t, entities.StageCompletion, l.Detail().CurrentStage())
	})

	t.Run("edit lock is taken and released", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		locker := mock_interfaces.NewMockIProcessEditLocker(ctrl)
		repos := m.repos()
		repos.EditLocker = locker
		l := newTestLifecycle(t, repos, LifecycleOptions{})

		released := false
		locker.EXPECT().Lock(gomock.Any(), int64(10)).Return(func() { released = true }, nil)
		m.processes.EXPECT().Update(gomock.Any(), int64(10), gomock.Any()).Return(entities.Process{ID: 10, Status: "pending", Name: "x"}, nil)
		m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ProcessHistoryEntry{}, nil)

		_, err := l.CommitEdit(withUser(1), ProcessEdit{Name: "x", Stage: 1})
		require.NoError(t, err)
		assert.True(t, released)
	})

	t.Run("lock failure sends nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		locker := mock_interfaces.NewMockIProcessEditLocker(ctrl)
		repos := m.repos()
		repos.EditLocker = locker
		l := newTestLifecycle(t, repos, LifecycleOptions{})

		locker.EXPECT().Lock(gomock.Any(), int64(10)).Return(nil, errors.New("lock busy"))

		_, err := l.CommitEdit(withUser(1), ProcessEdit{Name: "x", Stage: 1})
		var te *TransportError
		require.ErrorAs(t, err, &te)
	})
}

func TestProcessLifecycle_Materials(t *testing.T) {
	ctx := withUser(1)

	t.Run("add validation", func(t *testing.T) {
		cases := []struct {
			name  string
			draft entities.MaterialDraft
			want  error
		}{
			{"both sources", entities.MaterialDraft{CatalogID: 1, CableAccessoryID: 2, Quantity: 1}, entities.ErrMaterialSourceConflict},
			{"no source", entities.MaterialDraft{Quantity: 1}, entities.ErrMaterialSourceMissing},
			{"zero quantity", entities.MaterialDraft{CatalogID: 1}, entities.ErrMaterialQuantity},
			{"negative quantity", entities.MaterialDraft{CableAccessoryID: 1, Quantity: -2}, entities.ErrMaterialQuantity},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				m := newRepoMocks(ctrl)
				l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

				d, err := l.AddMaterial(ctx, tc.draft)
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.ErrorIs(t, err, tc.want)
				assert.Equal(t, tc.want.Error(), ve.UserMessage())
				assert.Len(t, d.Materials, 1)
			})
		}
	})

	t.Run("add appends on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		m.materials.EXPECT().Create(gomock.Any(), entities.MaterialInput{ProcessID: 10, Ref: entities.CableRef(4), Quantity: 3}).
			Return(entities.ProcessMaterial{ID: 2, ProcessID: 10, Quantity: 3, Source: entities.CableMaterial{CableAccessoryID: 4, Name: "UTP"}}, nil)

		d, err := l.AddMaterial(ctx, entities.MaterialDraft{CableAccessoryID: 4, Quantity: 3})
		require.NoError(t, err)
		require.Len(t, d.Materials, 2)
		assert.Equal(t, "UTP", d.Materials[1].Label())
	})

	t.Run("add failure keeps the list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		m.materials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ProcessMaterial{}, errors.New("down"))

		d, err := l.AddMaterial(ctx, entities.MaterialDraft{CatalogID: 4, Quantity: 1})
		assert.Error(t, err)
		assert.Len(t, d.Materials, 1)
	})

	t.Run("update unknown material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		_, err := l.UpdateMaterial(ctx, 99, entities.MaterialPatch{})
		assert.ErrorIs(t, err, ErrMaterialNotFound)
	})

	t.Run("update adding a second source is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		cable := int64(4)
		_, err := l.UpdateMaterial(ctx, 1, entities.MaterialPatch{CableAccessoryID: &cable})
		assert.ErrorIs(t, err, entities.ErrMaterialSourceConflict)
	})

	t.Run("update switches source when the other is cleared", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		cable, none, qty := int64(4), int64(0), 6
		m.materials.EXPECT().Update(gomock.Any(), int64(1), entities.MaterialInput{ProcessID: 10, Ref: entities.CableRef(4), Quantity: 6}).
			Return(entities.ProcessMaterial{ID: 1, ProcessID: 10, Quantity: 6, Source: entities.CableMaterial{CableAccessoryID: 4}}, nil)

		d, err := l.UpdateMaterial(ctx, 1, entities.MaterialPatch{CatalogID: &none, CableAccessoryID: &cable, Quantity: &qty})
		require.NoError(t, err)
		assert.Equal(t, 6, d.Materials[0].Quantity)
		assert.Equal(t, entities.CableRef(4), d.Materials[0].Ref())
	})

	t.Run("update without echoed record applies the sent source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		cable, none, qty := int64(4), int64(0), 6
		m.materials.EXPECT().Update(gomock.Any(), int64(1), entities.MaterialInput{ProcessID: 10, Ref: entities.CableRef(4), Quantity: 6}).
			Return(entities.ProcessMaterial{}, nil)

		d, err := l.UpdateMaterial(ctx, 1, entities.MaterialPatch{CatalogID: &none, CableAccessoryID: &cable, Quantity: &qty})
		require.NoError(t, err)
		require.Len(t, d.Materials, 1)
		assert.Equal(t, int64(1), d.Materials[0].ID)
		assert.Equal(t, 6, d.Materials[0].Quantity)
		assert.Equal(t, entities.CableRef(4), d.Materials[0].Ref())
		assert.Equal(t, entities.CableRef(4), l.Detail().Materials[0].Ref())
	})

	t.Run("update without echoed record keeps display fields of the same source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		qty := 9
		m.materials.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(entities.ProcessMaterial{}, nil)

		d, err := l.UpdateMaterial(ctx, 1, entities.MaterialPatch{Quantity: &qty})
		require.NoError(t, err)
		assert.Equal(t, 9, d.Materials[0].Quantity)
		assert.Equal(t, entities.CatalogRef(5), d.Materials[0].Ref())
		assert.Equal(t, "Cámara domo", d.Materials[0].Label())
	})

	t.Run("update failure keeps the line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		cable, none, qty := int64(4), int64(0), 6
		m.materials.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(entities.ProcessMaterial{}, errors.New("502"))

		d, err := l.UpdateMaterial(ctx, 1, entities.MaterialPatch{CatalogID: &none, CableAccessoryID: &cable, Quantity: &qty})
		var te *TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, "Could not update the material.", te.UserMessage())
		require.Len(t, d.Materials, 1)
		assert.Equal(t, 2, d.Materials[0].Quantity)
		assert.Equal(t, entities.CatalogRef(5), d.Materials[0].Ref())
		assert.Equal(t, d, l.Detail())
	})

	t.Run("removal needs confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		c, err := l.RequestMaterialRemoval(1)
		require.NoError(t, err)
		assert.Equal(t, ConfirmationTarget{Kind: ConfirmMaterialRemoval, ID: 1}, c.Target)
		assert.Contains(t, c.Prompt, "Cámara domo")
		assert.Len(t, l.Detail().Materials, 1)

		m.materials.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
		d, err := l.Confirm(ctx, c.Token)
		require.NoError(t, err)
		assert.Empty(t, d.Materials)

		_, pending := l.PendingConfirmation()
		assert.False(t, pending)
	})

	t.Run("removal of unknown material", func(t *testing.T) {
		l := newTestLifecycle(t, ProcessRepositories{}, LifecycleOptions{})
		_, err := l.RequestMaterialRemoval(42)
		assert.ErrorIs(t, err, ErrMaterialNotFound)
	})
}

func TestProcessLifecycle_Notes(t *testing.T) {
	ctx := withUser(1)

	t.Run("blank note is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		d, added, err := l.AddNote(ctx, " \n\t ")
		require.NoError(t, err)
		assert.False(t, added)
		assert.Len(t, d.Notes, 1)
	})

	t.Run("add trims text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		m.notes.EXPECT().Create(gomock.Any(), int64(10), "Llevar escalera").Return(entities.ProcessNote{ID: 8, ProcessID: 10, Note: "Llevar escalera"}, nil)

		d, added, err := l.AddNote(ctx, "  Llevar escalera ")
		require.NoError(t, err)
		assert.True(t, added)
		assert.Len(t, d.Notes, 2)
	})

	t.Run("failed delete keeps the note and clears the slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		c, err := l.RequestNoteRemoval(7)
		require.NoError(t, err)

		m.notes.EXPECT().Delete(gomock.Any(), int64(7)).Return(errors.New("500"))
		d, err := l.Confirm(ctx, c.Token)
		var te *TransportError
		require.ErrorAs(t, err, &te)
		assert.Len(t, d.Notes, 1)

		_, err = l.Confirm(ctx, c.Token)
		assert.ErrorIs(t, err, ErrNoPendingConfirmation)
	})
}

func TestProcessLifecycle_Confirmations(t *testing.T) {
	ctx := withUser(1)

	t.Run("a new request replaces the pending one", func(t *testing.T) {
		l := newTestLifecycle(t, ProcessRepositories{}, LifecycleOptions{})

		first, err := l.RequestNoteRemoval(7)
		require.NoError(t, err)
		second, err := l.RequestAlertRemoval(3)
		require.NoError(t, err)
		assert.NotEqual(t, first.Token, second.Token)

		_, err = l.Confirm(ctx, first.Token)
		assert.ErrorIs(t, err, ErrNoPendingConfirmation)

		pending, ok := l.PendingConfirmation()
		require.True(t, ok)
		assert.Equal(t, second, pending)
	})

	t.Run("cancel discards", func(t *testing.T) {
		l := newTestLifecycle(t, ProcessRepositories{}, LifecycleOptions{})

		c, err := l.RequestAlertRemoval(3)
		require.NoError(t, err)
		assert.ErrorIs(t, l.Cancel(uuid.New()), ErrNoPendingConfirmation)
		require.NoError(t, l.Cancel(c.Token))

		_, err = l.Confirm(ctx, c.Token)
		assert.ErrorIs(t, err, ErrNoPendingConfirmation)
		assert.Len(t, l.Detail().Alerts, 1)
	})

	t.Run("confirmed alert removal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		c, err := l.RequestAlertRemoval(3)
		require.NoError(t, err)
		m.alerts.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

		d, err := l.Confirm(ctx, c.Token)
		require.NoError(t, err)
		assert.Empty(t, d.Alerts)
	})
}

func TestProcessLifecycle_Alerts(t *testing.T) {
	ctx := withUser(1)

	t.Run("create then resolve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		createdAt := fixedNow.Add(-time.Minute)
		m.alerts.EXPECT().Create(gomock.Any(), entities.AlertDraft{
			ProcessID: 10, ReportedBy: 2, AlertType: entities.AlertTypeMateriales, Message: "Falta cable", Status: entities.AlertStatusOpen,
		}).Return(entities.ProcessAlert{
			ID: 11, ProcessID: 10, ReportedBy: 2, AlertType: entities.AlertTypeMateriales, Message: "Falta cable", CreatedAt: createdAt,
		}, nil)

		d, err := l.CreateAlert(ctx, NewAlert{Type: "materiales", Message: "Falta cable"})
		require.NoError(t, err)
		require.Len(t, d.Alerts, 2)
		created := d.Alerts[0]
		assert.Equal(t, int64(11), created.ID)
		assert.Equal(t, entities.AlertStatusOpen, created.Status)
		assert.Nil(t, created.ResolvedAt)

		m.alerts.EXPECT().Update(gomock.Any(), int64(11), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, u entities.AlertUpdate) (entities.ProcessAlert, error) {
				assert.Equal(t, entities.AlertStatusClosed, u.Status)
				require.NotNil(t, u.ResolvedAt)
				assert.Equal(t, fixedNow, *u.ResolvedAt)
				return entities.ProcessAlert{}, nil
			})

		d, err = l.ResolveAlert(ctx, 11)
		require.NoError(t, err)
		resolved, _, ok := d.FindAlert(11)
		require.True(t, ok)
		assert.Equal(t, entities.AlertStatusClosed, resolved.Status)
		require.NotNil(t, resolved.ResolvedAt)
		assert.False(t, resolved.ResolvedAt.Before(resolved.CreatedAt))

		_, err = l.ResolveAlert(ctx, 11)
		assert.ErrorIs(t, err, ErrAlertAlreadyClosed)
	})

	t.Run("default type and creator fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		detail := sampleDetail(t)
		detail.Process.AssignedTo = 0
		l := NewProcessLifecycle(detail, m.repos(), LifecycleOptions{Clock: fixedClock}, zap.NewNop())

		m.alerts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.AlertDraft) (entities.ProcessAlert, error) {
				assert.Equal(t, entities.AlertTypeGeneral, a.AlertType)
				assert.Equal(t, int64(1), a.ReportedBy)
				return entities.ProcessAlert{ID: 12, AlertType: a.AlertType, Message: a.Message}, nil
			})

		d, err := l.CreateAlert(ctx, NewAlert{Message: "Revisar acceso"})
		require.NoError(t, err)
		assert.Equal(t, fixedNow, d.Alerts[0].CreatedAt)
		assert.Equal(t, entities.AlertStatusOpen, d.Alerts[0].Status)
	})

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		_, err := l.CreateAlert(ctx, NewAlert{Message: "  "})
		assert.ErrorIs(t, err, ErrEmptyAlertMessage)

		_, err = l.CreateAlert(ctx, NewAlert{Type: "urgente", Message: "x"})
		assert.ErrorIs(t, err, entities.ErrUnknownAlertType)
	})

	t.Run("resolve failure keeps the alert open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		m.alerts.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).Return(entities.ProcessAlert{}, errors.New("down"))

		d, err := l.ResolveAlert(ctx, 3)
		assert.Error(t, err)
		assert.True(t, d.Alerts[0].IsOpen())
		assert.Nil(t, d.Alerts[0].ResolvedAt)
	})

	t.Run("resolve unknown alert", func(t *testing.T) {
		l := newTestLifecycle(t, ProcessRepositories{}, LifecycleOptions{})
		_, err := l.ResolveAlert(ctx, 404)
		assert.ErrorIs(t, err, ErrAlertNotFound)
	})
}

func TestProcessLifecycle_Report(t *testing.T) {
	ctx := withUser(1)

	t.Run("defaults when no report exists", func(t *testing.T) {
		l := newTestLifecycle(t, ProcessRepositories{}, LifecycleOptions{})
		f := l.ReportForm()
		assert.Zero(t, f.ID)
		assert.Equal(t, int64(10), f.ProcessID)
		assert.Equal(t, "2024-05-20", f.ServiceDate)
		assert.Equal(t, entities.FlagOn, f.Solved)
	})

	t.Run("create adopts the id then updates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		form := l.ReportForm()
		form.ID = 555 // ignored
		form.ProcessID = 1
		form.City = "Medellín"
		form.EntryTime = "09:30"
		form.ExitTime = "18:00:00"
		form = l.ReplaceReportForm(form)
		assert.Zero(t, form.ID)
		assert.Equal(t, int64(10), form.ProcessID)

		_, err := l.ToggleReportFlag(entities.ReportFlagWarranty)
		require.NoError(t, err)

		m.reports.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ServiceReportPayload) (entities.ServiceReport, error) {
				assert.Equal(t, "09:30:00", p.EntryTime)
				assert.Equal(t, "18:00:00", p.ExitTime)
				assert.Equal(t, entities.FlagOn, p.Warranty)
				assert.Equal(t, int64(10), p.ProcessID)
				return entities.ServiceReport{ID: 31, ProcessID: 10}, nil
			})

		saved, err := l.SaveReport(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(31), saved.ID)
		require.NotNil(t, l.Detail().ServiceReport)
		assert.Equal(t, "Medellín", l.Detail().ServiceReport.City)

		m.reports.EXPECT().Update(gomock.Any(), int64(31), gomock.Any()).Return(entities.ServiceReport{ID: 31}, nil)
		saved, err = l.SaveReport(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(31), saved.ID)
	})

	t.Run("replace clamps flags to zero or one", func(t *testing.T) {
		l := newTestLifecycle(t, ProcessRepositories{}, LifecycleOptions{})

		form := l.ReportForm()
		form.Warranty = 5
		form.Pending = -1
		form.Solved = entities.FlagOff
		form = l.ReplaceReportForm(form)

		assert.Equal(t, entities.FlagOn, form.Warranty)
		assert.Equal(t, entities.FlagOn, form.Pending)
		assert.Equal(t, entities.FlagOff, form.Solved)
		assert.Equal(t, form, l.ReportForm())

		toggled, err := l.ToggleReportFlag(entities.ReportFlagWarranty)
		require.NoError(t, err)
		assert.Equal(t, entities.FlagOff, toggled.Warranty)
	})

	t.Run("failed save keeps the form unsaved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		l := newTestLifecycle(t, m.repos(), LifecycleOptions{})

		m.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceReport{}, errors.New("down"))

		f, err := l.SaveReport(ctx)
		assert.Equal(t, "Could not save the service report.", UserMessage(err))
		assert.Zero(t, f.ID)
		assert.Nil(t, l.Detail().ServiceReport)
	})

	t.Run("unknown flag", func(t *testing.T) {
		l := newTestLifecycle(t, ProcessRepositories{}, LifecycleOptions{})
		_, err := l.ToggleReportFlag("paid")
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestProcessLifecycle_Signature(t *testing.T) {
	ctx := withUser(4)
	sig := entities.Signature{Data: "data:image/png;base64,iVBOR"}

	t.Run("rejected before completion", func(t *testing.T) {
		l := newTestLifecycle(t, ProcessRepositories{}, LifecycleOptions{})
		_, err := l.AttachSignature(ctx, sig)
		assert.ErrorIs(t, err, ErrSignatureNotAllowed)
		assert.False(t, l.IsFinished())
	})

	t.Run("stored at completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newRepoMocks(ctrl)
		repos := m.repos()
		repos.Signatures = m.signatures
		detail := sampleDetail(t)
		detail.Process.Status = "done"
		l := NewProcessLifecycle(detail, repos, LifecycleOptions{Clock: fixedClock}, zap.NewNop())

		m.signatures.EXPECT().Save(gomock.Any(), entities.Signature{
			ProcessID: 10, Data: sig.Data, CapturedBy: 4, CapturedAt: fixedNow,
		}).Return(nil)

		_, err := l.AttachSignature(ctx, entities.Signature{Data: "  "})
		assert.ErrorIs(t, err, entities.ErrEmptySignature)

		d, err := l.AttachSignature(ctx, sig)
		require.NoError(t, err)
		require.NotNil(t, d.Signature)
		assert.True(t, l.IsFinished())
	})
}

func TestProcessLifecycle_DetailIsACopy(t *testing.T) {
	l := newTestLifecycle(t, ProcessRepositories{}, LifecycleOptions{})
	d := l.Detail()
	d.Materials[0].Quantity = 100
	d.Alerts[0].Status = entities.AlertStatusClosed
	assert.Equal(t, 2, l.Detail().Materials[0].Quantity)
	assert.True(t, l.Detail().Alerts[0].IsOpen())
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portal_electro/internal/adapter/http/handlers/mocks"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/usecase"
	"portal_electro/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type viewFixture struct {
	router    *gin.Engine
	processes *mocks.MockIProcessListUseCase
	picker    *mocks.MockIMaterialPicker
	lifecycle *mocks.MockIProcessLifecycle
	views     *usecase.ViewRegistry
	viewID    uuid.UUID
}

func sampleDetail() entities.ProcessDetail {
	d, _ := entities.NewProcessDetail(entities.Process{ID: 10, Name: "CCTV bodega", Status: "3"}, nil, nil, nil, nil)
	return d
}

func newViewFixture(t *testing.T) viewFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := viewFixture{
		processes: mocks.NewMockIProcessListUseCase(ctrl),
		picker:    mocks.NewMockIMaterialPicker(ctrl),
		lifecycle: mocks.NewMockIProcessLifecycle(ctrl),
		views:     usecase.NewViewRegistry(time.Hour, 10, zap.NewNop()),
	}
	v, err := f.views.Open(10, f.lifecycle)
	require.NoError(t, err)
	f.viewID = v.ID
	f.lifecycle.EXPECT().PendingConfirmation().Return(usecase.Confirmation{}, false).AnyTimes()

	h := NewProcessViewHandler(f.processes, f.views, f.picker, zap.NewNop())
	r := gin.New()
	r.POST("/views", h.OpenView)
	r.GET("/views/:view_id", h.GetView)
	r.DELETE("/views/:view_id", h.CloseView)
	r.PATCH("/views/:view_id/process", h.CommitEdit)
	r.POST("/views/:view_id/materials", h.AddMaterial)
	r.POST("/views/:view_id/materials/:material_id/removal", h.RequestMaterialRemoval)
	r.POST("/views/:view_id/notes", h.AddNote)
	r.PATCH("/views/:view_id/alerts/:alert_id/resolve", h.ResolveAlert)
	r.POST("/views/:view_id/confirmations/:token", h.Confirm)
	r.DELETE("/views/:view_id/confirmations/:token", h.Cancel)
	r.PATCH("/views/:view_id/report/flags/:flag", h.ToggleReportFlag)
	r.POST("/views/:view_id/report/save", h.SaveReport)
	r.PUT("/views/:view_id/signature", h.AttachSignature)
	f.router = r
	return f
}

func (f viewFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f viewFixture) path(suffix string) string {
	return fmt.Sprintf("/views/%s%s", f.viewID, suffix)
}

func TestProcessViewHandler_OpenAndGet(t *testing.T) {
	f := newViewFixture(t)

	f.processes.EXPECT().Open(gomock.Any(), int64(10)).Return(usecase.ProcessView{ID: f.viewID, ProcessID: 10, Lifecycle: f.lifecycle}, nil)
	f.lifecycle.EXPECT().Detail().Return(sampleDetail()).Times(2)

	w := f.do(http.MethodPost, "/views", `{"process_id":10}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, f.viewID.String(), body["view_id"])

	w = f.do(http.MethodGet, f.path(""), "")
	assert.Equal(t, http.StatusOK, w.Code)

	t.Run("bad view id", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/views/nope", "").Code)
	})

	t.Run("unknown view", func(t *testing.T) {
		w := f.do(http.MethodGet, "/views/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "VIEW_NOT_FOUND", decodeError(t, w)["code"])
	})

	t.Run("process not found", func(t *testing.T) {
		f.processes.EXPECT().Open(gomock.Any(), int64(99)).Return(usecase.ProcessView{}, usecase.ErrProcessNotFound)
		assert.Equal(t, http.StatusNotFound, f.do(http.MethodPost, "/views", `{"process_id":99}`).Code)
	})

	t.Run("close", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, f.path(""), "").Code)
		assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, f.path(""), "").Code)
	})
}

func TestProcessViewHandler_CommitEdit(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		f := newViewFixture(t)
		f.lifecycle.EXPECT().CommitEdit(gomock.Any(), usecase.ProcessEdit{Name: "x", Stage: 9}).
			Return(sampleDetail(), &usecase.ValidationError{Field: "stage", Message: usecase.ErrStageOutOfRange.Error(), Err: usecase.ErrStageOutOfRange})

		w := f.do(http.MethodPatch, f.path("/process"), `{"name":"x","stage":9}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "the stage must be between 1 and 7", decodeError(t, w)["message"])
	})

	t.Run("saved without audit entry", func(t *testing.T) {
		f := newViewFixture(t)
		f.lifecycle.EXPECT().CommitEdit(gomock.Any(), gomock.Any()).
			Return(sampleDetail(), &usecase.AuditWriteError{ProcessID: 10, Err: errors.New("500")})

		w := f.do(http.MethodPatch, f.path("/process"), `{"name":"x","stage":4}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"warning"`)
	})

	t.Run("locked by another editor", func(t *testing.T) {
		f := newViewFixture(t)
		f.lifecycle.EXPECT().CommitEdit(gomock.Any(), gomock.Any()).
			Return(sampleDetail(), &usecase.TransportError{Action: "save the process", Err: interfaces.ErrProcessLocked})

		w := f.do(http.MethodPatch, f.path("/process"), `{"name":"x","stage":4}`)
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "PROCESS_LOCKED", decodeError(t, w)["code"])
	})
}

func TestProcessViewHandler_Materials(t *testing.T) {
	t.Run("picker selection", func(t *testing.T) {
		f := newViewFixture(t)
		f.picker.EXPECT().Find(gomock.Any(), entities.CableRef(8)).
			Return(entities.CableSelection{Item: entities.CableOrAccessory{ID: 8, Name: "UTP"}}, nil)
		f.lifecycle.EXPECT().AddMaterial(gomock.Any(), entities.MaterialDraft{CableAccessoryID: 8, Quantity: 20}).
			Return(sampleDetail(), nil)

		w := f.do(http.MethodPost, f.path("/materials"), `{"catalog_id":3,"kind":"cable","item_id":8,"quantity":20}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown selection", func(t *testing.T) {
		f := newViewFixture(t)
		f.picker.EXPECT().Find(gomock.Any(), entities.CatalogRef(99)).Return(nil, usecase.ErrMaterialNotFound)

		w := f.do(http.MethodPost, f.path("/materials"), `{"kind":"catalog","item_id":99}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("removal asks for confirmation", func(t *testing.T) {
		f := newViewFixture(t)
		conf := usecase.Confirmation{Token: uuid.New(), Target: usecase.ConfirmationTarget{Kind: usecase.ConfirmMaterialRemoval, ID: 1}, Prompt: `Delete material "UTP" from the process?`}
		f.lifecycle.EXPECT().RequestMaterialRemoval(int64(1)).Return(conf, nil)

		w := f.do(http.MethodPost, f.path("/materials/1/removal"), "")
		require.Equal(t, http.StatusAccepted, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, conf.Token.String(), body["token"])
		assert.Equal(t, "material", body["kind"])
	})

	t.Run("bad material id", func(t *testing.T) {
		f := newViewFixture(t)
		assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, f.path("/materials/x/removal"), "").Code)
	})
}

func TestProcessViewHandler_Confirmations(t *testing.T) {
	f := newViewFixture(t)
	token := uuid.New()

	f.lifecycle.EXPECT().Confirm(gomock.Any(), token).Return(sampleDetail(), usecase.ErrNoPendingConfirmation)
	w := f.do(http.MethodPost, f.path("/confirmations/"+token.String()), "")
	assert.Equal(t, http.StatusConflict, w.Code)

	f.lifecycle.EXPECT().Cancel(token).Return(nil)
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, f.path("/confirmations/"+token.String()), "").Code)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodDelete, f.path("/confirmations/nope"), "").Code)
}

func TestProcessViewHandler_NotesAlertsReport(t *testing.T) {
	f := newViewFixture(t)

	f.lifecycle.EXPECT().AddNote(gomock.Any(), "   ").Return(sampleDetail(), false, nil)
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, f.path("/notes"), `{"note":"   "}`).Code)

	f.lifecycle.EXPECT().ResolveAlert(gomock.Any(), int64(3)).Return(sampleDetail(), usecase.ErrAlertAlreadyClosed)
	assert.Equal(t, http.StatusConflict, f.do(http.MethodPatch, f.path("/alerts/3/resolve"), "").Code)

	f.lifecycle.EXPECT().ToggleReportFlag(entities.ReportFlag("bogus")).
		Return(entities.ServiceReportForm{}, &usecase.ValidationError{Field: "bogus", Message: entities.ErrUnknownReportFlag.Error(), Err: entities.ErrUnknownReportFlag})
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPatch, f.path("/report/flags/bogus"), "").Code)

	f.lifecycle.EXPECT().SaveReport(gomock.Any()).
		Return(entities.ServiceReportForm{ID: 5}, nil)
	w := f.do(http.MethodPost, f.path("/report/save"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":5`)
}

func TestProcessViewHandler_AttachSignature(t *testing.T) {
	f := newViewFixture(t)

	f.lifecycle.EXPECT().AttachSignature(gomock.Any(), entities.Signature{Data: "data:image/png;base64,AA"}).
		Return(sampleDetail(), &usecase.ValidationError{Field: "signature", Message: usecase.ErrSignatureNotAllowed.Error(), Err: usecase.ErrSignatureNotAllowed})

	w := f.do(http.MethodPut, f.path("/signature"), `{"data":"data:image/png;base64,AA"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

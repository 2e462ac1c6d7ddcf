package handlers

import (
	"net/http"
	request "portal_electro/internal/adapter/http/dto/request"
	response "portal_electro/internal/adapter/http/dto/response"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProcessViewHandler serves the open process-detail views. Each view owns one lifecycle
// controller; every route below resolves the view first.
type ProcessViewHandler struct {
	processes usecase.IProcessListUseCase
	views     *usecase.ViewRegistry
	picker    usecase.IMaterialPicker
	logger    *zap.Logger
}

func NewProcessViewHandler(processes usecase.IProcessListUseCase, views *usecase.ViewRegistry, picker usecase.IMaterialPicker, logger *zap.Logger) *ProcessViewHandler {
	return &ProcessViewHandler{processes: processes, views: views, picker: picker, logger: logger}
}

// OpenView loads the process aggregate and registers a new view for it.
func (h *ProcessViewHandler) OpenView(c *gin.Context) {
	var payload request.OpenViewRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ProcessID <= 0 {
		abort(c, errInvalidPayload)
		return
	}

	v, err := h.processes.Open(c.Request.Context(), payload.ProcessID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromView(v.ID, v.Lifecycle, v.Lifecycle.Detail()))
}

func (h *ProcessViewHandler) GetView(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromView(v.ID, v.Lifecycle, v.Lifecycle.Detail()))
}

func (h *ProcessViewHandler) CloseView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("view_id"))
	if err != nil {
		abort(c, errInvalidViewID)
		return
	}
	if err := h.views.Close(id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProcessViewHandler) CommitEdit(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	var payload request.EditProcessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidPayload)
		return
	}
	d, err := v.Lifecycle.CommitEdit(c.Request.Context(), payload.ToEdit())
	h.respondDetail(c, v, d, err)
}

// AddMaterial accepts the flat foreign keys, or a picker selection that is resolved
// against the catalogs first.
func (h *ProcessViewHandler) AddMaterial(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidPayload)
		return
	}

	draft := payload.ToDraft()
	ref, picked, err := payload.Selection()
	if err != nil {
		abort(c, errInvalidPayload)
		return
	}
	if picked {
		sel, err := h.picker.Find(c.Request.Context(), ref)
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		draft.Select(sel)
	}

	d, err := v.Lifecycle.AddMaterial(c.Request.Context(), draft)
	h.respondDetail(c, v, d, err)
}

func (h *ProcessViewHandler) UpdateMaterial(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "material_id")
	if !ok {
		abort(c, errInvalidID)
		return
	}
	var patch entities.MaterialPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abort(c, errInvalidPayload)
		return
	}
	d, err := v.Lifecycle.UpdateMaterial(c.Request.Context(), id, patch)
	h.respondDetail(c, v, d, err)
}

func (h *ProcessViewHandler) RequestMaterialRemoval(c *gin.Context) {
	h.requestRemoval(c, "material_id", func(lc usecase.IProcessLifecycle, id int64) (usecase.Confirmation, error) {
		return lc.RequestMaterialRemoval(id)
	})
}

func (h *ProcessViewHandler) AddNote(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidPayload)
		return
	}
	// A blank note is ignored and answers with the unchanged view.
	d, _, err := v.Lifecycle.AddNote(c.Request.Context(), payload.Note)
	h.respondDetail(c, v, d, err)
}

func (h *ProcessViewHandler) RequestNoteRemoval(c *gin.Context) {
	h.requestRemoval(c, "note_id", func(lc usecase.IProcessLifecycle, id int64) (usecase.Confirmation, error) {
		return lc.RequestNoteRemoval(id)
	})
}

func (h *ProcessViewHandler) CreateAlert(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	var payload request.AlertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidPayload)
		return
	}
	d, err := v.Lifecycle.CreateAlert(c.Request.Context(), payload.ToNewAlert())
	h.respondDetail(c, v, d, err)
}

func (h *ProcessViewHandler) ResolveAlert(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "alert_id")
	if !ok {
		abort(c, errInvalidID)
		return
	}
	d, err := v.Lifecycle.ResolveAlert(c.Request.Context(), id)
	h.respondDetail(c, v, d, err)
}

func (h *ProcessViewHandler) RequestAlertRemoval(c *gin.Context) {
	h.requestRemoval(c, "alert_id", func(lc usecase.IProcessLifecycle, id int64) (usecase.Confirmation, error) {
		return lc.RequestAlertRemoval(id)
	})
}

// Confirm executes the pending destructive action identified by the token.
func (h *ProcessViewHandler) Confirm(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		abort(c, errInvalidID)
		return
	}
	d, err := v.Lifecycle.Confirm(c.Request.Context(), token)
	h.respondDetail(c, v, d, err)
}

func (h *ProcessViewHandler) Cancel(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		abort(c, errInvalidID)
		return
	}
	if err := v.Lifecycle.Cancel(token); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProcessViewHandler) GetReport(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.ReportFormResponse{ViewID: v.ID, Form: v.Lifecycle.ReportForm()})
}

// ReplaceReport overwrites the editable fields of the form. The report id and process id
// are kept by the lifecycle.
func (h *ProcessViewHandler) ReplaceReport(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	var payload entities.ServiceReportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidPayload)
		return
	}
	form := v.Lifecycle.ReplaceReportForm(entities.ServiceReportForm{ServiceReportPayload: payload})
	c.JSON(http.StatusOK, response.ReportFormResponse{ViewID: v.ID, Form: form})
}

func (h *ProcessViewHandler) ToggleReportFlag(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	form, err := v.Lifecycle.ToggleReportFlag(entities.ReportFlag(c.Param("flag")))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.ReportFormResponse{ViewID: v.ID, Form: form})
}

func (h *ProcessViewHandler) SaveReport(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	form, err := v.Lifecycle.SaveReport(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.ReportFormResponse{ViewID: v.ID, Form: form})
}

func (h *ProcessViewHandler) AttachSignature(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	var payload request.SignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidPayload)
		return
	}
	d, err := v.Lifecycle.AttachSignature(c.Request.Context(), entities.Signature{Data: payload.Data})
	h.respondDetail(c, v, d, err)
}

func (h *ProcessViewHandler) requestRemoval(
	c *gin.Context,
	param string,
	ask func(lc usecase.IProcessLifecycle, id int64) (usecase.Confirmation, error),
) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, param)
	if !ok {
		abort(c, errInvalidID)
		return
	}
	conf, err := ask(v.Lifecycle, id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusAccepted, response.FromConfirmation(conf))
}

// view resolves the :view_id parameter and writes the error response when it fails.
func (h *ProcessViewHandler) view(c *gin.Context) (usecase.ProcessView, bool) {
	id, err := uuid.Parse(c.Param("view_id"))
	if err != nil {
		abort(c, errInvalidViewID)
		return usecase.ProcessView{}, false
	}
	v, err := h.views.Get(id)
	if err != nil {
		writeError(c, h.logger, err)
		return usecase.ProcessView{}, false
	}
	return v, true
}

// respondDetail answers with the view snapshot. A lost audit entry still answers 200
// because the edit was saved.
func (h *ProcessViewHandler) respondDetail(c *gin.Context, v usecase.ProcessView, d entities.ProcessDetail, err error) {
	if warning, ok := auditWarning(err); ok {
		out := response.FromView(v.ID, v.Lifecycle, d)
		out.Warning = warning
		c.JSON(http.StatusOK, out)
		return
	}
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromView(v.ID, v.Lifecycle, d))
}

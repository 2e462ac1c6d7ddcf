package handlers

import (
	"net/http"
	request "portal_electro/internal/adapter/http/dto/request"
	response "portal_electro/internal/adapter/http/dto/response"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProcessHandler serves the process board.
type ProcessHandler struct {
	usecase usecase.IProcessListUseCase
	logger  *zap.Logger
}

func NewProcessHandler(uc usecase.IProcessListUseCase, logger *zap.Logger) *ProcessHandler {
	return &ProcessHandler{usecase: uc, logger: logger}
}

// ListProcesses returns the processes with their derived stage and the per-stage counts.
// Optional filters: status, quote_id.
func (h *ProcessHandler) ListProcesses(c *gin.Context) {
	filter := entities.ProcessFilter{Status: c.Query("status")}
	if raw := c.Query("quote_id"); raw != "" {
		quoteID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || quoteID <= 0 {
			abort(c, errInvalidPayload)
			return
		}
		filter.QuoteID = quoteID
	}

	board, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBoard(board))
}

func (h *ProcessHandler) CreateProcess(c *gin.Context) {
	var payload request.CreateProcessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidPayload)
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToNewProcess())
	if warning, ok := auditWarning(err); ok {
		c.JSON(http.StatusCreated, gin.H{"process": response.FromProcess(p), "warning": warning})
		return
	}
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"process": response.FromProcess(p)})
}

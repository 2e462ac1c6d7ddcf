package handlers

import (
	"errors"
	"net/http"
	"portal_electro/internal/session"
	"portal_electro/internal/usecase"
	"portal_electro/internal/usecase/interfaces"
	"portal_electro/pkg"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidViewID  = pkg.NewDomainErrorSimple("INVALID_VIEW_ID", "Invalid view id", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
)

// mapError turns a use-case error into the HTTP envelope.
func mapError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	var transportErr *usecase.TransportError
	var partialErr *usecase.PartialLoadError

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("VALIDATION_ERROR", validationErr.UserMessage(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProcessID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid process id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProcessNotFound):
		return pkg.NewDomainErrorSimple("PROCESS_NOT_FOUND", "Process not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrViewNotFound):
		return pkg.NewDomainErrorSimple("VIEW_NOT_FOUND", "Process view not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoteNotFound):
		return pkg.NewDomainErrorSimple("NOTE_NOT_FOUND", "Note not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlertNotFound):
		return pkg.NewDomainErrorSimple("ALERT_NOT_FOUND", "Alert not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlertAlreadyClosed):
		return pkg.NewDomainErrorSimple("ALERT_ALREADY_CLOSED", "The alert is already resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPendingConfirmation):
		return pkg.NewDomainErrorSimple("NO_PENDING_CONFIRMATION", "Nothing is waiting for confirmation", http.StatusConflict)
	case errors.Is(err, usecase.ErrTooManyViews):
		return pkg.NewDomainErrorSimple("TOO_MANY_VIEWS", "Too many open process views", http.StatusTooManyRequests).WithRetry()
	case errors.Is(err, interfaces.ErrProcessLocked):
		return pkg.NewDomainError("PROCESS_LOCKED", "The process is being edited by someone else", err, http.StatusConflict).WithRetry()
	case errors.Is(err, session.ErrMissingToken):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	case errors.As(err, &partialErr):
		return pkg.NewDomainError("BACKEND_UNAVAILABLE", partialErr.UserMessage(), err, http.StatusBadGateway).WithRetry()
	case errors.As(err, &transportErr):
		return pkg.NewDomainError("BACKEND_UNAVAILABLE", transportErr.UserMessage(), err, http.StatusBadGateway).WithRetry()
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, logger *zap.Logger, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// auditWarning reports whether err only means the audit entry was lost; the edit itself
// was saved.
func auditWarning(err error) (string, bool) {
	var auditErr *usecase.AuditWriteError
	if errors.As(err, &auditErr) {
		return auditErr.UserMessage(), true
	}
	return "", false
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

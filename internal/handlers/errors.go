package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/SscSPs/journal_engine/internal/dto"
	"github.com/SscSPs/journal_engine/internal/middleware"
	"github.com/SscSPs/journal_engine/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

const auditFailureMessage = "The change could not be recorded in the audit trail and was not applied. Please try again."

// respondWithError maps service errors onto HTTP statuses. fallback is the
// message used for unexpected failures, whose details are only logged.
func respondWithError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var verrs accounting.ValidationErrors
	status := http.StatusInternalServerError
	body := dto.ErrorResponse{Error: fallback}
	switch {
	case errors.As(err, &verrs):
		status = http.StatusBadRequest
		body = dto.ErrorResponse{Error: "Journal entry is invalid", Details: verrs}
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
		body.Error = err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		body.Error = err.Error()
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
		body.Error = err.Error()
	case errors.Is(err, apperrors.ErrIllegalTransition), errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
		body.Error = err.Error()
	case errors.Is(err, apperrors.ErrAuditFailure):
		body.Error = auditFailureMessage
	}

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
	} else {
		logger.Warn(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, body)
}

// requireActor reads the authenticated actor, answering 401 when there is none.
func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return domain.Actor{}, false
	}
	return actor, true
}

// bindJSON binds the request body, answering 400 on malformed input.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

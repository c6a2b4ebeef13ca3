package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/SscSPs/bank_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	titleValidation   = "Validation error"
	titleSameAccount  = "Same account id"
	titleBusiness     = "Business error"
	titleConstraint   = "Constraint violation error"
	titleInternal     = "Internal error"
	sameAccountDetail = "Source and destination account IDs cannot be the same."
)

// respondWithError maps a service error to its status code and ErrorResponse body.
func respondWithError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromContext(c)
	resp := dto.ErrorResponse{Timestamp: time.Now().UTC()}

	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		resp.Status = http.StatusBadRequest
		resp.Title = titleValidation
		resp.Error = apperrors.ErrValidation.Error()
		resp.Details = validationErr.Fields
	case errors.Is(err, apperrors.ErrSameAccount):
		resp.Status = http.StatusBadRequest
		resp.Title = titleSameAccount
		resp.Error = sameAccountDetail
	case errors.Is(err, apperrors.ErrValidation):
		resp.Status = http.StatusBadRequest
		resp.Title = titleValidation
		resp.Error = err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		resp.Status = http.StatusNotFound
		resp.Title = titleBusiness
		resp.Error = err.Error()
	case errors.Is(err, apperrors.ErrConstraintViolation), errors.Is(err, apperrors.ErrDuplicate):
		resp.Status = http.StatusConflict
		resp.Title = titleConstraint
		resp.Error = err.Error()
	default:
		logger.Error("Unhandled error in request", slog.String("error", err.Error()))
		resp.Status = http.StatusInternalServerError
		resp.Title = titleInternal
		resp.Error = "an internal error occurred"
	}

	if resp.Status < http.StatusInternalServerError {
		logger.Warn("Request rejected", slog.Int("status", resp.Status), slog.String("error", err.Error()))
	}
	c.AbortWithStatusJSON(resp.Status, resp)
}

// respondWithBindError reports a malformed body or query string as a validation error.
func respondWithBindError(c *gin.Context, err error) {
	respondWithError(c, apperrors.NewValidationError("request", "is malformed: "+err.Error()))
}

// parseAccountID reads the positive integer path parameter "accountID".
func parseAccountID(c *gin.Context) (int64, error) {
	raw := c.Param("accountID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewValidationError("accountID", "must be a positive integer")
	}
	return id, nil
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finwise/backend/internal/domain/error"
	"github.com/finwise/backend/internal/integration/entrypoint/dto"
	"github.com/finwise/backend/internal/integration/entrypoint/middleware"
)

// handleError maps a domain error to its HTTP status and wire shape.
// Anything outside the taxonomy is logged and surfaced as an opaque 500.
func handleError(ctx *gin.Context, err error) {
	var (
		validationErr *domainerror.ValidationError
		authErr       *domainerror.AuthError
		notFoundErr   *domainerror.NotFoundError
		conflictErr   *domainerror.ConflictError
		fundsErr      *domainerror.InsufficientFundsError
	)

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: validationErr.Error()})
	case errors.As(err, &fundsErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fundsErr.Error()})
	case errors.As(err, &authErr):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: authErr.Error()})
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: conflictErr.Error()})
	default:
		slog.Error("Unhandled error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "An internal error occurred"})
	}
}

// requireUserID extracts the authenticated user's ID, answering 401 when the
// auth middleware did not run.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "User not authenticated"})
	}
	return userID, ok
}

// parseRefID parses an optional referenced-resource ID from a request body.
// A malformed ID gets the same answer as a missing row, so callers cannot
// probe for other users' resources.
func parseRefID(ctx *gin.Context, value *string, resource string) (*uuid.UUID, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: resource + " not found or does not belong to user"})
		return nil, false
	}
	return &id, true
}

// parsePathID parses the :id path parameter.
func parsePathID(ctx *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: resource + " not found"})
		return uuid.Nil, false
	}
	return id, true
}

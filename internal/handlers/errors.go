package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/settlement_ledger/internal/apperrors"
	"github.com/SscSPs/settlement_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondError writes the status and body for a failed settlement call.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	status, kind := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, apperrors.ErrProgramming):
		status, kind = http.StatusBadRequest, "programming"
	case errors.Is(err, apperrors.ErrLedgerRejection):
		status, kind = http.StatusConflict, "ledger_rejection"
	case errors.Is(err, apperrors.ErrConfiguration):
		status, kind = http.StatusServiceUnavailable, "configuration"
	case errors.Is(err, apperrors.ErrConnection):
		status, kind = http.StatusBadGateway, "connection"
	}

	body := dto.ErrorResponse{Error: err.Error(), Kind: kind}
	if se, ok := apperrors.AsSettlementError(err); ok {
		body.Failures = se.Failures
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Settlement call failed", slog.String("kind", kind), slog.String("error", err.Error()))
	} else {
		logger.Warn("Settlement call rejected", slog.String("kind", kind), slog.String("error", err.Error()))
	}
	c.JSON(status, body)
}

func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error(), Kind: "programming"})
}

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/settlement_ledger/internal/apperrors"
	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/settlement_ledger/internal/core/ports/services"
	"github.com/SscSPs/settlement_ledger/internal/dto"
	"github.com/SscSPs/settlement_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settlementHandler handles HTTP requests that drive a settlement through the ledger.
type settlementHandler struct {
	provisioner  portssvc.AccountProvisionerSvc
	orchestrator portssvc.TransferOrchestratorSvc
}

// registerSettlementRoutes registers routes related to settlements.
func registerSettlementRoutes(rg *gin.RouterGroup, provisioner portssvc.AccountProvisionerSvc, orchestrator portssvc.TransferOrchestratorSvc) {
	h := &settlementHandler{provisioner: provisioner, orchestrator: orchestrator}

	settlements := rg.Group("/settlements/:settlementID")
	{
		settlements.POST("/accounts", h.createSettlementAccounts)

		transfers := settlements.Group("/transfers/:settlementTransferID")
		transfers.POST("/prepare", h.withTransfer(orchestrator.PrepareTransfer))
		transfers.POST("/reserve", h.withTransfer(orchestrator.ReserveTransfer))
		transfers.POST("/commit", h.withRef(orchestrator.CommitTransfer))
		transfers.POST("/abort", h.withRef(orchestrator.AbortTransfer))
	}
}

func (h *settlementHandler) createSettlementAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	settlementID := c.Param("settlementID")
	var req dto.CreateSettlementAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	accountType, err := domain.ParseAccountType(req.AccountType)
	if err != nil {
		respondError(c, logger, apperrors.NewProgrammingError("handlers.create_settlement_accounts", err))
		return
	}

	logger = logger.With(slog.String("settlement_id", settlementID))
	logger.Info("Received request to create participant settlement accounts",
		slog.Int("accounts", len(req.ParticipantCurrencyAccounts)),
		slog.String("currency", req.Currency))

	if err := h.provisioner.CreateParticipantSettlementAccounts(c.Request.Context(), req.ToObligation(settlementID, accountType)); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusCreated)
}

func routeRef(c *gin.Context) domain.TransferRef {
	return domain.TransferRef{
		SettlementID:         c.Param("settlementID"),
		SettlementTransferID: c.Param("settlementTransferID"),
	}
}

// withTransfer adapts prepare and reserve, which need the transfer's business data.
func (h *settlementHandler) withTransfer(step func(context.Context, domain.SettlementTransfer) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := routeRef(c)
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
			slog.String("settlement_id", ref.SettlementID),
			slog.String("settlement_transfer_id", ref.SettlementTransferID))
		var req dto.SettlementTransferRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, logger, err)
			return
		}
		if err := step(c.Request.Context(), req.ToSettlementTransfer(ref)); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// withRef adapts commit and abort, which only need the reservation reference.
func (h *settlementHandler) withRef(step func(context.Context, domain.TransferRef) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := routeRef(c)
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
			slog.String("settlement_id", ref.SettlementID),
			slog.String("settlement_transfer_id", ref.SettlementTransferID))
		if err := step(c.Request.Context(), ref); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

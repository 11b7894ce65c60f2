package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/settlement_ledger/internal/apperrors"
	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/settlement_ledger/internal/core/ports/services"
	"github.com/SscSPs/settlement_ledger/internal/dto"
	"github.com/SscSPs/settlement_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// hubAccountHandler handles HTTP requests related to hub accounts.
type hubAccountHandler struct {
	provisioner  portssvc.AccountProvisionerSvc
	defaultHubID string
}

// registerHubAccountRoutes registers routes related to hub accounts.
func registerHubAccountRoutes(rg *gin.RouterGroup, provisioner portssvc.AccountProvisionerSvc, defaultHubID string) {
	h := &hubAccountHandler{provisioner: provisioner, defaultHubID: defaultHubID}

	hubAccounts := rg.Group("/hub-accounts")
	{
		hubAccounts.POST("", h.createHubAccount)
		hubAccounts.GET("/:accountType/:currency", h.getHubAccount)
	}
}

func (h *hubAccountHandler) createHubAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateHubAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	hubReq, err := h.hubAccountRequest(req.HubID, req.AccountType, req.Currency)
	if err != nil {
		respondError(c, logger, apperrors.NewProgrammingError("handlers.create_hub_account", err))
		return
	}
	logger = logger.With(slog.String("hub_id", hubReq.HubID), slog.String("currency", hubReq.CurrencyCode))
	logger.Info("Received request to create hub account", slog.String("account_type", hubReq.AccountType.String()))

	if err := h.provisioner.CreateHubAccount(c.Request.Context(), hubReq); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *hubAccountHandler) getHubAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	hubReq, err := h.hubAccountRequest(c.Query("hubId"), c.Param("accountType"), c.Param("currency"))
	if err != nil {
		respondError(c, logger, apperrors.NewProgrammingError("handlers.get_hub_account", err))
		return
	}

	account, err := h.provisioner.LookupHubAccount(c.Request.Context(), hubReq)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	if account == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Hub account not found", Kind: "not_found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account, domain.LookupCurrency(hubReq.CurrencyCode)))
}

func (h *hubAccountHandler) hubAccountRequest(hubID, accountType, currency string) (domain.HubAccountRequest, error) {
	if hubID == "" {
		hubID = h.defaultHubID
	}
	req := domain.HubAccountRequest{HubID: hubID, CurrencyCode: currency}
	if accountType != "" {
		t, err := domain.ParseAccountType(accountType)
		if err != nil {
			return req, err
		}
		req.AccountType = t
	}
	return req, nil
}

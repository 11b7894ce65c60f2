package handlers

import (
	"net/http"
	"sort"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/SscSPs/settlement_ledger/internal/core/results"
	"github.com/SscSPs/settlement_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// healthHandler reports liveness and the ledger configuration the process runs with.
func healthHandler(cfg *config.Config) gin.HandlerFunc {
	currencies := domain.SupportedCurrencies()
	sort.Strings(currencies)
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":             "ok",
			"ledgerEnabled":      cfg.LedgerEnabled,
			"ledgerMode":         cfg.LedgerMode,
			"engineCodesVersion": results.EngineVersion,
			"currencies":         currencies,
		})
	}
}

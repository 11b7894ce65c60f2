package dto

import (
	"github.com/SscSPs/settlement_ledger/internal/apperrors"
	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/SscSPs/settlement_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CreateHubAccountRequest names a hub account to create.
type CreateHubAccountRequest struct {
	HubID       string `json:"hubId" binding:"omitempty,numeric"` // Optional, defaults to the configured hub
	AccountType string `json:"accountType"`                       // Name or numeric code, defaults to SETTLEMENT
	Currency    string `json:"currency" binding:"required,len=3,alpha"`
}

// ParticipantCurrencyAccountRequest is one participant position of a settlement.
type ParticipantCurrencyAccountRequest struct {
	ParticipantCurrencyID string `json:"participantCurrencyId" binding:"required,numeric"`
	Currency              string `json:"currency" binding:"omitempty,len=3,alpha"`
}

// CreateSettlementAccountsRequest provisions the participant accounts of one settlement.
type CreateSettlementAccountsRequest struct {
	AccountType                 string                              `json:"accountType" binding:"required"`
	Currency                    string                              `json:"currency" binding:"required,len=3,alpha"`
	DebitsMayNotExceedCredits   bool                                `json:"debitsMayNotExceedCredits"`
	ParticipantCurrencyAccounts []ParticipantCurrencyAccountRequest `json:"participantCurrencyAccounts" binding:"required,min=1,dive"`
}

// SettlementTransferRequest carries the business data of a prepare or reserve call.
type SettlementTransferRequest struct {
	ParticipantCurrencyID string          `json:"participantCurrencyId" binding:"required,numeric"`
	Currency              string          `json:"currency" binding:"required,len=3,alpha"`
	Amount                decimal.Decimal `json:"amount"`
}

// ToObligation builds the domain input of a settlement account batch.
func (r CreateSettlementAccountsRequest) ToObligation(settlementID string, accountType domain.AccountType) domain.SettlementObligation {
	accounts := make([]domain.ParticipantCurrencyAccount, len(r.ParticipantCurrencyAccounts))
	for i, a := range r.ParticipantCurrencyAccounts {
		accounts[i] = domain.ParticipantCurrencyAccount{
			ParticipantCurrencyID: a.ParticipantCurrencyID,
			CurrencyCode:          a.Currency,
		}
	}
	return domain.SettlementObligation{
		SettlementID:              settlementID,
		AccountType:               accountType,
		CurrencyCode:              r.Currency,
		Accounts:                  accounts,
		DebitsMayNotExceedCredits: r.DebitsMayNotExceedCredits,
	}
}

// ToSettlementTransfer builds the domain transfer addressed by the route.
func (r SettlementTransferRequest) ToSettlementTransfer(ref domain.TransferRef) domain.SettlementTransfer {
	return domain.SettlementTransfer{
		SettlementID:          ref.SettlementID,
		SettlementTransferID:  ref.SettlementTransferID,
		ParticipantCurrencyID: r.ParticipantCurrencyID,
		CurrencyCode:          r.Currency,
		Amount:                r.Amount,
	}
}

// AccountResponse is a ledger account with balances in major currency units.
type AccountResponse struct {
	ID             string          `json:"id"`
	AccountType    string          `json:"accountType"`
	Currency       string          `json:"currency"`
	Ledger         uint32          `json:"ledger"`
	DebitsPending  decimal.Decimal `json:"debitsPending"`
	DebitsPosted   decimal.Decimal `json:"debitsPosted"`
	CreditsPending decimal.Decimal `json:"creditsPending"`
	CreditsPosted  decimal.Decimal `json:"creditsPosted"`
	NetPosted      decimal.Decimal `json:"netPosted"`
	Available      decimal.Decimal `json:"available"`
	Timestamp      uint64          `json:"timestamp"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account, currency domain.Currency) AccountResponse {
	return AccountResponse{
		ID:             acc.ID.String(),
		AccountType:    acc.Code.String(),
		Currency:       currency.CurrencyCode,
		Ledger:         acc.Ledger,
		DebitsPending:  currency.FromMinorUnits(acc.DebitsPending),
		DebitsPosted:   currency.FromMinorUnits(acc.DebitsPosted),
		CreditsPending: currency.FromMinorUnits(acc.CreditsPending),
		CreditsPosted:  currency.FromMinorUnits(acc.CreditsPosted),
		NetPosted:      accounting.NetPosted(*acc, currency),
		Available:      accounting.Available(*acc, currency),
		Timestamp:      acc.Timestamp,
	}
}

// ErrorResponse is the body of every failed settlement call.
type ErrorResponse struct {
	Error    string                   `json:"error"`
	Kind     string                   `json:"kind,omitempty"`
	Failures []apperrors.EntryFailure `json:"failures,omitempty"`
}

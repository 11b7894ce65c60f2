package domain

import "github.com/shopspring/decimal"

// ParticipantCurrencyAccount identifies one participant's position in one currency.
// A non-empty CurrencyCode must match the settlement's currency.
type ParticipantCurrencyAccount struct {
	ParticipantCurrencyID string `json:"participantCurrencyId" validate:"required,numeric"`
	CurrencyCode          string `json:"currency" validate:"omitempty,len=3,alpha"`
}

// SettlementObligation is the business input of one settlement: who owes what, in
// which currency, and whether the per-settlement accounts may go negative.
type SettlementObligation struct {
	SettlementID              string                       `validate:"required,numeric"`
	AccountType               AccountType                  `validate:"required,account_type"`
	CurrencyCode              string                       `validate:"required,len=3,alpha"`
	Accounts                  []ParticipantCurrencyAccount `validate:"required,min=1,dive"`
	DebitsMayNotExceedCredits bool
}

// SettlementTransfer is the unit the orchestrator moves through
// prepare, reserve and then commit or abort.
type SettlementTransfer struct {
	SettlementID          string          `validate:"required,numeric"`
	SettlementTransferID  string          `validate:"required,uuid"`
	ParticipantCurrencyID string          `validate:"required,numeric"`
	CurrencyCode          string          `validate:"required,len=3,alpha"`
	Amount                decimal.Decimal `validate:"-"`
}

// TransferRef locates a reservation; commit and abort need nothing else.
type TransferRef struct {
	SettlementID         string `validate:"required,numeric"`
	SettlementTransferID string `validate:"required,uuid"`
}

// Ref returns the reservation reference of t.
func (t SettlementTransfer) Ref() TransferRef {
	return TransferRef{SettlementID: t.SettlementID, SettlementTransferID: t.SettlementTransferID}
}

// HubAccountRequest names one hub-owned account.
type HubAccountRequest struct {
	HubID        string      `validate:"required,numeric"`
	AccountType  AccountType `validate:"required,account_type"`
	CurrencyCode string      `validate:"required,len=3,alpha"`
}

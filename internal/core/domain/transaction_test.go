package domain_test

import (
	"testing"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransfer_IsFinalizing(t *testing.T) {
	tests := []struct {
		name     string
		transfer domain.Transfer
		want     bool
	}{
		{
			name:     "single phase transfer",
			transfer: domain.Transfer{Flags: domain.TransferLinked},
			want:     false,
		},
		{
			name:     "pending transfer",
			transfer: domain.Transfer{Flags: domain.TransferPending | domain.TransferLinked},
			want:     false,
		},
		{
			name:     "post pending transfer",
			transfer: domain.Transfer{Flags: domain.TransferPostPendingTransfer},
			want:     true,
		},
		{
			name:     "linked void pending transfer",
			transfer: domain.Transfer{Flags: domain.TransferVoidPendingTransfer | domain.TransferLinked},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transfer.IsFinalizing())
		})
	}
}

func TestFlags_EngineBitLayout(t *testing.T) {
	assert.Equal(t, uint16(1), uint16(domain.TransferLinked))
	assert.Equal(t, uint16(2), uint16(domain.TransferPending))
	assert.Equal(t, uint16(4), uint16(domain.TransferPostPendingTransfer))
	assert.Equal(t, uint16(8), uint16(domain.TransferVoidPendingTransfer))
	assert.Equal(t, uint16(1), uint16(domain.AccountLinked))
	assert.Equal(t, uint16(2), uint16(domain.AccountDebitsMustNotExceedCredits))
	assert.Equal(t, uint16(4), uint16(domain.AccountCreditsMustNotExceedDebits))
}

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.AccountType
		wantErr bool
	}{
		{in: "SETTLEMENT", want: domain.Settlement},
		{in: "2", want: domain.Settlement},
		{in: "HUB_MULTILATERAL_SETTLEMENT", want: domain.HubMultilateralSettlement},
		{in: "3", want: domain.HubReconciliation},
		{in: "settlement", wantErr: true},
		{in: "99", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseAccountType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

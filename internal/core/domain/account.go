package domain

import "fmt"

// AccountType is the numeric ledger code identifying an account's role.
type AccountType uint16

const (
	Position                  AccountType = 1
	Settlement                AccountType = 2
	HubReconciliation         AccountType = 3
	HubMultilateralSettlement AccountType = 4
	InterchangeFee            AccountType = 5
	InterchangeFeeSettlement  AccountType = 6
)

var accountTypeNames = map[AccountType]string{
	Position:                  "POSITION",
	Settlement:                "SETTLEMENT",
	HubReconciliation:         "HUB_RECONCILIATION",
	HubMultilateralSettlement: "HUB_MULTILATERAL_SETTLEMENT",
	InterchangeFee:            "INTERCHANGE_FEE",
	InterchangeFeeSettlement:  "INTERCHANGE_FEE_SETTLEMENT",
}

func (t AccountType) String() string {
	if name, ok := accountTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ACCOUNT_TYPE_%d", uint16(t))
}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	_, ok := accountTypeNames[t]
	return ok
}

// ParseAccountType resolves either the name (e.g. "SETTLEMENT") or the numeric code.
func ParseAccountType(s string) (AccountType, error) {
	for t, name := range accountTypeNames {
		if name == s || fmt.Sprint(uint16(t)) == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown account type %q", s)
}

// AccountFlags follows the engine's account flag bit layout.
type AccountFlags uint16

const (
	AccountLinked                     AccountFlags = 1 << 0
	AccountDebitsMustNotExceedCredits AccountFlags = 1 << 1
	AccountCreditsMustNotExceedDebits AccountFlags = 1 << 2
	AccountHistory                    AccountFlags = 1 << 3
)

// Has reports whether every bit of f is set.
func (a AccountFlags) Has(f AccountFlags) bool { return a&f == f }

// Account is a ledger balance holder. Balances and Timestamp are owned by the engine
// and are zero on creation.
type Account struct {
	ID             LedgerID
	DebitsPending  Amount
	DebitsPosted   Amount
	CreditsPending Amount
	CreditsPosted  Amount
	UserData128    Correlation
	UserData64     uint64
	UserData32     uint32
	Ledger         uint32
	Code           AccountType
	Flags          AccountFlags
	Timestamp      uint64
}

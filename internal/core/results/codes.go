package results

// EngineVersion is the engine release the code tables below were taken from.
// Codes are renumbered between engine releases; bump this together with the tables.
const EngineVersion = "0.16"

// CreateAccountResult codes.
const (
	AccountOK                                   uint32 = 0
	AccountLinkedEventFailed                    uint32 = 1
	AccountLinkedEventChainOpen                 uint32 = 2
	AccountTimestampMustBeZero                  uint32 = 3
	AccountReservedField                        uint32 = 4
	AccountReservedFlag                         uint32 = 5
	AccountIDMustNotBeZero                      uint32 = 6
	AccountIDMustNotBeIntMax                    uint32 = 7
	AccountFlagsAreMutuallyExclusive            uint32 = 8
	AccountDebitsPendingMustBeZero              uint32 = 9
	AccountDebitsPostedMustBeZero               uint32 = 10
	AccountCreditsPendingMustBeZero             uint32 = 11
	AccountCreditsPostedMustBeZero              uint32 = 12
	AccountLedgerMustNotBeZero                  uint32 = 13
	AccountCodeMustNotBeZero                    uint32 = 14
	AccountExistsWithDifferentFlags             uint32 = 15
	AccountExistsWithDifferentUserData128       uint32 = 16
	AccountExistsWithDifferentUserData64        uint32 = 17
	AccountExistsWithDifferentUserData32        uint32 = 18
	AccountExistsWithDifferentLedger            uint32 = 19
	AccountExistsWithDifferentCode              uint32 = 20
	AccountExists                               uint32 = 21
	AccountImportedEventExpected                uint32 = 22
	AccountImportedEventNotExpected             uint32 = 23
	AccountImportedEventTimestampOutOfRange     uint32 = 24
	AccountImportedEventTimestampMustNotAdvance uint32 = 25
	AccountImportedEventTimestampMustNotRegress uint32 = 26
)

// CreateTransferResult codes.
const (
	TransferOK                                              uint32 = 0
	TransferLinkedEventFailed                               uint32 = 1
	TransferLinkedEventChainOpen                            uint32 = 2
	TransferTimestampMustBeZero                             uint32 = 3
	TransferReservedFlag                                    uint32 = 4
	TransferIDMustNotBeZero                                 uint32 = 5
	TransferIDMustNotBeIntMax                               uint32 = 6
	TransferFlagsAreMutuallyExclusive                       uint32 = 7
	TransferDebitAccountIDMustNotBeZero                     uint32 = 8
	TransferDebitAccountIDMustNotBeIntMax                   uint32 = 9
	TransferCreditAccountIDMustNotBeZero                    uint32 = 10
	TransferCreditAccountIDMustNotBeIntMax                  uint32 = 11
	TransferAccountsMustBeDifferent                         uint32 = 12
	TransferPendingIDMustBeZero                             uint32 = 13
	TransferPendingIDMustNotBeZero                          uint32 = 14
	TransferPendingIDMustNotBeIntMax                        uint32 = 15
	TransferPendingIDMustBeDifferent                        uint32 = 16
	TransferTimeoutReservedForPendingTransfer               uint32 = 17
	TransferAmountMustNotBeZero                             uint32 = 18
	TransferLedgerMustNotBeZero                             uint32 = 19
	TransferCodeMustNotBeZero                               uint32 = 20
	TransferDebitAccountNotFound                            uint32 = 21
	TransferCreditAccountNotFound                           uint32 = 22
	TransferAccountsMustHaveTheSameLedger                   uint32 = 23
	TransferMustHaveTheSameLedgerAsAccounts                 uint32 = 24
	TransferPendingTransferNotFound                         uint32 = 25
	TransferPendingTransferNotPending                       uint32 = 26
	TransferPendingTransferHasDifferentDebitAccount         uint32 = 27
	TransferPendingTransferHasDifferentCreditAccount        uint32 = 28
	TransferPendingTransferHasDifferentLedger               uint32 = 29
	TransferPendingTransferHasDifferentCode                 uint32 = 30
	TransferExceedsPendingTransferAmount                    uint32 = 31
	TransferPendingTransferHasDifferentAmount               uint32 = 32
	TransferPendingTransferAlreadyPosted                    uint32 = 33
	TransferPendingTransferAlreadyVoided                    uint32 = 34
	TransferPendingTransferExpired                          uint32 = 35
	TransferExistsWithDifferentFlags                        uint32 = 36
	TransferExistsWithDifferentDebitAccountID               uint32 = 37
	TransferExistsWithDifferentCreditAccountID              uint32 = 38
	TransferExistsWithDifferentAmount                       uint32 = 39
	TransferExistsWithDifferentPendingID                    uint32 = 40
	TransferExistsWithDifferentUserData128                  uint32 = 41
	TransferExistsWithDifferentUserData64                   uint32 = 42
	TransferExistsWithDifferentUserData32                   uint32 = 43
	TransferExistsWithDifferentTimeout                      uint32 = 44
	TransferExistsWithDifferentCode                         uint32 = 45
	TransferExists                                          uint32 = 46
	TransferOverflowsDebitsPending                          uint32 = 47
	TransferOverflowsCreditsPending                         uint32 = 48
	TransferOverflowsDebitsPosted                           uint32 = 49
	TransferOverflowsCreditsPosted                          uint32 = 50
	TransferOverflowsDebits                                 uint32 = 51
	TransferOverflowsCredits                                uint32 = 52
	TransferOverflowsTimeout                                uint32 = 53
	TransferExceedsCredits                                  uint32 = 54
	TransferExceedsDebits                                   uint32 = 55
	TransferImportedEventExpected                           uint32 = 56
	TransferImportedEventNotExpected                        uint32 = 57
	TransferImportedEventTimestampOutOfRange                uint32 = 58
	TransferImportedEventTimestampMustNotAdvance            uint32 = 59
	TransferImportedEventTimestampMustNotRegress            uint32 = 60
	TransferImportedEventTimestampMustPostdateDebitAccount  uint32 = 61
	TransferImportedEventTimestampMustPostdateCreditAccount uint32 = 62
	TransferImportedEventTimeoutMustBeZero                  uint32 = 63
	TransferClosingTransferMustBePending                    uint32 = 64
	TransferDebitAccountAlreadyClosed                       uint32 = 65
	TransferCreditAccountAlreadyClosed                      uint32 = 66
	TransferExistsWithDifferentLedger                       uint32 = 67
	TransferIDAlreadyFailed                                 uint32 = 68
)

var accountLabels = map[uint32]string{
	AccountOK:                                   "ok",
	AccountLinkedEventFailed:                    "linked_event_failed",
	AccountLinkedEventChainOpen:                 "linked_event_chain_open",
	AccountTimestampMustBeZero:                  "timestamp_must_be_zero",
	AccountReservedField:                        "reserved_field",
	AccountReservedFlag:                         "reserved_flag",
	AccountIDMustNotBeZero:                      "id_must_not_be_zero",
	AccountIDMustNotBeIntMax:                    "id_must_not_be_int_max",
	AccountFlagsAreMutuallyExclusive:            "flags_are_mutually_exclusive",
	AccountDebitsPendingMustBeZero:              "debits_pending_must_be_zero",
	AccountDebitsPostedMustBeZero:               "debits_posted_must_be_zero",
	AccountCreditsPendingMustBeZero:             "credits_pending_must_be_zero",
	AccountCreditsPostedMustBeZero:              "credits_posted_must_be_zero",
	AccountLedgerMustNotBeZero:                  "ledger_must_not_be_zero",
	AccountCodeMustNotBeZero:                    "code_must_not_be_zero",
	AccountExistsWithDifferentFlags:             "exists_with_different_flags",
	AccountExistsWithDifferentUserData128:       "exists_with_different_user_data_128",
	AccountExistsWithDifferentUserData64:        "exists_with_different_user_data_64",
	AccountExistsWithDifferentUserData32:        "exists_with_different_user_data_32",
	AccountExistsWithDifferentLedger:            "exists_with_different_ledger",
	AccountExistsWithDifferentCode:              "exists_with_different_code",
	AccountExists:                               "exists",
	AccountImportedEventExpected:                "imported_event_expected",
	AccountImportedEventNotExpected:             "imported_event_not_expected",
	AccountImportedEventTimestampOutOfRange:     "imported_event_timestamp_out_of_range",
	AccountImportedEventTimestampMustNotAdvance: "imported_event_timestamp_must_not_advance",
	AccountImportedEventTimestampMustNotRegress: "imported_event_timestamp_must_not_regress",
}

var transferLabels = map[uint32]string{
	TransferOK:                                              "ok",
	TransferLinkedEventFailed:                               "linked_event_failed",
	TransferLinkedEventChainOpen:                            "linked_event_chain_open",
	TransferTimestampMustBeZero:                             "timestamp_must_be_zero",
	TransferReservedFlag:                                    "reserved_flag",
	TransferIDMustNotBeZero:                                 "id_must_not_be_zero",
	TransferIDMustNotBeIntMax:                               "id_must_not_be_int_max",
	TransferFlagsAreMutuallyExclusive:                       "flags_are_mutually_exclusive",
	TransferDebitAccountIDMustNotBeZero:                     "debit_account_id_must_not_be_zero",
	TransferDebitAccountIDMustNotBeIntMax:                   "debit_account_id_must_not_be_int_max",
	TransferCreditAccountIDMustNotBeZero:                    "credit_account_id_must_not_be_zero",
	TransferCreditAccountIDMustNotBeIntMax:                  "credit_account_id_must_not_be_int_max",
	TransferAccountsMustBeDifferent:                         "accounts_must_be_different",
	TransferPendingIDMustBeZero:                             "pending_id_must_be_zero",
	TransferPendingIDMustNotBeZero:                          "pending_id_must_not_be_zero",
	TransferPendingIDMustNotBeIntMax:                        "pending_id_must_not_be_int_max",
	TransferPendingIDMustBeDifferent:                        "pending_id_must_be_different",
	TransferTimeoutReservedForPendingTransfer:               "timeout_reserved_for_pending_transfer",
	TransferAmountMustNotBeZero:                             "amount_must_not_be_zero",
	TransferLedgerMustNotBeZero:                             "ledger_must_not_be_zero",
	TransferCodeMustNotBeZero:                               "code_must_not_be_zero",
	TransferDebitAccountNotFound:                            "debit_account_not_found",
	TransferCreditAccountNotFound:                           "credit_account_not_found",
	TransferAccountsMustHaveTheSameLedger:                   "accounts_must_have_the_same_ledger",
	TransferMustHaveTheSameLedgerAsAccounts:                 "transfer_must_have_the_same_ledger_as_accounts",
	TransferPendingTransferNotFound:                         "pending_transfer_not_found",
	TransferPendingTransferNotPending:                       "pending_transfer_not_pending",
	TransferPendingTransferHasDifferentDebitAccount:         "pending_transfer_has_different_debit_account_id",
	TransferPendingTransferHasDifferentCreditAccount:        "pending_transfer_has_different_credit_account_id",
	TransferPendingTransferHasDifferentLedger:               "pending_transfer_has_different_ledger",
	TransferPendingTransferHasDifferentCode:                 "pending_transfer_has_different_code",
	TransferExceedsPendingTransferAmount:                    "exceeds_pending_transfer_amount",
	TransferPendingTransferHasDifferentAmount:               "pending_transfer_has_different_amount",
	TransferPendingTransferAlreadyPosted:                    "pending_transfer_already_posted",
	TransferPendingTransferAlreadyVoided:                    "pending_transfer_already_voided",
	TransferPendingTransferExpired:                          "pending_transfer_expired",
	TransferExistsWithDifferentFlags:                        "exists_with_different_flags",
	TransferExistsWithDifferentDebitAccountID:               "exists_with_different_debit_account_id",
	TransferExistsWithDifferentCreditAccountID:              "exists_with_different_credit_account_id",
	TransferExistsWithDifferentAmount:                       "exists_with_different_amount",
	TransferExistsWithDifferentPendingID:                    "exists_with_different_pending_id",
	TransferExistsWithDifferentUserData128:                  "exists_with_different_user_data_128",
	TransferExistsWithDifferentUserData64:                   "exists_with_different_user_data_64",
	TransferExistsWithDifferentUserData32:                   "exists_with_different_user_data_32",
	TransferExistsWithDifferentTimeout:                      "exists_with_different_timeout",
	TransferExistsWithDifferentCode:                         "exists_with_different_code",
	TransferExists:                                          "exists",
	TransferOverflowsDebitsPending:                          "overflows_debits_pending",
	TransferOverflowsCreditsPending:                         "overflows_credits_pending",
	TransferOverflowsDebitsPosted:                           "overflows_debits_posted",
	TransferOverflowsCreditsPosted:                          "overflows_credits_posted",
	TransferOverflowsDebits:                                 "overflows_debits",
	TransferOverflowsCredits:                                "overflows_credits",
	TransferOverflowsTimeout:                                "overflows_timeout",
	TransferExceedsCredits:                                  "exceeds_credits",
	TransferExceedsDebits:                                   "exceeds_debits",
	TransferImportedEventExpected:                           "imported_event_expected",
	TransferImportedEventNotExpected:                        "imported_event_not_expected",
	TransferImportedEventTimestampOutOfRange:                "imported_event_timestamp_out_of_range",
	TransferImportedEventTimestampMustNotAdvance:            "imported_event_timestamp_must_not_advance",
	TransferImportedEventTimestampMustNotRegress:            "imported_event_timestamp_must_not_regress",
	TransferImportedEventTimestampMustPostdateDebitAccount:  "imported_event_timestamp_must_postdate_debit_account",
	TransferImportedEventTimestampMustPostdateCreditAccount: "imported_event_timestamp_must_postdate_credit_account",
	TransferImportedEventTimeoutMustBeZero:                  "imported_event_timeout_must_be_zero",
	TransferClosingTransferMustBePending:                    "closing_transfer_must_be_pending",
	TransferDebitAccountAlreadyClosed:                       "debit_account_already_closed",
	TransferCreditAccountAlreadyClosed:                      "credit_account_already_closed",
	TransferExistsWithDifferentLedger:                       "exists_with_different_ledger",
	TransferIDAlreadyFailed:                                 "id_already_failed",
}

package services

import (
	"errors"

	"smartlearn/models"
)

// LedgerSummary holds the aggregate financial figures for reporting.
type LedgerSummary struct {
	TotalRevenue     uint  `json:"totalRevenue"`
	TotalWithdrawn   uint  `json:"totalWithdrawn"`
	AvailableBalance int64 `json:"availableBalance"`
}

// Withdrawal validation errors surfaced to the caller as user-facing
// messages; none of them mutate the ledger.
var (
	ErrWithdrawAmountInvalid = errors.New("withdrawal amount must be greater than 0")
	ErrInsufficientBalance   = errors.New("withdrawal amount exceeds available balance")
)

// SummarizeLedger computes totals from the full record sets. Both sets are
// append-only and small, so the figures are recomputed on demand instead of
// kept as counters; cost is linear in record count.
func SummarizeLedger(payments []models.PaymentRecord, withdrawals []models.Withdrawal) LedgerSummary {
	var s LedgerSummary
	for _, p := range payments {
		s.TotalRevenue += p.Amount
	}
	for _, w := range withdrawals {
		s.TotalWithdrawn += w.Amount
	}
	s.AvailableBalance = int64(s.TotalRevenue) - int64(s.TotalWithdrawn)
	return s
}

// ValidateWithdrawalAmount rejects a withdrawal request before any record is
// created: the amount must be positive and must not exceed the currently
// available balance.
func ValidateWithdrawalAmount(summary LedgerSummary, amount uint) error {
	if amount == 0 {
		return ErrWithdrawAmountInvalid
	}
	if int64(amount) > summary.AvailableBalance {
		return ErrInsufficientBalance
	}
	return nil
}

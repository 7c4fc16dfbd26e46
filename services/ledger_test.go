package services

import (
	"testing"

	"smartlearn/models"
)

func payments(amounts ...uint) []models.PaymentRecord {
	out := make([]models.PaymentRecord, len(amounts))
	for i, a := range amounts {
		out[i] = models.PaymentRecord{UserID: 1, Amount: a, Method: models.MethodMTNMoMo, Kind: models.PurchasePlan}
	}
	return out
}

func withdrawals(amounts ...uint) []models.Withdrawal {
	out := make([]models.Withdrawal, len(amounts))
	for i, a := range amounts {
		out[i] = models.Withdrawal{Amount: a, Method: models.MethodMTNMoMo, PhoneNumber: "670000000"}
	}
	return out
}

func TestSummarizeLedger(t *testing.T) {
	tests := []struct {
		name        string
		payments    []models.PaymentRecord
		withdrawals []models.Withdrawal
		wantRevenue uint
		wantOut     uint
		wantBalance int64
	}{
		{name: "empty ledger", wantRevenue: 0, wantOut: 0, wantBalance: 0},
		{
			name:        "payments only",
			payments:    payments(1000, 2000),
			wantRevenue: 3000,
			wantBalance: 3000,
		},
		{
			name:        "payments and withdrawals",
			payments:    payments(1000, 2000),
			withdrawals: withdrawals(500),
			wantRevenue: 3000,
			wantOut:     500,
			wantBalance: 2500,
		},
		{
			name:        "fully withdrawn",
			payments:    payments(1000, 2000),
			withdrawals: withdrawals(500, 2500),
			wantRevenue: 3000,
			wantOut:     3000,
			wantBalance: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeLedger(tt.payments, tt.withdrawals)
			if got.TotalRevenue != tt.wantRevenue {
				t.Errorf("TotalRevenue = %d, want %d", got.TotalRevenue, tt.wantRevenue)
			}
			if got.TotalWithdrawn != tt.wantOut {
				t.Errorf("TotalWithdrawn = %d, want %d", got.TotalWithdrawn, tt.wantOut)
			}
			if got.AvailableBalance != tt.wantBalance {
				t.Errorf("AvailableBalance = %d, want %d", got.AvailableBalance, tt.wantBalance)
			}
			if got.AvailableBalance != int64(got.TotalRevenue)-int64(got.TotalWithdrawn) {
				t.Errorf("balance invariant broken: %d != %d - %d", got.AvailableBalance, got.TotalRevenue, got.TotalWithdrawn)
			}
		})
	}
}

func TestValidateWithdrawalAmount(t *testing.T) {
	summary := SummarizeLedger(payments(1000, 2000), withdrawals(500)) // balance 2500

	tests := []struct {
		name    string
		amount  uint
		wantErr error
	}{
		{name: "zero amount", amount: 0, wantErr: ErrWithdrawAmountInvalid},
		{name: "over balance", amount: 3000, wantErr: ErrInsufficientBalance},
		{name: "exactly the balance", amount: 2500},
		{name: "under balance", amount: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateWithdrawalAmount(summary, tt.amount); err != tt.wantErr {
				t.Errorf("ValidateWithdrawalAmount(%d) = %v, want %v", tt.amount, err, tt.wantErr)
			}
		})
	}
}

// A rejected withdrawal must leave the ledger untouched; draining the
// balance to zero must make any further positive request fail.
func TestWithdrawalSequence(t *testing.T) {
	pays := payments(1000, 2000)
	outs := withdrawals(500)

	summary := SummarizeLedger(pays, outs)
	if err := ValidateWithdrawalAmount(summary, 3000); err != ErrInsufficientBalance {
		t.Fatalf("expected rejection of 3000, got %v", err)
	}
	// Rejection created no record; totals unchanged.
	again := SummarizeLedger(pays, outs)
	if again != summary {
		t.Fatalf("ledger changed after rejected request: %v vs %v", again, summary)
	}

	if err := ValidateWithdrawalAmount(summary, 2500); err != nil {
		t.Fatalf("expected 2500 to be accepted, got %v", err)
	}
	outs = append(outs, models.Withdrawal{Amount: 2500, Method: models.MethodBankTransfer, BankName: "Afriland", AccountNo: "0012345"})

	drained := SummarizeLedger(pays, outs)
	if drained.AvailableBalance != 0 {
		t.Fatalf("AvailableBalance = %d, want 0", drained.AvailableBalance)
	}
	if err := ValidateWithdrawalAmount(drained, 1); err != ErrInsufficientBalance {
		t.Fatalf("expected rejection on drained ledger, got %v", err)
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

// Transaction holds a single statement entry of an account.
//
// Description is set on credit entries only; debit entries omit it.
type Transaction struct {
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Balance derives the account balance from the given statement:
// the sum of credit amounts minus the sum of debit amounts.
//
// The fold runs on decimals so that withdrawing the exact balance
// compares equal instead of tripping over float rounding.
func Balance(statement []Transaction) float64 {
	total := decimal.Zero

	for _, tx := range statement {
		amount := decimal.NewFromFloat(tx.Amount)

		if tx.Type == TransactionTypeCredit {
			total = total.Add(amount)
		} else {
			total = total.Sub(amount)
		}
	}

	balance, _ := total.Float64()

	return balance
}

// FilterByDay returns the statement entries created on the given calendar
// day (UTC), preserving their original order.
func FilterByDay(statement []Transaction, day time.Time) []Transaction {
	wantYear, wantMonth, wantDay := day.Date()

	filtered := []Transaction{}

	for _, tx := range statement {
		year, month, dayOfMonth := tx.CreatedAt.UTC().Date()
		if year == wantYear && month == wantMonth && dayOfMonth == wantDay {
			filtered = append(filtered, tx)
		}
	}

	return filtered
}

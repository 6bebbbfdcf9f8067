// Package domain provides defenitions of all entities.
package domain

import "errors"

var (
	// ErrCustomerNotFound indicates that no account matches the given cpf.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerAlreadyExists indicates that an account with the given cpf already exists.
	ErrCustomerAlreadyExists = errors.New("customer already exists")
	// ErrInsufficientFunds indicates that the withdrawal amount exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account holds customer data and the full ledger of their transactions.
//
// The statement is append-only: deposits and withdrawals add entries,
// nothing ever edits or removes them short of deleting the whole account.
type Account struct {
	ID        string        `json:"id"`
	CPF       string        `json:"cpf"`
	Name      string        `json:"name"`
	Statement []Transaction `json:"statement"`
}

// Package transactionservice manages business logic layer of statement transactions.
package transactionservice

import (
	"context"
	"time"

	"github.com/go-fin/fin-api/internal/domain"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	AddTransaction(ctx context.Context, cpf string, tx domain.Transaction) (domain.Transaction, error)
	ListTransactions(ctx context.Context, cpf string) ([]domain.Transaction, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo Repo
}

// New returns transaction service struct to manage statement bussines logic.
func New(tr Repo) *Service {
	return &Service{repo: tr}
}

// Deposit appends a credit transaction to the account's statement.
// Deposits are always accepted.
func (s *Service) Deposit(ctx context.Context, cpf string, amount float64, description string) (domain.Transaction, error) {
	tx := domain.Transaction{
		Amount:      amount,
		Type:        domain.TransactionTypeCredit,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	return s.repo.AddTransaction(ctx, cpf, tx)
}

// Withdraw appends a debit transaction to the account's statement. The
// repo rejects it with domain.ErrInsufficientFunds when the amount
// exceeds the derived balance; withdrawing the exact balance succeeds.
func (s *Service) Withdraw(ctx context.Context, cpf string, amount float64) (domain.Transaction, error) {
	tx := domain.Transaction{
		Amount:    amount,
		Type:      domain.TransactionTypeDebit,
		CreatedAt: time.Now().UTC(),
	}

	return s.repo.AddTransaction(ctx, cpf, tx)
}

// Statement returns the account's full statement in chronological order.
func (s *Service) Statement(ctx context.Context, cpf string) ([]domain.Transaction, error) {
	return s.repo.ListTransactions(ctx, cpf)
}

// StatementByDay returns the statement entries created on the given
// calendar day, in chronological order.
func (s *Service) StatementByDay(ctx context.Context, cpf string, day time.Time) ([]domain.Transaction, error) {
	statement, err := s.repo.ListTransactions(ctx, cpf)
	if err != nil {
		return nil, err
	}

	return domain.FilterByDay(statement, day), nil
}

// Balance derives the account balance from its statement.
func (s *Service) Balance(ctx context.Context, cpf string) (float64, error) {
	statement, err := s.repo.ListTransactions(ctx, cpf)
	if err != nil {
		return 0, err
	}

	return domain.Balance(statement), nil
}

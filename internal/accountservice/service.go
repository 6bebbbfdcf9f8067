// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/google/uuid"

	"github.com/go-fin/fin-api/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	Get(ctx context.Context, cpf string) (domain.Account, error)
	UpdateName(ctx context.Context, cpf, name string) (domain.Account, error)
	Delete(ctx context.Context, cpf string) error
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create creates and returns an account for the given cpf and name with a
// freshly generated id and an empty statement.
func (s *Service) Create(ctx context.Context, cpf, name string) (domain.Account, error) {
	account := domain.Account{
		ID:        uuid.NewString(),
		CPF:       cpf,
		Name:      name,
		Statement: []domain.Transaction{},
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return created, err
	}

	return created, nil
}

// Get returns the account with the given cpf.
func (s *Service) Get(ctx context.Context, cpf string) (domain.Account, error) {
	account, err := s.repo.Get(ctx, cpf)
	if err != nil {
		return account, err
	}

	return account, nil
}

// UpdateName overwrites the account's display name.
func (s *Service) UpdateName(ctx context.Context, cpf, name string) (domain.Account, error) {
	account, err := s.repo.UpdateName(ctx, cpf, name)
	if err != nil {
		return account, err
	}

	return account, nil
}

// Delete removes the account with the given cpf and its whole statement.
func (s *Service) Delete(ctx context.Context, cpf string) error {
	return s.repo.Delete(ctx, cpf)
}

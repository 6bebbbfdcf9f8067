// Package accountrepo manages the in-memory repository layer of accounts.
package accountrepo

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-fin/fin-api/internal/domain"
)

// RepoMem is the process-wide account store. Accounts are indexed by cpf
// and guarded by a single mutex; accounts never leave the store by
// reference, every read hands out a copy.
type RepoMem struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

// NewRepoMem returns an empty account store.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		accounts: make(map[string]*domain.Account),
	}
}

// Create inserts the account and then returns it. The cpf must not be taken.
func (r *RepoMem) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.CPF]; ok {
		l.Info().Str("cpf", account.CPF).Msg("account already exists")
		return domain.Account{}, domain.ErrCustomerAlreadyExists
	}

	if account.Statement == nil {
		account.Statement = []domain.Transaction{}
	}

	stored := account
	r.accounts[account.CPF] = &stored

	return copyAccount(&stored), nil
}

// Get returns the account with the given cpf.
func (r *RepoMem) Get(ctx context.Context, cpf string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[cpf]
	if !ok {
		return domain.Account{}, domain.ErrCustomerNotFound
	}

	return copyAccount(account), nil
}

// UpdateName overwrites the account's display name and returns the
// changed account.
func (r *RepoMem) UpdateName(ctx context.Context, cpf, name string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[cpf]
	if !ok {
		return domain.Account{}, domain.ErrCustomerNotFound
	}

	account.Name = name

	return copyAccount(account), nil
}

// Delete removes the account with the given cpf along with its whole
// statement.
func (r *RepoMem) Delete(ctx context.Context, cpf string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[cpf]; !ok {
		return domain.ErrCustomerNotFound
	}

	delete(r.accounts, cpf)

	return nil
}

// AddTransaction appends the transaction to the account's statement and
// returns it. For debit transactions the balance sufficiency check and
// the append run inside the same critical section, so concurrent
// withdrawals cannot both pass the check.
func (r *RepoMem) AddTransaction(ctx context.Context, cpf string, tx domain.Transaction) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[cpf]
	if !ok {
		return domain.Transaction{}, domain.ErrCustomerNotFound
	}

	if tx.Type == domain.TransactionTypeDebit {
		if tx.Amount > domain.Balance(account.Statement) {
			l.Info().Str("cpf", cpf).Float64("amount", tx.Amount).Msg("insufficient funds")
			return domain.Transaction{}, domain.ErrInsufficientFunds
		}
	}

	account.Statement = append(account.Statement, tx)

	return tx, nil
}

// ListTransactions returns the account's full statement in insertion order.
func (r *RepoMem) ListTransactions(ctx context.Context, cpf string) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[cpf]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}

	statement := make([]domain.Transaction, len(account.Statement))
	copy(statement, account.Statement)

	return statement, nil
}

func copyAccount(account *domain.Account) domain.Account {
	copied := *account
	copied.Statement = make([]domain.Transaction, len(account.Statement))
	copy(copied.Statement, account.Statement)

	return copied
}

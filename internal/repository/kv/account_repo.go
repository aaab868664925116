package kv

import (
	"context"

	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/kvstore"
	"alcyxob/fittrack/internal/repository"
)

// accountRepository implements repository.AccountRepository as a JSON array under AccountsKey.
type accountRepository struct {
	store kvstore.Store
}

func NewAccountRepository(store kvstore.Store) repository.AccountRepository {
	return &accountRepository{store: store}
}

func (r *accountRepository) List(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if _, err := load(ctx, r.store, AccountsKey, &accounts); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (r *accountRepository) ReplaceAll(ctx context.Context, accounts []domain.Account) error {
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return save(ctx, r.store, AccountsKey, accounts)
}

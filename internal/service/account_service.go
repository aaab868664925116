package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/repository"

	log "github.com/sirupsen/logrus"
)

// MinCredentialLength is the shortest credential the sign-up form accepts.
const MinCredentialLength = 6

// AccountDirectory registers accounts and resolves logins.
type AccountDirectory interface {
	Register(ctx context.Context, name, email, credential string) (*domain.Profile, error)
	Authenticate(ctx context.Context, email, credential string) (*domain.Profile, error)
}

// accountDirectory implements the AccountDirectory interface.
type accountDirectory struct {
	repo  repository.AccountRepository
	clock func() time.Time
	newID func() string
}

// NewAccountDirectory creates a new instance of accountDirectory.
func NewAccountDirectory(repo repository.AccountRepository) AccountDirectory {
	return &accountDirectory{
		repo:  repo,
		clock: time.Now,
		newID: newTimeOrderedID,
	}
}

// Register appends a new account to the directory. Emails are compared
// exactly as stored, so "A@x.io" and "a@x.io" are different accounts.
func (d *accountDirectory) Register(ctx context.Context, name, email, credential string) (*domain.Profile, error) {
	if err := validateSignUp(name, email, credential); err != nil {
		return nil, err
	}

	// A failed read must not turn into an overwrite with a one-entry directory.
	accounts, err := d.repo.List(ctx)
	if err != nil {
		return nil, unavailable("load accounts", err)
	}

	for _, a := range accounts {
		if a.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	account := domain.Account{
		ID:         d.uniqueID(accounts),
		Name:       name,
		Email:      email,
		Credential: credential,
		JoinDate:   d.clock().UTC(),
	}
	accounts = append(accounts, account)

	if err := d.repo.ReplaceAll(context.WithoutCancel(ctx), accounts); err != nil {
		return nil, unavailable("save accounts", err)
	}

	log.WithField("account_id", account.ID).Info("account registered")
	profile := account.Profile()
	return &profile, nil
}

// Authenticate looks up the account matching both email and credential.
// An unreadable directory is treated as an empty one.
func (d *accountDirectory) Authenticate(ctx context.Context, email, credential string) (*domain.Profile, error) {
	if email == "" || credential == "" {
		return nil, ErrInvalidCredentials
	}

	accounts, err := d.repo.List(ctx)
	if err != nil {
		log.Warnf("authenticate: account directory unreadable, treating as empty: %s", err)
		return nil, ErrInvalidCredentials
	}

	for i := range accounts {
		if accounts[i].Email == email && accounts[i].Credential == credential {
			profile := accounts[i].Profile()
			return &profile, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (d *accountDirectory) uniqueID(accounts []domain.Account) string {
	taken := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		taken[a.ID] = struct{}{}
	}
	for {
		id := d.newID()
		if _, ok := taken[id]; !ok {
			return id
		}
	}
}

func validateSignUp(name, email, credential string) error {
	switch {
	case name == "":
		return &InvalidAccountInputError{Field: "name", Reason: "is required"}
	case email == "":
		return &InvalidAccountInputError{Field: "email", Reason: "is required"}
	case credential == "":
		return &InvalidAccountInputError{Field: "password", Reason: "is required"}
	case utf8.RuneCountInString(credential) < MinCredentialLength:
		return &InvalidAccountInputError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", MinCredentialLength)}
	}
	return nil
}

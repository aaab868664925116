package service

import (
	"context"
	"errors"

	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/repository"

	log "github.com/sirupsen/logrus"
)

// SessionHolder remembers which account is signed in across restarts.
type SessionHolder interface {
	// Restore returns nil when there is no usable session. It never fails.
	Restore(ctx context.Context) *domain.Profile
	Start(ctx context.Context, profile domain.Profile) error
	// End clears the session; ending an absent session is fine.
	End(ctx context.Context) error
}

type sessionHolder struct {
	repo repository.SessionRepository
}

func NewSessionHolder(repo repository.SessionRepository) SessionHolder {
	return &sessionHolder{repo: repo}
}

func (h *sessionHolder) Restore(ctx context.Context) *domain.Profile {
	profile, err := h.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Warnf("restore session, treating as signed out: %s", err)
		}
		return nil
	}
	return profile
}

func (h *sessionHolder) Start(ctx context.Context, profile domain.Profile) error {
	if err := h.repo.Put(context.WithoutCancel(ctx), profile); err != nil {
		return unavailable("start session", err)
	}
	log.WithField("account_id", profile.ID).Debug("session started")
	return nil
}

func (h *sessionHolder) End(ctx context.Context) error {
	if err := h.repo.Clear(context.WithoutCancel(ctx)); err != nil {
		return unavailable("end session", err)
	}
	return nil
}

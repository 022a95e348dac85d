package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/noirbureau/swanhunt/internal/dependencies/clock"
	"github.com/noirbureau/swanhunt/internal/model"
	"github.com/noirbureau/swanhunt/internal/notify"
	"github.com/noirbureau/swanhunt/internal/storage"
	"github.com/noirbureau/swanhunt/internal/storage/failover"
)

// Config holds auth behaviour settings
type Config struct {
	// AdminEmail identifies the chief's account
	AdminEmail string

	// AdminDefaultPassword is restored for the admin account before every
	// local-mode credential check, so a forgotten password can never lock
	// staff out of a degraded deployment
	AdminDefaultPassword string

	// MinPasswordLen is enforced before any backend call
	MinPasswordLen int
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		AdminEmail:           "chief@swanhunt.local",
		AdminDefaultPassword: "admin123",
		MinPasswordLen:       6,
	}
}

// Service handles registration, login and the backend-held session email
type Service struct {
	store    storage.Store
	local    storage.Store
	breaker  *failover.Breaker
	clock    clock.Clock
	notifier *notify.Sink
	logger   *slog.Logger
	cfg      Config
}

// New creates an auth service. store is the failover facade; local is the
// durable local backend, needed directly for the admin recovery path.
func New(store, local storage.Store, breaker *failover.Breaker, clk clock.Clock, notifier *notify.Sink, logger *slog.Logger, cfg Config) *Service {
	if cfg.MinPasswordLen == 0 {
		cfg.MinPasswordLen = DefaultConfig().MinPasswordLen
	}
	return &Service{
		store:    store,
		local:    local,
		breaker:  breaker,
		clock:    clk,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
	}
}

// Login verifies a credential and opens the backend session. Both an
// unknown email and a wrong password map to ErrInvalidCredential.
func (s *Service) Login(ctx context.Context, email, password string) (*model.Profile, error) {
	email = model.NormalizeEmail(email)

	if !s.breaker.RemoteEligible() {
		s.ensureAdmin(ctx)
	}

	hash, err := s.store.GetCredential(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrCredentialNotFound) {
			return nil, model.ErrInvalidCredential
		}
		s.reportUnexpected("login", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, model.ErrInvalidCredential
	}

	if err := s.store.SetSessionEmail(ctx, email); err != nil {
		s.reportUnexpected("login", err)
		return nil, err
	}

	profile, err := s.store.GetProfile(ctx, email)
	if errors.Is(err, model.ErrProfileNotFound) {
		return &model.Profile{Email: email}, nil
	}
	if err != nil {
		s.reportUnexpected("login", err)
		return nil, err
	}
	return profile, nil
}

// Register validates, creates a credential and profile, and opens the
// backend session. Validation failures happen before any backend call.
func (s *Service) Register(ctx context.Context, email, password, name string) (*model.Profile, error) {
	email = model.NormalizeEmail(email)

	if len(password) < s.cfg.MinPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", model.ErrValidation, s.cfg.MinPasswordLen)
	}

	if !s.breaker.RemoteEligible() {
		s.ensureAdmin(ctx)
	}

	_, err := s.store.GetCredential(ctx, email)
	if err == nil {
		return nil, model.ErrDuplicateIdentity
	}
	if !errors.Is(err, model.ErrCredentialNotFound) {
		s.reportUnexpected("register", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetCredential(ctx, email, string(hash)); err != nil {
		s.reportUnexpected("register", err)
		return nil, err
	}

	profile := &model.Profile{
		Email:         email,
		Name:          name,
		GroupName:     "Unassigned",
		GroupMembers:  "None",
		LoginTime:     s.clock.Now(),
		CluesUnlocked: 1,
	}
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		s.reportUnexpected("register", err)
		return nil, err
	}

	if err := s.store.SetSessionEmail(ctx, email); err != nil {
		s.reportUnexpected("register", err)
		return nil, err
	}
	return profile, nil
}

// Logout clears the backend session
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.ClearSession(ctx); err != nil {
		s.reportUnexpected("logout", err)
		return err
	}
	return nil
}

// SessionEmail returns the signed-in email, or "" when nobody is
func (s *Service) SessionEmail(ctx context.Context) (string, error) {
	email, err := s.store.SessionEmail(ctx)
	if errors.Is(err, model.ErrNoSession) {
		return "", nil
	}
	if err != nil {
		s.reportUnexpected("session lookup", err)
		return "", err
	}
	return email, nil
}

// IsAdmin reports whether the email is the configured chief account
func (s *Service) IsAdmin(email string) bool {
	return model.NormalizeEmail(email) == model.NormalizeEmail(s.cfg.AdminEmail)
}

// ensureAdmin restores the chief's credential on the local backend and
// seeds the chief profile if absent. Failures are logged but never block
// the auth attempt that triggered the reset.
func (s *Service) ensureAdmin(ctx context.Context) {
	adminEmail := model.NormalizeEmail(s.cfg.AdminEmail)

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminDefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash admin recovery password", slog.String("error", err.Error()))
		return
	}

	if err := s.local.SetCredential(ctx, adminEmail, string(hash)); err != nil {
		s.logger.Error("failed to restore admin credential", slog.String("error", err.Error()))
		return
	}

	if _, err := s.local.GetProfile(ctx, adminEmail); errors.Is(err, model.ErrProfileNotFound) {
		profile := &model.Profile{
			Email:         adminEmail,
			Name:          "Chief Commissioner",
			GroupName:     "Headquarters",
			GroupMembers:  "Classified",
			LoginTime:     s.clock.Now(),
			CluesUnlocked: 999,
		}
		if err := s.local.SaveProfile(ctx, profile); err != nil {
			s.logger.Error("failed to seed admin profile", slog.String("error", err.Error()))
		}
	}
}

func (s *Service) reportUnexpected(op string, err error) {
	s.logger.Error("auth backend operation failed",
		slog.String("op", op),
		slog.String("error", err.Error()))
	s.notifier.Publish("Could not reach game data (" + op + ")")
}

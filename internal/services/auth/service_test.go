package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/noirbureau/swanhunt/internal/dependencies/mocks"
	"github.com/noirbureau/swanhunt/internal/model"
	"github.com/noirbureau/swanhunt/internal/notify"
	"github.com/noirbureau/swanhunt/internal/storage/failover"
	"github.com/noirbureau/swanhunt/internal/storage/memory"
	"github.com/noirbureau/swanhunt/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	remote  *memory.Storage
	local   *memory.Storage
	breaker *failover.Breaker
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) newService(remoteConfigured bool) *Service {
	s.remote = memory.New()
	s.local = memory.New()
	s.breaker = failover.NewBreaker(remoteConfigured, testutil.NopLogger())
	store := failover.New(s.remote, s.local, s.breaker)
	clk := mocks.NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	return New(store, s.local, s.breaker, clk, notify.New(), testutil.NopLogger(), DefaultConfig())
}

func (s *ServiceSuite) SetupTest() {
	s.service = s.newService(true)
	s.ctx = context.Background()
}

// Registration tests

func (s *ServiceSuite) TestRegisterCreatesProfileAndSession() {
	profile, err := s.service.Register(s.ctx, " Alice@Example.COM ", "secret123", "Alice")
	s.Require().NoError(err)

	s.Equal("alice@example.com", profile.Email)
	s.Equal("Unassigned", profile.GroupName)
	s.Equal("None", profile.GroupMembers)
	s.Equal(1, profile.CluesUnlocked)

	email, err := s.service.SessionEmail(s.ctx)
	s.Require().NoError(err)
	s.Equal("alice@example.com", email)
}

func (s *ServiceSuite) TestRegisterShortPasswordRejectedBeforeBackend() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "short", "Alice")
	s.ErrorIs(err, model.ErrValidation)

	// Nothing written anywhere
	_, err = s.remote.GetCredential(s.ctx, "alice@example.com")
	s.ErrorIs(err, model.ErrCredentialNotFound)
	_, err = s.local.GetCredential(s.ctx, "alice@example.com")
	s.ErrorIs(err, model.ErrCredentialNotFound)
}

func (s *ServiceSuite) TestRegisterDuplicateIdentity() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "secret123", "Alice")
	s.Require().NoError(err)

	// Same identity in different case
	_, err = s.service.Register(s.ctx, "ALICE@example.com", "different1", "Alice Again")
	s.ErrorIs(err, model.ErrDuplicateIdentity)
}

// Login tests

func (s *ServiceSuite) TestLoginRoundTrip() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "secret123", "Alice")
	s.Require().NoError(err)
	s.Require().NoError(s.service.Logout(s.ctx))

	profile, err := s.service.Login(s.ctx, "  ALICE@Example.com ", "secret123")
	s.Require().NoError(err)
	s.Equal("alice@example.com", profile.Email)

	email, err := s.service.SessionEmail(s.ctx)
	s.Require().NoError(err)
	s.Equal("alice@example.com", email)
}

func (s *ServiceSuite) TestLoginWrongPassword() {
	_, _ = s.service.Register(s.ctx, "alice@example.com", "secret123", "Alice")

	_, err := s.service.Login(s.ctx, "alice@example.com", "wrong-password")
	s.ErrorIs(err, model.ErrInvalidCredential)
}

func (s *ServiceSuite) TestLoginUnknownEmail() {
	_, err := s.service.Login(s.ctx, "nobody@example.com", "whatever123")
	s.ErrorIs(err, model.ErrInvalidCredential)
}

func (s *ServiceSuite) TestLogoutClearsSession() {
	_, _ = s.service.Register(s.ctx, "alice@example.com", "secret123", "Alice")

	s.Require().NoError(s.service.Logout(s.ctx))

	email, err := s.service.SessionEmail(s.ctx)
	s.Require().NoError(err)
	s.Empty(email)
}

func (s *ServiceSuite) TestSessionEmailEmptyWhenNobodySignedIn() {
	email, err := s.service.SessionEmail(s.ctx)
	s.Require().NoError(err)
	s.Empty(email)
}

// Admin recovery tests

func (s *ServiceSuite) TestAdminRecoveryInLocalMode() {
	service := s.newService(false)

	profile, err := service.Login(s.ctx, "chief@swanhunt.local", "admin123")
	s.Require().NoError(err)
	s.Equal("Chief Commissioner", profile.Name)
	s.Equal(999, profile.CluesUnlocked)
}

func (s *ServiceSuite) TestAdminRecoveryRestoresDefaultPassword() {
	service := s.newService(false)

	// Someone overwrote the chief's credential with an unknown hash
	s.Require().NoError(s.local.SetCredential(s.ctx, "chief@swanhunt.local", "$2a$10$bogus"))

	// The next auth attempt restores the default
	_, err := service.Login(s.ctx, "chief@swanhunt.local", "admin123")
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestAdminRecoveryNotAppliedInRemoteMode() {
	// Remote eligible, so no reset happens and the chief is unknown
	_, err := s.service.Login(s.ctx, "chief@swanhunt.local", "admin123")
	s.ErrorIs(err, model.ErrInvalidCredential)
}

func (s *ServiceSuite) TestIsAdmin() {
	s.True(s.service.IsAdmin(" Chief@SwanHunt.local "))
	s.False(s.service.IsAdmin("alice@example.com"))
}

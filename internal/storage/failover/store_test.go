package failover

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/noirbureau/swanhunt/internal/model"
	"github.com/noirbureau/swanhunt/internal/storage"
	"github.com/noirbureau/swanhunt/internal/storage/memory"
	"github.com/noirbureau/swanhunt/internal/storage/redis"
	"github.com/noirbureau/swanhunt/internal/testutil"
)

// flakyStore wraps a backend, counting calls and optionally failing every
// operation with a configurable error
type flakyStore struct {
	storage.Store
	calls int
	err   error
}

func (f *flakyStore) GetProfile(ctx context.Context, email string) (*model.Profile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.Store.GetProfile(ctx, email)
}

func (f *flakyStore) SaveProfile(ctx context.Context, profile *model.Profile) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return f.Store.SaveProfile(ctx, profile)
}

func (f *flakyStore) GetContent(ctx context.Context) (model.SiteContent, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.Store.GetContent(ctx)
}

type StoreSuite struct {
	suite.Suite
	remote  *flakyStore
	local   *memory.Storage
	breaker *Breaker
	store   *Store
	ctx     context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.remote = &flakyStore{Store: memory.New()}
	s.local = memory.New()
	s.breaker = NewBreaker(true, testutil.NopLogger())
	s.store = New(s.remote, s.local, s.breaker)
	s.ctx = context.Background()
}

func (s *StoreSuite) TestRemoteServesWhenHealthy() {
	profile := &model.Profile{Email: "alice@example.com", Name: "Alice"}
	s.Require().NoError(s.store.SaveProfile(s.ctx, profile))

	retrieved, err := s.store.GetProfile(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal("Alice", retrieved.Name)

	// Local never touched
	_, err = s.local.GetProfile(s.ctx, "alice@example.com")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *StoreSuite) TestUnavailableFlipsAndRetriesOnLocal() {
	_ = s.local.SaveProfile(s.ctx, &model.Profile{Email: "alice@example.com", Name: "Local Alice"})
	s.remote.err = storage.Unavailable(errors.New("connection refused"))

	retrieved, err := s.store.GetProfile(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal("Local Alice", retrieved.Name)
	s.False(s.breaker.RemoteEligible())
	s.Equal(1, s.remote.calls)
}

func (s *StoreSuite) TestFlipIsStickyAcrossOperations() {
	s.remote.err = storage.Unavailable(errors.New("connection refused"))

	_, _ = s.store.GetProfile(s.ctx, "alice@example.com")
	s.Equal(1, s.remote.calls)

	// Subsequent operations go straight to local, zero remote calls
	_ = s.store.SaveProfile(s.ctx, &model.Profile{Email: "bob@example.com"})
	_, _ = s.store.GetProfile(s.ctx, "bob@example.com")
	s.Equal(1, s.remote.calls)

	retrieved, err := s.local.GetProfile(s.ctx, "bob@example.com")
	s.Require().NoError(err)
	s.Equal("bob@example.com", retrieved.Email)
}

func (s *StoreSuite) TestSemanticErrorPassesThroughWithoutFlip() {
	_, err := s.store.GetProfile(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrProfileNotFound)
	s.True(s.breaker.RemoteEligible())
}

func (s *StoreSuite) TestNonInfrastructuralErrorDoesNotFlip() {
	s.remote.err = errors.New("corrupted document")

	_, err := s.store.GetProfile(s.ctx, "alice@example.com")
	s.Require().Error(err)
	s.False(storage.IsUnavailable(err))
	s.True(s.breaker.RemoteEligible())
}

func (s *StoreSuite) TestUnconfiguredRemoteNeverCalled() {
	breaker := NewBreaker(false, testutil.NopLogger())
	store := New(s.remote, s.local, breaker)

	_ = store.SaveProfile(s.ctx, &model.Profile{Email: "alice@example.com"})
	_, _ = store.GetProfile(s.ctx, "alice@example.com")

	s.Equal(0, s.remote.calls)

	_, err := s.local.GetProfile(s.ctx, "alice@example.com")
	s.Require().NoError(err)
}

func (s *StoreSuite) TestSessionFollowsActiveBackend() {
	s.Require().NoError(s.store.SetSessionEmail(s.ctx, "alice@example.com"))

	email, err := s.store.SessionEmail(s.ctx)
	s.Require().NoError(err)
	s.Equal("alice@example.com", email)

	s.Require().NoError(s.store.ClearSession(s.ctx))
	_, err = s.store.SessionEmail(s.ctx)
	s.ErrorIs(err, model.ErrNoSession)
}

// TestRealRemoteOutage exercises the full path with an actual Redis client
// whose server has gone away mid-session.
func TestRealRemoteOutage(t *testing.T) {
	ctx := context.Background()
	mini := miniredis.RunT(t)

	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
	remote := redis.NewWithClient(client, redis.DefaultConfig())
	defer remote.Close()

	local := memory.New()
	breaker := NewBreaker(true, testutil.NopLogger())
	store := New(remote, local, breaker)

	if err := store.SaveProfile(ctx, &model.Profile{Email: "alice@example.com", Name: "Alice"}); err != nil {
		t.Fatal(err)
	}

	// Server goes down; the write lands on local and the breaker trips
	mini.Close()

	if err := store.SaveProfile(ctx, &model.Profile{Email: "bob@example.com", Name: "Bob"}); err != nil {
		t.Fatal(err)
	}
	if breaker.RemoteEligible() {
		t.Fatal("breaker should have tripped")
	}

	profile, err := local.GetProfile(ctx, "bob@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if profile.Name != "Bob" {
		t.Fatalf("expected Bob, got %q", profile.Name)
	}
}

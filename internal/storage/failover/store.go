package failover

import (
	"context"

	"github.com/noirbureau/swanhunt/internal/model"
	"github.com/noirbureau/swanhunt/internal/storage"
)

// Store is the resilient facade over the remote and local backends. Every
// operation follows the same algorithm: if the breaker allows it, try the
// remote; when the remote fails with an Unavailable error, trip the
// breaker and retry the same operation once against the local store.
// Semantic errors (not-found, decode failures) pass through from whichever
// backend answered. Callers cannot tell which one did.
type Store struct {
	remote  storage.Store
	local   storage.Store
	breaker *Breaker
}

// New creates the facade. remote may be nil when the deployment has no
// remote configured, in which case the breaker must be built with
// remoteConfigured=false.
func New(remote, local storage.Store, breaker *Breaker) *Store {
	return &Store{
		remote:  remote,
		local:   local,
		breaker: breaker,
	}
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

// run executes op against the eligible backend, with the single bounded
// retry against local on remote unavailability
func run[T any](ctx context.Context, s *Store, op func(context.Context, storage.Store) (T, error)) (T, error) {
	if s.breaker.RemoteEligible() {
		v, err := op(ctx, s.remote)
		if err == nil || !storage.IsUnavailable(err) {
			return v, err
		}
		s.breaker.ForceLocal()
	}
	return op(ctx, s.local)
}

// runErr is run for operations that return only an error
func runErr(ctx context.Context, s *Store, op func(context.Context, storage.Store) error) error {
	_, err := run(ctx, s, func(ctx context.Context, st storage.Store) (struct{}, error) {
		return struct{}{}, op(ctx, st)
	})
	return err
}

// Profile operations

func (s *Store) GetProfile(ctx context.Context, email string) (*model.Profile, error) {
	return run(ctx, s, func(ctx context.Context, st storage.Store) (*model.Profile, error) {
		return st.GetProfile(ctx, email)
	})
}

func (s *Store) SaveProfile(ctx context.Context, profile *model.Profile) error {
	return runErr(ctx, s, func(ctx context.Context, st storage.Store) error {
		return st.SaveProfile(ctx, profile)
	})
}

func (s *Store) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	return run(ctx, s, func(ctx context.Context, st storage.Store) ([]*model.Profile, error) {
		return st.ListProfiles(ctx)
	})
}

// Credential operations

func (s *Store) GetCredential(ctx context.Context, email string) (string, error) {
	return run(ctx, s, func(ctx context.Context, st storage.Store) (string, error) {
		return st.GetCredential(ctx, email)
	})
}

func (s *Store) SetCredential(ctx context.Context, email, hash string) error {
	return runErr(ctx, s, func(ctx context.Context, st storage.Store) error {
		return st.SetCredential(ctx, email, hash)
	})
}

// Clue operations

func (s *Store) ListClues(ctx context.Context) ([]*model.Clue, error) {
	return run(ctx, s, func(ctx context.Context, st storage.Store) ([]*model.Clue, error) {
		return st.ListClues(ctx)
	})
}

func (s *Store) SaveClue(ctx context.Context, clue *model.Clue) error {
	return runErr(ctx, s, func(ctx context.Context, st storage.Store) error {
		return st.SaveClue(ctx, clue)
	})
}

func (s *Store) DeleteClue(ctx context.Context, id string) error {
	return runErr(ctx, s, func(ctx context.Context, st storage.Store) error {
		return st.DeleteClue(ctx, id)
	})
}

// Report operations

func (s *Store) GetReport(ctx context.Context, id string) (*model.Report, error) {
	return run(ctx, s, func(ctx context.Context, st storage.Store) (*model.Report, error) {
		return st.GetReport(ctx, id)
	})
}

func (s *Store) ListReports(ctx context.Context) ([]*model.Report, error) {
	return run(ctx, s, func(ctx context.Context, st storage.Store) ([]*model.Report, error) {
		return st.ListReports(ctx)
	})
}

func (s *Store) SaveReport(ctx context.Context, report *model.Report) error {
	return runErr(ctx, s, func(ctx context.Context, st storage.Store) error {
		return st.SaveReport(ctx, report)
	})
}

// Singleton documents

func (s *Store) GetContent(ctx context.Context) (model.SiteContent, error) {
	return run(ctx, s, func(ctx context.Context, st storage.Store) (model.SiteContent, error) {
		return st.GetContent(ctx)
	})
}

func (s *Store) SetContent(ctx context.Context, content model.SiteContent) error {
	return runErr(ctx, s, func(ctx context.Context, st storage.Store) error {
		return st.SetContent(ctx, content)
	})
}

func (s *Store) GetRules(ctx context.Context) (*model.GameRules, error) {
	return run(ctx, s, func(ctx context.Context, st storage.Store) (*model.GameRules, error) {
		return st.GetRules(ctx)
	})
}

func (s *Store) SetRules(ctx context.Context, rules *model.GameRules) error {
	return runErr(ctx, s, func(ctx context.Context, st storage.Store) error {
		return st.SetRules(ctx, rules)
	})
}

// Session operations

func (s *Store) SessionEmail(ctx context.Context) (string, error) {
	return run(ctx, s, func(ctx context.Context, st storage.Store) (string, error) {
		return st.SessionEmail(ctx)
	})
}

func (s *Store) SetSessionEmail(ctx context.Context, email string) error {
	return runErr(ctx, s, func(ctx context.Context, st storage.Store) error {
		return st.SetSessionEmail(ctx, email)
	})
}

func (s *Store) ClearSession(ctx context.Context) error {
	return runErr(ctx, s, func(ctx context.Context, st storage.Store) error {
		return st.ClearSession(ctx)
	})
}

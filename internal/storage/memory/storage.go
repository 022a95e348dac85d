package memory

import (
	"context"
	"sync"

	"github.com/noirbureau/swanhunt/internal/model"
	"github.com/noirbureau/swanhunt/internal/storage"
)

// Storage is an in-memory implementation of the store interface, used as a
// fast backend in tests
type Storage struct {
	mu sync.RWMutex

	profiles    map[string]*model.Profile
	credentials map[string]string
	clues       []*model.Clue
	reports     []*model.Report
	content     model.SiteContent
	rules       *model.GameRules
	session     string
	hasSession  bool
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		profiles:    make(map[string]*model.Profile),
		credentials: make(map[string]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// Profile operations

func (s *Storage) GetProfile(ctx context.Context, email string) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[email]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.Email] = profile
	return nil
}

func (s *Storage) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	return out, nil
}

// Credential operations

func (s *Storage) GetCredential(ctx context.Context, email string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, ok := s.credentials[email]
	if !ok {
		return "", model.ErrCredentialNotFound
	}
	return hash, nil
}

func (s *Storage) SetCredential(ctx context.Context, email, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[email] = hash
	return nil
}

// Clue operations

func (s *Storage) ListClues(ctx context.Context) ([]*model.Clue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Clue, len(s.clues))
	copy(out, s.clues)
	return out, nil
}

func (s *Storage) SaveClue(ctx context.Context, clue *model.Clue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.clues {
		if c.ID == clue.ID {
			s.clues[i] = clue
			return nil
		}
	}
	s.clues = append(s.clues, clue)
	return nil
}

func (s *Storage) DeleteClue(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.clues[:0]
	for _, c := range s.clues {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.clues = kept
	return nil
}

// Report operations

func (s *Storage) GetReport(ctx context.Context, id string) (*model.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, model.ErrReportNotFound
}

func (s *Storage) ListReports(ctx context.Context) ([]*model.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Report, len(s.reports))
	copy(out, s.reports)
	return out, nil
}

func (s *Storage) SaveReport(ctx context.Context, report *model.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.reports {
		if r.ID == report.ID {
			s.reports[i] = report
			return nil
		}
	}
	s.reports = append(s.reports, report)
	return nil
}

// Singleton documents

func (s *Storage) GetContent(ctx context.Context) (model.SiteContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.content == nil {
		return nil, model.ErrContentNotSet
	}
	return s.content, nil
}

func (s *Storage) SetContent(ctx context.Context, content model.SiteContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = content
	return nil
}

func (s *Storage) GetRules(ctx context.Context) (*model.GameRules, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rules == nil {
		return nil, model.ErrRulesNotSet
	}
	return s.rules, nil
}

func (s *Storage) SetRules(ctx context.Context, rules *model.GameRules) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = rules
	return nil
}

// Session operations

func (s *Storage) SessionEmail(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasSession {
		return "", model.ErrNoSession
	}
	return s.session, nil
}

func (s *Storage) SetSessionEmail(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = email
	s.hasSession = true
	return nil
}

func (s *Storage) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = ""
	s.hasSession = false
	return nil
}

package local

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/noirbureau/swanhunt/internal/model"
	"github.com/noirbureau/swanhunt/internal/storage"
)

// Storage is the durable local implementation of the store interface,
// backed by an embedded SQLite database holding one JSON document per
// entity collection. It is the fallback backend and must keep working
// when everything else is down, so it has no external dependencies at
// runtime.
//
// Mutations are whole-document read-modify-write; the mutex serializes
// them so two concurrent writers cannot lose each other's update.
type Storage struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (creating if needed) the local store at path.
// Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Storage, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// readKey loads and decodes the collection document at key. An absent key
// yields the zero value of T with a nil error.
func readKey[T any](ctx context.Context, s *Storage, key string) (T, error) {
	var out T
	value, err := s.getValue(ctx, key)
	if errors.Is(err, errKeyAbsent) {
		return out, nil
	}
	if err != nil {
		return out, err
	}
	if err := storage.UnmarshalDoc([]byte(value), &out); err != nil {
		return out, err
	}
	return out, nil
}

// writeKey encodes and stores the collection document at key
func writeKey[T any](ctx context.Context, s *Storage, key string, doc T) error {
	data, err := storage.MarshalDoc(doc)
	if err != nil {
		return err
	}
	return s.setValue(ctx, key, string(data))
}

// Profile operations

func (s *Storage) GetProfile(ctx context.Context, email string) (*model.Profile, error) {
	profiles, err := readKey[map[string]*model.Profile](ctx, s, keyProfiles)
	if err != nil {
		return nil, err
	}
	profile, ok := profiles[email]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := readKey[map[string]*model.Profile](ctx, s, keyProfiles)
	if err != nil {
		return err
	}
	if profiles == nil {
		profiles = map[string]*model.Profile{}
	}
	profiles[profile.Email] = profile
	return writeKey(ctx, s, keyProfiles, profiles)
}

func (s *Storage) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	profiles, err := readKey[map[string]*model.Profile](ctx, s, keyProfiles)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	return out, nil
}

// Credential operations

func (s *Storage) GetCredential(ctx context.Context, email string) (string, error) {
	users, err := readKey[map[string]string](ctx, s, keyUsers)
	if err != nil {
		return "", err
	}
	hash, ok := users[email]
	if !ok {
		return "", model.ErrCredentialNotFound
	}
	return hash, nil
}

func (s *Storage) SetCredential(ctx context.Context, email, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := readKey[map[string]string](ctx, s, keyUsers)
	if err != nil {
		return err
	}
	if users == nil {
		users = map[string]string{}
	}
	users[email] = hash
	return writeKey(ctx, s, keyUsers, users)
}

// Clue operations

func (s *Storage) ListClues(ctx context.Context) ([]*model.Clue, error) {
	clues, err := readKey[[]*model.Clue](ctx, s, keyClues)
	if err != nil {
		return nil, err
	}
	if clues == nil {
		clues = []*model.Clue{}
	}
	return clues, nil
}

func (s *Storage) SaveClue(ctx context.Context, clue *model.Clue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clues, err := readKey[[]*model.Clue](ctx, s, keyClues)
	if err != nil {
		return err
	}
	replaced := false
	for i, c := range clues {
		if c.ID == clue.ID {
			clues[i] = clue
			replaced = true
			break
		}
	}
	if !replaced {
		clues = append(clues, clue)
	}
	return writeKey(ctx, s, keyClues, clues)
}

func (s *Storage) DeleteClue(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clues, err := readKey[[]*model.Clue](ctx, s, keyClues)
	if err != nil {
		return err
	}
	kept := clues[:0]
	for _, c := range clues {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return writeKey(ctx, s, keyClues, kept)
}

// Report operations

func (s *Storage) GetReport(ctx context.Context, id string) (*model.Report, error) {
	reports, err := readKey[[]*model.Report](ctx, s, keyReports)
	if err != nil {
		return nil, err
	}
	for _, r := range reports {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, model.ErrReportNotFound
}

func (s *Storage) ListReports(ctx context.Context) ([]*model.Report, error) {
	reports, err := readKey[[]*model.Report](ctx, s, keyReports)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []*model.Report{}
	}
	return reports, nil
}

func (s *Storage) SaveReport(ctx context.Context, report *model.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := readKey[[]*model.Report](ctx, s, keyReports)
	if err != nil {
		return err
	}
	replaced := false
	for i, r := range reports {
		if r.ID == report.ID {
			reports[i] = report
			replaced = true
			break
		}
	}
	if !replaced {
		reports = append(reports, report)
	}
	return writeKey(ctx, s, keyReports, reports)
}

// Singleton documents

func (s *Storage) GetContent(ctx context.Context) (model.SiteContent, error) {
	value, err := s.getValue(ctx, keyContent)
	if errors.Is(err, errKeyAbsent) {
		return nil, model.ErrContentNotSet
	}
	if err != nil {
		return nil, err
	}
	var content model.SiteContent
	if err := storage.UnmarshalDoc([]byte(value), &content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *Storage) SetContent(ctx context.Context, content model.SiteContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeKey(ctx, s, keyContent, content)
}

func (s *Storage) GetRules(ctx context.Context) (*model.GameRules, error) {
	value, err := s.getValue(ctx, keyRules)
	if errors.Is(err, errKeyAbsent) {
		return nil, model.ErrRulesNotSet
	}
	if err != nil {
		return nil, err
	}
	var rules model.GameRules
	if err := storage.UnmarshalDoc([]byte(value), &rules); err != nil {
		return nil, err
	}
	return &rules, nil
}

func (s *Storage) SetRules(ctx context.Context, rules *model.GameRules) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeKey(ctx, s, keyRules, rules)
}

// Session operations

func (s *Storage) SessionEmail(ctx context.Context) (string, error) {
	email, err := s.getValue(ctx, keySession)
	if errors.Is(err, errKeyAbsent) {
		return "", model.ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return email, nil
}

func (s *Storage) SetSessionEmail(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setValue(ctx, keySession, email)
}

func (s *Storage) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteValue(ctx, keySession)
}

package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noirbureau/swanhunt/internal/model"
	"github.com/noirbureau/swanhunt/internal/storage"
)

// Storage is a Redis-backed implementation of the store interface.
// Every Redis command error except redis.Nil is classified Unavailable so
// the failover layer can absorb it; redis.Nil maps to the entity's
// not-found sentinel and decode failures pass through as-is.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance. An unreachable server at boot
// is not fatal: the first operation will fail as Unavailable and the
// breaker takes over from there.
func New(cfg Config, logger *slog.Logger) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("remote store unreachable at startup",
			slog.String("url", cfg.URL),
			slog.String("error", err.Error()))
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// getDoc fetches and decodes a single document, mapping redis.Nil to the
// given sentinel
func getDoc[T any](ctx context.Context, s *Storage, key string, notFound error) (*T, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound
		}
		return nil, storage.Unavailable(err)
	}

	var doc T
	if err := storage.UnmarshalDoc(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// saveDoc encodes and stores a document, updating the index set in the
// same pipeline
func saveDoc(ctx context.Context, s *Storage, key, indexKey string, doc any) error {
	data, err := storage.MarshalDoc(doc)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, indexKey, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return storage.Unavailable(err)
	}
	return nil
}

// listDocs fetches every document named by an index set via MGET
func listDocs[T any](ctx context.Context, s *Storage, indexKey string) ([]*T, error) {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, storage.Unavailable(err)
	}

	if len(keys) == 0 {
		return []*T{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, storage.Unavailable(err)
	}

	docs := make([]*T, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Entry deleted since the index was read
		}
		var doc T
		if err := storage.UnmarshalDoc([]byte(val.(string)), &doc); err != nil {
			continue // Skip invalid data
		}
		docs = append(docs, &doc)
	}

	return docs, nil
}

// Profile operations

func (s *Storage) GetProfile(ctx context.Context, email string) (*model.Profile, error) {
	return getDoc[model.Profile](ctx, s, profileKey(email), model.ErrProfileNotFound)
}

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	return saveDoc(ctx, s, profileKey(profile.Email), profileIndexKey(), profile)
}

func (s *Storage) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	return listDocs[model.Profile](ctx, s, profileIndexKey())
}

// Credential operations

func (s *Storage) GetCredential(ctx context.Context, email string) (string, error) {
	hash, err := s.client.Get(ctx, credentialKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrCredentialNotFound
		}
		return "", storage.Unavailable(err)
	}
	return hash, nil
}

func (s *Storage) SetCredential(ctx context.Context, email, hash string) error {
	if err := s.client.Set(ctx, credentialKey(email), hash, 0).Err(); err != nil {
		return storage.Unavailable(err)
	}
	return nil
}

// Clue operations

func (s *Storage) ListClues(ctx context.Context) ([]*model.Clue, error) {
	return listDocs[model.Clue](ctx, s, clueIndexKey())
}

func (s *Storage) SaveClue(ctx context.Context, clue *model.Clue) error {
	return saveDoc(ctx, s, clueKey(clue.ID), clueIndexKey(), clue)
}

func (s *Storage) DeleteClue(ctx context.Context, id string) error {
	key := clueKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, clueIndexKey(), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return storage.Unavailable(err)
	}
	return nil
}

// Report operations

func (s *Storage) GetReport(ctx context.Context, id string) (*model.Report, error) {
	return getDoc[model.Report](ctx, s, reportKey(id), model.ErrReportNotFound)
}

func (s *Storage) ListReports(ctx context.Context) ([]*model.Report, error) {
	return listDocs[model.Report](ctx, s, reportIndexKey())
}

func (s *Storage) SaveReport(ctx context.Context, report *model.Report) error {
	return saveDoc(ctx, s, reportKey(report.ID), reportIndexKey(), report)
}

// Singleton documents

func (s *Storage) GetContent(ctx context.Context) (model.SiteContent, error) {
	data, err := s.client.Get(ctx, contentKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrContentNotSet
		}
		return nil, storage.Unavailable(err)
	}

	var content model.SiteContent
	if err := storage.UnmarshalDoc(data, &content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *Storage) SetContent(ctx context.Context, content model.SiteContent) error {
	data, err := storage.MarshalDoc(content)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, contentKey(), data, 0).Err(); err != nil {
		return storage.Unavailable(err)
	}
	return nil
}

func (s *Storage) GetRules(ctx context.Context) (*model.GameRules, error) {
	return getDoc[model.GameRules](ctx, s, rulesKey(), model.ErrRulesNotSet)
}

func (s *Storage) SetRules(ctx context.Context, rules *model.GameRules) error {
	data, err := storage.MarshalDoc(rules)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, rulesKey(), data, 0).Err(); err != nil {
		return storage.Unavailable(err)
	}
	return nil
}

// Session operations

func (s *Storage) SessionEmail(ctx context.Context) (string, error) {
	email, err := s.client.Get(ctx, sessionKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrNoSession
		}
		return "", storage.Unavailable(err)
	}
	return email, nil
}

func (s *Storage) SetSessionEmail(ctx context.Context, email string) error {
	if err := s.client.Set(ctx, sessionKey(), email, 0).Err(); err != nil {
		return storage.Unavailable(err)
	}
	return nil
}

func (s *Storage) ClearSession(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey()).Err(); err != nil {
		return storage.Unavailable(err)
	}
	return nil
}

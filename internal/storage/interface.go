package storage

import (
	"context"

	"github.com/noirbureau/swanhunt/internal/model"
)

// Store defines the interface for data persistence. Both backends (remote
// and local) implement it, as does the failover facade, so callers never
// know which one answered.
type Store interface {
	// Profile operations
	GetProfile(ctx context.Context, email string) (*model.Profile, error)
	SaveProfile(ctx context.Context, profile *model.Profile) error
	ListProfiles(ctx context.Context) ([]*model.Profile, error)

	// Credential operations. Value is a bcrypt hash.
	GetCredential(ctx context.Context, email string) (string, error)
	SetCredential(ctx context.Context, email, hash string) error

	// Clue operations
	ListClues(ctx context.Context) ([]*model.Clue, error)
	SaveClue(ctx context.Context, clue *model.Clue) error
	DeleteClue(ctx context.Context, id string) error

	// Report operations
	GetReport(ctx context.Context, id string) (*model.Report, error)
	ListReports(ctx context.Context) ([]*model.Report, error)
	SaveReport(ctx context.Context, report *model.Report) error

	// Singleton documents
	GetContent(ctx context.Context) (model.SiteContent, error)
	SetContent(ctx context.Context, content model.SiteContent) error
	GetRules(ctx context.Context) (*model.GameRules, error)
	SetRules(ctx context.Context, rules *model.GameRules) error

	// Session operations (the currently signed-in email)
	SessionEmail(ctx context.Context) (string, error)
	SetSessionEmail(ctx context.Context, email string) error
	ClearSession(ctx context.Context) error
}

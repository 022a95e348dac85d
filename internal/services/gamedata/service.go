package gamedata

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/noirbureau/swanhunt/internal/dependencies/clock"
	"github.com/noirbureau/swanhunt/internal/model"
	"github.com/noirbureau/swanhunt/internal/notify"
	"github.com/noirbureau/swanhunt/internal/storage"
)

// Service implements the game-data operations: profiles, clues, reports,
// site content and rules. It talks only to the store interface, so the
// same semantics apply whichever backend is active.
type Service struct {
	store    storage.Store
	clock    clock.Clock
	notifier *notify.Sink
	logger   *slog.Logger
}

// New creates a game data service
func New(store storage.Store, clk clock.Clock, notifier *notify.Sink, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		clock:    clk,
		notifier: notifier,
		logger:   logger,
	}
}

// reportUnexpected publishes a backend error to the notification sink.
// Semantic sentinels are the caller's business and are not reported.
func (s *Service) reportUnexpected(op string, err error) {
	s.logger.Error("backend operation failed",
		slog.String("op", op),
		slog.String("error", err.Error()))
	s.notifier.Publish("Could not reach game data (" + op + ")")
}

// Profile operations

// GetProfile fetches a single profile by email
func (s *Service) GetProfile(ctx context.Context, email string) (*model.Profile, error) {
	email = model.NormalizeEmail(email)
	profile, err := s.store.GetProfile(ctx, email)
	if err != nil {
		if !errors.Is(err, model.ErrProfileNotFound) {
			s.reportUnexpected("get profile", err)
		}
		return nil, err
	}
	return profile, nil
}

// ListProfiles returns all profiles, most recent login first
func (s *Service) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	profiles, err := s.store.ListProfiles(ctx)
	if err != nil {
		s.reportUnexpected("list profiles", err)
		return nil, err
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].LoginTime.After(profiles[j].LoginTime)
	})
	return profiles, nil
}

// LogLogin records a login for the given identity, creating the profile on
// first sight and otherwise updating the login timestamp in place
func (s *Service) LogLogin(ctx context.Context, email, name string) (*model.Profile, error) {
	email = model.NormalizeEmail(email)
	now := s.clock.Now()

	profile, err := s.store.GetProfile(ctx, email)
	if errors.Is(err, model.ErrProfileNotFound) {
		profile = &model.Profile{
			Email:         email,
			Name:          name,
			GroupName:     "Unassigned",
			GroupMembers:  "None",
			CluesUnlocked: 1,
		}
	} else if err != nil {
		s.reportUnexpected("log login", err)
		return nil, err
	}

	profile.LoginTime = now
	if name != "" {
		profile.Name = name
	}

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		s.reportUnexpected("log login", err)
		return nil, err
	}
	return profile, nil
}

// LogAction stamps the profile's last-action telemetry. A missing profile
// is not an error: telemetry never blocks the action that triggered it.
func (s *Service) LogAction(ctx context.Context, email, action string) error {
	email = model.NormalizeEmail(email)

	profile, err := s.store.GetProfile(ctx, email)
	if errors.Is(err, model.ErrProfileNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	profile.LastAction = action
	profile.LastActionTime = s.clock.Now()
	return s.store.SaveProfile(ctx, profile)
}

// stampAction is LogAction in fire-and-forget form for use inside writes
func (s *Service) stampAction(ctx context.Context, email, action string) {
	if err := s.LogAction(ctx, email, action); err != nil {
		s.logger.Warn("failed to stamp last action",
			slog.String("email", email),
			slog.String("error", err.Error()))
	}
}

// Clue operations

// ListClues returns every clue, newest discovery first
func (s *Service) ListClues(ctx context.Context) ([]*model.Clue, error) {
	clues, err := s.store.ListClues(ctx)
	if err != nil {
		s.reportUnexpected("list clues", err)
		return nil, err
	}
	sortCluesByDate(clues)
	return clues, nil
}

// ListVisibleClues returns the clues on this player's board: global clues
// plus anything targeted at them or added by them, newest first
func (s *Service) ListVisibleClues(ctx context.Context, email string) ([]*model.Clue, error) {
	email = model.NormalizeEmail(email)

	clues, err := s.store.ListClues(ctx)
	if err != nil {
		s.reportUnexpected("list clues", err)
		return nil, err
	}

	visible := make([]*model.Clue, 0, len(clues))
	for _, c := range clues {
		if c.VisibleTo(email) {
			visible = append(visible, c)
		}
	}
	sortCluesByDate(visible)
	return visible, nil
}

// AddClueParams describes a clue to create
type AddClueParams struct {
	Title        string
	Description  string
	ImageURL     string
	Location     string
	DateFound    time.Time
	AddedBy      string
	TargetPlayer string
}

// AddClue creates a clue. The author is stored as given for the chief
// sentinel and normalized otherwise; an empty date means "found now".
func (s *Service) AddClue(ctx context.Context, params AddClueParams) (*model.Clue, error) {
	addedBy := params.AddedBy
	if addedBy != model.ChiefAuthor {
		addedBy = model.NormalizeEmail(addedBy)
	}

	dateFound := params.DateFound
	if dateFound.IsZero() {
		dateFound = s.clock.Now()
	}

	clue := &model.Clue{
		ID:           uuid.NewString(),
		Title:        params.Title,
		Description:  params.Description,
		ImageURL:     params.ImageURL,
		Location:     params.Location,
		DateFound:    dateFound,
		AddedBy:      addedBy,
		TargetPlayer: model.NormalizeEmail(params.TargetPlayer),
		Unlocked:     true,
	}

	if err := s.store.SaveClue(ctx, clue); err != nil {
		s.reportUnexpected("add clue", err)
		return nil, err
	}

	if addedBy != model.ChiefAuthor {
		s.stampAction(ctx, addedBy, "Added clue: "+clue.Title)
	}
	return clue, nil
}

// DeleteClue removes a clue by ID
func (s *Service) DeleteClue(ctx context.Context, id string) error {
	if err := s.store.DeleteClue(ctx, id); err != nil {
		s.reportUnexpected("delete clue", err)
		return err
	}
	return nil
}

// Report operations

// AddReport files a help report from a player
func (s *Service) AddReport(ctx context.Context, email, name, message string) (*model.Report, error) {
	email = model.NormalizeEmail(email)

	report := &model.Report{
		ID:        uuid.NewString(),
		UserEmail: email,
		UserName:  name,
		Message:   message,
		Timestamp: s.clock.Now(),
		Status:    model.ReportStatusNew,
	}

	if err := s.store.SaveReport(ctx, report); err != nil {
		s.reportUnexpected("add report", err)
		return nil, err
	}

	s.stampAction(ctx, email, "Sent report to the Chief")
	return report, nil
}

// ListReports returns all reports, newest first
func (s *Service) ListReports(ctx context.Context) ([]*model.Report, error) {
	reports, err := s.store.ListReports(ctx)
	if err != nil {
		s.reportUnexpected("list reports", err)
		return nil, err
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Timestamp.After(reports[j].Timestamp)
	})
	return reports, nil
}

// MarkReportRead moves a report to read. Already-read reports are left
// untouched; the status never moves back.
func (s *Service) MarkReportRead(ctx context.Context, id string) error {
	report, err := s.store.GetReport(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrReportNotFound) {
			s.reportUnexpected("mark report read", err)
		}
		return err
	}

	if report.Status == model.ReportStatusRead {
		return nil
	}

	report.Status = model.ReportStatusRead
	if err := s.store.SaveReport(ctx, report); err != nil {
		s.reportUnexpected("mark report read", err)
		return err
	}
	return nil
}

// Site content and rules

// GetSiteContent returns the editable site copy, seeding the defaults on
// first read of an empty backend
func (s *Service) GetSiteContent(ctx context.Context) (model.SiteContent, error) {
	content, err := s.store.GetContent(ctx)
	if errors.Is(err, model.ErrContentNotSet) {
		content = model.DefaultSiteContent()
		if err := s.store.SetContent(ctx, content); err != nil {
			s.reportUnexpected("seed site content", err)
			return nil, err
		}
		return content, nil
	}
	if err != nil {
		s.reportUnexpected("get site content", err)
		return nil, err
	}
	return content, nil
}

// SetSiteContent replaces the site copy wholesale
func (s *Service) SetSiteContent(ctx context.Context, content model.SiteContent) error {
	if err := s.store.SetContent(ctx, content); err != nil {
		s.reportUnexpected("set site content", err)
		return err
	}
	return nil
}

// GetRules returns the game rules, seeding the default text when unset
func (s *Service) GetRules(ctx context.Context) (*model.GameRules, error) {
	rules, err := s.store.GetRules(ctx)
	if errors.Is(err, model.ErrRulesNotSet) {
		rules = model.DefaultGameRules()
		if err := s.store.SetRules(ctx, rules); err != nil {
			s.reportUnexpected("seed rules", err)
			return nil, err
		}
		return rules, nil
	}
	if err != nil {
		s.reportUnexpected("get rules", err)
		return nil, err
	}
	return rules, nil
}

// SetRules replaces the rules text and stamps the update time
func (s *Service) SetRules(ctx context.Context, content string) (*model.GameRules, error) {
	rules := &model.GameRules{
		Content:     content,
		LastUpdated: s.clock.Now(),
	}
	if err := s.store.SetRules(ctx, rules); err != nil {
		s.reportUnexpected("set rules", err)
		return nil, err
	}
	return rules, nil
}

func sortCluesByDate(clues []*model.Clue) {
	sort.Slice(clues, func(i, j int) bool {
		return clues[i].DateFound.After(clues[j].DateFound)
	})
}

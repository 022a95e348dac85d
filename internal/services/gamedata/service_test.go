package gamedata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/noirbureau/swanhunt/internal/dependencies/mocks"
	"github.com/noirbureau/swanhunt/internal/model"
	"github.com/noirbureau/swanhunt/internal/notify"
	"github.com/noirbureau/swanhunt/internal/storage/memory"
	"github.com/noirbureau/swanhunt/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store   *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.store, s.clock, notify.New(), testutil.NopLogger())
	s.ctx = context.Background()
}

// Profile tests

func (s *ServiceSuite) TestLogLoginCreatesProfile() {
	profile, err := s.service.LogLogin(s.ctx, "Alice@Example.COM", "Alice")
	s.Require().NoError(err)

	s.Equal("alice@example.com", profile.Email)
	s.Equal("Alice", profile.Name)
	s.Equal("Unassigned", profile.GroupName)
	s.Equal("None", profile.GroupMembers)
	s.Equal(1, profile.CluesUnlocked)
	s.Equal(s.clock.CurrentTime, profile.LoginTime)
}

func (s *ServiceSuite) TestLogLoginUpdatesExisting() {
	_, err := s.service.LogLogin(s.ctx, "alice@example.com", "Alice")
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)

	profile, err := s.service.LogLogin(s.ctx, "ALICE@example.com", "")
	s.Require().NoError(err)
	s.Equal("Alice", profile.Name)
	s.Equal(s.clock.CurrentTime, profile.LoginTime)

	profiles, err := s.service.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Len(profiles, 1)
}

func (s *ServiceSuite) TestListProfilesSortedByLoginDesc() {
	_, _ = s.service.LogLogin(s.ctx, "first@example.com", "First")
	s.clock.Advance(time.Hour)
	_, _ = s.service.LogLogin(s.ctx, "second@example.com", "Second")

	profiles, err := s.service.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(profiles, 2)
	s.Equal("second@example.com", profiles[0].Email)
	s.Equal("first@example.com", profiles[1].Email)
}

func (s *ServiceSuite) TestLogActionMissingProfileIsNoop() {
	err := s.service.LogAction(s.ctx, "ghost@example.com", "did something")
	s.NoError(err)
}

func (s *ServiceSuite) TestLogActionStampsProfile() {
	_, _ = s.service.LogLogin(s.ctx, "alice@example.com", "Alice")
	s.clock.Advance(time.Minute)

	s.Require().NoError(s.service.LogAction(s.ctx, "alice@example.com", "Opened the board"))

	profile, err := s.service.GetProfile(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal("Opened the board", profile.LastAction)
	s.Equal(s.clock.CurrentTime, profile.LastActionTime)
}

// Clue tests

func (s *ServiceSuite) TestAddClueDefaults() {
	clue, err := s.service.AddClue(s.ctx, AddClueParams{
		Title:   "A white feather",
		AddedBy: model.ChiefAuthor,
	})
	s.Require().NoError(err)

	s.NotEmpty(clue.ID)
	s.True(clue.Unlocked)
	s.Equal(model.ChiefAuthor, clue.AddedBy)
	s.Equal(s.clock.CurrentTime, clue.DateFound)
}

func (s *ServiceSuite) TestAddClueNormalizesEmails() {
	clue, err := s.service.AddClue(s.ctx, AddClueParams{
		Title:        "Private tip",
		AddedBy:      " Bob@Example.com ",
		TargetPlayer: "ALICE@example.com",
	})
	s.Require().NoError(err)
	s.Equal("bob@example.com", clue.AddedBy)
	s.Equal("alice@example.com", clue.TargetPlayer)
}

func (s *ServiceSuite) TestAddClueStampsAuthorAction() {
	_, _ = s.service.LogLogin(s.ctx, "bob@example.com", "Bob")

	_, err := s.service.AddClue(s.ctx, AddClueParams{Title: "Footprint", AddedBy: "bob@example.com"})
	s.Require().NoError(err)

	profile, err := s.service.GetProfile(s.ctx, "bob@example.com")
	s.Require().NoError(err)
	s.Equal("Added clue: Footprint", profile.LastAction)
}

func (s *ServiceSuite) TestListVisibleClues() {
	_, _ = s.service.AddClue(s.ctx, AddClueParams{Title: "Global", AddedBy: model.ChiefAuthor})
	_, _ = s.service.AddClue(s.ctx, AddClueParams{Title: "For Alice", AddedBy: model.ChiefAuthor, TargetPlayer: "alice@example.com"})
	_, _ = s.service.AddClue(s.ctx, AddClueParams{Title: "Bob's own", AddedBy: "bob@example.com", TargetPlayer: "carol@example.com"})

	aliceClues, err := s.service.ListVisibleClues(s.ctx, "Alice@Example.com")
	s.Require().NoError(err)
	s.Len(aliceClues, 2)

	bobClues, err := s.service.ListVisibleClues(s.ctx, "bob@example.com")
	s.Require().NoError(err)
	s.Len(bobClues, 2)

	carolClues, err := s.service.ListVisibleClues(s.ctx, "carol@example.com")
	s.Require().NoError(err)
	s.Len(carolClues, 2)

	daveClues, err := s.service.ListVisibleClues(s.ctx, "dave@example.com")
	s.Require().NoError(err)
	s.Len(daveClues, 1)
	s.Equal("Global", daveClues[0].Title)
}

func (s *ServiceSuite) TestCluesSortedNewestFirst() {
	_, _ = s.service.AddClue(s.ctx, AddClueParams{Title: "Old", AddedBy: model.ChiefAuthor})
	s.clock.Advance(time.Hour)
	_, _ = s.service.AddClue(s.ctx, AddClueParams{Title: "New", AddedBy: model.ChiefAuthor})

	clues, err := s.service.ListClues(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(clues, 2)
	s.Equal("New", clues[0].Title)
	s.Equal("Old", clues[1].Title)
}

func (s *ServiceSuite) TestDeleteClue() {
	clue, _ := s.service.AddClue(s.ctx, AddClueParams{Title: "Mistake", AddedBy: model.ChiefAuthor})

	s.Require().NoError(s.service.DeleteClue(s.ctx, clue.ID))

	clues, err := s.service.ListClues(s.ctx)
	s.Require().NoError(err)
	s.Empty(clues)
}

// Report tests

func (s *ServiceSuite) TestAddReport() {
	report, err := s.service.AddReport(s.ctx, "Alice@Example.com", "Alice", "I found the feather!")
	s.Require().NoError(err)

	s.NotEmpty(report.ID)
	s.Equal("alice@example.com", report.UserEmail)
	s.Equal(model.ReportStatusNew, report.Status)
	s.Equal(s.clock.CurrentTime, report.Timestamp)
}

func (s *ServiceSuite) TestReportsSortedNewestFirst() {
	_, _ = s.service.AddReport(s.ctx, "a@example.com", "A", "first")
	s.clock.Advance(time.Minute)
	_, _ = s.service.AddReport(s.ctx, "b@example.com", "B", "second")

	reports, err := s.service.ListReports(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(reports, 2)
	s.Equal("second", reports[0].Message)
}

func (s *ServiceSuite) TestMarkReportReadIsMonotonic() {
	report, _ := s.service.AddReport(s.ctx, "a@example.com", "A", "help")

	s.Require().NoError(s.service.MarkReportRead(s.ctx, report.ID))

	reports, _ := s.service.ListReports(s.ctx)
	s.Equal(model.ReportStatusRead, reports[0].Status)

	// Second call is a no-op, not an error
	s.Require().NoError(s.service.MarkReportRead(s.ctx, report.ID))
	reports, _ = s.service.ListReports(s.ctx)
	s.Equal(model.ReportStatusRead, reports[0].Status)
}

func (s *ServiceSuite) TestMarkReportReadNotFound() {
	err := s.service.MarkReportRead(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrReportNotFound)
}

// Content and rules tests

func (s *ServiceSuite) TestGetSiteContentSeedsDefaults() {
	content, err := s.service.GetSiteContent(s.ctx)
	s.Require().NoError(err)
	s.Equal("The Missing Swan", content["intro_title"])

	// Seeded into the backend, not just returned
	stored, err := s.store.GetContent(s.ctx)
	s.Require().NoError(err)
	s.Equal(content["intro_title"], stored["intro_title"])
}

func (s *ServiceSuite) TestSetSiteContent() {
	content := model.SiteContent{"intro_title": "The Found Swan"}
	s.Require().NoError(s.service.SetSiteContent(s.ctx, content))

	got, err := s.service.GetSiteContent(s.ctx)
	s.Require().NoError(err)
	s.Equal("The Found Swan", got["intro_title"])
}

func (s *ServiceSuite) TestGetRulesSeedsDefaults() {
	rules, err := s.service.GetRules(s.ctx)
	s.Require().NoError(err)
	s.Contains(rules.Content, "Look for clues carefully")
}

func (s *ServiceSuite) TestSetRulesStampsUpdateTime() {
	rules, err := s.service.SetRules(s.ctx, "New rules.")
	s.Require().NoError(err)
	s.Equal("New rules.", rules.Content)
	s.Equal(s.clock.CurrentTime, rules.LastUpdated)

	got, err := s.service.GetRules(s.ctx)
	s.Require().NoError(err)
	s.Equal("New rules.", got.Content)
}

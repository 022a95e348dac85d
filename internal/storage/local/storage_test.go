package local

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/noirbureau/swanhunt/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	st, err := Open(":memory:")
	s.Require().NoError(err)
	s.storage = st
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

// Profile tests

func (s *StorageSuite) TestSaveAndGetProfile() {
	profile := &model.Profile{
		Email:         "alice@example.com",
		Name:          "Alice",
		GroupName:     "Unassigned",
		GroupMembers:  "None",
		LoginTime:     time.Now().UTC(),
		CluesUnlocked: 1,
	}

	err := s.storage.SaveProfile(s.ctx, profile)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetProfile(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(profile.Name, retrieved.Name)
	s.Equal(1, retrieved.CluesUnlocked)
}

func (s *StorageSuite) TestGetProfileNotFound() {
	_, err := s.storage.GetProfile(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *StorageSuite) TestListProfiles() {
	_ = s.storage.SaveProfile(s.ctx, &model.Profile{Email: "a@example.com"})
	_ = s.storage.SaveProfile(s.ctx, &model.Profile{Email: "b@example.com"})

	profiles, err := s.storage.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Len(profiles, 2)
}

func (s *StorageSuite) TestListProfilesEmpty() {
	profiles, err := s.storage.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Empty(profiles)
}

// Credential tests

func (s *StorageSuite) TestSetAndGetCredential() {
	s.Require().NoError(s.storage.SetCredential(s.ctx, "alice@example.com", "hash123"))

	hash, err := s.storage.GetCredential(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal("hash123", hash)
}

func (s *StorageSuite) TestSetCredentialOverwrites() {
	_ = s.storage.SetCredential(s.ctx, "alice@example.com", "old")
	_ = s.storage.SetCredential(s.ctx, "alice@example.com", "new")

	hash, err := s.storage.GetCredential(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal("new", hash)
}

func (s *StorageSuite) TestGetCredentialNotFound() {
	_, err := s.storage.GetCredential(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrCredentialNotFound)
}

// Clue tests

func (s *StorageSuite) TestSaveAndListClues() {
	s.Require().NoError(s.storage.SaveClue(s.ctx, &model.Clue{ID: "c1", Title: "Feather"}))
	s.Require().NoError(s.storage.SaveClue(s.ctx, &model.Clue{ID: "c2", Title: "Footprint"}))

	clues, err := s.storage.ListClues(s.ctx)
	s.Require().NoError(err)
	s.Len(clues, 2)
}

func (s *StorageSuite) TestSaveClueReplacesByID() {
	_ = s.storage.SaveClue(s.ctx, &model.Clue{ID: "c1", Title: "Feather"})
	_ = s.storage.SaveClue(s.ctx, &model.Clue{ID: "c1", Title: "White Feather"})

	clues, err := s.storage.ListClues(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(clues, 1)
	s.Equal("White Feather", clues[0].Title)
}

func (s *StorageSuite) TestDeleteClue() {
	_ = s.storage.SaveClue(s.ctx, &model.Clue{ID: "c1"})
	_ = s.storage.SaveClue(s.ctx, &model.Clue{ID: "c2"})

	s.Require().NoError(s.storage.DeleteClue(s.ctx, "c1"))

	clues, err := s.storage.ListClues(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(clues, 1)
	s.Equal("c2", clues[0].ID)
}

// Report tests

func (s *StorageSuite) TestSaveAndGetReport() {
	report := &model.Report{ID: "r1", Message: "help", Status: model.ReportStatusNew}
	s.Require().NoError(s.storage.SaveReport(s.ctx, report))

	retrieved, err := s.storage.GetReport(s.ctx, "r1")
	s.Require().NoError(err)
	s.Equal("help", retrieved.Message)
}

func (s *StorageSuite) TestGetReportNotFound() {
	_, err := s.storage.GetReport(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrReportNotFound)
}

func (s *StorageSuite) TestSaveReportUpdatesStatus() {
	_ = s.storage.SaveReport(s.ctx, &model.Report{ID: "r1", Status: model.ReportStatusNew})
	_ = s.storage.SaveReport(s.ctx, &model.Report{ID: "r1", Status: model.ReportStatusRead})

	retrieved, err := s.storage.GetReport(s.ctx, "r1")
	s.Require().NoError(err)
	s.Equal(model.ReportStatusRead, retrieved.Status)

	reports, err := s.storage.ListReports(s.ctx)
	s.Require().NoError(err)
	s.Len(reports, 1)
}

// Singleton document tests

func (s *StorageSuite) TestContentLifecycle() {
	_, err := s.storage.GetContent(s.ctx)
	s.ErrorIs(err, model.ErrContentNotSet)

	s.Require().NoError(s.storage.SetContent(s.ctx, model.DefaultSiteContent()))

	content, err := s.storage.GetContent(s.ctx)
	s.Require().NoError(err)
	s.Equal("The Missing Swan", content["intro_title"])
}

func (s *StorageSuite) TestRulesLifecycle() {
	_, err := s.storage.GetRules(s.ctx)
	s.ErrorIs(err, model.ErrRulesNotSet)

	s.Require().NoError(s.storage.SetRules(s.ctx, &model.GameRules{Content: "Play fair."}))

	rules, err := s.storage.GetRules(s.ctx)
	s.Require().NoError(err)
	s.Equal("Play fair.", rules.Content)
}

// Session tests

func (s *StorageSuite) TestSessionLifecycle() {
	_, err := s.storage.SessionEmail(s.ctx)
	s.ErrorIs(err, model.ErrNoSession)

	s.Require().NoError(s.storage.SetSessionEmail(s.ctx, "alice@example.com"))

	email, err := s.storage.SessionEmail(s.ctx)
	s.Require().NoError(err)
	s.Equal("alice@example.com", email)

	s.Require().NoError(s.storage.ClearSession(s.ctx))

	_, err = s.storage.SessionEmail(s.ctx)
	s.ErrorIs(err, model.ErrNoSession)
}

// Durability

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hunt.db")
	ctx := context.Background()

	st, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.SaveProfile(ctx, &model.Profile{Email: "alice@example.com", Name: "Alice"}); err != nil {
		t.Fatal(err)
	}
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	st, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	profile, err := st.GetProfile(ctx, "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if profile.Name != "Alice" {
		t.Fatalf("expected Alice, got %q", profile.Name)
	}
}

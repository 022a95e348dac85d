package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))

	// Idempotent
	once := NormalizeEmail("  Alice@Example.COM ")
	assert.Equal(t, once, NormalizeEmail(once))
}

func TestClueVisibleTo(t *testing.T) {
	tests := []struct {
		name    string
		clue    Clue
		email   string
		visible bool
	}{
		{
			name:    "global clue visible to anyone",
			clue:    Clue{AddedBy: ChiefAuthor},
			email:   "alice@example.com",
			visible: true,
		},
		{
			name:    "targeted clue visible to target",
			clue:    Clue{AddedBy: ChiefAuthor, TargetPlayer: "alice@example.com"},
			email:   "alice@example.com",
			visible: true,
		},
		{
			name:    "targeted clue hidden from others",
			clue:    Clue{AddedBy: ChiefAuthor, TargetPlayer: "alice@example.com"},
			email:   "bob@example.com",
			visible: false,
		},
		{
			name:    "author always sees their own clue",
			clue:    Clue{AddedBy: "bob@example.com", TargetPlayer: "alice@example.com"},
			email:   "bob@example.com",
			visible: true,
		},
		{
			name:    "player-added global clue visible to anyone",
			clue:    Clue{AddedBy: "bob@example.com"},
			email:   "carol@example.com",
			visible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.clue.VisibleTo(tt.email))
		})
	}
}

func TestDefaults(t *testing.T) {
	content := DefaultSiteContent()
	assert.Equal(t, "The Missing Swan", content["intro_title"])
	assert.NotEmpty(t, content["monologue_default"])

	rules := DefaultGameRules()
	assert.Contains(t, rules.Content, "Look for clues carefully")
	assert.True(t, rules.LastUpdated.IsZero())
}

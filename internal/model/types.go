package model

import (
	"strings"
	"time"
)

// ChiefAuthor is the sentinel author for staff-added clues. Clues added by
// the chief with no target player are visible to every detective.
const ChiefAuthor = "CHIEF"

// ReportStatus is the workflow state of a help report
type ReportStatus string

const (
	ReportStatusNew  ReportStatus = "new"
	ReportStatusRead ReportStatus = "read"
)

// Profile is a detective's player record, keyed by normalized email.
// LastAction and LastActionTime are advisory telemetry only; they never
// gate access to anything.
type Profile struct {
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	GroupName      string    `json:"groupName"`
	GroupMembers   string    `json:"groupMembers"`
	LoginTime      time.Time `json:"loginTime"`
	LastAction     string    `json:"lastAction"`
	LastActionTime time.Time `json:"lastActionTime"`
	CluesUnlocked  int       `json:"cluesUnlocked"`
}

// Clue is a piece of evidence on the board. A non-empty TargetPlayer makes
// the clue private to that player (and its creator); an empty TargetPlayer
// makes it visible to everyone regardless of author.
type Clue struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Location     string    `json:"location"`
	DateFound    time.Time `json:"dateFound"`
	AddedBy      string    `json:"addedBy"`
	TargetPlayer string    `json:"targetPlayer"`
	Unlocked     bool      `json:"isUnlocked"`
}

// VisibleTo reports whether the clue appears on this player's board
func (c *Clue) VisibleTo(email string) bool {
	return c.TargetPlayer == "" || c.TargetPlayer == email || c.AddedBy == email
}

// Report is a help request sent to the chief. Status only ever moves
// new -> read.
type Report struct {
	ID        string       `json:"id"`
	UserEmail string       `json:"userEmail"`
	UserName  string       `json:"userName"`
	Message   string       `json:"message"`
	Timestamp time.Time    `json:"timestamp"`
	Status    ReportStatus `json:"status"`
}

// SiteContent is the singleton string->string mapping of editable page copy
// (headings, intro text, video URL)
type SiteContent map[string]string

// GameRules is the singleton free-text rules document. A zero LastUpdated
// means the rules have never been edited.
type GameRules struct {
	Content     string    `json:"content"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// NormalizeEmail canonicalizes an email for use as a storage key.
// Normalization is idempotent.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DefaultSiteContent returns the copy served before staff have edited
// anything
func DefaultSiteContent() SiteContent {
	return SiteContent{
		"intro_title":       "The Missing Swan",
		"intro_subtitle":    "The Big Mystery",
		"intro_desc":        "Someone has taken the city's mascot. Can you help find him?",
		"intro_video_url":   "https://www.w3schools.com/html/mov_bbb.mp4",
		"manifest_heading":  "The Evidence Board",
		"monologue_default": "The mystery started on a rainy day. Swan was gone, and I needed to find out why.",
		"login_heading":     "Detective Login",
		"intake_heading":    "New Detective Sign-In",
	}
}

// DefaultGameRules returns the rules shown before staff have written any
func DefaultGameRules() *GameRules {
	return &GameRules{
		Content: "1. Look for clues carefully.\n2. Work together with your team.\n3. Be the best detective you can be!",
	}
}

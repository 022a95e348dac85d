package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Profile:
		o.printProfile(v)
	case []Profile:
		o.printProfiles(v)
	case AuthResult:
		o.printAuthResult(v)
	case Clue:
		o.printClue(v)
	case []Clue:
		o.printClues(v)
	case Report:
		o.printReport(v)
	case []Report:
		o.printReports(v)
	case SiteContent:
		o.printSiteContent(v)
	case Rules:
		o.printRules(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Profile response type (matches API)
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

// AuthResult combines session token and profile
type AuthResult struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// Clue response type
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

// Report response type
type Report struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"userEmail"`
	UserName  string    `json:"userName"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// SiteContent response type
type SiteContent map[string]string

// Rules response type
type Rules struct {
	Content     string    `json:"content"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

func (o *Output) printProfile(p Profile) {
	fmt.Printf("Detective: %s (%s)\n", p.Name, p.Email)
	fmt.Printf("Group: %s (%s)\n", p.GroupName, p.GroupMembers)
	fmt.Printf("Clues Unlocked: %d\n", p.CluesUnlocked)
	if !p.LoginTime.IsZero() {
		fmt.Printf("Last Login: %s\n", p.LoginTime.Format(time.RFC1123))
	}
	if p.LastAction != "" {
		fmt.Printf("Last Action: %s (%s)\n", p.LastAction, p.LastActionTime.Format(time.RFC1123))
	}
}

func (o *Output) printProfiles(ps []Profile) {
	fmt.Printf("Detectives (%d):\n", len(ps))
	for _, p := range ps {
		fmt.Printf("  - %s (%s) - %s\n", p.Name, p.Email, p.GroupName)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printProfile(a.Profile)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printClue(c Clue) {
	fmt.Printf("Clue: %s (%s)\n", c.Title, c.ID)
	if c.Description != "" {
		fmt.Printf("Description: %s\n", c.Description)
	}
	if c.Location != "" {
		fmt.Printf("Location: %s\n", c.Location)
	}
	if c.ImageURL != "" {
		fmt.Printf("Image: %s\n", c.ImageURL)
	}
	fmt.Printf("Added By: %s\n", c.AddedBy)
	if c.TargetPlayer != "" {
		fmt.Printf("For: %s\n", c.TargetPlayer)
	}
	fmt.Printf("Found: %s\n", c.DateFound.Format(time.RFC1123))
}

func (o *Output) printClues(cs []Clue) {
	fmt.Printf("Clues (%d):\n", len(cs))
	for _, c := range cs {
		target := ""
		if c.TargetPlayer != "" {
			target = fmt.Sprintf(" [for %s]", c.TargetPlayer)
		}
		fmt.Printf("  - %s (%s) by %s%s\n", c.Title, c.ID, c.AddedBy, target)
	}
}

func (o *Output) printReport(r Report) {
	fmt.Printf("Report: %s [%s]\n", r.ID, r.Status)
	fmt.Printf("From: %s (%s)\n", r.UserName, r.UserEmail)
	fmt.Printf("Sent: %s\n", r.Timestamp.Format(time.RFC1123))
	fmt.Printf("Message: %s\n", r.Message)
}

func (o *Output) printReports(rs []Report) {
	fmt.Printf("Reports (%d):\n", len(rs))
	for _, r := range rs {
		fmt.Printf("  - [%s] %s from %s: %s\n", r.Status, r.ID, r.UserName, r.Message)
	}
}

func (o *Output) printSiteContent(c SiteContent) {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %s\n", k, c[k])
	}
}

func (o *Output) printRules(r Rules) {
	fmt.Println(r.Content)
	if !r.LastUpdated.IsZero() {
		fmt.Printf("\nLast updated: %s\n", r.LastUpdated.Format(time.RFC1123))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
	fmt.Printf("Mode: %s\n", h.Mode)
}

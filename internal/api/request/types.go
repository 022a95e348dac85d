package request

import "time"

// RegisterRequest is the body for POST /auth/register
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Name            string `json:"name"`
}

// LoginRequest is the body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddClueRequest is the body for POST /clues and POST /admin/clues
type AddClueRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	Location     string    `json:"location"`
	DateFound    time.Time `json:"date_found"`
	TargetPlayer string    `json:"target_player"`
}

// AddReportRequest is the body for POST /reports
type AddReportRequest struct {
	Message string `json:"message"`
}

// UpdateRulesRequest is the body for PUT /admin/rules
type UpdateRulesRequest struct {
	Content string `json:"content"`
}

// UpdateContentRequest is the body for PUT /admin/content
type UpdateContentRequest struct {
	Content map[string]string `json:"content"`
}

// NarrateRequest is the body for POST /narrate
type NarrateRequest struct {
	Context string `json:"context"`
}

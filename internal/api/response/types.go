package response

import "github.com/noirbureau/swanhunt/internal/model"

// AuthResponse is returned from register and login
type AuthResponse struct {
	Token   string         `json:"token"`
	Profile *model.Profile `json:"profile"`
}

// NarrateResponse carries a monologue line
type NarrateResponse struct {
	Line string `json:"line"`
}

// HealthResponse is returned from the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

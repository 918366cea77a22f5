package config

import (
	"strings"
	"time"
)

// APIConfig contains configuration for the upstream library-management
// REST API the client talks to.
type APIConfig struct {
	// BaseURL is the base URL of the API, including the common path prefix
	// (e.g., "https://library.example.com/api").
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`

	// Timeout is the per-request timeout applied to every outbound call.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	// LoginPath is the client-side location users are sent to when a request
	// comes back 401 or a protected navigation has no session.
	LoginPath string `env:"API_LOGIN_PATH" envDefault:"/login"`

	// HomePath is the fallback location for navigations rejected on role.
	HomePath string `env:"API_HOME_PATH" envDefault:"/"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")

	if a.Timeout <= 0 {
		a.Timeout = 10 * time.Second
	}
	if a.LoginPath == "" {
		a.LoginPath = "/login"
	}
	if a.HomePath == "" {
		a.HomePath = "/"
	}
}

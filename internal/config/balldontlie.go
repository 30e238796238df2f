package config

const (
	envBdlBaseURL = "BALLDONTLIE_BASE_URL"
	envBdlAPIKey  = "BALLDONTLIE_API_KEY"

	defaultBdlBaseURL = "https://api.balldontlie.io/v1"
)

// BalldontlieConfig controls how we talk to the balldontlie API.
// The API key is sourced from the environment only; it is never
// hard-coded or logged.
type BalldontlieConfig struct {
	BaseURL string
	APIKey  string
}

func loadBalldontlie() BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL: envOrDefault(envBdlBaseURL, defaultBdlBaseURL),
		APIKey:  envOrDefault(envBdlAPIKey, ""),
	}
}

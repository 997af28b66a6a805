package apiclient

// Config holds API client configuration.
type Config struct {
	// BaseURL is the root of the REST API, including the /api prefix.
	BaseURL string `env:"RESUMEFORGE_API_BASE_URL" envDefault:"https://api.resumeforge.io/api"`
}

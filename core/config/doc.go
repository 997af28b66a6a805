// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/resumeforge/resumeforge-go/core/config"
//
//	type APIConfig struct {
//		BaseURL string `env:"RESUMEFORGE_API_BASE_URL" envDefault:"https://api.resumeforge.io/api"`
//		Timeout int    `env:"RESUMEFORGE_API_TIMEOUT" envDefault:"30"`
//	}
//
//	func main() {
//		var cfg APIConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// Each configuration type is loaded only once per application lifetime;
// loading the same type twice always yields identical values. Different
// types are cached independently.
package config

package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = make(map[string]any)

	// .env files are loaded once before the first Parse call so local
	// development overrides behave the same as real environment variables.
	dotenvOnce sync.Once
)

// ErrParseFailed is returned when environment variables cannot be parsed
// into the target configuration struct.
var ErrParseFailed = errors.New("failed to parse environment variables")

// Load parses environment variables into cfg using `env` struct tags.
// Each configuration type is parsed once per process lifetime; subsequent
// calls for the same type receive the cached value, so two loads of the
// same type always observe identical configuration.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is the normal production case.
		_ = godotenv.Load()
	})

	mu.Lock()
	defer mu.Unlock()

	key := fmt.Sprintf("%T", *cfg)
	if cached, ok := cache[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseFailed, err)
	}

	cache[key] = *cfg
	return nil
}

// MustLoad is like Load but panics on failure. Intended for application
// startup where missing required configuration should abort the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

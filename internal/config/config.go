package config

import (
	"errors"
	"os"
)

type Config struct {
	Port        string
	FrontendURL string
	SupabaseURL string
	SupabaseKey string
}

// Load reads configuration from the environment. The Supabase settings have
// no default: a missing URL or key fails the process at startup instead of
// erroring on the first store call.
func Load() (Config, error) {
	cfg := Config{
		Port:        getenv("PORT", "3001"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:3000"),
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_ANON_KEY"),
	}
	if cfg.SupabaseURL == "" {
		return Config{}, errors.New("SUPABASE_URL is required")
	}
	if cfg.SupabaseKey == "" {
		return Config{}, errors.New("SUPABASE_ANON_KEY is required")
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

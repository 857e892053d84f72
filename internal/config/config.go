// Package config loads application configuration from environment
// variables.
package config

import (
	"log"
	"os"
)

// Config holds all runtime configuration. The two backend credentials
// (project URL and public API key) are the only values every deployment
// must supply; the JWT secret, email and broker settings unlock optional
// features when present.
type Config struct {
	Env               string // deployment environment ("production" enables the prod redirect URL)
	Port              string // HTTP port to listen on
	SupabaseURL       string // backend project URL
	SupabaseAnonKey   string // backend public (anon) API key
	SupabaseJWTSecret string // secret verifying backend session tokens (optional)
	SESRegion         string // AWS region for outbound email (optional)
	SESFromEmail      string // from-address for outbound email; empty disables email
	SESFromName       string // display name for outbound email
}

// Load reads configuration from the environment. Required values are
// enforced by must(): a deployment missing its backend credentials fails
// at startup rather than on first use.
func Load() Config {
	return Config{
		Env:               getenv("APP_ENV", "development"),
		Port:              getenv("APP_PORT", "8080"),
		SupabaseURL:       must("SUPABASE_URL"),
		SupabaseAnonKey:   must("SUPABASE_ANON_KEY"),
		SupabaseJWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		SESRegion:         getenv("SES_REGION", "us-east-1"),
		SESFromEmail:      os.Getenv("SES_FROM_EMAIL"),
		SESFromName:       getenv("SES_FROM_NAME", "Famtivity"),
	}
}

// must retrieves a required environment variable and exits with a fatal
// log message when it is unset or empty.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

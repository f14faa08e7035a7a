package config

import "os"

// Server captures process level configuration.
type Server struct {
	Addr            string
	DatabaseURL     string
	AdminToken      string
	Development     bool
	PersonsDisabled bool
	SeedDemoData    bool
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CONTACTBOOK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	adminToken := os.Getenv("ADMIN_TOKEN")
	if adminToken == "" {
		// Use a default for development - should be overridden in production
		adminToken = "dev-admin-token-change-in-production"
	}

	return Server{
		Addr:            addr,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		AdminToken:      adminToken,
		Development:     os.Getenv("DEV_MODE") == "true",
		PersonsDisabled: os.Getenv("PERSONS_DISABLED") == "true",
		SeedDemoData:    os.Getenv("SEED_DEMO_DATA") == "true",
	}
}

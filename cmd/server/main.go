package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	countryhandler "contactbook/internal/country/handler"
	countrymetrics "contactbook/internal/country/metrics"
	countryservice "contactbook/internal/country/service"
	countrystore "contactbook/internal/country/store"
	personhandler "contactbook/internal/person/handler"
	personmetrics "contactbook/internal/person/metrics"
	personservice "contactbook/internal/person/service"
	personstore "contactbook/internal/person/store"
	"contactbook/internal/platform/config"
	"contactbook/internal/platform/database"
	"contactbook/internal/platform/httpserver"
	"contactbook/internal/platform/logger"
	"contactbook/internal/seeder"
	httptransport "contactbook/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing contactbook",
		"addr", cfg.Addr,
		"persons_disabled", cfg.PersonsDisabled,
		"development", cfg.Development,
	)

	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	pool, err := database.New(dbCfg)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close() //nolint:errcheck // shutdown path

	if err := pool.Migrate(context.Background()); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	var countries countryservice.CountryStore
	var persons personservice.PersonStore
	if pool != nil {
		countries = countrystore.NewPostgres(pool.DB())
		persons = personstore.NewPostgres(pool.DB())
		log.Info("using postgres stores")
	} else {
		countries = countrystore.NewInMemory()
		persons = personstore.NewInMemory()
		log.Info("using in-memory stores")
	}

	countrySvc := countryservice.New(countries, countrymetrics.New())
	personSvc := personservice.New(persons, countrySvc, personmetrics.New())

	if cfg.SeedDemoData {
		if err := seeder.Seed(context.Background(), countrySvc, personSvc); err != nil {
			log.Error("seeding demo data failed", "error", err)
			os.Exit(1)
		}
		log.Info("seeded demo data")
	}

	router := httptransport.NewRouter(
		personhandler.New(personSvc, log),
		countryhandler.New(countrySvc, log),
		pool,
		log,
		httptransport.Options{
			AdminToken:      cfg.AdminToken,
			Development:     cfg.Development,
			PersonsDisabled: cfg.PersonsDisabled,
		},
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

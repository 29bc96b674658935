package main

import (
	_ "embed"
	"flag"
	"os"
	"strings"

	"edgeorigin/pkg/config"
	"edgeorigin/pkg/log"
	"edgeorigin/pkg/routing"
	"edgeorigin/pkg/server"
)

//go:embed VERSION
var Version string

func main() {
	// Initialize logger first
	_ = log.Logger

	configPath := flag.String("config", "", "Path to YAML config file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	defaultPOP := flag.String("default-pop", "", "POP code assumed when a request has neither pop nor region (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	noMetrics := flag.Bool("no-metrics", false, "Disable the /metrics endpoint")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("config", *configPath).Msg("Failed to load configuration")
	}

	if *addr != "" {
		cfg.Addr = *addr
	}
	if *defaultPOP != "" {
		cfg.DefaultPOP = *defaultPOP
	}
	if *debug {
		cfg.Debug = true
	}
	if *noMetrics {
		cfg.MetricsEnabled = false
	}

	if cfg.Debug {
		log.SetDebugMode()
		log.Debug().Msg("Debug mode enabled")
	}

	if cfg.DefaultPOP != "" && !routing.KnownPOP(cfg.DefaultPOP) {
		log.Warn().
			Str("default_pop", cfg.DefaultPOP).
			Str("region", string(routing.RegionForPOP(cfg.DefaultPOP))).
			Msg("Configured default POP is not in the table; requests without a POP will use the default region")
	}

	resolver := routing.NewResolver(nil)
	log.Info().
		Int("catalog_entries", len(resolver.Catalog().Entries())).
		Int("pop_codes", len(routing.POPs())).
		Msg("Origin catalog loaded")

	srv := server.NewServer(resolver, server.Options{
		Version:         strings.TrimSpace(Version),
		DefaultPOP:      cfg.DefaultPOP,
		MetricsEnabled:  cfg.MetricsEnabled,
		ShutdownTimeout: cfg.ShutdownTimeout,
	})

	if err := srv.Start(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}

	os.Exit(0)
}

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/de-tools/livecost/pkg/config"
	"github.com/de-tools/livecost/pkg/server"
	"github.com/de-tools/livecost/pkg/services/calc"
	"github.com/de-tools/livecost/pkg/services/report"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "1.0.0"

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the live-stream cost calculator web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file (yaml, toml, json or ini); LIVECOST_* env vars override it")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	loc, err := cfg.Report.Location()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := calc.NewService(calc.Options{
		Generator: report.NewGenerator(loc),
		Metrics:   calc.NewMetrics(reg),
	})

	logger.Info().
		Str("version", version).
		Str("timezone", loc.String()).
		Str("static_dir", cfg.Server.StaticDir).
		Msgf("live-stream cost calculator listening on http://%s", cfg.Server.Addr())

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		StaticDir:       cfg.Server.StaticDir,
		Version:         version,
		Dependencies: server.Dependencies{
			Calculator: svc,
			Gatherer:   reg,
			Logger:     logger,
		},
	})

	return api.Start()
}

func newLogger(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := cfg.ZerologLevel()
	if err != nil {
		return zerolog.Logger{}, err
	}

	var logger zerolog.Logger
	if cfg.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(level).With().Timestamp().Logger(), nil
}

package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/livecost/pkg/handlers/calc"
	"github.com/de-tools/livecost/pkg/services/calc"

	livecostmiddleware "github.com/de-tools/livecost/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Calculator calc.Service
	Gatherer   prometheus.Gatherer
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	StaticDir       string
	Version         string
	Dependencies    Dependencies
}

func NewWebAPI(config Config) *WebAPI {
	logger := config.Dependencies.Logger
	router := ConfigureRouter(config)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: timeout,
	}
}

func ConfigureRouter(config Config) *chi.Mux {
	logger := config.Dependencies.Logger
	calcHandler := handlers.NewHandler(config.Dependencies.Calculator, config.Version)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(livecostmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Post("/calc", calcHandler.Calculate)
		r.Post("/report", calcHandler.DownloadReport)
		r.Get("/health", calcHandler.Health)
	})

	if config.Dependencies.Gatherer != nil {
		router.Method(http.MethodGet, "/metrics",
			promhttp.HandlerFor(config.Dependencies.Gatherer, promhttp.HandlerOpts{}))
	}

	if config.StaticDir != "" {
		router.Method(http.MethodGet, "/*",
			livecostmiddleware.Static(config.StaticDir, http.HandlerFunc(calcHandler.NotFound)))
	}

	router.NotFound(calcHandler.NotFound)
	router.MethodNotAllowed(calcHandler.NotFound)

	return router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-shutdown:
		w.logger.Info().Str("signal", sig.String()).Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	w.logger.Info().Msg("server stopped")
	return nil
}

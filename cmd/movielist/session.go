package main

import (
	"context"
	"log/slog"
	"time"

	"movielist/internal/config"
	"movielist/internal/logging"
	"movielist/internal/movie"
	"movielist/internal/trace"
)

// session wires the store and its ambient services for one run.
type session struct {
	ID     string
	Store  *movie.Store
	Logger *slog.Logger

	tracer   *trace.Tracer
	closeLog func() error
}

// openSession resolves configuration (flags over environment), then builds
// the logger, tracer and seeded store.
func openSession(ctx context.Context, opts options) (*session, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	id := trace.NewSessionID()
	logger = logger.With("session", id)

	seed, err := movie.LoadSeed(cfg.SeedFile)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	tracer, err := trace.NewOTLPTracer(ctx, id)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
		tracer = nil
	}

	storeOpts := []movie.Option{movie.WithLogger(logger)}
	if tracer != nil {
		storeOpts = append(storeOpts, movie.WithObserver(tracer))
	}

	logger.Info("session started",
		"seed_file", cfg.SeedFile,
		"movies", len(seed),
		"tracing", tracer.Enabled(),
	)

	return &session{
		ID:       id,
		Store:    movie.NewStore(seed, storeOpts...),
		Logger:   logger,
		tracer:   tracer,
		closeLog: closeLog,
	}, nil
}

func resolveConfig(opts options) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	if opts.seedFile != "" {
		cfg.SeedFile = opts.seedFile
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.logLevel != "" {
		lvl, err := config.ParseLevel(opts.logLevel)
		if err != nil {
			return config.Config{}, err
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// Close flushes traces and closes the log file.
func (s *session) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.tracer.Shutdown(ctx); err != nil {
		s.Logger.Warn("trace shutdown", "error", err)
	}
	s.Logger.Info("session ended", "movies", s.Store.Len())
	_ = s.closeLog()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"sharebook/internal/auth"
	"sharebook/internal/book"
	"sharebook/internal/bookstate"
	"sharebook/internal/genre"
	"sharebook/internal/httpx"
	"sharebook/internal/platform/logger"
	"sharebook/internal/platform/objectstore"
	"sharebook/internal/platform/postalcode"
	"sharebook/internal/rescue"
	"sharebook/internal/session"
	"sharebook/internal/user"
)

const (
	sessionCleanupInterval = time.Hour
	shutdownTimeout        = 10 * time.Second
)

func main() {
	loadEnvFiles()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("server stopped")
		stop()
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg config) error {
	pool, err := openDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	storage := objectstore.NewClient(objectstore.Config{
		BaseURL:    cfg.SupabaseURL,
		ServiceKey: cfg.SupabaseKey,
		URLTTL:     cfg.StorageURLTTL,
	})
	regions := postalcode.NewClient(postalcode.Config{
		BaseURL:    cfg.ViaCEPURL,
		UserAgent:  "sharebook-api",
		RPS:        cfg.ViaCEPRPS,
		MaxRetries: cfg.ViaCEPRetries,
	})

	userService := user.NewService(user.NewPostgresRepo(pool, cfg.DBTimeout), storage, regions)
	sessionService := session.NewService(
		session.NewPostgresRepo(pool, cfg.DBTimeout),
		session.NewBlacklistPostgresRepo(pool, cfg.DBTimeout),
	)
	authService := auth.NewService(cfg.JWTSecret, userService, sessionService)
	genreService := genre.NewService(genre.NewPostgresRepo(pool, cfg.DBTimeout))
	stateService := bookstate.NewService(bookstate.NewPostgresRepo(pool, cfg.DBTimeout))
	rescueService := rescue.NewService(rescue.NewPostgresRepo(pool, cfg.DBTimeout))
	bookService := book.NewService(book.Deps{
		Repo:    book.NewPostgresRepo(pool, cfg.DBTimeout),
		Users:   userService,
		Genres:  genreService,
		States:  stateService,
		Rescues: rescueService,
		Storage: storage,
		Regions: regions,
	})

	router := newRouter(handlers{
		auth:     auth.NewHTTPHandler(authService),
		users:    user.NewHTTPHandler(userService),
		sessions: session.NewHTTPHandler(sessionService),
		genres:   genre.NewHTTPHandler(genreService),
		states:   bookstate.NewHTTPHandler(stateService),
		books:    book.NewHTTPHandler(bookService, cfg.MaxUploadBytes),
		rescues:  rescue.NewHTTPHandler(rescueService),
	}, httpx.AuthMiddleware(cfg.JWTSecret, sessionService), pool.Ping)

	limiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	handler := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.SecurityHeadersMiddleware,
		limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxUploadBytes),
	)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info().Str("addr", cfg.Addr).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	group.Go(func() error {
		return limiter.Run(gCtx)
	})
	group.Go(func() error {
		return sessionService.RunCleanup(gCtx, sessionCleanupInterval)
	})
	return group.Wait()
}

func openDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse db dsn (%s): %w", redactDSN(dsn), err)
	}
	poolCfg.MaxConns = 20
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", redactDSN(dsn), err)
	}
	log.Info().Msg("database connection OK")
	return pool, nil
}

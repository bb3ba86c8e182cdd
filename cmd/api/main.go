package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"cinesport/docs"
	"cinesport/internal/auth"
	"cinesport/internal/cache"
	"cinesport/internal/config"
	"cinesport/internal/database"
	"cinesport/internal/database/migration"
	handlers "cinesport/internal/http/handler"
	"cinesport/internal/http/middleware"
	"cinesport/internal/jobs"
	"cinesport/internal/logging"
	"cinesport/internal/mail"
	"cinesport/internal/otel"
	"cinesport/internal/recommender"
	"cinesport/internal/repository/postgres"
	"cinesport/internal/service"
	"cinesport/internal/storage"
	"cinesport/internal/tmdb"
)

const (
	sweepCron       = "@every 5m"
	shutdownTimeout = 15 * time.Second
)

// @title cinesport API
// @version 1.0
// @description Movie social features, sports events and gamification.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", time.UTC).WithError(err).Fatal("invalid configuration")
	}
	loc := cfg.Location()
	log := logging.New(cfg.LogLevel, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize tracing")
	}

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if cfg.Database.MigrateOnStart {
		if err := migration.Up(db, cfg.Database.Name, log); err != nil {
			log.WithError(err).Fatal("failed to apply migrations")
		}
	}

	var respCache cache.Cache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to redis")
		}
		defer rc.Close()
		respCache = rc
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize object storage")
	}

	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TTL)

	// Initialize repositories and services
	movieRepo := postgres.NewMoviePostgres(db)
	userRepo := postgres.NewUserPostgres(db)
	sportRepo := postgres.NewSportPostgres(db)
	locationRepo := postgres.NewLocationPostgres(db)
	eventRepo := postgres.NewEventPostgres(db)
	participationRepo := postgres.NewParticipationPostgres(db)

	movieSvc := service.NewMovieService(movieRepo, tmdb.NewClient(cfg.TMDB), respCache, cfg.TMDB.PagesPerList, log)
	gamificationSvc := service.NewGamificationService(postgres.NewGamificationPostgres(db), sportRepo, locationRepo, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.WithError(err).Fatal("failed to register metrics")
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	app := fiber.New(fiber.Config{
		AppName:      "cinesport",
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    storage.MaxImageSize + 1<<20,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())
	app.Use(limiter.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:      db,
		Tokens:  tokens,
		Metrics: reg,

		Auth:            service.NewAuthService(userRepo, tokens, objStore),
		Passwords:       service.NewPasswordService(userRepo, mail.NewSMTP(cfg.SMTP)),
		Users:           service.NewUserService(userRepo, objStore),
		Movies:          movieSvc,
		Suggestions:     service.NewSuggestionService(movieRepo, respCache, recommender.DefaultTopN, log),
		Favorites:       service.NewFavoriteService(movieRepo, postgres.NewFavoritePostgres(db), respCache, log),
		Reactions:       service.NewReactionService(movieRepo, postgres.NewReactionPostgres(db), respCache, log),
		Recommendations: service.NewRecommendationService(movieRepo, userRepo, postgres.NewRecommendationPostgres(db)),
		Events:          service.NewEventService(eventRepo, participationRepo, userRepo),
		Reports:         service.NewReportService(postgres.NewReportPostgres(db), eventRepo, participationRepo, log),
		Gamification:    gamificationSvc,
		Catalog:         service.NewCatalogService(sportRepo, locationRepo, objStore),
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	scheduler := jobs.NewScheduler(jobs.Config{
		MovieSyncCron:   cfg.Jobs.MovieSyncCron,
		LeaderboardCron: cfg.Jobs.LeaderboardCron,
		SweepCron:       sweepCron,
		Location:        loc,
	}, movieSvc, gamificationSvc, limiter, log)
	if err := scheduler.Start(ctx); err != nil {
		log.WithError(err).Fatal("failed to start jobs")
	}
	if cfg.TMDB.SyncOnStart {
		go scheduler.SyncMovies(ctx)
	}

	addr := ":" + cfg.Port
	go func() {
		log.WithField("addr", addr).Info("server_started")
		if err := app.Listen(addr); err != nil {
			log.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	scheduler.Stop()
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.WithError(err).Error("tracer shutdown failed")
	}
	if err := db.Close(); err != nil {
		log.WithError(err).Error("database close failed")
	}
}

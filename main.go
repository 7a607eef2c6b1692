package main

import (
	"context"
	"mime"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/config"
	"github.com/arfind/arfind_admin/logger"
	"github.com/arfind/arfind_admin/middleware"
	"github.com/arfind/arfind_admin/repositories"
	"github.com/arfind/arfind_admin/routes"
	"github.com/arfind/arfind_admin/services"
	"github.com/arfind/arfind_admin/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Ensure correct MIME type for SVG files
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	ctx := context.Background()

	// Initialize Firebase
	app, err := config.InitFirebase(ctx, cfg.Firebase)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Firebase")
	}

	firestoreClient, err := config.ConnectFirestore(ctx, app)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Firestore")
	}
	defer firestoreClient.Close()

	bucketName := cfg.Firebase.Bucket()
	bucket, err := config.ConnectBucket(ctx, app, bucketName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage bucket")
	}

	// Connect to Redis; sessions stay in memory when it is unreachable
	redisClient := config.ConnectRedis(cfg.Redis, log)
	if redisClient == nil {
		log.Warn().Str("addr", cfg.Redis.Addr).Msg("Redis unavailable, using in-memory sessions")
	} else {
		defer redisClient.Close()
	}

	identity, err := services.NewFirebaseIdentity(ctx, cfg.Firebase.APIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create identity client")
	}

	rateLimiter := middleware.NewRateLimiter()
	stop := make(chan struct{})
	defer close(stop)
	rateLimiter.StartCleanup(5*time.Minute, stop)

	e, err := routes.NewServer(routes.Dependencies{
		Store:    repositories.NewFirestoreStore(firestoreClient),
		API:      services.NewAPIClient(cfg.API.BaseURL, cfg.API.Timeout, log),
		Identity: identity,
		Images:   services.NewImageService(services.NewGCSUploader(bucket, bucketName)),
		Sessions: utils.NewSessionStore(redisClient, cfg.Session.TTL),
		Cookie: middleware.SessionCookie{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		},
		RateLimiter: rateLimiter,
		Log:         log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build server")
	}

	if cfg.Session.Secure {
		e.Pre(httpsRedirect())
	}

	port := cfg.HTTP.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Info().Str("app", cfg.App.Name).Str("port", port).Str("api", cfg.API.BaseURL).Msg("Starting admin panel")
	if err := e.Start(":" + port); err != nil {
		log.Error().Err(err).Msg("Server stopped")
	}
}

func httpsRedirect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-Forwarded-Proto") == "http" {
				return c.Redirect(301, "https://"+c.Request().Host+c.Request().RequestURI)
			}
			return next(c)
		}
	}
}

package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	v1 "github.com/tradepilot-api/api/v1"
	"github.com/tradepilot-api/config"
	"github.com/tradepilot-api/database"
	"github.com/tradepilot-api/lib/filestore"
	"github.com/tradepilot-api/lib/mailer"
	"github.com/tradepilot-api/lib/otpstore"
	"github.com/tradepilot-api/middleware"
	"github.com/tradepilot-api/repositories"
	"github.com/tradepilot-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB: %v", err)
	}

	checks := map[string]v1.HealthCheck{
		"db": sqlDB.PingContext,
	}

	// OTP staging store
	var otps otpstore.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		otps = otpstore.NewRedisStore(client)
		log.Printf("✅ OTP store: Redis (%s)", cfg.Redis.Addr)
	} else {
		memory := otpstore.NewMemoryStore(nil)
		if err := memory.StartSweeper(cfg.OTP.SweepSchedule); err != nil {
			log.Fatalf("Failed to start OTP sweeper: %v", err)
		}
		defer memory.Stop()
		otps = memory
		log.Println("⚠️ OTP store: in-memory (set REDIS_ADDR to share across instances)")
	}

	var mail mailer.Mailer = mailer.LogMailer{}
	if cfg.SMTP.Host != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
		log.Printf("📧 Mail: SMTP (%s:%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	}

	var uploader filestore.Uploader
	if cfg.Storage.Bucket != "" {
		s3Uploader, err := filestore.NewS3Uploader(context.Background(), filestore.S3Options{
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			PublicURL: cfg.Storage.PublicURL,
			Folder:    cfg.Storage.Folder,
		})
		if err != nil {
			log.Fatalf("Failed to configure file storage: %v", err)
		}
		uploader = s3Uploader
		log.Printf("📦 File storage: s3://%s/%s", cfg.Storage.Bucket, cfg.Storage.Folder)
	} else {
		log.Println("⚠️ File storage not configured, completion documents will be rejected")
	}

	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	bidRepo := repositories.NewBidRepository(db)
	deliverableRepo := repositories.NewDeliverableRepository(db)

	tokens := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	health := v1.NewHealthController(checks)

	authLimiter := middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	if err := authLimiter.StartSweeper("@every 5m"); err != nil {
		log.Fatalf("Failed to start rate limit sweeper: %v", err)
	}
	defer authLimiter.Stop()

	deps := v1.Dependencies{
		Tokens:       tokens,
		Auth:         services.NewAuthService(userRepo, tokens, otps, mail, cfg.OTP.TTL),
		Projects:     services.NewProjectService(projectRepo, bidRepo, uploader),
		Bids:         services.NewBidService(bidRepo, projectRepo, userRepo),
		Deliverables: services.NewDeliverableService(deliverableRepo),
		AuthLimiter:  authLimiter,
		Health:       health,
	}

	// Initialize router
	router := gin.Default()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		log.Fatalf("Invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(middleware.RequestIDMiddleware())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	// Health check endpoint
	router.GET("/health", health.Check)

	v1.RegisterRoutes(router.Group("/api"), deps)

	log.Printf("🚀 TradePilot API starting on port %s (%s)", cfg.Server.Port, cfg.Server.Environment)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

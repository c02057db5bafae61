package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campusattend/internal/attendance"
	"campusattend/internal/auth"
	"campusattend/internal/complaint"
	"campusattend/internal/config"
	"campusattend/internal/directory"
	"campusattend/internal/httpapi"
	"campusattend/internal/httpmiddleware"
	"campusattend/internal/identity"
	"campusattend/internal/leave"
	"campusattend/internal/notice"
	"campusattend/internal/report"
	"campusattend/internal/storage"
	"campusattend/internal/store"
)

func main() {
	cfg := config.Load()

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := runHTTP(cfg); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}

func runHTTP(cfg config.App) error {
	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Migrate(context.Background(), db.Client); err != nil {
		return err
	}

	redisClient := store.NewRedis(cfg.RedisAddr)

	leaveRepo := leave.NewRepository(db.Client)
	leaveSvc := leave.NewService(leaveRepo, uuid.NewString)

	identityRepo := identity.NewRepository(db.Client)
	identitySvc := identity.NewService(identityRepo, uuid.NewString, leaveSvc)

	attendanceSvc := attendance.NewService(attendance.NewRepository(db.Client))
	noticeSvc := notice.NewService(notice.NewRepository(db.Client), uuid.NewString)
	complaintSvc := complaint.NewService(complaint.NewRepository(db.Client), uuid.NewString)
	directorySvc := directory.NewService(directory.NewRepository(db.Client), uuid.NewString)
	reportSvc := report.NewService(identitySvc, attendanceSvc, leaveSvc)

	// Attachment storage is optional; uploads return 503 when unset.
	var uploads *storage.Uploader
	if cfg.CloudinaryURL != "" {
		uploads, err = storage.New(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil {
			log.Printf("warning: cloudinary not available: %v", err)
		}
	} else {
		log.Println("Cloudinary not configured (CLOUDINARY_URL not set)")
	}

	httpapi.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(corsMiddleware(cfg.AllowedOrigins))
	r.Use(securityHeaders())
	r.Use(httpapi.Metrics())

	var limiter httpmiddleware.Limiter
	if cfg.RateLimitBackend == "memory" {
		limiter = httpmiddleware.NewSimpleTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin)
	} else {
		limiter = httpmiddleware.NewRedisFixedWindow(redisClient.Client, cfg.RateLimitPerMin)
	}
	r.Use(httpmiddleware.RateLimit(limiter))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/healthz", func(c *gin.Context) {
		redisHealthy := redisClient.Healthy(c.Request.Context())
		dbHealthy := db.Client.PingContext(c.Request.Context()) == nil
		status := http.StatusOK
		if !redisHealthy || !dbHealthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": "ok", "redis": redisHealthy, "db": dbHealthy})
	})

	h := httpapi.New(
		httpapi.AuthConfig{Issuer: cfg.JWTIssuer, SigningKey: cfg.JWTSigningKey, AccessTTL: cfg.AccessTTL},
		identitySvc, attendanceSvc, leaveSvc, noticeSvc, complaintSvc, directorySvc, reportSvc, uploads,
	)
	httpapi.Register(r, h, auth.RequireUser(cfg.JWTSigningKey, cfg.JWTIssuer, identitySvc))

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 10 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}

// CORS middleware for browser requests
func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if allowedOrigins != "*" {
			origin = allowedOrigins
		} else if origin == "" {
			origin = "*"
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Security headers middleware
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}

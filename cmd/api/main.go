package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/notulensi/pkg/validator"

	_ "github.com/johnquangdev/notulensi/docs"

	"github.com/johnquangdev/notulensi/internal/adapter/handler"
	"github.com/johnquangdev/notulensi/internal/adapter/repository"
	"github.com/johnquangdev/notulensi/internal/domain/repositories"
	"github.com/johnquangdev/notulensi/internal/infrastructure/cache"
	httpmw "github.com/johnquangdev/notulensi/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/notulensi/internal/infrastructure/messaging"
	"github.com/johnquangdev/notulensi/internal/infrastructure/metrics"
	"github.com/johnquangdev/notulensi/internal/infrastructure/pdf"
	"github.com/johnquangdev/notulensi/internal/infrastructure/storage"
	"github.com/johnquangdev/notulensi/internal/seed"
	"github.com/johnquangdev/notulensi/internal/usecase/actionitem"
	"github.com/johnquangdev/notulensi/internal/usecase/auth"
	"github.com/johnquangdev/notulensi/internal/usecase/export"
	meetingUsecase "github.com/johnquangdev/notulensi/internal/usecase/meeting"
	"github.com/johnquangdev/notulensi/internal/usecase/permission"
	"github.com/johnquangdev/notulensi/pkg/config"
	"github.com/johnquangdev/notulensi/pkg/jwt"
)

// @title           Notulensi API
// @version         1.0
// @description     Meeting minutes: scheduling, minutes editing, action plan and PDF export

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		ExposeHeaders:    []string{echo.HeaderContentDisposition, "X-Page-Count"},
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")

	// Seed directory and meetings
	log.Println("📦 Loading seed data...")
	data, err := seed.Load(seed.Options{BcryptCost: cfg.Auth.BcryptCost})
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}
	log.Printf("✅ Loaded %d users and %d meetings", len(data.Users), len(data.Meetings))

	// Session store
	var store cache.Store
	switch cfg.Session.Backend {
	case "redis":
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		store = cache.NewRedisStore(redisClient)
	default:
		log.Println("📦 Using in-memory session store")
		store = cache.NewMemoryStore()
	}
	defer store.Close()

	// Meeting events
	var publisher repositories.EventPublisher = messaging.NoopPublisher{}
	if cfg.NATS.URL != "" {
		log.Println("📡 Connecting to NATS...")
		natsClient, err := messaging.Connect(cfg.NATS.URL, 10*time.Second)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		defer natsClient.Close()
		publisher = messaging.NewPublisher(natsClient.Conn)
	} else {
		log.Println("⚠️  NATS_URL not set, meeting events are not published")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(data.Users)
	sessionRepo := repository.NewSessionRepository(store)
	meetingRepo := repository.NewPublishingMeetingRepository(
		repository.NewMeetingRepository(data.Meetings),
		publisher,
		logger,
	)

	appMetrics := metrics.New()
	gate := permission.NewGate()

	// Export archive
	exportOpts := export.Options{
		Locale:   cfg.Export.Locale,
		Recorder: appMetrics,
		Logger:   logger,
	}
	var archive handler.ExportArchive
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(context.Background(), &cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to storage: %v", err)
		}
		archiver := storage.NewExportArchiver(minioClient)
		exportOpts.Archiver = archiver
		archive = archiver
		log.Printf("✅ Exports archived to bucket %s", cfg.Storage.BucketName)
	}

	// Initialize services
	log.Println("🔑 Initializing auth service...")
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry)
	authService := auth.NewService(userRepo, sessionRepo, jwtManager, cfg.Session.TTL, logger)

	meetingService := meetingUsecase.NewMeetingService(meetingRepo, userRepo, gate, logger)
	actionItemService := actionitem.NewService(meetingRepo, gate, logger)

	log.Println("📄 Initializing export service...")
	exportService, err := export.NewService(meetingRepo, gate, pdf.NewMeasurer(), pdf.NewRenderer(), exportOpts)
	if err != nil {
		log.Fatalf("Failed to initialize export service: %v", err)
	}

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, handler.Handlers{
		Auth:       handler.NewAuth(authService, cfg.IsProduction(), logger),
		User:       handler.NewUserHandler(userRepo, logger),
		Meeting:    handler.NewMeetingHandler(meetingService, logger),
		ActionItem: handler.NewActionItemHandler(actionItemService, logger),
		Export:     handler.NewExportHandler(exportService, meetingService, archive, logger),
	}, httpmw.EchoAuth(authService, logger), appMetrics)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

package container

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"

	"github.com/srikanthreddy78/SkillSwapApp/internal/config"
	deliveryhttp "github.com/srikanthreddy78/SkillSwapApp/internal/delivery/http"
	"github.com/srikanthreddy78/SkillSwapApp/internal/delivery/http/handler"
	"github.com/srikanthreddy78/SkillSwapApp/internal/delivery/http/middleware"
	"github.com/srikanthreddy78/SkillSwapApp/internal/infrastructure/database"
	"github.com/srikanthreddy78/SkillSwapApp/internal/infrastructure/gemini"
	"github.com/srikanthreddy78/SkillSwapApp/internal/infrastructure/server"
	"github.com/srikanthreddy78/SkillSwapApp/internal/repository/postgres"
	redisrepo "github.com/srikanthreddy78/SkillSwapApp/internal/repository/redis"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/chat"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/connection"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/discovery"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/location"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/profile"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/review"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *slog.Logger
	DB             *sqlx.DB
	Redis          *goredis.Client
	Server         *server.Server
	Gemini         *gemini.Client
	LocationHolder *location.Holder
}

// SetupLogger builds the process logger: readable text locally, JSON
// everywhere else.
func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize Gemini client; AI features stay off when it is missing
	var geminiClient *gemini.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewClient(cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("gemini client init failed, AI features disabled",
				slog.Any("error", err))
			geminiClient = nil
		}
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	connectionRepo := postgres.NewConnectionRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	presenceStore := redisrepo.NewPresenceStore(redisClient, cfg.Redis.PresenceTTL)
	locationFeed := redisrepo.NewLocationFeed(redisClient, logger)

	// Live location cache; main runs it for the process lifetime
	locationHolder := location.NewHolder(locationFeed, logger)

	// Initialize use cases
	discoveryUseCase := discovery.NewDiscoveryUseCase(
		userRepo,
		presenceStore,
		locationHolder,
		logger,
	)

	profileUseCase := profile.NewProfileUseCase(
		userRepo,
		presenceStore,
		locationFeed,
		geminiClient,
		logger,
	)

	connectionUseCase := connection.NewConnectionUseCase(
		connectionRepo,
		userRepo,
		geminiClient,
		logger,
	)

	chatUseCase := chat.NewChatUseCase(
		messageRepo,
		connectionRepo,
		logger,
	)

	reviewUseCase := review.NewReviewUseCase(
		reviewRepo,
		userRepo,
		logger,
	)

	// Initialize handlers
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	connectionHandler := handler.NewConnectionHandler(connectionUseCase)
	chatHandler := handler.NewChatHandler(chatUseCase)
	reviewHandler := handler.NewReviewHandler(reviewUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.AccessSecret)

	// Initialize router
	router := deliveryhttp.NewRouter(
		discoveryHandler,
		profileHandler,
		connectionHandler,
		chatHandler,
		reviewHandler,
		authMiddleware,
	)

	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, logger)

	return &Container{
		Config:         cfg,
		Logger:         logger,
		DB:             db,
		Redis:          redisClient,
		Server:         srv,
		Gemini:         geminiClient,
		LocationHolder: locationHolder,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error("closing redis failed", slog.Any("error", err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}

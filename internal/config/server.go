package config

import (
	"camonk/database/postgres"
	assistantHandler "camonk/internal/api/assistant/handler"
	assistantService "camonk/internal/api/assistant/service"
	blogHandler "camonk/internal/api/blog/handler"
	blogRepository "camonk/internal/api/blog/repository"
	blogsService "camonk/internal/api/blog/service"
	catalogHandler "camonk/internal/api/catalog/handler"
	catalogService "camonk/internal/api/catalog/service"
	toolsHandler "camonk/internal/api/tools/handler"
	toolsService "camonk/internal/api/tools/service"
	"camonk/internal/middleware"
	"camonk/internal/web"
	"camonk/pkg/blogapi"
	"camonk/pkg/gemini"
	jwtPkg "camonk/pkg/jwt"
	"camonk/pkg/localstore"
	"camonk/pkg/openai"
	"camonk/pkg/querycache"
	"camonk/pkg/redis"
	"camonk/pkg/utils"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	db           *sqlx.DB
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	handlers     []handler
	rootHandlers []handler
	redisServer  redis.IRedis
	geminiClient gemini.IGemini
	textGen      assistantService.TextGenerator
	blogAPI      blogapi.IBlogAPI
	localStore   localstore.IStore
	queryCache   querycache.ICache
	defaultPort  string
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{defaultPort: "3000"}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDefaultPort(port string) ServerOption {
	return func(s *Server) error {
		s.defaultPort = port
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}

		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithTextGenerator picks the Magic Write backend from ASSISTANT_PROVIDER (gemini or openai).
// A missing API key leaves it unset: Magic Write then reports a generation failure instead of
// the portal refusing to start.
func WithTextGenerator() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before text generator")
		}
		switch provider := getEnv("ASSISTANT_PROVIDER", "gemini"); provider {
		case "gemini":
			client, err := gemini.NewGeminiClient()
			if errors.Is(err, gemini.ErrAPIKeyRequired) {
				s.log.Warn("GEMINI_API_KEY not set, Magic Write is disabled")
				return nil
			}
			if err != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
				return fmt.Errorf("failed to create Gemini client: %w", err)
			}
			s.geminiClient = client
			s.textGen = client
		case "openai":
			client, err := openai.NewChatGPT()
			if errors.Is(err, openai.ErrAPIKeyRequired) {
				s.log.Warn("OPENAI_API_KEY not set, Magic Write is disabled")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to create OpenAI client: %w", err)
			}
			s.textGen = client
		default:
			return fmt.Errorf("unknown ASSISTANT_PROVIDER %q", provider)
		}
		return nil
	}
}

func WithBlogAPIClient() ServerOption {
	return func(s *Server) error {
		baseURL := getEnv("BLOG_API_URL", "http://localhost:3001")

		timeout, err := time.ParseDuration(getEnv("BLOG_API_TIMEOUT", "5s"))
		if err != nil {
			return fmt.Errorf("invalid BLOG_API_TIMEOUT: %w", err)
		}

		var opts []blogapi.Option
		if jwtPkg.ServiceTokenEnabled() {
			opts = append(opts, blogapi.WithTokenSource(jwtPkg.NewServiceTokenSource(time.Minute)))
		}

		s.blogAPI = blogapi.New(baseURL, timeout, opts...)
		return nil
	}
}

// WithLocalStore picks the backend from LOCAL_STORE_DRIVER. The redis driver needs
// WithRedisServer to have run first.
func WithLocalStore() ServerOption {
	return func(s *Server) error {
		switch driver := getEnv("LOCAL_STORE_DRIVER", "file"); driver {
		case "file":
			s.localStore = localstore.NewFileStore(getEnv("LOCAL_STORE_DIR", "./storage/local"))
		case "redis":
			if s.redisServer == nil {
				return fmt.Errorf("redis local store requires a redis server")
			}
			s.localStore = localstore.NewRedisStore(s.redisServer)
		default:
			return fmt.Errorf("unknown LOCAL_STORE_DRIVER %q", driver)
		}
		return nil
	}
}

func WithQueryCache() ServerOption {
	return func(s *Server) error {
		staleTime, err := time.ParseDuration(getEnv("QUERY_STALE_TIME", "5m"))
		if err != nil {
			return fmt.Errorf("invalid QUERY_STALE_TIME: %w", err)
		}
		s.queryCache = querycache.New(256, staleTime)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

// RegisterPortalHandler wires the portal: HTML pages at the root, JSON under /api/v1.
func (s *Server) RegisterPortalHandler() error {
	if s.blogAPI == nil || s.localStore == nil || s.queryCache == nil {
		return fmt.Errorf("portal requires blog api client, local store and query cache")
	}

	// Blog Domain
	fallback := blogsService.NewFallbackService(s.log, s.blogAPI, s.localStore, s.utils, time.Now)
	blogServices := blogsService.NewCachedService(s.log, fallback, s.queryCache)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices, false)

	// Assistant
	assistantServices := assistantService.NewAssistantService(s.log, s.textGen)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	// Tools
	toolsServices := toolsService.NewToolsService(s.log, s.utils)
	toolsHandlers := toolsHandler.New(s.log, s.validator, s.middleware, toolsServices)

	// Catalog
	catalogServices := catalogService.NewCatalogService()
	catalogHandlers := catalogHandler.New(s.log, s.middleware, catalogServices)

	webHandlers, err := web.New(s.log, s.validator, s.middleware, blogServices, assistantServices, toolsServices, catalogServices, s.utils)
	if err != nil {
		return err
	}

	s.handlers = append(s.handlers, blogHandlers, assistantHandlers, toolsHandlers, catalogHandlers)
	s.rootHandlers = append(s.rootHandlers, webHandlers)
	return nil
}

// RegisterAPIHandler wires the blog API server: /blogs backed by PostgreSQL.
func (s *Server) RegisterAPIHandler() error {
	if s.db == nil {
		return fmt.Errorf("blog api requires a database")
	}

	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogsService.NewBlogsService(s.log, blogRepo, s.utils, time.Now)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices, true)

	s.rootHandlers = append(s.rootHandlers, blogHandlers)
	return nil
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.setupHealthCheck()

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}
	for _, h := range s.rootHandlers {
		h.Start(s.engine)
	}

	port := getEnv("APP_PORT", s.defaultPort)

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if err := s.engine.ShutdownWithContext(ctx); err != nil {
		errs = append(errs, err)
	}
	if s.geminiClient != nil {
		if err := s.geminiClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.redisServer != nil {
		if err := s.redisServer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"omnidesk/internal/auth"
	"omnidesk/internal/capabilities"
	"omnidesk/internal/config"
	"omnidesk/internal/domain/services"
	"omnidesk/internal/handler"
	"omnidesk/internal/middleware"
	"omnidesk/internal/repository/postgres"
	"omnidesk/internal/service"
	"omnidesk/internal/upstream/anythingllm"
	"omnidesk/internal/upstream/gemini"
	"omnidesk/internal/upstream/openai"
	"omnidesk/internal/upstream/pollinations"
	"omnidesk/internal/upstream/serper"
	"omnidesk/internal/upstream/storage"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// JWT verifier for Supabase authentication
	jwtVerifier, err := auth.NewJWTVerifier(cfg.SupabaseJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	agentRepo := postgres.NewAgentRepository(repoConfig)
	leadRepo := postgres.NewLeadRepository(repoConfig)
	projectRepo := postgres.NewProjectRepository(repoConfig)
	chatRepo := postgres.NewChatRepository(repoConfig)
	presentationRepo := postgres.NewPresentationRepository(repoConfig)
	websiteRepo := postgres.NewWebsiteRepository(repoConfig)
	mediaRepo := postgres.NewMediaRepository(repoConfig)
	logRepo := postgres.NewSystemLogRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Upstream clients, one per integration
	openaiClient := openai.NewClient(cfg.OpenAIAPIKey)
	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	serperClient := serper.NewClient(cfg.SerperAPIKey)
	anythingllmClient := anythingllm.NewClient(cfg.AnythingLLMBaseURL, cfg.AnythingLLMAPIKey)
	pollinationsClient := pollinations.NewClient(cfg.PollinationsBaseURL)

	objectStore, err := storage.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.StorageBucket)
	if err != nil {
		log.Fatalf("Failed to create storage client: %v", err)
	}

	capabilityRegistry, err := capabilities.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize capability registry: %v", err)
	}

	// Services
	completers := map[string]services.ChatCompleter{
		"openai": openaiClient,
		"gemini": geminiClient,
	}

	agentService := service.NewAgentService(agentRepo, logger)
	leadService := service.NewLeadService(leadRepo, agentRepo, logger)
	projectService := service.NewProjectService(projectRepo, txManager, logger)
	chatService := service.NewChatService(chatRepo, completers, capabilityRegistry, txManager, service.ChatDefaults{
		Provider: cfg.DefaultProvider,
		Model:    cfg.DefaultModel,
	}, logger)
	crmService := service.NewCRMService(agentRepo, anythingllmClient, logger)
	searchService := service.NewSearchService(serperClient, cfg.SearchCacheDisabled, logger)
	presentationService := service.NewPresentationService(presentationRepo, openaiClient, "openai", openai.DefaultModel, logger)
	websiteService := service.NewWebsiteService(websiteRepo, geminiClient, "gemini", gemini.DefaultModel, logger)
	mediaService := service.NewMediaService(mediaRepo, pollinationsClient, objectStore, logger)
	logService := service.NewSystemLogService(logRepo, logger)

	// Handlers
	healthHandler := handler.NewHealthHandler(pool)
	agentHandler := handler.NewAgentHandler(agentService, logger)
	leadHandler := handler.NewLeadHandler(leadService, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	chatHandler := handler.NewChatHandler(chatService, logger)
	crmHandler := handler.NewCRMHandler(crmService, logger)
	searchHandler := handler.NewSearchHandler(searchService, logger)
	presentationHandler := handler.NewPresentationHandler(presentationService, logger)
	websiteHandler := handler.NewWebsiteHandler(websiteService, logger)
	mediaHandler := handler.NewMediaHandler(mediaService, logger)
	logHandler := handler.NewSystemLogHandler(logService, logger)
	modelsHandler := handler.NewModelsHandler(capabilityRegistry)

	logger.Info("services initialized")

	// HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Agent routes
	mux.HandleFunc("POST /api/agents", agentHandler.CreateAgent)
	mux.HandleFunc("GET /api/agents", agentHandler.ListAgents)
	mux.HandleFunc("GET /api/agents/{id}", agentHandler.GetAgent)

	// Lead routes (POST is public: the chat widget calls it without auth)
	mux.HandleFunc("POST /api/leads", leadHandler.CreateLead)
	mux.HandleFunc("GET /api/leads", leadHandler.ListLeads)
	mux.HandleFunc("PATCH /api/leads/{id}", leadHandler.UpdateLeadStatus)

	// Project routes
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("PATCH /api/projects/{id}", projectHandler.UpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.DeleteProject)
	mux.HandleFunc("GET /api/projects/{id}/members", projectHandler.ListMembers)
	mux.HandleFunc("POST /api/projects/{id}/members", projectHandler.AddMember)

	// Chat routes
	mux.HandleFunc("POST /api/chats", chatHandler.CreateChat)
	mux.HandleFunc("GET /api/chats", chatHandler.ListChats)
	mux.HandleFunc("GET /api/chats/{id}", chatHandler.GetChat)
	mux.HandleFunc("DELETE /api/chats/{id}", chatHandler.DeleteChat)
	mux.HandleFunc("GET /api/chats/{id}/messages", chatHandler.ListMessages)
	mux.HandleFunc("POST /api/chats/{id}/messages", chatHandler.SendMessage)

	// CRM and search routes
	mux.HandleFunc("POST /api/crm/query", crmHandler.Query)
	mux.HandleFunc("POST /api/search", searchHandler.Search)

	// Presentation routes
	mux.HandleFunc("POST /api/presentations/generate", presentationHandler.Generate)
	mux.HandleFunc("POST /api/presentations", presentationHandler.Save)
	mux.HandleFunc("GET /api/presentations", presentationHandler.List)
	mux.HandleFunc("GET /api/presentations/{id}", presentationHandler.Get)
	mux.HandleFunc("DELETE /api/presentations/{id}", presentationHandler.Delete)

	// Website routes
	mux.HandleFunc("POST /api/websites/generate", websiteHandler.Generate)
	mux.HandleFunc("POST /api/websites", websiteHandler.Save)
	mux.HandleFunc("GET /api/websites", websiteHandler.List)
	mux.HandleFunc("GET /api/websites/{id}", websiteHandler.Get)
	mux.HandleFunc("POST /api/websites/{id}/publish", websiteHandler.Publish)

	// Media routes
	mux.HandleFunc("POST /api/images/generate", mediaHandler.GenerateImage)
	mux.HandleFunc("GET /api/images", mediaHandler.ListImages)
	mux.HandleFunc("POST /api/audio/generate", mediaHandler.GenerateAudio)
	mux.HandleFunc("GET /api/audio", mediaHandler.ListAudio)

	// Log routes
	mux.HandleFunc("POST /api/logs", logHandler.Ingest)
	mux.HandleFunc("GET /api/logs", logHandler.ListRecent)

	// Model capabilities routes
	mux.HandleFunc("GET /api/models/capabilities", modelsHandler.GetCapabilities)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	root = middleware.Auth(jwtVerifier)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 180 * time.Second, // media generation is slow
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

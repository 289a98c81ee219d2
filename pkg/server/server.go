// Package server exposes the faqgraph knowledge base over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundprediction/faqgraph"
	"github.com/soundprediction/faqgraph/pkg/config"
	"github.com/soundprediction/faqgraph/pkg/extractor"
	"github.com/soundprediction/faqgraph/pkg/llm"
	"github.com/soundprediction/faqgraph/pkg/server/handlers"
	"github.com/soundprediction/faqgraph/pkg/types"
)

// Server represents the HTTP server
type Server struct {
	config    *config.Config
	router    *gin.Engine
	kb        faqgraph.KnowledgeBase
	llm       llm.Client
	extractor *extractor.Extractor
	logger    *slog.Logger
	server    *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, kb faqgraph.KnowledgeBase, llmClient llm.Client, ext *extractor.Extractor, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		config:    cfg,
		kb:        kb,
		llm:       llmClient,
		extractor: ext,
		logger:    logger,
	}
}

// Setup sets up the server routes and middleware
func (s *Server) Setup() {
	gin.SetMode(s.config.Server.Mode)

	s.router = gin.New()
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware())
	s.router.Use(contextMiddleware())

	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
}

// setupRoutes sets up all the routes
func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.kb)
	chatHandler := handlers.NewChatHandler(s.kb, s.llm, s.logger)
	knowledgeHandler := handlers.NewKnowledgeHandler(s.kb, s.logger)

	// Health endpoints
	s.router.GET("/health", healthHandler.HealthCheck)
	s.router.GET("/health/detailed", healthHandler.DetailedHealthCheck)

	// API v1 routes
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/chat", chatHandler.Chat)
		v1.POST("/faq", knowledgeHandler.AddFAQ)
		v1.POST("/entity", knowledgeHandler.AddEntity)
		v1.POST("/relationship", knowledgeHandler.AddRelationship)
	}

	// Legacy flat routes for compatibility with earlier deployments
	s.router.POST("/chat", chatHandler.Chat)
	s.router.POST("/faq", knowledgeHandler.AddFAQ)
	s.router.POST("/entity", knowledgeHandler.AddEntity)
	s.router.POST("/relationship", knowledgeHandler.AddRelationship)

	// Extraction routes need a configured extractor
	if s.extractor != nil {
		extractHandler := handlers.NewExtractHandler(s.extractor, s.kb, s.logger)
		v1.POST("/extract/text", extractHandler.ExtractText)
		s.router.POST("/extract/text", extractHandler.ExtractText)
	}
}

// Start starts the server
func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping server")
	return s.server.Shutdown(ctx)
}

// Router returns the underlying router, for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// contextMiddleware extracts request metadata from headers
func contextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if userID := c.GetHeader("X-User-ID"); userID != "" {
			ctx = context.WithValue(ctx, types.ContextKeyUserID, userID)
		}
		if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
			ctx = context.WithValue(ctx, types.ContextKeySessionID, sessionID)
		}
		ctx = context.WithValue(ctx, types.ContextKeyRequestSource, "server")

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

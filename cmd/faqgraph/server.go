package faqgraph

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/soundprediction/faqgraph"
	"github.com/soundprediction/faqgraph/pkg/config"
	"github.com/soundprediction/faqgraph/pkg/extractor"
	"github.com/soundprediction/faqgraph/pkg/factstore"
	"github.com/soundprediction/faqgraph/pkg/llm"
	"github.com/soundprediction/faqgraph/pkg/server"
	"github.com/soundprediction/faqgraph/pkg/telemetry"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the faqgraph HTTP server",
	Long: `Start the faqgraph HTTP server to provide REST API access to the FAQ chatbot.

The server provides endpoints for:
- Asking questions (/chat)
- Adding FAQs, entities and relationships
- Extracting knowledge from free text
- Health checks

Configuration can be provided through config files, environment variables, or command-line flags.`,
	RunE: runServer,
}

var (
	serverHost string
	serverPort int
	serverMode string
)

func init() {
	rootCmd.AddCommand(serverCmd)

	// Server-specific flags
	serverCmd.Flags().StringVar(&serverHost, "host", "localhost", "Server host")
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Server port")
	serverCmd.Flags().StringVar(&serverMode, "mode", "debug", "Server mode (debug, release, test)")

	// Knowledge base flags
	serverCmd.Flags().String("kb-schema", "", "Path to the knowledge base schema file")
	serverCmd.Flags().String("kb-data", "", "Path to the knowledge base data file")

	// LLM flags
	serverCmd.Flags().String("llm-model", "", "Chat model identifier")
	serverCmd.Flags().String("llm-api-key", "", "Chat model API key")
	serverCmd.Flags().String("llm-base-url", "", "Chat model base URL (any OpenAI-compatible endpoint)")

	// Telemetry flags
	serverCmd.Flags().String("telemetry-parquet-path", "", "Path to directory for error telemetry")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	overrideConfigWithFlags(cmd, cfg)

	logger, flush, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer flush()
	slog.SetDefault(logger)

	// Build the knowledge base
	kb := faqgraph.NewClient(factstore.NewMemoryStore(), logger)
	if cfg.KnowledgeBase.SchemaPath != "" && cfg.KnowledgeBase.DataPath != "" {
		if err := kb.LoadKnowledgeBaseFiles(cfg.KnowledgeBase.SchemaPath, cfg.KnowledgeBase.DataPath); err != nil {
			return fmt.Errorf("failed to load knowledge base: %w", err)
		}
	} else {
		logger.Warn("no knowledge base configured, starting empty")
	}

	// Build the LLM client
	llmClient, err := buildLLMClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build LLM client: %w", err)
	}
	defer llmClient.Close()

	ext := extractor.New(llmClient, logger)

	srv := server.New(cfg, kb, llmClient, ext, logger)
	srv.Setup()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErrChan <- err
		}
	}()

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.Info("received signal", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		logger.Info("server stopped gracefully")
		return nil
	}
}

// buildLogger assembles the slog handler chain: text or JSON to stderr, with
// error records teed into Parquet when a telemetry path is configured.
func buildLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	flush := func() {}
	if cfg.Telemetry.ParquetPath != "" {
		parquetHandler, err := telemetry.NewParquetHandler(handler, cfg.Telemetry.ParquetPath)
		if err != nil {
			return nil, nil, err
		}
		handler = parquetHandler
		flush = func() { _ = parquetHandler.Flush() }
	}

	return slog.New(handler), flush, nil
}

// buildLLMClient creates the chat client, wrapped in a circuit breaker when
// enabled.
func buildLLMClient(cfg *config.Config, logger *slog.Logger) (llm.Client, error) {
	client, err := llm.NewOpenAIClient(llm.Config{
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	if !cfg.CircuitBreaker.Enabled {
		return client, nil
	}
	return llm.NewCircuitBreakerClient(client, llm.BreakerConfig{
		MaxRequests:      cfg.CircuitBreaker.MaxRequests,
		Interval:         cfg.CircuitBreaker.Interval,
		Timeout:          cfg.CircuitBreaker.Timeout,
		ReadyToTripRatio: cfg.CircuitBreaker.ReadyToTripRatio,
	}, "chat", logger), nil
}

func overrideConfigWithFlags(cmd *cobra.Command, cfg *config.Config) {
	// Server flags
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serverHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = serverPort
	}
	if cmd.Flags().Changed("mode") {
		cfg.Server.Mode = serverMode
	}

	// Knowledge base flags
	if cmd.Flags().Changed("kb-schema") {
		cfg.KnowledgeBase.SchemaPath, _ = cmd.Flags().GetString("kb-schema")
	}
	if cmd.Flags().Changed("kb-data") {
		cfg.KnowledgeBase.DataPath, _ = cmd.Flags().GetString("kb-data")
	}

	// LLM flags
	if cmd.Flags().Changed("llm-model") {
		cfg.LLM.Model, _ = cmd.Flags().GetString("llm-model")
	}
	if cmd.Flags().Changed("llm-api-key") {
		cfg.LLM.APIKey, _ = cmd.Flags().GetString("llm-api-key")
	}
	if cmd.Flags().Changed("llm-base-url") {
		cfg.LLM.BaseURL, _ = cmd.Flags().GetString("llm-base-url")
	}

	// Telemetry flags
	if cmd.Flags().Changed("telemetry-parquet-path") {
		cfg.Telemetry.ParquetPath, _ = cmd.Flags().GetString("telemetry-parquet-path")
	}
}

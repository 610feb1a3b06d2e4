// Business case generator server - orchestrates the multi-stage,
// human-in-the-loop case workflow behind a JSON-over-HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/agents"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/api"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casestore"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/config"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/database"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/llm"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/orchestrator"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/policy"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/pricing"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/promptcatalog"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/ratecard"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

const sweepInterval = time.Minute

func main() {
	configPath := flag.String("config",
		getEnv("CONFIG_PATH", "./deploy/config/casegen.yaml"),
		"Path to the configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using existing environment")
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	llmAddr := getEnv("LLM_GRPC_ADDR", "localhost:50051")

	slog.Info("starting business case generator", "http_port", httpPort, "config_path", *configPath)

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configPath)
	if err != nil {
		slog.Error("failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("error closing database client", "error", err)
		}
	}()
	slog.Info("connected to PostgreSQL, migrations applied")

	llmClient, err := llm.NewGRPCClient(llmAddr)
	if err != nil {
		slog.Error("failed to connect to LLM backend", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	defer llmClient.Close()

	store := casestore.NewEntStore(dbClient.Client)
	catalog := promptcatalog.NewStore(&promptcatalog.EntPersister{Client: dbClient.Client}, cfg.PromptCacheTTL)
	policyStore := policy.NewStore(&policy.EntPersister{Client: dbClient.Client}, cfg.PromptCacheTTL)

	cards, err := ratecard.LoadAll(ctx, dbClient.Client)
	if err != nil {
		slog.Error("failed to load rate cards", "error", err)
		os.Exit(1)
	}
	cardRegistry := ratecard.NewRegistry(cards)

	templates, err := pricing.LoadAll(ctx, dbClient.Client)
	if err != nil {
		slog.Error("failed to load pricing templates", "error", err)
		os.Exit(1)
	}
	templateRegistry, err := pricing.NewRegistry(templates)
	if err != nil {
		slog.Error("pricing templates failed validation", "error", err)
		os.Exit(1)
	}
	slog.Info("registries loaded", "rate_cards", len(cards), "pricing_templates", len(templates))

	params := llm.Params{
		Model:       getEnv("LLM_MODEL", "default"),
		Temperature: 0.2,
		MaxTokens:   int32(envInt("LLM_MAX_TOKENS", 8192)),
		Timeout:     cfg.GenerationTimeout,
	}

	runners := map[statemachine.Phase]agents.Runner{
		statemachine.PhasePRD:            &agents.ProductManagerRunner{Catalog: catalog, Backend: llmClient},
		statemachine.PhaseSystemDesign:   &agents.ArchitectRunner{Catalog: catalog, Backend: llmClient},
		statemachine.PhaseEffort:         &agents.PlannerRunner{Catalog: catalog, Backend: llmClient},
		statemachine.PhaseCosting:        &agents.CostAnalystRunner{Catalog: catalog, Backend: llmClient, Cards: cardRegistry},
		statemachine.PhaseValue:          &agents.SalesValueAnalystRunner{Catalog: catalog, Backend: llmClient, Templates: templateRegistry},
		statemachine.PhaseFinancialModel: &agents.FinancialModelRunner{Catalog: catalog, Backend: llmClient},
	}

	orch := orchestrator.New(store, policyStore, runners, orchestrator.Config{
		GenerationTimeout:        cfg.GenerationTimeout,
		ConcurrencyRetryLimit:    cfg.ConcurrencyRetryLimit,
		LLMRetryLimit:            cfg.LLMRetryLimit,
		DefaultRateCardID:        cfg.DefaultRateCardID,
		DefaultPricingTemplateID: getEnv("DEFAULT_PRICING_TEMPLATE_ID", "standard_pricing"),
		LLMParams:                params,
	})

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go orch.RunRecoverySweep(sweepCtx, sweepInterval)
	slog.Info("recovery sweep started", "interval", sweepInterval)

	server := api.NewServer(cfg, dbClient, orch, policyStore)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(":" + httpPort)
	}()
	slog.Info("HTTP server listening", "port", httpPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("HTTP server stopped", "error", err)
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	stopSweep()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func envInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

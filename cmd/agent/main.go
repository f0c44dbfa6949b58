package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/angelmondragon/adspend-backend/internal/agent"
	"github.com/angelmondragon/adspend-backend/pkg/config"
	"github.com/angelmondragon/adspend-backend/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "agent", Output: os.Stderr})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	question := flag.String("q", "", "question to answer")
	baseURL := flag.String("base-url", cfg.Agent.BaseURL, "adspend api base url")
	flag.Parse()

	if strings.TrimSpace(*question) == "" && flag.NArg() > 0 {
		*question = strings.Join(flag.Args(), " ")
	}
	if strings.TrimSpace(*question) == "" {
		fmt.Fprintln(os.Stderr, "missing -q question")
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "agent",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Output:      os.Stderr,
	})

	agentCfg := cfg.Agent
	agentCfg.BaseURL = *baseURL
	router, err := agent.NewRouter(agentCfg, nil, logg)
	if err != nil {
		logg.Error(ctx, "failed to create question router", err)
		os.Exit(1)
	}

	answer, err := router.Ask(ctx, *question)
	if err != nil {
		logg.Error(logg.WithField(ctx, "base_url", *baseURL), "question router request failed", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(answer.Payload()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write answer: %v\n", err)
		os.Exit(1)
	}
}

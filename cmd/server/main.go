package main // Entry point package

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/al-fatah/devsecops-intro/internal/config"        // Internal config loader
	"github.com/al-fatah/devsecops-intro/internal/observability" // Structured logging
	"github.com/al-fatah/devsecops-intro/internal/server"        // HTTP listener
)

const serviceName = "devsecops-intro"

func main() {
	cfg, err := config.Load() // Load environment config once
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: serviceName,
		Environment: cfg.Env,
	})

	if err := server.Run(cfg, logger); err != nil { // Blocks while serving
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

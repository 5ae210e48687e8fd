package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/proteinlab/interactome-prep/cmd"
	"github.com/proteinlab/interactome-prep/config"
	"github.com/proteinlab/interactome-prep/logging"
)

func main() {
	// A .env file is optional; the configuration has defaults for everything
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logging.Warn("Failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogDir, cfg.LogLevel)

	if err := cmd.NewRootCommand(cfg).Execute(); err != nil {
		logging.Error("Run failed", "error", err)
		os.Exit(1)
	}
}

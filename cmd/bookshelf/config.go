package main

import (
	"fmt"
	"os"
	"strconv"

	"bookshelf/internal/book"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

const (
	envCapacity = "BOOKSHELF_CAPACITY"
	envLogLevel = "BOOKSHELF_LOG_LEVEL"
)

type config struct {
	Capacity int
	LogLevel zapcore.Level
	Seed     bool
}

func loadEnvFiles() {
	// Do not override environment provided by the shell.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// loadConfig reads the environment, then lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (config, error) {
	cfg := config{Capacity: book.DefaultCapacity, LogLevel: zapcore.WarnLevel}

	raw := getEnv(envCapacity, strconv.Itoa(book.DefaultCapacity))
	if cmd.Flags().Changed("capacity") {
		raw, _ = cmd.Flags().GetString("capacity")
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return config{}, fmt.Errorf("invalid capacity %q: must be a positive integer", raw)
	}
	cfg.Capacity = n

	level, err := zapcore.ParseLevel(getEnv(envLogLevel, "warn"))
	if err != nil {
		return config{}, fmt.Errorf("invalid %s: %w", envLogLevel, err)
	}
	cfg.LogLevel = level
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = zapcore.DebugLevel
	}

	cfg.Seed, _ = cmd.Flags().GetBool("seed")
	return cfg, nil
}

package main

import "os"

// Config holds blscli's runtime configuration, read from environment
// variables with optional `--flag value` overrides on the command line —
// the same convention the provers' relayer config uses.
type Config struct {
	LogLevel string
}

// NewConfig parses args (typically os.Args[2:], the arguments after the
// subcommand) into a Config, defaulting from the environment.
func NewConfig(args ...string) *Config {
	config := Config{
		LogLevel: getEnv("BLSCLI_LOG_LEVEL", "info"),
	}

	for i := 0; i < len(args); i++ {
		if len(args) <= i+1 {
			continue
		}
		switch args[i] {
		case "--log-level":
			config.LogLevel = args[i+1]
			i++
		}
	}

	return &config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Package main is the entry point for Hangman.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// dotenvErr is reported once logging is configured.
var dotenvErr error

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_API_KEY and HANGMAN_* settings available
	dotenvErr = godotenv.Load()

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	err := newRootCmd().ExecuteContext(context.Background())
	closeLogging()
	if err != nil {
		os.Exit(1)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// An explicit OTEL_EXPORTER_OTLP_ENDPOINT is left alone.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "hangman" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

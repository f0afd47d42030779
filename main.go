package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jakenesler/askapi/ask"
	"github.com/jakenesler/askapi/config"
	"github.com/jakenesler/askapi/executor"
	"github.com/jakenesler/askapi/internal"
	"github.com/jakenesler/askapi/metrics"
	"github.com/jakenesler/askapi/openapi"
	"github.com/jakenesler/askapi/tools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	flags := pflag.NewFlagSet("askapi", pflag.ExitOnError)
	configPath := flags.String("config", "", "path to config.yaml (default: ~/.config/askapi/config.yaml)")
	docsURL := flags.String("docs-url", "", "OpenAPI document URL")
	docsFile := flags.String("docs-file", "", "read the OpenAPI document from a file instead of docs-url")
	baseURL := flags.String("base-url", "", "prefix for synthesized request URLs")
	apiKey := flags.String("api-key", "", "value of the API key header")
	execKind := flags.String("executor", "", "request executor: http or curl")
	logLevel := flags.String("log-level", "", "debug, info, warn or error")
	question := flags.String("ask", "", "answer one question, print the result and exit")
	flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	override(flags, "docs-url", &cfg.DocsURL, *docsURL)
	override(flags, "docs-file", &cfg.DocsFile, *docsFile)
	override(flags, "base-url", &cfg.BaseURL, *baseURL)
	override(flags, "api-key", &cfg.APIKey, *apiKey)
	override(flags, "executor", &cfg.Executor, *execKind)
	override(flags, "log-level", &cfg.LogLevel, *logLevel)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger, err := internal.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *question); err != nil {
		logger.Error("askapi stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, question string) error {
	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	timeout := time.Duration(cfg.Timeout)
	exec, err := executor.New(cfg.Executor, executor.Options{Timeout: timeout, CurlPath: cfg.CurlPath})
	if err != nil {
		return err
	}

	var recorder metrics.Recorder = metrics.Nop{}
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		recorder = metrics.NewCollector("askapi", reg)
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, reg, logger); err != nil {
				logger.Error("metrics listener failed", zap.Error(err))
			}
		}()
	}

	asker := ask.New(ask.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  executor.APIKey{Header: cfg.APIKeyHeader, Key: cfg.APIKey},
		Lint:    cfg.Lint,
	}, fetcher, exec, ask.WithLogger(logger), ask.WithRecorder(recorder))

	if question != "" {
		fmt.Println(asker.Answer(ctx, question))
		return nil
	}

	s := server.NewMCPServer(
		"askapi",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("askapi answers questions about a REST API by choosing the documented endpoint that best matches the question, calling it, and returning the raw response. Use askApi with a natural-language question."),
	)
	tools.RegisterAll(s, asker)

	logger.Info("starting askapi MCP server (stdio)",
		zap.String("docs", docsSource(cfg)),
		zap.String("base_url", cfg.BaseURL),
		zap.String("executor", cfg.Executor),
	)
	return server.ServeStdio(s)
}

func newFetcher(cfg *config.Config) (openapi.Fetcher, error) {
	if cfg.DocsFile != "" {
		data, err := os.ReadFile(cfg.DocsFile)
		if err != nil {
			return nil, fmt.Errorf("reading docs file: %w", err)
		}
		return openapi.StaticFetcher(data), nil
	}
	return openapi.NewHTTPFetcher(cfg.DocsURL, time.Duration(cfg.Timeout)), nil
}

func docsSource(cfg *config.Config) string {
	if cfg.DocsFile != "" {
		return cfg.DocsFile
	}
	return cfg.DocsURL
}

func override(flags *pflag.FlagSet, name string, dst *string, value string) {
	if flags.Changed(name) {
		*dst = value
	}
}

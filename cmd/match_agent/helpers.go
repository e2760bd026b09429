package main

import (
	"context"
	"fmt"

	"github.com/jonathan/job-match-agent/internal/catalog"
	"github.com/jonathan/job-match-agent/internal/config"
	"github.com/jonathan/job-match-agent/internal/extraction"
	"github.com/jonathan/job-match-agent/internal/llm"
	"github.com/jonathan/job-match-agent/internal/parsing"
	"github.com/jonathan/job-match-agent/internal/pipeline"
	"github.com/jonathan/job-match-agent/internal/writing"
)

// loadConfig loads the config file when a path is given, otherwise the
// defaults. Flag overrides are applied by the callers.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

// loadTables resolves the catalog and stop-term tables, embedded or from
// override paths.
func loadTables(cfg *config.Config) (*catalog.Catalog, catalog.StopTerms, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.Catalog != "" {
		cat, err = catalog.Load(cfg.Catalog)
	} else {
		cat, err = catalog.LoadDefault()
	}
	if err != nil {
		return nil, catalog.StopTerms{}, err
	}

	var stop catalog.StopTerms
	if cfg.StopTerms != "" {
		stop, err = catalog.LoadStopTerms(cfg.StopTerms)
	} else {
		stop, err = catalog.DefaultStopTerms()
	}
	if err != nil {
		return nil, catalog.StopTerms{}, err
	}
	return cat, stop, nil
}

// buildRunner wires the LLM-backed capabilities into a pipeline runner.
// The returned client must be closed by the caller.
func buildRunner(ctx context.Context, cfg *config.Config, onProgress pipeline.ProgressCallback) (*pipeline.Runner, llm.Client, error) {
	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		return nil, nil, fmt.Errorf("API key is required (set %s or use --api-key)", config.APIKeyEnv)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, nil, err
	}

	cat, stop, err := loadTables(cfg)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	fetcher := &extraction.WebFetcher{UseBrowser: cfg.UseBrowser}
	extractor := extraction.NewExtractor(client, fetcher, stop)
	extractor.DefaultURL = cat.Default().URLs[0]

	runner, err := pipeline.NewRunner(pipeline.RunOptions{
		Catalog:    cat,
		StopTerms:  stop,
		Budget:     cfg.Timeout(),
		Parser:     parsing.NewParser(client),
		Extractor:  extractor,
		Judge:      writing.NewJudge(client),
		Generator:  writing.NewGenerator(client),
		OnProgress: onProgress,
		KeepDebug:  cfg.KeepDebug,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return runner, client, nil
}

// Package main is the Vekta CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hyperjump/vekta/internal/cli"
	"github.com/hyperjump/vekta/internal/config"
	"github.com/hyperjump/vekta/internal/explorer"
	"github.com/hyperjump/vekta/internal/ingest"
	"github.com/hyperjump/vekta/internal/keyword"
	"github.com/hyperjump/vekta/internal/models"
	"github.com/hyperjump/vekta/internal/progress"
	"github.com/hyperjump/vekta/internal/project"
	"github.com/hyperjump/vekta/internal/server"
	"github.com/hyperjump/vekta/internal/similarity"
	"github.com/hyperjump/vekta/internal/store"
	"github.com/hyperjump/vekta/internal/vectorize"
	"github.com/hyperjump/vekta/internal/watcher"
	"github.com/hyperjump/vekta/pkg/utils"
)

var version = "dev"

func main() {
	// Pick up VEKTA_* overrides from a local .env if present.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch command := os.Args[1]; command {
	case "serve":
		runServe()
	case "vectorize":
		runVectorize()
	case "rank":
		runRank()
	case "samples":
		runSamples()
	case "import":
		runImport()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("vekta version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// loadConfig loads the config at path, or the defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// joinText joins all positional args with spaces so multi-word text works
// the same with or without shell quoting.
func joinText(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// clampDims enforces the minimum dimensionality at the CLI boundary.
func clampDims(dims int) int {
	if dims < 1 {
		return 1
	}
	return dims
}

func runServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path (defaults apply when omitted)")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	kw, err := keyword.NewIndex()
	if err != nil {
		logger.Fatal("Failed to create keyword index", zap.Error(err))
	}
	defer kw.Close()

	st := store.New(
		cfg.Embedding.Dimensions,
		vectorize.New(cfg.Embedding.Strategy),
		project.Projector{BoundA: cfg.Projection.BoundA, BoundB: cfg.Projection.BoundB, Scale: cfg.Projection.Scale},
	)
	exp := explorer.New(st, kw, similarity.ParseMetric(cfg.Similarity.DefaultMetric), logger)

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if path := cfg.Watch.SamplesPath; path != "" {
		reload := func(p string) {
			samples, err := ingest.SamplesFile(p)
			if err != nil {
				logger.Warn("samples reload failed", zap.String("path", p), zap.Error(err))
				return
			}
			exp.LoadSamples(samples)
		}
		reload(path)
		watchOpts := []watcher.Option{}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		w := watcher.New(path, reload, watchOpts...)
		if err := w.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start samples watcher", zap.Error(err))
		}
		defer w.Stop()
	}

	srv := server.NewServer(exp, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runVectorize() {
	fs := flag.NewFlagSet("vectorize", flag.ExitOnError)
	dims := fs.Int("dims", 128, "vector dimensionality (minimum 1)")
	strategy := fs.String("strategy", vectorize.StrategyWordPosition, "vectorizer strategy: charhash or wordpos")
	format := fs.String("format", "text", "output format: text or json")
	reveal := fs.Bool("reveal", false, "animate a cosmetic progress bar before showing the vector")
	_ = fs.Parse(os.Args[2:])

	text := joinText(fs.Args())
	if text == "" {
		fmt.Fprintln(os.Stderr, "Usage: vekta vectorize [flags] <text>")
		fs.PrintDefaults()
		os.Exit(1)
	}

	vec := vectorize.New(*strategy).Vectorize(text, clampDims(*dims))
	if *reveal && *format == "text" {
		// The vector is already computed; the bar only delays its display.
		done := make(chan struct{})
		t := progress.NewTicker(30*time.Millisecond, 5)
		t.Start(
			func(pct int) { fmt.Printf("\rVectorizing... %3d%%", pct) },
			func() { fmt.Print("\r                    \r"); close(done) },
		)
		<-done
	}
	if err := cli.WriteVector(os.Stdout, text, vec, cli.OutputFormat(*format)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRank() {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	dims := fs.Int("dims", 128, "vector dimensionality (minimum 1)")
	strategy := fs.String("strategy", vectorize.StrategyWordPosition, "vectorizer strategy: charhash or wordpos")
	metric := fs.String("metric", "cosine", "similarity metric: cosine, euclidean, manhattan, dot")
	format := fs.String("format", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	args := fs.Args()
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: vekta rank [flags] <subject text> <candidate text>...")
		fmt.Fprintln(os.Stderr, "The first argument is the reference; the rest are ranked against it.")
		fs.PrintDefaults()
		os.Exit(1)
	}

	st := store.New(clampDims(*dims), vectorize.New(*strategy), project.Default())
	recs := st.LoadSamples(args)
	if len(recs) == 0 {
		fmt.Fprintln(os.Stderr, "No usable texts given")
		os.Exit(1)
	}
	m := similarity.ParseMetric(*metric)
	resp := &models.RankingsResponse{
		Selection: recs[0].ID,
		Metric:    string(m),
		Results:   similarity.Rank(recs[0], st.Records(), m),
	}
	if err := cli.WriteRankings(os.Stdout, resp, cli.OutputFormat(*format)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSamples() {
	fs := flag.NewFlagSet("samples", flag.ExitOnError)
	format := fs.String("format", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if *format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(store.SampleCorpus)
		return
	}
	fmt.Printf("\nFixed sample corpus (%d texts):\n\n", len(store.SampleCorpus))
	for i, text := range store.SampleCorpus {
		fmt.Printf("%2d. %s\n", i+1, text)
	}
}

// serverURL builds the base URL of a running serve instance from config.
func serverURL(cfg *config.Config) string {
	return fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
}

func runImport() {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path (for the server address)")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: vekta import [flags] <file>")
		fs.PrintDefaults()
		os.Exit(1)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	body, _ := json.Marshal(models.ImportRequest{Path: fs.Arg(0)})
	resp, err := http.Post(serverURL(cfg)+"/api/v1/import", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import failed (is the server running?): %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	var result struct {
		Imported int                  `json:"imported"`
		Records  []*models.RecordView `json:"records"`
		Error    string               `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		fmt.Fprintf(os.Stderr, "Bad response: %v\n", err)
		os.Exit(1)
	}
	if result.Error != "" {
		fmt.Fprintf(os.Stderr, "Import failed: %s\n", result.Error)
		os.Exit(1)
	}
	fmt.Printf("Imported %d records\n", result.Imported)
	_ = cli.WriteRecords(os.Stdout, result.Records, cli.OutputText)
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path (for the server address)")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	resp, err := http.Get(serverURL(cfg) + "/api/v1/status")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status failed (is the server running?): %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	var status models.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		fmt.Fprintf(os.Stderr, "Bad response: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Records:  %d\n", status.Records)
	fmt.Printf("Dims:     %d\n", status.Dims)
	fmt.Printf("Strategy: %s\n", status.Strategy)
	fmt.Printf("Metric:   %s\n", status.Metric)
	if status.Selection != "" {
		fmt.Printf("Selected: %s\n", status.Selection)
	}
}

func printUsage() {
	fmt.Println(`vekta - toy embedding explorer

Usage:
  vekta serve     [-config path] [-debug]        start the HTTP API server
  vekta vectorize [-dims n] [-strategy s] <text> print a text's vector
  vekta rank      [-metric m] <subject> <cand>.. rank candidates against a subject
  vekta samples   [-format text|json]            print the fixed sample corpus
  vekta import    [-config path] <file>          import texts from a document into a running server
  vekta status    [-config path]                 show a running server's store state
  vekta version                                  print version
  vekta help                                     print this help`)
}

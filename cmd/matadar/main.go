// Package main is the matadar CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gramseva/matadar/internal/assembler"
	"github.com/gramseva/matadar/internal/cli"
	"github.com/gramseva/matadar/internal/config"
	"github.com/gramseva/matadar/internal/models"
	"github.com/gramseva/matadar/internal/resolver"
	"github.com/gramseva/matadar/internal/search"
	"github.com/gramseva/matadar/internal/searchkey"
	"github.com/gramseva/matadar/internal/server"
	"github.com/gramseva/matadar/internal/store"
	"github.com/gramseva/matadar/internal/translit"
	"github.com/gramseva/matadar/pkg/utils"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/matadar/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	_ = godotenv.Load()
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "translit":
		runTranslit()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("matadar version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
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

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Translit.Watch {
		if err := components.Provider.Start(watchCtx); err != nil {
			logger.Warn("dictionary watch disabled", zap.Error(err))
		}
	}

	srv := server.NewServer(components.Engine, components.Storage, &cfg.Server, logger)
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

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = use direct store access)")
	first := fs.String("first", "", "first name")
	middle := fs.String("middle", "", "middle name")
	last := fs.String("last", "", "last name / surname")
	voterID := fs.String("id", "", "voter ID (exact or partial; takes priority over name fields)")
	outputFormat := fs.String("output", "text", "output format: text, compact, or json")
	_ = fs.Parse(os.Args[2:])

	form := &models.SearchForm{
		FirstName:  *first,
		MiddleName: *middle,
		LastName:   *last,
		VoterID:    *voterID,
	}
	// Bare positional args are a convenience for surname-only search.
	if form.FirstName == "" && form.LastName == "" && form.VoterID == "" && fs.NArg() > 0 {
		form.LastName = joinArgs(fs.Args())
	}

	format, err := parseOutputFormat(*outputFormat)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if *serverURL != "" {
		response, err := searchViaHTTP(*serverURL, form)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
			os.Exit(1)
		}
		if err := cli.WriteResults(os.Stdout, response, format); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Direct store access (when the server is not running).
	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	defer components.Close()

	response, err := components.Engine.PerformSearch(context.Background(), form)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteResults(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runTranslit() {
	fs := flag.NewFlagSet("translit", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path (for the dictionary overlay)")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: matadar translit <text>")
		os.Exit(1)
	}
	text := joinArgs(fs.Args())

	dictPath := ""
	if cfg, _, err := loadConfig(*configPath); err == nil {
		dictPath = cfg.Translit.DictionaryPath
	}
	provider := translit.NewProvider(dictPath)
	defer provider.Stop()
	fmt.Println(provider.Current().Transliterate(text))
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	_ = fs.Parse(os.Args[2:])

	resp, err := http.Get(*serverURL + "/api/v1/status")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Server returned %d: %s\n", resp.StatusCode, string(b))
		os.Exit(1)
	}
	b, _ := io.ReadAll(resp.Body)
	fmt.Print(string(b))
}

// joinArgs joins positional args with spaces so multi-word input works the
// same with or without shell quoting.
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func parseOutputFormat(name string) (cli.OutputFormat, error) {
	switch name {
	case "text":
		return cli.OutputText, nil
	case "compact":
		return cli.OutputCompact, nil
	case "json":
		return cli.OutputJSON, nil
	default:
		return cli.OutputText, fmt.Errorf("unknown output format %q; use text, compact, or json", name)
	}
}

func searchViaHTTP(serverURL string, form *models.SearchForm) (*models.SearchResponse, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(serverURL+"/api/v1/search", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var response models.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

// Components holds initialized services.
type Components struct {
	Storage  store.Store
	Provider *translit.Provider
	Engine   *search.Engine
}

func (c *Components) Close() {
	if c.Provider != nil {
		c.Provider.Stop()
	}
	if c.Storage != nil {
		_ = c.Storage.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	var (
		st  store.Store
		err error
	)
	if cfg.Store.FixturePath != "" {
		st, err = store.NewMemoryStoreFromFile(cfg.Store.FixturePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load roll fixture: %w", err)
		}
		logger.Info("using local roll fixture", zap.String("path", cfg.Store.FixturePath))
	} else {
		if cfg.Store.BaseURL == "" {
			return nil, fmt.Errorf("store.base_url is required (or set store.fixture_path)")
		}
		st = store.NewRTDBStore(
			cfg.Store.BaseURL,
			cfg.Store.AuthToken,
			time.Duration(cfg.Store.TimeoutSeconds)*time.Second,
		)
	}
	if cfg.Store.CachePath != "" {
		cached, err := store.NewCachedStore(st, cfg.Store.CachePath)
		if err != nil {
			// A broken cache should not block lookups; fall back to the
			// uncached store.
			logger.Warn("record cache disabled", zap.String("path", cfg.Store.CachePath), zap.Error(err))
		} else {
			st = cached
		}
	}

	provider := translit.NewProvider(cfg.Translit.DictionaryPath, translit.WithLogger(logger))
	keys := searchkey.NewGenerator(provider)
	res := resolver.NewResolver(st, keys, cfg.Search.IDScanLimit, logger)
	asm := assembler.NewAssembler(st, cfg.Search.BatchSize, logger)
	engine := search.NewEngine(provider, res, asm, logger)

	return &Components{
		Storage:  st,
		Provider: provider,
		Engine:   engine,
	}, nil
}

func printUsage() {
	fmt.Println(`matadar - voter roll lookup

Usage:
  matadar server [flags]            Start the HTTP server
  matadar search [flags] [surname]  Search the voter roll
  matadar translit <text>           Transliterate text to Devanagari
  matadar status [flags]            Show server status
  matadar version                   Show version
  matadar help                      Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/matadar/config.yaml)
  --debug            Enable debug logging

Search Flags:
  --config string    Config file path (for direct store mode)
  --server string    Server URL (default: http://localhost:8080). Use empty (--server "") for direct store access.
  --first string     First name (Latin or Devanagari)
  --middle string    Middle name
  --last string      Last name / surname
  --id string        Voter ID, exact or partial; takes priority over name fields
  --output string    Output format: text, compact, or json (default: text)

Examples:
  matadar server
  matadar search --first mangesh --middle ramdas --last badale
  matadar search badale
  matadar search --id UXM8227381
  matadar search --id 8227381 --output json
  matadar translit mangesh badale
  matadar status`)
}

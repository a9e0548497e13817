// Package main provides the notekeep local server. Clients talk to it
// over REST and WebSocket on localhost.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/poyhsiao/notekeep/internal/assistant"
	"github.com/poyhsiao/notekeep/internal/config"
	"github.com/poyhsiao/notekeep/internal/crypto"
	"github.com/poyhsiao/notekeep/internal/export"
	"github.com/poyhsiao/notekeep/internal/ident"
	"github.com/poyhsiao/notekeep/internal/improve"
	"github.com/poyhsiao/notekeep/internal/logging"
	"github.com/poyhsiao/notekeep/internal/persistence"
	"github.com/poyhsiao/notekeep/internal/persistence/file"
	"github.com/poyhsiao/notekeep/internal/persistence/sqlite"
	"github.com/poyhsiao/notekeep/internal/search"
	"github.com/poyhsiao/notekeep/internal/store"
	syncpkg "github.com/poyhsiao/notekeep/internal/sync"

	"github.com/poyhsiao/notekeep/cmd/notesd/handlers"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	logging.Init(os.Stdout, logging.LevelInfo)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("Failed to load config", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		logging.Error("Failed to create data directory", err, map[string]interface{}{
			"dir": cfg.DataDir,
		})
		os.Exit(1)
	}

	gateway, closeGateway, err := openGateway(cfg)
	if err != nil {
		logging.Error("Failed to open storage", err, map[string]interface{}{
			"storage": cfg.Storage,
		})
		os.Exit(1)
	}
	defer closeGateway()

	st, err := store.Open(gateway)
	if err != nil {
		logging.Error("Failed to load state", err)
		os.Exit(1)
	}

	searchEngine := search.NewEngine(st)
	interpreter := assistant.New(st, searchEngine)
	improver := improve.NewImprover(improveConfig(cfg, st))
	exporter := export.NewService(st)

	hub := NewWSHub()

	var syncEngine *syncpkg.Engine
	var scheduler *syncpkg.Scheduler
	if cfg.Sync.Enable {
		syncEngine = syncpkg.NewEngine(st,
			syncpkg.NewHTTPDocumentStore(cfg.Sync.Endpoint), syncDocumentID(st))
		scheduler = syncpkg.NewScheduler(syncEngine,
			time.Duration(cfg.Sync.Interval)*time.Minute)
	}

	h := handlers.New(st, searchEngine, interpreter, improver, exporter, syncEngine, hub)

	mux := http.NewServeMux()
	h.Register(mux)
	mux.HandleFunc("/ws", HandleWebSocket(hub))
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"notekeep"}`))
	})

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if scheduler != nil {
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	go func() {
		logging.Info("notekeep server starting", map[string]interface{}{
			"addr":    cfg.ListenAddr,
			"storage": cfg.Storage,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("Server failed", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error("Shutdown error", err)
	}
}

// openGateway opens the configured persistence backend.
func openGateway(cfg config.Config) (persistence.Gateway, func(), error) {
	switch cfg.Storage {
	case "file":
		g := file.New(filepath.Join(cfg.DataDir, "notekeep.json"))
		return g, func() {}, nil
	default:
		g, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return g, func() { g.Close() }, nil
	}
}

// improveConfig assembles the remote improve settings. The API key is
// stored encrypted in the persisted preferences; the passphrase comes
// from the environment. Anything missing gives local-only rewriting.
func improveConfig(cfg config.Config, st *store.Store) *improve.Config {
	if cfg.Improve.Provider == "" {
		return nil
	}

	ic := &improve.Config{
		Provider:    improve.Provider(cfg.Improve.Provider),
		APIEndpoint: cfg.Improve.Endpoint,
		ModelName:   cfg.Improve.Model,
		MaxTokens:   cfg.Improve.MaxTokens,
	}

	prefs := st.Preferences()
	passphrase := os.Getenv("NOTEKEEP_SECRET")
	if prefs.ImproveAPIKeyEncrypted != "" && passphrase != "" {
		key, err := crypto.Decrypt(prefs.ImproveAPIKeyEncrypted, []byte(passphrase))
		if err != nil {
			logging.Warn("Failed to decrypt improve API key, using local rewriting only")
		} else {
			ic.APIKey = string(key)
		}
	}
	return ic
}

// syncDocumentID returns the persisted sync document id, minting one on
// first use so the same document is reused across restarts.
func syncDocumentID(st *store.Store) string {
	prefs := st.Preferences()
	if prefs.SyncDocumentID != "" {
		return prefs.SyncDocumentID
	}
	prefs.SyncDocumentID = ident.NewClientID()
	if prefs.SyncClientID == "" {
		prefs.SyncClientID = ident.NewClientID()
	}
	if err := st.SetPreferences(prefs); err != nil {
		logging.Warn("Failed to persist sync identifiers")
	}
	return prefs.SyncDocumentID
}

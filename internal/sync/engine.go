// Package sync provides push-only cloud synchronization.
//
// The engine uploads a snapshot document to a remote store keyed by an
// opaque identifier. Pull is deliberately not implemented; sync in this
// design is a one-way backup, not a merge.
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/poyhsiao/notekeep/internal/errors"
	"github.com/poyhsiao/notekeep/internal/logging"
	"github.com/poyhsiao/notekeep/internal/models"
	"github.com/poyhsiao/notekeep/internal/store"
)

// PayloadVersion tags the document schema uploaded to the remote store.
const PayloadVersion = 1

// Payload is the document pushed to the remote store.
type Payload struct {
	Notes       []models.Note `json:"notes"`
	Todos       []models.Todo `json:"todos"`
	Tags        []string      `json:"tags"`
	PinnedNotes []models.Note `json:"pinnedNotes"`
	LastSync    int64         `json:"lastSync"` // Unix milliseconds
	Version     int           `json:"version"`
}

// DocumentStore is the remote collaborator contract.
type DocumentStore interface {
	Push(ctx context.Context, key string, doc []byte) error
}

// Status represents the current sync status.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSyncing Status = "syncing"
	StatusFailed  Status = "failed"
)

// Result describes one completed push.
type Result struct {
	Key       string
	SizeBytes int
	Duration  time.Duration
}

// Engine pushes store snapshots to a document store.
type Engine struct {
	store  *store.Store
	remote DocumentStore
	docID  string

	mu       sync.Mutex
	status   Status
	lastSync *time.Time
	lastErr  error
}

// NewEngine creates a sync engine for the given document id.
func NewEngine(s *store.Store, remote DocumentStore, docID string) *Engine {
	return &Engine{
		store:  s,
		remote: remote,
		docID:  docID,
		status: StatusIdle,
	}
}

// Status returns the current sync status.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// LastSync returns the time of the last successful push, or nil.
func (e *Engine) LastSync() *time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastSync
}

// LastError returns the most recent push error, or nil.
func (e *Engine) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Push uploads the current snapshot. A failure is reported, never fatal:
// local state is untouched and the next push retries from scratch.
func (e *Engine) Push(ctx context.Context) (*Result, error) {
	e.mu.Lock()
	if e.status == StatusSyncing {
		e.mu.Unlock()
		return nil, errors.New(errors.ErrSyncFailed, "sync already in progress")
	}
	e.status = StatusSyncing
	e.mu.Unlock()

	start := time.Now()
	snap := e.store.Snapshot()

	payload := Payload{
		Notes:       snap.Notes,
		Todos:       snap.Todos,
		Tags:        snap.Tags,
		PinnedNotes: snap.PinnedNotes,
		LastSync:    start.UnixMilli(),
		Version:     PayloadVersion,
	}

	doc, err := json.Marshal(payload)
	if err != nil {
		return nil, e.fail(errors.Wrap(errors.ErrSyncFailed, "failed to encode sync payload", err))
	}

	if err := e.remote.Push(ctx, e.docID, doc); err != nil {
		return nil, e.fail(errors.Wrap(errors.ErrSyncFailed, "failed to push snapshot", err))
	}

	end := time.Now()
	e.mu.Lock()
	e.status = StatusIdle
	e.lastSync = &end
	e.lastErr = nil
	e.mu.Unlock()

	prefs := e.store.Preferences()
	prefs.LastSync = start.UnixMilli()
	if err := e.store.SetPreferences(prefs); err != nil {
		logging.Warn("Could not record last sync time", map[string]interface{}{"error": err.Error()})
	}

	logging.Info("Snapshot pushed", map[string]interface{}{
		"key":   e.docID,
		"bytes": len(doc),
	})

	return &Result{
		Key:       e.docID,
		SizeBytes: len(doc),
		Duration:  end.Sub(start),
	}, nil
}

func (e *Engine) fail(err error) error {
	e.mu.Lock()
	e.status = StatusFailed
	e.lastErr = err
	e.mu.Unlock()
	return err
}

// =====================================================
// HTTP Document Store
// =====================================================

// HTTPDocumentStore pushes documents to a remote HTTP endpoint with
// PUT {endpoint}/documents/{key}.
type HTTPDocumentStore struct {
	endpoint string
	client   *http.Client
}

// NewHTTPDocumentStore creates an HTTP-backed document store.
func NewHTTPDocumentStore(endpoint string) *HTTPDocumentStore {
	return &HTTPDocumentStore{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Push uploads a document.
func (s *HTTPDocumentStore) Push(ctx context.Context, key string, doc []byte) error {
	url := fmt.Sprintf("%s/documents/%s", s.endpoint, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(doc))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("document store returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

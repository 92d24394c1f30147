package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ytget/yt-browser/internal/model"
)

// Server constants
const (
	// DefaultPort 0 lets the OS choose a free port
	DefaultPort = 0

	ReadTimeout     = 5 * time.Second
	WriteTimeout    = 10 * time.Second
	ShutdownTimeout = 3 * time.Second
)

// QueueItem is one entry in the install queue exposed over HTTP
type QueueItem struct {
	ID       string  `json:"id"`
	Tool     string  `json:"tool"`
	Status   string  `json:"status"`
	Progress float64 `json:"progress"`
	Percent  int     `json:"percent"`
	Error    string  `json:"error,omitempty"`
}

// HistoryItem is one visited view exposed over HTTP
type HistoryItem struct {
	Kind    string `json:"kind"`
	Locator string `json:"locator,omitempty"`
	Title   string `json:"title,omitempty"`
}

// healthResponse is the health endpoint payload
type healthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Queue   int    `json:"queue"`
	History int    `json:"history"`
}

// StatusServer exposes browser state on localhost for external tooling
type StatusServer struct {
	mu        sync.RWMutex
	queue     []QueueItem
	history   []HistoryItem
	startedAt time.Time

	httpServer *http.Server
	listener   net.Listener
}

// NewStatusServer creates a status server with empty state
func NewStatusServer() *StatusServer {
	return &StatusServer{startedAt: time.Now()}
}

// UpdateQueue replaces the published install queue from install tasks
func (s *StatusServer) UpdateQueue(tasks []*model.InstallTask) {
	items := make([]QueueItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, QueueItem{
			ID:       task.ID,
			Tool:     task.Tool,
			Status:   task.Status.String(),
			Progress: task.Progress,
			Percent:  task.Percent,
			Error:    task.LastError,
		})
	}

	s.mu.Lock()
	s.queue = items
	s.mu.Unlock()
}

// UpdateHistory replaces the published navigation history from descriptors
func (s *StatusServer) UpdateHistory(descs []model.ViewDescriptor) {
	items := make([]HistoryItem, 0, len(descs))
	for _, desc := range descs {
		item := HistoryItem{
			Kind:    string(desc.Kind),
			Locator: desc.Locator,
		}
		if desc.Snapshot != nil {
			item.Title = desc.Snapshot.Title
		}
		items = append(items, item)
	}

	s.mu.Lock()
	s.history = items
	s.mu.Unlock()
}

// Start begins listening on 127.0.0.1:port and returns the bound port.
// Port 0 picks a free port.
func (s *StatusServer) Start(port int) (int, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return 0, fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:      s.Routes(),
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Status server error: %v", err)
		}
	}()

	bound := listener.Addr().(*net.TCPAddr).Port
	log.Printf("Status server listening on 127.0.0.1:%d", bound)
	return bound, nil
}

// Stop shuts the server down gracefully
func (s *StatusServer) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop status server: %w", err)
	}
	return nil
}

// Routes builds the HTTP router
func (s *StatusServer) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/queue", s.handleQueue)
	r.Get("/api/history", s.handleHistory)

	return r
}

func (s *StatusServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	resp := healthResponse{
		Status:  "ok",
		Uptime:  time.Since(s.startedAt).Round(time.Second).String(),
		Queue:   len(s.queue),
		History: len(s.history),
	}
	s.mu.RUnlock()

	writeJSON(w, resp)
}

func (s *StatusServer) handleQueue(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	items := make([]QueueItem, len(s.queue))
	copy(items, s.queue)
	s.mu.RUnlock()

	writeJSON(w, items)
}

func (s *StatusServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	items := make([]HistoryItem, len(s.history))
	copy(items, s.history)
	s.mu.RUnlock()

	writeJSON(w, items)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

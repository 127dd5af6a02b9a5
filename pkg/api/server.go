package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	httpx "github.com/mfreeman451/streamdash/pkg/http"
	"github.com/mfreeman451/streamdash/pkg/mockdata"
	"github.com/mfreeman451/streamdash/pkg/models"
	"github.com/mfreeman451/streamdash/pkg/store"
	"golang.org/x/time/rate"
)

const (
	defaultSeriesHours = 24
	maxSeriesHours     = 168
	readHeaderTimeout  = 10 * time.Second
)

// Config tunes the websocket push rate per connection.
type Config struct {
	PushRate  float64
	PushBurst int
}

type APIServer struct {
	store  store.Service
	source mockdata.Source
	router *mux.Router
	hub    *Hub

	mu  sync.Mutex
	srv *http.Server
}

func NewAPIServer(s store.Service, source mockdata.Source, cfg Config) *APIServer {
	limit := rate.Inf
	if cfg.PushRate > 0 {
		limit = rate.Limit(cfg.PushRate)
	}

	burst := cfg.PushBurst
	if burst <= 0 {
		burst = 1
	}

	srv := &APIServer{
		store:  s,
		source: source,
		router: mux.NewRouter(),
		hub:    NewHub(s, limit, burst),
	}
	srv.setupRoutes()

	return srv
}

func (s *APIServer) setupRoutes() {
	s.router.HandleFunc("/api/metrics/current", s.getCurrentMetrics).Methods("GET")
	s.router.HandleFunc("/api/metrics/history", s.getMetricsHistory).Methods("GET")
	s.router.HandleFunc("/api/metrics/series", s.getMetricsSeries).Methods("GET")

	s.router.HandleFunc("/api/nodes", s.getNodes).Methods("GET")
	s.router.HandleFunc("/api/nodes/{id}", s.getNode).Methods("GET")
	s.router.HandleFunc("/api/topics", s.getTopics).Methods("GET")
	s.router.HandleFunc("/api/topics/{name}", s.getTopic).Methods("GET")

	s.router.HandleFunc("/api/alerts", s.getAlerts).Methods("GET")
	s.router.HandleFunc("/api/alerts/{id}/acknowledge", s.acknowledgeAlert).Methods("POST")

	s.router.HandleFunc("/api/security/events", s.getSecurityEvents).Methods("GET")
	s.router.HandleFunc("/api/security/users", s.getUsers).Methods("GET")
	s.router.HandleFunc("/api/security/keys", s.getAPIKeys).Methods("GET")

	s.router.HandleFunc("/api/ui", s.getUI).Methods("GET")
	s.router.HandleFunc("/api/ui/realtime/toggle", s.toggleRealTime).Methods("POST")
	s.router.HandleFunc("/api/ui/sidebar/toggle", s.toggleSidebar).Methods("POST")
	s.router.HandleFunc("/api/ui/time-range", s.setTimeRange).Methods("PUT")
	s.router.HandleFunc("/api/ui/theme", s.setTheme).Methods("PUT")

	s.router.HandleFunc("/api/status", s.getSystemStatus).Methods("GET")
	s.router.HandleFunc("/api/ws", s.hub.ServeWS).Methods("GET")
}

// Handler returns the router wrapped in the CORS middleware. The middleware
// sits outside the router so preflight requests never reach method matching.
func (s *APIServer) Handler() http.Handler {
	return httpx.CommonMiddleware(s.router)
}

func (s *APIServer) getCurrentMetrics(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, s.store.CurrentMetrics())
}

func (s *APIServer) getMetricsHistory(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, s.store.MetricsHistory())
}

func (s *APIServer) getMetricsSeries(w http.ResponseWriter, r *http.Request) {
	hours := defaultSeriesHours

	if v := r.URL.Query().Get("hours"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxSeriesHours {
			httpx.WriteError(w, http.StatusBadRequest,
				fmt.Sprintf("hours must be between 1 and %d", maxSeriesHours))

			return
		}

		hours = n
	}

	httpx.WriteJSON(w, http.StatusOK, s.source.MetricsTimeSeries(hours))
}

func (s *APIServer) getNodes(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, s.store.Nodes())
}

func (s *APIServer) getNode(w http.ResponseWriter, r *http.Request) {
	nodeID := mux.Vars(r)["id"]

	for _, node := range s.store.Nodes() {
		if node.ID == nodeID {
			httpx.WriteJSON(w, http.StatusOK, node)
			return
		}
	}

	httpx.WriteError(w, http.StatusNotFound, "node not found")
}

func (s *APIServer) getTopics(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, s.store.Topics())
}

func (s *APIServer) getTopic(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	for _, topic := range s.store.Topics() {
		if topic.Name == name {
			httpx.WriteJSON(w, http.StatusOK, topic)
			return
		}
	}

	httpx.WriteError(w, http.StatusNotFound, "topic not found")
}

func (s *APIServer) getAlerts(w http.ResponseWriter, r *http.Request) {
	alerts := s.store.Alerts()

	v := r.URL.Query().Get("acknowledged")
	if v == "" {
		httpx.WriteJSON(w, http.StatusOK, alerts)
		return
	}

	want, err := strconv.ParseBool(v)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "acknowledged must be true or false")
		return
	}

	filtered := make([]models.Alert, 0, len(alerts))

	for i := range alerts {
		if alerts[i].Acknowledged == want {
			filtered = append(filtered, alerts[i])
		}
	}

	httpx.WriteJSON(w, http.StatusOK, filtered)
}

func (s *APIServer) acknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	alertID := mux.Vars(r)["id"]

	if !s.store.AcknowledgeAlert(alertID) {
		httpx.WriteError(w, http.StatusNotFound, "alert not found")
		return
	}

	for _, alert := range s.store.Alerts() {
		if alert.ID == alertID {
			httpx.WriteJSON(w, http.StatusOK, alert)
			return
		}
	}

	// acknowledged, then replaced by a concurrent writer
	w.WriteHeader(http.StatusNoContent)
}

func (s *APIServer) getSecurityEvents(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, s.source.SecurityEvents())
}

func (s *APIServer) getUsers(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, s.source.Users())
}

func (s *APIServer) getAPIKeys(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, s.source.APIKeys())
}

func (s *APIServer) getUI(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, s.store.UI())
}

func (s *APIServer) toggleRealTime(w http.ResponseWriter, _ *http.Request) {
	s.store.ToggleRealTime()

	ui := s.store.UI()
	log.Printf("Real-time updates enabled=%v", ui.RealTimeEnabled)

	httpx.WriteJSON(w, http.StatusOK, ui)
}

func (s *APIServer) toggleSidebar(w http.ResponseWriter, _ *http.Request) {
	s.store.ToggleSidebar()
	httpx.WriteJSON(w, http.StatusOK, s.store.UI())
}

func (s *APIServer) setTimeRange(w http.ResponseWriter, r *http.Request) {
	var req timeRangeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !req.TimeRange.Valid() {
		httpx.WriteError(w, http.StatusBadRequest, fmt.Sprintf("unknown time range %q", req.TimeRange))
		return
	}

	s.store.SetTimeRange(req.TimeRange)
	httpx.WriteJSON(w, http.StatusOK, s.store.UI())
}

func (s *APIServer) setTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !req.Theme.Valid() {
		httpx.WriteError(w, http.StatusBadRequest, fmt.Sprintf("unknown theme %q", req.Theme))
		return
	}

	s.store.SetTheme(req.Theme)
	httpx.WriteJSON(w, http.StatusOK, s.store.UI())
}

func (s *APIServer) getSystemStatus(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()

	status := SystemStatus{
		TotalNodes:      len(snap.Nodes),
		Topics:          len(snap.Topics),
		RealTimeEnabled: snap.UI.RealTimeEnabled,
		LastUpdate:      time.Now(),
	}

	for i := range snap.Nodes {
		switch snap.Nodes[i].Status {
		case models.NodeHealthy:
			status.HealthyNodes++
		case models.NodeWarning:
			status.WarningNodes++
		case models.NodeCritical:
			status.CriticalNodes++
		}
	}

	for i := range snap.Alerts {
		if !snap.Alerts[i].Acknowledged {
			status.UnacknowledgedAlerts++
		}
	}

	httpx.WriteJSON(w, http.StatusOK, status)
}

// Start serves the API on addr until Stop is called.
func (s *APIServer) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()

	log.Printf("Starting HTTP server on %s", addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}

	return nil
}

// Stop closes websocket clients and shuts the HTTP server down.
func (s *APIServer) Stop(ctx context.Context) error {
	s.hub.Close()

	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	return nil
}

package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	VisitSvcURL      string
	SettlementSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger *slog.Logger
}

func NewGateway(config Config, client HTTPClient, logger *slog.Logger) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		logger: logger,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	g.logger.Debug("proxy", slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.String("upstream", targetURL))

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.logger.Error("failed to create upstream request", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("upstream unavailable", slog.String("upstream", targetURL), slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "upstream unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn("failed to copy upstream response", slog.String("error", err.Error()))
	}
}

// RouteHandler picks the upstream by path. Restaurant paths are split: the
// settlement reports live in settlement-svc and table lookups in visit-svc.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case strings.HasPrefix(path, "/api/settlements"):
		g.ProxyRequest(w, r, g.config.SettlementSvcURL)
	case strings.HasPrefix(path, "/api/restaurants/") && strings.HasSuffix(path, "/settlements"):
		g.ProxyRequest(w, r, g.config.SettlementSvcURL)
	case strings.HasPrefix(path, "/api/restaurants/") && strings.Contains(path, "/tables"):
		g.ProxyRequest(w, r, g.config.VisitSvcURL)
	case strings.HasPrefix(path, "/api/visits"), strings.HasPrefix(path, "/api/orders"):
		g.ProxyRequest(w, r, g.config.VisitSvcURL)
	default:
		g.logger.Info("unmatched api route", slog.String("method", r.Method), slog.String("path", path))
		writeError(w, http.StatusNotFound, "API route not found")
	}
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"eatery-blue/internal/respond"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	EaterySvcURL string
	IngestSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger *zap.Logger
}

func NewGateway(config Config, client HTTPClient, logger *zap.Logger) *Gateway {
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
	g.logger.Debug("proxy request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("target", targetURL))

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.logger.Error("failed to create upstream request", zap.String("url", url), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("upstream unavailable", zap.String("target", targetURL), zap.Error(err))
		respond.Error(w, http.StatusBadGateway, "upstream service unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn("failed to copy upstream response", zap.Error(err))
	}
}

// RouteHandler picks the backend by path prefix. The singular /api/eatery
// and /api/event forms used by older app builds are rewritten first.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if rest, ok := cutSegment(path, "/api/eatery"); ok {
		r.URL.Path = "/api/eateries" + rest
		path = r.URL.Path
	} else if rest, ok := cutSegment(path, "/api/event"); ok {
		r.URL.Path = "/api/events" + rest
		path = r.URL.Path
	}
	path = strings.TrimSuffix(path, "/")
	r.URL.Path = path

	switch {
	case hasSegment(path, "/api/eateries"), hasSegment(path, "/api/events"):
		g.ProxyRequest(w, r, g.config.EaterySvcURL)
	case hasSegment(path, "/api/ingestion"):
		g.ProxyRequest(w, r, g.config.IngestSvcURL)
	default:
		g.logger.Debug("unmatched api route", zap.String("path", path))
		respond.Error(w, http.StatusNotFound, "route not found")
	}
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}

// hasSegment reports whether path is prefix or a sub-path of it.
func hasSegment(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func cutSegment(path, prefix string) (string, bool) {
	if !hasSegment(path, prefix) {
		return "", false
	}
	return strings.TrimPrefix(path, prefix), true
}

package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eatery-blue/api-gateway/internal/gateway"
	"eatery-blue/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler(t *testing.T) {
	config := gateway.Config{
		EaterySvcURL: "http://eatery-svc",
		IngestSvcURL: "http://ingest-svc",
	}

	tests := []struct {
		name        string
		method      string
		path        string
		expectedURL string
	}{
		{name: "eateries", method: http.MethodGet, path: "/api/eateries", expectedURL: "http://eatery-svc/api/eateries"},
		{name: "trailing_slash", method: http.MethodGet, path: "/api/eateries/", expectedURL: "http://eatery-svc/api/eateries"},
		{name: "day_view_query", method: http.MethodGet, path: "/api/eateries/day/1?x=1", expectedURL: "http://eatery-svc/api/eateries/day/1?x=1"},
		{name: "singular_eatery", method: http.MethodPatch, path: "/api/eatery/4/", expectedURL: "http://eatery-svc/api/eateries/4"},
		{name: "event_vote", method: http.MethodPost, path: "/api/events/9/vote", expectedURL: "http://eatery-svc/api/events/9/vote"},
		{name: "singular_event", method: http.MethodGet, path: "/api/event/9", expectedURL: "http://eatery-svc/api/events/9"},
		{name: "ingestion", method: http.MethodPost, path: "/api/ingestion/run", expectedURL: "http://ingest-svc/api/ingestion/run"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(config, mockClient, zap.NewNop())

			mockClient.On("Do", mock.MatchedBy(func(r *http.Request) bool {
				return r.Method == testCase.method && r.URL.String() == testCase.expectedURL
			})).Return(jsonResponse(http.StatusOK, `{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			rr := httptest.NewRecorder()
			gw.RouteHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
		})
	}
}

func TestGateway_RouteHandler_UpstreamStatusPassesThrough(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{IngestSvcURL: "http://ingest-svc"}, mockClient, zap.NewNop())

	mockClient.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusConflict, `{"success":false,"error":"ingestion already running"}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/ingestion/run", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "already running")
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, zap.NewNop())

	for _, path := range []string{"/api/unknown", "/api/eateriesx"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()

		gw.RouteHandler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.Contains(t, rr.Body.String(), `"success":false`)
	}
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		EaterySvcURL: "http://invalid",
	}, mockClient, zap.NewNop())

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("dial tcp: connection refused")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/eateries", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")
}

func TestGateway_SetupRoutes(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{EaterySvcURL: "http://eatery-svc"}, mockClient, zap.NewNop())
	router := gw.SetupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	mockClient.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, `[]`), nil).Once()
	req = httptest.NewRequest(http.MethodGet, "/api/eateries/simple", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

package openrouteservice

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/disasternav/disasternav/internal/routing"
)

var (
	testOrigin      = routing.Coordinate{Lat: 12.9716, Lon: 77.5946}
	testDestination = routing.Coordinate{Lat: 12.9352, Lon: 77.6245}
)

const successResponse = `{
	"routes": [
		{
			"summary": {"distance": 5120.3, "duration": 710.2},
			"geometry": "_p~iF~ps|U_ulLnnqC",
			"segments": [
				{
					"distance": 5120.3,
					"duration": 710.2,
					"steps": [
						{"distance": 1400.0, "duration": 180.0, "type": 11, "instruction": "Head north on Main Street", "name": "Main Street"},
						{"distance": 2500.3, "duration": 360.2, "type": 1, "instruction": "Turn right onto River Road", "name": "River Road"},
						{"distance": 1220.0, "duration": 170.0, "type": 10, "instruction": "Arrive at your destination", "name": "-"}
					]
				}
			]
		}
	]
}`

func TestClient_GetRoute_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v2/directions/driving-car" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "test-key" {
			t.Errorf("expected Authorization test-key, got %q", r.Header.Get("Authorization"))
		}

		body, _ := io.ReadAll(r.Body)
		var req orsRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("request body is not valid JSON: %v", err)
		}
		// Coordinates travel in lon,lat order
		if len(req.Coordinates) != 2 || req.Coordinates[0][0] != testOrigin.Lon {
			t.Errorf("unexpected coordinates %v", req.Coordinates)
		}
		if !req.Instructions || !req.Geometry {
			t.Error("expected instructions and geometry enabled")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(successResponse))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	route, err := client.GetRoute(context.Background(), testOrigin, testDestination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if route.DistanceMeters != 5120.3 {
		t.Errorf("expected distance 5120.3, got %v", route.DistanceMeters)
	}
	if route.DurationSeconds != 710.2 {
		t.Errorf("expected duration 710.2, got %v", route.DurationSeconds)
	}
	if route.GeometryPolyline != "_p~iF~ps|U_ulLnnqC" {
		t.Errorf("unexpected geometry %q", route.GeometryPolyline)
	}
	if len(route.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(route.Steps))
	}
	if route.Steps[0].RoadName != "Main Street" {
		t.Errorf("step 0 road name = %q", route.Steps[0].RoadName)
	}
	// ORS marks unnamed roads with "-"; that becomes empty for downstream
	// defaulting.
	if route.Steps[2].RoadName != "" {
		t.Errorf("step 2 road name = %q, want empty", route.Steps[2].RoadName)
	}
	if route.Steps[1].Instruction != "Turn right onto River Road" {
		t.Errorf("step 1 instruction = %q", route.Steps[1].Instruction)
	}
}

func TestClient_GetRoute_NoRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"routes":[]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	_, err := client.GetRoute(context.Background(), testOrigin, testDestination)
	if !errors.Is(err, routing.ErrNoRouteFound) {
		t.Errorf("expected ErrNoRouteFound, got %v", err)
	}
}

func TestClient_GetRoute_RouteNotFoundCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":2009,"message":"Route could not be found between the given points"}}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	_, err := client.GetRoute(context.Background(), testOrigin, testDestination)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var routingErr *routing.Error
	if !errors.As(err, &routingErr) {
		t.Fatalf("expected routing.Error, got %T", err)
	}
	if !errors.Is(routingErr.Err, routing.ErrNoRouteFound) {
		t.Errorf("expected ErrNoRouteFound, got %v", routingErr.Err)
	}
	if routingErr.Code != "NO_ROUTE" {
		t.Errorf("expected code NO_ROUTE, got %q", routingErr.Code)
	}
}

func TestClient_GetRoute_Forbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"Access denied"}}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "bad-key",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	_, err := client.GetRoute(context.Background(), testOrigin, testDestination)
	if !errors.Is(err, routing.ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestClient_GetRoute_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"code":500,"message":"upstream error"}}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	_, err := client.GetRoute(context.Background(), testOrigin, testDestination)
	if !errors.Is(err, routing.ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestClient_GetRoute_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	_, err := client.GetRoute(context.Background(), testOrigin, testDestination)
	if !errors.Is(err, routing.ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestClient_GetRoute_NetworkError(t *testing.T) {
	client := NewClient(ClientConfig{
		APIKey:     "test-key",
		HTTPClient: &mockFailingClient{},
		Logger:     zerolog.Nop(),
	})

	_, err := client.GetRoute(context.Background(), testOrigin, testDestination)
	if !errors.Is(err, routing.ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestClient_Name(t *testing.T) {
	client := NewClient(ClientConfig{Logger: zerolog.Nop()})
	if client.Name() != ProviderName {
		t.Errorf("expected %s, got %s", ProviderName, client.Name())
	}
}

// mockHTTPClient wraps http.Client to implement HTTPDoer interface.
type mockHTTPClient struct {
	client *http.Client
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.client.Do(req)
}

// mockFailingClient simulates network errors.
type mockFailingClient struct{}

func (m *mockFailingClient) Do(req *http.Request) (*http.Response, error) {
	return nil, errors.New("network error")
}

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disasternav/disasternav/internal/api"
	"github.com/disasternav/disasternav/internal/api/models"
	"github.com/disasternav/disasternav/internal/guidance"
	"github.com/disasternav/disasternav/internal/plan"
	"github.com/disasternav/disasternav/internal/resources"
	"github.com/disasternav/disasternav/internal/routing"
)

// stubPlanService returns a canned plan or error.
type stubPlanService struct {
	plan *plan.Plan
	err  error
}

func (s *stubPlanService) Generate(_ context.Context, _ plan.Request) (*plan.Plan, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.plan, nil
}

// stubRouteService returns a canned route result or error.
type stubRouteService struct {
	result *routing.RouteResult
	err    error
}

func (s *stubRouteService) PlanRoute(_ context.Context, _, _ routing.Coordinate, _ string) (*routing.RouteResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

// stubResourceService returns canned resources or an error.
type stubResourceService struct {
	found []resources.Resource
	err   error
}

func (s *stubResourceService) FindNearby(_ context.Context, _ resources.Query) ([]resources.Resource, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.found, nil
}

// stubGuidanceStatus reports a fixed configuration state.
type stubGuidanceStatus struct {
	configured bool
}

func (s *stubGuidanceStatus) Configured() bool { return s.configured }

func (s *stubGuidanceStatus) GeneratorName() string { return "euri" }

func testPlan() *plan.Plan {
	shelter := resources.Resource{
		ID:             42,
		Name:           "Community Shelter",
		Lat:            12.98,
		Lon:            77.60,
		DistanceMeters: 1200,
	}
	return &plan.Plan{
		ID:           "a1b2c3",
		DisasterType: "Flood",
		Origin:       routing.Coordinate{Lat: 12.9716, Lon: 77.5946},
		Destination:  shelter,
		Resources:    []resources.Resource{shelter},
		Route: &routing.RouteResult{
			TotalDistanceMeters:  4822.6,
			TotalDurationSeconds: 673.5,
			GeometryPolyline:     "_p~iF~ps|U_ulLnnqC",
			Steps: []routing.RouteStep{
				{Instruction: "Head out on Main Street", RoadName: "Main Street", DistanceMeters: 1200, DurationSeconds: 180, Blocked: true, Alternative: "Use Service Lane"},
				{Instruction: "Arrive at your destination", RoadName: "Unnamed Road", DistanceMeters: 300, DurationSeconds: 60},
			},
		},
		Advisory:    &guidance.Advisory{Text: "Stay calm. Move to higher ground.", Model: "gemini-2.5-pro-exp-03-25"},
		GeneratedAt: time.Now().UTC(),
	}
}

// newTestRouter builds a router with stub services, letting tests override
// individual fields.
func newTestRouter(cfg api.RouterConfig) http.Handler {
	cfg.Version = "test"
	cfg.BuildTime = "now"
	cfg.Logger = zerolog.Nop()
	if cfg.PlanService == nil {
		cfg.PlanService = &stubPlanService{plan: testPlan()}
	}
	if cfg.RouteService == nil {
		cfg.RouteService = &stubRouteService{result: testPlan().Route}
	}
	if cfg.ResourceService == nil {
		cfg.ResourceService = &stubResourceService{found: testPlan().Resources}
	}
	if cfg.Guidance == nil {
		cfg.Guidance = &stubGuidanceStatus{configured: true}
	}
	return api.NewRouter(cfg)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(api.RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/v1/health", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var health models.Health
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, models.HealthStatusOK, health.Status)
	assert.Equal(t, "test", health.Details["version"])
}

func TestRouter_Status_GuidanceUnconfigured(t *testing.T) {
	router := newTestRouter(api.RouterConfig{
		Guidance: &stubGuidanceStatus{configured: false},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/status", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status models.SystemStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, models.HealthStatusDegraded, status.Status)
	require.Len(t, status.Providers, 1)
	assert.Equal(t, "euri", status.Providers[0].Provider)
	assert.Equal(t, models.HealthStatusDegraded, status.Providers[0].Status)
}

func TestRouter_MetadataEnums(t *testing.T) {
	router := newTestRouter(api.RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/v1/metadata/enums", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var enums models.Enums
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &enums))
	assert.Contains(t, enums.DisasterTypes, models.DisasterFlood)
	assert.Contains(t, enums.DisasterTypes, models.DisasterTsunami)
	assert.Contains(t, enums.ResourceCategories, "assembly_point")
}

func TestRouter_MetadataContacts(t *testing.T) {
	router := newTestRouter(api.RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/v1/metadata/contacts", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var contacts models.Contacts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	require.Len(t, contacts.Items, 3)
	assert.Equal(t, "National Disaster Helpline", contacts.Items[0].Name)
	assert.Equal(t, "1070", contacts.Items[0].Number)
}

func TestRouter_GeneratePlan_Success(t *testing.T) {
	router := newTestRouter(api.RouterConfig{})

	body := `{"description":"water rising fast","disasterType":"Flood","origin":{"lat":12.9716,"lon":77.5946}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/plans:generate", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.DisasterFlood, resp.DisasterType)
	assert.Equal(t, "Community Shelter", resp.Destination.Name)
	require.Len(t, resp.Route.Steps, 2)

	// Blocked step carries the detour, clear step carries none
	assert.True(t, resp.Route.Steps[0].Blocked)
	assert.Equal(t, "Use Service Lane", resp.Route.Steps[0].Alternative)
	assert.False(t, resp.Route.Steps[1].Blocked)
	assert.Empty(t, resp.Route.Steps[1].Alternative)

	// Encoded polyline is preserved and decoded for the map
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC", resp.Route.Polyline)
	require.Len(t, resp.Route.Geometry, 2)
	assert.InDelta(t, 38.5, resp.Route.Geometry[0][0], 1e-5)
	assert.InDelta(t, -120.2, resp.Route.Geometry[0][1], 1e-5)

	assert.Equal(t, "4.8 km", resp.Route.TotalDistance)
	assert.Equal(t, "11.2 min", resp.Route.TotalDuration)
	assert.Equal(t, "Stay calm. Move to higher ground.", resp.Advisory.Text)
}

func TestRouter_GeneratePlan_MissingOrigin(t *testing.T) {
	router := newTestRouter(api.RouterConfig{})

	body := `{"description":"help","disasterType":"Fire"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/plans:generate", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "origin")
}

func TestRouter_GeneratePlan_EmptyDescription(t *testing.T) {
	router := newTestRouter(api.RouterConfig{
		PlanService: &stubPlanService{err: plan.ErrEmptyInput},
	})

	body := `{"description":"  ","disasterType":"Flood","origin":{"lat":12.9716,"lon":77.5946}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/plans:generate", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "description is required")
}

func TestRouter_GeneratePlan_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no resources", plan.ErrNoResources, http.StatusNotFound},
		{"no route", routing.ErrNoRouteFound, http.StatusNotFound},
		{"lookup failed", resources.ErrLookupFailed, http.StatusBadGateway},
		{"routing unavailable", routing.ErrServiceUnavailable, http.StatusBadGateway},
		{"invalid route format", routing.ErrInvalidFormat, http.StatusBadGateway},
		{"guidance unavailable", guidance.ErrUnavailable, http.StatusBadGateway},
		{"guidance failed", guidance.ErrGenerationFailed, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(api.RouterConfig{
				PlanService: &stubPlanService{err: tt.err},
			})

			body := `{"description":"help","disasterType":"Flood","origin":{"lat":12.9716,"lon":77.5946}}`
			req := httptest.NewRequest(http.MethodPost, "/v1/plans:generate", bytes.NewReader([]byte(body)))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestRouter_RoutePreview_Success(t *testing.T) {
	router := newTestRouter(api.RouterConfig{})

	body := `{"origin":{"lat":12.9716,"lon":77.5946},"destination":{"lat":12.98,"lon":77.60},"disasterType":"Earthquake"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/routes:preview", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.RoutePreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.DisasterEarthquake, resp.DisasterType)
	assert.Len(t, resp.Route.Steps, 2)
}

func TestRouter_RoutePreview_MissingDestination(t *testing.T) {
	router := newTestRouter(api.RouterConfig{})

	body := `{"origin":{"lat":12.9716,"lon":77.5946}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/routes:preview", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "destination")
}

func TestRouter_ListResources_Success(t *testing.T) {
	router := newTestRouter(api.RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/v1/resources?lat=12.9716&lon=77.5946&radiusMeters=3000", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list models.ResourceList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Community Shelter", list.Items[0].Name)
	assert.Equal(t, float64(1200), list.Items[0].DistanceMeters)
}

func TestRouter_ListResources_BadCoordinates(t *testing.T) {
	router := newTestRouter(api.RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/v1/resources?lat=abc&lon=77.5946", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_SecurityHeaders(t *testing.T) {
	router := newTestRouter(api.RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/v1/health", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestRouter_RequireJSON(t *testing.T) {
	router := newTestRouter(api.RouterConfig{})

	req := httptest.NewRequest(http.MethodPost, "/v1/plans:generate", bytes.NewReader([]byte("description=help")))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestRouter_ServesUI(t *testing.T) {
	ui := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<!DOCTYPE html>"))
	})
	router := newTestRouter(api.RouterConfig{UI: ui})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
}

func TestRouter_NoUIConfigured(t *testing.T) {
	router := newTestRouter(api.RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

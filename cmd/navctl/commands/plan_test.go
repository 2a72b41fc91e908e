package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	cmd := NewRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestPlanCmd_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/plans:generate", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "water rising fast", body["description"])
		assert.Equal(t, "Flood", body["disasterType"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "a1b2c3",
			"disasterType": "Flood",
			"origin": {"lat": 12.9716, "lon": 77.5946},
			"destination": {"id": 42, "name": "Community Shelter", "point": {"lat": 12.98, "lon": 77.6}, "distanceMeters": 1200},
			"resources": [],
			"route": {
				"totalDistanceMeters": 4822.6,
				"totalDurationSeconds": 673.5,
				"totalDistance": "4.8 km",
				"totalDuration": "11.2 min",
				"polyline": "_p~iF~ps|U",
				"geometry": [[38.5, -120.2]],
				"steps": [
					{"instruction": "Head out on Main Street", "roadName": "Main Street", "distance": "1.2 km", "duration": "3.0 min", "blocked": true, "alternative": "Use Service Lane"},
					{"instruction": "Arrive at your destination", "roadName": "Unnamed Road", "distance": "0.3 km", "duration": "1.0 min", "blocked": false}
				]
			},
			"advisory": {"text": "Stay calm. Move to higher ground.", "model": "gemini-2.5-pro-exp-03-25"},
			"generatedAt": "2026-08-25T10:00:00Z"
		}`))
	}))
	defer srv.Close()

	output, err := executeCommand(t,
		"plan", "water rising fast",
		"--lat", "12.9716", "--lon", "77.5946",
		"--type", "Flood",
		"--server", srv.URL,
	)
	require.NoError(t, err)

	assert.Contains(t, output, "Community Shelter")
	assert.Contains(t, output, "4.8 km")
	assert.Contains(t, output, "BLOCKED - Use Service Lane")
	assert.Contains(t, output, "Stay calm. Move to higher ground.")
}

func TestPlanCmd_ProblemResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"type": "https://disasternav.dev/problems/not-found", "title": "Not found", "status": 404, "detail": "no emergency resources found nearby"}`))
	}))
	defer srv.Close()

	_, err := executeCommand(t,
		"plan", "help",
		"--lat", "12.9716", "--lon", "77.5946",
		"--server", srv.URL,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no emergency resources found nearby")
}

func TestPlanCmd_RequiresCoordinates(t *testing.T) {
	_, err := executeCommand(t, "plan", "help")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lat")
}

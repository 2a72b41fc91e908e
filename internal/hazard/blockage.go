// Package hazard simulates disaster road blockages. The closure table is
// static per disaster type; this is a drill aid, not live road intelligence.
package hazard

import (
	"strings"

	"github.com/disasternav/disasternav/internal/routing"
)

// DetourAdvice is the alternative attached to every blocked step.
const DetourAdvice = "Use Service Lane"

// DefaultRoadName is assigned to steps whose provider data carries no road name.
const DefaultRoadName = "Unnamed Road"

// blockedRoads maps a lower-case disaster type to the roads closed by it.
// Road names match exactly (case-sensitive) against provider road names.
var blockedRoads = map[string][]string{
	"flood":      {"Main Street", "River Road"},
	"fire":       {"Forest Highway", "Mountain Pass"},
	"earthquake": {"Bridge Approach", "Tunnel Road"},
}

// BlockedRoads returns the simulated closures for a disaster type. The
// lookup is case-insensitive; unknown types have no closures.
func BlockedRoads(disasterType string) []string {
	roads, ok := blockedRoads[strings.ToLower(disasterType)]
	if !ok {
		return nil
	}
	out := make([]string, len(roads))
	copy(out, roads)
	return out
}

// Annotate marks each raw step against the closure table for the given
// disaster type. Step order is preserved. A step whose road name is empty
// gets DefaultRoadName before matching.
func Annotate(steps []routing.RawStep, disasterType string) []routing.RouteStep {
	closed := blockedRoads[strings.ToLower(disasterType)]

	annotated := make([]routing.RouteStep, 0, len(steps))
	for _, s := range steps {
		road := s.RoadName
		if road == "" {
			road = DefaultRoadName
		}

		step := routing.RouteStep{
			Instruction:     s.Instruction,
			DistanceMeters:  s.DistanceMeters,
			DurationSeconds: s.DurationSeconds,
			RoadName:        road,
		}
		if containsRoad(closed, road) {
			step.Blocked = true
			step.Alternative = DetourAdvice
		}
		annotated = append(annotated, step)
	}
	return annotated
}

func containsRoad(closed []string, road string) bool {
	for _, c := range closed {
		if c == road {
			return true
		}
	}
	return false
}

package hazard

import (
	"testing"

	"github.com/disasternav/disasternav/internal/routing"
)

func TestAnnotate_BlockedRoads(t *testing.T) {
	tests := []struct {
		name         string
		disasterType string
		roadName     string
		wantBlocked  bool
	}{
		{name: "flood blocks Main Street", disasterType: "Flood", roadName: "Main Street", wantBlocked: true},
		{name: "flood blocks River Road", disasterType: "Flood", roadName: "River Road", wantBlocked: true},
		{name: "flood leaves Oak Ave open", disasterType: "Flood", roadName: "Oak Ave", wantBlocked: false},
		{name: "fire blocks Forest Highway", disasterType: "Fire", roadName: "Forest Highway", wantBlocked: true},
		{name: "fire blocks Mountain Pass", disasterType: "fire", roadName: "Mountain Pass", wantBlocked: true},
		{name: "earthquake blocks Bridge Approach", disasterType: "Earthquake", roadName: "Bridge Approach", wantBlocked: true},
		{name: "earthquake blocks Tunnel Road", disasterType: "earthquake", roadName: "Tunnel Road", wantBlocked: true},
		{name: "upper-case type matches", disasterType: "FLOOD", roadName: "Main Street", wantBlocked: true},
		{name: "unknown type blocks nothing", disasterType: "Volcano", roadName: "Main Street", wantBlocked: false},
		{name: "tsunami has no closures", disasterType: "Tsunami", roadName: "Main Street", wantBlocked: false},
		{name: "road match is case-sensitive", disasterType: "Flood", roadName: "main street", wantBlocked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := []routing.RawStep{{Instruction: "Continue", RoadName: tt.roadName, DistanceMeters: 120, DurationSeconds: 30}}
			got := Annotate(steps, tt.disasterType)

			if len(got) != 1 {
				t.Fatalf("expected 1 step, got %d", len(got))
			}
			if got[0].Blocked != tt.wantBlocked {
				t.Errorf("Blocked = %v, want %v", got[0].Blocked, tt.wantBlocked)
			}
			if tt.wantBlocked && got[0].Alternative != DetourAdvice {
				t.Errorf("Alternative = %q, want %q", got[0].Alternative, DetourAdvice)
			}
			if !tt.wantBlocked && got[0].Alternative != "" {
				t.Errorf("Alternative = %q, want empty for clear step", got[0].Alternative)
			}
		})
	}
}

func TestAnnotate_AlternativeOnlyWhenBlocked(t *testing.T) {
	steps := []routing.RawStep{
		{Instruction: "Head north", RoadName: "Main Street"},
		{Instruction: "Turn right", RoadName: "Oak Ave"},
		{Instruction: "Continue", RoadName: "River Road"},
	}

	for _, step := range Annotate(steps, "flood") {
		hasAlternative := step.Alternative != ""
		if step.Blocked != hasAlternative {
			t.Errorf("step on %q: Blocked=%v but Alternative=%q", step.RoadName, step.Blocked, step.Alternative)
		}
		if hasAlternative && step.Alternative != DetourAdvice {
			t.Errorf("step on %q: Alternative = %q, want %q", step.RoadName, step.Alternative, DetourAdvice)
		}
	}
}

func TestAnnotate_DefaultRoadName(t *testing.T) {
	steps := []routing.RawStep{{Instruction: "Head south", RoadName: ""}}

	got := Annotate(steps, "flood")
	if got[0].RoadName != DefaultRoadName {
		t.Errorf("RoadName = %q, want %q", got[0].RoadName, DefaultRoadName)
	}
	if got[0].Blocked {
		t.Error("unnamed road should not be blocked")
	}
}

func TestAnnotate_PreservesOrderAndFields(t *testing.T) {
	steps := []routing.RawStep{
		{Instruction: "Head east", RoadName: "First St", DistanceMeters: 500.5, DurationSeconds: 60.2},
		{Instruction: "Turn left", RoadName: "Second St", DistanceMeters: 250.0, DurationSeconds: 45.8},
	}

	got := Annotate(steps, "earthquake")
	if len(got) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(got))
	}
	for i, step := range got {
		if step.Instruction != steps[i].Instruction {
			t.Errorf("step %d: Instruction = %q, want %q", i, step.Instruction, steps[i].Instruction)
		}
		if step.DistanceMeters != steps[i].DistanceMeters {
			t.Errorf("step %d: DistanceMeters = %v, want %v", i, step.DistanceMeters, steps[i].DistanceMeters)
		}
		if step.DurationSeconds != steps[i].DurationSeconds {
			t.Errorf("step %d: DurationSeconds = %v, want %v", i, step.DurationSeconds, steps[i].DurationSeconds)
		}
	}
}

func TestAnnotate_EmptyInput(t *testing.T) {
	got := Annotate(nil, "flood")
	if len(got) != 0 {
		t.Errorf("expected no steps, got %d", len(got))
	}
}

func TestBlockedRoads(t *testing.T) {
	tests := []struct {
		disasterType string
		want         int
	}{
		{"flood", 2},
		{"FIRE", 2},
		{"Earthquake", 2},
		{"tsunami", 0},
		{"other", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := BlockedRoads(tt.disasterType); len(got) != tt.want {
			t.Errorf("BlockedRoads(%q) returned %d roads, want %d", tt.disasterType, len(got), tt.want)
		}
	}
}

func TestBlockedRoads_ReturnsCopy(t *testing.T) {
	first := BlockedRoads("flood")
	first[0] = "mutated"

	if got := BlockedRoads("flood"); got[0] != "Main Street" {
		t.Errorf("table mutated through returned slice: got %q", got[0])
	}
}

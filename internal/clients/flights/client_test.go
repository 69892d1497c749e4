package flights

import (
	"strings"
	"testing"
	"time"
)

func TestClient_SearchShape(t *testing.T) {
	t.Parallel()

	c := NewClient(42)
	got := c.Search("CDG", "JFK", "2024-07-01")

	if len(got) < 3 || len(got) > 6 {
		t.Fatalf("got %d flights, want 3..6", len(got))
	}
	for _, f := range got {
		if f.Airline == "" {
			t.Fatalf("flight without airline: %+v", f)
		}
		if f.Price < 120 || f.Price >= 1420 {
			t.Fatalf("price out of range: %+v", f)
		}
		dep, err := time.Parse(time.RFC3339, f.DepartureTime)
		if err != nil {
			t.Fatalf("bad departure time %q: %v", f.DepartureTime, err)
		}
		if dep.Format("2006-01-02") != "2024-07-01" {
			t.Fatalf("departure not on requested date: %+v", f)
		}
		arr, err := time.Parse(time.RFC3339, f.ArrivalTime)
		if err != nil {
			t.Fatalf("bad arrival time %q: %v", f.ArrivalTime, err)
		}
		if !arr.After(dep) {
			t.Fatalf("arrival before departure: %+v", f)
		}
		if !strings.Contains(f.Duration, "h") {
			t.Fatalf("duration=%q", f.Duration)
		}
	}
}

func TestClient_SearchDeterministicUnderSeed(t *testing.T) {
	t.Parallel()

	a := NewClient(7).Search("CDG", "JFK", "2024-07-01")
	b := NewClient(7).Search("CDG", "JFK", "2024-07-01")

	if len(a) != len(b) {
		t.Fatalf("len %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("flight %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestClient_SearchBadDateStillReturnsFlights(t *testing.T) {
	t.Parallel()

	got := NewClient(1).Search("CDG", "JFK", "not-a-date")
	if len(got) < 3 {
		t.Fatalf("got %d flights, want at least 3", len(got))
	}
}

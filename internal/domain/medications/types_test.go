package medications

import (
	"testing"
	"time"
)

func TestOrderedSlots_CanonicalOrder(t *testing.T) {
	got := OrderedSlots([]TimeOfDay{Night, Morning, Evening, Morning, TimeOfDay("brunch")})
	want := []TimeOfDay{Morning, Evening, Night}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	// se recalcula en cada llamada
	again := OrderedSlots([]TimeOfDay{Night, Morning, Evening})
	if len(again) != 3 || again[0] != Morning {
		t.Fatalf("expected restartable result, got %v", again)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	if s, ok := ParseTimeOfDay("  Evening "); !ok || s != Evening {
		t.Fatalf("expected evening, got %q ok=%v", s, ok)
	}
	if _, ok := ParseTimeOfDay("pending"); ok {
		t.Fatalf("pending is not a time of day")
	}
}

func TestMedication_IsActiveOn(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	m := Medication{StartDate: start, EndDate: &end}

	if m.IsActiveOn(time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected inactive before start date")
	}
	if !m.IsActiveOn(time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected active on start date, before start hour")
	}
	if !m.IsActiveOn(time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected active on end date")
	}
	if m.IsActiveOn(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected inactive after end date")
	}
}

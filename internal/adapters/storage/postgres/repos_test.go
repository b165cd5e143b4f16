package postgres

import (
	"strings"
	"testing"
	"time"

	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/domain/tracking"
)

func TestSlotsColumnRoundTrip(t *testing.T) {
	raw := joinSlots([]medications.TimeOfDay{medications.Night, medications.Morning, medications.Night})
	if raw != "morning,night" {
		t.Fatalf("unexpected column value %q", raw)
	}

	got := splitSlots("night, MORNING,bogus")
	if len(got) != 2 || got[0] != medications.Morning || got[1] != medications.Night {
		t.Fatalf("unexpected slots: %#v", got)
	}
}

func TestBuildLogQuery(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	q, args := buildLogQuery(tracking.LogFilter{UserID: "u1", MedicationID: "m1", From: &from, To: &to})
	for _, want := range []string{"user_id = $1", "medication_id = $2", "ts >= $3", "ts < $4", "ORDER BY ts ASC"} {
		if !strings.Contains(q, want) {
			t.Fatalf("query missing %q:\n%s", want, q)
		}
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(args))
	}

	q, args = buildLogQuery(tracking.LogFilter{UserID: "u1"})
	if strings.Contains(q, "$2") || len(args) != 1 {
		t.Fatalf("expected only user filter, got %s %v", q, args)
	}
}

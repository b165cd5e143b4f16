package tracking

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"medication-tracker/internal/domain/adherence"
	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/platform/logger"
)

// -------------------------
// Fakes
// -------------------------

type testLogRepo struct {
	logs    []medications.Log
	listErr error
}

func (r *testLogRepo) Create(ctx context.Context, l medications.Log) error {
	r.logs = append(r.logs, l)
	return nil
}

func (r *testLogRepo) List(ctx context.Context, filter LogFilter) ([]medications.Log, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]medications.Log, 0)
	for _, l := range r.logs {
		if filter.Matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *testLogRepo) DeleteByMedication(ctx context.Context, medicationID string) error {
	kept := r.logs[:0]
	for _, l := range r.logs {
		if l.MedicationID != medicationID {
			kept = append(kept, l)
		}
	}
	r.logs = kept
	return nil
}

type testMeds map[string]medications.Medication

func (m testMeds) GetForOwner(ctx context.Context, ownerUserID, id string) (medications.Medication, error) {
	med, ok := m[id]
	if !ok {
		return medications.Medication{}, medications.ErrNotFound
	}
	if med.UserID != ownerUserID {
		return medications.Medication{}, medications.ErrForbidden
	}
	return med, nil
}

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func at(hour int) time.Time { return day.Add(time.Duration(hour) * time.Hour) }

func newTestService(opts Options) (*Service, *testLogRepo) {
	repo := &testLogRepo{}
	meds := testMeds{
		"med-1": {
			ID:         "med-1",
			UserID:     "user-1",
			Name:       "Metformin",
			TimesOfDay: []medications.TimeOfDay{medications.Morning, medications.Evening},
			StartDate:  day.AddDate(0, 0, -3),
		},
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return NewService(repo, meds, opts), repo
}

// -------------------------
// Tests
// -------------------------

func TestService_TakeAndSkip_Flow(t *testing.T) {
	svc, repo := newTestService(Options{})
	ctx := context.Background()

	svc.now = func() time.Time { return at(7) }
	view, err := svc.Today(ctx, "user-1", "med-1")
	if err != nil {
		t.Fatalf("Today error: %v", err)
	}
	if view.Statuses[medications.Morning] != adherence.StatusPending || view.Statuses[medications.Night] != adherence.StatusNotApplicable {
		t.Fatalf("unexpected initial statuses: %v", view.Statuses)
	}
	if !view.Active {
		t.Fatalf("expected medication active today")
	}

	res, err := svc.MarkTaken(ctx, "user-1", "med-1", medications.Morning)
	if err != nil {
		t.Fatalf("MarkTaken error: %v", err)
	}
	if !res.Log.Taken || res.Log.Skipped || res.SlotMismatch {
		t.Fatalf("unexpected log: %#v", res)
	}

	// segunda vez en el mismo slot => rechazado
	if _, err := svc.MarkTaken(ctx, "user-1", "med-1", medications.Morning); !errors.Is(err, adherence.ErrAlreadyLogged) {
		t.Fatalf("expected ErrAlreadyLogged, got %v", err)
	}

	svc.now = func() time.Time { return at(19) }
	res, err = svc.Skip(ctx, "user-1", "med-1", medications.Evening, "  ")
	if err != nil {
		t.Fatalf("Skip error: %v", err)
	}
	if res.Log.Taken || !res.Log.Skipped || res.Log.Notes != "Skipped" {
		t.Fatalf("unexpected skip log: %#v", res.Log)
	}
	if _, err := svc.Skip(ctx, "user-1", "med-1", medications.Evening, "again"); !errors.Is(err, adherence.ErrAlreadyLogged) {
		t.Fatalf("expected ErrAlreadyLogged on skipped slot, got %v", err)
	}

	view, _ = svc.Today(ctx, "user-1", "med-1")
	if view.Statuses[medications.Morning] != adherence.StatusTaken || view.Statuses[medications.Evening] != adherence.StatusSkipped {
		t.Fatalf("unexpected final statuses: %v", view.Statuses)
	}

	hist, err := svc.History(ctx, "user-1", "med-1")
	if err != nil || len(hist) != 2 {
		t.Fatalf("expected 2 history entries, got %d err=%v", len(hist), err)
	}
	if !hist[0].Timestamp.After(hist[1].Timestamp) {
		t.Fatalf("expected newest first")
	}
	if len(repo.logs) != 2 {
		t.Fatalf("expected 2 stored logs, got %d", len(repo.logs))
	}
}

func TestService_Record_Rejections(t *testing.T) {
	svc, _ := newTestService(Options{})
	ctx := context.Background()
	svc.now = func() time.Time { return at(13) }

	if _, err := svc.MarkTaken(ctx, "user-1", "med-1", medications.Afternoon); !errors.Is(err, ErrSlotNotConfigured) {
		t.Fatalf("expected ErrSlotNotConfigured, got %v", err)
	}
	if _, err := svc.MarkTaken(ctx, "user-1", "med-1", medications.TimeOfDay("pending")); !errors.Is(err, medications.ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
	if _, err := svc.MarkTaken(ctx, "user-2", "med-1", medications.Morning); !errors.Is(err, medications.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Today(ctx, "user-1", "missing"); !errors.Is(err, medications.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_SlotMismatch_IsFlagged(t *testing.T) {
	var buf bytes.Buffer
	svc, _ := newTestService(Options{Logger: logger.New(logger.Options{Output: &buf})})
	ctx := context.Background()

	// "morning" marcado a las 15h: el log cae en la franja de la tarde
	svc.now = func() time.Time { return at(15) }
	res, err := svc.MarkTaken(ctx, "user-1", "med-1", medications.Morning)
	if err != nil {
		t.Fatalf("MarkTaken error: %v", err)
	}
	if !res.SlotMismatch {
		t.Fatalf("expected slot mismatch flag")
	}
	if !strings.Contains(buf.String(), "slot_time_mismatch") {
		t.Fatalf("expected mismatch warning, got %q", buf.String())
	}

	view, _ := svc.Today(ctx, "user-1", "med-1")
	if view.Statuses[medications.Morning] != adherence.StatusPending {
		t.Fatalf("morning stays pending since the log hour is 15h, got %s", view.Statuses[medications.Morning])
	}
}

func TestService_Today_AmbiguousLogs(t *testing.T) {
	ctx := context.Background()
	seed := []medications.Log{
		{ID: "b", MedicationID: "med-1", UserID: "user-1", Timestamp: at(9), Taken: true},
		{ID: "a", MedicationID: "med-1", UserID: "user-1", Timestamp: at(6), Skipped: true},
	}

	var buf bytes.Buffer
	lenient, repo := newTestService(Options{Logger: logger.New(logger.Options{Output: &buf})})
	repo.logs = append(repo.logs, seed...)
	lenient.now = func() time.Time { return at(20) }

	view, err := lenient.Today(ctx, "user-1", "med-1")
	if err != nil {
		t.Fatalf("Today error: %v", err)
	}
	// el más antiguo (6h, skipped) gana
	if view.Statuses[medications.Morning] != adherence.StatusSkipped {
		t.Fatalf("expected skipped from earliest log, got %s", view.Statuses[medications.Morning])
	}
	if len(view.Ambiguous) != 1 || !strings.Contains(buf.String(), "multiple logs match slot") {
		t.Fatalf("expected ambiguity warning, got %v / %q", view.Ambiguous, buf.String())
	}

	strict, repo2 := newTestService(Options{Strict: true})
	repo2.logs = append(repo2.logs, seed...)
	strict.now = func() time.Time { return at(20) }

	if _, err := strict.Today(ctx, "user-1", "med-1"); !errors.Is(err, adherence.ErrAmbiguousLogState) {
		t.Fatalf("expected ErrAmbiguousLogState, got %v", err)
	}
	if !strict.Strict() {
		t.Fatalf("expected strict service")
	}
}

func TestService_Today_OnlyCountsToday_AndToleratesReadErrors(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(Options{})
	repo.logs = append(repo.logs, medications.Log{
		ID: "y", MedicationID: "med-1", UserID: "user-1", Timestamp: at(-2), Taken: true, // ayer 22h
	})
	svc.now = func() time.Time { return at(8) }

	view, err := svc.Today(ctx, "user-1", "med-1")
	if err != nil {
		t.Fatalf("Today error: %v", err)
	}
	if len(view.Logs) != 0 || view.Statuses[medications.Morning] != adherence.StatusPending {
		t.Fatalf("yesterday's log must not count: %#v", view)
	}

	repo.listErr = errors.New("storage unavailable")
	view, err = svc.Today(ctx, "user-1", "med-1")
	if err != nil {
		t.Fatalf("read errors must degrade to no logs, got %v", err)
	}
	if view.Statuses[medications.Evening] != adherence.StatusPending {
		t.Fatalf("expected pending on read failure, got %s", view.Statuses[medications.Evening])
	}
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*3600)
	start, end := DayBounds(time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC), loc)

	// 01:00 UTC es 22:00 del día anterior en UTC-3
	if start.Day() != 9 || start.Hour() != 0 || end.Sub(start) != 24*time.Hour {
		t.Fatalf("unexpected bounds %s - %s", start, end)
	}
}

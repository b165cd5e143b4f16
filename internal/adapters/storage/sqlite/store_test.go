package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/domain/tracking"
	"medication-tracker/internal/domain/users"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "medtrack.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_KV(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, KeySession); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := s.Put(ctx, KeySession, `{"id":"u1"}`); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, KeySession, `{"id":"u2"}`); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	v, ok, err := s.Get(ctx, KeySession)
	if err != nil || !ok || v != `{"id":"u2"}` {
		t.Fatalf("unexpected value %q ok=%v err=%v", v, ok, err)
	}
	if err := s.Delete(ctx, KeySession); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, KeySession); ok {
		t.Fatalf("expected key removed")
	}
}

func TestRepos_PersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "medtrack.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	meds := NewMedicationsRepo(s)
	logs := NewLogsRepo(s)

	m := medications.Medication{
		ID: "m1", UserID: "u1", Name: "Ibuprofen", Dosage: "200mg", Frequency: "daily",
		TimesOfDay: []medications.TimeOfDay{medications.Night, medications.Morning},
		StartDate:  start, CreatedAt: start,
	}
	if err := meds.Create(ctx, m); err != nil {
		t.Fatalf("Create medication: %v", err)
	}
	if err := logs.Create(ctx, medications.Log{ID: "l1", MedicationID: "m1", UserID: "u1", Timestamp: start.Add(8 * time.Hour), Taken: true}); err != nil {
		t.Fatalf("Create log: %v", err)
	}
	_ = s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	meds = NewMedicationsRepo(s)
	logs = NewLogsRepo(s)

	got, err := meds.GetByID(ctx, "m1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.TimesOfDay) != 2 || got.TimesOfDay[0] != medications.Morning {
		t.Fatalf("expected canonical slots, got %#v", got.TimesOfDay)
	}

	list, _ := logs.List(ctx, tracking.LogFilter{UserID: "u1", MedicationID: "m1"})
	if len(list) != 1 || !list[0].Taken {
		t.Fatalf("unexpected logs: %#v", list)
	}

	_ = logs.DeleteByMedication(ctx, "m1")
	if err := meds.Delete(ctx, "m1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := meds.GetByID(ctx, "m1"); !errors.Is(err, medications.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	list, _ = logs.List(ctx, tracking.LogFilter{UserID: "u1"})
	if len(list) != 0 {
		t.Fatalf("expected logs purged, got %d", len(list))
	}
}

func TestUsersRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := NewUsersRepo(s)

	if err := repo.Create(ctx, users.User{ID: "u1", Email: "a@b.c", Name: "a"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, users.User{ID: "u2", Email: "a@b.c"}); !errors.Is(err, users.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if u, err := repo.GetByEmail(ctx, "a@b.c"); err != nil || u.ID != "u1" {
		t.Fatalf("GetByEmail: %#v %v", u, err)
	}
	if _, err := repo.GetByID(ctx, "nope"); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

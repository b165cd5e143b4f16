package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/domain/tracking"
	"medication-tracker/internal/domain/users"
)

func TestMedicationRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMedicationRepo()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	_ = repo.Create(ctx, medications.Medication{ID: "m2", UserID: "u1", CreatedAt: base.Add(time.Minute)})
	_ = repo.Create(ctx, medications.Medication{ID: "m1", UserID: "u1", CreatedAt: base})
	_ = repo.Create(ctx, medications.Medication{ID: "m3", UserID: "u2", CreatedAt: base})

	if err := repo.Create(ctx, medications.Medication{ID: "m1"}); err == nil {
		t.Fatalf("expected duplicate error")
	}

	list, _ := repo.ListByOwner(ctx, "u1")
	if len(list) != 2 || list[0].ID != "m1" || list[1].ID != "m2" {
		t.Fatalf("unexpected list order: %#v", list)
	}

	if err := repo.Delete(ctx, "m1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "m1"); !errors.Is(err, medications.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "m1"); !errors.Is(err, medications.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestLogRepo_FilterAndPurge(t *testing.T) {
	ctx := context.Background()
	repo := NewLogRepo()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_ = repo.Create(ctx, medications.Log{ID: "l2", MedicationID: "m1", UserID: "u1", Timestamp: day.Add(20 * time.Hour)})
	_ = repo.Create(ctx, medications.Log{ID: "l1", MedicationID: "m1", UserID: "u1", Timestamp: day.Add(8 * time.Hour)})
	_ = repo.Create(ctx, medications.Log{ID: "l3", MedicationID: "m1", UserID: "u1", Timestamp: day.Add(-time.Hour)})
	_ = repo.Create(ctx, medications.Log{ID: "l4", MedicationID: "m2", UserID: "u1", Timestamp: day.Add(9 * time.Hour)})

	from, to := day, day.AddDate(0, 0, 1)
	got, err := repo.List(ctx, tracking.LogFilter{UserID: "u1", MedicationID: "m1", From: &from, To: &to})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "l1" || got[1].ID != "l2" {
		t.Fatalf("unexpected logs: %#v", got)
	}

	_ = repo.DeleteByMedication(ctx, "m1")
	all, _ := repo.List(ctx, tracking.LogFilter{UserID: "u1"})
	if len(all) != 1 || all[0].ID != "l4" {
		t.Fatalf("expected only m2 log to survive, got %#v", all)
	}
}

func TestUserRepo_EmailIndex(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	if err := repo.Create(ctx, users.User{ID: "u1", Email: "a@b.c"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, users.User{ID: "u2", Email: "a@b.c"}); !errors.Is(err, users.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	u, err := repo.GetByEmail(ctx, "a@b.c")
	if err != nil || u.ID != "u1" {
		t.Fatalf("GetByEmail: %#v %v", u, err)
	}
	if _, err := repo.GetByEmail(ctx, "x@y.z"); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package sqlite

import (
	"context"
	"errors"
	"sort"
	"strings"

	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/domain/tracking"
	"medication-tracker/internal/domain/users"
)

// ---- medications ----

type MedicationsRepo struct{ s *Store }

func NewMedicationsRepo(s *Store) *MedicationsRepo { return &MedicationsRepo{s: s} }

func (r *MedicationsRepo) load(ctx context.Context) ([]medicationRecord, error) {
	var recs []medicationRecord
	err := r.s.getJSON(ctx, KeyMedications, &recs)
	return recs, err
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	if strings.TrimSpace(m.ID) == "" {
		return errors.New("medication id required")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	recs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if rec.ID == m.ID {
			return errors.New("medication already exists")
		}
	}
	return r.s.putJSON(ctx, KeyMedications, append(recs, fromMedication(m)))
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	recs, err := r.load(ctx)
	if err != nil {
		return medications.Medication{}, err
	}
	for _, rec := range recs {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return medications.Medication{}, medications.ErrNotFound
}

func (r *MedicationsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error) {
	recs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]medications.Medication, 0)
	for _, rec := range recs {
		if rec.UserID == ownerUserID {
			out = append(out, rec.toDomain())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MedicationsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	recs, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := recs[:0]
	found := false
	for _, rec := range recs {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return medications.ErrNotFound
	}
	return r.s.putJSON(ctx, KeyMedications, kept)
}

// ---- logs ----

// LogsRepo cumple tracking.Repository y medications.LogPurger.
type LogsRepo struct{ s *Store }

func NewLogsRepo(s *Store) *LogsRepo { return &LogsRepo{s: s} }

func (r *LogsRepo) load(ctx context.Context) ([]logRecord, error) {
	var recs []logRecord
	err := r.s.getJSON(ctx, KeyLogs, &recs)
	return recs, err
}

func (r *LogsRepo) Create(ctx context.Context, l medications.Log) error {
	if strings.TrimSpace(l.ID) == "" {
		return errors.New("log id required")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	recs, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.s.putJSON(ctx, KeyLogs, append(recs, fromLog(l)))
}

func (r *LogsRepo) List(ctx context.Context, f tracking.LogFilter) ([]medications.Log, error) {
	recs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]medications.Log, 0)
	for _, rec := range recs {
		l := rec.toDomain()
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *LogsRepo) DeleteByMedication(ctx context.Context, medicationID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	recs, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := recs[:0]
	for _, rec := range recs {
		if rec.MedicationID != medicationID {
			kept = append(kept, rec)
		}
	}
	return r.s.putJSON(ctx, KeyLogs, kept)
}

// ---- users ----

type UsersRepo struct{ s *Store }

func NewUsersRepo(s *Store) *UsersRepo { return &UsersRepo{s: s} }

func (r *UsersRepo) load(ctx context.Context) ([]userRecord, error) {
	var recs []userRecord
	err := r.s.getJSON(ctx, KeyUsers, &recs)
	return recs, err
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	recs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if rec.Email == u.Email {
			return users.ErrEmailTaken
		}
	}
	return r.s.putJSON(ctx, KeyUsers, append(recs, fromUser(u)))
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.find(ctx, func(rec userRecord) bool { return rec.ID == id })
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.find(ctx, func(rec userRecord) bool { return rec.Email == email })
}

func (r *UsersRepo) find(ctx context.Context, match func(userRecord) bool) (users.User, error) {
	recs, err := r.load(ctx)
	if err != nil {
		return users.User{}, err
	}
	for _, rec := range recs {
		if match(rec) {
			return rec.toDomain(), nil
		}
	}
	return users.User{}, users.ErrNotFound
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"medication-tracker/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

const medicationColumns = `
	id, user_id,
	name, dosage, frequency,
	times_of_day, start_date, end_date,
	instructions, created_at`

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medications (`+medicationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		m.ID,
		m.UserID,
		m.Name,
		m.Dosage,
		m.Frequency,
		joinSlots(m.TimesOfDay),
		m.StartDate,
		toNullTime(m.EndDate),
		m.Instructions,
		m.CreatedAt,
	)
	return err
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medications.Medication{}, medications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+medicationColumns+` FROM medications WHERE id = $1`, id)

	m, err := scanMedication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medications.Medication{}, medications.ErrNotFound
		}
		return medications.Medication{}, err
	}
	return m, nil
}

func (r *MedicationsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

func (r *MedicationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMedication(s scanner) (medications.Medication, error) {
	var m medications.Medication
	var slots string
	var end sql.NullTime
	if err := s.Scan(
		&m.ID,
		&m.UserID,
		&m.Name,
		&m.Dosage,
		&m.Frequency,
		&slots,
		&m.StartDate,
		&end,
		&m.Instructions,
		&m.CreatedAt,
	); err != nil {
		return medications.Medication{}, err
	}

	m.TimesOfDay = splitSlots(slots)
	if end.Valid {
		t := end.Time
		m.EndDate = &t
	}
	return m, nil
}

// times_of_day se guarda como "morning,night"
func joinSlots(slots []medications.TimeOfDay) string {
	parts := make([]string, 0, len(slots))
	for _, s := range medications.OrderedSlots(slots) {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ",")
}

func splitSlots(raw string) []medications.TimeOfDay {
	set := make([]medications.TimeOfDay, 0, 4)
	for _, p := range strings.Split(raw, ",") {
		if t, ok := medications.ParseTimeOfDay(p); ok {
			set = append(set, t)
		}
	}
	return medications.OrderedSlots(set)
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/domain/tracking"
)

// LogsRepo cumple tracking.Repository y medications.LogPurger.
type LogsRepo struct {
	db *sql.DB
}

func NewLogsRepo(db *sql.DB) *LogsRepo {
	return &LogsRepo{db: db}
}

func (r *LogsRepo) Create(ctx context.Context, l medications.Log) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medication_logs (
			id, medication_id, user_id,
			ts, taken, skipped, notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		l.ID,
		l.MedicationID,
		l.UserID,
		l.Timestamp,
		l.Taken,
		l.Skipped,
		l.Notes,
	)
	return err
}

func (r *LogsRepo) List(ctx context.Context, f tracking.LogFilter) ([]medications.Log, error) {
	query, args := buildLogQuery(f)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Log, 0)
	for rows.Next() {
		var l medications.Log
		if err := rows.Scan(
			&l.ID,
			&l.MedicationID,
			&l.UserID,
			&l.Timestamp,
			&l.Taken,
			&l.Skipped,
			&l.Notes,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}

	return out, rows.Err()
}

func (r *LogsRepo) DeleteByMedication(ctx context.Context, medicationID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM medication_logs WHERE medication_id = $1`, medicationID)
	return err
}

func buildLogQuery(f tracking.LogFilter) (string, []any) {
	where := []string{"user_id = $1"}
	args := []any{f.UserID}

	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if strings.TrimSpace(f.MedicationID) != "" {
		add("medication_id = $%d", f.MedicationID)
	}
	if f.From != nil {
		add("ts >= $%d", *f.From)
	}
	if f.To != nil {
		add("ts < $%d", *f.To)
	}

	q := `
		SELECT id, medication_id, user_id, ts, taken, skipped, notes
		FROM medication_logs
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY ts ASC, id ASC`
	return q, args
}

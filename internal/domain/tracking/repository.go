package tracking

import (
	"context"
	"time"

	"medication-tracker/internal/domain/medications"
)

// Repository persiste los logs de adherencia. Los logs nunca se actualizan.
type Repository interface {
	Create(ctx context.Context, l medications.Log) error
	List(ctx context.Context, filter LogFilter) ([]medications.Log, error)
	DeleteByMedication(ctx context.Context, medicationID string) error
}

// LogFilter: UserID es obligatorio. From inclusivo, To exclusivo.
// Los resultados vienen ordenados por timestamp asc.
type LogFilter struct {
	UserID       string
	MedicationID string
	From         *time.Time
	To           *time.Time
}

// Matches aplica el filtro en memoria (lo usan los adapters sin SQL).
func (f LogFilter) Matches(l medications.Log) bool {
	if l.UserID != f.UserID {
		return false
	}
	if f.MedicationID != "" && l.MedicationID != f.MedicationID {
		return false
	}
	if f.From != nil && l.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && !l.Timestamp.Before(*f.To) {
		return false
	}
	return true
}

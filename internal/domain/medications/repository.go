package medications

import "context"

type Repository interface {
	Create(ctx context.Context, m Medication) error
	GetByID(ctx context.Context, id string) (Medication, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Medication, error)
	Delete(ctx context.Context, id string) error
}

// LogPurger borra los logs de un medicamento (cascade).
// Evita importar el paquete tracking (rompe ciclos).
type LogPurger interface {
	DeleteByMedication(ctx context.Context, medicationID string) error
}

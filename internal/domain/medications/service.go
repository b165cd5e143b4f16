package medications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoSlots      = errors.New("at least one time of day is required")
	ErrInvalidSlot  = errors.New("invalid time of day")
	ErrNotFound     = errors.New("medication not found")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	repo   Repository
	purger LogPurger
	now    func() time.Time
}

func NewService(repo Repository, purger LogPurger) *Service {
	return &Service{
		repo:   repo,
		purger: purger,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name         string
	Dosage       string
	Frequency    string
	TimesOfDay   []string
	StartDate    *time.Time
	EndDate      *time.Time
	Instructions string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Medication, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Medication{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Dosage) == "" || strings.TrimSpace(in.Frequency) == "" {
		return Medication{}, fmt.Errorf("%w: name, dosage and frequency are required", ErrInvalidInput)
	}

	slots, err := normalizeSlots(in.TimesOfDay)
	if err != nil {
		return Medication{}, err
	}

	now := s.now()

	start := now
	if in.StartDate != nil && !in.StartDate.IsZero() {
		start = *in.StartDate
	}
	// se comparan días de calendario: terminar el mismo día que empieza es válido
	if in.EndDate != nil && dateOnly(*in.EndDate, start.Location()).Before(dateOnly(start, start.Location())) {
		return Medication{}, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	m := Medication{
		ID:           uuid.NewString(),
		UserID:       ownerUserID,
		Name:         strings.TrimSpace(in.Name),
		Dosage:       strings.TrimSpace(in.Dosage),
		Frequency:    strings.TrimSpace(in.Frequency),
		TimesOfDay:   slots,
		StartDate:    start,
		EndDate:      in.EndDate,
		Instructions: strings.TrimSpace(in.Instructions),
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, fmt.Errorf("create medication: %w", err)
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// GetForOwner devuelve el medicamento solo si pertenece a ownerUserID.
func (s *Service) GetForOwner(ctx context.Context, ownerUserID, id string) (Medication, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return Medication{}, err
	}
	if m.UserID != strings.TrimSpace(ownerUserID) {
		return Medication{}, ErrForbidden
	}
	return m, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Medication, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// Delete borra primero los logs y después el medicamento.
// Si falla el borrado de logs, el medicamento queda intacto.
func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	m, err := s.GetForOwner(ctx, ownerUserID, id)
	if err != nil {
		return err
	}

	if s.purger != nil {
		if err := s.purger.DeleteByMedication(ctx, m.ID); err != nil {
			return fmt.Errorf("delete medication logs: %w", err)
		}
	}

	if err := s.repo.Delete(ctx, m.ID); err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	return nil
}

func normalizeSlots(raw []string) ([]TimeOfDay, error) {
	set := make([]TimeOfDay, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		t, ok := ParseTimeOfDay(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, r)
		}
		set = append(set, t)
	}

	slots := OrderedSlots(set)
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}
	return slots, nil
}

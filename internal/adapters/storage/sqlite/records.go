package sqlite

import (
	"time"

	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/domain/users"
)

// Formato persistido. Se mantiene separado del dominio para que un cambio de
// structs no rompa bases ya escritas.

type medicationRecord struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Name         string     `json:"name"`
	Dosage       string     `json:"dosage"`
	Frequency    string     `json:"frequency"`
	TimesOfDay   []string   `json:"timeOfDay"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Instructions string     `json:"instructions,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type logRecord struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medicationId"`
	UserID       string    `json:"userId"`
	Timestamp    time.Time `json:"timestamp"`
	Taken        bool      `json:"taken"`
	Skipped      bool      `json:"skipped"`
	Notes        string    `json:"notes,omitempty"`
}

type userRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func fromMedication(m medications.Medication) medicationRecord {
	slots := make([]string, 0, len(m.TimesOfDay))
	for _, s := range medications.OrderedSlots(m.TimesOfDay) {
		slots = append(slots, string(s))
	}
	return medicationRecord{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Dosage:       m.Dosage,
		Frequency:    m.Frequency,
		TimesOfDay:   slots,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Instructions: m.Instructions,
		CreatedAt:    m.CreatedAt,
	}
}

func (r medicationRecord) toDomain() medications.Medication {
	set := make([]medications.TimeOfDay, 0, len(r.TimesOfDay))
	for _, s := range r.TimesOfDay {
		if t, ok := medications.ParseTimeOfDay(s); ok {
			set = append(set, t)
		}
	}
	return medications.Medication{
		ID:           r.ID,
		UserID:       r.UserID,
		Name:         r.Name,
		Dosage:       r.Dosage,
		Frequency:    r.Frequency,
		TimesOfDay:   medications.OrderedSlots(set),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Instructions: r.Instructions,
		CreatedAt:    r.CreatedAt,
	}
}

func fromLog(l medications.Log) logRecord {
	return logRecord{
		ID:           l.ID,
		MedicationID: l.MedicationID,
		UserID:       l.UserID,
		Timestamp:    l.Timestamp,
		Taken:        l.Taken,
		Skipped:      l.Skipped,
		Notes:        l.Notes,
	}
}

func (r logRecord) toDomain() medications.Log {
	return medications.Log{
		ID:           r.ID,
		MedicationID: r.MedicationID,
		UserID:       r.UserID,
		Timestamp:    r.Timestamp,
		Taken:        r.Taken,
		Skipped:      r.Skipped,
		Notes:        r.Notes,
	}
}

func fromUser(u users.User) userRecord {
	return userRecord{ID: u.ID, Name: u.Name, Email: u.Email, PasswordHash: u.PasswordHash, CreatedAt: u.CreatedAt}
}

func (r userRecord) toDomain() users.User {
	return users.User{ID: r.ID, Name: r.Name, Email: r.Email, PasswordHash: r.PasswordHash, CreatedAt: r.CreatedAt}
}

package users

import (
	"strings"
	"time"
)

type User struct {
	ID    string
	Name  string
	Email string

	// PasswordHash es bcrypt. Nunca se expone por la API.
	PasswordHash string

	CreatedAt time.Time
}

// Mode define cómo se validan las credenciales.
type Mode string

const (
	// ModeMock acepta cualquier par email/password no vacío. Es el default.
	ModeMock Mode = "mock"
	// ModeLocal verifica el hash bcrypt guardado en signup.
	ModeLocal Mode = "local"
)

// ParseMode: cualquier valor distinto de "local" es mock.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeLocal {
		return ModeLocal
	}
	return ModeMock
}

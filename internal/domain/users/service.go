package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	repo Repository
	mode Mode
	cost int
	now  func() time.Time
}

func NewService(repo Repository, mode Mode) *Service {
	return &Service{
		repo: repo,
		mode: ParseMode(string(mode)),
		cost: bcrypt.DefaultCost,
		now:  time.Now,
	}
}

func (s *Service) Mode() Mode { return s.mode }

func (s *Service) Signup(ctx context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return User{}, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("lookup user: %w", err)
	}

	return s.create(ctx, name, email, password)
}

// Login en modo mock fabrica el usuario si no existe (nombre = parte local del email).
// En modo local exige signup previo y verifica el hash.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return User{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	u, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		if s.mode != ModeMock {
			return User{}, ErrInvalidCredentials
		}
		return s.create(ctx, localPart(email), email, password)
	default:
		return User{}, fmt.Errorf("lookup user: %w", err)
	}

	if s.mode == ModeMock {
		return u, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) create(ctx context.Context, name, email, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"medication-tracker/internal/domain/users"
)

type userRepo struct {
	mu      sync.RWMutex
	byID    map[string]users.User
	byEmail map[string]string
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:    make(map[string]users.User),
		byEmail: make(map[string]string),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byID[u.ID]; exists {
		return errors.New("user already exists")
	}
	if _, exists := r.byEmail[u.Email]; exists {
		return users.ErrEmailTaken
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.byID[id], nil
}

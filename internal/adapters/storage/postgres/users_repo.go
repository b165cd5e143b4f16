package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"medication-tracker/internal/domain/users"

	"github.com/jackc/pgx/v5/pgconn"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return users.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, users.ErrNotFound
	}
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return users.User{}, users.ErrNotFound
	}
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *UsersRepo) getOne(ctx context.Context, where string, arg string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM users `+where, arg)

	var u users.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

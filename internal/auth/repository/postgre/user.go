package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	repo "task-assistant/internal/auth/repository"
	"task-assistant/internal/model"
)

const (
	userColumns = `id, email, name, password_hash, created_at, updated_at`

	uniqueViolation = "23505"
)

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	query := `
		INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRow(ctx, query, uuid.NewString(), opt.Email, opt.Name, opt.PasswordHash, time.Now().UTC()))
	if isUniqueViolation(err) {
		return model.User{}, repo.ErrDuplicateEmail
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

func (r *implRepository) GetUser(ctx context.Context, opt repo.GetUserOptions) (model.User, error) {
	var row pgx.Row
	switch {
	case opt.ID != "":
		if _, err := uuid.Parse(opt.ID); err != nil {
			return model.User{}, nil
		}
		row = r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, opt.ID)
	case opt.Email != "":
		row = r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, opt.Email)
	default:
		return model.User{}, nil
	}

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

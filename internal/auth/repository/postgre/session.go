package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	repo "task-assistant/internal/auth/repository"
	"task-assistant/internal/model"
)

const sessionColumns = `id, user_id, expires_at, created_at`

func scanSession(row pgx.Row) (model.AuthSession, error) {
	var s model.AuthSession
	err := row.Scan(&s.ID, &s.UserID, &s.ExpiresAt, &s.CreatedAt)
	return s, err
}

func (r *implRepository) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) (model.AuthSession, error) {
	query := `
		INSERT INTO auth_sessions (id, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + sessionColumns

	s, err := scanSession(r.db.QueryRow(ctx, query, uuid.NewString(), opt.UserID, opt.ExpiresAt.UTC(), time.Now().UTC()))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return model.AuthSession{}, repo.ErrFailedToInsert
	}
	return s, nil
}

func (r *implRepository) GetSession(ctx context.Context, id string) (model.AuthSession, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.AuthSession{}, nil
	}

	s, err := scanSession(r.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM auth_sessions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.AuthSession{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return model.AuthSession{}, repo.ErrFailedToGet
	}
	return s, nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM auth_sessions WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSession"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM auth_sessions WHERE expires_at <= $1`, before.UTC())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteExpiredSessions"), err)
		return 0, repo.ErrFailedToDelete
	}
	return tag.RowsAffected(), nil
}

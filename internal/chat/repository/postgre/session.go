package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	repo "task-assistant/internal/chat/repository"
	"task-assistant/internal/model"
)

const sessionColumns = `id, user_id, created_at, updated_at`

func scanSession(row pgx.Row) (model.ChatSession, error) {
	var s model.ChatSession
	err := row.Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *implRepository) CreateSession(ctx context.Context, userID string) (model.ChatSession, error) {
	query := `
		INSERT INTO chat_sessions (id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING ` + sessionColumns

	s, err := scanSession(r.db.QueryRow(ctx, query, uuid.NewString(), userID, time.Now().UTC()))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return model.ChatSession{}, repo.ErrFailedToInsert
	}
	return s, nil
}

func (r *implRepository) GetSession(ctx context.Context, opt repo.GetSessionOptions) (model.ChatSession, error) {
	if _, err := uuid.Parse(opt.ID); err != nil {
		return model.ChatSession{}, nil
	}

	query := `SELECT ` + sessionColumns + ` FROM chat_sessions WHERE id = $1 AND user_id = $2`
	s, err := scanSession(r.db.QueryRow(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ChatSession{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return model.ChatSession{}, repo.ErrFailedToGet
	}
	return s, nil
}

func (r *implRepository) ListSessions(ctx context.Context, userID string) ([]model.ChatSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM chat_sessions WHERE user_id = $1 ORDER BY updated_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSessions"), err)
		return nil, repo.ErrFailedToList
	}

	sessions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ChatSession, error) {
		return scanSession(row)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s collect: %v", r.dsn("ListSessions"), err)
		return nil, repo.ErrFailedToList
	}
	if sessions == nil {
		sessions = []model.ChatSession{}
	}
	return sessions, nil
}

func (r *implRepository) TouchSession(ctx context.Context, id string, at time.Time) error {
	if _, err := r.db.Exec(ctx, `UPDATE chat_sessions SET updated_at = $1 WHERE id = $2`, at.UTC(), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TouchSession"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

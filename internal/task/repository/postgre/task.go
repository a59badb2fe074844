package postgre

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"task-assistant/internal/model"
	repo "task-assistant/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, completed, created_at, updated_at`

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		t    model.Task
		desc *string
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &desc, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return model.Task{}, err
	}
	if desc != nil {
		t.Description = *desc
	}
	return t, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create inserts a new task row and returns it.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Task, error) {
	query := `
		INSERT INTO tasks (id, user_id, title, description, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, $5, $5)
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRow(ctx, query, uuid.NewString(), opt.UserID, opt.Title, nullable(opt.Description), time.Now().UTC()))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOne returns the task or a zero value when it does not exist for that user.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Task, error) {
	if _, err := uuid.Parse(opt.ID); err != nil {
		return model.Task{}, nil
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`
	t, err := scanTask(r.db.QueryRow(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// List returns the user's tasks in creation order.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.Task, error) {
	where, args := buildListWhere(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY created_at ASC, id ASC`, taskColumns, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("List"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// Update applies the non-nil fields and returns the updated row.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (model.Task, error) {
	if _, err := uuid.Parse(opt.ID); err != nil {
		return model.Task{}, nil
	}

	set, args := buildUpdateSet(opt)
	args = append(args, opt.ID, opt.UserID)
	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		set, len(args)-1, len(args), taskColumns)

	t, err := scanTask(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// Delete removes the task if it belongs to the user.
func (r *implRepository) Delete(ctx context.Context, opt repo.DeleteOptions) error {
	if _, err := uuid.Parse(opt.ID); err != nil {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func buildListWhere(opt repo.ListOptions) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{opt.UserID}

	switch opt.Status {
	case model.TaskStatusPending:
		conditions = append(conditions, "completed = FALSE")
	case model.TaskStatusCompleted:
		conditions = append(conditions, "completed = TRUE")
	}
	return strings.Join(conditions, " AND "), args
}

func buildUpdateSet(opt repo.UpdateOptions) (string, []any) {
	var sets []string
	var args []any
	idx := 1

	if opt.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", idx))
		args = append(args, *opt.Title)
		idx++
	}
	if opt.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", idx))
		args = append(args, nullable(*opt.Description))
		idx++
	}
	if opt.Completed != nil {
		sets = append(sets, fmt.Sprintf("completed = $%d", idx))
		args = append(args, *opt.Completed)
		idx++
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", idx))
	args = append(args, time.Now().UTC())

	return strings.Join(sets, ", "), args
}

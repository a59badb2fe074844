package postgre

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	repo "task-assistant/internal/chat/repository"
	"task-assistant/internal/model"
)

const messageColumns = `id, session_id, message_text, sender, intent_detected, tool_executed, tool_result, created_at`

func scanMessage(row pgx.Row) (model.ChatMessage, error) {
	var (
		m            model.ChatMessage
		sender       string
		intent, tool *string
		result       []byte
	)
	if err := row.Scan(&m.ID, &m.SessionID, &m.Text, &sender, &intent, &tool, &result, &m.CreatedAt); err != nil {
		return model.ChatMessage{}, err
	}
	m.Sender = model.Sender(sender)
	if intent != nil {
		m.IntentDetected = *intent
	}
	if tool != nil {
		m.ToolExecuted = *tool
	}
	if len(result) > 0 {
		m.ToolResult = result
	}
	return m, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *implRepository) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (model.ChatMessage, error) {
	query := `
		INSERT INTO chat_messages (id, session_id, message_text, sender, intent_detected, tool_executed, tool_result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + messageColumns

	var result []byte
	if len(opt.ToolResult) > 0 {
		result = opt.ToolResult
	}

	m, err := scanMessage(r.db.QueryRow(ctx, query,
		uuid.NewString(), opt.SessionID, opt.Text, string(opt.Sender),
		nullable(opt.IntentDetected), nullable(opt.ToolExecuted), result, time.Now().UTC()))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return model.ChatMessage{}, repo.ErrFailedToInsert
	}
	return m, nil
}

func (r *implRepository) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]model.ChatMessage, error) {
	query := `
		SELECT ` + messageColumns + ` FROM (
			SELECT ` + messageColumns + ` FROM chat_messages
			WHERE session_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, opt.SessionID, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}

	msgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ChatMessage, error) {
		return scanMessage(row)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s collect: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}
	if msgs == nil {
		msgs = []model.ChatMessage{}
	}
	return msgs, nil
}

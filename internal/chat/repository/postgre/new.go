package postgre

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"task-assistant/internal/chat/repository"
	"task-assistant/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for chat sessions and messages.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("chat/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/postgre.%s", method)
}

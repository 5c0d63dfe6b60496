package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ridloal/storefront-demo/internal/platform/logger"
	"github.com/ridloal/storefront-demo/internal/session/domain"
)

var ErrSessionNotFound = errors.New("no active session")

// Satu entry bernama di key-value store lokal, meniru layout localStorage
// aplikasi aslinya. Tanpa versioning atau migrasi.
const sessionKey = "user"

type SessionRepository interface {
	SaveSession(ctx context.Context, session *domain.UserSession) error
	GetSession(ctx context.Context) (*domain.UserSession, error)
	DeleteSession(ctx context.Context) error
}

type sqliteSessionRepository struct {
	db *sql.DB
}

func NewSQLiteSessionRepository(db *sql.DB) (SessionRepository, error) {
	if err := createSchema(db); err != nil {
		return nil, err
	}
	return &sqliteSessionRepository{db: db}, nil
}

func createSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create kv_store schema: %w", err)
	}
	return nil
}

// SaveSession mengganti entry session sepenuhnya (satu session aktif per device).
func (r *sqliteSessionRepository) SaveSession(ctx context.Context, session *domain.UserSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)`,
		sessionKey, string(payload), time.Now())
	if err != nil {
		logger.Error("SaveSession: exec failed", err)
		return err
	}
	return nil
}

func (r *sqliteSessionRepository) GetSession(ctx context.Context) (*domain.UserSession, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM kv_store WHERE key = ?`, sessionKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		logger.Error("GetSession: query failed", err)
		return nil, err
	}

	var session domain.UserSession
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		logger.Error("GetSession: corrupt session entry", err)
		return nil, fmt.Errorf("failed to deserialize session: %w", err)
	}
	return &session, nil
}

func (r *sqliteSessionRepository) DeleteSession(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, sessionKey)
	if err != nil {
		logger.Error("DeleteSession: exec failed", err)
		return err
	}
	return nil
}

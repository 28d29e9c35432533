package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-relay-chat/internal/config"
	"github.com/MKhiriev/go-relay-chat/internal/logger"
)

// ClientStorages groups all client-side repositories.
type ClientStorages struct {
	// HistoryRepository is the sqlite-backed input history.
	HistoryRepository HistoryRepository

	db *DB
}

// NewClientStorages opens the sqlite database at cfg.HistoryDSN (creating the
// file if needed), runs pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.HistoryDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		HistoryRepository: NewHistoryRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

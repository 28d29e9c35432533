package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-relay-chat/internal/logger"
	"github.com/MKhiriev/go-relay-chat/models"
)

type historyRepository struct {
	*DB
	logger *logger.Logger
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:     db,
		logger: logger,
	}
}

func (h *historyRepository) Append(ctx context.Context, line string, at time.Time) (int64, error) {
	query, args, err := buildInsertHistoryQuery(line, at.UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := h.DB.ExecContext(ctx, query, args...)
	if err != nil {
		h.logger.Err(err).Str("func", "historyRepository.Append").Msg("failed to insert history line")
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return id, nil
}

func (h *historyRepository) Last(ctx context.Context) (models.HistoryEntry, error) {
	query, args, err := buildSelectRecentHistoryQuery(1)
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var entry models.HistoryEntry
	err = h.DB.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.Line, &entry.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HistoryEntry{}, ErrHistoryEmpty
	}
	if err != nil {
		h.logger.Err(err).Str("func", "historyRepository.Last").Msg("failed to read last history line")
		return models.HistoryEntry{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return entry, nil
}

func (h *historyRepository) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	query, args, err := buildSelectRecentHistoryQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		h.logger.Err(err).Str("func", "historyRepository.Recent").Msg("failed to query history")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0, limit)
	for rows.Next() {
		var entry models.HistoryEntry
		if err := rows.Scan(&entry.ID, &entry.Line, &entry.CreatedAt); err != nil {
			h.logger.Err(err).Str("func", "historyRepository.Recent").Msg("failed to scan history row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	// newest first from the query
	slices.Reverse(entries)
	return entries, nil
}

func (h *historyRepository) Trim(ctx context.Context, keep int) (int64, error) {
	query, args, err := buildTrimHistoryQuery(keep)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := h.DB.ExecContext(ctx, query, args...)
	if err != nil {
		h.logger.Err(err).Str("func", "historyRepository.Trim").Int("keep", keep).Msg("failed to trim history")
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return removed, nil
}

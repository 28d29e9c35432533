package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-relay-chat/internal/config"
	"github.com/MKhiriev/go-relay-chat/internal/logger"
	"github.com/MKhiriev/go-relay-chat/internal/store"
)

type clientHistoryService struct {
	repo  store.HistoryRepository
	limit int
	now   func() time.Time

	logger *logger.Logger
}

// NewClientHistoryService keeps at most cfg.HistoryLimit lines in repo. A
// nil repo turns Record and Load into no-ops.
func NewClientHistoryService(repo store.HistoryRepository, cfg config.ClientStorage, logger *logger.Logger) ClientHistoryService {
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}

	return &clientHistoryService{
		repo:   repo,
		limit:  limit,
		now:    time.Now,
		logger: logger,
	}
}

// Record implements ClientHistoryService.
func (s *clientHistoryService) Record(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if s.repo == nil || line == "" {
		return nil
	}

	last, err := s.repo.Last(ctx)
	switch {
	case err == nil && last.Line == line:
		return nil
	case err != nil && !errors.Is(err, store.ErrHistoryEmpty):
		return fmt.Errorf("read last history entry: %w", err)
	}

	if _, err = s.repo.Append(ctx, line, s.now().UTC()); err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}

	removed, err := s.repo.Trim(ctx, s.limit)
	if err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	if removed > 0 {
		s.logger.Debug().Str("func", "clientHistoryService.Record").Int64("removed", removed).Msg("history trimmed")
	}

	return nil
}

// Load implements ClientHistoryService.
func (s *clientHistoryService) Load(ctx context.Context) ([]string, error) {
	if s.repo == nil {
		return nil, nil
	}

	entries, err := s.repo.Recent(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Line)
	}
	return lines, nil
}

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-relay-chat/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// HistoryRepository persists the lines a user sent so the composer can
// recall them across restarts.
type HistoryRepository interface {
	// Append stores line and returns its id.
	Append(ctx context.Context, line string, at time.Time) (int64, error)
	// Last returns the newest entry or ErrHistoryEmpty.
	Last(ctx context.Context) (models.HistoryEntry, error)
	// Recent returns up to limit newest entries, oldest first.
	Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error)
	// Trim deletes everything but the newest keep entries and reports how
	// many rows were removed.
	Trim(ctx context.Context, keep int) (int64, error)
}

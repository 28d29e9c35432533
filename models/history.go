package models

import "time"

// HistoryEntry is one line the user sent, kept for up/down recall.
type HistoryEntry struct {
	ID        int64
	Line      string
	CreatedAt time.Time
}

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	historyTable = "input_history"

	colID        = "id"
	colLine      = "line"
	colCreatedAt = "created_at"
)

// sqlite uses ? placeholders
var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertHistoryQuery(line string, at any) (string, []any, error) {
	return sqlBuilder.
		Insert(historyTable).
		Columns(colLine, colCreatedAt).
		Values(line, at).
		ToSql()
}

func buildSelectRecentHistoryQuery(limit int) (string, []any, error) {
	return sqlBuilder.
		Select(colID, colLine, colCreatedAt).
		From(historyTable).
		OrderBy(colID + " DESC").
		Limit(uint64(limit)).
		ToSql()
}

func buildTrimHistoryQuery(keep int) (string, []any, error) {
	keepIDs := sqlBuilder.
		Select(colID).
		From(historyTable).
		OrderBy(colID + " DESC").
		Limit(uint64(keep))

	keepSQL, keepArgs, err := keepIDs.ToSql()
	if err != nil {
		return "", nil, err
	}

	return sqlBuilder.
		Delete(historyTable).
		Where(sq.Expr(colID+" NOT IN ("+keepSQL+")", keepArgs...)).
		ToSql()
}

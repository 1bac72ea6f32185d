package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var gameEventFields = []string{
	"id", "sequence", "timestamp", "session_id", "game", "subject",
	"reason", "score", "total", "xp", "seconds_used",
}

func (r *eventRepo) AppendGameResult(ctx context.Context, data GameResultEventData) error {
	if data.SessionID == "" {
		return fmt.Errorf("save game result: empty session id")
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(gameEventsTable).
		Columns(gameEventFields[1:]...).
		Values(
			seqNum, time.Now().UTC(), data.SessionID, data.Game, data.Subject,
			data.Reason, data.Score, data.Total, data.XP, data.SecondsUsed,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save game result: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryGameResults(ctx context.Context, opts QueryOpts) ([]GameResultRecord, error) {
	sel := scopedSelect(builder().Select(gameEventFields...).From(entsql.Table(gameEventsTable)), opts)
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query game results: %w", err)
	}
	defer rows.Close()

	var records []GameResultRecord
	for rows.Next() {
		var rec GameResultRecord
		err := rows.Scan(
			&rec.ID, &rec.Sequence, &rec.Timestamp, &rec.SessionID, &rec.Game, &rec.Subject,
			&rec.Reason, &rec.Score, &rec.Total, &rec.XP, &rec.SecondsUsed,
		)
		if err != nil {
			return nil, fmt.Errorf("scan game result: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query game results: %w", err)
	}
	return records, nil
}

func (r *eventRepo) GameTotals(ctx context.Context) ([]GameTotals, error) {
	query, args := builder().Select(
		"game",
		entsql.As(entsql.Count("*"), "played"),
		entsql.As("COALESCE(SUM(CASE WHEN reason IN ('completed', 'solved') THEN 1 ELSE 0 END), 0)", "cleared"),
		entsql.As("COALESCE(SUM(xp), 0)", "xp_total"),
	).
		From(entsql.Table(gameEventsTable)).
		GroupBy("game").
		OrderBy("game").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query game totals: %w", err)
	}
	defer rows.Close()

	var totals []GameTotals
	for rows.Next() {
		var t GameTotals
		if err := rows.Scan(&t.Game, &t.Played, &t.Cleared, &t.XP); err != nil {
			return nil, fmt.Errorf("scan game totals: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

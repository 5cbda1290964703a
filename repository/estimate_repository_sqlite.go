package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"hvac-estimator/domain"
)

const estimatesSchema = `
CREATE TABLE IF NOT EXISTS estimates (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	input      TEXT NOT NULL,
	result     TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_estimates_created_at ON estimates(created_at);
`

// Fixed-width so created_at sorts lexically.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteEstimateRepository persists the estimate log to a SQLite file.
type SQLiteEstimateRepository struct {
	db *sqlx.DB
}

type estimateRow struct {
	ID        string `db:"id"`
	Kind      string `db:"kind"`
	Input     string `db:"input"`
	Result    string `db:"result"`
	CreatedAt string `db:"created_at"`
}

func NewSQLiteEstimateRepository(path string) (*SQLiteEstimateRepository, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(estimatesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteEstimateRepository{db: db}, nil
}

func (r *SQLiteEstimateRepository) Save(ctx context.Context, record domain.EstimateRecord) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO estimates (id, kind, input, result, created_at)
		 VALUES (:id, :kind, :input, :result, :created_at)`,
		estimateRow{
			ID:        record.ID,
			Kind:      string(record.Kind),
			Input:     string(record.Input),
			Result:    string(record.Result),
			CreatedAt: record.CreatedAt.UTC().Format(sqliteTimeLayout),
		})
	if err != nil {
		return fmt.Errorf("insert estimate %s: %w", record.ID, err)
	}
	return nil
}

func (r *SQLiteEstimateRepository) List(ctx context.Context, limit int) ([]domain.EstimateRecord, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	var rows []estimateRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, kind, input, result, created_at FROM estimates
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}

	out := make([]domain.EstimateRecord, 0, len(rows))
	for _, row := range rows {
		createdAt, err := time.Parse(sqliteTimeLayout, row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at of %s: %w", row.ID, err)
		}
		out = append(out, domain.EstimateRecord{
			ID:        row.ID,
			Kind:      domain.EstimateKind(row.Kind),
			Input:     json.RawMessage(row.Input),
			Result:    json.RawMessage(row.Result),
			CreatedAt: createdAt,
		})
	}
	return out, nil
}

func (r *SQLiteEstimateRepository) Close() error {
	return r.db.Close()
}

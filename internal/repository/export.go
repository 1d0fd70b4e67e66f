package repository

import (
	"context"
	"database/sql"

	"github.com/vaultpass/passgen/internal/model"
)

// ExportRepository persists export history.
type ExportRepository struct {
	db *sql.DB
}

// NewExportRepository creates a new ExportRepository.
func NewExportRepository(db *sql.DB) *ExportRepository {
	return &ExportRepository{db: db}
}

// Create inserts a record and sets its generated ID.
func (r *ExportRepository) Create(ctx context.Context, rec *model.ExportRecord) error {
	query := `INSERT INTO exports (filename, format, count, created_at) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, rec.Filename, rec.Format, rec.Count, rec.CreatedAt)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	rec.ID = id
	return nil
}

// ListRecent returns up to limit records, newest first.
func (r *ExportRepository) ListRecent(ctx context.Context, limit int) ([]model.ExportRecord, error) {
	query := `SELECT id, filename, format, count, created_at
		FROM exports ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.ExportRecord{}
	for rows.Next() {
		var rec model.ExportRecord
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.Format, &rec.Count, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/export"
	"github.com/vaultpass/passgen/internal/model"
)

const historyLimit = 50

var (
	ErrNothingToExport  = errors.New("no passwords to export")
	ErrTooManyPasswords = errors.New("at most 100 passwords can be exported at once")
	ErrHistoryDisabled  = errors.New("export history is not available")
)

// ExportStore records export metadata. *repository.ExportRepository implements it.
type ExportStore interface {
	Create(ctx context.Context, rec *model.ExportRecord) error
	ListRecent(ctx context.Context, limit int) ([]model.ExportRecord, error)
}

// ExportService renders password batches into export files.
type ExportService struct {
	store ExportStore
	now   func() time.Time
}

// NewExportService creates a new ExportService. A nil store disables history.
func NewExportService(store ExportStore) *ExportService {
	return &ExportService{store: store, now: time.Now}
}

// Export renders passwords in format and records the export when history is enabled.
// Failing to record does not fail the export.
func (s *ExportService) Export(ctx context.Context, format export.Format, passwords []string) ([]byte, model.ExportRecord, error) {
	if len(passwords) == 0 {
		return nil, model.ExportRecord{}, ErrNothingToExport
	}
	if len(passwords) > crypto.MaxBatchCount {
		return nil, model.ExportRecord{}, ErrTooManyPasswords
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case export.FormatText:
		err = export.WriteText(&buf, passwords)
	case export.FormatSpreadsheet:
		err = export.WriteSpreadsheet(&buf, passwords)
	default:
		err = export.ErrUnknownFormat
	}
	if err != nil {
		return nil, model.ExportRecord{}, err
	}

	now := s.now().UTC()
	rec := model.ExportRecord{
		Filename:  export.Filename(format, now),
		Format:    string(format),
		Count:     len(passwords),
		CreatedAt: now,
	}

	if s.store != nil {
		if err := s.store.Create(ctx, &rec); err != nil {
			slog.Warn("recording export failed", "filename", rec.Filename, "error", err)
		}
	}

	return buf.Bytes(), rec, nil
}

// History returns the most recent exports.
func (s *ExportService) History(ctx context.Context) ([]model.ExportRecord, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	return s.store.ListRecent(ctx, historyLimit)
}

package service

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vaultpass/passgen/internal/export"
	"github.com/vaultpass/passgen/internal/model"
)

type memoryStore struct {
	records []model.ExportRecord
	err     error
}

func (m *memoryStore) Create(_ context.Context, rec *model.ExportRecord) error {
	if m.err != nil {
		return m.err
	}
	rec.ID = int64(len(m.records) + 1)
	m.records = append(m.records, *rec)
	return nil
}

func (m *memoryStore) ListRecent(_ context.Context, limit int) ([]model.ExportRecord, error) {
	out := []model.ExportRecord{}
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

func newTestExportService(store ExportStore) *ExportService {
	svc := NewExportService(store)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestExport_Text(t *testing.T) {
	store := &memoryStore{}
	svc := newTestExportService(store)

	data, rec, err := svc.Export(context.Background(), export.FormatText, []string{"aaa", "bbb"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "1. aaa\n2. bbb" {
		t.Errorf("unexpected body %q", data)
	}
	if rec.ID != 1 || rec.Filename != "passwords_20250601_120000.txt" || rec.Count != 2 || rec.Format != "txt" {
		t.Errorf("unexpected record %+v", rec)
	}
	if len(store.records) != 1 {
		t.Errorf("expected 1 stored record, got %d", len(store.records))
	}
}

func TestExport_Spreadsheet(t *testing.T) {
	svc := newTestExportService(nil)
	passwords := []string{"x1", "y2", "z3"}

	data, rec, err := svc.Export(context.Background(), export.FormatSpreadsheet, passwords)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != 0 {
		t.Errorf("expected no ID without history, got %d", rec.ID)
	}

	entries, err := export.ReadSpreadsheet(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadSpreadsheet() unexpected error: %v", err)
	}
	if got := export.Passwords(entries); !reflect.DeepEqual(got, passwords) {
		t.Errorf("got %q, want %q", got, passwords)
	}
}

func TestExport_Validation(t *testing.T) {
	svc := newTestExportService(nil)
	tooMany := make([]string, 101)
	for i := range tooMany {
		tooMany[i] = "pw"
	}

	tests := []struct {
		name      string
		format    export.Format
		passwords []string
		wantErr   error
	}{
		{name: "empty", format: export.FormatText, passwords: nil, wantErr: ErrNothingToExport},
		{name: "too many", format: export.FormatText, passwords: tooMany, wantErr: ErrTooManyPasswords},
		{name: "unknown format", format: export.Format("pdf"), passwords: []string{"a"}, wantErr: export.ErrUnknownFormat},
		{name: "line break", format: export.FormatText, passwords: []string{"a\nb"}, wantErr: export.ErrLineBreak},
		{name: "control character in xlsx", format: export.FormatSpreadsheet, passwords: []string{"a\x01b"}, wantErr: export.ErrUnencodable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Export(context.Background(), tt.format, tt.passwords)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Export() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExport_StoreFailureIsNotFatal(t *testing.T) {
	svc := newTestExportService(&memoryStore{err: errors.New("db down")})

	data, _, err := svc.Export(context.Background(), export.FormatText, []string{"pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected export body")
	}
}

func TestHistory(t *testing.T) {
	if _, err := newTestExportService(nil).History(context.Background()); !errors.Is(err, ErrHistoryDisabled) {
		t.Errorf("expected ErrHistoryDisabled, got %v", err)
	}

	store := &memoryStore{}
	svc := newTestExportService(store)
	for i := 0; i < 3; i++ {
		if _, _, err := svc.Export(context.Background(), export.FormatText, []string{"pw"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	records, err := svc.History(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 || records[0].ID != 3 {
		t.Errorf("unexpected history %+v", records)
	}
}

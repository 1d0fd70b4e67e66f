package export

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vaultpass/passgen/internal/crypto"
)

func TestFormatLines(t *testing.T) {
	got := FormatLines([]string{"abc", "x. y", "Q"})
	want := []string{"1. abc", "2. x. y", "3. Q"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormatLines() = %q, want %q", got, want)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, []string{"first", "second"}); err != nil {
		t.Fatalf("WriteText() unexpected error: %v", err)
	}
	if got, want := buf.String(), "1. first\n2. second"; got != want {
		t.Errorf("WriteText() = %q, want %q", got, want)
	}
}

func TestWriteTextRejectsLineBreaks(t *testing.T) {
	var buf bytes.Buffer
	err := WriteText(&buf, []string{"ok", "bad\npw"})
	if !errors.Is(err, ErrLineBreak) {
		t.Errorf("WriteText() error = %v, want %v", err, ErrLineBreak)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteText() wrote %d bytes before failing", buf.Len())
	}
}

func TestParseLines(t *testing.T) {
	input := "1. abc\r\nnot an entry\n\n2. a. b\n10.  lead"
	got, err := ParseLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseLines() unexpected error: %v", err)
	}
	want := []Entry{
		{Index: "1", Password: "abc"},
		{Index: "2", Password: "a. b"},
		{Index: "10", Password: " lead"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseLines() = %+v, want %+v", got, want)
	}
}

func TestTextRoundTrip(t *testing.T) {
	opts := crypto.DefaultOptions()
	opts.Custom = " .é"
	passwords, err := crypto.GenerateBatch(opts, crypto.MaxBatchCount)
	if err != nil {
		t.Fatalf("GenerateBatch() unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, passwords); err != nil {
		t.Fatalf("WriteText() unexpected error: %v", err)
	}

	entries, err := ParseLines(&buf)
	if err != nil {
		t.Fatalf("ParseLines() unexpected error: %v", err)
	}
	if got := Passwords(entries); !reflect.DeepEqual(got, passwords) {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", got, passwords)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "txt", want: FormatText},
		{input: "XLSX", want: FormatSpreadsheet},
		{input: " txt ", want: FormatText},
		{input: "csv", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want %v", tt.input, err, ErrUnknownFormat)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
		}
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 3, 9, 14, 5, 7, 0, time.UTC)
	if got, want := Filename(FormatText, now), "passwords_20250309_140507.txt"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
	if got, want := Filename(FormatSpreadsheet, now), "passwords_20250309_140507.xlsx"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

// Package session holds the mutable presentation state of an interactive
// front-end: the current options, the last generated password and the last
// batch. Every operation reports its outcome through a notify.Notifier and
// never returns an error, so the front-end stays usable after any failure.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/export"
	"github.com/vaultpass/passgen/internal/notify"
)

const (
	MsgNothingToCopy      = "no password to copy"
	MsgNothingToCopyBatch = "no batch result to copy"
	MsgNothingToSave      = "nothing to save, generate a batch first"
	MsgCopied             = "copied to clipboard"
	MsgBatchCopied        = "batch copied to clipboard"
)

// Session is not safe for concurrent use.
type Session struct {
	Options crypto.Options

	notifier notify.Notifier
	copier   clipboard.Copier
	dataDir  string
	now      func() time.Time

	password string
	score    int
	message  string
	batch    []string
}

// Option customises a Session.
type Option func(*Session)

// WithClock overrides time.Now for export file names.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a Session starting from crypto.DefaultOptions.
func New(notifier notify.Notifier, copier clipboard.Copier, dataDir string, opts ...Option) *Session {
	s := &Session{
		Options:  crypto.DefaultOptions(),
		notifier: notifier,
		copier:   copier,
		dataDir:  dataDir,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Password returns the last generated password, or "" if the last attempt failed.
func (s *Session) Password() string { return s.password }

// Score returns the strength of the last generated password.
func (s *Session) Score() int { return s.score }

// Band returns the display band of Score.
func (s *Session) Band() crypto.Band { return crypto.BandFor(s.score) }

// Message returns the last error shown in place of a password.
func (s *Session) Message() string { return s.message }

// Batch returns the last generated batch.
func (s *Session) Batch() []string { return s.batch }

// BatchText returns the batch in the numbered line format.
func (s *Session) BatchText() string {
	return strings.Join(export.FormatLines(s.batch), "\n")
}

// GenerateSingle replaces the current password.
func (s *Session) GenerateSingle() {
	pw, err := crypto.Generate(s.Options)
	if err != nil {
		s.password = ""
		s.score = 0
		s.message = describe(err)
		s.notifier.Notify(s.message)
		return
	}

	s.password = pw
	s.score = crypto.Score(pw)
	s.message = ""
	slog.Debug("password generated", "length", s.Options.Length, "score", s.score)
}

// CopySingle copies the current password.
func (s *Session) CopySingle() {
	if s.password == "" {
		s.notifier.Notify(MsgNothingToCopy)
		return
	}
	s.copy(s.password, MsgCopied)
}

// GenerateBatch replaces the current batch. countText is parsed as entered by the user.
func (s *Session) GenerateBatch(countText string) {
	count, err := crypto.ParseCount(countText)
	if err != nil {
		s.batch = nil
		s.notifier.Notify(describe(err))
		return
	}

	passwords, err := crypto.GenerateBatch(s.Options, count)
	if err != nil {
		s.batch = nil
		s.notifier.Notify(describe(err))
		return
	}

	s.batch = passwords
	slog.Debug("batch generated", "count", count)
}

// CopyBatch copies the numbered batch text.
func (s *Session) CopyBatch() {
	if len(s.batch) == 0 {
		s.notifier.Notify(MsgNothingToCopyBatch)
		return
	}
	s.copy(s.BatchText(), MsgBatchCopied)
}

// SaveText writes the batch to a timestamped .txt file in the data directory
// and returns its path, or "" on failure.
func (s *Session) SaveText() string {
	return s.save(export.FormatText)
}

// SaveSpreadsheet writes the batch to a timestamped .xlsx file in the data
// directory and returns its path, or "" on failure.
func (s *Session) SaveSpreadsheet() string {
	return s.save(export.FormatSpreadsheet)
}

func (s *Session) copy(text, success string) {
	if err := s.copier.Copy(text); err != nil {
		slog.Warn("clipboard copy failed", "error", err)
		s.notifier.Notify("copy failed: " + err.Error())
		return
	}
	s.notifier.Notify(success)
}

func (s *Session) save(format export.Format) string {
	if len(s.batch) == 0 {
		s.notifier.Notify(MsgNothingToSave)
		return ""
	}

	path, err := s.writeFile(format)
	if err != nil {
		slog.Warn("export failed", "format", format, "error", err)
		s.notifier.Notify("save failed: " + err.Error())
		return ""
	}

	s.notifier.Notify("saved: " + path)
	return path
}

func (s *Session) writeFile(format export.Format) (path string, err error) {
	if err := os.MkdirAll(s.dataDir, 0o700); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}

	path = filepath.Join(s.dataDir, export.Filename(format, s.now()))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	switch format {
	case export.FormatSpreadsheet:
		err = export.WriteSpreadsheet(f, s.batch)
	default:
		err = export.WriteText(f, s.batch)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// describe turns core errors into the text shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, crypto.ErrEmptyPool):
		return "error: select at least one character set (or add custom characters)"
	case errors.Is(err, crypto.ErrInvalidCount):
		return "error: enter a number between 1 and 100"
	default:
		return "error: " + err.Error()
	}
}

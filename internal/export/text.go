// Package export encodes password batches as numbered text lines or as an
// xlsx workbook, and parses both back.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Separator splits the index from the password in the line format.
const Separator = ". "

type Format string

const (
	FormatText        Format = "txt"
	FormatSpreadsheet Format = "xlsx"
)

var (
	ErrLineBreak     = errors.New("password contains a line break and cannot be exported")
	ErrUnknownFormat = errors.New("unknown export format")
)

// ParseFormat accepts "txt" or "xlsx" in any case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText:
		return FormatText, nil
	case FormatSpreadsheet:
		return FormatSpreadsheet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type used when serving f.
func (f Format) ContentType() string {
	if f == FormatSpreadsheet {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/plain; charset=utf-8"
}

// Entry is one parsed row: the index as written and the password.
type Entry struct {
	Index    string
	Password string
}

// Filename returns passwords_YYYYMMDD_HHMMSS.<format>.
func Filename(format Format, now time.Time) string {
	return fmt.Sprintf("passwords_%s.%s", now.Format("20060102_150405"), format)
}

// FormatLines renders passwords as "1. pw", "2. pw", ...
func FormatLines(passwords []string) []string {
	lines := make([]string, len(passwords))
	for i, pw := range passwords {
		lines[i] = strconv.Itoa(i+1) + Separator + pw
	}
	return lines
}

// WriteText writes the numbered lines joined by newlines, without a trailing newline.
func WriteText(w io.Writer, passwords []string) error {
	if err := checkLineBreaks(passwords); err != nil {
		return err
	}
	_, err := io.WriteString(w, strings.Join(FormatLines(passwords), "\n"))
	return err
}

// ParseLines reads the line format. Lines without the separator are skipped.
func ParseLines(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		idx, pw, found := strings.Cut(line, Separator)
		if !found {
			continue
		}
		entries = append(entries, Entry{Index: idx, Password: pw})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}

	return entries, nil
}

// Passwords returns the password column of entries in order.
func Passwords(entries []Entry) []string {
	passwords := make([]string, len(entries))
	for i, e := range entries {
		passwords[i] = e.Password
	}
	return passwords
}

func checkLineBreaks(passwords []string) error {
	for _, pw := range passwords {
		if strings.ContainsAny(pw, "\r\n") {
			return ErrLineBreak
		}
	}
	return nil
}

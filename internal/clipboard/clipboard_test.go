package clipboard

import (
	"errors"
	"testing"

	"github.com/atotto/clipboard"
)

func TestSystemUnsupported(t *testing.T) {
	prev := clipboard.Unsupported
	clipboard.Unsupported = true
	defer func() { clipboard.Unsupported = prev }()

	if err := System().Copy("secret"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Copy() error = %v, want %v", err, ErrUnavailable)
	}
}

func TestCopierFunc(t *testing.T) {
	var got string
	c := CopierFunc(func(text string) error {
		got = text
		return nil
	})

	if err := c.Copy("hello"); err != nil {
		t.Fatalf("Copy() unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("Copy() passed %q, want %q", got, "hello")
	}
}

package sdftext

import (
	"errors"
	"testing"
)

func TestFontLoadErrorUnwrap(t *testing.T) {
	inner := errors.New("no such file")
	err := &FontLoadError{Path: "missing.ttf", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("errors.Is should see through FontLoadError to the wrapped error")
	}
	if got := err.Error(); got == "" {
		t.Error("Error() should not be empty")
	}
}

func TestGlyphMissingErrorMessage(t *testing.T) {
	err := &GlyphMissingError{Char: 'Q'}
	if got := err.Error(); got == "" {
		t.Error("Error() should not be empty")
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	want := "sdftext: invalid config field Padding: must be non-negative"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

package extract

import (
	"context"
	"errors"
	"testing"
)

func TestTextRejectsEmptyBuffer(t *testing.T) {
	_, err := Text(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error for empty buffer")
	}
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}

func TestTextRejectsNonPDF(t *testing.T) {
	_, err := Text(context.Background(), []byte("plain text, not a pdf"))
	if err == nil {
		t.Fatal("expected error for non-PDF buffer")
	}
}

func TestTextHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Text(ctx, []byte("%PDF-1.4"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFlatten(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"trims trailing whitespace", "line one  \nline two\t\n", "line one\nline two"},
		{"collapses blank lines", "page one\n\n\n\npage two", "page one\npage two"},
		{"normalizes crlf", "a\r\nb", "a\nb"},
		{"empty input", "   \n\n", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Flatten(tc.in); got != tc.want {
				t.Fatalf("Flatten(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

package services

import (
	"strings"
	"testing"
)

func TestDeriveTitleKeepsShortMessages(t *testing.T) {
	if got := deriveTitle("Plan my week"); got != "Plan my week" {
		t.Fatalf("expected title unchanged, got %q", got)
	}
}

func TestDeriveTitleTruncatesLongMessages(t *testing.T) {
	long := strings.Repeat("workout ", 20)
	got := deriveTitle(long)

	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if len([]rune(got)) != aiTitleMaxLen+3 {
		t.Fatalf("expected %d runes, got %d", aiTitleMaxLen+3, len([]rune(got)))
	}
}

func TestDeriveTitleCountsRunesNotBytes(t *testing.T) {
	short := strings.Repeat("ü", aiTitleMaxLen)
	if got := deriveTitle(short); got != short {
		t.Fatalf("expected multibyte title unchanged, got %q", got)
	}
}

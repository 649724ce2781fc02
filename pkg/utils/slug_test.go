package utils

import (
	"regexp"
	"strings"
	"testing"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in       string
		wantBase string
	}{
		{"Wedding of Dara & Thida", "wedding-of-dara-thida"},
		{"  --Birthday!!  ", "birthday"},
		{"ពិធីមង្គលការ", "event"}, // non-latin collapses to the fallback
		{"", "event"},
	}

	for _, c := range cases {
		got := Slugify(c.in)
		if !strings.HasPrefix(got, c.wantBase+"-") {
			t.Errorf("Slugify(%q) = %q, want prefix %q", c.in, got, c.wantBase+"-")
		}
		if !slugShape.MatchString(got) {
			t.Errorf("Slugify(%q) = %q, not URL-safe", c.in, got)
		}
	}
}

func TestSlugify_SameNameDiffers(t *testing.T) {
	a := Slugify("Wedding")
	b := Slugify("Wedding")
	if a == b {
		t.Errorf("two slugs for the same name collided: %q", a)
	}
}

func TestGenerateOtpCode(t *testing.T) {
	code, err := GenerateOtpCode(6)
	if err != nil {
		t.Fatalf("GenerateOtpCode: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("len = %d, want 6", len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("non-digit in code %q", code)
		}
	}

	if _, err := GenerateOtpCode(0); err == nil {
		t.Error("expected error for zero length")
	}
}

package utils

import (
	"math/rand"
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

const slugSuffixChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// Slugify builds a public URL slug from an event name plus a short
// random suffix so two events with the same name never collide.
func Slugify(name string) string {
	base := nonSlug.ReplaceAllString(strings.ToLower(name), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "event"
	}

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = slugSuffixChars[rand.Intn(len(slugSuffixChars))]
	}
	return base + "-" + string(suffix)
}

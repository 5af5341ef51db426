package core

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slugQuotes    = regexp.MustCompile("['\"`]")
	slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashes    = regexp.MustCompile(`-{2,}`)
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Slugify converts text into a URL-safe slug made of lowercase ASCII letters,
// digits and single hyphens. It may return an empty string.
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = slugQuotes.ReplaceAllString(s, "")
	s = slugSeparator.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugifyWithFallback is Slugify that never returns an empty string.
func SlugifyWithFallback(text string) string {
	if s := Slugify(text); s != "" {
		return s
	}
	return fallbackSlug(time.Now())
}

func fallbackSlug(now time.Time) string {
	var suffix [6]byte
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.IntN(len(base36Alphabet))]
	}
	return "entry-" + strconv.FormatInt(now.UnixMilli(), 36) + "-" + string(suffix[:])
}

// SlugCandidate returns the attempt-th candidate for base: base, base-2, base-3...
func SlugCandidate(base string, attempt int) string {
	if attempt <= 1 {
		return base
	}
	return base + "-" + strconv.Itoa(attempt)
}

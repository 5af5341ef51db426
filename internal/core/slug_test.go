package core

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Intro to Go", "intro-to-go"},
		{"  Hello,   World!  ", "hello-world"},
		{"Don't Panic", "dont-panic"},
		{"\"Quoted\" `title`", "quoted-title"},
		{"--already--dashed--", "already-dashed"},
		{"Go 1.25 Release", "go-1-25-release"},
		{"Crème brûlée", "cr-me-br-l-e"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyWithFallback(t *testing.T) {
	got := SlugifyWithFallback("???")
	if !regexp.MustCompile(`^entry-[0-9a-z]+-[0-9a-z]{6}$`).MatchString(got) {
		t.Fatalf("unexpected fallback slug %q", got)
	}
	if got := SlugifyWithFallback("Launch"); got != "launch" {
		t.Fatalf("SlugifyWithFallback(%q) = %q", "Launch", got)
	}
}

func TestFallbackSlugEncodesTimestamp(t *testing.T) {
	now := time.UnixMilli(36 * 36)
	got := fallbackSlug(now)
	if !strings.HasPrefix(got, "entry-100-") {
		t.Fatalf("unexpected fallback slug %q", got)
	}
}

func TestSlugCandidate(t *testing.T) {
	if got := SlugCandidate("launch", 1); got != "launch" {
		t.Fatalf("SlugCandidate(1) = %q", got)
	}
	if got := SlugCandidate("launch", 2); got != "launch-2" {
		t.Fatalf("SlugCandidate(2) = %q", got)
	}
	if got := SlugCandidate("launch", 50); got != "launch-50" {
		t.Fatalf("SlugCandidate(50) = %q", got)
	}
}

func TestProperty_SlugAlphabet(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	shape := regexp.MustCompile(`^([a-z0-9]+(-[a-z0-9]+)*)?$`)

	properties.Property("slug contains only lowercase letters, digits and single inner hyphens", prop.ForAll(
		func(text string) bool {
			return shape.MatchString(Slugify(text))
		},
		gen.AnyString(),
	))

	properties.Property("slugify is idempotent", prop.ForAll(
		func(text string) bool {
			once := Slugify(text)
			return Slugify(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("fallback slug is never empty", prop.ForAll(
		func(text string) bool {
			return SlugifyWithFallback(text) != ""
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

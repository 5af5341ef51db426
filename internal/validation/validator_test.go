package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/eslsoft/courseboxd/internal/core"
)

func validVideo(title string) core.VideoInput {
	return core.VideoInput{
		Title: lo.ToPtr(title),
		URL:   lo.ToPtr("https://videos.example.com/" + title),
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *core.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *core.ValidationError, got %v", err)
	}
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected error to match ErrValidation")
	}
	return verr.Fields
}

func TestValidator_CourseNormalizes(t *testing.T) {
	v := New()

	draft, err := v.Course(core.CourseInput{
		Title:       lo.ToPtr("  Launch  "),
		Summary:     lo.ToPtr("   "),
		Description: lo.ToPtr(" Everything about launches "),
		ProviderURL: lo.ToPtr(""),
		Videos: []core.VideoInput{
			{
				ID:              lo.ToPtr(uuid.NewString()),
				Title:           lo.ToPtr(" Part 1 "),
				URL:             lo.ToPtr(" https://videos.example.com/1 "),
				DurationSeconds: lo.ToPtr(90.0),
			},
		},
	})
	if err != nil {
		t.Fatalf("Course() error = %v", err)
	}
	if draft.Title != "Launch" {
		t.Fatalf("expected trimmed title, got %q", draft.Title)
	}
	if draft.Summary != nil {
		t.Fatalf("expected blank summary to become nil, got %q", *draft.Summary)
	}
	if draft.ProviderURL != nil {
		t.Fatalf("expected blank provider url to become nil")
	}
	if lo.FromPtr(draft.Description) != "Everything about launches" {
		t.Fatalf("unexpected description %v", draft.Description)
	}
	if len(draft.Videos) != 1 {
		t.Fatalf("expected 1 video, got %d", len(draft.Videos))
	}
	video := draft.Videos[0]
	if video.ID != uuid.Nil {
		t.Fatalf("expected create to ignore video ids, got %v", video.ID)
	}
	if video.Title != "Part 1" || video.URL != "https://videos.example.com/1" {
		t.Fatalf("unexpected video %#v", video)
	}
	if lo.FromPtr(video.DurationSeconds) != 90 {
		t.Fatalf("expected duration 90, got %v", video.DurationSeconds)
	}
}

func TestValidator_CourseTitleBoundary(t *testing.T) {
	v := New()

	if _, err := v.Course(core.CourseInput{Title: lo.ToPtr("Abc")}); err != nil {
		t.Fatalf("Course() with 3 chars error = %v", err)
	}

	_, err := v.Course(core.CourseInput{Title: lo.ToPtr("Ab")})
	fields := fieldsOf(t, err)
	if fields["title"] != "Title must be at least 3 characters" {
		t.Fatalf("unexpected title message %q", fields["title"])
	}

	_, err = v.Course(core.CourseInput{})
	fields = fieldsOf(t, err)
	if fields["title"] != "Title is required" {
		t.Fatalf("unexpected missing title message %q", fields["title"])
	}
}

func TestValidator_VideoFieldPaths(t *testing.T) {
	v := New()

	_, err := v.Course(core.CourseInput{
		Title: lo.ToPtr("Launch"),
		Videos: []core.VideoInput{
			validVideo("Part 1"),
			validVideo("Part 2"),
			{
				Title:           lo.ToPtr("P3"),
				URL:             lo.ToPtr("not a url"),
				DurationSeconds: lo.ToPtr(1.5),
				Position:        lo.ToPtr(0.0),
			},
			{URL: lo.ToPtr("https://videos.example.com/4"), ThumbnailURL: lo.ToPtr("/relative.png")},
		},
	})

	fields := fieldsOf(t, err)
	want := map[string]string{
		"videos[2].title":           "Video title must be at least 3 characters",
		"videos[2].url":             "Enter a valid URL",
		"videos[2].durationSeconds": "Duration must be a whole number of seconds",
		"videos[2].position":        "Position must be at least 1",
		"videos[3].title":           "Video title is required",
		"videos[3].thumbnailUrl":    "Enter a valid URL",
	}
	for path, msg := range want {
		if fields[path] != msg {
			t.Fatalf("fields[%q] = %q, want %q (all: %v)", path, fields[path], msg, fields)
		}
	}
	if len(fields) != len(want) {
		t.Fatalf("unexpected extra fields: %v", fields)
	}
}

func TestValidator_VideoDurationBounds(t *testing.T) {
	v := New()

	_, err := v.Video(core.VideoInput{
		Title:           lo.ToPtr("Part 1"),
		URL:             lo.ToPtr("https://videos.example.com/1"),
		DurationSeconds: lo.ToPtr(0.0),
	})
	fields := fieldsOf(t, err)
	if fields["durationSeconds"] != "Duration must be at least one second" {
		t.Fatalf("unexpected duration message %q", fields["durationSeconds"])
	}

	_, err = v.Video(core.VideoInput{Title: lo.ToPtr("Part 1")})
	fields = fieldsOf(t, err)
	if fields["url"] != "Video URL is required" {
		t.Fatalf("unexpected url message %q", fields["url"])
	}

	draft, err := v.Video(core.VideoInput{
		Title:    lo.ToPtr("Part 1"),
		URL:      lo.ToPtr("https://videos.example.com/1"),
		Position: lo.ToPtr(4.0),
	})
	if err != nil {
		t.Fatalf("Video() error = %v", err)
	}
	if lo.FromPtr(draft.Position) != 4 {
		t.Fatalf("expected position 4, got %v", draft.Position)
	}

	_, err = v.Video(core.VideoInput{
		Title:           lo.ToPtr("Part 1"),
		URL:             lo.ToPtr("https://videos.example.com/1"),
		DurationSeconds: lo.ToPtr(1e19),
		Position:        lo.ToPtr(1e19),
	})
	fields = fieldsOf(t, err)
	if fields["durationSeconds"] != "Duration is too large" {
		t.Fatalf("unexpected duration message %q", fields["durationSeconds"])
	}
	if fields["position"] != "Position is too large" {
		t.Fatalf("unexpected position message %q", fields["position"])
	}

	draft, err = v.Video(core.VideoInput{
		Title:           lo.ToPtr("Part 1"),
		URL:             lo.ToPtr("https://videos.example.com/1"),
		DurationSeconds: lo.ToPtr(2147483647.0),
	})
	if err != nil {
		t.Fatalf("Video() error = %v", err)
	}
	if lo.FromPtr(draft.DurationSeconds) != 2147483647 {
		t.Fatalf("expected largest duration to survive, got %v", draft.DurationSeconds)
	}
}

func TestValidator_VideoRejectsInvalidURL(t *testing.T) {
	v := New()

	_, err := v.Video(core.VideoInput{
		Title: lo.ToPtr("Part 1"),
		URL:   lo.ToPtr("not-a-url"),
	})
	fields := fieldsOf(t, err)
	if fields["url"] != "Enter a valid URL" {
		t.Fatalf("unexpected url message %q", fields["url"])
	}
}

func TestValidator_VideoIDCase(t *testing.T) {
	v := New()
	id := uuid.New()

	video := validVideo("Part 1")
	video.ID = lo.ToPtr(strings.ToUpper(id.String()))
	update, err := v.CourseUpdate(core.CourseUpdateInput{
		CourseInput: core.CourseInput{
			Title:  lo.ToPtr("Launch"),
			Videos: []core.VideoInput{video},
		},
		RemovedVideoIDs: []string{strings.ToUpper(id.String())},
	})
	if err != nil {
		t.Fatalf("CourseUpdate() error = %v", err)
	}
	if update.Videos[0].ID != id || update.RemovedVideoIDs[0] != id {
		t.Fatalf("expected uppercase ids to resolve to %v, got %v and %v", id, update.Videos[0].ID, update.RemovedVideoIDs)
	}

	braced := "{" + id.String() + "}"
	video.ID = lo.ToPtr(braced)
	_, err = v.CourseUpdate(core.CourseUpdateInput{
		CourseInput: core.CourseInput{
			Title:  lo.ToPtr("Launch"),
			Videos: []core.VideoInput{video},
		},
		RemovedVideoIDs: []string{braced},
	})
	fields := fieldsOf(t, err)
	if fields["videos[0].id"] != "Invalid identifier" || fields["removedVideoIds[0]"] != "Invalid identifier" {
		t.Fatalf("expected braced ids to be rejected in both places, got %v", fields)
	}
}

func TestValidator_CourseUpdate(t *testing.T) {
	v := New()
	keep := uuid.New()
	removed := uuid.New()

	video := validVideo("Part 1")
	video.ID = lo.ToPtr(keep.String())

	update, err := v.CourseUpdate(core.CourseUpdateInput{
		CourseInput: core.CourseInput{
			Title:  lo.ToPtr("Launch"),
			Videos: []core.VideoInput{video, validVideo("Part 2")},
		},
		RemovedVideoIDs: []string{removed.String(), removed.String()},
	})
	if err != nil {
		t.Fatalf("CourseUpdate() error = %v", err)
	}
	if !update.ReplaceVideos {
		t.Fatal("expected ReplaceVideos when videos are present")
	}
	if update.Videos[0].ID != keep {
		t.Fatalf("expected video id %v, got %v", keep, update.Videos[0].ID)
	}
	if update.Videos[1].ID != uuid.Nil {
		t.Fatalf("expected new video without id")
	}
	if len(update.RemovedVideoIDs) != 1 || update.RemovedVideoIDs[0] != removed {
		t.Fatalf("unexpected removed ids %v", update.RemovedVideoIDs)
	}

	update, err = v.CourseUpdate(core.CourseUpdateInput{CourseInput: core.CourseInput{Title: lo.ToPtr("Launch")}})
	if err != nil {
		t.Fatalf("CourseUpdate() error = %v", err)
	}
	if update.ReplaceVideos {
		t.Fatal("expected ReplaceVideos false when videos are absent")
	}
}

func TestValidator_CourseUpdateRejectsBadReferences(t *testing.T) {
	v := New()
	id := uuid.NewString()

	first := validVideo("Part 1")
	first.ID = lo.ToPtr(id)
	second := validVideo("Part 2")
	second.ID = lo.ToPtr(id)
	third := validVideo("Part 3")
	third.ID = lo.ToPtr("nope")

	_, err := v.CourseUpdate(core.CourseUpdateInput{
		CourseInput: core.CourseInput{
			Title:  lo.ToPtr("Launch"),
			Videos: []core.VideoInput{first, second, third},
		},
		RemovedVideoIDs: []string{"not-a-uuid"},
	})

	fields := fieldsOf(t, err)
	if fields["videos[1].id"] != "Duplicate video reference" {
		t.Fatalf("unexpected duplicate message %q", fields["videos[1].id"])
	}
	if fields["videos[2].id"] != "Invalid identifier" {
		t.Fatalf("unexpected id message %q", fields["videos[2].id"])
	}
	if fields["removedVideoIds[0]"] != "Invalid identifier" {
		t.Fatalf("unexpected removed id message %q", fields["removedVideoIds[0]"])
	}
}

func TestValidator_Registration(t *testing.T) {
	v := New()

	reg, err := v.Registration(core.RegistrationInput{
		Email:           " Ada@Example.com ",
		Username:        "Ada_L",
		Password:        "correct horse",
		ConfirmPassword: "correct horse",
	})
	if err != nil {
		t.Fatalf("Registration() error = %v", err)
	}
	if reg.Email != "ada@example.com" || reg.Username != "ada_l" {
		t.Fatalf("expected lowercased identity, got %q %q", reg.Email, reg.Username)
	}
	if reg.DefaultVisibility != core.VisibilityPublic {
		t.Fatalf("expected default visibility PUBLIC, got %q", reg.DefaultVisibility)
	}

	_, err = v.Registration(core.RegistrationInput{
		Email:             "nope",
		Username:          "a-b",
		Password:          "short",
		ConfirmPassword:   "other",
		DefaultVisibility: "FRIENDS",
	})
	fields := fieldsOf(t, err)
	want := map[string]string{
		"email":             "Enter a valid email address",
		"username":          "Only lowercase letters, numbers and underscores are allowed",
		"password":          "Password must be at least 8 characters",
		"confirmPassword":   "Passwords do not match",
		"defaultVisibility": "Select a valid option",
	}
	for path, msg := range want {
		if fields[path] != msg {
			t.Fatalf("fields[%q] = %q, want %q", path, fields[path], msg)
		}
	}
}

func TestValidator_Profile(t *testing.T) {
	v := New()

	update, err := v.Profile(core.ProfileInput{
		Name:              " Ada ",
		AvatarURL:         lo.ToPtr(" "),
		DefaultVisibility: "PRIVATE",
	})
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if update.Name != "Ada" || update.AvatarURL != nil || update.DefaultVisibility != core.VisibilityPrivate {
		t.Fatalf("unexpected profile update %#v", update)
	}

	_, err = v.Profile(core.ProfileInput{Name: "A", DefaultVisibility: "PUBLIC"})
	fields := fieldsOf(t, err)
	if fields["name"] != "Name must be at least 2 characters" {
		t.Fatalf("unexpected name message %q", fields["name"])
	}
}

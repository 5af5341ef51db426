package validation

import (
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/eslsoft/courseboxd/internal/core"
)

func normalizeCourse(in core.CourseInput) core.CourseInput {
	out := core.CourseInput{
		Title:        trimmedKeep(in.Title),
		Summary:      trimmed(in.Summary),
		Description:  trimmed(in.Description),
		Provider:     trimmed(in.Provider),
		ProviderURL:  trimmed(in.ProviderURL),
		ThumbnailURL: trimmed(in.ThumbnailURL),
		ExternalID:   trimmed(in.ExternalID),
	}
	if in.Videos != nil {
		out.Videos = lo.Map(in.Videos, func(v core.VideoInput, _ int) core.VideoInput {
			return normalizeVideo(v)
		})
	}
	return out
}

func normalizeVideo(in core.VideoInput) core.VideoInput {
	return core.VideoInput{
		ID:              lowered(trimmed(in.ID)),
		Title:           trimmedKeep(in.Title),
		Description:     trimmed(in.Description),
		URL:             trimmedKeep(in.URL),
		DurationSeconds: in.DurationSeconds,
		Provider:        trimmed(in.Provider),
		ExternalID:      trimmed(in.ExternalID),
		ThumbnailURL:    trimmed(in.ThumbnailURL),
		Position:        in.Position,
	}
}

func toCourseDraft(in core.CourseInput) core.CourseDraft {
	return core.CourseDraft{
		Title:        lo.FromPtr(in.Title),
		Summary:      in.Summary,
		Description:  in.Description,
		Provider:     in.Provider,
		ProviderURL:  in.ProviderURL,
		ThumbnailURL: in.ThumbnailURL,
		ExternalID:   in.ExternalID,
		Videos: lo.Map(in.Videos, func(v core.VideoInput, _ int) core.VideoDraft {
			return toVideoDraft(v)
		}),
	}
}

func toVideoDraft(in core.VideoInput) core.VideoDraft {
	draft := core.VideoDraft{
		Title:           lo.FromPtr(in.Title),
		Description:     in.Description,
		URL:             lo.FromPtr(in.URL),
		DurationSeconds: intPtr(in.DurationSeconds),
		Provider:        in.Provider,
		ExternalID:      in.ExternalID,
		ThumbnailURL:    in.ThumbnailURL,
		Position:        intPtr(in.Position),
	}
	if in.ID != nil {
		draft.ID = uuid.MustParse(*in.ID)
	}
	return draft
}

// trimmed trims s and turns blank values into nil.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// trimmedKeep trims s but keeps blank values so length rules can report them.
func trimmedKeep(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// lowered lowercases identifiers so hex case never decides validity.
func lowered(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(*s)
	return &v
}

func lowerID(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// intPtr converts a validated number. Values outside the int32 range are
// rejected by the max rule before conversion.
func intPtr(f *float64) *int {
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

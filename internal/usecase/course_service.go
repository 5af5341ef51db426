package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/eslsoft/courseboxd/internal/core"
)

// CourseService coordinates course and video use cases.
type CourseService struct {
	repo      core.CourseRepository
	validator core.InputValidator
	logger    zerolog.Logger
	now       func() time.Time
}

// NewCourseService constructs a CourseService backed by the provided repository.
func NewCourseService(repo core.CourseRepository, validator core.InputValidator, logger zerolog.Logger) *CourseService {
	return &CourseService{
		repo:      repo,
		validator: validator,
		logger:    logger.With().Str("component", "course_service").Logger(),
		now:       time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *CourseService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.CourseService = (*CourseService)(nil)

// ListCourses returns catalog entries newest first, each with its video count.
func (s *CourseService) ListCourses(ctx context.Context, filter core.CourseListFilter) ([]core.Course, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Provider = strings.TrimSpace(filter.Provider)
	return s.repo.ListCourses(ctx, filter)
}

// GetCourseBySlug returns a course with ordered videos and its creator.
func (s *CourseService) GetCourseBySlug(ctx context.Context, slug string) (*core.Course, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, core.NewValidationError("slug", "Missing course identifier")
	}
	return s.repo.GetCourseBySlug(ctx, slug)
}

// GetCourseSlug resolves a course id to its current slug.
func (s *CourseService) GetCourseSlug(ctx context.Context, id uuid.UUID) (string, error) {
	if id == uuid.Nil {
		return "", core.NewValidationError("courseId", "Missing course identifier")
	}
	return s.repo.GetCourseSlug(ctx, id)
}

// ListCourseVideos returns the ordered videos of the course with the given slug.
func (s *CourseService) ListCourseVideos(ctx context.Context, slug string) ([]core.Video, error) {
	course, err := s.GetCourseBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return course.Videos, nil
}

// GetVideo returns a video together with its parent course reference.
func (s *CourseService) GetVideo(ctx context.Context, id uuid.UUID) (*core.VideoDetail, error) {
	if id == uuid.Nil {
		return nil, core.NewValidationError("videoId", "Missing video identifier")
	}
	return s.repo.GetVideo(ctx, id)
}

// CreateCourse creates a course and its initial videos in one transaction.
func (s *CourseService) CreateCourse(ctx context.Context, actorID uuid.UUID, input core.CourseInput) (*core.Course, error) {
	draft, err := s.validator.Course(input)
	if err != nil {
		return nil, err
	}

	var created *core.Course
	err = s.inTx(ctx, func(tx core.CourseTx) error {
		now := s.now().UTC()
		slug, err := ensureUniqueSlug(ctx, tx, draft.Title, core.SlugKindCourse, uuid.Nil)
		if err != nil {
			return err
		}

		course := courseFromDraft(uuid.New(), slug, draft)
		course.CreatorID = actorID
		course.CreatedAt = now
		course.UpdatedAt = now
		if err := tx.InsertCourse(ctx, course); err != nil {
			return err
		}

		for i, vd := range draft.Videos {
			if _, err := s.insertVideo(ctx, tx, course.ID, actorID, vd, lo.FromPtrOr(vd.Position, i+1), now); err != nil {
				return err
			}
		}

		created, err = tx.GetCourse(ctx, course.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("course_id", created.ID.String()).
		Str("slug", created.Slug).
		Int("videos", len(created.Videos)).
		Msg("course created")
	return created, nil
}

// UpdateCourse applies a full course edit, reconciling the video list.
func (s *CourseService) UpdateCourse(ctx context.Context, courseID, actorID uuid.UUID, input core.CourseUpdateInput) (*core.Course, error) {
	if courseID == uuid.Nil {
		return nil, core.NewValidationError("courseId", "Missing course identifier")
	}
	update, err := s.validator.CourseUpdate(input)
	if err != nil {
		return nil, err
	}

	var updated *core.Course
	err = s.inTx(ctx, func(tx core.CourseTx) error {
		if err := assertCourseOwnership(ctx, tx, courseID, actorID); err != nil {
			return err
		}

		currentIDs, err := tx.CourseVideoIDs(ctx, courseID)
		if err != nil {
			return err
		}
		plan, err := planVideoSync(currentIDs, update)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		slug, err := ensureUniqueSlug(ctx, tx, update.Title, core.SlugKindCourse, courseID)
		if err != nil {
			return err
		}
		course := courseFromDraft(courseID, slug, update.CourseDraft)
		course.UpdatedAt = now
		if err := tx.UpdateCourse(ctx, course); err != nil {
			return err
		}

		if err := tx.DeleteCourseVideos(ctx, courseID, plan.remove); err != nil {
			return err
		}

		for _, entry := range plan.entries {
			if !entry.existing {
				if _, err := s.insertVideo(ctx, tx, courseID, actorID, entry.draft, entry.position, now); err != nil {
					return err
				}
				continue
			}

			slug, err := ensureUniqueSlug(ctx, tx, entry.draft.Title, core.SlugKindVideo, entry.draft.ID)
			if err != nil {
				return err
			}
			video := videoFromDraft(entry.draft.ID, slug, entry.draft)
			video.CourseID = courseID
			video.Position = entry.position
			video.UpdatedAt = now
			if err := tx.UpdateVideo(ctx, video); err != nil {
				return err
			}
		}

		updated, err = tx.GetCourse(ctx, courseID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("course_id", updated.ID.String()).
		Str("slug", updated.Slug).
		Int("videos", len(updated.Videos)).
		Msg("course updated")
	return updated, nil
}

// DeleteCourse removes a course owned by actorID together with its videos.
func (s *CourseService) DeleteCourse(ctx context.Context, courseID, actorID uuid.UUID) error {
	if courseID == uuid.Nil {
		return core.NewValidationError("courseId", "Missing course identifier")
	}
	err := s.repo.InTx(ctx, func(tx core.CourseTx) error {
		if err := assertCourseOwnership(ctx, tx, courseID, actorID); err != nil {
			return err
		}
		return tx.DeleteCourse(ctx, courseID)
	})
	if err != nil {
		return err
	}
	s.logger.Info().Str("course_id", courseID.String()).Msg("course deleted")
	return nil
}

// CreateVideo appends a video to a course owned by actorID. Without an
// explicit position the video goes after the current last one.
func (s *CourseService) CreateVideo(ctx context.Context, courseID, actorID uuid.UUID, input core.VideoInput) (*core.Video, error) {
	if courseID == uuid.Nil {
		return nil, core.NewValidationError("courseId", "Missing course identifier")
	}
	draft, err := s.validator.Video(input)
	if err != nil {
		return nil, err
	}

	var created *core.Video
	err = s.inTx(ctx, func(tx core.CourseTx) error {
		if err := assertCourseOwnership(ctx, tx, courseID, actorID); err != nil {
			return err
		}

		position := lo.FromPtr(draft.Position)
		if draft.Position == nil {
			maxPosition, err := tx.MaxVideoPosition(ctx, courseID)
			if err != nil {
				return err
			}
			position = maxPosition + 1
		}

		id, err := s.insertVideo(ctx, tx, courseID, actorID, draft, position, s.now().UTC())
		if err != nil {
			return err
		}
		created, err = tx.GetVideo(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateVideo edits a single video. Its position is kept unless supplied.
func (s *CourseService) UpdateVideo(ctx context.Context, videoID, actorID uuid.UUID, input core.VideoInput) (*core.Video, error) {
	if videoID == uuid.Nil {
		return nil, core.NewValidationError("videoId", "Missing video identifier")
	}
	draft, err := s.validator.Video(input)
	if err != nil {
		return nil, err
	}

	var updated *core.Video
	err = s.inTx(ctx, func(tx core.CourseTx) error {
		ownership, err := assertVideoOwnership(ctx, tx, videoID, actorID)
		if err != nil {
			return err
		}
		current, err := tx.GetVideo(ctx, videoID)
		if err != nil {
			return err
		}

		slug, err := ensureUniqueSlug(ctx, tx, draft.Title, core.SlugKindVideo, videoID)
		if err != nil {
			return err
		}
		video := videoFromDraft(videoID, slug, draft)
		video.CourseID = ownership.CourseID
		video.Position = lo.FromPtrOr(draft.Position, current.Position)
		video.UpdatedAt = s.now().UTC()
		if err := tx.UpdateVideo(ctx, video); err != nil {
			return err
		}

		updated, err = tx.GetVideo(ctx, videoID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteVideo removes a video and reports the course it belonged to.
func (s *CourseService) DeleteVideo(ctx context.Context, videoID, actorID uuid.UUID) (*core.DeletedVideo, error) {
	if videoID == uuid.Nil {
		return nil, core.NewValidationError("videoId", "Missing video identifier")
	}

	var deleted *core.DeletedVideo
	err := s.repo.InTx(ctx, func(tx core.CourseTx) error {
		ownership, err := assertVideoOwnership(ctx, tx, videoID, actorID)
		if err != nil {
			return err
		}
		if err := tx.DeleteVideo(ctx, videoID); err != nil {
			return err
		}
		deleted = &core.DeletedVideo{CourseID: ownership.CourseID, CourseSlug: ownership.CourseSlug}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// inTx runs fn in a transaction, starting over when a write loses a slug
// race. Each attempt re-checks slugs against committed rows.
func (s *CourseService) inTx(ctx context.Context, fn func(tx core.CourseTx) error) error {
	for attempt := 1; ; attempt++ {
		err := s.repo.InTx(ctx, fn)
		if !errors.Is(err, core.ErrSlugConflict) {
			return err
		}
		if attempt >= maxSlugAttempts {
			return fmt.Errorf("%w: %w", core.ErrSlugExhausted, err)
		}
		s.logger.Debug().Err(err).Int("attempt", attempt).Msg("slug conflict, retrying")
	}
}

func (s *CourseService) insertVideo(ctx context.Context, tx core.CourseTx, courseID, creatorID uuid.UUID, draft core.VideoDraft, position int, now time.Time) (uuid.UUID, error) {
	slug, err := ensureUniqueSlug(ctx, tx, draft.Title, core.SlugKindVideo, uuid.Nil)
	if err != nil {
		return uuid.Nil, err
	}
	video := videoFromDraft(uuid.New(), slug, draft)
	video.CourseID = courseID
	video.CreatorID = creatorID
	video.Position = position
	video.CreatedAt = now
	video.UpdatedAt = now
	if err := tx.InsertVideo(ctx, video); err != nil {
		return uuid.Nil, err
	}
	return video.ID, nil
}

func courseFromDraft(id uuid.UUID, slug string, draft core.CourseDraft) core.Course {
	return core.Course{
		ID:           id,
		Slug:         slug,
		Title:        draft.Title,
		Summary:      draft.Summary,
		Description:  draft.Description,
		Provider:     draft.Provider,
		ProviderURL:  draft.ProviderURL,
		ThumbnailURL: draft.ThumbnailURL,
		ExternalID:   draft.ExternalID,
	}
}

func videoFromDraft(id uuid.UUID, slug string, draft core.VideoDraft) core.Video {
	return core.Video{
		ID:              id,
		Slug:            slug,
		Title:           draft.Title,
		Description:     draft.Description,
		URL:             draft.URL,
		DurationSeconds: draft.DurationSeconds,
		Provider:        draft.Provider,
		ExternalID:      draft.ExternalID,
		ThumbnailURL:    draft.ThumbnailURL,
	}
}

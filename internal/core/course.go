package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Video represents a persisted lesson within a course.
type Video struct {
	ID              uuid.UUID
	CourseID        uuid.UUID
	CreatorID       uuid.UUID
	Slug            string
	Title           string
	Description     *string
	URL             string
	DurationSeconds *int
	Provider        *string
	ExternalID      *string
	ThumbnailURL    *string
	Position        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Creator is the public projection of a course author.
type Creator struct {
	ID       uuid.UUID
	Name     *string
	Username string
}

// Course represents a persisted course.
type Course struct {
	ID           uuid.UUID
	Slug         string
	Title        string
	Summary      *string
	Description  *string
	Provider     *string
	ProviderURL  *string
	ThumbnailURL *string
	ExternalID   *string
	CreatorID    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// VideoCount is populated by listings.
	VideoCount int
	// Videos are ordered by position when loaded.
	Videos  []Video
	Creator *Creator
}

// CourseRef identifies the course a video belongs to.
type CourseRef struct {
	ID    uuid.UUID
	Slug  string
	Title string
}

// VideoDetail is a video together with its parent course.
type VideoDetail struct {
	Video
	Course CourseRef
}

// DeletedVideo reports where a removed video used to live.
type DeletedVideo struct {
	CourseID   uuid.UUID
	CourseSlug string
}

// VideoOwnership is the ownership view of a video and its course.
type VideoOwnership struct {
	VideoID    uuid.UUID
	CourseID   uuid.UUID
	CourseSlug string
	CreatorID  uuid.UUID
}

// CourseDraft contains normalized, validated course attributes.
type CourseDraft struct {
	Title        string
	Summary      *string
	Description  *string
	Provider     *string
	ProviderURL  *string
	ThumbnailURL *string
	ExternalID   *string
	Videos       []VideoDraft
}

// VideoDraft contains normalized, validated video attributes. ID is uuid.Nil
// for videos that do not exist yet.
type VideoDraft struct {
	ID              uuid.UUID
	Title           string
	Description     *string
	URL             string
	DurationSeconds *int
	Provider        *string
	ExternalID      *string
	ThumbnailURL    *string
	Position        *int
}

// CourseUpdate is a validated full edit of a course.
type CourseUpdate struct {
	CourseDraft
	// ReplaceVideos is set when the edit carries a video list; current videos
	// missing from it are deleted.
	ReplaceVideos   bool
	RemovedVideoIDs []uuid.UUID
}

// CourseListFilter narrows catalog listings.
type CourseListFilter struct {
	Search    string
	CreatorID uuid.UUID
	Provider  string
}

// SlugKind selects the slug namespace.
type SlugKind int

const (
	SlugKindCourse SlugKind = iota + 1
	SlugKindVideo
)

func (k SlugKind) String() string {
	switch k {
	case SlugKindCourse:
		return "course"
	case SlugKindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// CourseReader exposes read-only catalog queries.
type CourseReader interface {
	ListCourses(ctx context.Context, filter CourseListFilter) ([]Course, error)
	GetCourseBySlug(ctx context.Context, slug string) (*Course, error)
	GetCourseSlug(ctx context.Context, id uuid.UUID) (string, error)
	GetVideo(ctx context.Context, id uuid.UUID) (*VideoDetail, error)
}

// CourseTx is the transactional view used by mutations. All calls share one
// storage transaction.
type CourseTx interface {
	SlugExists(ctx context.Context, kind SlugKind, slug string, excludeID uuid.UUID) (bool, error)
	CourseCreator(ctx context.Context, courseID uuid.UUID) (uuid.UUID, error)
	VideoOwnership(ctx context.Context, videoID uuid.UUID) (*VideoOwnership, error)
	CourseVideoIDs(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error)
	MaxVideoPosition(ctx context.Context, courseID uuid.UUID) (int, error)
	InsertCourse(ctx context.Context, course Course) error
	UpdateCourse(ctx context.Context, course Course) error
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	InsertVideo(ctx context.Context, video Video) error
	UpdateVideo(ctx context.Context, video Video) error
	DeleteCourseVideos(ctx context.Context, courseID uuid.UUID, ids []uuid.UUID) error
	DeleteVideo(ctx context.Context, id uuid.UUID) error
	GetCourse(ctx context.Context, id uuid.UUID) (*Course, error)
	GetVideo(ctx context.Context, id uuid.UUID) (*Video, error)
}

// CourseRepository defines persistence operations for courses and videos.
type CourseRepository interface {
	CourseReader
	// InTx runs fn in one transaction, committing when fn returns nil.
	InTx(ctx context.Context, fn func(tx CourseTx) error) error
}

// CourseService exposes the course use cases to adapters.
type CourseService interface {
	ListCourses(ctx context.Context, filter CourseListFilter) ([]Course, error)
	GetCourseBySlug(ctx context.Context, slug string) (*Course, error)
	GetCourseSlug(ctx context.Context, id uuid.UUID) (string, error)
	ListCourseVideos(ctx context.Context, slug string) ([]Video, error)
	GetVideo(ctx context.Context, id uuid.UUID) (*VideoDetail, error)
	CreateCourse(ctx context.Context, actorID uuid.UUID, input CourseInput) (*Course, error)
	UpdateCourse(ctx context.Context, courseID, actorID uuid.UUID, input CourseUpdateInput) (*Course, error)
	DeleteCourse(ctx context.Context, courseID, actorID uuid.UUID) error
	CreateVideo(ctx context.Context, courseID, actorID uuid.UUID, input VideoInput) (*Video, error)
	UpdateVideo(ctx context.Context, videoID, actorID uuid.UUID, input VideoInput) (*Video, error)
	DeleteVideo(ctx context.Context, videoID, actorID uuid.UUID) (*DeletedVideo, error)
}

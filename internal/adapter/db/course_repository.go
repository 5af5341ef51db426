package db

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated"
	entcourse "github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated/course"
	"github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated/predicate"
	entvideo "github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated/video"
	"github.com/eslsoft/courseboxd/internal/core"
)

// CourseRepository persists courses and videos using Ent.
type CourseRepository struct {
	client *entgenerated.Client
	*courseStore
}

// NewCourseRepository constructs an Ent-backed course repository.
func NewCourseRepository(client *entgenerated.Client) *CourseRepository {
	return &CourseRepository{client: client, courseStore: &courseStore{client: client}}
}

var (
	_ core.CourseRepository = (*CourseRepository)(nil)
	_ core.CourseTx         = (*courseStore)(nil)
)

// InTx runs fn inside a single transaction.
func (r *CourseRepository) InTx(ctx context.Context, fn func(tx core.CourseTx) error) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return wrapError("begin tx", err)
	}

	if err := fn(&courseStore{client: tx.Client()}); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return wrapError("commit tx", uniqueAs(err, core.ErrSlugConflict))
	}
	return nil
}

// ListCourses retrieves catalog entries matching filter, newest first.
func (r *CourseRepository) ListCourses(ctx context.Context, filter core.CourseListFilter) ([]core.Course, error) {
	var preds []predicate.Course
	if filter.Search != "" {
		preds = append(preds, entcourse.Or(
			entcourse.TitleContainsFold(filter.Search),
			entcourse.SummaryContainsFold(filter.Search),
			entcourse.DescriptionContainsFold(filter.Search),
		))
	}
	if filter.CreatorID != uuid.Nil {
		preds = append(preds, entcourse.CreatorIDEQ(filter.CreatorID))
	}
	if filter.Provider != "" {
		preds = append(preds, entcourse.ProviderEQ(filter.Provider))
	}

	rows, err := r.client.Course.Query().
		Where(preds...).
		Order(entcourse.ByCreatedAt(sql.OrderDesc()), entcourse.ByID(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, wrapError("list courses", err)
	}

	counts, err := r.videoCounts(ctx, lo.Map(rows, func(row *entgenerated.Course, _ int) uuid.UUID { return row.ID }))
	if err != nil {
		return nil, wrapError("count videos", err)
	}

	return lo.Map(rows, func(row *entgenerated.Course, _ int) core.Course {
		course := toCourse(row)
		course.VideoCount = counts[row.ID]
		return *course
	}), nil
}

// GetCourseBySlug fetches a course with ordered videos and its creator.
func (r *CourseRepository) GetCourseBySlug(ctx context.Context, slug string) (*core.Course, error) {
	row, err := r.client.Course.Query().
		Where(entcourse.SlugEQ(slug)).
		WithVideos(orderedVideos).
		WithCreator().
		Only(ctx)
	if err != nil {
		return nil, wrapError("get course by slug", err)
	}

	course := toCourse(row)
	if creator := row.Edges.Creator; creator != nil {
		course.Creator = &core.Creator{ID: creator.ID, Name: creator.Name, Username: creator.Username}
	}
	return course, nil
}

// GetCourseSlug resolves a course id to its slug.
func (r *CourseRepository) GetCourseSlug(ctx context.Context, id uuid.UUID) (string, error) {
	slug, err := r.client.Course.Query().
		Where(entcourse.ID(id)).
		Select(entcourse.FieldSlug).
		String(ctx)
	if err != nil {
		return "", wrapError("get course slug", err)
	}
	return slug, nil
}

// GetVideo fetches a video with a reference to its course.
func (r *CourseRepository) GetVideo(ctx context.Context, id uuid.UUID) (*core.VideoDetail, error) {
	row, err := r.client.Video.Query().
		Where(entvideo.ID(id)).
		WithCourse().
		Only(ctx)
	if err != nil {
		return nil, wrapError("get video", err)
	}

	detail := &core.VideoDetail{Video: toVideo(row)}
	if parent := row.Edges.Course; parent != nil {
		detail.Course = core.CourseRef{ID: parent.ID, Slug: parent.Slug, Title: parent.Title}
	}
	return detail, nil
}

func (r *CourseRepository) videoCounts(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(courseIDs))
	if len(courseIDs) == 0 {
		return counts, nil
	}

	var grouped []struct {
		CourseID uuid.UUID `json:"course_id"`
		Count    int       `json:"count"`
	}
	err := r.client.Video.Query().
		Where(entvideo.CourseIDIn(courseIDs...)).
		GroupBy(entvideo.FieldCourseID).
		Aggregate(entgenerated.As(entgenerated.Count(), "count")).
		Scan(ctx, &grouped)
	if err != nil {
		return nil, err
	}
	for _, g := range grouped {
		counts[g.CourseID] = g.Count
	}
	return counts, nil
}

// courseStore implements core.CourseTx on a plain or transactional client.
type courseStore struct {
	client *entgenerated.Client
}

func (s *courseStore) SlugExists(ctx context.Context, kind core.SlugKind, slug string, excludeID uuid.UUID) (bool, error) {
	var (
		exists bool
		err    error
	)
	if kind == core.SlugKindVideo {
		q := s.client.Video.Query().Where(entvideo.SlugEQ(slug))
		if excludeID != uuid.Nil {
			q = q.Where(entvideo.IDNEQ(excludeID))
		}
		exists, err = q.Exist(ctx)
	} else {
		q := s.client.Course.Query().Where(entcourse.SlugEQ(slug))
		if excludeID != uuid.Nil {
			q = q.Where(entcourse.IDNEQ(excludeID))
		}
		exists, err = q.Exist(ctx)
	}
	if err != nil {
		return false, wrapError("check slug", err)
	}
	return exists, nil
}

func (s *courseStore) CourseCreator(ctx context.Context, courseID uuid.UUID) (uuid.UUID, error) {
	row, err := s.client.Course.Query().
		Where(entcourse.ID(courseID)).
		Select(entcourse.FieldCreatorID).
		Only(ctx)
	if err != nil {
		return uuid.Nil, wrapError("get course creator", err)
	}
	return row.CreatorID, nil
}

func (s *courseStore) VideoOwnership(ctx context.Context, videoID uuid.UUID) (*core.VideoOwnership, error) {
	row, err := s.client.Video.Query().
		Where(entvideo.ID(videoID)).
		WithCourse(func(q *entgenerated.CourseQuery) {
			q.Select(entcourse.FieldSlug, entcourse.FieldCreatorID)
		}).
		Only(ctx)
	if err != nil {
		return nil, wrapError("get video course", err)
	}
	parent, err := row.Edges.CourseOrErr()
	if err != nil {
		return nil, wrapError("get video course", err)
	}
	return &core.VideoOwnership{
		VideoID:    videoID,
		CourseID:   row.CourseID,
		CourseSlug: parent.Slug,
		CreatorID:  parent.CreatorID,
	}, nil
}

func (s *courseStore) CourseVideoIDs(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.client.Video.Query().
		Where(entvideo.CourseIDEQ(courseID)).
		Order(entvideo.ByPosition()).
		IDs(ctx)
	if err != nil {
		return nil, wrapError("list video ids", err)
	}
	return ids, nil
}

// MaxVideoPosition returns 0 for a course without videos.
func (s *courseStore) MaxVideoPosition(ctx context.Context, courseID uuid.UUID) (int, error) {
	last, err := s.client.Video.Query().
		Where(entvideo.CourseIDEQ(courseID)).
		Order(entvideo.ByPosition(sql.OrderDesc())).
		Select(entvideo.FieldPosition).
		First(ctx)
	switch {
	case entgenerated.IsNotFound(err):
		return 0, nil
	case err != nil:
		return 0, wrapError("max video position", err)
	}
	return last.Position, nil
}

func (s *courseStore) InsertCourse(ctx context.Context, course core.Course) error {
	err := s.client.Course.Create().
		SetID(course.ID).
		SetSlug(course.Slug).
		SetTitle(course.Title).
		SetNillableSummary(course.Summary).
		SetNillableDescription(course.Description).
		SetNillableProvider(course.Provider).
		SetNillableProviderURL(course.ProviderURL).
		SetNillableThumbnailURL(course.ThumbnailURL).
		SetNillableExternalID(course.ExternalID).
		SetCreatorID(course.CreatorID).
		SetCreatedAt(course.CreatedAt).
		SetUpdatedAt(course.UpdatedAt).
		Exec(ctx)
	return wrapError("insert course", uniqueAs(err, core.ErrSlugConflict))
}

func (s *courseStore) UpdateCourse(ctx context.Context, course core.Course) error {
	update := s.client.Course.UpdateOneID(course.ID).
		SetSlug(course.Slug).
		SetTitle(course.Title).
		SetUpdatedAt(course.UpdatedAt)
	setOrClear(course.Summary, update.SetSummary, update.ClearSummary)
	setOrClear(course.Description, update.SetDescription, update.ClearDescription)
	setOrClear(course.Provider, update.SetProvider, update.ClearProvider)
	setOrClear(course.ProviderURL, update.SetProviderURL, update.ClearProviderURL)
	setOrClear(course.ThumbnailURL, update.SetThumbnailURL, update.ClearThumbnailURL)
	setOrClear(course.ExternalID, update.SetExternalID, update.ClearExternalID)

	return wrapError("update course", uniqueAs(update.Exec(ctx), core.ErrSlugConflict))
}

// DeleteCourse removes a course. Its videos go with it through the
// cascading course_id foreign key.
func (s *courseStore) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	return wrapError("delete course", s.client.Course.DeleteOneID(id).Exec(ctx))
}

func (s *courseStore) InsertVideo(ctx context.Context, video core.Video) error {
	err := s.client.Video.Create().
		SetID(video.ID).
		SetCourseID(video.CourseID).
		SetCreatorID(video.CreatorID).
		SetSlug(video.Slug).
		SetTitle(video.Title).
		SetNillableDescription(video.Description).
		SetURL(video.URL).
		SetNillableDurationSeconds(video.DurationSeconds).
		SetNillableProvider(video.Provider).
		SetNillableExternalID(video.ExternalID).
		SetNillableThumbnailURL(video.ThumbnailURL).
		SetPosition(video.Position).
		SetCreatedAt(video.CreatedAt).
		SetUpdatedAt(video.UpdatedAt).
		Exec(ctx)
	return wrapError("insert video", uniqueAs(err, core.ErrSlugConflict))
}

// UpdateVideo rewrites a video's attributes. The update is scoped to the
// video's course so a video is never moved between courses.
func (s *courseStore) UpdateVideo(ctx context.Context, video core.Video) error {
	update := s.client.Video.Update().
		Where(entvideo.ID(video.ID), entvideo.CourseIDEQ(video.CourseID)).
		SetSlug(video.Slug).
		SetTitle(video.Title).
		SetURL(video.URL).
		SetPosition(video.Position).
		SetUpdatedAt(video.UpdatedAt)
	setOrClear(video.Description, update.SetDescription, update.ClearDescription)
	setOrClear(video.DurationSeconds, update.SetDurationSeconds, update.ClearDurationSeconds)
	setOrClear(video.Provider, update.SetProvider, update.ClearProvider)
	setOrClear(video.ExternalID, update.SetExternalID, update.ClearExternalID)
	setOrClear(video.ThumbnailURL, update.SetThumbnailURL, update.ClearThumbnailURL)

	affected, err := update.Save(ctx)
	if err != nil {
		return wrapError("update video", uniqueAs(err, core.ErrSlugConflict))
	}
	if affected == 0 {
		return fmt.Errorf("%w: video %s is not part of course %s", core.ErrInvalidVideoReference, video.ID, video.CourseID)
	}
	return nil
}

// DeleteCourseVideos deletes ids that belong to courseID; other ids are ignored.
func (s *courseStore) DeleteCourseVideos(ctx context.Context, courseID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.client.Video.Delete().
		Where(entvideo.CourseIDEQ(courseID), entvideo.IDIn(ids...)).
		Exec(ctx)
	return wrapError("delete videos", err)
}

func (s *courseStore) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	return wrapError("delete video", s.client.Video.DeleteOneID(id).Exec(ctx))
}

// GetCourse fetches a course with its videos ordered by position.
func (s *courseStore) GetCourse(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	row, err := s.client.Course.Query().
		Where(entcourse.ID(id)).
		WithVideos(orderedVideos).
		Only(ctx)
	if err != nil {
		return nil, wrapError("get course", err)
	}
	return toCourse(row), nil
}

func (s *courseStore) GetVideo(ctx context.Context, id uuid.UUID) (*core.Video, error) {
	row, err := s.client.Video.Get(ctx, id)
	if err != nil {
		return nil, wrapError("get video", err)
	}
	video := toVideo(row)
	return &video, nil
}

func orderedVideos(q *entgenerated.VideoQuery) {
	q.Order(entvideo.ByPosition(), entvideo.ByCreatedAt())
}

// toCourse converts a row into the domain model. Videos are copied only
// when the edge was loaded.
func toCourse(row *entgenerated.Course) *core.Course {
	course := &core.Course{
		ID:           row.ID,
		Slug:         row.Slug,
		Title:        row.Title,
		Summary:      row.Summary,
		Description:  row.Description,
		Provider:     row.Provider,
		ProviderURL:  row.ProviderURL,
		ThumbnailURL: row.ThumbnailURL,
		ExternalID:   row.ExternalID,
		CreatorID:    row.CreatorID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if videos, err := row.Edges.VideosOrErr(); err == nil {
		course.Videos = lo.Map(videos, func(v *entgenerated.Video, _ int) core.Video { return toVideo(v) })
		course.VideoCount = len(course.Videos)
	}
	return course
}

func toVideo(row *entgenerated.Video) core.Video {
	return core.Video{
		ID:              row.ID,
		CourseID:        row.CourseID,
		CreatorID:       row.CreatorID,
		Slug:            row.Slug,
		Title:           row.Title,
		Description:     row.Description,
		URL:             row.URL,
		DurationSeconds: row.DurationSeconds,
		Provider:        row.Provider,
		ExternalID:      row.ExternalID,
		ThumbnailURL:    row.ThumbnailURL,
		Position:        row.Position,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

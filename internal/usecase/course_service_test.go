package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/eslsoft/courseboxd/internal/core"
	"github.com/eslsoft/courseboxd/internal/validation"
)

func TestEnsureUniqueSlug(t *testing.T) {
	ctx := context.Background()
	ownID := uuid.New()

	taken := map[string]uuid.UUID{
		"launch":   uuid.New(),
		"launch-2": uuid.New(),
		"intro":    ownID,
	}
	tx := &stubCourseTx{
		slugExistsFn: func(_ context.Context, kind core.SlugKind, slug string, excludeID uuid.UUID) (bool, error) {
			if kind != core.SlugKindCourse {
				t.Fatalf("unexpected kind %v", kind)
			}
			holder, ok := taken[slug]
			return ok && holder != excludeID, nil
		},
	}

	cases := []struct {
		text      string
		excludeID uuid.UUID
		want      string
	}{
		{text: "Launch", want: "launch-3"},
		{text: "Fresh Start", want: "fresh-start"},
		{text: "Intro", excludeID: ownID, want: "intro"},
		{text: "Intro", want: "intro-2"},
	}
	for _, tc := range cases {
		got, err := ensureUniqueSlug(ctx, tx, tc.text, core.SlugKindCourse, tc.excludeID)
		if err != nil {
			t.Fatalf("ensureUniqueSlug(%q) error = %v", tc.text, err)
		}
		if got != tc.want {
			t.Fatalf("ensureUniqueSlug(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestEnsureUniqueSlug_Exhausted(t *testing.T) {
	checks := 0
	tx := &stubCourseTx{
		slugExistsFn: func(context.Context, core.SlugKind, string, uuid.UUID) (bool, error) {
			checks++
			return true, nil
		},
	}

	_, err := ensureUniqueSlug(context.Background(), tx, "Busy", core.SlugKindVideo, uuid.Nil)
	if !errors.Is(err, core.ErrSlugExhausted) {
		t.Fatalf("expected ErrSlugExhausted, got %v", err)
	}
	if checks != maxSlugAttempts {
		t.Fatalf("expected %d slug checks, got %d", maxSlugAttempts, checks)
	}
}

func TestEnsureUniqueSlug_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	tx := &stubCourseTx{
		slugExistsFn: func(context.Context, core.SlugKind, string, uuid.UUID) (bool, error) {
			return false, boom
		},
	}
	if _, err := ensureUniqueSlug(context.Background(), tx, "Busy", core.SlugKindCourse, uuid.Nil); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestPlanVideoSync(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	plan, err := planVideoSync([]uuid.UUID{a, b, c}, core.CourseUpdate{
		CourseDraft: core.CourseDraft{Videos: []core.VideoDraft{
			{ID: c, Title: "C"},
			{Title: "New", Position: lo.ToPtr(7)},
			{ID: b, Title: "B"},
		}},
		ReplaceVideos: true,
	})
	if err != nil {
		t.Fatalf("planVideoSync() error = %v", err)
	}
	if len(plan.remove) != 1 || plan.remove[0] != a {
		t.Fatalf("expected only %v removed, got %v", a, plan.remove)
	}
	positions := lo.Map(plan.entries, func(e plannedVideo, _ int) int { return e.position })
	if fmt.Sprint(positions) != "[1 7 3]" {
		t.Fatalf("unexpected positions %v", positions)
	}
	existing := lo.Map(plan.entries, func(e plannedVideo, _ int) bool { return e.existing })
	if fmt.Sprint(existing) != "[true false true]" {
		t.Fatalf("unexpected existing flags %v", existing)
	}
}

func TestPlanVideoSync_KeepsUnlistedWithoutReplace(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	plan, err := planVideoSync([]uuid.UUID{a, b}, core.CourseUpdate{RemovedVideoIDs: []uuid.UUID{b}})
	if err != nil {
		t.Fatalf("planVideoSync() error = %v", err)
	}
	if len(plan.remove) != 1 || plan.remove[0] != b {
		t.Fatalf("expected only removed id deleted, got %v", plan.remove)
	}
	if len(plan.entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(plan.entries))
	}
}

func TestPlanVideoSync_RejectsBadReferences(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	cases := []struct {
		name   string
		update core.CourseUpdate
		want   error
	}{
		{
			name:   "unknown id",
			update: core.CourseUpdate{CourseDraft: core.CourseDraft{Videos: []core.VideoDraft{{ID: uuid.New()}}}},
			want:   core.ErrInvalidVideoReference,
		},
		{
			name: "removed and referenced",
			update: core.CourseUpdate{
				CourseDraft:     core.CourseDraft{Videos: []core.VideoDraft{{ID: a}}},
				RemovedVideoIDs: []uuid.UUID{a},
			},
			want: core.ErrInvalidVideoReference,
		},
		{
			name:   "duplicate reference",
			update: core.CourseUpdate{CourseDraft: core.CourseDraft{Videos: []core.VideoDraft{{ID: b}, {ID: b}}}},
			want:   core.ErrValidation,
		},
	}
	for _, tc := range cases {
		if _, err := planVideoSync([]uuid.UUID{a, b}, tc.update); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestCourseService_RetriesSlugConflicts(t *testing.T) {
	attempts := 0
	repo := &stubCourseRepo{
		inTxFn: func(ctx context.Context, fn func(tx core.CourseTx) error) error {
			attempts++
			conflict := attempts < 3
			return fn(&stubCourseTx{
				slugExistsFn: func(context.Context, core.SlugKind, string, uuid.UUID) (bool, error) {
					return false, nil
				},
				insertCourseFn: func(context.Context, core.Course) error {
					if conflict {
						return core.ErrSlugConflict
					}
					return nil
				},
				getCourseFn: func(_ context.Context, id uuid.UUID) (*core.Course, error) {
					return &core.Course{ID: id, Slug: "launch"}, nil
				},
			})
		},
	}

	service := NewCourseService(repo, validation.New(), zerolog.Nop())
	got, err := service.CreateCourse(context.Background(), uuid.New(), core.CourseInput{Title: lo.ToPtr("Launch")})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	if got.Slug != "launch" {
		t.Fatalf("unexpected slug %q", got.Slug)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestCourseService_SlugConflictsExhaust(t *testing.T) {
	attempts := 0
	repo := &stubCourseRepo{
		inTxFn: func(ctx context.Context, fn func(tx core.CourseTx) error) error {
			attempts++
			return core.ErrSlugConflict
		},
	}

	service := NewCourseService(repo, validation.New(), zerolog.Nop())
	_, err := service.CreateCourse(context.Background(), uuid.New(), core.CourseInput{Title: lo.ToPtr("Launch")})
	if !errors.Is(err, core.ErrSlugExhausted) {
		t.Fatalf("expected ErrSlugExhausted, got %v", err)
	}
	if attempts != maxSlugAttempts {
		t.Fatalf("expected %d attempts, got %d", maxSlugAttempts, attempts)
	}
}

func TestCourseService_CreateCourseAssignsPositions(t *testing.T) {
	fixedNow := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	actorID := uuid.New()
	var (
		course core.Course
		videos []core.Video
	)

	repo := &stubCourseRepo{
		inTxFn: func(ctx context.Context, fn func(tx core.CourseTx) error) error {
			return fn(&stubCourseTx{
				slugExistsFn: func(_ context.Context, kind core.SlugKind, slug string, _ uuid.UUID) (bool, error) {
					for _, v := range videos {
						if kind == core.SlugKindVideo && v.Slug == slug {
							return true, nil
						}
					}
					return false, nil
				},
				insertCourseFn: func(_ context.Context, c core.Course) error {
					course = c
					return nil
				},
				insertVideoFn: func(_ context.Context, v core.Video) error {
					videos = append(videos, v)
					return nil
				},
				getCourseFn: func(context.Context, uuid.UUID) (*core.Course, error) {
					out := course
					out.Videos = videos
					return &out, nil
				},
			})
		},
	}

	service := NewCourseService(repo, validation.New(), zerolog.Nop())
	service.WithClock(func() time.Time { return fixedNow })

	_, err := service.CreateCourse(context.Background(), actorID, core.CourseInput{
		Title: lo.ToPtr("Launch"),
		Videos: []core.VideoInput{
			{Title: lo.ToPtr("Intro"), URL: lo.ToPtr("https://videos.example.com/1")},
			{Title: lo.ToPtr("Intro"), URL: lo.ToPtr("https://videos.example.com/2")},
			{Title: lo.ToPtr("Outro"), URL: lo.ToPtr("https://videos.example.com/3"), Position: lo.ToPtr(9.0)},
		},
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}

	if course.CreatorID != actorID || !course.CreatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected course %#v", course)
	}
	if len(videos) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(videos))
	}
	slugs := lo.Map(videos, func(v core.Video, _ int) string { return v.Slug })
	if fmt.Sprint(slugs) != "[intro intro-2 outro]" {
		t.Fatalf("unexpected video slugs %v", slugs)
	}
	positions := lo.Map(videos, func(v core.Video, _ int) int { return v.Position })
	if fmt.Sprint(positions) != "[1 2 9]" {
		t.Fatalf("unexpected positions %v", positions)
	}
	for _, v := range videos {
		if v.CourseID != course.ID || v.CreatorID != actorID {
			t.Fatalf("video %s not owned by course and actor", v.Slug)
		}
	}
}

func TestCourseService_ValidationStopsBeforeStorage(t *testing.T) {
	repo := &stubCourseRepo{
		inTxFn: func(context.Context, func(tx core.CourseTx) error) error {
			return errors.New("should not be called")
		},
	}
	service := NewCourseService(repo, validation.New(), zerolog.Nop())

	_, err := service.CreateCourse(context.Background(), uuid.New(), core.CourseInput{Title: lo.ToPtr("Go")})
	var verr *core.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields["title"] == "" {
		t.Fatalf("expected title error, got %v", verr.Fields)
	}
}

type stubCourseRepo struct {
	core.CourseReader
	inTxFn func(ctx context.Context, fn func(tx core.CourseTx) error) error
}

func (s *stubCourseRepo) InTx(ctx context.Context, fn func(tx core.CourseTx) error) error {
	if s.inTxFn == nil {
		return errors.New("unexpected InTx call")
	}
	return s.inTxFn(ctx, fn)
}

type stubCourseTx struct {
	core.CourseTx
	slugExistsFn   func(ctx context.Context, kind core.SlugKind, slug string, excludeID uuid.UUID) (bool, error)
	insertCourseFn func(ctx context.Context, course core.Course) error
	insertVideoFn  func(ctx context.Context, video core.Video) error
	getCourseFn    func(ctx context.Context, id uuid.UUID) (*core.Course, error)
}

func (s *stubCourseTx) SlugExists(ctx context.Context, kind core.SlugKind, slug string, excludeID uuid.UUID) (bool, error) {
	if s.slugExistsFn == nil {
		return false, errors.New("unexpected SlugExists call")
	}
	return s.slugExistsFn(ctx, kind, slug, excludeID)
}

func (s *stubCourseTx) InsertCourse(ctx context.Context, course core.Course) error {
	if s.insertCourseFn == nil {
		return errors.New("unexpected InsertCourse call")
	}
	return s.insertCourseFn(ctx, course)
}

func (s *stubCourseTx) InsertVideo(ctx context.Context, video core.Video) error {
	if s.insertVideoFn == nil {
		return errors.New("unexpected InsertVideo call")
	}
	return s.insertVideoFn(ctx, video)
}

func (s *stubCourseTx) GetCourse(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	if s.getCourseFn == nil {
		return nil, errors.New("unexpected GetCourse call")
	}
	return s.getCourseFn(ctx, id)
}

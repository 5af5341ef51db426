package usecase_test

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/eslsoft/courseboxd/internal/adapter/auth"
	"github.com/eslsoft/courseboxd/internal/adapter/db"
	entgenerated "github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated"
	"github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated/enttest"
	"github.com/eslsoft/courseboxd/internal/core"
	"github.com/eslsoft/courseboxd/internal/usecase"
	"github.com/eslsoft/courseboxd/internal/validation"
)

type catalog struct {
	courses  *usecase.CourseService
	accounts *usecase.AccountService
	repo     *db.CourseRepository
}

func newCatalog(t *testing.T) *catalog {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_"))
	sqlDB, err := stdsql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed opening sqlite driver: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	driver := entsql.OpenDB(dialect.SQLite, sqlDB)
	client := enttest.NewClient(t, enttest.WithOptions(entgenerated.Driver(driver)))
	t.Cleanup(func() { _ = client.Close() })

	tokens, err := auth.NewTokenManager("integration-secret", "courseboxd-test", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	v := validation.New()
	repo := db.NewCourseRepository(client)
	return &catalog{
		courses:  usecase.NewCourseService(repo, v, zerolog.Nop()),
		accounts: usecase.NewAccountService(db.NewUserRepository(client), v, auth.NewBcryptHasher(bcrypt.MinCost), tokens, zerolog.Nop()),
		repo:     repo,
	}
}

func (c *catalog) register(t *testing.T, username string) core.User {
	t.Helper()
	session, err := c.accounts.Register(context.Background(), core.RegistrationInput{
		Email:           username + "@example.com",
		Username:        username,
		Password:        "correct horse",
		ConfirmPassword: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register(%s) error = %v", username, err)
	}
	return session.User
}

func videoInput(title string) core.VideoInput {
	return core.VideoInput{
		Title: lo.ToPtr(title),
		URL:   lo.ToPtr("https://videos.example.com/" + strings.ToLower(strings.ReplaceAll(title, " ", "-"))),
	}
}

func videoSlugs(videos []core.Video) []string {
	return lo.Map(videos, func(v core.Video, _ int) string { return v.Slug })
}

func videoPositions(videos []core.Video) []int {
	return lo.Map(videos, func(v core.Video, _ int) int { return v.Position })
}

func TestCatalog_CreateCourseSuffixesSlugs(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	owner := c.register(t, "ada")

	first, err := c.courses.CreateCourse(ctx, owner.ID, core.CourseInput{
		Title:  lo.ToPtr("Launch"),
		Videos: []core.VideoInput{videoInput("Part One"), videoInput("Part Two")},
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	if first.Slug != "launch" {
		t.Fatalf("expected slug launch, got %q", first.Slug)
	}
	if fmt.Sprint(videoSlugs(first.Videos)) != "[part-one part-two]" {
		t.Fatalf("unexpected video slugs %v", videoSlugs(first.Videos))
	}
	if fmt.Sprint(videoPositions(first.Videos)) != "[1 2]" {
		t.Fatalf("unexpected positions %v", videoPositions(first.Videos))
	}

	second, err := c.courses.CreateCourse(ctx, owner.ID, core.CourseInput{
		Title:  lo.ToPtr("  Launch "),
		Videos: []core.VideoInput{videoInput("Part One")},
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	if second.Slug != "launch-2" {
		t.Fatalf("expected slug launch-2, got %q", second.Slug)
	}
	if second.Title != "Launch" {
		t.Fatalf("expected trimmed title, got %q", second.Title)
	}
	if fmt.Sprint(videoSlugs(second.Videos)) != "[part-one-2]" {
		t.Fatalf("unexpected video slugs %v", videoSlugs(second.Videos))
	}
}

func TestCatalog_CreateCourseRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	owner := c.register(t, "ada")

	intro := videoInput("Welcome")
	intro.DurationSeconds = lo.ToPtr(90.0)
	intro.Description = lo.ToPtr("  ")
	created, err := c.courses.CreateCourse(ctx, owner.ID, core.CourseInput{
		Title:        lo.ToPtr("Rust for Gophers"),
		Summary:      lo.ToPtr("Ownership without tears"),
		Provider:     lo.ToPtr("YouTube"),
		ProviderURL:  lo.ToPtr("https://youtube.com/playlist?list=abc"),
		ThumbnailURL: lo.ToPtr(""),
		Videos:       []core.VideoInput{intro},
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}

	got, err := c.courses.GetCourseBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("GetCourseBySlug() error = %v", err)
	}
	if got.ID != created.ID || got.Title != "Rust for Gophers" || got.CreatorID != owner.ID {
		t.Fatalf("unexpected course %#v", got)
	}
	if lo.FromPtr(got.Summary) != "Ownership without tears" || lo.FromPtr(got.Provider) != "YouTube" {
		t.Fatalf("unexpected optional fields %#v", got)
	}
	if got.ThumbnailURL != nil {
		t.Fatalf("expected blank thumbnail stored as nil, got %q", *got.ThumbnailURL)
	}
	if got.Creator == nil || got.Creator.Username != "ada" {
		t.Fatalf("expected creator projection, got %#v", got.Creator)
	}
	if len(got.Videos) != 1 {
		t.Fatalf("expected 1 video, got %d", len(got.Videos))
	}
	video := got.Videos[0]
	if lo.FromPtr(video.DurationSeconds) != 90 || video.Description != nil || video.CreatorID != owner.ID {
		t.Fatalf("unexpected video %#v", video)
	}

	slug, err := c.courses.GetCourseSlug(ctx, created.ID)
	if err != nil || slug != created.Slug {
		t.Fatalf("GetCourseSlug() = %q, %v", slug, err)
	}

	detail, err := c.courses.GetVideo(ctx, video.ID)
	if err != nil {
		t.Fatalf("GetVideo() error = %v", err)
	}
	if detail.Course.Slug != created.Slug || detail.Video.Slug != video.Slug {
		t.Fatalf("unexpected video detail %#v", detail)
	}
}

func TestCatalog_UpdateCourseReconcilesVideos(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	owner := c.register(t, "ada")

	created, err := c.courses.CreateCourse(ctx, owner.ID, core.CourseInput{
		Title:  lo.ToPtr("Launch"),
		Videos: []core.VideoInput{videoInput("Part One"), videoInput("Part Two")},
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	p1, p2 := created.Videos[0], created.Videos[1]

	keep := videoInput("Part Two")
	keep.ID = lo.ToPtr(p2.ID.String())
	updated, err := c.courses.UpdateCourse(ctx, created.ID, owner.ID, core.CourseUpdateInput{
		CourseInput: core.CourseInput{
			Title:  lo.ToPtr("Launch"),
			Videos: []core.VideoInput{keep, videoInput("Part Three")},
		},
		RemovedVideoIDs: []string{p1.ID.String()},
	})
	if err != nil {
		t.Fatalf("UpdateCourse() error = %v", err)
	}

	if updated.Slug != "launch" {
		t.Fatalf("expected slug to stay launch, got %q", updated.Slug)
	}
	if fmt.Sprint(videoSlugs(updated.Videos)) != "[part-two part-three]" {
		t.Fatalf("unexpected video slugs %v", videoSlugs(updated.Videos))
	}
	if fmt.Sprint(videoPositions(updated.Videos)) != "[1 2]" {
		t.Fatalf("unexpected positions %v", videoPositions(updated.Videos))
	}
	if updated.Videos[0].ID != p2.ID {
		t.Fatalf("expected P2 to keep its id")
	}
	if _, err := c.courses.GetVideo(ctx, p1.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected removed video to be gone, got %v", err)
	}
}

func TestCatalog_UpdateCourseIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	owner := c.register(t, "ada")

	created, err := c.courses.CreateCourse(ctx, owner.ID, core.CourseInput{
		Title:  lo.ToPtr("Launch"),
		Videos: []core.VideoInput{videoInput("Part One"), videoInput("Part Two")},
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}

	input := core.CourseUpdateInput{CourseInput: core.CourseInput{
		Title: lo.ToPtr("Launch"),
		Videos: lo.Map(created.Videos, func(v core.Video, _ int) core.VideoInput {
			in := videoInput(v.Title)
			in.ID = lo.ToPtr(v.ID.String())
			return in
		}),
	}}

	for i := 0; i < 2; i++ {
		updated, err := c.courses.UpdateCourse(ctx, created.ID, owner.ID, input)
		if err != nil {
			t.Fatalf("UpdateCourse() #%d error = %v", i+1, err)
		}
		if updated.Slug != created.Slug {
			t.Fatalf("update #%d changed slug to %q", i+1, updated.Slug)
		}
		if fmt.Sprint(videoSlugs(updated.Videos)) != fmt.Sprint(videoSlugs(created.Videos)) {
			t.Fatalf("update #%d changed video slugs to %v", i+1, videoSlugs(updated.Videos))
		}
		if fmt.Sprint(videoPositions(updated.Videos)) != "[1 2]" {
			t.Fatalf("update #%d changed positions to %v", i+1, videoPositions(updated.Videos))
		}
	}
}

func TestCatalog_UpdateCourseWithoutVideosKeepsThem(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	owner := c.register(t, "ada")

	created, err := c.courses.CreateCourse(ctx, owner.ID, core.CourseInput{
		Title:  lo.ToPtr("Launch"),
		Videos: []core.VideoInput{videoInput("Part One")},
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}

	updated, err := c.courses.UpdateCourse(ctx, created.ID, owner.ID, core.CourseUpdateInput{
		CourseInput: core.CourseInput{Title: lo.ToPtr("Liftoff")},
	})
	if err != nil {
		t.Fatalf("UpdateCourse() error = %v", err)
	}
	if updated.Slug != "liftoff" {
		t.Fatalf("expected renamed slug liftoff, got %q", updated.Slug)
	}
	if len(updated.Videos) != 1 || updated.Videos[0].ID != created.Videos[0].ID {
		t.Fatalf("expected videos untouched, got %v", videoSlugs(updated.Videos))
	}
}

func TestCatalog_UpdateCourseByNonOwnerIsForbidden(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	owner := c.register(t, "ada")
	other := c.register(t, "grace")

	created, err := c.courses.CreateCourse(ctx, owner.ID, core.CourseInput{Title: lo.ToPtr("Launch")})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}

	_, err = c.courses.UpdateCourse(ctx, created.ID, other.ID, core.CourseUpdateInput{
		CourseInput: core.CourseInput{Title: lo.ToPtr("Hijacked")},
	})
	if !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := c.courses.DeleteCourse(ctx, created.ID, other.ID); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on delete, got %v", err)
	}
	if _, err := c.courses.CreateVideo(ctx, created.ID, other.ID, videoInput("Intruder")); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on create video, got %v", err)
	}

	got, err := c.courses.GetCourseBySlug(ctx, "launch")
	if err != nil {
		t.Fatalf("GetCourseBySlug() error = %v", err)
	}
	if got.Title != "Launch" || len(got.Videos) != 0 {
		t.Fatalf("course changed by non-owner: %#v", got)
	}

	if _, err := c.courses.UpdateCourse(ctx, uuid.New(), owner.ID, core.CourseUpdateInput{
		CourseInput: core.CourseInput{Title: lo.ToPtr("Ghost")},
	}); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalog_InvalidVideoTitleIsReportedByPath(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	owner := c.register(t, "ada")

	_, err := c.courses.CreateCourse(ctx, owner.ID, core.CourseInput{
		Title:  lo.ToPtr("Launch"),
		Videos: []core.VideoInput{videoInput("ab")},
	})
	var verr *core.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["videos[0].title"]; !ok {
		t.Fatalf("expected videos[0].title error, got %v", verr.Fields)
	}

	courses, err := c.courses.ListCourses(ctx, core.CourseListFilter{})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if len(courses) != 0 {
		t.Fatalf("expected nothing persisted, got %d courses", len(courses))
	}
}

func TestCatalog_ForeignVideoReferenceRollsBack(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	owner := c.register(t, "ada")

	mine, err := c.courses.CreateCourse(ctx, owner.ID, core.CourseInput{
		Title:  lo.ToPtr("Launch"),
		Videos: []core.VideoInput{videoInput("Part One")},
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	other, err := c.courses.CreateCourse(ctx, owner.ID, core.CourseInput{
		Title:  lo.ToPtr("Orbit"),
		Videos: []core.VideoInput{videoInput("Elsewhere")},
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}

	stolen := videoInput("Elsewhere")
	stolen.ID = lo.ToPtr(other.Videos[0].ID.String())
	_, err = c.courses.UpdateCourse(ctx, mine.ID, owner.ID, core.CourseUpdateInput{
		CourseInput: core.CourseInput{
			Title:  lo.ToPtr("Renamed Launch"),
			Videos: []core.VideoInput{videoInput("Brand New"), stolen},
		},
	})
	if !errors.Is(err, core.ErrInvalidVideoReference) {
		t.Fatalf("expected ErrInvalidVideoReference, got %v", err)
	}

	got, err := c.courses.GetCourseBySlug(ctx, "launch")
	if err != nil {
		t.Fatalf("expected original slug to survive, got %v", err)
	}
	if got.Title != "Launch" || fmt.Sprint(videoSlugs(got.Videos)) != "[part-one]" {
		t.Fatalf("update was not rolled back: %#v", got)
	}
	detail, err := c.courses.GetVideo(ctx, other.Videos[0].ID)
	if err != nil || detail.Course.ID != other.ID {
		t.Fatalf("foreign video moved: %#v, %v", detail, err)
	}
}

func TestCatalog_SlugSpaceExhausts(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	owner := c.register(t, "ada")

	for i := 1; i <= 50; i++ {
		created, err := c.courses.CreateCourse(ctx, owner.ID, core.CourseInput{Title: lo.ToPtr("Dup")})
		if err != nil {
			t.Fatalf("CreateCourse() #%d error = %v", i, err)
		}
		want := core.SlugCandidate("dup", i)
		if created.Slug != want {
			t.Fatalf("CreateCourse() #%d slug = %q, want %q", i, created.Slug, want)
		}
	}

	if _, err := c.courses.CreateCourse(ctx, owner.ID, core.CourseInput{Title: lo.ToPtr("Dup")}); !errors.Is(err, core.ErrSlugExhausted) {
		t.Fatalf("expected ErrSlugExhausted, got %v", err)
	}
}

func TestCatalog_VideoOperations(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	owner := c.register(t, "ada")
	other := c.register(t, "grace")

	course, err := c.courses.CreateCourse(ctx, owner.ID, core.CourseInput{
		Title:  lo.ToPtr("Launch"),
		Videos: []core.VideoInput{videoInput("Part One")},
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}

	appended, err := c.courses.CreateVideo(ctx, course.ID, owner.ID, videoInput("Part Two"))
	if err != nil {
		t.Fatalf("CreateVideo() error = %v", err)
	}
	if appended.Position != 2 || appended.Slug != "part-two" || appended.CourseID != course.ID {
		t.Fatalf("unexpected appended video %#v", appended)
	}

	edit := videoInput("Part Two Revised")
	updated, err := c.courses.UpdateVideo(ctx, appended.ID, owner.ID, edit)
	if err != nil {
		t.Fatalf("UpdateVideo() error = %v", err)
	}
	if updated.Position != 2 || updated.Slug != "part-two-revised" {
		t.Fatalf("unexpected updated video %#v", updated)
	}

	if _, err := c.courses.UpdateVideo(ctx, appended.ID, other.ID, edit); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := c.courses.DeleteVideo(ctx, appended.ID, other.ID); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	videos, err := c.courses.ListCourseVideos(ctx, "launch")
	if err != nil {
		t.Fatalf("ListCourseVideos() error = %v", err)
	}
	if fmt.Sprint(videoSlugs(videos)) != "[part-one part-two-revised]" {
		t.Fatalf("unexpected videos %v", videoSlugs(videos))
	}

	deleted, err := c.courses.DeleteVideo(ctx, appended.ID, owner.ID)
	if err != nil {
		t.Fatalf("DeleteVideo() error = %v", err)
	}
	if deleted.CourseSlug != "launch" || deleted.CourseID != course.ID {
		t.Fatalf("unexpected deleted video %#v", deleted)
	}
	if _, err := c.courses.DeleteVideo(ctx, appended.ID, owner.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := c.courses.DeleteCourse(ctx, course.ID, owner.ID); err != nil {
		t.Fatalf("DeleteCourse() error = %v", err)
	}
	if _, err := c.courses.GetCourseBySlug(ctx, "launch"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalog_ListCourses(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	ada := c.register(t, "ada")
	grace := c.register(t, "grace")

	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	c.courses.WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	})

	create := func(actor uuid.UUID, title, provider string, videos int) {
		in := core.CourseInput{Title: lo.ToPtr(title), Provider: lo.ToPtr(provider)}
		for i := 0; i < videos; i++ {
			in.Videos = append(in.Videos, videoInput(fmt.Sprintf("%s %d", title, i+1)))
		}
		if _, err := c.courses.CreateCourse(ctx, actor, in); err != nil {
			t.Fatalf("CreateCourse(%s) error = %v", title, err)
		}
	}
	create(ada.ID, "Go Basics", "YouTube", 2)
	create(grace.ID, "Compilers", "Vimeo", 0)
	create(ada.ID, "Advanced Go", "YouTube", 1)

	all, err := c.courses.ListCourses(ctx, core.CourseListFilter{})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	titles := lo.Map(all, func(c core.Course, _ int) string { return c.Title })
	if fmt.Sprint(titles) != "[Advanced Go Compilers Go Basics]" {
		t.Fatalf("expected newest first, got %v", titles)
	}
	counts := lo.Map(all, func(c core.Course, _ int) int { return c.VideoCount })
	if fmt.Sprint(counts) != "[1 0 2]" {
		t.Fatalf("unexpected video counts %v", counts)
	}

	search, err := c.courses.ListCourses(ctx, core.CourseListFilter{Search: "  go "})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if len(search) != 2 {
		t.Fatalf("expected 2 search results, got %d", len(search))
	}

	byCreator, err := c.courses.ListCourses(ctx, core.CourseListFilter{CreatorID: grace.ID})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if len(byCreator) != 1 || byCreator[0].Title != "Compilers" {
		t.Fatalf("unexpected creator filter result %v", byCreator)
	}

	byProvider, err := c.courses.ListCourses(ctx, core.CourseListFilter{Provider: "YouTube"})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if len(byProvider) != 2 {
		t.Fatalf("expected 2 provider results, got %d", len(byProvider))
	}
}

package db

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
	"github.com/samber/lo"
	_ "modernc.org/sqlite"

	entgenerated "github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated"
	"github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated/enttest"
	entvideo "github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated/video"
	"github.com/eslsoft/courseboxd/internal/core"
)

func TestCourseRepository_InsertAndGetCourse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupTestClient(t)
	repo := NewCourseRepository(client)
	user := createUserForTest(t, ctx, client, "ada")

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	course := courseForTest(user.ID, "intro-to-go", now)
	course.Summary = lo.ToPtr("Basics")

	second := videoForTest(course, "second", 2, now)
	second.DurationSeconds = lo.ToPtr(120)
	first := videoForTest(course, "first", 1, now)

	err := repo.InTx(ctx, func(tx core.CourseTx) error {
		if err := tx.InsertCourse(ctx, course); err != nil {
			return err
		}
		if err := tx.InsertVideo(ctx, second); err != nil {
			return err
		}
		return tx.InsertVideo(ctx, first)
	})
	if err != nil {
		t.Fatalf("InTx() error = %v", err)
	}

	got, err := repo.GetCourseBySlug(ctx, "intro-to-go")
	if err != nil {
		t.Fatalf("GetCourseBySlug() error = %v", err)
	}
	if got.ID != course.ID || got.Title != course.Title {
		t.Fatalf("unexpected course %#v", got)
	}
	if lo.FromPtr(got.Summary) != "Basics" || got.Description != nil {
		t.Fatalf("unexpected optional fields summary=%v description=%v", got.Summary, got.Description)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("expected CreatedAt %v, got %v", now, got.CreatedAt)
	}
	if len(got.Videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(got.Videos))
	}
	if got.Videos[0].Slug != "first" || got.Videos[1].Slug != "second" {
		t.Fatalf("expected videos ordered by position, got %s, %s", got.Videos[0].Slug, got.Videos[1].Slug)
	}
	if lo.FromPtr(got.Videos[1].DurationSeconds) != 120 || got.Videos[0].DurationSeconds != nil {
		t.Fatalf("unexpected durations %v %v", got.Videos[0].DurationSeconds, got.Videos[1].DurationSeconds)
	}
	if got.Creator == nil || got.Creator.Username != "ada" {
		t.Fatalf("expected creator projection, got %#v", got.Creator)
	}

	slug, err := repo.GetCourseSlug(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetCourseSlug() error = %v", err)
	}
	if slug != "intro-to-go" {
		t.Fatalf("unexpected slug %q", slug)
	}

	detail, err := repo.GetVideo(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetVideo() error = %v", err)
	}
	if detail.Course.Slug != "intro-to-go" || detail.Course.ID != course.ID {
		t.Fatalf("unexpected video course %#v", detail.Course)
	}

	if _, err := repo.GetCourseBySlug(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetVideo(ctx, uuid.New()); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCourseRepository_SlugExists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupTestClient(t)
	repo := NewCourseRepository(client)
	user := createUserForTest(t, ctx, client, "ada")
	course := insertCourseForTest(t, ctx, repo, courseForTest(user.ID, "launch", time.Now().UTC()))

	cases := []struct {
		name      string
		kind      core.SlugKind
		slug      string
		excludeID uuid.UUID
		want      bool
	}{
		{name: "taken", kind: core.SlugKindCourse, slug: "launch", want: true},
		{name: "own row excluded", kind: core.SlugKindCourse, slug: "launch", excludeID: course.ID, want: false},
		{name: "other row not excluded", kind: core.SlugKindCourse, slug: "launch", excludeID: uuid.New(), want: true},
		{name: "free", kind: core.SlugKindCourse, slug: "launch-2", want: false},
		{name: "separate namespace", kind: core.SlugKindVideo, slug: "launch", want: false},
	}

	for _, tc := range cases {
		err := repo.InTx(ctx, func(tx core.CourseTx) error {
			got, err := tx.SlugExists(ctx, tc.kind, tc.slug, tc.excludeID)
			if err != nil {
				return err
			}
			if got != tc.want {
				t.Fatalf("%s: SlugExists() = %v, want %v", tc.name, got, tc.want)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("%s: InTx() error = %v", tc.name, err)
		}
	}
}

func TestCourseRepository_UniqueSlugConflict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupTestClient(t)
	repo := NewCourseRepository(client)
	user := createUserForTest(t, ctx, client, "ada")
	insertCourseForTest(t, ctx, repo, courseForTest(user.ID, "launch", time.Now().UTC()))

	err := repo.InTx(ctx, func(tx core.CourseTx) error {
		return tx.InsertCourse(ctx, courseForTest(user.ID, "launch", time.Now().UTC()))
	})
	if !errors.Is(err, core.ErrSlugConflict) {
		t.Fatalf("expected ErrSlugConflict, got %v", err)
	}
}

func TestCourseRepository_RollbackOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupTestClient(t)
	repo := NewCourseRepository(client)
	user := createUserForTest(t, ctx, client, "ada")

	boom := errors.New("boom")
	err := repo.InTx(ctx, func(tx core.CourseTx) error {
		if err := tx.InsertCourse(ctx, courseForTest(user.ID, "rolled-back", time.Now().UTC())); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := repo.GetCourseBySlug(ctx, "rolled-back"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected rolled back course to be absent, got %v", err)
	}
}

func TestCourseRepository_ListCourses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupTestClient(t)
	repo := NewCourseRepository(client)
	ada := createUserForTest(t, ctx, client, "ada")
	bob := createUserForTest(t, ctx, client, "bob")

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	golang := courseForTest(ada.ID, "learning-go", base)
	golang.Title = "Learning Go"
	golang.Provider = lo.ToPtr("youtube")
	rust := courseForTest(bob.ID, "rust-basics", base.Add(time.Hour))
	rust.Title = "Rust basics"
	rust.Summary = lo.ToPtr("A GOod start")
	cooking := courseForTest(bob.ID, "cooking", base.Add(2*time.Hour))
	cooking.Title = "Cooking"
	cooking.Provider = lo.ToPtr("vimeo")

	insertCourseForTest(t, ctx, repo, golang, videoForTest(golang, "go-1", 1, base), videoForTest(golang, "go-2", 2, base))
	insertCourseForTest(t, ctx, repo, rust)
	insertCourseForTest(t, ctx, repo, cooking, videoForTest(cooking, "cook-1", 1, base))

	all, err := repo.ListCourses(ctx, core.CourseListFilter{})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	slugs := lo.Map(all, func(c core.Course, _ int) string { return c.Slug })
	if strings.Join(slugs, ",") != "cooking,rust-basics,learning-go" {
		t.Fatalf("expected newest first, got %v", slugs)
	}
	counts := lo.Map(all, func(c core.Course, _ int) int { return c.VideoCount })
	if fmt.Sprint(counts) != "[1 0 2]" {
		t.Fatalf("unexpected video counts %v", counts)
	}

	cases := []struct {
		name   string
		filter core.CourseListFilter
		want   string
	}{
		{name: "search is case-insensitive across fields", filter: core.CourseListFilter{Search: "go"}, want: "rust-basics,learning-go"},
		{name: "creator", filter: core.CourseListFilter{CreatorID: bob.ID}, want: "cooking,rust-basics"},
		{name: "provider", filter: core.CourseListFilter{Provider: "vimeo"}, want: "cooking"},
		{name: "combined", filter: core.CourseListFilter{Search: "go", CreatorID: ada.ID}, want: "learning-go"},
		{name: "no match", filter: core.CourseListFilter{Search: "haskell"}, want: ""},
	}
	for _, tc := range cases {
		got, err := repo.ListCourses(ctx, tc.filter)
		if err != nil {
			t.Fatalf("%s: ListCourses() error = %v", tc.name, err)
		}
		gotSlugs := strings.Join(lo.Map(got, func(c core.Course, _ int) string { return c.Slug }), ",")
		if gotSlugs != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, gotSlugs, tc.want)
		}
	}
}

func TestCourseRepository_ScopedVideoMutations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupTestClient(t)
	repo := NewCourseRepository(client)
	user := createUserForTest(t, ctx, client, "ada")
	now := time.Now().UTC()

	mine := courseForTest(user.ID, "mine", now)
	other := courseForTest(user.ID, "other", now)
	mineVideo := videoForTest(mine, "mine-1", 1, now)
	otherVideo := videoForTest(other, "other-1", 1, now)
	insertCourseForTest(t, ctx, repo, mine, mineVideo)
	insertCourseForTest(t, ctx, repo, other, otherVideo)

	err := repo.InTx(ctx, func(tx core.CourseTx) error {
		return tx.DeleteCourseVideos(ctx, mine.ID, []uuid.UUID{otherVideo.ID})
	})
	if err != nil {
		t.Fatalf("DeleteCourseVideos() error = %v", err)
	}
	if got, _ := repo.GetCourseBySlug(ctx, "other"); len(got.Videos) != 1 {
		t.Fatalf("expected video of other course to survive, got %d videos", len(got.Videos))
	}

	moved := otherVideo
	moved.CourseID = mine.ID
	moved.Title = "hijacked"
	err = repo.InTx(ctx, func(tx core.CourseTx) error {
		return tx.UpdateVideo(ctx, moved)
	})
	if !errors.Is(err, core.ErrInvalidVideoReference) {
		t.Fatalf("expected ErrInvalidVideoReference, got %v", err)
	}

	err = repo.InTx(ctx, func(tx core.CourseTx) error {
		ids, err := tx.CourseVideoIDs(ctx, mine.ID)
		if err != nil {
			return err
		}
		if len(ids) != 1 || ids[0] != mineVideo.ID {
			t.Fatalf("unexpected video ids %v", ids)
		}
		maxPosition, err := tx.MaxVideoPosition(ctx, mine.ID)
		if err != nil {
			return err
		}
		if maxPosition != 1 {
			t.Fatalf("expected max position 1, got %d", maxPosition)
		}
		empty, err := tx.MaxVideoPosition(ctx, uuid.New())
		if err != nil {
			return err
		}
		if empty != 0 {
			t.Fatalf("expected max position 0 for empty course, got %d", empty)
		}
		ownership, err := tx.VideoOwnership(ctx, mineVideo.ID)
		if err != nil {
			return err
		}
		if ownership.CourseSlug != "mine" || ownership.CreatorID != user.ID {
			t.Fatalf("unexpected ownership %#v", ownership)
		}
		return tx.DeleteCourse(ctx, mine.ID)
	})
	if err != nil {
		t.Fatalf("InTx() error = %v", err)
	}

	if _, err := repo.GetVideo(ctx, mineVideo.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected course videos deleted with course, got %v", err)
	}
}

func TestCourseRepository_UpdateCourse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupTestClient(t)
	repo := NewCourseRepository(client)
	user := createUserForTest(t, ctx, client, "ada")

	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	course := courseForTest(user.ID, "draft", now)
	course.Summary = lo.ToPtr("Old summary")
	course.Provider = lo.ToPtr("youtube")
	insertCourseForTest(t, ctx, repo, course)
	insertCourseForTest(t, ctx, repo, courseForTest(user.ID, "taken", now))

	course.Slug = "published"
	course.Title = "Published"
	course.Summary = nil
	course.Description = lo.ToPtr("Now with a description")
	course.UpdatedAt = now.Add(time.Hour)
	err := repo.InTx(ctx, func(tx core.CourseTx) error {
		return tx.UpdateCourse(ctx, course)
	})
	if err != nil {
		t.Fatalf("UpdateCourse() error = %v", err)
	}

	got, err := repo.GetCourseBySlug(ctx, "published")
	if err != nil {
		t.Fatalf("GetCourseBySlug() error = %v", err)
	}
	if got.Summary != nil || lo.FromPtr(got.Description) != "Now with a description" {
		t.Fatalf("unexpected optional fields summary=%v description=%v", got.Summary, got.Description)
	}
	if lo.FromPtr(got.Provider) != "youtube" || !got.UpdatedAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected course %#v", got)
	}

	course.Slug = "taken"
	err = repo.InTx(ctx, func(tx core.CourseTx) error {
		return tx.UpdateCourse(ctx, course)
	})
	if !errors.Is(err, core.ErrSlugConflict) {
		t.Fatalf("expected ErrSlugConflict, got %v", err)
	}

	missing := courseForTest(user.ID, "missing", now)
	err = repo.InTx(ctx, func(tx core.CourseTx) error {
		return tx.UpdateCourse(ctx, missing)
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCourseRepository_DeleteCourseCascadesVideos(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupTestClient(t)
	repo := NewCourseRepository(client)
	user := createUserForTest(t, ctx, client, "ada")
	now := time.Now().UTC()

	doomed := courseForTest(user.ID, "doomed", now)
	kept := courseForTest(user.ID, "kept", now)
	insertCourseForTest(t, ctx, repo, doomed, videoForTest(doomed, "doomed-1", 1, now), videoForTest(doomed, "doomed-2", 2, now))
	insertCourseForTest(t, ctx, repo, kept, videoForTest(kept, "kept-1", 1, now))

	err := repo.InTx(ctx, func(tx core.CourseTx) error {
		return tx.DeleteCourse(ctx, doomed.ID)
	})
	if err != nil {
		t.Fatalf("DeleteCourse() error = %v", err)
	}

	orphans, err := client.Video.Query().Where(entvideo.CourseIDEQ(doomed.ID)).Count(ctx)
	if err != nil {
		t.Fatalf("count videos: %v", err)
	}
	if orphans != 0 {
		t.Fatalf("expected videos of deleted course to cascade, %d left", orphans)
	}
	remaining, err := client.Video.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count videos: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("expected 1 video left, got %d", remaining)
	}

	err = repo.InTx(ctx, func(tx core.CourseTx) error {
		return tx.DeleteCourse(ctx, doomed.ID)
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	err = repo.InTx(ctx, func(tx core.CourseTx) error {
		return tx.DeleteVideo(ctx, uuid.New())
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing video, got %v", err)
	}
}

func setupTestClient(t *testing.T) *entgenerated.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := stdsql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed opening sqlite driver: %v", err)
	}
	db.SetMaxOpenConns(1)
	driver := entsql.OpenDB(dialect.SQLite, db)
	client := enttest.NewClient(t, enttest.WithOptions(entgenerated.Driver(driver)))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func createUserForTest(t *testing.T, ctx context.Context, client *entgenerated.Client, username string) core.User {
	t.Helper()
	now := time.Now().UTC()
	user := core.User{
		ID:                uuid.New(),
		Email:             username + "@example.com",
		Username:          username,
		Name:              lo.ToPtr(strings.ToUpper(username[:1]) + username[1:]),
		DefaultVisibility: core.VisibilityPublic,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := NewUserRepository(client).CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	return user
}

func courseForTest(creatorID uuid.UUID, slug string, now time.Time) core.Course {
	return core.Course{
		ID:        uuid.New(),
		Slug:      slug,
		Title:     strings.ReplaceAll(slug, "-", " "),
		CreatorID: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func videoForTest(course core.Course, slug string, position int, now time.Time) core.Video {
	return core.Video{
		ID:        uuid.New(),
		CourseID:  course.ID,
		CreatorID: course.CreatorID,
		Slug:      slug,
		Title:     slug,
		URL:       "https://videos.example.com/" + slug,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func insertCourseForTest(t *testing.T, ctx context.Context, repo *CourseRepository, course core.Course, videos ...core.Video) core.Course {
	t.Helper()
	err := repo.InTx(ctx, func(tx core.CourseTx) error {
		if err := tx.InsertCourse(ctx, course); err != nil {
			return err
		}
		for _, video := range videos {
			if err := tx.InsertVideo(ctx, video); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("insert course %s: %v", course.Slug, err)
	}
	return course
}

package transport

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/eslsoft/courseboxd/internal/core"
)

// CourseServiceName is the fully-qualified name of the course service.
const CourseServiceName = "courseboxd.v1.CourseService"

const (
	CourseServiceListCoursesProcedure      = "/" + CourseServiceName + "/ListCourses"
	CourseServiceGetCourseProcedure        = "/" + CourseServiceName + "/GetCourse"
	CourseServiceListCourseVideosProcedure = "/" + CourseServiceName + "/ListCourseVideos"
	CourseServiceGetVideoProcedure         = "/" + CourseServiceName + "/GetVideo"
	CourseServiceCreateCourseProcedure     = "/" + CourseServiceName + "/CreateCourse"
	CourseServiceUpdateCourseProcedure     = "/" + CourseServiceName + "/UpdateCourse"
	CourseServiceDeleteCourseProcedure     = "/" + CourseServiceName + "/DeleteCourse"
	CourseServiceCreateVideoProcedure      = "/" + CourseServiceName + "/CreateVideo"
	CourseServiceUpdateVideoProcedure      = "/" + CourseServiceName + "/UpdateVideo"
	CourseServiceDeleteVideoProcedure      = "/" + CourseServiceName + "/DeleteVideo"
)

// CourseHandler serves catalog browsing and authoring over Connect.
type CourseHandler struct {
	service core.CourseService
}

// NewCourseHandler constructs a course handler backed by the provided service.
func NewCourseHandler(service core.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// NewCourseServiceHandler builds an HTTP handler for every course procedure
// and returns the path it should be mounted on.
func NewCourseServiceHandler(h *CourseHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	routes := map[string]http.Handler{
		CourseServiceListCoursesProcedure:      connect.NewUnaryHandler(CourseServiceListCoursesProcedure, h.ListCourses, readOptions(opts)...),
		CourseServiceGetCourseProcedure:        connect.NewUnaryHandler(CourseServiceGetCourseProcedure, h.GetCourse, readOptions(opts)...),
		CourseServiceListCourseVideosProcedure: connect.NewUnaryHandler(CourseServiceListCourseVideosProcedure, h.ListCourseVideos, readOptions(opts)...),
		CourseServiceGetVideoProcedure:         connect.NewUnaryHandler(CourseServiceGetVideoProcedure, h.GetVideo, readOptions(opts)...),
		CourseServiceCreateCourseProcedure:     connect.NewUnaryHandler(CourseServiceCreateCourseProcedure, h.CreateCourse, writeOptions(opts)...),
		CourseServiceUpdateCourseProcedure:     connect.NewUnaryHandler(CourseServiceUpdateCourseProcedure, h.UpdateCourse, writeOptions(opts)...),
		CourseServiceDeleteCourseProcedure:     connect.NewUnaryHandler(CourseServiceDeleteCourseProcedure, h.DeleteCourse, writeOptions(opts)...),
		CourseServiceCreateVideoProcedure:      connect.NewUnaryHandler(CourseServiceCreateVideoProcedure, h.CreateVideo, writeOptions(opts)...),
		CourseServiceUpdateVideoProcedure:      connect.NewUnaryHandler(CourseServiceUpdateVideoProcedure, h.UpdateVideo, writeOptions(opts)...),
		CourseServiceDeleteVideoProcedure:      connect.NewUnaryHandler(CourseServiceDeleteVideoProcedure, h.DeleteVideo, writeOptions(opts)...),
	}
	return "/" + CourseServiceName + "/", serviceMux(routes)
}

// ListCourses returns catalog entries newest first.
func (h *CourseHandler) ListCourses(ctx context.Context, req *connect.Request[ListCoursesRequest]) (*connect.Response[ListCoursesResponse], error) {
	filter := core.CourseListFilter{
		Search:   req.Msg.Search,
		Provider: req.Msg.Provider,
	}
	if strings.TrimSpace(req.Msg.CreatorID) != "" {
		id, err := parseID("creatorId", req.Msg.CreatorID)
		if err != nil {
			return nil, err
		}
		filter.CreatorID = id
	}

	courses, err := h.service.ListCourses(ctx, filter)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&ListCoursesResponse{
		Courses: lo.Map(courses, func(c core.Course, _ int) CourseMessage { return toCourseMessage(&c) }),
	}), nil
}

// GetCourse returns a course by slug with its videos and creator.
func (h *CourseHandler) GetCourse(ctx context.Context, req *connect.Request[GetCourseRequest]) (*connect.Response[GetCourseResponse], error) {
	course, err := h.service.GetCourseBySlug(ctx, req.Msg.Slug)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&GetCourseResponse{Course: toCourseMessage(course)}), nil
}

// ListCourseVideos returns the ordered videos of a course.
func (h *CourseHandler) ListCourseVideos(ctx context.Context, req *connect.Request[ListCourseVideosRequest]) (*connect.Response[ListCourseVideosResponse], error) {
	videos, err := h.service.ListCourseVideos(ctx, req.Msg.Slug)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&ListCourseVideosResponse{
		Videos: lo.Ternary(videos == nil, []VideoMessage{}, toVideoMessages(videos)),
	}), nil
}

// GetVideo returns a single video and its parent course.
func (h *CourseHandler) GetVideo(ctx context.Context, req *connect.Request[GetVideoRequest]) (*connect.Response[GetVideoResponse], error) {
	id, err := parseID("videoId", req.Msg.VideoID)
	if err != nil {
		return nil, err
	}

	detail, err := h.service.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&GetVideoResponse{
		Video: toVideoMessage(&detail.Video),
		Course: CourseRefMessage{
			ID:    detail.Course.ID.String(),
			Slug:  detail.Course.Slug,
			Title: detail.Course.Title,
		},
	}), nil
}

// CreateCourse creates a course with its initial videos.
func (h *CourseHandler) CreateCourse(ctx context.Context, req *connect.Request[CreateCourseRequest]) (*connect.Response[CreateCourseResponse], error) {
	actorID, err := core.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	created, err := h.service.CreateCourse(ctx, actorID, req.Msg.Course)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&CreateCourseResponse{Course: toCourseMessage(created)}), nil
}

// UpdateCourse applies a full edit to a course owned by the caller.
func (h *CourseHandler) UpdateCourse(ctx context.Context, req *connect.Request[UpdateCourseRequest]) (*connect.Response[UpdateCourseResponse], error) {
	actorID, err := core.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	courseID, err := parseID("courseId", req.Msg.CourseID)
	if err != nil {
		return nil, err
	}

	updated, err := h.service.UpdateCourse(ctx, courseID, actorID, req.Msg.Course)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&UpdateCourseResponse{Course: toCourseMessage(updated)}), nil
}

// DeleteCourse removes a course owned by the caller.
func (h *CourseHandler) DeleteCourse(ctx context.Context, req *connect.Request[DeleteCourseRequest]) (*connect.Response[DeleteCourseResponse], error) {
	actorID, err := core.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	courseID, err := parseID("courseId", req.Msg.CourseID)
	if err != nil {
		return nil, err
	}

	if err := h.service.DeleteCourse(ctx, courseID, actorID); err != nil {
		return nil, err
	}
	return connect.NewResponse(&DeleteCourseResponse{}), nil
}

// CreateVideo appends a video to a course owned by the caller.
func (h *CourseHandler) CreateVideo(ctx context.Context, req *connect.Request[CreateVideoRequest]) (*connect.Response[CreateVideoResponse], error) {
	actorID, err := core.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	courseID, err := parseID("courseId", req.Msg.CourseID)
	if err != nil {
		return nil, err
	}

	created, err := h.service.CreateVideo(ctx, courseID, actorID, req.Msg.Video)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&CreateVideoResponse{Video: toVideoMessage(created)}), nil
}

// UpdateVideo edits a single video owned by the caller.
func (h *CourseHandler) UpdateVideo(ctx context.Context, req *connect.Request[UpdateVideoRequest]) (*connect.Response[UpdateVideoResponse], error) {
	actorID, err := core.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	videoID, err := parseID("videoId", req.Msg.VideoID)
	if err != nil {
		return nil, err
	}

	updated, err := h.service.UpdateVideo(ctx, videoID, actorID, req.Msg.Video)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&UpdateVideoResponse{Video: toVideoMessage(updated)}), nil
}

// DeleteVideo removes a video owned by the caller.
func (h *CourseHandler) DeleteVideo(ctx context.Context, req *connect.Request[DeleteVideoRequest]) (*connect.Response[DeleteVideoResponse], error) {
	actorID, err := core.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	videoID, err := parseID("videoId", req.Msg.VideoID)
	if err != nil {
		return nil, err
	}

	deleted, err := h.service.DeleteVideo(ctx, videoID, actorID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&DeleteVideoResponse{
		CourseID:   deleted.CourseID.String(),
		CourseSlug: deleted.CourseSlug,
	}), nil
}

func parseID(field, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, core.NewValidationError(field, "Missing identifier")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, core.NewValidationError(field, "Invalid identifier")
	}
	return id, nil
}

func readOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append(writeOptions(opts), connect.WithIdempotency(connect.IdempotencyNoSideEffects))
}

func writeOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
}

func serviceMux(routes map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := routes[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

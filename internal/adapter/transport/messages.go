package transport

import (
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/courseboxd/internal/core"
)

// Course wire types.

type ListCoursesRequest struct {
	Search    string `json:"search,omitempty"`
	CreatorID string `json:"creatorId,omitempty"`
	Provider  string `json:"provider,omitempty"`
}

type ListCoursesResponse struct {
	Courses []CourseMessage `json:"courses"`
}

type GetCourseRequest struct {
	Slug string `json:"slug"`
}

type GetCourseResponse struct {
	Course CourseMessage `json:"course"`
}

type ListCourseVideosRequest struct {
	Slug string `json:"slug"`
}

type ListCourseVideosResponse struct {
	Videos []VideoMessage `json:"videos"`
}

type GetVideoRequest struct {
	VideoID string `json:"videoId"`
}

type GetVideoResponse struct {
	Video  VideoMessage     `json:"video"`
	Course CourseRefMessage `json:"course"`
}

type CreateCourseRequest struct {
	Course core.CourseInput `json:"course"`
}

type CreateCourseResponse struct {
	Course CourseMessage `json:"course"`
}

// UpdateCourseRequest carries a full course edit. A present videos list,
// even an empty one, replaces the course's videos.
type UpdateCourseRequest struct {
	CourseID string                 `json:"courseId"`
	Course   core.CourseUpdateInput `json:"course"`
}

type UpdateCourseResponse struct {
	Course CourseMessage `json:"course"`
}

type DeleteCourseRequest struct {
	CourseID string `json:"courseId"`
}

type DeleteCourseResponse struct{}

type CreateVideoRequest struct {
	CourseID string          `json:"courseId"`
	Video    core.VideoInput `json:"video"`
}

type CreateVideoResponse struct {
	Video VideoMessage `json:"video"`
}

type UpdateVideoRequest struct {
	VideoID string          `json:"videoId"`
	Video   core.VideoInput `json:"video"`
}

type UpdateVideoResponse struct {
	Video VideoMessage `json:"video"`
}

type DeleteVideoRequest struct {
	VideoID string `json:"videoId"`
}

type DeleteVideoResponse struct {
	CourseID   string `json:"courseId"`
	CourseSlug string `json:"courseSlug"`
}

// Account wire types.

type RegisterResponse struct {
	Session SessionMessage `json:"session"`
}

type LoginResponse struct {
	Session SessionMessage `json:"session"`
}

type UpdateProfileResponse struct {
	User UserMessage `json:"user"`
}

// CourseMessage is the JSON projection of a course.
type CourseMessage struct {
	ID           string          `json:"id"`
	Slug         string          `json:"slug"`
	Title        string          `json:"title"`
	Summary      *string         `json:"summary"`
	Description  *string         `json:"description"`
	Provider     *string         `json:"provider"`
	ProviderURL  *string         `json:"providerUrl"`
	ThumbnailURL *string         `json:"thumbnailUrl"`
	ExternalID   *string         `json:"externalId"`
	CreatorID    string          `json:"creatorId"`
	Creator      *CreatorMessage `json:"creator,omitempty"`
	VideoCount   int             `json:"videoCount"`
	Videos       []VideoMessage  `json:"videos,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type CreatorMessage struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Username string  `json:"username"`
}

type CourseRefMessage struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type VideoMessage struct {
	ID              string    `json:"id"`
	CourseID        string    `json:"courseId"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	URL             string    `json:"url"`
	DurationSeconds *int      `json:"durationSeconds"`
	Provider        *string   `json:"provider"`
	ExternalID      *string   `json:"externalId"`
	ThumbnailURL    *string   `json:"thumbnailUrl"`
	Position        int       `json:"position"`
	CreatorID       string    `json:"creatorId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type UserMessage struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	Username          string  `json:"username"`
	Name              *string `json:"name"`
	AvatarURL         *string `json:"avatarUrl"`
	DefaultVisibility string  `json:"defaultVisibility"`
}

type SessionMessage struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      UserMessage `json:"user"`
}

func toCourseMessage(course *core.Course) CourseMessage {
	msg := CourseMessage{
		ID:           course.ID.String(),
		Slug:         course.Slug,
		Title:        course.Title,
		Summary:      course.Summary,
		Description:  course.Description,
		Provider:     course.Provider,
		ProviderURL:  course.ProviderURL,
		ThumbnailURL: course.ThumbnailURL,
		ExternalID:   course.ExternalID,
		CreatorID:    course.CreatorID.String(),
		VideoCount:   course.VideoCount,
		Videos:       toVideoMessages(course.Videos),
		CreatedAt:    course.CreatedAt,
		UpdatedAt:    course.UpdatedAt,
	}
	if course.Videos != nil && msg.VideoCount == 0 {
		msg.VideoCount = len(course.Videos)
	}
	if course.Creator != nil {
		msg.Creator = &CreatorMessage{
			ID:       course.Creator.ID.String(),
			Name:     course.Creator.Name,
			Username: course.Creator.Username,
		}
	}
	return msg
}

func toVideoMessage(video *core.Video) VideoMessage {
	return VideoMessage{
		ID:              video.ID.String(),
		CourseID:        video.CourseID.String(),
		Slug:            video.Slug,
		Title:           video.Title,
		Description:     video.Description,
		URL:             video.URL,
		DurationSeconds: video.DurationSeconds,
		Provider:        video.Provider,
		ExternalID:      video.ExternalID,
		ThumbnailURL:    video.ThumbnailURL,
		Position:        video.Position,
		CreatorID:       video.CreatorID.String(),
		CreatedAt:       video.CreatedAt,
		UpdatedAt:       video.UpdatedAt,
	}
}

func toVideoMessages(videos []core.Video) []VideoMessage {
	if videos == nil {
		return nil
	}
	return lo.Map(videos, func(v core.Video, _ int) VideoMessage { return toVideoMessage(&v) })
}

func toUserMessage(user *core.User) UserMessage {
	return UserMessage{
		ID:                user.ID.String(),
		Email:             user.Email,
		Username:          user.Username,
		Name:              user.Name,
		AvatarURL:         user.AvatarURL,
		DefaultVisibility: string(user.DefaultVisibility),
	}
}

func toSessionMessage(session *core.Session) SessionMessage {
	return SessionMessage{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      toUserMessage(&session.User),
	}
}

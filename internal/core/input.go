package core

// CourseInput is the raw, unvalidated course payload accepted from callers.
type CourseInput struct {
	Title        *string      `json:"title" validate:"required,min=3"`
	Summary      *string      `json:"summary,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Provider     *string      `json:"provider,omitempty"`
	ProviderURL  *string      `json:"providerUrl,omitempty" validate:"omitempty,absurl"`
	ThumbnailURL *string      `json:"thumbnailUrl,omitempty" validate:"omitempty,absurl"`
	ExternalID   *string      `json:"externalId,omitempty"`
	Videos       []VideoInput `json:"videos" validate:"omitempty,dive"`
}

// CourseUpdateInput is a full course edit. A nil Videos slice leaves the
// current video list in place apart from RemovedVideoIDs.
type CourseUpdateInput struct {
	CourseInput
	RemovedVideoIDs []string `json:"removedVideoIds,omitempty"`
}

// VideoInput is the raw, unvalidated video payload. Numbers arrive as JSON
// numbers so fractional values can be reported instead of silently truncated.
type VideoInput struct {
	ID              *string  `json:"id,omitempty" validate:"omitempty,uuid"`
	Title           *string  `json:"title" validate:"required,min=3"`
	Description     *string  `json:"description,omitempty"`
	URL             *string  `json:"url" validate:"required,absurl"`
	DurationSeconds *float64 `json:"durationSeconds,omitempty" validate:"omitempty,whole,min=1,max=2147483647"`
	Provider        *string  `json:"provider,omitempty"`
	ExternalID      *string  `json:"externalId,omitempty"`
	ThumbnailURL    *string  `json:"thumbnailUrl,omitempty" validate:"omitempty,absurl"`
	Position        *float64 `json:"position,omitempty" validate:"omitempty,whole,min=1,max=2147483647"`
}

// RegistrationInput is the sign-up payload.
type RegistrationInput struct {
	Email             string  `json:"email" validate:"required,email"`
	Username          string  `json:"username" validate:"required,min=3,max=24,username"`
	Name              *string `json:"name,omitempty" validate:"omitempty,min=2,max=80"`
	Password          string  `json:"password" validate:"required,min=8"`
	ConfirmPassword   string  `json:"confirmPassword" validate:"required,eqfield=Password"`
	DefaultVisibility string  `json:"defaultVisibility,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE"`
}

// CredentialsInput is the sign-in payload.
type CredentialsInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileInput is the profile edit payload.
type ProfileInput struct {
	Name              string  `json:"name" validate:"required,min=2,max=80"`
	AvatarURL         *string `json:"avatarUrl,omitempty" validate:"omitempty,absurl"`
	DefaultVisibility string  `json:"defaultVisibility" validate:"required,oneof=PUBLIC PRIVATE"`
}

// Registration is a validated sign-up request.
type Registration struct {
	Email             string
	Username          string
	Name              *string
	Password          string
	DefaultVisibility Visibility
}

// Credentials is a validated sign-in request.
type Credentials struct {
	Email    string
	Password string
}

// ProfileUpdate is a validated profile edit.
type ProfileUpdate struct {
	Name              string
	AvatarURL         *string
	DefaultVisibility Visibility
}

// InputValidator checks and normalizes raw input. Failures are returned as
// *ValidationError.
type InputValidator interface {
	Course(in CourseInput) (CourseDraft, error)
	CourseUpdate(in CourseUpdateInput) (CourseUpdate, error)
	Video(in VideoInput) (VideoDraft, error)
	Registration(in RegistrationInput) (Registration, error)
	Credentials(in CredentialsInput) (Credentials, error)
	Profile(in ProfileInput) (ProfileUpdate, error)
}

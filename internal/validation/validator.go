package validation

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/eslsoft/courseboxd/internal/core"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// fieldMessages maps "Type.Field" and a failed tag to the message shown to users.
var fieldMessages = map[string]map[string]string{
	"CourseInput.Title": {
		"required": "Title is required",
		"min":      "Title must be at least 3 characters",
	},
	"VideoInput.Title": {
		"required": "Video title is required",
		"min":      "Video title must be at least 3 characters",
	},
	"VideoInput.URL": {
		"required": "Video URL is required",
	},
	"VideoInput.DurationSeconds": {
		"whole": "Duration must be a whole number of seconds",
		"min":   "Duration must be at least one second",
		"max":   "Duration is too large",
	},
	"VideoInput.Position": {
		"whole": "Position must be a whole number",
		"min":   "Position must be at least 1",
		"max":   "Position is too large",
	},
	"RegistrationInput.Email": {
		"required": "Email is required",
	},
	"RegistrationInput.Username": {
		"required": "Username is required",
		"min":      "Username must be at least 3 characters",
		"max":      "Username must be at most 24 characters",
		"username": "Only lowercase letters, numbers and underscores are allowed",
	},
	"RegistrationInput.Name": {
		"min": "Name must be at least 2 characters",
		"max": "Name must be at most 80 characters",
	},
	"RegistrationInput.Password": {
		"required": "Password is required",
		"min":      "Password must be at least 8 characters",
	},
	"RegistrationInput.ConfirmPassword": {
		"required": "Confirm your password",
		"eqfield":  "Passwords do not match",
	},
	"CredentialsInput.Password": {
		"required": "Password is required",
	},
	"ProfileInput.Name": {
		"required": "Name is required",
		"min":      "Name must be at least 2 characters",
		"max":      "Name must be at most 80 characters",
	},
}

// tagMessages are used when no field-specific message exists.
var tagMessages = map[string]string{
	"required": "This field is required",
	"absurl":   "Enter a valid URL",
	"uuid":     "Invalid identifier",
	"email":    "Enter a valid email address",
	"oneof":    "Select a valid option",
	"whole":    "Must be a whole number",
}

// Validator checks and normalizes raw input using go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// New constructs a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	lo.Must0(v.RegisterValidation("absurl", isAbsoluteURL))
	lo.Must0(v.RegisterValidation("whole", isWholeNumber))
	lo.Must0(v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	}))
	return &Validator{validate: v}
}

var _ core.InputValidator = (*Validator)(nil)

// Course validates a course creation payload. Video ids are ignored.
func (v *Validator) Course(in core.CourseInput) (core.CourseDraft, error) {
	in = normalizeCourse(in)
	if verr := v.check(in); !verr.Empty() {
		return core.CourseDraft{}, verr
	}
	draft := toCourseDraft(in)
	for i := range draft.Videos {
		draft.Videos[i].ID = uuid.Nil
	}
	return draft, nil
}

// CourseUpdate validates a full course edit, including video references.
func (v *Validator) CourseUpdate(in core.CourseUpdateInput) (core.CourseUpdate, error) {
	course := normalizeCourse(in.CourseInput)
	verr := v.check(course)
	if verr == nil {
		verr = &core.ValidationError{}
	}

	removed := make([]uuid.UUID, 0, len(in.RemovedVideoIDs))
	for i, raw := range in.RemovedVideoIDs {
		id := lowerID(raw)
		if err := v.validate.Var(id, "uuid"); err != nil {
			verr.Add(fmt.Sprintf("removedVideoIds[%d]", i), tagMessages["uuid"])
			continue
		}
		removed = append(removed, uuid.MustParse(id))
	}

	seen := make(map[string]struct{}, len(course.Videos))
	for i, video := range course.Videos {
		if video.ID == nil {
			continue
		}
		if _, dup := seen[*video.ID]; dup {
			verr.Add(fmt.Sprintf("videos[%d].id", i), "Duplicate video reference")
			continue
		}
		seen[*video.ID] = struct{}{}
	}

	if !verr.Empty() {
		return core.CourseUpdate{}, verr
	}

	return core.CourseUpdate{
		CourseDraft:     toCourseDraft(course),
		ReplaceVideos:   in.Videos != nil,
		RemovedVideoIDs: lo.Uniq(removed),
	}, nil
}

// Video validates a single video payload.
func (v *Validator) Video(in core.VideoInput) (core.VideoDraft, error) {
	in = normalizeVideo(in)
	if verr := v.check(in); !verr.Empty() {
		return core.VideoDraft{}, verr
	}
	return toVideoDraft(in), nil
}

// Registration validates a sign-up payload. Email and username are lowercased.
func (v *Validator) Registration(in core.RegistrationInput) (core.Registration, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
	in.Name = trimmed(in.Name)
	if verr := v.check(in); !verr.Empty() {
		return core.Registration{}, verr
	}
	return core.Registration{
		Email:             in.Email,
		Username:          in.Username,
		Name:              in.Name,
		Password:          in.Password,
		DefaultVisibility: visibilityOrDefault(in.DefaultVisibility),
	}, nil
}

// Credentials validates a sign-in payload.
func (v *Validator) Credentials(in core.CredentialsInput) (core.Credentials, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if verr := v.check(in); !verr.Empty() {
		return core.Credentials{}, verr
	}
	return core.Credentials{Email: in.Email, Password: in.Password}, nil
}

// Profile validates a profile edit.
func (v *Validator) Profile(in core.ProfileInput) (core.ProfileUpdate, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.AvatarURL = trimmed(in.AvatarURL)
	if verr := v.check(in); !verr.Empty() {
		return core.ProfileUpdate{}, verr
	}
	return core.ProfileUpdate{
		Name:              in.Name,
		AvatarURL:         in.AvatarURL,
		DefaultVisibility: core.Visibility(in.DefaultVisibility),
	}, nil
}

// check runs struct validation and collects the first message per field path.
func (v *Validator) check(in any) *core.ValidationError {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return core.NewValidationError("", err.Error())
	}

	root := reflect.TypeOf(in)
	verr := &core.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe.Namespace()), message(root, fe))
	}
	return verr
}

// fieldPath drops the root type name from a validator namespace.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func message(root reflect.Type, fe validator.FieldError) string {
	owner := ownerType(root, fe.StructNamespace())
	if msgs, ok := fieldMessages[owner+"."+fe.StructField()]; ok {
		if msg, ok := msgs[fe.Tag()]; ok {
			return msg
		}
	}
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("Failed %s check", fe.Tag())
}

// ownerType walks a struct namespace such as "CourseInput.Videos[0].Title"
// and returns the name of the struct declaring the last field.
func ownerType(root reflect.Type, namespace string) string {
	segments := strings.Split(namespace, ".")
	current := indirectType(root)
	for _, segment := range segments[1 : len(segments)-1] {
		if idx := strings.Index(segment, "["); idx >= 0 {
			segment = segment[:idx]
		}
		field, ok := current.FieldByName(segment)
		if !ok {
			return current.Name()
		}
		current = indirectType(field.Type)
	}
	return current.Name()
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	return t
}

func isAbsoluteURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func isWholeNumber(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

func visibilityOrDefault(raw string) core.Visibility {
	if raw == "" {
		return core.VisibilityPublic
	}
	return core.Visibility(raw)
}

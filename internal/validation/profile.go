package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"RUMBLER_BACK-END/internal/models"
)

const (
	// MinimumAge is the youngest a fighter may be to keep a profile
	MinimumAge = 18
	// MaxBioLength is counted in characters, not bytes
	MaxBioLength = 500

	underageMessage    = "Must be 18 or older to use Rumbler."
	disciplinesMessage = "Select at least one discipline"
)

// dateLayouts are tried in order when parsing dob
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// profileInput is the typed view of a payload once presence and types are
// known. The validate tags carry the value constraints.
type profileInput struct {
	PhotoURL        *string  `json:"photoUrl" validate:"omitempty,url"`
	Gender          string   `json:"gender" validate:"oneof=male female nonbinary prefer_not_to_say"`
	DOB             string   `json:"dob"`
	Disciplines     []string `json:"disciplines" validate:"min=1,dive,min=1"`
	Stance          *string  `json:"stance"`
	HeightCm        *int     `json:"heightCm" validate:"omitempty,min=0"`
	ReachCm         *int     `json:"reachCm" validate:"omitempty,min=0"`
	WeightClass     string   `json:"weightClass" validate:"min=1"`
	ExperienceLevel string   `json:"experienceLevel" validate:"oneof=amateur pro"`
	AmateurWins     int      `json:"amateurWins" validate:"min=0"`
	AmateurLosses   int      `json:"amateurLosses" validate:"min=0"`
	AmateurDraws    int      `json:"amateurDraws" validate:"min=0"`
	ProWins         *int     `json:"proWins" validate:"omitempty,min=0"`
	ProLosses       *int     `json:"proLosses" validate:"omitempty,min=0"`
	ProDraws        *int     `json:"proDraws" validate:"omitempty,min=0"`
	GymAffiliation  *string  `json:"gymAffiliation"`
	Bio             *string  `json:"bio" validate:"omitempty,max=500"`
	Availability    []string `json:"availability"`

	dob time.Time
}

// validate caches struct metadata and is safe for concurrent use
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ProfileValidator turns untyped profile payloads into normalized profiles
type ProfileValidator struct {
	now func() time.Time
}

// NewProfileValidator builds a validator. now may be nil, in which case the
// wall clock is used.
func NewProfileValidator(now func() time.Time) *ProfileValidator {
	if now == nil {
		now = time.Now
	}
	return &ProfileValidator{now: now}
}

// ParseAndValidate decodes a raw request body and validates it.
// A body that is not JSON yields an error wrapping ErrMalformedBody.
func (v *ProfileValidator) ParseAndValidate(body []byte) (models.Profile, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return models.Profile{}, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedBody)
	}
	return v.Validate(payload)
}

// Validate checks a decoded payload. On failure the error is a
// *ValidationError and the returned profile is the zero value.
func (v *ProfileValidator) Validate(payload any) (models.Profile, error) {
	errs := newValidationError()

	raw, ok := payload.(map[string]any)
	if !ok {
		errs.add(RootPath, fmt.Sprintf("Expected object, received %s", typeName(payload)))
		return models.Profile{}, errs
	}

	in := v.read(raw, errs)
	v.checkValues(in, errs)
	if !errs.empty() {
		return models.Profile{}, errs
	}

	now := v.now()
	if ageOn(in.dob, now) < MinimumAge {
		errs.add("dob", underageMessage)
		return models.Profile{}, errs
	}

	return normalize(in, now), nil
}

// read extracts every field, recording presence and type errors
func (v *ProfileValidator) read(raw map[string]any, errs *ValidationError) *profileInput {
	r := fieldReader{raw: raw, errs: errs}
	in := &profileInput{}

	in.PhotoURL = r.str("photoUrl", false)
	if s := r.str("gender", true); s != nil {
		in.Gender = *s
	}
	if s := r.str("dob", true); s != nil {
		in.DOB = *s
		if t, ok := parseDate(*s); ok {
			in.dob = t
		} else {
			errs.add("dob", "Invalid date")
		}
	}
	in.Disciplines, _ = r.stringList("disciplines", true)
	in.Stance = r.str("stance", false)
	in.HeightCm = r.integer("heightCm", false)
	in.ReachCm = r.integer("reachCm", false)
	if s := r.str("weightClass", true); s != nil {
		in.WeightClass = *s
	}
	if s := r.str("experienceLevel", true); s != nil {
		in.ExperienceLevel = *s
	}
	if n := r.integer("amateurWins", true); n != nil {
		in.AmateurWins = *n
	}
	if n := r.integer("amateurLosses", true); n != nil {
		in.AmateurLosses = *n
	}
	if n := r.integer("amateurDraws", true); n != nil {
		in.AmateurDraws = *n
	}
	in.ProWins = r.integer("proWins", false)
	in.ProLosses = r.integer("proLosses", false)
	in.ProDraws = r.integer("proDraws", false)
	in.GymAffiliation = r.str("gymAffiliation", false)
	in.Bio = r.str("bio", false)
	in.Availability, _ = r.stringList("availability", false)

	return in
}

// checkValues runs the tag constraints. Paths that already failed on presence
// or type are not reported twice.
func (v *ProfileValidator) checkValues(in *profileInput, errs *ValidationError) {
	err := validate.Struct(in)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.add(RootPath, err.Error())
		return
	}

	already := make(map[string]bool, len(errs.Fields))
	for path := range errs.Fields {
		already[path] = true
	}
	for _, fe := range fieldErrs {
		path := fieldPath(fe.Namespace())
		if already[path] || already[topLevel(path)] {
			continue
		}
		errs.add(path, message(fe))
	}
}

// fieldPath turns "profileInput.disciplines[0]" into "disciplines.0"
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		namespace = namespace[i+1:]
	}
	namespace = strings.ReplaceAll(namespace, "[", ".")
	return strings.ReplaceAll(namespace, "]", "")
}

func topLevel(path string) string {
	return strings.SplitN(path, ".", 2)[0]
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		opts := strings.Fields(fe.Param())
		for i, o := range opts {
			opts[i] = "'" + o + "'"
		}
		return fmt.Sprintf("Invalid enum value. Expected %s, received '%v'", strings.Join(opts, " | "), fe.Value())
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
		case reflect.Slice:
			if fe.Field() == "disciplines" {
				return disciplinesMessage
			}
			return fmt.Sprintf("Array must contain at least %s element(s)", fe.Param())
		default:
			return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
		}
	case "max":
		return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
	case "url":
		return "Invalid url"
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
	}
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ageOn returns whole years between dob and now, counting a birthday that
// falls today as reached.
func ageOn(dob, now time.Time) int {
	now = now.UTC()
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

func normalize(in *profileInput, now time.Time) models.Profile {
	availability := in.Availability
	if availability == nil {
		availability = []string{}
	}
	return models.Profile{
		PhotoURL:         in.PhotoURL,
		Gender:           in.Gender,
		DOB:              in.DOB,
		Disciplines:      in.Disciplines,
		Stance:           in.Stance,
		HeightCm:         in.HeightCm,
		ReachCm:          in.ReachCm,
		WeightClass:      in.WeightClass,
		ExperienceLevel:  in.ExperienceLevel,
		AmateurWins:      in.AmateurWins,
		AmateurLosses:    in.AmateurLosses,
		AmateurDraws:     in.AmateurDraws,
		ProWins:          intOrZero(in.ProWins),
		ProLosses:        intOrZero(in.ProLosses),
		ProDraws:         intOrZero(in.ProDraws),
		GymAffiliation:   in.GymAffiliation,
		Bio:              in.Bio,
		Availability:     availability,
		ProfileCompleted: true,
		KYCVerified:      true,
		UpdatedAt:        now.UTC().Truncate(time.Millisecond),
	}
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

package validation

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"RUMBLER_BACK-END/internal/models"
)

// DefaultDeckDistance is used when the client sends no distance (km)
const DefaultDeckDistance = 25

const (
	maxDeckDistance   = "100"
	experienceOptions = "beginner intermediate advanced pro"
	genderOptions     = "male female non-binary"
)

// ParseDeckQuery reads deck filters from query parameters. When a key is
// repeated the last value wins. Failures are returned as *ValidationError.
func ParseDeckQuery(values url.Values) (models.DeckQuery, error) {
	errs := newValidationError()
	q := models.DeckQuery{Distance: DefaultDeckDistance}

	if raw, ok := last(values, "distance"); ok {
		f, ok := toNumber(raw)
		switch {
		case !ok || math.IsNaN(f):
			errs.add("distance", "Expected number, received nan")
		case validate.Var(f, "gt=0") != nil:
			errs.add("distance", "Number must be greater than 0")
		case validate.Var(f, "lte="+maxDeckDistance) != nil:
			errs.add("distance", "Number must be less than or equal to "+maxDeckDistance)
		default:
			q.Distance = f
		}
	}

	if raw, ok := last(values, "discipline"); ok {
		s := strings.TrimSpace(raw)
		if s == "" {
			errs.add("discipline", "String must contain at least 1 character(s)")
		} else {
			q.Discipline = &s
		}
	}

	q.Experience = enumParam(values, "experience", experienceOptions, errs)
	q.Gender = enumParam(values, "gender", genderOptions, errs)

	if !errs.empty() {
		return models.DeckQuery{}, errs
	}
	return q, nil
}

func enumParam(values url.Values, key, options string, errs *ValidationError) *string {
	raw, ok := last(values, key)
	if !ok {
		return nil
	}
	if err := validate.Var(raw, "oneof="+options); err != nil {
		opts := strings.Fields(options)
		for i, o := range opts {
			opts[i] = "'" + o + "'"
		}
		errs.add(key, fmt.Sprintf("Invalid enum value. Expected %s, received '%s'", strings.Join(opts, " | "), raw))
		return nil
	}
	return &raw
}

func last(values url.Values, key string) (string, bool) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

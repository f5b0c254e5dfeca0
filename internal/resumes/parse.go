package resumes

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	ratingMin = 1
	ratingMax = 10
)

// ParseRecord turns the generation service's raw reply into a validated
// Record. The candidate JSON is the substring between the first '{' and the
// last '}' so prose or markdown fencing around the object is tolerated; when
// no braces are present the whole reply is the candidate. Unknown keys are
// ignored. Parsing is deterministic: the same reply always yields the same
// record.
//
// Shape policy: a field present with the wrong JSON kind (e.g. work_experience
// as a string) is a *ValidationError, not silently wrapped. A reply that is
// not a JSON object at all is a *ParseError carrying the raw reply.
func ParseRecord(raw string) (Record, error) {
	candidate := jsonCandidate(raw)

	var rec Record
	if err := json.Unmarshal([]byte(candidate), &rec); err != nil {
		return Record{}, classifyDecodeError(raw, err)
	}

	normalizeRecord(&rec)
	return rec, nil
}

// jsonCandidate extracts the likely JSON object from a free-form reply.
func jsonCandidate(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return raw[start : end+1]
}

func classifyDecodeError(raw string, err error) error {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &ValidationError{
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}

	return &ParseError{Raw: raw, Err: err}
}

// normalizeRecord defaults absent collections to empty and clamps the rating
// to its 1-10 domain.
func normalizeRecord(rec *Record) {
	rec.WorkExperience = ensureSlice(rec.WorkExperience)
	rec.Education = ensureSlice(rec.Education)
	rec.TechnicalSkills = ensureSlice(rec.TechnicalSkills)
	rec.SoftSkills = ensureSlice(rec.SoftSkills)
	rec.Projects = ensureSlice(rec.Projects)
	rec.Certifications = ensureSlice(rec.Certifications)
	rec.UpskillSuggestions = ensureSlice(rec.UpskillSuggestions)

	for i := range rec.Projects {
		rec.Projects[i].Technologies = ensureSlice(rec.Projects[i].Technologies)
	}

	if rec.ResumeRating != nil {
		clamped := clampRating(*rec.ResumeRating)
		rec.ResumeRating = &clamped
	}
}

func ensureSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func clampRating(r Rating) Rating {
	if r < ratingMin {
		return ratingMin
	}
	if r > ratingMax {
		return ratingMax
	}
	return r
}

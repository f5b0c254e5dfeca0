package resumes

import (
	"errors"
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func ratingPtr(v float64) *Rating {
	r := Rating(v)
	return &r
}

func TestParseRecordPlainObject(t *testing.T) {
	raw := `{"name":"Jane Doe","email":"jane@x.com","phone":"555-1234","technical_skills":["Go","SQL"],"resume_rating":8}`

	rec, err := ParseRecord(raw)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if rec.Name == nil || *rec.Name != "Jane Doe" {
		t.Fatalf("expected name Jane Doe, got %v", rec.Name)
	}
	if !reflect.DeepEqual(rec.TechnicalSkills, []string{"Go", "SQL"}) {
		t.Fatalf("unexpected technical_skills: %v", rec.TechnicalSkills)
	}
	if rec.ResumeRating == nil || *rec.ResumeRating != 8 {
		t.Fatalf("expected rating 8, got %v", rec.ResumeRating)
	}
}

func TestParseRecordStripsFencing(t *testing.T) {
	fenced := "Here is the result:\n```json\n{\"name\":\"Jane Doe\",\"technical_skills\":[\"Go\"]}\n```\nLet me know if you need anything else."
	plain := `{"name":"Jane Doe","technical_skills":["Go"]}`

	fromFenced, err := ParseRecord(fenced)
	if err != nil {
		t.Fatalf("ParseRecord fenced: %v", err)
	}
	fromPlain, err := ParseRecord(plain)
	if err != nil {
		t.Fatalf("ParseRecord plain: %v", err)
	}
	if !reflect.DeepEqual(fromFenced, fromPlain) {
		t.Fatalf("fenced and plain replies parsed differently:\n%+v\n%+v", fromFenced, fromPlain)
	}
}

func TestParseRecordNoBracesFailsWithParseError(t *testing.T) {
	raw := "I could not analyze this."

	_, err := ParseRecord(raw)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Raw != raw {
		t.Fatalf("expected raw reply preserved, got %q", parseErr.Raw)
	}
}

func TestParseRecordDefaultsMissingFields(t *testing.T) {
	rec, err := ParseRecord(`{"name":"Jane Doe","linkedin_url":null}`)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}

	if rec.LinkedinURL != nil {
		t.Fatalf("expected nil linkedin_url, got %v", *rec.LinkedinURL)
	}
	if rec.Email != nil {
		t.Fatalf("expected nil email for absent key")
	}
	if rec.TechnicalSkills == nil || len(rec.TechnicalSkills) != 0 {
		t.Fatalf("expected empty technical_skills, got %v", rec.TechnicalSkills)
	}
	for name, seq := range map[string]int{
		"work_experience":     len(rec.WorkExperience),
		"education":           len(rec.Education),
		"soft_skills":         len(rec.SoftSkills),
		"projects":            len(rec.Projects),
		"certifications":      len(rec.Certifications),
		"upskill_suggestions": len(rec.UpskillSuggestions),
	} {
		if seq != 0 {
			t.Fatalf("expected empty %s", name)
		}
	}
	if rec.WorkExperience == nil || rec.UpskillSuggestions == nil {
		t.Fatal("sequence fields must never be nil after parse")
	}
}

func TestParseRecordCoercesStringRating(t *testing.T) {
	rec, err := ParseRecord(`{"resume_rating":"7"}`)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if rec.ResumeRating == nil || *rec.ResumeRating != 7 {
		t.Fatalf("expected rating 7, got %v", rec.ResumeRating)
	}
}

func TestParseRecordRejectsNonNumericRating(t *testing.T) {
	_, err := ParseRecord(`{"resume_rating":"excellent"}`)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if valErr.Field != "resume_rating" {
		t.Fatalf("expected resume_rating field, got %q", valErr.Field)
	}
}

func TestParseRecordClampsRating(t *testing.T) {
	cases := []struct {
		raw  string
		want Rating
	}{
		{`{"resume_rating":15}`, 10},
		{`{"resume_rating":0}`, 1},
		{`{"resume_rating":"12"}`, 10},
	}
	for _, tc := range cases {
		rec, err := ParseRecord(tc.raw)
		if err != nil {
			t.Fatalf("ParseRecord(%s): %v", tc.raw, err)
		}
		if rec.ResumeRating == nil || *rec.ResumeRating != tc.want {
			t.Fatalf("ParseRecord(%s) rating = %v, want %v", tc.raw, rec.ResumeRating, tc.want)
		}
	}
}

func TestParseRecordRejectsWrongShapeSequence(t *testing.T) {
	_, err := ParseRecord(`{"work_experience":"five years at Acme"}`)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if valErr.Field != "work_experience" {
		t.Fatalf("expected work_experience field, got %q", valErr.Field)
	}
}

func TestParseRecordIgnoresUnknownKeys(t *testing.T) {
	rec, err := ParseRecord(`{"name":"Jane Doe","confidence":0.93,"debug":{"tokens":12}}`)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if rec.Name == nil || *rec.Name != "Jane Doe" {
		t.Fatalf("expected name parsed despite unknown keys")
	}
}

func TestParseRecordIsIdempotent(t *testing.T) {
	raw := "```json\n{\"name\":\"Jane Doe\",\"resume_rating\":\"9\",\"projects\":[{\"name\":\"CLI\",\"description\":\"tool\",\"technologies\":[\"Go\"]}]}\n```"

	first, err := ParseRecord(raw)
	if err != nil {
		t.Fatalf("first ParseRecord: %v", err)
	}
	second, err := ParseRecord(raw)
	if err != nil {
		t.Fatalf("second ParseRecord: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("parsing the same reply twice yielded different records")
	}
}

func TestParseRecordNestedProjectTechnologiesDefaulted(t *testing.T) {
	rec, err := ParseRecord(`{"projects":[{"name":"CLI","description":"tool"}]}`)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if len(rec.Projects) != 1 {
		t.Fatalf("expected one project, got %d", len(rec.Projects))
	}
	if rec.Projects[0].Technologies == nil || len(rec.Projects[0].Technologies) != 0 {
		t.Fatalf("expected empty technologies, got %v", rec.Projects[0].Technologies)
	}
}

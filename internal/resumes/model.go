package resumes

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Record is the validated structured-extraction output for one document.
// Optional scalars are nil when the resume does not carry them; sequence
// fields are never nil once parsed or rehydrated, so consumers never branch
// on key absence.
type Record struct {
	Name               *string         `json:"name"`
	Email              *string         `json:"email"`
	Phone              *string         `json:"phone"`
	LinkedinURL        *string         `json:"linkedin_url"`
	PortfolioURL       *string         `json:"portfolio_url"`
	Summary            *string         `json:"summary"`
	WorkExperience     []Experience    `json:"work_experience"`
	Education          []Education     `json:"education"`
	TechnicalSkills    []string        `json:"technical_skills"`
	SoftSkills         []string        `json:"soft_skills"`
	Projects           []Project       `json:"projects"`
	Certifications     []Certification `json:"certifications"`
	ResumeRating       *Rating         `json:"resume_rating"`
	ImprovementAreas   *string         `json:"improvement_areas"`
	UpskillSuggestions []string        `json:"upskill_suggestions"`
}

// Experience is one work history entry, in document order.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education is one education entry.
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduation_date"`
}

// Project is one project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Certification is one certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Rating is the 1-10 resume score. The generator sometimes returns it as a
// numeric-looking string, so unmarshalling accepts both forms.
type Rating float64

// UnmarshalJSON accepts a JSON number or a numeric string.
func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	text := string(data)
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &ValidationError{Field: "resume_rating", Reason: "not a numeric value"}
		}
		text = strings.TrimSpace(s)
	}

	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return &ValidationError{Field: "resume_rating", Reason: "not a numeric value"}
	}
	*r = Rating(val)
	return nil
}

// Resume is a Record plus its store-assigned identity.
type Resume struct {
	ID         int64     `json:"id"`
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`
	Record
}

// Summary is the list-view projection of a stored resume.
type Summary struct {
	ID           int64     `json:"id"`
	FileName     string    `json:"file_name"`
	UploadedAt   time.Time `json:"uploaded_at"`
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	ResumeRating *Rating   `json:"resume_rating"`
}

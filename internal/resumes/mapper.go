package resumes

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Row is the flat persisted form of a Record. Collection fields are stored as
// their UTF-8 JSON text encodings ("[]" when empty); scalars map to nullable
// columns. ID and UploadedAt are assigned by the store, never the caller.
type Row struct {
	ID                 int64
	FileName           string
	UploadedAt         time.Time
	Name               *string
	Email              *string
	Phone              *string
	LinkedinURL        *string
	PortfolioURL       *string
	Summary            *string
	WorkExperience     string
	Education          string
	TechnicalSkills    string
	SoftSkills         string
	Projects           string
	Certifications     string
	ResumeRating       *Rating
	ImprovementAreas   *string
	UpskillSuggestions string
}

// ToRow flattens a Record for insertion. ID and UploadedAt are left zero for
// the store to assign.
func ToRow(rec Record, fileName string) (Row, error) {
	row := Row{
		FileName:         fileName,
		Name:             rec.Name,
		Email:            rec.Email,
		Phone:            rec.Phone,
		LinkedinURL:      rec.LinkedinURL,
		PortfolioURL:     rec.PortfolioURL,
		Summary:          rec.Summary,
		ResumeRating:     rec.ResumeRating,
		ImprovementAreas: rec.ImprovementAreas,
	}

	var err error
	if row.WorkExperience, err = encodeSeq("work_experience", ensureSlice(rec.WorkExperience)); err != nil {
		return Row{}, err
	}
	if row.Education, err = encodeSeq("education", ensureSlice(rec.Education)); err != nil {
		return Row{}, err
	}
	if row.TechnicalSkills, err = encodeSeq("technical_skills", ensureSlice(rec.TechnicalSkills)); err != nil {
		return Row{}, err
	}
	if row.SoftSkills, err = encodeSeq("soft_skills", ensureSlice(rec.SoftSkills)); err != nil {
		return Row{}, err
	}
	if row.Projects, err = encodeSeq("projects", ensureSlice(rec.Projects)); err != nil {
		return Row{}, err
	}
	if row.Certifications, err = encodeSeq("certifications", ensureSlice(rec.Certifications)); err != nil {
		return Row{}, err
	}
	if row.UpskillSuggestions, err = encodeSeq("upskill_suggestions", ensureSlice(rec.UpskillSuggestions)); err != nil {
		return Row{}, err
	}
	return row, nil
}

// FromRow rehydrates a stored row. Null or empty serialized columns decode to
// empty collections rather than failing.
func FromRow(row Row) (Resume, error) {
	rec := Record{
		Name:             row.Name,
		Email:            row.Email,
		Phone:            row.Phone,
		LinkedinURL:      row.LinkedinURL,
		PortfolioURL:     row.PortfolioURL,
		Summary:          row.Summary,
		ResumeRating:     row.ResumeRating,
		ImprovementAreas: row.ImprovementAreas,
	}

	if err := decodeSeq("work_experience", row.WorkExperience, &rec.WorkExperience); err != nil {
		return Resume{}, err
	}
	if err := decodeSeq("education", row.Education, &rec.Education); err != nil {
		return Resume{}, err
	}
	if err := decodeSeq("technical_skills", row.TechnicalSkills, &rec.TechnicalSkills); err != nil {
		return Resume{}, err
	}
	if err := decodeSeq("soft_skills", row.SoftSkills, &rec.SoftSkills); err != nil {
		return Resume{}, err
	}
	if err := decodeSeq("projects", row.Projects, &rec.Projects); err != nil {
		return Resume{}, err
	}
	if err := decodeSeq("certifications", row.Certifications, &rec.Certifications); err != nil {
		return Resume{}, err
	}
	if err := decodeSeq("upskill_suggestions", row.UpskillSuggestions, &rec.UpskillSuggestions); err != nil {
		return Resume{}, err
	}

	normalizeRecord(&rec)
	return Resume{
		ID:         row.ID,
		FileName:   row.FileName,
		UploadedAt: row.UploadedAt,
		Record:     rec,
	}, nil
}

func encodeSeq(column string, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", column, err)
	}
	return string(data), nil
}

func decodeSeq[T any](column, text string, out *[]T) error {
	if strings.TrimSpace(text) == "" {
		*out = []T{}
		return nil
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("decode %s: %w", column, err)
	}
	if *out == nil {
		*out = []T{}
	}
	return nil
}

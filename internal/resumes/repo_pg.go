package resumes

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Insert stores a new row. id and uploaded_at come back from the database.
func (r *PGRepo) Insert(ctx context.Context, row Row) (int64, time.Time, error) {
	const query = `
INSERT INTO resumes (
    file_name, name, email, phone, linkedin_url, portfolio_url, summary,
    work_experience, education, technical_skills, soft_skills, projects,
    certifications, resume_rating, improvement_areas, upskill_suggestions
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING id, uploaded_at`

	var id int64
	var uploadedAt time.Time
	err := r.DB.QueryRowContext(ctx, query,
		row.FileName,
		nullString(row.Name),
		nullString(row.Email),
		nullString(row.Phone),
		nullString(row.LinkedinURL),
		nullString(row.PortfolioURL),
		nullString(row.Summary),
		row.WorkExperience,
		row.Education,
		row.TechnicalSkills,
		row.SoftSkills,
		row.Projects,
		row.Certifications,
		nullRating(row.ResumeRating),
		nullString(row.ImprovementAreas),
		row.UpskillSuggestions,
	).Scan(&id, &uploadedAt)
	if err != nil {
		return 0, time.Time{}, err
	}
	return id, uploadedAt, nil
}

// ListSummaries returns list-view rows, newest upload first; ties broken by
// id descending.
func (r *PGRepo) ListSummaries(ctx context.Context) ([]Summary, error) {
	const query = `
SELECT id, file_name, uploaded_at, name, email, phone, resume_rating
FROM resumes
ORDER BY uploaded_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Summary, 0)
	for rows.Next() {
		var s Summary
		var name, email, phone sql.NullString
		var rating sql.NullFloat64
		if err := rows.Scan(&s.ID, &s.FileName, &s.UploadedAt, &name, &email, &phone, &rating); err != nil {
			return nil, err
		}
		s.Name = fromNullString(name)
		s.Email = fromNullString(email)
		s.Phone = fromNullString(phone)
		s.ResumeRating = fromNullRating(rating)
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID fetches a single stored row.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Row, error) {
	const query = `
SELECT id, file_name, uploaded_at, name, email, phone, linkedin_url, portfolio_url, summary,
       work_experience, education, technical_skills, soft_skills, projects,
       certifications, resume_rating, improvement_areas, upskill_suggestions
FROM resumes
WHERE id = $1
LIMIT 1`

	var row Row
	var name, email, phone, linkedin, portfolio, summary, improvement sql.NullString
	var workExp, education, techSkills, softSkills, projects, certifications, upskill sql.NullString
	var rating sql.NullFloat64
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&row.ID,
		&row.FileName,
		&row.UploadedAt,
		&name,
		&email,
		&phone,
		&linkedin,
		&portfolio,
		&summary,
		&workExp,
		&education,
		&techSkills,
		&softSkills,
		&projects,
		&certifications,
		&rating,
		&improvement,
		&upskill,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Row{}, ErrNotFound
		}
		return Row{}, err
	}

	row.Name = fromNullString(name)
	row.Email = fromNullString(email)
	row.Phone = fromNullString(phone)
	row.LinkedinURL = fromNullString(linkedin)
	row.PortfolioURL = fromNullString(portfolio)
	row.Summary = fromNullString(summary)
	row.ImprovementAreas = fromNullString(improvement)
	row.ResumeRating = fromNullRating(rating)
	row.WorkExperience = workExp.String
	row.Education = education.String
	row.TechnicalSkills = techSkills.String
	row.SoftSkills = softSkills.String
	row.Projects = projects.String
	row.Certifications = certifications.String
	row.UpskillSuggestions = upskill.String
	return row, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	val := s.String
	return &val
}

func nullRating(r *Rating) sql.NullFloat64 {
	if r == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: float64(*r), Valid: true}
}

func fromNullRating(f sql.NullFloat64) *Rating {
	if !f.Valid {
		return nil
	}
	val := Rating(f.Float64)
	return &val
}

var _ Repo = (*PGRepo)(nil)

package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoInsertReturnsStoreAssignedIdentity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	uploadedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	row, err := ToRow(fullRecord(), "jane.pdf")
	if err != nil {
		t.Fatalf("ToRow: %v", err)
	}

	mock.ExpectQuery("INSERT INTO resumes").
		WithArgs(
			"jane.pdf",
			sqlmock.AnyArg(), // name
			sqlmock.AnyArg(), // email
			sqlmock.AnyArg(), // phone
			sqlmock.AnyArg(), // linkedin_url
			sqlmock.AnyArg(), // portfolio_url
			sqlmock.AnyArg(), // summary
			row.WorkExperience,
			row.Education,
			row.TechnicalSkills,
			row.SoftSkills,
			row.Projects,
			row.Certifications,
			sqlmock.AnyArg(), // resume_rating
			sqlmock.AnyArg(), // improvement_areas
			row.UpskillSuggestions,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uploaded_at"}).AddRow(int64(7), uploadedAt))

	id, ts, err := repo.Insert(context.Background(), row)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
	if !ts.Equal(uploadedAt) {
		t.Fatalf("expected uploaded_at %v, got %v", uploadedAt, ts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListSummariesOrdersNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	t3 := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("ORDER BY uploaded_at DESC, id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_name", "uploaded_at", "name", "email", "phone", "resume_rating"}).
			AddRow(int64(3), "c.pdf", t3, "Carol", nil, nil, 9.0).
			AddRow(int64(2), "b.pdf", t2, nil, "bob@x.com", nil, nil))

	summaries, err := repo.ListSummaries(context.Background())
	if err != nil {
		t.Fatalf("ListSummaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].ID != 3 || summaries[1].ID != 2 {
		t.Fatalf("unexpected order: %+v", summaries)
	}
	if summaries[0].Name == nil || *summaries[0].Name != "Carol" {
		t.Fatalf("expected name Carol, got %v", summaries[0].Name)
	}
	if summaries[0].ResumeRating == nil || *summaries[0].ResumeRating != 9 {
		t.Fatalf("expected rating 9, got %v", summaries[0].ResumeRating)
	}
	if summaries[1].Name != nil {
		t.Fatal("expected nil name for null column")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, file_name, uploaded_at").
		WithArgs(int64(9999)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

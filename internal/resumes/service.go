package resumes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resume-analyzer/internal/extract"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/shared/metrics"
	"resume-analyzer/internal/shared/telemetry"
	"resume-analyzer/internal/shared/util"
)

// TextExtractor decodes an uploaded document into plain text. Injectable so
// tests can bypass real PDF decoding.
type TextExtractor interface {
	Text(ctx context.Context, data []byte) (string, error)
}

// PDFExtractor is the production TextExtractor.
type PDFExtractor struct{}

// Text extracts plain text from a PDF buffer.
func (PDFExtractor) Text(ctx context.Context, data []byte) (string, error) {
	return extract.Text(ctx, data)
}

// Service runs the analysis pipeline and fronts the resume store. Each call
// is an independent sequential unit of work; the only shared state is Repo.
type Service struct {
	Repo      Repo
	LLM       llm.Client
	Extractor TextExtractor
}

func (s *Service) extractor() TextExtractor {
	if s.Extractor != nil {
		return s.Extractor
	}
	return PDFExtractor{}
}

// Analyze runs extract -> prompt -> generate -> parse and returns the
// validated record. Nothing is persisted here; a failure at any stage aborts
// the run with a typed error.
func (s *Service) Analyze(ctx context.Context, pdfBytes []byte, fileName string) (Record, error) {
	runID := uuid.NewString()
	start := time.Now()
	metrics.IncResumeAnalyzed()

	text, err := s.extractor().Text(ctx, pdfBytes)
	if err != nil {
		metrics.IncStageFailure("extract")
		telemetry.Error("analysis.extract_failed", map[string]any{
			"run_id":    runID,
			"file_name": fileName,
			"error":     err.Error(),
		})
		return Record{}, &ExtractionError{Err: err}
	}

	prompt := llm.BuildExtractionPrompt(text)
	reply, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		metrics.IncStageFailure("generate")
		telemetry.Error("analysis.generate_failed", map[string]any{
			"run_id":    runID,
			"file_name": fileName,
			"error":     err.Error(),
		})
		return Record{}, &ServiceError{Err: err}
	}

	rec, err := ParseRecord(reply)
	if err != nil {
		metrics.IncStageFailure("parse")
		fields := map[string]any{
			"run_id":    runID,
			"file_name": fileName,
			"error":     err.Error(),
		}
		if pErr, ok := err.(*ParseError); ok {
			fields["raw_reply"] = pErr.Raw
		}
		telemetry.Error("analysis.parse_failed", fields)
		return Record{}, err
	}

	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.ObserveAnalysisDurationMs(durationMs)
	telemetry.Info("analysis.complete", map[string]any{
		"run_id":      runID,
		"file_name":   fileName,
		"text_len":    len(text),
		"duration_ms": durationMs,
	})
	return rec, nil
}

// Save flattens and inserts a record, returning the store-assigned id and
// upload timestamp.
func (s *Service) Save(ctx context.Context, rec Record, fileName string) (int64, time.Time, error) {
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return 0, time.Time{}, &ValidationError{Field: "file_name", Reason: err.Error()}
	}

	row, err := ToRow(rec, sanitized)
	if err != nil {
		return 0, time.Time{}, err
	}
	return s.Repo.Insert(ctx, row)
}

// AnalyzeAndSave is the upload flow: analyze, then persist. No row is written
// when any pipeline stage fails.
func (s *Service) AnalyzeAndSave(ctx context.Context, pdfBytes []byte, fileName string) (Resume, error) {
	rec, err := s.Analyze(ctx, pdfBytes, fileName)
	if err != nil {
		return Resume{}, err
	}

	id, uploadedAt, err := s.Save(ctx, rec, fileName)
	if err != nil {
		metrics.IncStageFailure("persist")
		return Resume{}, err
	}
	metrics.IncResumePersisted()

	return Resume{
		ID:         id,
		FileName:   fileName,
		UploadedAt: uploadedAt,
		Record:     rec,
	}, nil
}

// ListSummaries returns stored resume summaries, newest first.
func (s *Service) ListSummaries(ctx context.Context) ([]Summary, error) {
	return s.Repo.ListSummaries(ctx)
}

// GetByID rehydrates a stored resume.
func (s *Service) GetByID(ctx context.Context, id int64) (Resume, error) {
	row, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Resume{}, err
	}
	return FromRow(row)
}

package resumes

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the resume service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.uploadAndAnalyze)
	rg.GET("/resumes", h.listSummaries)
	rg.GET("/resumes/:id", h.getByID)
}

func (h *Handler) uploadAndAnalyze(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}
	if h.MaxUploadBytes > 0 && fileHeader.Size > h.MaxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds upload size limit", nil)
		return
	}
	if !isPDFUpload(fileHeader.Filename, fileHeader.Header.Get("Content-Type")) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF uploads are supported", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read uploaded file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read uploaded file", nil)
		return
	}

	resume, err := h.Svc.AnalyzeAndSave(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		h.respondPipelineError(c, err)
		return
	}

	c.Set("resumeId", resume.ID)
	respond.OK(c, resume)
}

func (h *Handler) listSummaries(c *gin.Context) {
	summaries, err := h.Svc.ListSummaries(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}
	respond.OK(c, summaries)
}

func (h *Handler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume id must be a positive integer", nil)
		return
	}

	resume, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		return
	}

	c.Set("resumeId", resume.ID)
	respond.OK(c, resume)
}

// respondPipelineError maps the pipeline taxonomy to HTTP statuses: an
// unreadable document is the client's problem, everything downstream of the
// generation service is an upstream failure.
func (h *Handler) respondPipelineError(c *gin.Context, err error) {
	var extractionErr *ExtractionError
	var serviceErr *ServiceError
	var parseErr *ParseError
	var validationErr *ValidationError

	switch {
	case errors.As(err, &extractionErr):
		respond.Error(c, http.StatusBadRequest, "extraction_error", "could not extract text from the uploaded PDF", nil)
	case errors.As(err, &serviceErr):
		respond.Error(c, http.StatusBadGateway, "service_error", "resume analysis service is unavailable", nil)
	case errors.As(err, &parseErr):
		respond.Error(c, http.StatusBadGateway, "parse_error", "analysis service returned an unreadable result", nil)
	case errors.As(err, &validationErr):
		if validationErr.Field == "file_name" {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
			return
		}
		respond.Error(c, http.StatusBadGateway, "validation_error", "analysis service returned a malformed record", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process resume", nil)
	}
}

func isPDFUpload(fileName, contentType string) bool {
	if strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return true
	}
	clean := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return clean == "application/pdf"
}

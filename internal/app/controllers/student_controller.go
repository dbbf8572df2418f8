package controllers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/app/models/dto"
	"github.com/qmexai/ramadandata/internal/app/services"
	"github.com/qmexai/ramadandata/internal/middleware"
	"github.com/qmexai/ramadandata/internal/pkg/apperrors"
	"github.com/qmexai/ramadandata/internal/pkg/report"
	"github.com/rs/zerolog"
)

// ReportSettings carries the branding and dialect of exported reports
type ReportSettings struct {
	Title     string
	Brand     string
	Year      int
	CSVStrict bool
}

// StudentController handles record CRUD and exports
type StudentController struct {
	studentService services.StudentService
	reports        ReportSettings
	now            func() time.Time
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, reports ReportSettings, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		reports:        reports,
		now:            time.Now,
		logger:         logger,
	}
}

// ListStudents lists records or downloads them as a report
// @Summary List records
// @Description Lists records newest first. Filters combine with AND. With download=pdf or download=csv the same result set is returned as an attachment.
// @Tags records
// @Produce json,application/pdf,text/csv
// @Param hostel_type query string false "Exact hostel"
// @Param roll_number query string false "Case-insensitive roll number substring"
// @Param year query string false "Exact year"
// @Param download query string false "Export format" Enums(pdf, csv)
// @Success 200 {array} models.Student "Matching records"
// @Failure 400 {object} dto.ErrorResponse "Unsupported download format"
// @Failure 401 {object} dto.ErrorResponse "No valid session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router / [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	var query dto.StudentQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	var format report.Format
	if query.Download != "" {
		var ok bool
		if format, ok = report.ParseFormat(query.Download); !ok {
			middleware.HandleAPIError(ctx, apperrors.ErrUnsupportedFormat)
			return
		}
	}

	students, err := c.studentService.ListStudents(ctx.Request.Context(), query.Filter())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list students")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if format == "" {
		ctx.JSON(http.StatusOK, students)
		return
	}
	c.writeReport(ctx, format, students)
}

// writeReport renders into memory first so a rendering failure can still
// produce a JSON error instead of a truncated attachment.
func (c *StudentController) writeReport(ctx *gin.Context, format report.Format, students []models.Student) {
	now := c.now()
	var buf bytes.Buffer
	var err error

	switch format {
	case report.FormatPDF:
		err = report.WritePDF(&buf, students, report.PDFOptions{
			Title:       c.reports.Title,
			Brand:       c.reports.Brand,
			Year:        c.reports.Year,
			GeneratedAt: now,
		})
	case report.FormatCSV:
		err = report.WriteCSV(&buf, students, report.CSVOptions{Strict: c.reports.CSVStrict})
	}
	if err != nil {
		c.logger.Error().Err(err).Str("format", string(format)).Msg("Failed to render report")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeReportFailed, "Failed to generate report"))
		return
	}

	c.logger.Info().Str("format", string(format)).Int("rows", len(students)).Msg("Report generated")
	ctx.Header("Content-Disposition", `attachment; filename="`+format.Filename(now)+`"`)
	ctx.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// GetStats returns the dashboard counters
// @Summary Record statistics
// @Tags records
// @Produce json
// @Param hostel_type query string false "Exact hostel"
// @Param roll_number query string false "Case-insensitive roll number substring"
// @Param year query string false "Exact year"
// @Success 200 {object} models.StudentStats "Counters over the matching records"
// @Failure 401 {object} dto.ErrorResponse "No valid session"
// @Router /stats [get]
func (c *StudentController) GetStats(ctx *gin.Context) {
	var query dto.StudentQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	stats, err := c.studentService.GetStats(ctx.Request.Context(), query.Filter())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to compute stats")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// CreateStudent stores a new record
// @Summary Create record
// @Tags records
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Record fields"
// @Success 201 {object} models.Student "Stored record"
// @Failure 400 {object} dto.ErrorResponse "Missing required field"
// @Failure 401 {object} dto.ErrorResponse "No valid session"
// @Router / [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create student payload")
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	var createdBy int64
	if session := middleware.GetSession(ctx); session != nil {
		createdBy = session.ID
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), req.ToModel(), createdBy)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create student")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, student)
}

// UpdateStudent overwrites a record
// @Summary Update record
// @Description Updating an id that does not exist changes nothing and echoes the submitted record.
// @Tags records
// @Accept json
// @Produce json
// @Param request body dto.UpdateStudentRequest true "Record fields and id"
// @Success 200 {object} models.Student "Updated record"
// @Failure 400 {object} dto.ErrorResponse "Missing field or invalid id"
// @Failure 401 {object} dto.ErrorResponse "No valid session"
// @Router / [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid update student payload")
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), req.ToModel())
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", req.ID).Msg("Failed to update student")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// DeleteStudent removes a record
// @Summary Delete record
// @Description Deleting an id that does not exist still succeeds.
// @Tags records
// @Accept json
// @Produce json
// @Param request body dto.DeleteStudentRequest true "Record id"
// @Success 200 {object} dto.SuccessResponse "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "No valid session"
// @Router / [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	var req dto.DeleteStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), req.ID); err != nil {
		c.logger.Error().Err(err).Int64("studentID", req.ID).Msg("Failed to delete student")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/pkg/apperrors"
	"github.com/qmexai/ramadandata/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// StudentService defines the interface for record operations
type StudentService interface {
	ListStudents(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	GetStats(ctx context.Context, filter models.StudentFilter) (*models.StudentStats, error)
	CreateStudent(ctx context.Context, student *models.Student, createdBy int64) (*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo StudentStore
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo StudentStore, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// normalizeStudent trims every field, turns blank optional fields into nil
// and reports the first missing required field.
func normalizeStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	student.Name = strings.TrimSpace(student.Name)
	student.CollegeType = strings.TrimSpace(student.CollegeType)
	student.RollNumber = strings.TrimSpace(student.RollNumber)
	student.State = strings.TrimSpace(student.State)
	student.Hostel = helpers.NullableString(student.Hostel)
	student.Year = helpers.NullableString(student.Year)

	required := []struct {
		field string
		value string
	}{
		{"name", student.Name},
		{"college_type", student.CollegeType},
		{"roll_number", student.RollNumber},
		{"state", student.State},
	}
	for _, r := range required {
		if r.value == "" {
			return apperrors.NewValidationError(r.field, "missing required field: "+r.field)
		}
	}
	return nil
}

func normalizeFilter(filter models.StudentFilter) models.StudentFilter {
	return models.StudentFilter{
		Hostel:     strings.TrimSpace(filter.Hostel),
		RollNumber: strings.TrimSpace(filter.RollNumber),
		Year:       strings.TrimSpace(filter.Year),
	}
}

// ListStudents returns the records matching filter, newest first
func (s *studentServiceImpl) ListStudents(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	students, err := s.studentRepo.List(ctx, normalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

// GetStats aggregates the records matching filter
func (s *studentServiceImpl) GetStats(ctx context.Context, filter models.StudentFilter) (*models.StudentStats, error) {
	stats, err := s.studentRepo.Stats(ctx, normalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("error computing stats: %w", err)
	}
	return stats, nil
}

// CreateStudent validates and stores a new record attributed to createdBy
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student, createdBy int64) (*models.Student, error) {
	if err := normalizeStudent(student); err != nil {
		return nil, err
	}

	student.ID = 0
	student.CreatedBy = nil
	if createdBy > 0 {
		student.CreatedBy = &createdBy
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Int64("studentID", student.ID).Int64("createdBy", createdBy).Msg("Student record created")
	return student, nil
}

// UpdateStudent overwrites the record identified by student.ID. An absent
// id changes nothing and echoes the submitted record.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student == nil || student.ID <= 0 {
		return nil, apperrors.ErrInvalidStudentID
	}
	if err := normalizeStudent(student); err != nil {
		return nil, err
	}

	updated, err := s.studentRepo.Update(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	s.logger.Info().Int64("studentID", updated.ID).Msg("Student record updated")
	return updated, nil
}

// DeleteStudent removes the record with id; an absent id is not an error
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrInvalidStudentID
	}
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	s.logger.Info().Int64("studentID", id).Msg("Student record deleted")
	return nil
}

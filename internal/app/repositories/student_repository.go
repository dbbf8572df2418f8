package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/pkg/logger"
)

var studentColumns = []string{
	"id", "name", "college_type", "roll_number", "state", "hostel", "year", "created_at", "created_by",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// StudentRepository handles student record database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// applyFilter narrows a query by the non-empty filter fields. Hostel and year
// match exactly; roll number is a case-insensitive substring match.
func applyFilter(query squirrel.SelectBuilder, filter models.StudentFilter) squirrel.SelectBuilder {
	if filter.Hostel != "" {
		query = query.Where(squirrel.Eq{"hostel": filter.Hostel})
	}
	if filter.RollNumber != "" {
		query = query.Where(squirrel.ILike{"roll_number": "%" + likeEscaper.Replace(filter.RollNumber) + "%"})
	}
	if filter.Year != "" {
		query = query.Where(squirrel.Eq{"year": filter.Year})
	}
	return query
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.CollegeType,
		&student.RollNumber,
		&student.State,
		&student.Hostel,
		&student.Year,
		&student.CreatedAt,
		&student.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func (r *StudentRepository) listQuery(filter models.StudentFilter) squirrel.SelectBuilder {
	return applyFilter(r.sb.Select(studentColumns...).From("students"), filter).OrderBy("id DESC")
}

// List returns the records matching filter, newest first.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	sql, args, err := r.listQuery(filter).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, *student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Create inserts a record and fills in its generated id and timestamp.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("name", "college_type", "roll_number", "state", "hostel", "year", "created_by").
		Values(student.Name, student.CollegeType, student.RollNumber, student.State, student.Hostel, student.Year, student.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// Update overwrites the editable fields of the record with student.ID and
// returns the stored row. When no row has that id nothing is written and
// student is returned as submitted.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) (*models.Student, error) {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"name":         student.Name,
			"college_type": student.CollegeType,
			"roll_number":  student.RollNumber,
			"state":        student.State,
			"hostel":       student.Hostel,
			"year":         student.Year,
		}).
		Where(squirrel.Eq{"id": student.ID}).
		Suffix("RETURNING " + strings.Join(studentColumns, ", ")).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	updated, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Debug().Int64("studentID", student.ID).Msg("Update matched no student")
			return student, nil
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return updated, nil
}

// Delete removes the record with id. Deleting an absent id is not an error.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		logger.Debug().Int64("studentID", id).Msg("Delete matched no student")
	}
	return nil
}

// Stats aggregates the records matching filter.
func (r *StudentRepository) Stats(ctx context.Context, filter models.StudentFilter) (*models.StudentStats, error) {
	query := r.sb.Select("COUNT(*)", "COUNT(DISTINCT state)", "COUNT(DISTINCT college_type)").From("students")
	sql, args, err := applyFilter(query, filter).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student stats SQL")
		return nil, fmt.Errorf("failed to build student stats query: %w", err)
	}

	stats := &models.StudentStats{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&stats.TotalRecords, &stats.ActiveStates, &stats.Colleges); err != nil {
		logger.Error().Err(err).Msg("Error executing student stats query")
		return nil, fmt.Errorf("error computing student stats: %w", err)
	}
	return stats, nil
}

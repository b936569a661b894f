package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/db"
	"github.com/emre/classpulse/internal/pkg/apperrors"
	"github.com/emre/classpulse/internal/pkg/dberrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// registrationLockID serializes registrations so exactly one student can win
// the first-admin bootstrap on an empty directory.
const registrationLockID = 4217

const studentColumns = `id, student_id, name, class_section, email, password, role, status, created_at, updated_at`

// StudentRepository defines the interface for student directory operations
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	StudentIDTaken(ctx context.Context, studentID string, excludeID int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type studentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) StudentRepository {
	return &studentRepository{db: db}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID, &student.StudentID, &student.Name, &student.ClassSection,
		&student.Email, &student.Password, &student.Role, &student.Status,
		&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create inserts a new student. The very first student in the directory is
// promoted to admin inside the same transaction; an advisory lock closes the
// check-then-act window between the count and the insert.
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, registrationLockID); err != nil {
			return fmt.Errorf("failed to acquire registration lock: %w", err)
		}

		var count int64
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
			return fmt.Errorf("failed to count students: %w", err)
		}
		if count == 0 {
			student.Role = models.RoleAdmin
		}

		err := tx.QueryRow(ctx, `
		INSERT INTO students (student_id, name, class_section, email, password, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
			student.StudentID, student.Name, student.ClassSection, student.Email,
			student.Password, student.Role, student.Status).
			Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
				return apperrors.NewConflictError(apperrors.ErrEmailAlreadyExists, "email")
			}
			if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
				return apperrors.NewConflictError(apperrors.ErrStudentIDAlreadyExists, "studentId")
			}
			return fmt.Errorf("error creating student: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a student by row ID
func (r *studentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error fetching student: %w", err)
	}
	return student, nil
}

// GetByEmail retrieves a student by email
func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error fetching student by email: %w", err)
	}
	return student, nil
}

// List retrieves all students ordered by registration time
func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+studentColumns+`
		FROM students
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, *student)
	}
	return students, rows.Err()
}

// Update persists the mutable fields of a student
func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET student_id = $1, name = $2, class_section = $3, password = $4,
		    role = $5, status = $6, updated_at = NOW()
		WHERE id = $7`,
		student.StudentID, student.Name, student.ClassSection, student.Password,
		student.Role, student.Status, student.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			return apperrors.NewConflictError(apperrors.ErrStudentIDAlreadyExists, "studentId")
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student; points and notifications cascade at the schema level
func (r *studentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// StudentIDTaken checks whether another student already holds the given
// school-assigned student number.
func (r *studentRepository) StudentIDTaken(ctx context.Context, studentID string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1 AND id <> $2)`,
		studentID, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student ID: %w", err)
	}
	return exists, nil
}

// Count returns the number of registered students
func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/db"
	"github.com/emre/classpulse/internal/pkg/apperrors"
	"github.com/emre/classpulse/internal/pkg/dberrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PointRepository defines the interface for ledger operations and the
// read-only aggregations derived from it.
type PointRepository interface {
	CreateWithNotification(ctx context.Context, point *models.EngagementPoint, note *models.Notification) error
	GetByID(ctx context.Context, id int64) (*models.EngagementPoint, error)
	ListByStudent(ctx context.Context, studentID int64, filters dto.HistoryFilters) ([]models.EngagementPoint, error)
	Update(ctx context.Context, point *models.EngagementPoint) error
	Delete(ctx context.Context, id int64) error

	// Aggregations
	TotalsByStudent(ctx context.Context) ([]models.StudentTotal, error)
	TotalsBySection(ctx context.Context) ([]models.SectionTotal, error)
	TotalsByDay(ctx context.Context) ([]models.BucketTotal, error)
	TotalsByMonth(ctx context.Context) ([]models.BucketTotal, error)
	TotalsByWeek(ctx context.Context) ([]models.BucketTotal, error)
	CountAndSum(ctx context.Context) (count int64, sum int64, err error)
}

type pointRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPointRepository creates a new PointRepository
func NewPointRepository(db *pgxpool.Pool) PointRepository {
	return &pointRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// mapPointWriteError translates schema-level violations into the
// authoritative persistence-time validation errors.
func mapPointWriteError(err error) error {
	if dberrors.IsCheckViolation(err, "engagement_points_points_check") {
		return apperrors.NewValidationError(fmt.Sprintf("points must be between %d and %d", models.MinPoints, models.MaxPoints))
	}
	if dberrors.IsCheckViolation(err, "engagement_points_reason_check") {
		return apperrors.NewValidationError(fmt.Sprintf("reason must be at least %d characters", models.MinReasonLength))
	}
	return err
}

// CreateWithNotification inserts the ledger entry and its notification in one
// transaction so the pair either fully lands or fully fails.
func (r *pointRepository) CreateWithNotification(ctx context.Context, point *models.EngagementPoint, note *models.Notification) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
		INSERT INTO engagement_points (student_id, points, reason, section)
		VALUES ($1, $2, $3, $4)
		RETURNING id, date`,
			point.StudentID, point.Points, point.Reason, point.Section).
			Scan(&point.ID, &point.Date)
		if err != nil {
			return mapPointWriteError(fmt.Errorf("error creating point entry: %w", err))
		}

		note.StudentID = point.StudentID
		err = tx.QueryRow(ctx, `
		INSERT INTO notifications (student_id, message)
		VALUES ($1, $2)
		RETURNING id, read, created_at`,
			note.StudentID, note.Message).
			Scan(&note.ID, &note.Read, &note.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating notification: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a single ledger entry
func (r *pointRepository) GetByID(ctx context.Context, id int64) (*models.EngagementPoint, error) {
	point := &models.EngagementPoint{}
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, points, reason, section, date
		FROM engagement_points
		WHERE id = $1`, id).
		Scan(&point.ID, &point.StudentID, &point.Points, &point.Reason, &point.Section, &point.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPointNotFound
		}
		return nil, fmt.Errorf("error fetching point entry: %w", err)
	}
	return point, nil
}

// ListByStudent returns the student's entries newest first with the joined
// owner summary. Zero-valued filter fields are ignored.
func (r *pointRepository) ListByStudent(ctx context.Context, studentID int64, filters dto.HistoryFilters) ([]models.EngagementPoint, error) {
	query := r.sb.Select(
		"p.id", "p.student_id", "p.points", "p.reason", "p.section", "p.date",
		"s.name", "s.student_id AS owner_student_id", "s.class_section",
	).
		From("engagement_points p").
		Join("students s ON p.student_id = s.id").
		Where(squirrel.Eq{"p.student_id": studentID}).
		OrderBy("p.date DESC")

	if filters.Section != "" {
		query = query.Where(squirrel.Eq{"p.section": filters.Section})
	}
	if !filters.From.IsZero() {
		query = query.Where(squirrel.GtOrEq{"p.date": filters.From})
	}
	if !filters.To.IsZero() {
		query = query.Where(squirrel.LtOrEq{"p.date": filters.To})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building history query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing point entries: %w", err)
	}
	defer rows.Close()

	var points []models.EngagementPoint
	for rows.Next() {
		var p models.EngagementPoint
		var owner models.StudentSummary
		err := rows.Scan(&p.ID, &p.StudentID, &p.Points, &p.Reason, &p.Section, &p.Date,
			&owner.Name, &owner.StudentID, &owner.ClassSection)
		if err != nil {
			return nil, fmt.Errorf("error scanning point entry: %w", err)
		}
		p.Student = &owner
		points = append(points, p)
	}
	return points, rows.Err()
}

// Update re-persists points and reason of an existing entry
func (r *pointRepository) Update(ctx context.Context, point *models.EngagementPoint) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE engagement_points
		SET points = $1, reason = $2
		WHERE id = $3`,
		point.Points, point.Reason, point.ID)
	if err != nil {
		return mapPointWriteError(fmt.Errorf("error updating point entry: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPointNotFound
	}
	return nil
}

// Delete removes a ledger entry
func (r *pointRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM engagement_points WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting point entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPointNotFound
	}
	return nil
}

// TotalsByStudent sums the ledger per student joined with the owner record,
// ordered by total descending. Rank assignment happens in the service.
func (r *pointRepository) TotalsByStudent(ctx context.Context) ([]models.StudentTotal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.student_id, s.name, s.class_section, s.email, s.role, s.status,
		       s.created_at, s.updated_at, SUM(p.points) AS total_points
		FROM engagement_points p
		JOIN students s ON p.student_id = s.id
		GROUP BY s.id
		ORDER BY total_points DESC, s.id`)
	if err != nil {
		return nil, fmt.Errorf("error aggregating student totals: %w", err)
	}
	defer rows.Close()

	var totals []models.StudentTotal
	for rows.Next() {
		var t models.StudentTotal
		err := rows.Scan(&t.Student.ID, &t.Student.StudentID, &t.Student.Name,
			&t.Student.ClassSection, &t.Student.Email, &t.Student.Role, &t.Student.Status,
			&t.Student.CreatedAt, &t.Student.UpdatedAt, &t.TotalPoints)
		if err != nil {
			return nil, fmt.Errorf("error scanning student total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// TotalsBySection sums the ledger per owner class section
func (r *pointRepository) TotalsBySection(ctx context.Context) ([]models.SectionTotal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.class_section, SUM(p.points) AS total_points
		FROM engagement_points p
		JOIN students s ON p.student_id = s.id
		GROUP BY s.class_section`)
	if err != nil {
		return nil, fmt.Errorf("error aggregating section totals: %w", err)
	}
	defer rows.Close()

	var totals []models.SectionTotal
	for rows.Next() {
		var t models.SectionTotal
		if err := rows.Scan(&t.Section, &t.TotalPoints); err != nil {
			return nil, fmt.Errorf("error scanning section total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func (r *pointRepository) totalsByBucket(ctx context.Context, format string) ([]models.BucketTotal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(date, $1) AS bucket, SUM(points) AS total_points
		FROM engagement_points
		GROUP BY bucket
		ORDER BY bucket`, format)
	if err != nil {
		return nil, fmt.Errorf("error aggregating bucket totals: %w", err)
	}
	defer rows.Close()

	var totals []models.BucketTotal
	for rows.Next() {
		var t models.BucketTotal
		if err := rows.Scan(&t.Bucket, &t.Points); err != nil {
			return nil, fmt.Errorf("error scanning bucket total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// TotalsByDay groups the ledger by calendar day (YYYY-MM-DD), ascending
func (r *pointRepository) TotalsByDay(ctx context.Context) ([]models.BucketTotal, error) {
	return r.totalsByBucket(ctx, "YYYY-MM-DD")
}

// TotalsByMonth groups the ledger by calendar month (YYYY-MM), ascending
func (r *pointRepository) TotalsByMonth(ctx context.Context) ([]models.BucketTotal, error) {
	return r.totalsByBucket(ctx, "YYYY-MM")
}

// TotalsByWeek groups the ledger by ISO week of year, ascending
func (r *pointRepository) TotalsByWeek(ctx context.Context) ([]models.BucketTotal, error) {
	return r.totalsByBucket(ctx, `IYYY-"W"IW`)
}

// CountAndSum returns the record count and overall point sum of the ledger
func (r *pointRepository) CountAndSum(ctx context.Context) (int64, int64, error) {
	var count, sum int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(points), 0) FROM engagement_points`).
		Scan(&count, &sum)
	if err != nil {
		return 0, 0, fmt.Errorf("error summarizing ledger: %w", err)
	}
	return count, sum, nil
}

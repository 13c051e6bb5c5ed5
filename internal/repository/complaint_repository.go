package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hallkeeper/hall-service/internal/domain"
)

// ComplaintRepository stores student complaints.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	ListNewestFirst(ctx context.Context) ([]domain.Complaint, error)
	Resolve(ctx context.Context, id string) (*domain.Complaint, error)
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository builds repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (user_id, student_id, body, status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		complaint.UserID,
		complaint.StudentID,
		complaint.Body,
		complaint.Status,
	).Scan(&complaint.ID, &complaint.CreatedAt)
}

func (r *complaintRepository) ListNewestFirst(ctx context.Context) ([]domain.Complaint, error) {
	const query = `
        SELECT id, user_id, student_id, body, status, created_at
        FROM complaints ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Complaint{}
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *complaint)
	}
	return result, rows.Err()
}

func (r *complaintRepository) Resolve(ctx context.Context, id string) (*domain.Complaint, error) {
	const query = `
        UPDATE complaints SET status=$1
        WHERE id=$2
        RETURNING id, user_id, student_id, body, status, created_at`
	return scanComplaint(r.pool.QueryRow(ctx, query, domain.ComplaintStatusResolved, id))
}

func scanComplaint(row pgx.Row) (*domain.Complaint, error) {
	var complaint domain.Complaint
	if err := row.Scan(
		&complaint.ID,
		&complaint.UserID,
		&complaint.StudentID,
		&complaint.Body,
		&complaint.Status,
		&complaint.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &complaint, nil
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hallkeeper/hall-service/internal/domain"
)

// NoticeRepository persists hall announcements. Notices are never updated.
type NoticeRepository interface {
	Create(ctx context.Context, notice *domain.Notice) error
	ListNewestFirst(ctx context.Context) ([]domain.Notice, error)
}

type noticeRepository struct {
	pool *pgxpool.Pool
}

// NewNoticeRepository constructs repository.
func NewNoticeRepository(pool *pgxpool.Pool) NoticeRepository {
	return &noticeRepository{pool: pool}
}

func (r *noticeRepository) Create(ctx context.Context, notice *domain.Notice) error {
	const query = `
        INSERT INTO notices (title, content)
        VALUES ($1,$2)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, notice.Title, notice.Content).Scan(&notice.ID, &notice.CreatedAt)
}

func (r *noticeRepository) ListNewestFirst(ctx context.Context) ([]domain.Notice, error) {
	const query = `
        SELECT id, title, content, created_at
        FROM notices ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Notice{}
	for rows.Next() {
		var notice domain.Notice
		if err := rows.Scan(&notice.ID, &notice.Title, &notice.Content, &notice.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, notice)
	}
	return result, rows.Err()
}

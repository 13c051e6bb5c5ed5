package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hallkeeper/hall-service/internal/domain"
)

// MealRepository stores per-account, per-day meal selections.
type MealRepository interface {
	// Upsert replaces the record for (UserID, Date) wholesale, creating it when absent.
	Upsert(ctx context.Context, meal *domain.MealRecord) error
	ListByUserInRange(ctx context.Context, userID, from, to string) ([]domain.MealRecord, error)
	ListByUserNewestFirst(ctx context.Context, userID string) ([]domain.MealRecord, error)
	ListByDate(ctx context.Context, date string) ([]domain.MealRecord, error)
	// CountsByUserInRange tallies selections per account within [from, to].
	// Accounts without records are absent from the result.
	CountsByUserInRange(ctx context.Context, userIDs []string, from, to string) (map[string]domain.MealCounts, error)
}

const mealColumns = `id, user_id, student_id, to_char(meal_date, 'YYYY-MM-DD'), breakfast, lunch, dinner, created_at, updated_at`

type mealRepository struct {
	pool *pgxpool.Pool
}

// NewMealRepository instantiates repository.
func NewMealRepository(pool *pgxpool.Pool) MealRepository {
	return &mealRepository{pool: pool}
}

func (r *mealRepository) Upsert(ctx context.Context, meal *domain.MealRecord) error {
	const query = `
        INSERT INTO meal_records (user_id, student_id, meal_date, breakfast, lunch, dinner)
        VALUES ($1, $2, $3::date, $4, $5, $6)
        ON CONFLICT (user_id, meal_date) DO UPDATE
            SET student_id=EXCLUDED.student_id, breakfast=EXCLUDED.breakfast,
                lunch=EXCLUDED.lunch, dinner=EXCLUDED.dinner, updated_at=NOW()
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		meal.UserID,
		meal.StudentID,
		meal.Date,
		meal.Breakfast,
		meal.Lunch,
		meal.Dinner,
	).Scan(&meal.ID, &meal.CreatedAt, &meal.UpdatedAt)
}

func (r *mealRepository) ListByUserInRange(ctx context.Context, userID, from, to string) ([]domain.MealRecord, error) {
	query := `SELECT ` + mealColumns + `
        FROM meal_records WHERE user_id=$1 AND meal_date BETWEEN $2::date AND $3::date`
	return r.list(ctx, query, userID, from, to)
}

func (r *mealRepository) ListByUserNewestFirst(ctx context.Context, userID string) ([]domain.MealRecord, error) {
	query := `SELECT ` + mealColumns + `
        FROM meal_records WHERE user_id=$1 ORDER BY meal_date DESC`
	return r.list(ctx, query, userID)
}

func (r *mealRepository) ListByDate(ctx context.Context, date string) ([]domain.MealRecord, error) {
	query := `SELECT ` + mealColumns + `
        FROM meal_records WHERE meal_date=$1::date ORDER BY student_id ASC`
	return r.list(ctx, query, date)
}

func (r *mealRepository) CountsByUserInRange(ctx context.Context, userIDs []string, from, to string) (map[string]domain.MealCounts, error) {
	result := make(map[string]domain.MealCounts, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	const query = `
        SELECT user_id,
               COUNT(*) FILTER (WHERE breakfast),
               COUNT(*) FILTER (WHERE lunch),
               COUNT(*) FILTER (WHERE dinner)
        FROM meal_records
        WHERE user_id = ANY($1::uuid[]) AND meal_date BETWEEN $2::date AND $3::date
        GROUP BY user_id`

	rows, err := r.pool.Query(ctx, query, userIDs, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userID                   string
			breakfast, lunch, dinner int64
		)
		if err := rows.Scan(&userID, &breakfast, &lunch, &dinner); err != nil {
			return nil, err
		}
		result[userID] = domain.MealCounts{Breakfast: int(breakfast), Lunch: int(lunch), Dinner: int(dinner)}
	}
	return result, rows.Err()
}

func (r *mealRepository) list(ctx context.Context, query string, args ...any) ([]domain.MealRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMeals(rows)
}

func scanMeals(rows pgx.Rows) ([]domain.MealRecord, error) {
	result := []domain.MealRecord{}
	for rows.Next() {
		var meal domain.MealRecord
		if err := rows.Scan(
			&meal.ID,
			&meal.UserID,
			&meal.StudentID,
			&meal.Date,
			&meal.Breakfast,
			&meal.Lunch,
			&meal.Dinner,
			&meal.CreatedAt,
			&meal.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, meal)
	}
	return result, rows.Err()
}

package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hallkeeper/hall-service/internal/domain"
)

// AccountRepository defines persistence access for accounts and their seat lifecycle.
// Seat transitions are single-statement updates; none of them checks the prior state.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	ListStudentsByRequestTime(ctx context.Context) ([]domain.Account, error)
	MarkSeatRequested(ctx context.Context, id string, at time.Time) (*domain.Account, error)
	AssignSeat(ctx context.Context, id, seatNumber string) (*domain.Account, error)
	ConfirmPayment(ctx context.Context, id string, at time.Time) (*domain.Account, error)
}

const accountColumns = `id, student_id, email, dob, password_hash, role, seat_status, seat_number,
               request_timestamp, payment_timestamp, created_at, updated_at`

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (student_id, email, dob, password_hash, role, seat_status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		account.StudentID,
		account.Email,
		account.DOB,
		account.PasswordHash,
		account.Role,
		account.SeatStatus,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id=$1`
	return scanAccount(r.pool.QueryRow(ctx, query, id))
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email=$1`
	return scanAccount(r.pool.QueryRow(ctx, query, email))
}

func (r *accountRepository) ListStudentsByRequestTime(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + `
        FROM accounts WHERE role=$1
        ORDER BY request_timestamp ASC NULLS LAST, created_at ASC`

	rows, err := r.pool.Query(ctx, query, domain.RoleStudent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *account)
	}
	return result, rows.Err()
}

func (r *accountRepository) MarkSeatRequested(ctx context.Context, id string, at time.Time) (*domain.Account, error) {
	query := `
        UPDATE accounts SET seat_status=$1, request_timestamp=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING ` + accountColumns
	return scanAccount(r.pool.QueryRow(ctx, query, domain.SeatStatusPending, at, id))
}

func (r *accountRepository) AssignSeat(ctx context.Context, id, seatNumber string) (*domain.Account, error) {
	query := `
        UPDATE accounts SET seat_status=$1, seat_number=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING ` + accountColumns
	return scanAccount(r.pool.QueryRow(ctx, query, domain.SeatStatusPaymentPending, seatNumber, id))
}

func (r *accountRepository) ConfirmPayment(ctx context.Context, id string, at time.Time) (*domain.Account, error) {
	query := `
        UPDATE accounts SET seat_status=$1, payment_timestamp=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING ` + accountColumns
	return scanAccount(r.pool.QueryRow(ctx, query, domain.SeatStatusApproved, at, id))
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	if err := row.Scan(
		&account.ID,
		&account.StudentID,
		&account.Email,
		&account.DOB,
		&account.PasswordHash,
		&account.Role,
		&account.SeatStatus,
		&account.SeatNumber,
		&account.RequestTimestamp,
		&account.PaymentTimestamp,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

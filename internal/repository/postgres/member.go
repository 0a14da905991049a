package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
)

const memberColumns = `id, first_name, last_name, email, phone, instagram,
	membership_type, membership_status, payment_status, payment_amount, payment_date,
	start_date, expiry_date, total_bookings, discount_eligible, created_at, updated_at`

type MemberRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMemberRepo(db *dbpg.DB) *MemberRepository {
	return &MemberRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (` + memberColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		m.ID, m.FirstName, m.LastName, m.Email, m.Phone, m.Instagram,
		m.MembershipType, m.MembershipStatus, m.PaymentStatus, m.PaymentAmount, m.PaymentDate,
		m.StartDate, m.ExpiryDate, m.TotalBookings, m.DiscountEligible, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

func (r *MemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	query := `SELECT ` + memberColumns + `
			  FROM members
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var res []*domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + `
			  FROM members
			  WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + `
			  FROM members
			  WHERE email = $1
			  ORDER BY created_at
			  LIMIT 1`
	return r.getOne(ctx, query, email)
}

func (r *MemberRepository) Update(ctx context.Context, m *domain.Member) error {
	query := `UPDATE members
			  SET first_name = $2, last_name = $3, email = $4, phone = $5, instagram = $6,
			      membership_type = $7, membership_status = $8, payment_status = $9,
			      payment_amount = $10, payment_date = $11, start_date = $12, expiry_date = $13,
			      total_bookings = $14, discount_eligible = $15, updated_at = $16
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		m.ID, m.FirstName, m.LastName, m.Email, m.Phone, m.Instagram,
		m.MembershipType, m.MembershipStatus, m.PaymentStatus,
		m.PaymentAmount, m.PaymentDate, m.StartDate, m.ExpiryDate,
		m.TotalBookings, m.DiscountEligible, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update member: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update member rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepository) UpdateStatus(ctx context.Context, id string, status domain.MembershipStatus) (*domain.Member, error) {
	query := `UPDATE members
			  SET membership_status = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + memberColumns
	return r.getOne(ctx, query, id, status)
}

func (r *MemberRepository) Renew(ctx context.Context, id string, months int) (*domain.Member, error) {
	// Single statement so the extension stays monotonic under concurrent calls.
	query := `UPDATE members
			  SET expiry_date = expiry_date + make_interval(months => $2),
			      membership_status = $3,
			      updated_at = now()
			  WHERE id = $1
			  RETURNING ` + memberColumns
	return r.getOne(ctx, query, id, months, domain.MembershipStatusActive)
}

func (r *MemberRepository) ExpireLapsed(ctx context.Context, now time.Time) ([]*domain.Member, error) {
	query := `UPDATE members
			  SET membership_status = $2, updated_at = $3
			  WHERE membership_status = $1 AND expiry_date < $3
			  RETURNING ` + memberColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		domain.MembershipStatusActive, domain.MembershipStatusExpired, now,
	)
	if err != nil {
		return nil, fmt.Errorf("expire lapsed members: %w", err)
	}
	defer rows.Close()

	var res []*domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func (r *MemberRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Member, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query member: %w", err)
	}

	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

func scanMember(row rowScanner) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.Instagram,
		&m.MembershipType, &m.MembershipStatus, &m.PaymentStatus, &m.PaymentAmount, &m.PaymentDate,
		&m.StartDate, &m.ExpiryDate, &m.TotalBookings, &m.DiscountEligible, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan member: %w", err)
	}
	return &m, nil
}

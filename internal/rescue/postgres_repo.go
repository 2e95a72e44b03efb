package rescue

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Create(ctx context.Context, res *Rescue) error {
	const query = `
	INSERT INTO rescues (book_id, requester_id, status)
	VALUES ($1, $2, $3)
	RETURNING id, created_at
	`
	if res.Status == "" {
		res.Status = StatusPending
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, res.BookID, res.RequesterID, res.Status).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return ErrAlreadyRequested
			case pgerrcode.ForeignKeyViolation:
				return ErrBookNotFound
			}
		}
		return err
	}
	return nil
}

const selectRescues = `SELECT id, book_id, requester_id, status, created_at FROM rescues`

func (r *PostgresRepo) List(ctx context.Context) ([]Rescue, error) {
	return r.list(ctx, selectRescues+` ORDER BY created_at`)
}

func (r *PostgresRepo) ListByBook(ctx context.Context, bookID string) ([]Rescue, error) {
	return r.list(ctx, selectRescues+` WHERE book_id = $1 ORDER BY created_at`, bookID)
}

func (r *PostgresRepo) ListByRequester(ctx context.Context, requesterID string) ([]Rescue, error) {
	return r.list(ctx, selectRescues+` WHERE requester_id = $1 ORDER BY created_at DESC`, requesterID)
}

func (r *PostgresRepo) list(ctx context.Context, query string, args ...any) ([]Rescue, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rescues []Rescue
	for rows.Next() {
		var res Rescue
		if err := rows.Scan(&res.ID, &res.BookID, &res.RequesterID, &res.Status, &res.CreatedAt); err != nil {
			return nil, err
		}
		rescues = append(rescues, res)
	}
	return rescues, rows.Err()
}

func (r *PostgresRepo) ExistsForBook(ctx context.Context, bookID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM rescues WHERE book_id = $1)`
	var exists bool
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, bookID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepo) ExistsForBookAndUser(ctx context.Context, bookID, userID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM rescues WHERE book_id = $1 AND requester_id = $2)`
	var exists bool
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, bookID, userID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepo) BookOwner(ctx context.Context, bookID string) (string, error) {
	const query = `SELECT owner_id FROM books WHERE id = $1`
	var owner string
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, query, bookID).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrBookNotFound
		}
		return "", err
	}
	return owner, nil
}

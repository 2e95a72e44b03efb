package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = `
	id, isbn, title, synopsis, author, owner_id, edition, language,
	can_fetch, wants_to_receive, cover_key, image_keys, state_id,
	latitude, longitude, created_at, updated_at`

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

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.ISBN, &b.Title, &b.Synopsis, &b.Author, &b.OwnerID, &b.Edition, &b.Language,
		&b.CanFetch, &b.WantsToReceive, &b.CoverKey, &b.ImageKeys, &b.StateID,
		&b.Latitude, &b.Longitude, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// Create inserts the book and its genre links in one transaction.
func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const insertBook = `
		INSERT INTO books (isbn, title, synopsis, author, owner_id, edition, language,
		                   can_fetch, wants_to_receive, cover_key, image_keys, state_id,
		                   latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`
	const linkGenres = `
		INSERT INTO book_genres (book_id, genre_id)
		SELECT $1::uuid, unnest($2::uuid[])
		ON CONFLICT DO NOTHING`

	if b.ImageKeys == nil {
		b.ImageKeys = []string{}
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := pgx.BeginFunc(timeoutCtx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(timeoutCtx, insertBook,
			b.ISBN, b.Title, b.Synopsis, b.Author, b.OwnerID, b.Edition, b.Language,
			b.CanFetch, b.WantsToReceive, b.CoverKey, b.ImageKeys, b.StateID,
			b.Latitude, b.Longitude,
		).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return err
		}
		if len(b.GenreIDs) == 0 {
			return nil
		}
		_, err := tx.Exec(timeoutCtx, linkGenres, b.ID, b.GenreIDs)
		return err
	})
	if isForeignKeyViolation(err) {
		return ErrInvalidReference
	}
	return err
}

func (r *PostgresRepo) Update(ctx context.Context, b *Book) error {
	const query = `
		UPDATE books SET
			isbn = $2, title = $3, synopsis = $4, author = $5, edition = $6, language = $7,
			can_fetch = $8, wants_to_receive = $9, cover_key = $10, image_keys = $11,
			state_id = $12, latitude = $13, longitude = $14, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		b.ID, b.ISBN, b.Title, b.Synopsis, b.Author, b.Edition, b.Language,
		b.CanFetch, b.WantsToReceive, b.CoverKey, b.ImageKeys,
		b.StateID, b.Latitude, b.Longitude,
	).Scan(&b.UpdatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return ErrNotFound
	case isForeignKeyViolation(err):
		return ErrInvalidReference
	}
	return err
}

// Delete removes the row. A rescue inserted after the caller's guard check
// still blocks the delete through its foreign key.
func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM books WHERE id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	result, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrRequested
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	query := `SELECT` + bookColumns + ` FROM books WHERE id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanBook(r.db.QueryRow(timeoutCtx, query, id))
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	query := `SELECT` + bookColumns + ` FROM books WHERE isbn = $1 ORDER BY created_at LIMIT 1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanBook(r.db.QueryRow(timeoutCtx, query, isbn))
}

func (r *PostgresRepo) ListByOwner(ctx context.Context, ownerID string) ([]Book, error) {
	return r.list(ctx, `SELECT`+bookColumns+` FROM books WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
}

func (r *PostgresRepo) ListExcludingOwner(ctx context.Context, ownerID string) ([]Book, error) {
	return r.list(ctx, `SELECT`+bookColumns+` FROM books WHERE owner_id <> $1 ORDER BY created_at DESC`, ownerID)
}

func (r *PostgresRepo) list(ctx context.Context, query string, args ...any) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

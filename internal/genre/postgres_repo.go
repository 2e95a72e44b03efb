package genre

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
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

func (r *PostgresRepo) List(ctx context.Context) ([]Genre, error) {
	const query = `SELECT id, name FROM genres ORDER BY name`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[Genre])
}

func (r *PostgresRepo) IDsByUser(ctx context.Context, userID string) ([]string, error) {
	const query = `
	SELECT g.id
	FROM user_genres ug
	JOIN genres g ON g.id = ug.genre_id
	WHERE ug.user_id = $1
	ORDER BY g.name, g.id
	`
	return r.collectStrings(ctx, query, userID)
}

func (r *PostgresRepo) IDsByBook(ctx context.Context, bookID string) ([]string, error) {
	const query = `
	SELECT g.id
	FROM book_genres bg
	JOIN genres g ON g.id = bg.genre_id
	WHERE bg.book_id = $1
	ORDER BY g.name, g.id
	`
	return r.collectStrings(ctx, query, bookID)
}

func (r *PostgresRepo) NamesByBook(ctx context.Context, bookID string) ([]string, error) {
	const query = `
	SELECT g.name
	FROM book_genres bg
	JOIN genres g ON g.id = bg.genre_id
	WHERE bg.book_id = $1
	ORDER BY g.name, g.id
	`
	return r.collectStrings(ctx, query, bookID)
}

// IDsByBooks loads the genre ids of many books in one round trip. Books
// without genres are absent from the result.
func (r *PostgresRepo) IDsByBooks(ctx context.Context, bookIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(bookIDs))
	if len(bookIDs) == 0 {
		return out, nil
	}
	const query = `
	SELECT bg.book_id, g.id
	FROM book_genres bg
	JOIN genres g ON g.id = bg.genre_id
	WHERE bg.book_id = ANY($1::uuid[])
	ORDER BY bg.book_id, g.name, g.id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, bookIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bookID, genreID string
		if err := rows.Scan(&bookID, &genreID); err != nil {
			return nil, err
		}
		out[bookID] = append(out[bookID], genreID)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) collectStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

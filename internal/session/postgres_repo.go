package session

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgStore carries the pool and the per-query deadline shared by both repos.
type pgStore struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func (s pgStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// exec runs a statement and reports how many rows it touched.
func (s pgStore) exec(ctx context.Context, query string, args ...any) (int64, error) {
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	tag, err := s.db.Exec(timeoutCtx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const sessionColumns = `id::text, user_id::text, refresh_token_hash, user_agent, ip_address,
	remember_me, expires_at, created_at, last_used_at`

type PostgresRepo struct {
	pgStore
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{pgStore{db: db, timeout: timeout}}
}

func (r *PostgresRepo) Create(ctx context.Context, s *Session) error {
	const query = `
		INSERT INTO sessions (user_id, refresh_token_hash, user_agent, ip_address, remember_me, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text, created_at, last_used_at`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query,
		s.UserID, s.RefreshTokenHash, s.UserAgent, s.IPAddress, s.RememberMe, s.ExpiresAt,
	).Scan(&s.ID, &s.CreatedAt, &s.LastUsedAt)
}

func (r *PostgresRepo) query(ctx context.Context, where string, args ...any) ([]Session, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, `SELECT `+sessionColumns+` FROM sessions WHERE `+where, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Session])
}

// GetByTokenHash only sees sessions that have not expired yet.
func (r *PostgresRepo) GetByTokenHash(ctx context.Context, tokenHash string) (Session, error) {
	found, err := r.query(ctx, `refresh_token_hash = $1 AND expires_at > now() LIMIT 1`, tokenHash)
	if err != nil {
		return Session{}, err
	}
	if len(found) == 0 {
		return Session{}, ErrNotFound
	}
	return found[0], nil
}

func (r *PostgresRepo) ListByUserID(ctx context.Context, userID string) ([]Session, error) {
	return r.query(ctx, `user_id = $1 AND expires_at > now() ORDER BY created_at DESC`, userID)
}

// DeleteForUser removes a session only when it belongs to userID, so a
// foreign id is reported as ErrNotFound.
func (r *PostgresRepo) DeleteForUser(ctx context.Context, sessionID, userID string) error {
	n, err := r.exec(ctx, `DELETE FROM sessions WHERE id = $1 AND user_id = $2`, sessionID, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	_, err := r.exec(ctx, `DELETE FROM sessions WHERE refresh_token_hash = $1`, tokenHash)
	return err
}

func (r *PostgresRepo) UpdateLastUsed(ctx context.Context, sessionID string) error {
	_, err := r.exec(ctx, `UPDATE sessions SET last_used_at = now() WHERE id = $1`, sessionID)
	return err
}

func (r *PostgresRepo) CleanupExpired(ctx context.Context) (int64, error) {
	return r.exec(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
}

// BlacklistPostgresRepo stores revoked access token ids until the token
// would have expired on its own.
type BlacklistPostgresRepo struct {
	pgStore
}

func NewBlacklistPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *BlacklistPostgresRepo {
	return &BlacklistPostgresRepo{pgStore{db: db, timeout: timeout}}
}

func (r *BlacklistPostgresRepo) AddToken(ctx context.Context, jti, userID string, expiresAt time.Time) error {
	_, err := r.exec(ctx, `
		INSERT INTO token_blacklist (jti, user_id, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (jti) DO NOTHING`,
		jti, userID, expiresAt,
	)
	return err
}

func (r *BlacklistPostgresRepo) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM token_blacklist WHERE jti = $1 AND expires_at > now())`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var revoked bool
	if err := r.db.QueryRow(timeoutCtx, query, jti).Scan(&revoked); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}
	return revoked, nil
}

func (r *BlacklistPostgresRepo) CleanupExpired(ctx context.Context) (int64, error) {
	return r.exec(ctx, `DELETE FROM token_blacklist WHERE expires_at < now()`)
}

// Package repository implements the storage contract on top of PostgreSQL,
// accessed through database/sql with the pgx stdlib driver.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/storage"
)

// InitDB opens the database, verifies connectivity and creates the schema.
func InitDB(dsn string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS urls (
		id SERIAL PRIMARY KEY,
		long_url TEXT UNIQUE NOT NULL,
		created_at TIMESTAMP DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS shortcodes (
		id SERIAL PRIMARY KEY,
		code VARCHAR(10) UNIQUE NOT NULL,
		url_id INT REFERENCES urls(id) ON DELETE CASCADE,
		created_at TIMESTAMP DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_shortcodes_url_id ON shortcodes(url_id);`

	if _, err := db.Exec(schema); err != nil {
		logger.Fatal("creating schema", zap.Error(err))
	}

	return db
}

// URLRepository provides the relational storage operations used by the
// shortener service.
type URLRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateURLRepository(db *sql.DB, logger *zap.Logger) *URLRepository {
	return &URLRepository{
		db:     db,
		logger: logger,
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation, the signal the service treats as a collision rather than a fault.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *URLRepository) FindURLIDByValue(ctx context.Context, value string) (int64, error) {
	row := r.db.QueryRowContext(ctx, "SELECT id FROM urls WHERE long_url = $1;", value)

	var id int64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *URLRepository) InsertURL(ctx context.Context, value string) (int64, error) {
	row := r.db.QueryRowContext(ctx, "INSERT INTO urls (long_url) VALUES ($1) RETURNING id;", value)

	var id int64
	if err := row.Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrConflict
		}
		r.logger.Error("inserting url", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *URLRepository) FindCodeByURLID(ctx context.Context, urlID int64) (string, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT code FROM shortcodes WHERE url_id = $1 ORDER BY created_at ASC LIMIT 1;", urlID)

	var code string
	if err := row.Scan(&code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", err
	}
	return code, nil
}

func (r *URLRepository) FindURLByCode(ctx context.Context, code string) (*storage.URLRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT s.code, u.long_url, u.created_at
		FROM urls u
		JOIN shortcodes s ON u.id = s.url_id
		WHERE s.code = $1;`, code)

	var rec storage.URLRecord
	if err := row.Scan(&rec.Code, &rec.Original, &rec.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *URLRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	row := r.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM shortcodes WHERE code = $1);", code)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *URLRepository) InsertCode(ctx context.Context, urlID int64, code string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO shortcodes (url_id, code) VALUES ($1, $2);", urlID, code)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrConflict
		}
		r.logger.Error("inserting code", zap.Error(err))
		return err
	}
	return nil
}

// InsertFirstCode inserts code only when the URL has no code yet, in a single
// statement so concurrent minters for the same URL get exactly one winner.
func (r *URLRepository) InsertFirstCode(ctx context.Context, urlID int64, code string) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO shortcodes (url_id, code)
		SELECT $1, $2
		WHERE NOT EXISTS (SELECT 1 FROM shortcodes WHERE url_id = $1);`, urlID, code)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrConflict
		}
		r.logger.Error("inserting first code", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrConflict
	}
	return nil
}

func (r *URLRepository) ListURLsWithCodes(ctx context.Context, limit, offset int) ([]storage.URLRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.code, u.long_url, u.created_at
		FROM urls u
		JOIN shortcodes s ON u.id = s.url_id
		ORDER BY u.created_at DESC
		LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]storage.URLRecord, 0, limit)
	for rows.Next() {
		var rec storage.URLRecord
		if err := rows.Scan(&rec.Code, &rec.Original, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *URLRepository) CountURLCodePairs(ctx context.Context) (int64, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM urls u
		JOIN shortcodes s ON u.id = s.url_id;`)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *URLRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

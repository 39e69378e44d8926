package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/csg33k/vin-decoder/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS decodes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	source     TEXT NOT NULL,
	vin        TEXT NOT NULL,
	notes      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);`

type Repository struct {
	db *sql.DB
}

// New opens the SQLite database and ensures the decode-history schema exists.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error { return r.db.Close() }

func (r *Repository) CreateDecode(ctx context.Context, d *domain.Decode) error {
	d.CreatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO decodes (source, vin, notes, created_at)
		VALUES (?,?,?,?)`,
		d.Source, d.VIN, d.Notes, d.CreatedAt,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	d.ID = id
	return nil
}

func (r *Repository) GetDecode(ctx context.Context, id int64) (*domain.Decode, error) {
	d := &domain.Decode{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, source, vin, notes, created_at
		FROM decodes WHERE id=?`, id).Scan(
		&d.ID, &d.Source, &d.VIN, &d.Notes, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *Repository) ListDecodes(ctx context.Context) ([]domain.Decode, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source, vin, notes, created_at
		FROM decodes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.Decode
	for rows.Next() {
		var d domain.Decode
		if err := rows.Scan(&d.ID, &d.Source, &d.VIN, &d.Notes, &d.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *Repository) DeleteDecode(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM decodes WHERE id=?`, id)
	return err
}

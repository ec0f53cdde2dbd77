package category

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"newsportal/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// ListAll returns every registered category ordered by key.
func (r *Repo) ListAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, key, label, created_at
		FROM categories
		ORDER BY key ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Key, &c.Label, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) GetByKey(ctx context.Context, key string) (*models.Category, error) {
	return r.getOne(ctx, `WHERE key = ?`, strings.ToLower(strings.TrimSpace(key)))
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return r.getOne(ctx, `WHERE id = ?`, strings.ToLower(strings.TrimSpace(id)))
}

func (r *Repo) getOne(ctx context.Context, where string, arg any) (*models.Category, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT id, key, label, created_at FROM categories `+where, arg)

	var c models.Category
	if err := row.Scan(&c.ID, &c.Key, &c.Label, &c.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Create inserts c. An empty ID gets a fresh reference and the key is
// lowercased.
func (r *Repo) Create(ctx context.Context, c *models.Category) error {
	if c.ID == "" {
		c.ID = NewReference()
	}
	c.Key = strings.ToLower(strings.TrimSpace(c.Key))
	c.Label = strings.TrimSpace(c.Label)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO categories (id, key, label, created_at)
		VALUES (?, ?, ?, ?)
	`, c.ID, c.Key, c.Label, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

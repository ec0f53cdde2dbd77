package articles

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"newsportal/pkg/models"
)

// Sort orders a listing. Ties are broken by id so pages are stable.
type Sort string

const (
	SortLatest  Sort = "latest"
	SortOldest  Sort = "oldest"
	SortPopular Sort = "popular"
)

// ParseSort maps user input to a Sort, defaulting to SortLatest.
func ParseSort(s string) Sort {
	switch Sort(strings.ToLower(strings.TrimSpace(s))) {
	case SortOldest:
		return SortOldest
	case SortPopular:
		return SortPopular
	default:
		return SortLatest
	}
}

// Query is the filter/sort/skip/limit request understood by the store.
type Query struct {
	// Languages matches the stored language case-insensitively against any
	// of the values. Empty means every language.
	Languages []string
	// CategoryValues matches articles whose category field, or any element
	// of categories, equals one of the values case-insensitively.
	CategoryValues []string
	Sort           Sort
	// Limit <= 0 means no limit.
	Limit  int
	Offset int
}

const articleColumns = "id, title, summary, content, language, category, categories, " +
	"source_name, source_url, url, tags, view_count, published_at, created_at"

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Find(ctx context.Context, q Query) ([]models.Article, error) {
	b := applyFilters(sq.Select(articleColumns).From("articles"), q)
	b = b.OrderBy(orderFor(q.Sort)...)
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit))
	} else if q.Offset > 0 {
		b = b.Limit(math.MaxInt64)
	}
	if q.Offset > 0 {
		b = b.Offset(uint64(q.Offset))
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find: %w", err)
	}
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("find query: %w", err)
	}
	defer rows.Close()

	out := make([]models.Article, 0, max(q.Limit, 0))
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("find scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) Count(ctx context.Context, q Query) (int, error) {
	sqlStr, args, err := applyFilters(sq.Select("COUNT(*)").From("articles"), q).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}
	var total int
	if err := r.DB.QueryRowContext(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count scan: %w", err)
	}
	return total, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	sqlStr, args, err := sq.Select(articleColumns).From("articles").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}
	a, err := scanArticle(r.DB.QueryRowContext(ctx, sqlStr, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan getByID: %w", err)
	}
	return &a, nil
}

// Insert stores a new article. Zero timestamps are set to now.
func (r *Repo) Insert(ctx context.Context, a *models.Article) error {
	prepareForWrite(a)
	vals, err := columnValues(a)
	if err != nil {
		return err
	}
	sqlStr, args, err := sq.Insert("articles").Columns(strings.Split(articleColumns, ", ")...).Values(vals...).ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.DB.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("insert article %s: %w", a.ID, err)
	}
	return nil
}

// UpsertMany writes articles in one transaction, replacing stored fields of
// existing ids but keeping their view count and creation time. It returns
// the ids that did not exist before.
func (r *Repo) UpsertMany(ctx context.Context, items []models.Article) ([]string, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var created []string
	for i := range items {
		a := &items[i]
		prepareForWrite(a)

		var exists int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles WHERE id = ?`, a.ID).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", a.ID, err)
		}

		vals, err := columnValues(a)
		if err != nil {
			return nil, err
		}
		sqlStr, args, err := sq.Insert("articles").
			Columns(strings.Split(articleColumns, ", ")...).
			Values(vals...).
			Suffix(`ON CONFLICT(id) DO UPDATE SET
				title = excluded.title,
				summary = excluded.summary,
				content = excluded.content,
				language = excluded.language,
				category = excluded.category,
				categories = excluded.categories,
				source_name = excluded.source_name,
				source_url = excluded.source_url,
				url = excluded.url,
				tags = excluded.tags,
				published_at = excluded.published_at`).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build upsert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
			return nil, fmt.Errorf("exec upsert for %s: %w", a.ID, err)
		}
		if exists == 0 {
			created = append(created, a.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return created, nil
}

// IncrementViews bumps the view counter used by the popular sort.
func (r *Repo) IncrementViews(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE articles SET view_count = view_count + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

func applyFilters(b sq.SelectBuilder, q Query) sq.SelectBuilder {
	if langs := foldAll(q.Languages); len(langs) > 0 {
		b = b.Where(sq.Eq{"LOWER(language)": langs})
	}
	if vals := foldAll(q.CategoryValues); len(vals) > 0 {
		args := make([]any, len(vals))
		for i, v := range vals {
			args[i] = v
		}
		b = b.Where(sq.Or{
			sq.Eq{"LOWER(category)": vals},
			sq.Expr("EXISTS (SELECT 1 FROM json_each(articles.categories) je WHERE LOWER(je.value) IN ("+
				sq.Placeholders(len(vals))+"))", args...),
		})
	}
	return b
}

func orderFor(s Sort) []string {
	switch s {
	case SortOldest:
		return []string{"published_at ASC", "id ASC"}
	case SortPopular:
		return []string{"view_count DESC", "published_at DESC", "id DESC"}
	default:
		return []string{"published_at DESC", "id DESC"}
	}
}

func foldAll(in []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func prepareForWrite(a *models.Article) {
	now := time.Now().UTC()
	if a.PublishedAt.IsZero() {
		a.PublishedAt = now
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.PublishedAt = a.PublishedAt.UTC()
	a.CreatedAt = a.CreatedAt.UTC()
}

func columnValues(a *models.Article) ([]any, error) {
	cats, err := marshalList(a.Categories)
	if err != nil {
		return nil, fmt.Errorf("marshal categories for %s: %w", a.ID, err)
	}
	tags, err := marshalList(a.Tags)
	if err != nil {
		return nil, fmt.Errorf("marshal tags for %s: %w", a.ID, err)
	}
	return []any{
		a.ID, a.Title, a.Summary, a.Content, a.Language, a.Category, cats,
		a.Source.Name, a.Source.URL, a.URL, tags, a.ViewCount, a.PublishedAt, a.CreatedAt,
	}, nil
}

func marshalList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	return string(b), err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(s rowScanner) (models.Article, error) {
	var (
		a        models.Article
		catsJSON string
		tagsJSON string
	)
	if err := s.Scan(
		&a.ID, &a.Title, &a.Summary, &a.Content, &a.Language, &a.Category, &catsJSON,
		&a.Source.Name, &a.Source.URL, &a.URL, &tagsJSON, &a.ViewCount, &a.PublishedAt, &a.CreatedAt,
	); err != nil {
		return a, err
	}
	if err := json.Unmarshal([]byte(catsJSON), &a.Categories); err != nil {
		return a, fmt.Errorf("decode categories of %s: %w", a.ID, err)
	}
	if err := json.Unmarshal([]byte(tagsJSON), &a.Tags); err != nil {
		return a, fmt.Errorf("decode tags of %s: %w", a.ID, err)
	}
	if a.Categories == nil {
		a.Categories = []string{}
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return a, nil
}

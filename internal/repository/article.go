package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"naukriedge/internal/models"
)

// ErrNotFound is returned by lookups across both store backends.
var ErrNotFound = errors.New("not found")

type ArticleFilter struct {
	Cluster       string
	Limit         int
	Offset        int
	OnlyPublished bool
}

// ArticleStore is the persistence gateway for generated articles. Two
// implementations exist: Postgres and a local JSON file, selected at startup.
type ArticleStore interface {
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	List(ctx context.Context, f ArticleFilter) ([]*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Update(ctx context.Context, a *models.Article) error
	Delete(ctx context.Context, id int64) error
	Titles(ctx context.Context) ([]string, error)
}

type articlePG struct{ db *pgxpool.Pool }

func NewArticlePG(db *pgxpool.Pool) ArticleStore { return &articlePG{db: db} }

const articleColumns = `id, title, slug, meta_description, content, keywords, cluster, faq_schema, published, source, created_at, updated_at`

func (r *articlePG) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	kwJSON, _ := json.Marshal(a.Keywords)

	const q = `
		INSERT INTO articles (title, slug, meta_description, content, keywords, cluster, faq_schema, published, source, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5::jsonb,$6,$7::jsonb,$8,$9, COALESCE($10, NOW()), NOW())
		RETURNING ` + articleColumns

	var createdAt any
	if !a.CreatedAt.IsZero() {
		createdAt = a.CreatedAt
	}

	row := r.db.QueryRow(ctx, q,
		a.Title,
		a.Slug,
		a.MetaDescription,
		a.Content,
		kwJSON,
		a.Cluster,
		faqParam(a.FAQSchema),
		a.Published,
		a.Source,
		createdAt,
	)
	return scanArticle(row)
}

func (r *articlePG) List(ctx context.Context, f ArticleFilter) ([]*models.Article, error) {
	qBase := `SELECT ` + articleColumns + ` FROM articles`

	where := []string{}
	args := []interface{}{}
	i := 1

	if f.OnlyPublished {
		where = append(where, fmt.Sprintf("published = $%d", i))
		args = append(args, true)
		i++
	}
	if f.Cluster != "" {
		where = append(where, fmt.Sprintf("cluster = $%d", i))
		args = append(args, f.Cluster)
		i++
	}

	sql := qBase
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *articlePG) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles WHERE id=$1`
	a, err := scanArticle(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *articlePG) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles WHERE slug=$1`
	a, err := scanArticle(r.db.QueryRow(ctx, q, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

// Update overwrites all generated fields, keeping id/slug/created_at.
// An unknown id is a store-level no-op, as the regenerate flow expects.
func (r *articlePG) Update(ctx context.Context, a *models.Article) error {
	kwJSON, _ := json.Marshal(a.Keywords)
	const q = `
		UPDATE articles
		SET title=$1,
		    meta_description=$2,
		    content=$3,
		    keywords=$4::jsonb,
		    cluster=$5,
		    faq_schema=$6::jsonb,
		    published=$7,
		    source=$8,
		    updated_at=NOW()
		WHERE id=$9
	`
	_, err := r.db.Exec(ctx, q,
		a.Title, a.MetaDescription, a.Content, kwJSON, a.Cluster,
		faqParam(a.FAQSchema), a.Published, a.Source, a.ID,
	)
	return err
}

func (r *articlePG) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM articles WHERE id=$1", id)
	return err
}

func (r *articlePG) Titles(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, "SELECT title FROM articles")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var a models.Article
	var kwRaw, faqRaw []byte
	if err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.MetaDescription, &a.Content,
		&kwRaw, &a.Cluster, &faqRaw, &a.Published, &a.Source,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	_ = json.Unmarshal(kwRaw, &a.Keywords)
	if len(faqRaw) > 0 {
		a.FAQSchema = json.RawMessage(faqRaw)
	}
	return &a, nil
}

func faqParam(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}

package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"naukriedge/internal/models"
)

// articleFile is the local fallback backend used when no database is
// configured. Every operation reads and rewrites the whole file; the mutex
// only covers this process, concurrent writers from other processes are not
// safe (accepted for the dev/standalone case).
type articleFile struct {
	path string
	mu   sync.Mutex
}

type articleFileDoc struct {
	NextID   int64             `json:"next_id"`
	Articles []*models.Article `json:"articles"`
}

func NewArticleFile(path string) (ArticleStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &articleFile{path: path}, nil
}

func (r *articleFile) load() (*articleFileDoc, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return &articleFileDoc{NextID: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	var doc articleFileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.NextID == 0 {
		doc.NextID = 1
	}
	return &doc, nil
}

func (r *articleFile) save(doc *articleFileDoc) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}

func (r *articleFile) Create(_ context.Context, a *models.Article) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	out := *a
	out.ID = doc.NextID
	doc.NextID++
	if out.CreatedAt.IsZero() {
		out.CreatedAt = time.Now()
	}
	out.UpdatedAt = time.Now()

	doc.Articles = append(doc.Articles, &out)
	if err := r.save(doc); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *articleFile) List(_ context.Context, f ArticleFilter) ([]*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	var list []*models.Article
	for _, a := range doc.Articles {
		if f.OnlyPublished && !a.Published {
			continue
		}
		if f.Cluster != "" && a.Cluster != f.Cluster {
			continue
		}
		list = append(list, a)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	if f.Offset > 0 {
		if f.Offset >= len(list) {
			return nil, nil
		}
		list = list[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(list) {
		list = list[:f.Limit]
	}
	return list, nil
}

func (r *articleFile) GetByID(_ context.Context, id int64) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, a := range doc.Articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (r *articleFile) GetBySlug(_ context.Context, slug string) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, a := range doc.Articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (r *articleFile) Update(_ context.Context, a *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	for i, existing := range doc.Articles {
		if existing.ID == a.ID {
			out := *a
			out.Slug = existing.Slug
			out.CreatedAt = existing.CreatedAt
			out.UpdatedAt = time.Now()
			doc.Articles[i] = &out
			return r.save(doc)
		}
	}
	// unknown id: store-level no-op
	return nil
}

func (r *articleFile) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	for i, a := range doc.Articles {
		if a.ID == id {
			doc.Articles = append(doc.Articles[:i], doc.Articles[i+1:]...)
			return r.save(doc)
		}
	}
	return nil
}

func (r *articleFile) Titles(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(doc.Articles))
	for _, a := range doc.Articles {
		titles = append(titles, a.Title)
	}
	return titles, nil
}

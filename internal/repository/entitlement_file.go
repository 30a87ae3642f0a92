package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"naukriedge/internal/models"
)

type entitlementFile struct {
	path string
	mu   sync.Mutex
}

type entitlementFileDoc struct {
	NextID       int64                 `json:"next_id"`
	Entitlements []*models.Entitlement `json:"entitlements"`
}

func NewEntitlementFile(path string) (EntitlementStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &entitlementFile{path: path}, nil
}

func (r *entitlementFile) load() (*entitlementFileDoc, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return &entitlementFileDoc{NextID: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	var doc entitlementFileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.NextID == 0 {
		doc.NextID = 1
	}
	return &doc, nil
}

func (r *entitlementFile) save(doc *entitlementFileDoc) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}

func (r *entitlementFile) UpsertByEmail(_ context.Context, e *models.Entitlement) (*models.Entitlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(e.Email)
	now := time.Now()

	for i, existing := range doc.Entitlements {
		if existing.Email == email {
			out := *e
			out.ID = existing.ID
			out.Email = email
			out.CreatedAt = existing.CreatedAt
			out.UpdatedAt = now
			doc.Entitlements[i] = &out
			if err := r.save(doc); err != nil {
				return nil, err
			}
			return &out, nil
		}
	}

	out := *e
	out.ID = doc.NextID
	doc.NextID++
	out.Email = email
	out.CreatedAt = now
	out.UpdatedAt = now
	doc.Entitlements = append(doc.Entitlements, &out)
	if err := r.save(doc); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *entitlementFile) GetByEmail(_ context.Context, email string) (*models.Entitlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(email)
	for _, e := range doc.Entitlements {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, ErrNotFound
}

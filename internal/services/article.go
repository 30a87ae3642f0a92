package services

import (
	"context"

	"naukriedge/internal/logger"
	"naukriedge/internal/models"
	"naukriedge/internal/repository"

	"go.uber.org/zap"
)

type ArticleService interface {
	ListPublished(ctx context.Context, cluster string, limit, offset int) ([]*models.Article, error)
	ListAll(ctx context.Context, limit, offset int) ([]*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
}

type articleService struct {
	store repository.ArticleStore
}

func NewArticleService(store repository.ArticleStore) ArticleService {
	return &articleService{store: store}
}

func (s *articleService) ListPublished(ctx context.Context, cluster string, limit, offset int) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("listing published articles",
		zap.String("cluster", cluster),
		zap.Int("limit", limit),
		zap.Int("offset", offset),
	)

	list, err := s.store.List(ctx, repository.ArticleFilter{
		Cluster:       cluster,
		Limit:         limit,
		Offset:        offset,
		OnlyPublished: true,
	})
	if err != nil {
		log.Error("failed to list articles (store)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *articleService) ListAll(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	list, err := s.store.List(ctx, repository.ArticleFilter{Limit: limit, Offset: offset})
	if err != nil {
		logger.WithCtx(ctx).Error("failed to list articles (store)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	a, err := s.store.GetBySlug(ctx, slug)
	if err != nil {
		logger.WithCtx(ctx).Warn("article not found", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)
	log.Info("deleting article", zap.Int64("id", id))

	if err := s.store.Delete(ctx, id); err != nil {
		log.Error("failed to delete article (store)", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

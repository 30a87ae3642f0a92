package services

import (
	"context"
	"strings"
	"time"

	"naukriedge/internal/content"
	"naukriedge/internal/llm"
	"naukriedge/internal/logger"
	"naukriedge/internal/models"
	"naukriedge/internal/repository"

	"go.uber.org/zap"
)

// backfillDelay spaces out provider calls during batch runs. A plain sleep,
// sized to stay under provider rate limits at our invocation volume.
const backfillDelay = 2 * time.Second

// GenerateResult is the structured outcome of one orchestrator run. Pipeline
// failures land here as Success=false; the HTTP layer still answers 200 so
// external schedulers never see a retryable status and hammer the provider.
type GenerateResult struct {
	Success bool   `json:"success"`
	Skipped bool   `json:"skipped,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Topic   string `json:"topic"`
	Cluster string `json:"cluster"`
	Slug    string `json:"slug,omitempty"`
	Source  string `json:"source,omitempty"`
	Error   string `json:"error,omitempty"`
}

type GenerateOptions struct {
	Topic   string
	Cluster string
	// CreatedAt lets the backfill flow supply a historical timestamp.
	CreatedAt time.Time
	// Source overrides the provenance tag ("backfill-api" for batch runs).
	Source string
}

// Revalidator asks the page-rendering layer to recompute listing paths.
type Revalidator interface {
	Revalidate(paths ...string)
}

type GeneratorService struct {
	store       repository.ArticleStore
	gen         llm.Generator // nil when no provider credential is configured
	revalidator Revalidator
}

func NewGeneratorService(store repository.ArticleStore, gen llm.Generator, rev Revalidator) *GeneratorService {
	return &GeneratorService{store: store, gen: gen, revalidator: rev}
}

// Generate runs one content-creation pass: duplicate guard, prompt, provider
// call, normalization, persistence, cache revalidation. Two concurrent runs
// can both pass the guard and insert similar articles with different slugs;
// accepted at a few invocations per day.
func (s *GeneratorService) Generate(ctx context.Context, opts GenerateOptions) GenerateResult {
	log := logger.WithCtx(ctx)

	topic, cluster := opts.Topic, opts.Cluster
	if strings.TrimSpace(topic) == "" {
		t := content.PickForCluster(cluster)
		topic, cluster = t.Title, t.Cluster
	}

	res := GenerateResult{Topic: topic, Cluster: cluster}

	// Guard runs before generation so a duplicate topic costs no provider
	// call. Case-insensitive substring match against existing titles only.
	titles, err := s.store.Titles(ctx)
	if err != nil {
		log.Error("failed to load existing titles", zap.Error(err))
		res.Error = "store unavailable: " + err.Error()
		return res
	}
	if dup, match := isDuplicateTopic(titles, topic); dup {
		log.Info("topic already covered, skipping generation",
			zap.String("topic", topic),
			zap.String("existing_title", match),
		)
		res.Success = true
		res.Skipped = true
		res.Reason = "duplicate topic"
		return res
	}

	raw := s.callProvider(ctx, topic, cluster)

	now := time.Now()
	draft, fellBack := content.Normalize(raw, topic, cluster, now)
	draft.Cluster = cluster
	if opts.Source != "" && !fellBack {
		draft.Source = opts.Source
	}
	if !opts.CreatedAt.IsZero() {
		draft.CreatedAt = opts.CreatedAt
	}

	created, err := s.store.Create(ctx, &draft)
	if err != nil {
		log.Error("failed to persist article", zap.String("slug", draft.Slug), zap.Error(err))
		res.Error = "persist failed: " + err.Error()
		return res
	}

	log.Info("article published",
		zap.Int64("id", created.ID),
		zap.String("slug", created.Slug),
		zap.String("source", created.Source),
		zap.Bool("fallback", fellBack),
	)

	if s.revalidator != nil {
		s.revalidator.Revalidate("/blog", "/blog/"+created.Slug)
	}

	res.Success = true
	res.Slug = created.Slug
	res.Source = created.Source
	return res
}

// Backfill runs Generate count times with a fixed pause between iterations.
// The pause is rate-limit courtesy, nothing adaptive.
func (s *GeneratorService) Backfill(ctx context.Context, count int, cluster string) []GenerateResult {
	results := make([]GenerateResult, 0, count)
	for i := 0; i < count; i++ {
		if i > 0 {
			time.Sleep(backfillDelay)
		}
		results = append(results, s.Generate(ctx, GenerateOptions{
			Cluster: cluster,
			Source:  models.SourceBackfill,
		}))
	}
	return results
}

// Regenerate reruns the pipeline for a stored article and overwrites every
// generated field. The id and slug survive so published URLs stay stable.
func (s *GeneratorService) Regenerate(ctx context.Context, id int64) GenerateResult {
	log := logger.WithCtx(ctx)

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		res := GenerateResult{}
		res.Error = "article lookup failed: " + err.Error()
		return res
	}

	res := GenerateResult{Topic: existing.Title, Cluster: existing.Cluster}

	raw := s.callProvider(ctx, existing.Title, existing.Cluster)
	draft, _ := content.Normalize(raw, existing.Title, existing.Cluster, time.Now())

	draft.ID = existing.ID
	draft.Slug = existing.Slug
	draft.Cluster = existing.Cluster
	draft.CreatedAt = existing.CreatedAt

	if err := s.store.Update(ctx, &draft); err != nil {
		log.Error("failed to update article", zap.Int64("id", id), zap.Error(err))
		res.Error = "persist failed: " + err.Error()
		return res
	}

	log.Info("article regenerated", zap.Int64("id", id), zap.String("slug", existing.Slug))

	if s.revalidator != nil {
		s.revalidator.Revalidate("/blog", "/blog/"+existing.Slug)
	}

	res.Success = true
	res.Slug = existing.Slug
	res.Source = draft.Source
	return res
}

// callProvider returns raw model output, or "" when no provider is configured
// or the call fails. The empty string routes the normalizer to the fallback
// article; provider errors are never surfaced to the trigger caller.
func (s *GeneratorService) callProvider(ctx context.Context, topic, cluster string) string {
	if s.gen == nil {
		return ""
	}
	log := logger.WithCtx(ctx)

	prompt := content.BuildArticlePrompt(topic, cluster)
	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		log.Warn("provider call failed, using fallback article",
			zap.String("provider", s.gen.Name()),
			zap.String("topic", topic),
			zap.Error(err),
		)
		return ""
	}
	return raw
}

func isDuplicateTopic(titles []string, topic string) (bool, string) {
	needle := strings.ToLower(strings.TrimSpace(topic))
	if needle == "" {
		return false, ""
	}
	for _, t := range titles {
		if strings.Contains(strings.ToLower(t), needle) {
			return true, t
		}
	}
	return false, ""
}

package app

import (
	"errors"
	"path/filepath"

	"naukriedge/internal/config"
	"naukriedge/internal/db"
	"naukriedge/internal/handlers"
	"naukriedge/internal/llm"
	"naukriedge/internal/logger"
	"naukriedge/internal/repository"
	"naukriedge/internal/routes"
	"naukriedge/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	articleStore, entitlementStore, err := initStores(cfg)
	if err != nil {
		return nil, err
	}

	generator, err := llm.FromConfig(cfg)
	if errors.Is(err, llm.ErrNotConfigured) {
		logger.Log.Warn("no LLM provider configured, generation will publish placeholder articles")
		generator = nil
	} else if err != nil {
		return nil, err
	} else {
		logger.Log.Info("LLM provider selected", zap.String("provider", generator.Name()))
	}

	revalidator := services.NewRevalidateService(cfg.SiteURL, cfg.RevalidateSecret)

	// Services
	generatorSvc := services.NewGeneratorService(articleStore, generator, revalidator)
	articleSvc := services.NewArticleService(articleStore)
	entitlementSvc := services.NewEntitlementService(entitlementStore, cfg.RazorpayWebhookSecret)
	razorpaySvc := services.NewRazorpayService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	scoreSvc := services.NewScoreService()

	// Handlers
	articleH := handlers.NewArticleHandler(articleSvc)
	generateH := handlers.NewGenerateHandler(generatorSvc)
	toolsH := handlers.NewToolsHandler(scoreSvc)
	webhookH := handlers.NewWebhookHandler(entitlementSvc)
	paymentH := handlers.NewPaymentHandler(razorpaySvc, entitlementSvc)

	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, articleH, generateH, toolsH, webhookH, paymentH)

	return router, nil
}

// initStores picks the persistence backend once at startup: Postgres when
// configured, otherwise the local JSON files. Call sites never branch on it.
func initStores(cfg *config.Config) (repository.ArticleStore, repository.EntitlementStore, error) {
	if cfg.HasDatabase() {
		conn, err := db.NewPostgresConnection(cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Log.Info("using postgres store", zap.String("dsn", cfg.GetDSNSafe()))
		return repository.NewArticlePG(conn), repository.NewEntitlementPG(conn), nil
	}

	logger.Log.Warn("database not configured, using local JSON store", zap.String("dir", cfg.DataDir))

	articleStore, err := repository.NewArticleFile(filepath.Join(cfg.DataDir, "articles.json"))
	if err != nil {
		return nil, nil, err
	}
	entitlementStore, err := repository.NewEntitlementFile(filepath.Join(cfg.DataDir, "entitlements.json"))
	if err != nil {
		return nil, nil, err
	}
	return articleStore, entitlementStore, nil
}

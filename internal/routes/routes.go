package routes

import (
	"net/http"
	"time"

	"naukriedge/internal/config"
	"naukriedge/internal/handlers"
	"naukriedge/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	articleH *handlers.ArticleHandler,
	generateH *handlers.GenerateHandler,
	toolsH *handlers.ToolsHandler,
	webhookH *handlers.WebhookHandler,
	paymentH *handlers.PaymentHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()

	// --- Public routes ---
	api.HandleFunc("/articles", articleH.List).Methods("GET")
	api.HandleFunc("/articles/{slug}", articleH.GetBySlug).Methods("GET")

	api.HandleFunc("/payments/webhook", webhookH.HandleWebhook).Methods("POST")
	api.HandleFunc("/pay", paymentH.CreatePaymentLink).Methods("POST")

	tools := api.PathPrefix("/tools").Subrouter()
	// The rate limiter guards only the ATS tool: it takes the biggest
	// request bodies and is the one bots actually hit.
	limiter := middleware.NewRateLimiter(cfg.ToolRateLimit, time.Minute)
	tools.Handle("/ats-score", limiter.Middleware(http.HandlerFunc(toolsH.ATSScore))).Methods("POST")
	tools.HandleFunc("/salary", toolsH.Salary).Methods("POST")

	// --- Cron triggers: shared secret or allow-listed admin JWT ---
	cron := api.PathPrefix("/cron").Subrouter()
	cron.Use(middleware.CronOrAdmin(cfg.CronSecret, cfg.JWTSecret, cfg.AdminEmails))
	cron.HandleFunc("/generate", generateH.Generate).Methods("POST")
	cron.HandleFunc("/backfill", generateH.Backfill).Methods("POST")

	// --- Admin (JWT) ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.JWTAuth(cfg.JWTSecret))
	admin.Use(middleware.OnlyRole("admin"))
	admin.HandleFunc("/articles", articleH.ListAll).Methods("GET")
	admin.HandleFunc("/articles/{id:[0-9]+}/regenerate", generateH.Regenerate).Methods("POST")
	admin.HandleFunc("/articles/{id:[0-9]+}", articleH.Delete).Methods("DELETE")
	admin.HandleFunc("/entitlements/{email}", paymentH.GetEntitlement).Methods("GET")
}

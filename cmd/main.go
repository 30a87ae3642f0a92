package main

import (
	"net/http"

	_ "naukriedge/docs"
	"naukriedge/internal/app"
	"naukriedge/internal/config"
	"naukriedge/internal/logger"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title          NaukriEdge API
// @version        1.0
// @description    Backend for the NaukriEdge resume-scoring product: blog content pipeline, free career tools and payment webhook.

// @host      api.naukriedge.in
// @BasePath  /
// @schemes   https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	if err != nil {
		logger.Log.Fatal("failed to load config", zap.Error(err))
	}

	warnings, err := cfg.Validate()
	for _, wmsg := range warnings {
		logger.Log.Warn(wmsg)
	}
	if err != nil {
		logger.Log.Fatal("invalid config", zap.Error(err))
	}

	router, err := app.InitApp(cfg)
	if err != nil {
		logger.Log.Fatal("failed to init app", zap.Error(err))
	}

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Razorpay-Signature"},
	})

	logger.Log.Info("server started", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, corsMiddleware.Handler(router)); err != nil {
		logger.Log.Fatal("server failed", zap.Error(err))
	}
}

package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/khauvukhanh/web-clot/internal/api"
	"github.com/khauvukhanh/web-clot/internal/config"
	apphttp "github.com/khauvukhanh/web-clot/internal/http"
	"github.com/khauvukhanh/web-clot/internal/modules/categories"
	"github.com/khauvukhanh/web-clot/internal/modules/orders"
	"github.com/khauvukhanh/web-clot/internal/modules/products"
	"github.com/khauvukhanh/web-clot/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	logger.Info("storage ready", "driver", store.Driver)

	client := api.New(cfg.APIBaseURL)

	r := apphttp.NewRouter(apphttp.Deps{
		Cfg:     cfg,
		Logger:  logger,
		Store:   store.Storage,
		CatMgr:  categories.NewManager(client),
		ProdMgr: products.NewManager(client),
		OrdMgr:  orders.NewManager(client),
	})

	logger.Info("listening", "port", cfg.Port, "api", cfg.APIBaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

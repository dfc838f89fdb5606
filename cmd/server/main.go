package main

import (
	"context"
	"log"
	"net/http"

	"github.com/Try3D/joy-pad/internal/config"
	"github.com/Try3D/joy-pad/internal/httpapi"
	"github.com/Try3D/joy-pad/internal/hub"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx := context.Background()
	h := hub.NewHub(ctx, sugar)

	handler := httpapi.SetupRoutes(h, sugar)

	sugar.Infow("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		sugar.Fatalw("server stopped", "err", err)
	}
}

package httpapi

import (
	"net/http"

	"github.com/Try3D/joy-pad/internal/hub"
	"github.com/Try3D/joy-pad/internal/ws"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func SetupRoutes(h *hub.Hub, log *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()

	r.Post("/rooms", CreateRoom(h))
	r.Get("/rooms/{code}/ws", ws.Handler(h, log))
	r.Get("/healthz", Healthz)
	return r
}

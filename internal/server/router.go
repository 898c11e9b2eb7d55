package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"bagbot/internal/line"
)

const healthText = "🛍️ 塑膠袋訂購 LINE Bot 正在運行中！"

func NewRouter(webhook *line.Webhook, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(healthText)); err != nil {
			logger.Warn("writing health response", zap.Error(err))
		}
	})

	r.Post("/webhook", webhook.Handle)

	return r
}

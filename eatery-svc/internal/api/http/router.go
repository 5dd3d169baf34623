package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func NewRouter(handler *Handler, pages PageStore, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()
	if pages != nil {
		r.Use(CacheMiddleware(pages, logger))
	}
	handler.RegisterRoutes(r)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

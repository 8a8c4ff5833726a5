// Package server wires the chi router, the middleware chain and the handlers.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/app/handler"
	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/app/service"
	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/middleware"
	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/models"
)

func Init(logger *zap.Logger, urlService service.ShortenerIface) *chi.Mux {
	post := handler.NewPost(urlService, logger)
	get := handler.NewGet(urlService, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithGzip)
	// Recovery must sit inside the gzip wrapper: if it were outside, a panic
	// would unwind through the gzip writer's deferred Close, committing an
	// empty 200 before the JSON 500 could be written.
	r.Use(middleware.WithRecover(logger))

	r.Post("/", post.Form)
	r.Get("/ping", get.PingDB)

	r.Route("/v1/urls", func(r chi.Router) {
		r.Post("/", post.CreateV1)
		r.Get("/", get.List)
		r.Get("/{code}", get.ByCode)
	})

	r.Get("/{code}", get.Redirect)
	r.Get("/{code}/redirect", get.Redirect)

	r.NotFound(jsonError(http.StatusNotFound, "NotFound", "The requested resource was not found."))
	r.MethodNotAllowed(jsonError(http.StatusMethodNotAllowed, "MethodNotAllowed", "The HTTP method used is not allowed for this endpoint."))

	return r
}

func jsonError(status int, code, message string) http.HandlerFunc {
	body := models.ErrorResponse{Error: code, Message: message}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/app/service"
	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/models"
)

type GetHandler struct {
	urlService service.ShortenerIface
	logger     *zap.Logger
}

func NewGet(s service.ShortenerIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		urlService: s,
		logger:     l,
	}
}

// Redirect resolves a short code and redirects to the stored destination.
func (h *GetHandler) Redirect(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	code := chi.URLParam(req, "code")

	target, err := h.urlService.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(res, http.StatusNotFound, codeNotFound, "Short URL not found")
			return
		}

		h.logger.Error("resolving short code", zap.Error(err))
		writeError(res, http.StatusInternalServerError, codeInternal, "An unexpected error occurred")
		return
	}

	http.Redirect(res, req, target, http.StatusFound)
}

// ByCode returns the structured record for a short code.
func (h *GetHandler) ByCode(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	code := chi.URLParam(req, "code")

	r, err := h.urlService.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(res, http.StatusNotFound, codeNotFound, "URL not found")
			return
		}

		h.logger.Error("getting url by code", zap.Error(err))
		writeError(res, http.StatusInternalServerError, codeInternal, "An unexpected error occurred")
		return
	}

	writeJSON(res, http.StatusOK, models.ShortURLResponse{
		ID:         r.Code,
		ShortURL:   r.ShortURL,
		LongURL:    r.LongURL,
		ClickCount: 0,
	})
}

// List returns a page of the URL listing. Unparseable query values fall back
// to the defaults; range clamping happens in the service.
func (h *GetHandler) List(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	page := queryInt(req, "page", 1)
	limit := queryInt(req, "limit", 10)

	result, err := h.urlService.List(ctx, page, limit)
	if err != nil {
		h.logger.Error("listing urls", zap.Error(err))
		writeError(res, http.StatusInternalServerError, codeInternal, "An unexpected error occurred while retrieving URLs")
		return
	}

	items := make([]models.ShortURLResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, models.ShortURLResponse{
			ID:         item.Code,
			ShortURL:   item.ShortURL,
			LongURL:    item.LongURL,
			ClickCount: 0,
		})
	}

	writeJSON(res, http.StatusOK, models.ListResponse{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
		TotalItems: result.TotalItems,
		Items:      items,
	})
}

// PingDB reports storage health.
func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if err := h.urlService.PingContext(ctx); err != nil {
		h.logger.Error("storage ping failed", zap.Error(err))
		writeError(res, http.StatusInternalServerError, codeInternal, "Storage is unavailable")
		return
	}

	res.WriteHeader(http.StatusOK)
}

func queryInt(req *http.Request, name string, def int) int {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/app/service"
	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/models"
)

type PostHandler struct {
	urlService service.ShortenerIface
	logger     *zap.Logger
}

func NewPost(s service.ShortenerIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		urlService: s,
		logger:     l,
	}
}

// Form handles the simple create endpoint: a form field "url", get-or-create
// semantics, {"short_url"} on success.
func (h *PostHandler) Form(res http.ResponseWriter, req *http.Request) {
	longURL := req.FormValue("url")
	if longURL == "" {
		writeError(res, http.StatusBadRequest, codeValidation, "url is required")
		return
	}

	r, err := h.urlService.Shorten(req.Context(), longURL)
	if err != nil {
		if errors.Is(err, service.ErrEmptyURL) {
			writeError(res, http.StatusBadRequest, codeValidation, err.Error())
			return
		}

		h.logger.Error("creating short url", zap.Error(err))
		writeError(res, http.StatusInternalServerError, codeInternal, "Failed to create short URL")
		return
	}

	writeJSON(res, http.StatusCreated, models.SimpleResponse{ShortURL: r.ShortURL})
}

// CreateV1 handles POST /v1/urls: JSON {longUrl, customCode?}, strict scheme
// validation, conflict on a taken custom code.
func (h *PostHandler) CreateV1(res http.ResponseWriter, req *http.Request) {
	var request models.CreateRequest

	if err := decodeJSONBody(res, req, &request); err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			writeError(res, mr.status, codeValidation, mr.msg)
			return
		}

		h.logger.Error("decoding create request", zap.Error(err))
		writeError(res, http.StatusInternalServerError, codeInternal, "An unexpected error occurred")
		return
	}

	if request.LongURL == "" {
		writeError(res, http.StatusBadRequest, codeValidation, "longUrl is required")
		return
	}

	r, err := h.urlService.CreateShortURL(req.Context(), request.LongURL, request.CustomCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyURL):
			writeError(res, http.StatusBadRequest, codeValidation, "longUrl is required")
		case errors.Is(err, service.ErrInvalidURL):
			writeError(res, http.StatusBadRequest, codeValidation, "URL must start with http:// or https://")
		case errors.Is(err, service.ErrCodeTaken):
			writeError(res, http.StatusConflict, codeConflict, "Custom code already exists")
		default:
			h.logger.Error("creating short url", zap.Error(err))
			writeError(res, http.StatusInternalServerError, codeInternal, "Failed to create short URL")
		}
		return
	}

	writeJSON(res, http.StatusCreated, models.ShortURLResponse{
		ID:         r.Code,
		ShortURL:   r.ShortURL,
		LongURL:    r.LongURL,
		ClickCount: 0,
	})
}

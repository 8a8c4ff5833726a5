package server

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/app/service"
	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/mocks"
)

func TestRouting(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockShortenerIface(ctrl)

	r := Init(zap.NewNop(), mockService)

	t.Run("redirect route", func(t *testing.T) {
		mockService.EXPECT().
			Resolve(gomock.Any(), "abc123").
			Return("https://example.com", nil).
			Times(2)

		for _, target := range []string{"/abc123", "/abc123/redirect"} {
			req := httptest.NewRequest(http.MethodGet, target, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, "https://example.com", rr.Header().Get("Location"))
		}
	})

	t.Run("v1 create route", func(t *testing.T) {
		mockService.EXPECT().
			CreateShortURL(gomock.Any(), "https://example.com", "").
			Return(&service.ShortURL{Code: "abc123", LongURL: "https://example.com", ShortURL: "http://localhost:8080/abc123"}, nil).
			Times(1)

		req := httptest.NewRequest(http.MethodPost, "/v1/urls", strings.NewReader(`{"longUrl":"https://example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/urls", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		assert.JSONEq(t, `{"error":"MethodNotAllowed","message":"The HTTP method used is not allowed for this endpoint."}`, rr.Body.String())
	})

	t.Run("route not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/a/b/c", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"NotFound","message":"The requested resource was not found."}`, rr.Body.String())
	})

	t.Run("panic becomes json 500 for gzip clients", func(t *testing.T) {
		mockService.EXPECT().
			Resolve(gomock.Any(), "boom34").
			DoAndReturn(func(_, _ any) (string, error) {
				panic("handler exploded")
			}).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, "/boom34", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

		zr, err := gzip.NewReader(rr.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":"UnexpectedError","message":"An unexpected error occurred. Please try again later."}`, string(body))
	})

	t.Run("panic becomes json 500", func(t *testing.T) {
		mockService.EXPECT().
			Resolve(gomock.Any(), "boom12").
			DoAndReturn(func(_, _ any) (string, error) {
				panic("handler exploded")
			}).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, "/boom12", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"UnexpectedError","message":"An unexpected error occurred. Please try again later."}`, rr.Body.String())
		assert.NotContains(t, rr.Body.String(), "handler exploded")
	})
}

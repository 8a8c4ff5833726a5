package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/app/service"
	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/mocks"
)

func newTestPostHandler(t *testing.T) (*PostHandler, *mocks.MockShortenerIface) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockShortenerIface(ctrl)

	return NewPost(mockService, zap.NewNop()), mockService
}

func TestForm(t *testing.T) {
	tests := []struct {
		name         string
		form         string
		mockResponse *service.ShortURL
		mockError    error
		expectCall   bool
		expectedCode int
		expectedBody string
	}{
		{
			name:         "valid url",
			form:         "url=https://example.com",
			mockResponse: &service.ShortURL{Code: "abc123", LongURL: "https://example.com", ShortURL: "http://localhost:8080/abc123"},
			expectCall:   true,
			expectedCode: http.StatusCreated,
			expectedBody: `{"short_url":"http://localhost:8080/abc123"}`,
		},
		{
			name:         "missing url",
			form:         "other=value",
			expectCall:   false,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"validation_error","message":"url is required"}`,
		},
		{
			name:         "generation exhausted",
			form:         "url=https://example.com",
			mockError:    service.ErrCodeExhausted,
			expectCall:   true,
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"internal_error","message":"Failed to create short URL"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newTestPostHandler(t)

			if tt.expectCall {
				mockService.EXPECT().
					Shorten(gomock.Any(), "https://example.com").
					Return(tt.mockResponse, tt.mockError).
					Times(1)
			}

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.form))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			rr := httptest.NewRecorder()
			handler.Form(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestCreateV1(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockResponse *service.ShortURL
		mockError    error
		expectCall   bool
		expectedCode int
		expectedBody string
	}{
		{
			name:         "valid request",
			body:         `{"longUrl":"https://example.com"}`,
			mockResponse: &service.ShortURL{Code: "abc123", LongURL: "https://example.com", ShortURL: "http://localhost:8080/abc123"},
			expectCall:   true,
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":"abc123","shortUrl":"http://localhost:8080/abc123","longUrl":"https://example.com","clickCount":0}`,
		},
		{
			name:         "custom code conflict",
			body:         `{"longUrl":"https://example.com","customCode":"abc123"}`,
			mockError:    service.ErrCodeTaken,
			expectCall:   true,
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"conflict_error","message":"Custom code already exists"}`,
		},
		{
			name:         "invalid scheme",
			body:         `{"longUrl":"example.com"}`,
			mockError:    service.ErrInvalidURL,
			expectCall:   true,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"validation_error","message":"URL must start with http:// or https://"}`,
		},
		{
			name:         "whitespace-only longUrl",
			body:         `{"longUrl":"   "}`,
			mockError:    service.ErrEmptyURL,
			expectCall:   true,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"validation_error","message":"longUrl is required"}`,
		},
		{
			name:         "missing longUrl",
			body:         `{"customCode":"abc123"}`,
			expectCall:   false,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"validation_error","message":"longUrl is required"}`,
		},
		{
			name:         "malformed json",
			body:         `{"longUrl":`,
			expectCall:   false,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"validation_error","message":"Request body contains badly-formed JSON"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newTestPostHandler(t)

			if tt.expectCall {
				mockService.EXPECT().
					CreateShortURL(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.mockResponse, tt.mockError).
					Times(1)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/urls", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			handler.CreateV1(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestCreateV1_PassesCustomCode(t *testing.T) {
	handler, mockService := newTestPostHandler(t)

	mockService.EXPECT().
		CreateShortURL(gomock.Any(), "https://example.com", "mycode").
		Return(&service.ShortURL{Code: "mycode", LongURL: "https://example.com", ShortURL: "http://localhost:8080/mycode"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/v1/urls", strings.NewReader(`{"longUrl":"https://example.com","customCode":"mycode"}`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.CreateV1(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

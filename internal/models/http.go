// Package models defines the request and response bodies of the HTTP API.
package models

// CreateRequest is the body of POST /v1/urls.
type CreateRequest struct {
	// LongURL is the destination URL, required, http(s) scheme only.
	LongURL string `json:"longUrl"`

	// CustomCode optionally fixes the short code instead of generating one.
	CustomCode string `json:"customCode,omitempty"`
}

// ShortURLResponse describes one short URL.
type ShortURLResponse struct {
	ID         string `json:"id"`
	ShortURL   string `json:"shortUrl"`
	LongURL    string `json:"longUrl"`
	ClickCount int    `json:"clickCount"`
}

// SimpleResponse is the body returned by the plain create endpoint.
type SimpleResponse struct {
	ShortURL string `json:"short_url"`
}

// ListResponse is one page of the URL listing.
type ListResponse struct {
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
	TotalItems int64              `json:"totalItems"`
	Items      []ShortURLResponse `json:"items"`
}

// ErrorResponse is the uniform failure body: a stable machine code plus a
// human-readable message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

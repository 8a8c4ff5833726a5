package service

import (
	"context"

	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/storage"
)

// Storage is the minimal relational contract the shortener service consumes.
// Implementations signal duplicates with storage.ErrConflict and misses with
// storage.ErrNotFound.
type Storage interface {
	FindURLIDByValue(ctx context.Context, value string) (int64, error)
	InsertURL(ctx context.Context, value string) (int64, error)
	FindCodeByURLID(ctx context.Context, urlID int64) (string, error)
	FindURLByCode(ctx context.Context, code string) (*storage.URLRecord, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	InsertCode(ctx context.Context, urlID int64, code string) error
	InsertFirstCode(ctx context.Context, urlID int64, code string) error
	ListURLsWithCodes(ctx context.Context, limit, offset int) ([]storage.URLRecord, error)
	CountURLCodePairs(ctx context.Context) (int64, error)
	PingContext(ctx context.Context) error
}

// Generator produces candidate short codes.
type Generator interface {
	Generate() (string, error)
}

// ShortenerIface is the service surface consumed by the HTTP handlers.
type ShortenerIface interface {
	Shorten(ctx context.Context, longURL string) (*ShortURL, error)
	CreateShortURL(ctx context.Context, longURL, customCode string) (*ShortURL, error)
	Resolve(ctx context.Context, code string) (string, error)
	GetByCode(ctx context.Context, code string) (*ShortURL, error)
	List(ctx context.Context, page, limit int) (*URLPage, error)
	PingContext(ctx context.Context) error
}

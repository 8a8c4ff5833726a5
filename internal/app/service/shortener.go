package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/storage"
)

const (
	// codeInsertRetries bounds the generate-and-insert loop. Each attempt is
	// an independent insert; a unique violation means another caller won the
	// code and the loop retries with a fresh candidate.
	codeInsertRetries = 10

	defaultPageLimit = 10
	maxPageLimit     = 100
)

// ShortURL is the result of a create or lookup operation.
type ShortURL struct {
	Code     string
	LongURL  string
	ShortURL string
}

// URLPage is one page of the URL listing.
type URLPage struct {
	Items      []ShortURL
	Page       int
	Limit      int
	TotalPages int
	TotalItems int64
}

// ShortenerService implements get-or-create URL storage, collision-safe code
// minting and redirect resolution on top of a Storage backend.
type ShortenerService struct {
	storage Storage
	gen     Generator
	logger  *zap.Logger
	baseURL string
}

// NewShortener builds the service. baseURL is fixed for the process lifetime.
func NewShortener(s Storage, gen Generator, logger *zap.Logger, baseURL string) *ShortenerService {
	return &ShortenerService{
		storage: s,
		gen:     gen,
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Shorten is the simple create path: get-or-create the URL row and reuse an
// existing code when one is already assigned, so repeating the call with the
// same URL returns the same short URL.
func (s *ShortenerService) Shorten(ctx context.Context, longURL string) (*ShortURL, error) {
	if strings.TrimSpace(longURL) == "" {
		return nil, ErrEmptyURL
	}

	urlID, err := s.getOrCreateURLID(ctx, longURL)
	if err != nil {
		return nil, err
	}

	code, err := s.storage.FindCodeByURLID(ctx, urlID)
	if err == nil {
		return s.result(code, longURL), nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	code, err = s.mintFirstCode(ctx, urlID)
	if err != nil {
		return nil, err
	}
	return s.result(code, longURL), nil
}

// CreateShortURL is the strictly-validated path: the URL must carry an http(s)
// scheme, a supplied custom code must be available, and a code is always bound
// for this request rather than short-circuiting on an existing one.
func (s *ShortenerService) CreateShortURL(ctx context.Context, longURL, customCode string) (*ShortURL, error) {
	if strings.TrimSpace(longURL) == "" {
		return nil, ErrEmptyURL
	}
	if !strings.HasPrefix(longURL, "http://") && !strings.HasPrefix(longURL, "https://") {
		return nil, ErrInvalidURL
	}

	if customCode != "" {
		// Availability check before any write, so a conflict creates no rows.
		taken, err := s.storage.CodeExists(ctx, customCode)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrCodeTaken
		}
	}

	urlID, err := s.getOrCreateURLID(ctx, longURL)
	if err != nil {
		return nil, err
	}

	if customCode != "" {
		if err := s.storage.InsertCode(ctx, urlID, customCode); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				// Lost the race to a concurrent claim of the same code.
				return nil, ErrCodeTaken
			}
			return nil, err
		}
		return s.result(customCode, longURL), nil
	}

	code, err := s.mintCode(ctx, urlID)
	if err != nil {
		return nil, err
	}
	return s.result(code, longURL), nil
}

// Resolve returns the destination URL for a code. Stored values without a
// scheme are prefixed with http:// in the returned value only; the row itself
// is never rewritten.
func (s *ShortenerService) Resolve(ctx context.Context, code string) (string, error) {
	rec, err := s.storage.FindURLByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return normalizeScheme(rec.Original), nil
}

// GetByCode returns the structured record for a code without redirecting.
func (s *ShortenerService) GetByCode(ctx context.Context, code string) (*ShortURL, error) {
	rec, err := s.storage.FindURLByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.result(rec.Code, rec.Original), nil
}

// List returns one page of every URL that has at least one short code, newest
// first. page is clamped to 1; a limit outside [1,100] resets to the default.
func (s *ShortenerService) List(ctx context.Context, page, limit int) (*URLPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}

	total, err := s.storage.CountURLCodePairs(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.storage.ListURLsWithCodes(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	items := make([]ShortURL, 0, len(records))
	for _, rec := range records {
		items = append(items, *s.result(rec.Code, rec.Original))
	}

	return &URLPage{
		Items:      items,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		TotalItems: total,
	}, nil
}

func (s *ShortenerService) PingContext(ctx context.Context) error {
	return s.storage.PingContext(ctx)
}

// getOrCreateURLID deduplicates destination URLs. The uniqueness constraint
// on long_url is the final arbiter: a losing insert converts into a lookup of
// the winner's row.
func (s *ShortenerService) getOrCreateURLID(ctx context.Context, longURL string) (int64, error) {
	id, err := s.storage.FindURLIDByValue(ctx, longURL)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return 0, err
	}

	id, err = s.storage.InsertURL(ctx, longURL)
	if errors.Is(err, storage.ErrConflict) {
		return s.storage.FindURLIDByValue(ctx, longURL)
	}
	return id, err
}

// mintCode generates candidate codes and inserts until one wins the
// uniqueness constraint. The URL row stays in place when retries run out, so
// a later call can reuse it.
func (s *ShortenerService) mintCode(ctx context.Context, urlID int64) (string, error) {
	for attempt := 0; attempt < codeInsertRetries; attempt++ {
		code, err := s.gen.Generate()
		if err != nil {
			return "", err
		}

		err = s.storage.InsertCode(ctx, urlID, code)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, storage.ErrConflict) {
			return "", err
		}

		s.logger.Info("short code collision, retrying",
			zap.String("code", code),
			zap.Int("attempt", attempt+1),
		)
	}
	return "", ErrCodeExhausted
}

// mintFirstCode is the simple-path variant of mintCode: it binds at most one
// code per URL. A conflict is either a code collision (retry with a fresh
// candidate) or a concurrent caller having minted first (reuse their code);
// which one is decided by re-reading the URL's code.
func (s *ShortenerService) mintFirstCode(ctx context.Context, urlID int64) (string, error) {
	for attempt := 0; attempt < codeInsertRetries; attempt++ {
		code, err := s.gen.Generate()
		if err != nil {
			return "", err
		}

		err = s.storage.InsertFirstCode(ctx, urlID, code)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, storage.ErrConflict) {
			return "", err
		}

		existing, err := s.storage.FindCodeByURLID(ctx, urlID)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return "", err
		}

		s.logger.Info("short code collision, retrying",
			zap.String("code", code),
			zap.Int("attempt", attempt+1),
		)
	}
	return "", ErrCodeExhausted
}

func (s *ShortenerService) result(code, longURL string) *ShortURL {
	return &ShortURL{
		Code:     code,
		LongURL:  longURL,
		ShortURL: s.baseURL + "/" + code,
	}
}

func normalizeScheme(u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "http://" + u
}

package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

type urlRow struct {
	value     string
	createdAt time.Time
}

type codeRow struct {
	urlID     int64
	code      string
	createdAt time.Time
}

// MemoryStorage keeps URLs and short codes in mutex-guarded maps. It enforces
// the same uniqueness rules as the relational schema and is used when no
// database DSN is configured, and by the service tests.
type MemoryStorage struct {
	mu      sync.RWMutex
	nextID  int64
	urls    map[int64]urlRow
	byValue map[string]int64
	byCode  map[string]codeRow
	pairs   []codeRow
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		urls:    make(map[int64]urlRow),
		byValue: make(map[string]int64),
		byCode:  make(map[string]codeRow),
	}, nil
}

func (m *MemoryStorage) FindURLIDByValue(_ context.Context, value string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byValue[value]
	if !ok {
		return 0, ErrNotFound
	}
	return id, nil
}

func (m *MemoryStorage) InsertURL(_ context.Context, value string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byValue[value]; exists {
		return 0, ErrConflict
	}

	m.nextID++
	id := m.nextID
	m.urls[id] = urlRow{value: value, createdAt: time.Now()}
	m.byValue[value] = id
	return id, nil
}

func (m *MemoryStorage) FindCodeByURLID(_ context.Context, urlID int64) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Insertion order, so the first code minted for the URL wins.
	for _, p := range m.pairs {
		if p.urlID == urlID {
			return p.code, nil
		}
	}
	return "", ErrNotFound
}

func (m *MemoryStorage) FindURLByCode(_ context.Context, code string) (*URLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	row, ok := m.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}

	u, ok := m.urls[row.urlID]
	if !ok {
		return nil, ErrNotFound
	}

	return &URLRecord{Code: code, Original: u.value, CreatedAt: u.createdAt}, nil
}

func (m *MemoryStorage) CodeExists(_ context.Context, code string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.byCode[code]
	return ok, nil
}

func (m *MemoryStorage) InsertCode(_ context.Context, urlID int64, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byCode[code]; exists {
		return ErrConflict
	}
	if _, exists := m.urls[urlID]; !exists {
		return ErrNotFound
	}

	row := codeRow{urlID: urlID, code: code, createdAt: time.Now()}
	m.byCode[code] = row
	m.pairs = append(m.pairs, row)
	return nil
}

// InsertFirstCode inserts code only when the URL has no code yet. ErrConflict
// covers both losing cases: the code value is taken, or another caller
// already minted a code for this URL.
func (m *MemoryStorage) InsertFirstCode(_ context.Context, urlID int64, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byCode[code]; exists {
		return ErrConflict
	}
	if _, exists := m.urls[urlID]; !exists {
		return ErrNotFound
	}
	for _, p := range m.pairs {
		if p.urlID == urlID {
			return ErrConflict
		}
	}

	row := codeRow{urlID: urlID, code: code, createdAt: time.Now()}
	m.byCode[code] = row
	m.pairs = append(m.pairs, row)
	return nil
}

func (m *MemoryStorage) ListURLsWithCodes(_ context.Context, limit, offset int) ([]URLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Ordered by URL creation time, newest first, to match the relational
	// store. A late code bound to an old URL must not jump the queue.
	ordered := make([]codeRow, len(m.pairs))
	copy(ordered, m.pairs)
	sort.SliceStable(ordered, func(i, j int) bool {
		ui, uj := m.urls[ordered[i].urlID], m.urls[ordered[j].urlID]
		if !ui.createdAt.Equal(uj.createdAt) {
			return ui.createdAt.After(uj.createdAt)
		}
		return ordered[i].urlID > ordered[j].urlID
	})

	records := make([]URLRecord, 0, limit)
	for i := offset; i < len(ordered) && len(records) < limit; i++ {
		p := ordered[i]
		u := m.urls[p.urlID]
		records = append(records, URLRecord{Code: p.code, Original: u.value, CreatedAt: u.createdAt})
	}
	return records, nil
}

func (m *MemoryStorage) CountURLCodePairs(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.pairs)), nil
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return nil
}

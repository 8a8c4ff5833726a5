package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_URLUniqueness(t *testing.T) {
	m, err := CreateMemoryStorage()
	require.NoError(t, err)
	ctx := context.Background()

	id, err := m.InsertURL(ctx, "https://example.com")
	require.NoError(t, err)

	_, err = m.InsertURL(ctx, "https://example.com")
	assert.ErrorIs(t, err, ErrConflict)

	found, err := m.FindURLIDByValue(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, id, found)

	_, err = m.FindURLIDByValue(ctx, "https://missing.example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorage_CodeUniqueness(t *testing.T) {
	m, err := CreateMemoryStorage()
	require.NoError(t, err)
	ctx := context.Background()

	id, err := m.InsertURL(ctx, "https://example.com")
	require.NoError(t, err)
	otherID, err := m.InsertURL(ctx, "https://other.example.com")
	require.NoError(t, err)

	require.NoError(t, m.InsertCode(ctx, id, "abc123"))
	assert.ErrorIs(t, m.InsertCode(ctx, otherID, "abc123"), ErrConflict)

	exists, err := m.CodeExists(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = m.CodeExists(ctx, "zzz999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryStorage_InsertFirstCode(t *testing.T) {
	m, err := CreateMemoryStorage()
	require.NoError(t, err)
	ctx := context.Background()

	id, err := m.InsertURL(ctx, "https://example.com")
	require.NoError(t, err)

	require.NoError(t, m.InsertFirstCode(ctx, id, "abc123"))

	// Second mint for the same URL loses, whatever the candidate.
	assert.ErrorIs(t, m.InsertFirstCode(ctx, id, "def456"), ErrConflict)

	code, err := m.FindCodeByURLID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "abc123", code)
}

func TestMemoryStorage_FindURLByCode(t *testing.T) {
	m, err := CreateMemoryStorage()
	require.NoError(t, err)
	ctx := context.Background()

	id, err := m.InsertURL(ctx, "https://example.com")
	require.NoError(t, err)
	require.NoError(t, m.InsertCode(ctx, id, "abc123"))

	rec, err := m.FindURLByCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", rec.Original)
	assert.Equal(t, "abc123", rec.Code)

	_, err = m.FindURLByCode(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorage_ListAndCount(t *testing.T) {
	m, err := CreateMemoryStorage()
	require.NoError(t, err)
	ctx := context.Background()

	for i, u := range []string{"https://a.example.com", "https://b.example.com", "https://c.example.com"} {
		id, err := m.InsertURL(ctx, u)
		require.NoError(t, err)
		require.NoError(t, m.InsertCode(ctx, id, []string{"aaa111", "bbb222", "ccc333"}[i]))
	}

	count, err := m.CountURLCodePairs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	records, err := m.ListURLsWithCodes(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ccc333", records[0].Code)
	assert.Equal(t, "bbb222", records[1].Code)

	records, err = m.ListURLsWithCodes(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "aaa111", records[0].Code)
}

func TestMemoryStorage_ListOrdersByURLCreation(t *testing.T) {
	m, err := CreateMemoryStorage()
	require.NoError(t, err)
	ctx := context.Background()

	oldID, err := m.InsertURL(ctx, "https://old.example.com")
	require.NoError(t, err)
	require.NoError(t, m.InsertCode(ctx, oldID, "old111"))

	newID, err := m.InsertURL(ctx, "https://new.example.com")
	require.NoError(t, err)
	require.NoError(t, m.InsertCode(ctx, newID, "new222"))

	// A code bound to the old URL after the new URL exists. Ordering follows
	// the URL's creation time, not the binding time.
	require.NoError(t, m.InsertCode(ctx, oldID, "old333"))

	records, err := m.ListURLsWithCodes(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "new222", records[0].Code)
	assert.Equal(t, "https://old.example.com", records[1].Original)
	assert.Equal(t, "https://old.example.com", records[2].Original)
}

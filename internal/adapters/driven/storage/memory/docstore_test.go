package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
)

func TestNewDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.documents)
	assert.NotNil(t, store.writes)
}

func TestDocumentStore_ReadNotFound(t *testing.T) {
	store := NewDocumentStore()

	_, err := store.Read(context.Background(), "missing.html")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_PutRead(t *testing.T) {
	store := NewDocumentStore()
	store.Put("a.html", "<p>a</p>")

	data, err := store.Read(context.Background(), "a.html")

	require.NoError(t, err)
	assert.Equal(t, "<p>a</p>", string(data))
	assert.Zero(t, store.Writes("a.html"))
}

func TestDocumentStore_Write(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "a.html", []byte("one")))
	require.NoError(t, store.Write(ctx, "a.html", []byte("two")))

	assert.Equal(t, "two", store.Content("a.html"))
	assert.Equal(t, 2, store.Writes("a.html"))
}

func TestDocumentStore_ReadReturnsCopy(t *testing.T) {
	store := NewDocumentStore()
	store.Put("a.html", "abc")

	data, err := store.Read(context.Background(), "a.html")
	require.NoError(t, err)
	data[0] = 'x'

	assert.Equal(t, "abc", store.Content("a.html"))
}

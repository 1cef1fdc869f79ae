package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListKeys(t *testing.T) {
	assert.Equal(t, "list:customers", ListKey("customers"))
	assert.Equal(t, "list:localities:7", ScopedListKey("localities", 7))
	assert.Equal(t, "list:flats:120", ScopedListKey("flats", 120))
}

func TestCacheDisabledIsSafe(t *testing.T) {
	// Without Init the client is nil. Reads miss and writes are no-ops
	// instead of panicking, so the API works without Redis running.
	ctx := context.Background()

	assert.False(t, Available())

	_, ok := GetList(ctx, ListKey("customers"))
	assert.False(t, ok)

	SetList(ctx, ListKey("customers"), []byte(`{}`))
	Invalidate(ctx, "customers")
}

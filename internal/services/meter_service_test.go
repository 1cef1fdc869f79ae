package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeUnits(t *testing.T) {
	t.Run("normal consumption", func(t *testing.T) {
		units, valid := ComputeUnits(100, 142.5)
		assert.True(t, valid)
		assert.Equal(t, 42.5, units)
	})

	t.Run("no consumption", func(t *testing.T) {
		units, valid := ComputeUnits(100, 100)
		assert.True(t, valid)
		assert.Equal(t, 0.0, units)
	})

	t.Run("reading below previous is invalid", func(t *testing.T) {
		units, valid := ComputeUnits(100, 80)
		assert.False(t, valid)
		assert.Equal(t, 0.0, units)
	})
}

func TestImageSizeLimit(t *testing.T) {
	assert.Equal(t, 2*1024*1024, MaxImageSize)
	assert.Equal(t, "Image size must be less than 2MB", ErrImageTooLarge.Error())
}

type fakeDeleter struct {
	deleted []string
	err     error
}

func (f *fakeDeleter) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return f.err
}

func TestDiscardImage(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("insert failed")

	t.Run("deletes the orphaned object and keeps the cause", func(t *testing.T) {
		store := &fakeDeleter{}
		err := discardImage(ctx, store, "meter-images/1/abc", cause)
		assert.Equal(t, cause, err)
		assert.Equal(t, []string{"meter-images/1/abc"}, store.deleted)
	})

	t.Run("no image means no delete", func(t *testing.T) {
		store := &fakeDeleter{}
		err := discardImage(ctx, store, "", cause)
		assert.Equal(t, cause, err)
		assert.Empty(t, store.deleted)
	})

	t.Run("failed delete is reported with the cause", func(t *testing.T) {
		store := &fakeDeleter{err: errors.New("bucket unreachable")}
		err := discardImage(ctx, store, "meter-images/1/abc", cause)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "not cleaned up")
	})
}

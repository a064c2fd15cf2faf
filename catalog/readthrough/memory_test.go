package readthrough

import (
	"context"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend(t *testing.T) {
	mock := clock.NewMock()
	backend := NewMemoryBackend(mock)
	ctx := context.Background()

	_, found, err := backend.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, backend.Set(ctx, "k", []byte("v1"), time.Minute))
	value, found, err := backend.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v1"), value)

	require.NoError(t, backend.Set(ctx, "k", []byte("v2"), time.Minute))
	value, _, _ = backend.Get(ctx, "k")
	assert.Equal(t, []byte("v2"), value)

	mock.Add(time.Minute)
	_, found, err = backend.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, backend.Len())
}

package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalExclusive(t *testing.T) {
	l := NewLocal()
	release, err := l.Lock(context.Background(), "room:1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "room:1")
	assert.ErrorIs(t, err, ErrNotAcquired)

	other, err := l.Lock(context.Background(), "room:2")
	require.NoError(t, err)
	other()

	release()
	release() // second call is a no-op
	again, err := l.Lock(context.Background(), "room:1")
	require.NoError(t, err)
	again()
}

func TestLocalForgetsIdleKeys(t *testing.T) {
	l := NewLocal()
	release, err := l.Lock(context.Background(), "room:1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "room:1")
	require.ErrorIs(t, err, ErrNotAcquired)
	assert.Equal(t, 1, l.slots["room:1"].refs)

	release()
	assert.Empty(t, l.slots)

	for i := 0; i < 3; i++ {
		r, err := l.Lock(context.Background(), "room:2")
		require.NoError(t, err)
		r()
	}
	assert.Empty(t, l.slots)
}

func TestLocalHandsOver(t *testing.T) {
	l := NewLocal()
	release, err := l.Lock(context.Background(), "room:1")
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		r, err := l.Lock(context.Background(), "room:1")
		if err == nil {
			r()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired a held lock")
	case <-time.After(20 * time.Millisecond):
	}
	release()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock was not handed over")
	}
}

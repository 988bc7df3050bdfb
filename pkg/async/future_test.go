package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoWithoutDelay(t *testing.T) {
	f := Go(context.Background(), 0, func(context.Context) (int, error) {
		return 42, nil
	})

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestGoHonoursDelay(t *testing.T) {
	start := time.Now()
	v, err := Go(context.Background(), 30*time.Millisecond, func(context.Context) (string, error) {
		return "ok", nil
	}).Await(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestGoPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Go(context.Background(), 0, func(context.Context) (int, error) {
		return 0, boom
	}).Await(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestCancelDuringDelaySkipsLoader(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var called atomic.Bool

	f := Go(ctx, time.Hour, func(context.Context) (int, error) {
		called.Store(true)
		return 1, nil
	})
	cancel()

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called.Load())
}

func TestAwaitRespectsCallerContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	f := Go(context.Background(), 0, func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDelayer(t *testing.T) {
	d := NewDelayer(800 * time.Millisecond)
	assert.Equal(t, 800*time.Millisecond, d.Get())

	d.Set(-time.Second)
	assert.Equal(t, time.Duration(0), d.Get())

	var nilDelayer *Delayer
	assert.Equal(t, time.Duration(0), nilDelayer.Get())
}

func TestLoadUsesDelayer(t *testing.T) {
	d := NewDelayer(0)
	v, err := Load(context.Background(), d, func(context.Context) ([]string, error) {
		return []string{"c1"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, v)
}

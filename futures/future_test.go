package futures

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	ErrTest = errors.New("test error")
)

func TestFuture(t *testing.T) {
	req := require.New(t)

	f := New[int]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Complete(1)
		f.Complete(2)
		f.Complete(3)
	}()

	v, err := f.Get(context.Background())
	req.NoError(err)
	req.Equal(1, v)
}

func TestFromFunc(t *testing.T) {
	req := require.New(t)

	f := FromFunc(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 42, nil
	})

	r, err := f.Get(context.Background())
	req.NoError(err)
	req.Equal(42, r)

	f = FromFunc(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 0, ErrTest
	})

	_, err = f.Get(context.Background())
	req.ErrorIs(err, ErrTest)
}

func TestCompleteOnce(t *testing.T) {
	req := require.New(t)

	f := New[int]()

	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Complete(42)
		}()
	}

	v, err := f.Get(context.Background())
	req.NoError(err)
	req.Equal(42, v)

	// later failures are ignored once the future has settled
	f.Fail(ErrTest)
	v, err = f.Get(context.Background())
	req.NoError(err)
	req.Equal(42, v)

	wg.Wait()
}

func TestCancel(t *testing.T) {
	req := require.New(t)

	f := New[int]()
	f.Cancel()

	_, err := f.Get(context.Background())
	req.ErrorIs(err, ErrCanceled)
}

func TestGetContextCanceled(t *testing.T) {
	req := require.New(t)

	f := New[int]()
	defer f.Cancel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Get(ctx)
	req.ErrorIs(err, context.Canceled)
}

package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/faultline-dev/faultline/results"
	"github.com/faultline-dev/faultline/serviceerr"
)

func TestWithTimeoutExpires(t *testing.T) {
	require := require.New(t)

	opDone := make(chan struct{})
	op := func(ctx context.Context) results.Result[int] {
		defer close(opDone)
		select {
		case <-time.After(200 * time.Millisecond):
			return results.Success(1)
		case <-ctx.Done():
			return results.Failure[int](ctx.Err())
		}
	}

	start := time.Now()
	r := WithTimeout(context.Background(), 50*time.Millisecond, op)
	elapsed := time.Since(start)

	require.True(r.IsFailure())
	require.True(serviceerr.HasCode(r.Err, serviceerr.CodeOperationTimeout))

	var se *serviceerr.Error
	require.ErrorAs(r.Err, &se)
	require.Equal(int64(50), se.Details["timeoutMs"])

	// the call returned at the deadline, not when the operation finished
	require.GreaterOrEqual(elapsed, 45*time.Millisecond)
	require.Less(elapsed, 150*time.Millisecond)

	<-opDone
}

func TestWithTimeoutFastOp(t *testing.T) {
	require := require.New(t)

	op := func(ctx context.Context) results.Result[int] {
		time.Sleep(10 * time.Millisecond)
		return results.Success(42)
	}

	r := WithTimeout(context.Background(), 50*time.Millisecond, op)
	require.Equal(results.Success(42), r)
}

func TestWithTimeoutOpFailurePassesThrough(t *testing.T) {
	require := require.New(t)

	op := func(ctx context.Context) results.Result[int] {
		return results.Failure[int](errTest)
	}

	r := WithTimeout(context.Background(), 50*time.Millisecond, op)
	require.ErrorIs(r.Err, errTest)

	// the operation's own failure is not rewrapped
	_, ok := serviceerr.GetCode(r.Err)
	require.False(ok)
}

func TestWithTimeoutOpPanics(t *testing.T) {
	require := require.New(t)

	op := func(ctx context.Context) results.Result[int] {
		panic("op exploded")
	}

	r := WithTimeout(context.Background(), 50*time.Millisecond, op)
	require.True(r.IsFailure())
	require.True(serviceerr.HasCode(r.Err, serviceerr.CodeTimeoutError))

	var se *serviceerr.Error
	require.ErrorAs(r.Err, &se)
	require.Equal("op exploded", se.Details["panic"])
}

func TestWithTimeoutParentContextCanceled(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	op := func(ctx context.Context) results.Result[int] {
		<-ctx.Done()
		return results.Failure[int](ctx.Err())
	}

	r := WithTimeout(ctx, time.Minute, op)
	require.True(r.IsFailure())
	require.False(serviceerr.HasCode(r.Err, serviceerr.CodeOperationTimeout))
	require.ErrorIs(r.Err, context.Canceled)
}

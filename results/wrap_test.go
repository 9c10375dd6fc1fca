package results

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/faultline-dev/faultline/serviceerr"
)

func TestWrap(t *testing.T) {
	require := require.New(t)

	r := Wrap(func() (int, error) { return 42, nil })
	require.Equal(Success(42), r)

	r = Wrap(func() (int, error) { return 0, errTest })
	require.ErrorIs(r.Err, errTest)
	_, ok := serviceerr.GetCode(r.Err)
	require.False(ok)
}

func TestWrapPanic(t *testing.T) {
	require := require.New(t)

	r := Wrap(func() (int, error) { panic("boom") })
	require.True(r.IsFailure())
	require.True(serviceerr.HasCode(r.Err, serviceerr.CodeFunctionError))

	var se *serviceerr.Error
	require.ErrorAs(r.Err, &se)
	require.Equal("boom", se.Details["panic"])

	// a panicking error value is preserved as the cause
	r = Wrap(func() (int, error) { panic(errTest) })
	require.True(serviceerr.HasCode(r.Err, serviceerr.CodeFunctionError))
	require.ErrorIs(r.Err, errTest)
}

func TestWrapFunc(t *testing.T) {
	require := require.New(t)

	calls := 0
	fn := WrapFunc(func() (int, error) {
		calls++
		if calls == 1 {
			panic("first call panics")
		}
		return calls, nil
	})

	require.True(serviceerr.HasCode(fn().Err, serviceerr.CodeFunctionError))
	require.Equal(Success(2), fn())
}

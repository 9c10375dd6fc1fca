package results

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test err")

func TestResult(t *testing.T) {
	require := require.New(t)

	r := New(1, nil)
	require.Equal(1, r.Val)
	require.NoError(r.Err)
	require.True(r.IsSuccess())
	require.False(r.IsFailure())

	r = Success(2)
	require.Equal(2, r.Val)
	require.NoError(r.Err)
	require.True(r.IsSuccess())

	r = Failure[int](errTest)
	require.Equal(0, r.Val)
	require.ErrorIs(r.Err, errTest)
	require.True(r.IsFailure())
	require.False(r.IsSuccess())

	r = New(0, errTest)
	require.True(r.IsFailure())
}

func TestUnwrap(t *testing.T) {
	require := require.New(t)

	v, err := Success(42).Unwrap()
	require.NoError(err)
	require.Equal(42, v)

	v, err = Failure[int](errTest).Unwrap()
	require.ErrorIs(err, errTest)
	require.Equal(0, v)

	require.Equal(42, Success(42).UnwrapOr(7))
	require.Equal(7, Failure[int](errTest).UnwrapOr(7))
}

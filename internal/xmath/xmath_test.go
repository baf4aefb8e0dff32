package xmath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcfssp/internal/xmath"
)

func TestAbsDiff(t *testing.T) {
	require.Equal(t, 3, xmath.AbsDiff(5, 2))
	require.Equal(t, 3, xmath.AbsDiff(2, 5))
	require.Equal(t, 0.5, xmath.AbsDiff(1.5, 1.0))
}

func TestSignbit(t *testing.T) {
	require.True(t, xmath.Signbit(-0.1))
	require.False(t, xmath.Signbit(0.0))
	require.False(t, xmath.Signbit(4.2))
}

package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBetter(t *testing.T) {
	require.True(t, better(3, 2))
	require.False(t, better(2, 2), "ties keep the incumbent")
	require.False(t, better(1, 2))
}

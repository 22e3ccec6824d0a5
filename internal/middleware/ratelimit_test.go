// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPerWindow(t *testing.T) {
	t.Parallel()

	limit := PerWindow(100, 20, 30*time.Second)
	require.Equal(t, 100, limit.Rate)
	require.Equal(t, 20, limit.Burst)
	require.Equal(t, 30*time.Second, limit.Period)
}

func TestPerWindow_NonPositivePeriodDefaults(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Minute, PerWindow(100, 20, 0).Period)
	require.Equal(t, time.Minute, PerWindow(100, 20, -time.Second).Period)
}

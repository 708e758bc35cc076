package llm

import (
	"context"
	"testing"
	"time"

	"birthday-twins/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotaLimiterDailyLimit(t *testing.T) {
	l := NewQuotaLimiter(config.QuotaConfig{RequestsPerDay: 2})

	for i := 0; i < 2; i++ {
		ok, err := l.WaitAndReserve(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuotaLimiterResetsOnNewDay(t *testing.T) {
	day := time.Date(2026, 2, 28, 23, 59, 0, 0, time.UTC)
	l := NewQuotaLimiter(config.QuotaConfig{RequestsPerDay: 1})
	l.now = func() time.Time { return day }

	ok, _ := l.WaitAndReserve(context.Background())
	assert.True(t, ok)
	ok, _ = l.WaitAndReserve(context.Background())
	assert.False(t, ok)

	day = day.Add(2 * time.Minute)
	ok, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestQuotaLimiterHonoursContextWhileWaiting(t *testing.T) {
	l := NewQuotaLimiter(config.QuotaConfig{RequestsPerMinute: 1})

	ok, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	ok, err = l.WaitAndReserve(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNilQuotaLimiterIsUnlimited(t *testing.T) {
	var l *QuotaLimiter
	ok, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

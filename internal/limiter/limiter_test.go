package limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiter(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(time.Minute, 3)
	l.now = func() time.Time { return clock }

	assert.False(t, l.TooMany("ip|a"))

	l.Fail("ip|a")
	l.Fail("ip|a")
	assert.False(t, l.TooMany("ip|a"))

	l.Fail("ip|a")
	assert.True(t, l.TooMany("ip|a"))
	assert.False(t, l.TooMany("ip|b"), "keys are independent")

	clock = clock.Add(2 * time.Minute)
	assert.False(t, l.TooMany("ip|a"), "failures expire")
}

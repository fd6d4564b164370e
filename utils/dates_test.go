package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	in := time.Date(2026, 9, 14, 17, 45, 12, 500, time.UTC)
	got := BeginningOfDay(in)
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 9, 14, 23, 0, 0, 0, time.UTC)
	b := time.Date(2026, 9, 15, 1, 0, 0, 0, time.UTC)

	// Calendar days, not 24h periods.
	assert.Equal(t, 1, DaysBetween(a, b))
	assert.Equal(t, -1, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

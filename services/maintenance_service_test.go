package services

import (
	"testing"

	"fitclub-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.IssueReported, models.IssueInProgress, true},
		{models.IssueInProgress, models.IssueResolved, true},

		// Skipping a step is illegal.
		{models.IssueReported, models.IssueResolved, false},

		// Backward moves are illegal.
		{models.IssueInProgress, models.IssueReported, false},
		{models.IssueResolved, models.IssueInProgress, false},
		{models.IssueResolved, models.IssueReported, false},

		// Resolved is terminal, self-loops included.
		{models.IssueResolved, models.IssueResolved, false},
		{models.IssueReported, models.IssueReported, false},
		{models.IssueInProgress, models.IssueInProgress, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canTransition(tt.from, tt.to),
			"transition %s -> %s", tt.from, tt.to)
	}
}

func TestValidPriority(t *testing.T) {
	for _, p := range []string{models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityCritical} {
		assert.True(t, validPriority(p), p)
	}
	assert.False(t, validPriority("urgent"))
	assert.False(t, validPriority(""))
	assert.False(t, validPriority("low"))
}

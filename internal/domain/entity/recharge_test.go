package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRechargeWindowDays(t *testing.T) {
	testCases := []struct {
		name     string
		ageYears int
		expected int
	}{
		{"Child", 7, 365},
		{"Adult", 45, 365},
		{"Exactly sixty", 60, 365},
		{"Just past sixty", 61, 180},
		{"Elderly", 85, 180},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RechargeWindowDays(tc.ageYears))
		})
	}
}

func TestElapsedDays(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		last     time.Time
		now      time.Time
		expected int
	}{
		{"Same instant", base, base, 0},
		{"Exactly one day", base, base.Add(24 * time.Hour), 1},
		{"One second short of a day rounds up", base, base.Add(24*time.Hour - time.Second), 1},
		{"One second past a day rounds up", base, base.Add(24*time.Hour + time.Second), 2},
		{"Exactly 180 days", base, base.Add(180 * 24 * time.Hour), 180},
		{"Just under 180 days rounds up to 180", base, base.Add(180*24*time.Hour - time.Minute), 180},
		{"Exactly 365 days", base, base.Add(365 * 24 * time.Hour), 365},
		{"Future timestamp yields absolute count", base.Add(48 * time.Hour), base, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ElapsedDays(tc.last, tc.now))
		})
	}
}

func TestEvaluateRecharge(t *testing.T) {
	last := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Not due before the window", func(t *testing.T) {
		now := last.Add(179 * 24 * time.Hour)

		decision := EvaluateRecharge(70, last, now, 100)

		assert.False(t, decision.Due)
		assert.Zero(t, decision.NewBalance)
		assert.True(t, decision.LastRechargeAt.IsZero())
	})

	t.Run("Due exactly at the senior window", func(t *testing.T) {
		now := last.Add(180 * 24 * time.Hour)

		decision := EvaluateRecharge(70, last, now, 100)

		assert.True(t, decision.Due)
		assert.Equal(t, int64(100), decision.NewBalance)
		assert.Equal(t, now.Truncate(24*time.Hour), decision.LastRechargeAt)
	})

	t.Run("Standard bracket waits a full year", func(t *testing.T) {
		sixMonths := last.Add(180 * 24 * time.Hour)
		fullYear := last.Add(365 * 24 * time.Hour)

		assert.False(t, EvaluateRecharge(45, last, sixMonths, 100).Due)
		assert.True(t, EvaluateRecharge(45, last, fullYear, 100).Due)
	})

	t.Run("Age sixty exactly uses the standard window", func(t *testing.T) {
		sixMonths := last.Add(180 * 24 * time.Hour)

		assert.False(t, EvaluateRecharge(60, last, sixMonths, 100).Due)
	})

	t.Run("Second evaluation on the recharge day is not due again", func(t *testing.T) {
		now := last.Add(180*24*time.Hour + 3*time.Hour)

		first := EvaluateRecharge(70, last, now, 100)
		assert.True(t, first.Due)

		second := EvaluateRecharge(70, first.LastRechargeAt, now, 100)
		assert.False(t, second.Due)
	})

	t.Run("Mid-day timestamps round the partial day up", func(t *testing.T) {
		lastMidday := time.Date(2025, 3, 1, 15, 30, 0, 0, time.UTC)
		now := lastMidday.Add(179*24*time.Hour + 12*time.Hour)

		decision := EvaluateRecharge(70, lastMidday, now, 100)

		assert.True(t, decision.Due)
	})
}

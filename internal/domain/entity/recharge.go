package entity

import "time"

// Recharge window brackets. Accounts past the senior age threshold are
// replenished twice as often.
const (
	SeniorAgeYears     = 60
	SeniorWindowDays   = 180
	StandardWindowDays = 365
)

const hoursPerDay = 24

// RechargeDecision is the outcome of evaluating the recharge policy for an
// account at a point in time. When Due is false the other fields are zero.
type RechargeDecision struct {
	Due            bool
	NewBalance     int64
	LastRechargeAt time.Time
}

// RechargeWindowDays selects the eligibility window for an age bracket.
// Age 60 exactly is not a senior bracket: the window is 365 days.
func RechargeWindowDays(ageYears int) int {
	if ageYears > SeniorAgeYears {
		return SeniorWindowDays
	}
	return StandardWindowDays
}

// ElapsedDays returns the whole days between two instants. The difference is
// absolute, so clock skew that puts lastRechargeAt in the future never yields
// a negative count, and any fractional day rounds up.
func ElapsedDays(lastRechargeAt, now time.Time) int {
	diff := now.Sub(lastRechargeAt)
	if diff < 0 {
		diff = -diff
	}

	days := int(diff / (hoursPerDay * time.Hour))
	if diff%(hoursPerDay*time.Hour) != 0 {
		days++
	}
	return days
}

// EvaluateRecharge is the pure recharge-policy decision: due iff the elapsed
// whole days reach the account's window. When due, the new balance is the
// fixed replenishment amount and LastRechargeAt advances to now's day, which
// makes a second evaluation in the same request sequence see zero elapsed
// days and not be due again.
func EvaluateRecharge(ageYears int, lastRechargeAt, now time.Time, replenishAmount int64) RechargeDecision {
	window := RechargeWindowDays(ageYears)
	if ElapsedDays(lastRechargeAt, now) < window {
		return RechargeDecision{}
	}

	return RechargeDecision{
		Due:            true,
		NewBalance:     replenishAmount,
		LastRechargeAt: now.UTC().Truncate(hoursPerDay * time.Hour),
	}
}

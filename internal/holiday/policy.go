// Package holiday decides which dates a calendar highlights as non-working
// days. A Policy is immutable once built and safe for concurrent lookups.
package holiday

import (
	"time"
)

// Policy answers whether a date is a holiday. Only the calendar date of the
// argument is significant.
type Policy interface {
	IsHoliday(date time.Time) bool
}

// Func adapts a plain predicate to Policy.
type Func func(date time.Time) bool

// IsHoliday implements Policy.
func (f Func) IsHoliday(date time.Time) bool {
	if f == nil {
		return false
	}
	return f(date)
}

// Never is the policy used when no region or table applies.
var Never Policy = never{}

type never struct{}

func (never) IsHoliday(time.Time) bool { return false }

// Any reports a holiday when at least one of the policies does. Nil entries
// are ignored; with no usable policies it behaves like Never.
func Any(policies ...Policy) Policy {
	usable := make([]Policy, 0, len(policies))
	for _, p := range policies {
		if p != nil {
			usable = append(usable, p)
		}
	}
	switch len(usable) {
	case 0:
		return Never
	case 1:
		return usable[0]
	}
	return anyPolicy(usable)
}

type anyPolicy []Policy

func (a anyPolicy) IsHoliday(date time.Time) bool {
	for _, p := range a {
		if p.IsHoliday(date) {
			return true
		}
	}
	return false
}

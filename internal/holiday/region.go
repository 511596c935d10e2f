package holiday

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/es"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/us"
)

// Region is an upper-case ISO 3166-1 alpha-2 country code.
type Region string

const (
	US Region = "US"
	ES Region = "ES"
	GB Region = "GB"
	CA Region = "CA"
)

// ParseRegion normalises a user supplied code. Unknown codes are returned as
// given (upper-cased) and resolve to Never.
func ParseRegion(code string) Region {
	return Region(strings.ToUpper(strings.TrimSpace(code)))
}

var (
	registryMu sync.RWMutex
	registry   = map[Region][]*cal.Holiday{
		US: us.Holidays,
		ES: es.Holidays,
		GB: gb.Holidays,
		CA: ca.Holidays,
	}
)

// RegisterRegion adds a holiday table for a region code.
func RegisterRegion(region Region, holidays ...*cal.Holiday) error {
	region = ParseRegion(string(region))
	if region == "" {
		return fmt.Errorf("region code is empty")
	}
	if len(holidays) == 0 {
		return fmt.Errorf("region %s: no holidays supplied", region)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[region]; exists {
		return fmt.Errorf("region %s already registered", region)
	}
	registry[region] = append([]*cal.Holiday(nil), holidays...)
	return nil
}

// Known reports whether region has a holiday table.
func Known(region Region) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[ParseRegion(string(region))]
	return ok
}

// Regions lists the registered region codes in sorted order.
func Regions() []Region {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Region, 0, len(registry))
	for r := range registry {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ForRegion builds the policy for a region's public holidays, counting both
// the actual and the observed (substitute) date. An empty or unknown region
// yields Never; it never fails.
func ForRegion(region Region) Policy {
	registryMu.RLock()
	holidays, ok := registry[ParseRegion(string(region))]
	registryMu.RUnlock()
	if !ok {
		return Never
	}

	bc := cal.NewBusinessCalendar()
	bc.AddHoliday(holidays...)
	return &regionPolicy{calendar: bc}
}

type regionPolicy struct {
	calendar *cal.BusinessCalendar
}

func (p *regionPolicy) IsHoliday(date time.Time) bool {
	actual, observed, _ := p.calendar.IsHoliday(date)
	return actual || observed
}

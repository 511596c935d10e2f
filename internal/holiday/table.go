package holiday

import (
	"fmt"
	"strings"
	"time"
)

type monthDay struct {
	month time.Month
	day   int
}

// Table is a fixed list of dates: recurring month/day pairs and one-off dates.
type Table struct {
	recurring map[monthDay]struct{}
	once      map[string]struct{}
}

// ParseTable builds a Table from entries written as "MM-DD" (every year) or
// "YYYY-MM-DD" (that date only).
func ParseTable(entries []string) (*Table, error) {
	t := &Table{
		recurring: make(map[monthDay]struct{}),
		once:      make(map[string]struct{}),
	}
	for i, raw := range entries {
		entry := strings.TrimSpace(raw)
		if d, err := time.Parse("2006-01-02", entry); err == nil {
			t.once[d.Format("2006-01-02")] = struct{}{}
			continue
		}
		// 2000 is a leap year, so "02-29" is accepted.
		d, err := time.Parse("2006-01-02", "2000-"+entry)
		if err != nil || len(entry) != len("01-02") {
			return nil, fmt.Errorf("holidays[%d]: %q is not MM-DD or YYYY-MM-DD", i, raw)
		}
		t.recurring[monthDay{month: d.Month(), day: d.Day()}] = struct{}{}
	}
	return t, nil
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.recurring) + len(t.once)
}

// IsHoliday implements Policy.
func (t *Table) IsHoliday(date time.Time) bool {
	if t == nil {
		return false
	}
	if _, ok := t.recurring[monthDay{month: date.Month(), day: date.Day()}]; ok {
		return true
	}
	_, ok := t.once[date.Format("2006-01-02")]
	return ok
}

package service

import (
	"fmt"
	"time"
)

// Month is a calendar year-month with no time zone attached.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t, read in t's own location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// AddMonths returns the month n months after m. Negative n steps backwards.
func (m Month) AddMonths(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return MonthOf(t)
}

func (m Month) Next() Month {
	return m.AddMonths(1)
}

func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

func (m Month) After(other Month) bool {
	return other.Before(m)
}

// Start is midnight on the first day of the month in loc.
func (m Month) Start(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// End is 23:59:59 on the last day of the month in loc. Sub-second instants
// after it belong to no month's range.
func (m Month) End(loc *time.Location) time.Time {
	return m.Next().Start(loc).Add(-time.Second)
}

// Label renders the month as "Nov 2025".
func (m Month) Label() string {
	return m.Start(time.UTC).Format("Jan 2006")
}

// String renders the month as "2025-11".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// MonthsBetween counts whole months from a to b. It is negative when b is
// before a.
func MonthsBetween(a, b Month) int {
	return (b.Year-a.Year)*12 + int(b.Month) - int(a.Month)
}

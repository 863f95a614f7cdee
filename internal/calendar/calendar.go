// Package calendar classifies days and enumerates business days. A business
// day is a weekday that is not a registered holiday; holiday status comes
// from an injected HolidaySource and is memoized per date.
package calendar

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type DayType string

const (
	DaySunday   DayType = "SUNDAY"
	DaySaturday DayType = "SATURDAY"
	DayHoliday  DayType = "HOLIDAY"
	DayWeekday  DayType = "WEEKDAY"
)

// BusinessDay tags a calendar date with its business-day status. Derived,
// never persisted.
type BusinessDay struct {
	Date          time.Time
	IsBusinessDay bool
}

// Calendar owns the per-date holiday memo for its own lifetime. Entries are
// never evicted; the expected working set (a few weeks around today) keeps
// the map small.
type Calendar struct {
	source HolidaySource
	logger *zap.Logger

	mu       sync.Mutex
	holidays map[string]bool // YYYY-MM-DD -> is holiday
}

func New(source HolidaySource, logger ...*zap.Logger) *Calendar {
	l := zap.L().Named("calendar")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar")
	}
	return &Calendar{
		source:   source,
		logger:   l,
		holidays: make(map[string]bool),
	}
}

// DateOf truncates t to day granularity in UTC. All calendar math runs on
// normalized dates.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsBusinessDay reports whether d is a weekday and not a holiday. Weekends
// never consult the holiday source. A source failure is returned as
// ErrHolidaySourceUnavailable, distinct from "not a holiday".
func (c *Calendar) IsBusinessDay(ctx context.Context, d time.Time) (bool, error) {
	d = DateOf(d)
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false, nil
	}

	holiday, err := c.isHoliday(ctx, d)
	if err != nil {
		return false, err
	}
	return !holiday, nil
}

func (c *Calendar) isHoliday(ctx context.Context, d time.Time) (bool, error) {
	key := d.Format("2006-01-02")

	c.mu.Lock()
	cached, ok := c.holidays[key]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	holiday, err := c.source.IsHoliday(ctx, d)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	c.holidays[key] = holiday
	c.mu.Unlock()
	return holiday, nil
}

// DayType classifies d for display styling. Weekends win over holiday
// status; HOLIDAY is only reported for dates already cached as holidays, so
// the classification stays pure.
func (c *Calendar) DayType(d time.Time) DayType {
	d = DateOf(d)
	switch d.Weekday() {
	case time.Sunday:
		return DaySunday
	case time.Saturday:
		return DaySaturday
	}
	c.mu.Lock()
	holiday := c.holidays[d.Format("2006-01-02")]
	c.mu.Unlock()
	if holiday {
		return DayHoliday
	}
	return DayWeekday
}

// BusinessDays enumerates every date from start to end inclusive, tagging
// each with its business-day status. An inverted range yields an empty
// slice, not an error.
func (c *Calendar) BusinessDays(ctx context.Context, start, end time.Time) ([]BusinessDay, error) {
	start, end = DateOf(start), DateOf(end)

	days := make([]BusinessDay, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		ok, err := c.IsBusinessDay(ctx, d)
		if err != nil {
			return nil, err
		}
		days = append(days, BusinessDay{Date: d, IsBusinessDay: ok})
	}
	return days, nil
}

// WeekStart returns the Sunday on or before d.
func (c *Calendar) WeekStart(d time.Time) time.Time {
	d = DateOf(d)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// Warmup populates the holiday memo for the whole range so later lookups
// are served synchronously from cache. This is the one call allowed to
// block on the remote source.
func (c *Calendar) Warmup(ctx context.Context, start, end time.Time) error {
	_, err := c.BusinessDays(ctx, start, end)
	if err != nil {
		c.logger.Warn("calendar warmup failed", zap.Error(err))
		return err
	}
	return nil
}

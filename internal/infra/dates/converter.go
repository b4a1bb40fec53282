// Package dates resolves date criterion values into concrete comparison
// inputs: an exact instant or a half-open range, plus the tenant and client
// UTC offsets in effect at evaluation time.
package dates

import (
	"fmt"
	"time"

	"github.com/shav/taskgrid/internal/domain"
)

// Converter implements domain.DateConversion against configured tenant and
// client time zones. Relative operations are evaluated in the tenant zone.
type Converter struct {
	clock  domain.Clock
	tenant *time.Location
	client *time.Location
}

// Ensure Converter implements domain.DateConversion.
var _ domain.DateConversion = (*Converter)(nil)

// New creates a converter for the given IANA zone names.
func New(clock domain.Clock, tenantZone, clientZone string) (*Converter, error) {
	tenant, err := time.LoadLocation(tenantZone)
	if err != nil {
		return nil, fmt.Errorf("load tenant zone %q: %w", tenantZone, err)
	}
	client, err := time.LoadLocation(clientZone)
	if err != nil {
		return nil, fmt.Errorf("load client zone %q: %w", clientZone, err)
	}
	return &Converter{clock: clock, tenant: tenant, client: client}, nil
}

// ToExactDateTime resolves an exact-date operation into the first parsed
// instant and the current zone offsets.
func (c *Converter) ToExactDateTime(op domain.Operation, values []domain.ParsedValue) (time.Time, time.Duration, time.Duration, error) {
	for _, v := range values {
		if v.Kind == domain.KindTime {
			tenantOff, clientOff := c.offsets()
			return v.Time, tenantOff, clientOff, nil
		}
	}
	return time.Time{}, 0, 0, fmt.Errorf("%w: operation %q carries no exact date", domain.ErrInvalidPayload, op)
}

// ToDateRange resolves a range-style or relative operation into a
// half-open range expressed as tenant-local wall-clock boundaries.
func (c *Converter) ToDateRange(op domain.Operation, values []domain.ParsedValue) (domain.DateRange, time.Duration, time.Duration, error) {
	tenantOff, clientOff := c.offsets()

	if op == domain.OpRange {
		for _, v := range values {
			if v.Kind == domain.KindDateRange {
				return v.Range, tenantOff, clientOff, nil
			}
		}
		return domain.DateRange{}, 0, 0, fmt.Errorf("%w: operation %q carries no range", domain.ErrInvalidPayload, op)
	}

	r, err := c.relativeRange(op, values)
	if err != nil {
		return domain.DateRange{}, 0, 0, err
	}
	return r, tenantOff, clientOff, nil
}

// relativeRange computes the range for a relative-date operation from the
// current tenant-local date. Boundaries are rendered as UTC wall-clock
// values so they compare against offset-shifted stored timestamps.
func (c *Converter) relativeRange(op domain.Operation, values []domain.ParsedValue) (domain.DateRange, error) {
	now := c.clock.Now().In(c.tenant)
	today := wallDate(now)
	day := 24 * time.Hour

	switch op {
	case domain.OpToday:
		return domain.DateRange{From: today, To: today.Add(day)}, nil
	case domain.OpYesterday:
		return domain.DateRange{From: today.Add(-day), To: today}, nil
	case domain.OpThisWeek:
		start := startOfWeek(today)
		return domain.DateRange{From: start, To: start.Add(7 * day)}, nil
	case domain.OpLastWeek:
		start := startOfWeek(today)
		return domain.DateRange{From: start.Add(-7 * day), To: start}, nil
	case domain.OpThisMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return domain.DateRange{From: start, To: start.AddDate(0, 1, 0)}, nil
	case domain.OpLastDays:
		days := relativeDays(values)
		if days <= 0 {
			return domain.DateRange{}, fmt.Errorf("%w: operation %q needs a positive day count", domain.ErrInvalidPayload, op)
		}
		return domain.DateRange{From: today.Add(-time.Duration(days-1) * day), To: today.Add(day)}, nil
	default:
		return domain.DateRange{}, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, op)
	}
}

// offsets returns the tenant and client UTC offsets at the current instant.
func (c *Converter) offsets() (time.Duration, time.Duration) {
	now := c.clock.Now()
	_, tenantSec := now.In(c.tenant).Zone()
	_, clientSec := now.In(c.client).Zone()
	return time.Duration(tenantSec) * time.Second, time.Duration(clientSec) * time.Second
}

// wallDate renders a local calendar date as a UTC wall-clock midnight.
func wallDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns the Monday of the week containing the given date.
func startOfWeek(day time.Time) time.Time {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the week
	}
	return day.Add(-time.Duration(weekday-1) * 24 * time.Hour)
}

func relativeDays(values []domain.ParsedValue) int {
	for _, v := range values {
		if v.Kind == domain.KindRelative {
			return v.Days
		}
	}
	return 0
}

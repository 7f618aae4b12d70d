package billing

import (
	"fmt"
	"math"
	"time"

	"github.com/PunisherCE/Parqueaderos/internal/domain"
)

// Calculator computes hourly charges, subscription charges and renewal
// amounts, and formats expiry dates for display. It carries the zone the
// display dates are rendered in.
type Calculator struct {
	loc *time.Location
}

func NewCalculator(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{loc: loc}
}

// ElapsedHours is the stay duration rounded up to whole hours, never less
// than one: a one-minute stay bills a full hour.
func ElapsedHours(entry, now time.Time) int {
	diff := now.Sub(entry)
	if diff < 0 {
		diff = -diff
	}
	hours := int(math.Ceil(diff.Hours()))
	if hours < 1 {
		hours = 1
	}
	return hours
}

// HourlyCharge returns the amount due and the billed hours for an hourly
// session leaving now.
func (c *Calculator) HourlyCharge(cfg domain.PriceConfig, s domain.HourlySession, now time.Time) (float64, int) {
	hours := ElapsedHours(s.EntryTime, now)
	return float64(hours) * cfg.HourlyRateFor(s.Type), hours
}

// PeriodCharge is duration times the period rate: the monthly rate for
// months, the monthly rate divided by four for weeks.
func (c *Calculator) PeriodCharge(cfg domain.PriceConfig, t domain.VehicleType, duration int, unit domain.PeriodUnit) float64 {
	rate := cfg.MonthlyRateFor(t)
	if unit == domain.UnitWeeks {
		rate = cfg.WeeklyRateFor(t)
	}
	return float64(duration) * rate
}

// RenewalAmount is the subscription's amount due after a renewal. A confirmed
// payment settles the prior balance and replaces it with the new period
// charge; otherwise the new charge accumulates on top of what is owed.
func (c *Calculator) RenewalAmount(cfg domain.PriceConfig, sub domain.Subscription, duration int, unit domain.PeriodUnit, paid bool) float64 {
	charge := c.PeriodCharge(cfg, sub.Type, duration, unit)
	if paid {
		return charge
	}
	return sub.AmountDue + charge
}

// AddPeriod advances a date by a number of months or weeks. Month arithmetic
// clamps the day to the last valid day of the target month, so Jan 31 plus a
// month lands on Feb 28 (or 29), never on Mar 3. Renewals call this with the
// subscription's recorded expiry, which allows renewing before it lapses.
func AddPeriod(t time.Time, amount int, unit domain.PeriodUnit) time.Time {
	if unit == domain.UnitWeeks {
		return t.AddDate(0, 0, amount*7)
	}
	day := t.Day()
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, amount, 0)
	if last := lastDayOfMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatExpiry renders a long-form Spanish date with a 12-hour clock in the
// calculator's zone, e.g. "29 de febrero de 2024, 10:30 a. m.".
func (c *Calculator) FormatExpiry(t time.Time) string {
	t = t.In(c.loc)
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "a. m."
	if t.Hour() >= 12 {
		meridiem = "p. m."
	}
	return fmt.Sprintf("%d de %s de %d, %d:%02d %s",
		t.Day(), spanishMonths[t.Month()-1], t.Year(), hour, t.Minute(), meridiem)
}

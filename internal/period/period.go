// Package period resolves calendar months used as the unit of payroll and
// expense computation.
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	perioderrors "go-shopbook/internal/period/errors"
)

// Period is one calendar month of one year.
type Period struct {
	Year  int
	Month time.Month
}

// New validates year and month index (1..12).
func New(year, monthIndex int) (Period, error) {
	if monthIndex < 1 || monthIndex > 12 {
		return Period{}, fmt.Errorf("%w: got %d", perioderrors.ErrInvalidMonth, monthIndex)
	}
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("%w: got %d", perioderrors.ErrInvalidYear, year)
	}
	return Period{Year: year, Month: time.Month(monthIndex)}, nil
}

// DaysInMonth returns the number of days of monthIndex in year, following
// the proleptic Gregorian calendar (time.Date normalises day 0 of the next
// month to the last day of this one).
func DaysInMonth(year, monthIndex int) (int, error) {
	p, err := New(year, monthIndex)
	if err != nil {
		return 0, err
	}
	return p.Days(), nil
}

func (p Period) Days() int {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Label is the storage key of the period, e.g. "March_2025".
func (p Period) Label() string {
	return p.Month.String() + "_" + strconv.Itoa(p.Year)
}

// Title is the human form used on statements, e.g. "March 2025".
func (p Period) Title() string {
	return p.Month.String() + " " + strconv.Itoa(p.Year)
}

func (p Period) String() string {
	return p.Label()
}

// MonthIndex maps an English month name ("march", "March") to 1..12.
func MonthIndex(name string) (int, error) {
	name = strings.TrimSpace(name)
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return int(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", perioderrors.ErrInvalidMonthName, name)
}

// ParseLabel is the inverse of Label.
func ParseLabel(label string) (Period, error) {
	monthName, yearStr, ok := strings.Cut(label, "_")
	if !ok {
		return Period{}, fmt.Errorf("%w: %q", perioderrors.ErrInvalidLabel, label)
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", perioderrors.ErrInvalidLabel, label)
	}

	monthIndex, err := MonthIndex(monthName)
	if err != nil {
		return Period{}, err
	}

	return New(year, monthIndex)
}

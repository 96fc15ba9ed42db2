package rewards

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// ErrInvalidMonth is returned by MonthName for an index outside 0-11.
var ErrInvalidMonth = errors.New("month index out of range")

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ParseDate interpreta uma data ISO (YYYY-MM-DD) no calendário local.
// Timestamps RFC 3339 também são aceitos e convertidos para o horário local.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.In(time.Local), nil
}

// localDay trunca t para a meia-noite local do mesmo dia.
func localDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// MonthYearOf returns the 0-based month and the year of a date string.
func MonthYearOf(date string) (entity.MonthYear, bool) {
	t, err := ParseDate(date)
	if err != nil {
		return entity.MonthYear{}, false
	}
	return entity.MonthYear{Month: int(t.Month()) - 1, Year: t.Year()}, true
}

// GetUniqueMonthsAndYears returns each (month, year) pair present in the
// transactions once, sorted by year then month. Transactions whose date does not
// parse contribute no key; ValidateTransactions reports them.
func GetUniqueMonthsAndYears(transactions []entity.Transaction) []entity.MonthYear {
	seen := make(map[entity.MonthYear]struct{})
	keys := make([]entity.MonthYear, 0)
	for _, t := range transactions {
		key, ok := MonthYearOf(t.Date)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	slices.SortFunc(keys, compareMonthYear)
	return keys
}

func compareMonthYear(a, b entity.MonthYear) int {
	if a.Year != b.Year {
		return a.Year - b.Year
	}
	return a.Month - b.Month
}

// MonthName maps 0 to "January" through 11 to "December".
func MonthName(monthIndex int) (string, error) {
	if monthIndex < 0 || monthIndex >= len(monthNames) {
		return "", fmt.Errorf("%w: %d", ErrInvalidMonth, monthIndex)
	}
	return monthNames[monthIndex], nil
}

// MonthIndex is the inverse of MonthName; -1 when the name is unknown.
func MonthIndex(name string) int {
	for i, n := range monthNames {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}

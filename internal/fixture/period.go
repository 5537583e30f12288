package fixture

import (
	"fmt"
	"strconv"
	"strings"
)

// Period is one year-month bucket.
type Period struct {
	Year  int
	Month int // 1-12
}

// Token renders the period in the "YYYY-MM" form carried on records.
func (p Period) Token() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// After reports whether p is strictly later than o.
func (p Period) After(o Period) bool {
	if p.Year != o.Year {
		return p.Year > o.Year
	}
	return p.Month > o.Month
}

// ParsePeriod parses a "YYYY-MM" token back into a Period.
func ParsePeriod(token string) (Period, error) {
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("ParsePeriod: malformed token %q", token)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Period{}, fmt.Errorf("ParsePeriod: year in %q: %w", token, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Period{}, fmt.Errorf("ParsePeriod: month in %q: %w", token, err)
	}
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("ParsePeriod: month %d out of range in %q", month, token)
	}
	return Period{Year: year, Month: month}, nil
}

// Periods expands the given years into every month of each year, in slice
// order then month ascending. Pure enumeration; the result can be ranged
// over as many times as needed.
func Periods(years []int) []Period {
	out := make([]Period, 0, len(years)*12)
	for _, y := range years {
		for m := 1; m <= 12; m++ {
			out = append(out, Period{Year: y, Month: m})
		}
	}
	return out
}

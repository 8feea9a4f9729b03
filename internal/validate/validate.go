package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 _'\\-]{1,50}$`)
	// Catalog facet values are display strings ("Very Good", "Like New").
	reFacet = regexp.MustCompile(`^[A-Za-z0-9 \-]{1,30}$`)
	// Valuation table keys are lowercase tokens ("smartphone", "good").
	reToken = regexp.MustCompile(`^[a-z]{1,20}$`)
)

// Q validates a search query: trims, enforces allowed characters and max length
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// ProductID parses a positive integer catalog id.
func ProductID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return id, err == nil && id > 0
}

// Qty parses an add-to-cart quantity, clamping to [1,50].
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	} // clamp to avoid abuse
	return n
}

// Quantity parses an exact quantity for cart updates. The value is returned
// as-is (the store no-ops below 1); only unparseable input is rejected.
func Quantity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	if n > 50 {
		n = 50
	}
	return n, true
}

// Facet validates a category/brand/condition filter value.
func Facet(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reFacet.MatchString(s)
}

// Token validates a valuation table key (category or condition).
func Token(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reToken.MatchString(s)
}

// Age parses a device age in whole years, at least 1.
func Age(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 50 {
		return 0, false
	}
	return n, true
}

// Price parses a non-negative price bound.
func Price(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil && v >= 0
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 30 {
		return "", false
	}
	return s, true
}

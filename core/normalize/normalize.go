package normalize

import (
	"math"
	"reflect"
	"strings"
	"time"
)

// DateLayout is the canonical textual form of every normalized date.
const DateLayout = "2006-01-02"

type missing struct{}

// Missing marks a value that was explicitly absent at the source.
var Missing = missing{}

// dateLayouts are tried in order; the first successful parse wins.
var dateLayouts = []string{
	"2/1/2006",
	"2006-1-2",
}

// dateTimeLayouts cover the full date-time spellings the store and sheets emit.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// Value canonicalizes a scalar so that equivalent spellings compare equal.
// It never fails and Value(Value(x)) == Value(x).
func Value(v any) any {
	switch val := v.(type) {
	case nil, missing:
		return nil
	case float64:
		if math.IsNaN(val) {
			return nil
		}
		return val
	case float32:
		if math.IsNaN(float64(val)) {
			return nil
		}
		return val
	case string:
		return String(val)
	case []byte:
		return String(string(val))
	case time.Time:
		return val.Format(DateLayout)
	case *string:
		if val == nil {
			return nil
		}
		return String(*val)
	case *bool:
		if val == nil {
			return nil
		}
		return *val
	case *int:
		if val == nil {
			return nil
		}
		return *val
	case *int64:
		if val == nil {
			return nil
		}
		return *val
	case *float64:
		if val == nil {
			return nil
		}
		return Value(*val)
	case *time.Time:
		if val == nil {
			return nil
		}
		return val.Format(DateLayout)
	default:
		return v
	}
}

// String applies the text rules: blanks and "nan" become nil, dates become
// YYYY-MM-DD, anything else is returned trimmed with its case preserved.
func String(s string) any {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "nan") {
		return nil
	}
	if d, ok := ParseDate(trimmed); ok {
		return d.Format(DateLayout)
	}
	return trimmed
}

// ParseDate tries the day-first, ISO date and full date-time spellings in order.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Equal reports whether a and b are the same value once normalized.
// Values of uncomparable types such as slices or maps are compared deeply.
func Equal(a, b any) bool {
	x, y := Value(a), Value(b)
	if !isComparable(x) || !isComparable(y) {
		return reflect.DeepEqual(x, y)
	}
	return x == y
}

func isComparable(v any) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}

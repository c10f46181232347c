package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseInt converts integer-like values to int.
// It accepts native integers, integral floats, and numeric strings ("3", "3.0").
func ParseInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case int16:
		return int(v), true
	case int8:
		return int(v), true
	case uint:
		return uintToInt(uint64(v))
	case uint64:
		return uintToInt(v)
	case uint32:
		return uintToInt(uint64(v))
	case uint16:
		return int(v), true
	case uint8:
		return int(v), true
	case float64:
		return floatToInt(v)
	case float32:
		return floatToInt(float64(v))
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return floatToInt(f)
		}
		return 0, false
	case []byte:
		return ParseInt(string(v))
	default:
		return 0, false
	}
}

func uintToInt(u uint64) (int, bool) {
	if u > math.MaxInt {
		return 0, false
	}
	return int(u), true
}

// floatToInt rejects values outside [MinInt, MaxInt]. float64(MaxInt) rounds
// up to 2^63 on 64-bit platforms, so the upper bound is exclusive.
func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ParseBool converts flag-like values to bool.
// It handles bool, numeric 1/0, and the English and Spanish spellings spreadsheets use.
func ParseBool(val any) (bool, bool) {
	switch v := val.(type) {
	case bool:
		return v, true
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8, float64, float32:
		i, ok := ParseInt(v)
		if !ok || (i != 0 && i != 1) {
			return false, false
		}
		return i == 1, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "verdadero", "sí", "si", "yes", "y":
			return true, true
		case "0", "false", "falso", "no", "n":
			return false, true
		}
		return false, false
	case []byte:
		return ParseBool(string(v))
	default:
		return false, false
	}
}

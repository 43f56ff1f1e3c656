package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Kind is the semantic type of a configuration value.
type Kind int

const (
	KindInt Kind = iota
	KindInt64
	KindFloat
	// KindFlag is a boolean written as 0 or 1.
	KindFlag
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt, KindInt64:
		return "integer"
	case KindFloat:
		return "float"
	case KindFlag:
		return "flag (0/1)"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is the set of Go types a configuration value converts to.
type Value interface {
	int | int64 | float64 | bool | string
}

// ReadTyped looks up key and converts it to T.
func ReadTyped[T Value](raw *RawConfig, key string) (T, error) {
	var zero T
	s, ok := raw.Lookup(key)
	if !ok {
		return zero, &KeyError{Key: key, Kind: kindOf[T](), Err: ErrMissingKey}
	}
	v, err := convert[T](s)
	if err != nil {
		return zero, &KeyError{Key: key, Raw: s, Kind: kindOf[T](), Err: ErrTypeMismatch, Cause: err}
	}
	return v, nil
}

func ReadInt(raw *RawConfig, key string) (int, error)       { return ReadTyped[int](raw, key) }
func ReadInt64(raw *RawConfig, key string) (int64, error)   { return ReadTyped[int64](raw, key) }
func ReadFloat(raw *RawConfig, key string) (float64, error) { return ReadTyped[float64](raw, key) }
func ReadFlag(raw *RawConfig, key string) (bool, error)     { return ReadTyped[bool](raw, key) }
func ReadString(raw *RawConfig, key string) (string, error) { return ReadTyped[string](raw, key) }

func kindOf[T Value]() Kind {
	var zero T
	switch any(zero).(type) {
	case int:
		return KindInt
	case int64:
		return KindInt64
	case float64:
		return KindFloat
	case bool:
		return KindFlag
	default:
		return KindString
	}
}

func convert[T Value](s string) (T, error) {
	var out T
	if s == "" && kindOf[T]() != KindString {
		return out, errEmptyValue
	}
	switch p := any(&out).(type) {
	case *int:
		v, err := cast.ToIntE(decimal(s))
		if err != nil {
			return out, err
		}
		*p = v
	case *int64:
		v, err := cast.ToInt64E(decimal(s))
		if err != nil {
			return out, err
		}
		*p = v
	case *float64:
		v, err := cast.ToFloat64E(s)
		if err != nil {
			return out, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return out, errNotFinite
		}
		*p = v
	case *bool:
		v, err := parseFlag(s)
		if err != nil {
			return out, err
		}
		*p = v
	case *string:
		*p = s
	}
	return out, nil
}

var (
	errEmptyValue = errors.New("empty value")
	errNotFinite  = errors.New("value is not a finite number")
)

// decimal strips zero padding so integers always read in base 10; a base
// prefix such as 0x or 0o is left unparseable.
func decimal(s string) string {
	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	if s == "" {
		return sign
	}
	digits := strings.TrimLeft(s, "0")
	if digits == "" || digits[0] == '.' {
		digits = "0" + digits
	}
	return sign + digits
}

// parseFlag accepts exactly "0" or "1".
func parseFlag(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, errors.New("flag must be 0 or 1")
	}
}

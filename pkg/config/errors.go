package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound indicates the configuration file could not be opened.
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrMissingKey indicates a required key is absent from the configuration.
	ErrMissingKey = errors.New("missing configuration key")
	// ErrTypeMismatch indicates a value could not be converted to the declared type.
	ErrTypeMismatch = errors.New("configuration value has wrong type")
)

// KeyError ties a resolution failure to the key (and raw value) that caused it.
type KeyError struct {
	Key   string
	Raw   string
	Kind  Kind
	Err   error
	Cause error
}

func (e *KeyError) Error() string {
	if errors.Is(e.Err, ErrMissingKey) {
		return fmt.Sprintf("%v %q", e.Err, e.Key)
	}
	msg := fmt.Sprintf("%v: key %q value %q is not a valid %s", e.Err, e.Key, e.Raw, e.Kind)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *KeyError) Unwrap() error { return e.Err }

// MissingKeys lists every key reported missing in err, in the order reported.
func MissingKeys(err error) []string {
	var keys []string
	for _, ke := range keyErrors(err) {
		if errors.Is(ke.Err, ErrMissingKey) {
			keys = append(keys, ke.Key)
		}
	}
	return keys
}

func keyErrors(err error) []*KeyError {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*KeyError
		for _, e := range joined.Unwrap() {
			out = append(out, keyErrors(e)...)
		}
		return out
	}
	var ke *KeyError
	if errors.As(err, &ke) {
		return []*KeyError{ke}
	}
	return nil
}

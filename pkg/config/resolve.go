package config

import (
	"errors"
	"fmt"
)

// Resolve converts raw into Parameters by walking Schema once. Every missing
// or malformed key is reported; no partial record is returned on failure.
func Resolve(raw *RawConfig) (*Parameters, error) {
	if raw == nil {
		return nil, fmt.Errorf("raw configuration is nil")
	}

	params := &Parameters{}
	var errs []error

	for _, f := range Schema {
		if _, ok := raw.Lookup(f.Key); !ok && !f.Required {
			continue
		}
		if err := f.assign(raw, params); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return params, nil
}

// LoadParameters loads path and resolves it.
func LoadParameters(path string) (*Parameters, error) {
	raw, err := Load(path)
	if err != nil {
		return nil, err
	}
	params, err := Resolve(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return params, nil
}

func (f Field) assign(raw *RawConfig, p *Parameters) error {
	switch dst := f.target(p).(type) {
	case *int:
		v, err := ReadInt(raw, f.Key)
		if err != nil {
			return err
		}
		*dst = v
	case *int64:
		v, err := ReadInt64(raw, f.Key)
		if err != nil {
			return err
		}
		*dst = v
	case *float64:
		v, err := ReadFloat(raw, f.Key)
		if err != nil {
			return err
		}
		*dst = v
	case *bool:
		v, err := ReadFlag(raw, f.Key)
		if err != nil {
			return err
		}
		*dst = v
	case *string:
		v, err := ReadString(raw, f.Key)
		if err != nil {
			return err
		}
		*dst = v
	case *Transmittance:
		v, err := ReadFloat(raw, f.Key)
		if err != nil {
			return err
		}
		*dst = TransmittanceFromValue(v)
	default:
		return fmt.Errorf("schema field %q has unsupported target %T", f.Key, dst)
	}
	return nil
}

// Package prompt asks the operator for configuration values.
package prompt

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/lemwill/g4matrix/pkg/config"
)

// EnvPrefix prefixes environment variables that pre-fill answers,
// e.g. G4MATRIX_CRYSTALX.
const EnvPrefix = "G4MATRIX_"

// AskFunc matches survey.AskOne.
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// ForSchema prompts for every field and returns the answers as a RawConfig.
func ForSchema(fields []config.Field, ask AskFunc) (*config.RawConfig, error) {
	if ask == nil {
		ask = survey.AskOne
	}

	raw := config.NewRawConfig("prompt")
	for _, f := range fields {
		value, err := promptForField(f, ask)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", f.Key, err)
		}
		raw.Set(f.Key, value)
	}
	return raw, nil
}

// Defaults returns the answers ForSchema would start from: environment
// overrides where set, schema examples elsewhere.
func Defaults(fields []config.Field) (*config.RawConfig, error) {
	raw := config.NewRawConfig("defaults")
	for _, f := range fields {
		value := defaultFor(f)
		if err := f.Check(value); err != nil {
			return nil, fmt.Errorf("invalid %s%s: %w", EnvPrefix, strings.ToUpper(f.Key), err)
		}
		raw.Set(f.Key, value)
	}
	return raw, nil
}

func defaultFor(f config.Field) string {
	if v, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(f.Key)); ok {
		return strings.TrimSpace(v)
	}
	return f.Example
}

func message(f config.Field) string {
	msg := f.Label
	if f.Unit != "" {
		msg += " [" + f.Unit + "]"
	}
	return msg + ":"
}

func promptForField(f config.Field, ask AskFunc) (string, error) {
	def := defaultFor(f)

	if f.Kind == config.KindFlag {
		var result bool
		prompt := &survey.Confirm{
			Message: message(f),
			Default: def == "1",
		}
		if err := ask(prompt, &result); err != nil {
			return "", err
		}
		if result {
			return "1", nil
		}
		return "0", nil
	}

	prompt := &survey.Input{
		Message: message(f),
		Default: def,
		Help:    fmt.Sprintf("%s (%s)", f.Key, f.Kind),
	}

	var opts []survey.AskOpt
	if f.Kind != config.KindString {
		opts = append(opts, survey.WithValidator(survey.Required), survey.WithValidator(func(val interface{}) error {
			s, _ := val.(string)
			return f.Check(strings.TrimSpace(s))
		}))
	}

	var result string
	if err := ask(prompt, &result, opts...); err != nil {
		return "", err
	}

	result = strings.TrimSpace(result)
	if err := f.Check(result); err != nil {
		return "", err
	}
	return result, nil
}

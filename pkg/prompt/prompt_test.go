package prompt

import (
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemwill/g4matrix/pkg/config"
)

// scripted answers each prompt with its default unless an answer is given.
func scripted(answers map[string]string) (AskFunc, *[]string) {
	var asked []string
	ask := func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
		switch q := p.(type) {
		case *survey.Input:
			asked = append(asked, q.Message)
			v := q.Default
			if a, ok := answers[q.Message]; ok {
				v = a
			}
			*(response.(*string)) = v
		case *survey.Confirm:
			asked = append(asked, q.Message)
			v := q.Default
			if a, ok := answers[q.Message]; ok {
				v = a == "yes"
			}
			*(response.(*bool)) = v
		default:
			return errors.New("unexpected prompt")
		}
		return nil
	}
	return ask, &asked
}

func TestForSchemaDefaults(t *testing.T) {
	ask, asked := scripted(nil)

	raw, err := ForSchema(config.Schema, ask)
	require.NoError(t, err)
	assert.Len(t, *asked, len(config.Schema))

	params, err := config.Resolve(raw)
	require.NoError(t, err)
	assert.Equal(t, 1.53, params.Geometry.CrystalX)
	assert.True(t, params.Optics.LateralEsr)
}

func TestForSchemaAnswers(t *testing.T) {
	ask, _ := scripted(map[string]string{
		"Crystal x length [mm]:":    " 2.0 ",
		"Back ESR present:":         "no",
		"Lateral faces depolished:": "yes",
		"Number of crystals in x:":  "8",
	})

	raw, err := ForSchema(config.Schema, ask)
	require.NoError(t, err)

	v, _ := raw.Lookup("crystalx")
	assert.Equal(t, "2.0", v)
	v, _ = raw.Lookup("backEsr")
	assert.Equal(t, "0", v)
	v, _ = raw.Lookup("latdepolished")
	assert.Equal(t, "1", v)
	v, _ = raw.Lookup("ncrystalx")
	assert.Equal(t, "8", v)
}

func TestForSchemaRejectsBadAnswer(t *testing.T) {
	ask, _ := scripted(map[string]string{"Number of crystals in x:": "many"})

	_, err := ForSchema(config.Schema, ask)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "ncrystalx")
}

func TestDefaultsUseEnvironment(t *testing.T) {
	t.Setenv("G4MATRIX_NCRYSTALX", "16")

	raw, err := Defaults(config.Schema)
	require.NoError(t, err)
	v, _ := raw.Lookup("ncrystalx")
	assert.Equal(t, "16", v)

	t.Setenv("G4MATRIX_BACKESR", "maybe")
	_, err = Defaults(config.Schema)
	assert.ErrorIs(t, err, config.ErrTypeMismatch)
}

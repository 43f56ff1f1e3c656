package metadata

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemwill/g4matrix/pkg/config"
)

func runParams(t *testing.T) *config.Parameters {
	t.Helper()
	params, err := config.Resolve(config.ExampleConfig())
	require.NoError(t, err)
	params.Run.Seed = 654321
	params.Run.Output = "scan01"
	return params
}

func TestNew(t *testing.T) {
	r := New(runParams(t), "matrix.cfg", "dryrun", true)

	assert.NotEqual(t, uuid.Nil, r.RunID)
	assert.Equal(t, int64(654321), r.Seed)
	assert.True(t, r.SeedDerived)
	assert.Equal(t, "scan01.root", r.OutputFile)
	assert.Equal(t, "run.mac", r.Macro)
	assert.Equal(t, TreeLayout{Name: TreeName, CrystalsX: 4, CrystalsY: 4, MppcsX: 2, MppcsY: 2}, r.Tree)
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "out.root", OutputFile("out"))
	assert.Equal(t, "data/out.meta.yaml", SidecarFile("data/out"))
}

func TestWriteRecordsSeed(t *testing.T) {
	r := New(runParams(t), "matrix.cfg", "dryrun", false)

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf))
	assert.Contains(t, buf.String(), "seed: 654321")
	assert.Contains(t, buf.String(), "output_file: scan01.root")

	back, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, r.RunID, back.RunID)
	assert.Equal(t, r.Seed, back.Seed)
	assert.Equal(t, r.Tree, back.Tree)
	assert.True(t, r.CreatedAt.Equal(back.CreatedAt))
}

func TestWriteFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "scan01")
	r := New(runParams(t), "matrix.cfg", "dryrun", false)

	path, err := r.WriteFile(base)
	require.NoError(t, err)
	assert.Equal(t, base+".meta.yaml", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "seed: 654321")

	_, err = r.WriteFile(filepath.Join(t.TempDir(), "missing", "dir", "x"))
	assert.Error(t, err)
}

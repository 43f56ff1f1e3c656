// Package metadata records what a run was configured with, alongside the
// output tree written by the kernel.
package metadata

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lemwill/g4matrix/pkg/config"
)

const (
	// TreeName is the name of the output tree.
	TreeName = "StandardTree"

	outputExt  = ".root"
	sidecarExt = ".meta.yaml"
)

// Run is the metadata stored for one simulation run.
type Run struct {
	RunID      uuid.UUID `yaml:"run_id"`
	CreatedAt  time.Time `yaml:"created_at"`
	ConfigPath string    `yaml:"config_path"`
	Kernel     string    `yaml:"kernel"`
	Seed       int64     `yaml:"seed"`
	// SeedDerived is true when the seed came from system entropy.
	SeedDerived bool       `yaml:"seed_derived"`
	Macro       string     `yaml:"macro"`
	Threads     int        `yaml:"threads,omitempty"`
	OutputFile  string     `yaml:"output_file"`
	Tree        TreeLayout `yaml:"tree"`
}

// TreeLayout describes the output tree dimensions.
type TreeLayout struct {
	Name      string `yaml:"name"`
	CrystalsX int    `yaml:"crystals_x"`
	CrystalsY int    `yaml:"crystals_y"`
	MppcsX    int    `yaml:"mppcs_x"`
	MppcsY    int    `yaml:"mppcs_y"`
}

// New builds the run record from resolved parameters. p.Run.Seed must already
// hold the final seed.
func New(p *config.Parameters, configPath, kernel string, derived bool) *Run {
	return &Run{
		RunID:       uuid.New(),
		CreatedAt:   time.Now().UTC(),
		ConfigPath:  configPath,
		Kernel:      kernel,
		Seed:        p.Run.Seed,
		SeedDerived: derived,
		Macro:       p.Run.Macro,
		Threads:     p.Run.Threads,
		OutputFile:  OutputFile(p.Run.Output),
		Tree: TreeLayout{
			Name:      TreeName,
			CrystalsX: p.Geometry.NCrystalX,
			CrystalsY: p.Geometry.NCrystalY,
			MppcsX:    p.Geometry.NMppcX,
			MppcsY:    p.Geometry.NMppcY,
		},
	}
}

// OutputFile returns the tree file name for basename.
func OutputFile(basename string) string { return basename + outputExt }

// SidecarFile returns the metadata file name for basename.
func SidecarFile(basename string) string { return basename + sidecarExt }

// Write encodes r as YAML.
func (r *Run) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode run metadata: %w", err)
	}
	return enc.Close()
}

// WriteFile writes r next to the output file and returns the path written.
func (r *Run) WriteFile(basename string) (string, error) {
	path := SidecarFile(basename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create metadata file: %w", err)
	}
	if err := r.Write(f); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write metadata file: %w", err)
	}
	return path, nil
}

// Read decodes a run record written by Write.
func Read(rd io.Reader) (*Run, error) {
	var r Run
	if err := yaml.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to decode run metadata: %w", err)
	}
	return &r, nil
}

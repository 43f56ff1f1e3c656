package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lemwill/g4matrix/pkg/config"
	"github.com/lemwill/g4matrix/pkg/logger"
	"github.com/lemwill/g4matrix/pkg/metadata"
	"github.com/lemwill/g4matrix/pkg/override"
	"github.com/lemwill/g4matrix/pkg/seed"
	"github.com/lemwill/g4matrix/pkg/simulation"
)

// newDeriver is replaced in tests.
var newDeriver = seed.NewDeriver

func runConfig(cmd *cobra.Command, g globals, configPath string, ov *override.Overrides) error {
	logger.LogBanner(
		"g4matrix",
		"Scintillator matrix optical simulation",
	)

	logger.Progressf("Reading configuration %s", configPath)
	params, err := config.LoadParameters(configPath)
	if err != nil {
		return err
	}
	if !ov.Empty() {
		var applied []string
		if ov.Macro != nil {
			applied = append(applied, "macro = "+*ov.Macro)
		}
		if ov.Seed != nil {
			applied = append(applied, fmt.Sprintf("seed = %d", *ov.Seed))
		}
		if ov.Output != nil {
			applied = append(applied, "output = "+*ov.Output)
		}
		if ov.Threads != nil {
			applied = append(applied, fmt.Sprintf("threads = %d", *ov.Threads))
		}
		logger.LogList("Command line overrides:", applied)
	}
	ov.Apply(&params.Run)

	s, report := newDeriver().Resolve(params.Run.Seed)
	params.Run.Seed = s
	for _, w := range report.Warnings {
		logger.Warnf("Seed entropy degraded: %s", w)
	}

	config.Print(params)

	kernel, err := simulation.DefaultRegistry.Get(g.kernel)
	if err != nil {
		return err
	}

	detector := kernel.NewDetector()
	if err := simulation.Handoff(params, detector); err != nil {
		return fmt.Errorf("failed to configure detector: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			logger.Warn("Received interrupt signal, stopping kernel...")
			cancel()
		case <-ctx.Done():
		}
	}()

	setup := simulation.Setup{
		Detector:  detector,
		Engine:    seed.NewEngine(s),
		Seed:      s,
		Threads:   params.Run.Threads,
		CrystalsX: params.Geometry.NCrystalX,
		CrystalsY: params.Geometry.NCrystalY,
		MppcsX:    params.Geometry.NMppcX,
		MppcsY:    params.Geometry.NMppcY,
	}
	if err := kernel.Initialize(ctx, setup); err != nil {
		return fmt.Errorf("failed to initialize %s kernel: %w", kernel.Name(), err)
	}

	logger.LogSection(fmt.Sprintf("Starting %s", kernel.Name()))
	logger.LogKeyValue("Kernel", kernel.Description())
	logger.LogKeyValue("Output", metadata.OutputFile(params.Run.Output))
	runErr := kernel.Run(ctx, params.Run.Macro)
	if err := kernel.Stop(); err != nil {
		logger.Errorf("Failed to stop kernel: %v", err)
	}
	if runErr != nil {
		return fmt.Errorf("simulation failed: %w", runErr)
	}

	if !g.noMetadata {
		path, err := metadata.New(params, configPath, kernel.Name(), report.Derived).WriteFile(params.Run.Output)
		if err != nil {
			return err
		}
		logger.Infof("Run metadata written to %s", path)
	}

	logger.Successf("Simulation completed, output %s", metadata.OutputFile(params.Run.Output))
	return nil
}

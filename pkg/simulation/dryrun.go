package simulation

import (
	"context"
	"fmt"
	"os"

	"github.com/lemwill/g4matrix/pkg/logger"
)

// DryRunName is the registry name of the built-in backend.
const DryRunName = "dryrun"

func init() {
	if err := DefaultRegistry.Register(DryRunName, NewDryRun); err != nil {
		panic(err)
	}
}

// DryRun records the handoff and the UI commands a real kernel would receive,
// without transporting any particles.
type DryRun struct {
	log      logger.Logger
	detector *Recorder
	setup    *Setup
	// Commands lists the UI commands issued so far.
	Commands []string
}

// NewDryRun creates a dry-run kernel
func NewDryRun() Kernel {
	return &DryRun{log: logger.WithPrefix(DryRunName)}
}

func (k *DryRun) Name() string { return DryRunName }

func (k *DryRun) Description() string {
	return "Records the detector handoff and macro commands without simulating"
}

func (k *DryRun) NewDetector() DetectorConstruction {
	k.detector = &Recorder{}
	return k.detector
}

// Detector returns the recorder handed out by NewDetector.
func (k *DryRun) Detector() *Recorder { return k.detector }

func (k *DryRun) Initialize(ctx context.Context, setup Setup) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if setup.Detector == nil {
		return fmt.Errorf("initialize %s: detector construction is required", DryRunName)
	}
	if setup.Engine == nil {
		return fmt.Errorf("initialize %s: random engine is required", DryRunName)
	}

	k.setup = &setup
	calls := 0
	if rec, ok := setup.Detector.(*Recorder); ok {
		calls = len(rec.Calls)
	}
	k.log.Infof("Kernel initialized: seed=%d threads=%d detector setters=%d", setup.Seed, setup.Threads, calls)
	k.log.Debugf("Output tree layout: %dx%d crystals, %dx%d mppcs",
		setup.CrystalsX, setup.CrystalsY, setup.MppcsX, setup.MppcsY)
	return nil
}

func (k *DryRun) Run(ctx context.Context, macro string) error {
	if k.setup == nil {
		return fmt.Errorf("run %s: kernel not initialized", DryRunName)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if macro == "" {
		k.log.Warn("No macro given; interactive sessions are not available in the dry-run kernel")
		return nil
	}

	if _, err := os.Stat(macro); err != nil {
		k.log.Warnf("Macro %s is not readable: %v", macro, err)
	}
	command := "/control/execute " + macro
	k.Commands = append(k.Commands, command)
	k.log.Infof("%s %s", logger.IconArrow, command)
	return nil
}

func (k *DryRun) Stop() error {
	k.setup = nil
	return nil
}

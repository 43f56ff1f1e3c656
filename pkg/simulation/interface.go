package simulation

import (
	"context"
	"math/rand/v2"
)

// Setup is everything a kernel needs before it can run.
type Setup struct {
	// Detector has already received the resolved parameters.
	Detector DetectorConstruction
	// Engine is the run's random generator, owned by the kernel from here on.
	Engine *rand.Rand
	Seed   int64
	// Threads is the worker count; 0 leaves the kernel default.
	Threads int
	// Output tree dimensions.
	CrystalsX, CrystalsY int
	MppcsX, MppcsY       int
}

// Kernel is the Monte-Carlo engine driven by g4matrix.
type Kernel interface {
	// Name returns the registry name of the kernel
	Name() string

	// Description returns a brief description of the backend
	Description() string

	// NewDetector returns the detector construction to hand parameters to
	NewDetector() DetectorConstruction

	// Initialize prepares geometry, physics and the random engine
	Initialize(ctx context.Context, setup Setup) error

	// Run executes macro in batch mode, or an interactive session when macro is empty
	Run(ctx context.Context, macro string) error

	// Stop releases the kernel
	Stop() error
}

// Package seed resolves the random seed for a simulation run, deriving one
// from weak system entropy when none is given.
package seed

import (
	"errors"
	"math"
	mathrand "math/rand"
	"math/rand/v2"

	"github.com/lemwill/g4matrix/pkg/logger"
)

// Auto requests a derived seed.
const Auto int64 = -1

// Range is the exclusive upper bound of derived seeds.
const Range = 1_000_000

// Report records how a seed was obtained.
type Report struct {
	Derived bool
	Time    int64
	PID     int64
	Uptime  int64
	// Accumulator is Time+PID+Uptime, the value fed to the coarse generator.
	Accumulator int64
	// Warnings lists degraded entropy inputs.
	Warnings []string
	Seed     int64
}

// Deriver resolves seeds.
type Deriver struct {
	Entropy Entropy
	Log     logger.Logger
}

// NewDeriver returns a Deriver over system entropy using the default logger.
func NewDeriver() *Deriver {
	return &Deriver{
		Entropy: NewSystemEntropy(),
		Log:     logger.WithPrefix("seed"),
	}
}

// Resolve returns explicit unchanged unless it is Auto, in which case a seed
// in [0, Range) is derived. Entropy failures never abort; the failed input
// counts as 0 and a warning is logged.
func (d *Deriver) Resolve(explicit int64) (int64, Report) {
	if explicit != Auto {
		return explicit, Report{Seed: explicit}
	}

	log := d.Log
	if log == nil {
		log = logger.Default()
	}
	src := d.Entropy
	if src == nil {
		src = NewSystemEntropy()
	}

	report := Report{Derived: true}
	report.Time = src.Now()
	report.PID = src.PID()

	up, err := src.Uptime()
	if err != nil {
		if !errors.Is(err, ErrEntropySourceUnavailable) {
			err = errors.Join(ErrEntropySourceUnavailable, err)
		}
		log.Warnf("Uptime unavailable, using 0: %v", err)
		report.Warnings = append(report.Warnings, err.Error())
		up = 0
	}
	report.Uptime = up

	report.Accumulator = report.Time + report.PID + report.Uptime
	report.Seed = Mix(report.Accumulator)

	log.Debugf("Time : %d", report.Time)
	log.Debugf("PID  : %d", report.PID)
	log.Debugf("Uptime: %d", report.Uptime)
	log.Debugf("Seed for srand: %d", report.Accumulator)

	return report.Seed, report
}

// Mix turns an accumulator into a seed in [0, Range). A coarse generator
// seeded with acc produces one draw, which seeds a PCG generator whose first
// uniform value is scaled to the range.
func Mix(acc int64) int64 {
	coarse := mathrand.New(mathrand.NewSource(acc))
	draw := uint64(coarse.Int63())

	fine := rand.New(rand.NewPCG(draw, draw^0x9e3779b97f4a7c15))
	v := int64(math.Round(Range * fine.Float64()))
	return v % Range
}

// NewEngine returns the generator owned by a run and handed to the kernel.
func NewEngine(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s>>32|s<<32))
}

package simulation

import (
	"fmt"
	"strings"

	"github.com/lemwill/g4matrix/pkg/config"
)

// Call is one recorded setter invocation.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Recorder is a DetectorConstruction that keeps every call in order.
type Recorder struct {
	Calls []Call
}

var _ DetectorConstruction = (*Recorder)(nil)

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

// Count returns how many times the named setter was called.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Last returns the arguments of the latest call to the named setter.
func (r *Recorder) Last(name string) ([]any, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Name == name {
			return r.Calls[i].Args, true
		}
	}
	return nil, false
}

func (r *Recorder) SetCrystalDimensions(x, y, z float64) { r.record("SetCrystalDimensions", x, y, z) }
func (r *Recorder) SetNumberOfCrystals(nx, ny int)       { r.record("SetNumberOfCrystals", nx, ny) }
func (r *Recorder) SetEsrThickness(t float64)            { r.record("SetEsrThickness", t) }
func (r *Recorder) SetLateralEsr(on bool)                { r.record("SetLateralEsr", on) }
func (r *Recorder) SetBackEsr(on bool)                   { r.record("SetBackEsr", on) }
func (r *Recorder) SetGreaseFrontOne(t float64)          { r.record("SetGreaseFrontOne", t) }
func (r *Recorder) SetGreaseFrontTwo(t float64)          { r.record("SetGreaseFrontTwo", t) }
func (r *Recorder) SetGlassFront(t float64)              { r.record("SetGlassFront", t) }
func (r *Recorder) SetEpoxy(t float64)                   { r.record("SetEpoxy", t) }
func (r *Recorder) SetMppcDimensions(x, y, z float64)    { r.record("SetMppcDimensions", x, y, z) }
func (r *Recorder) SetMppcGap(gap float64)               { r.record("SetMppcGap", gap) }
func (r *Recorder) SetNumberOfMppc(nx, ny int)           { r.record("SetNumberOfMppc", nx, ny) }
func (r *Recorder) SetGreaseBack(t float64)              { r.record("SetGreaseBack", t) }
func (r *Recorder) SetGlassBack(t float64)               { r.record("SetGlassBack", t) }
func (r *Recorder) SetAirBack(t float64)                 { r.record("SetAirBack", t) }
func (r *Recorder) SetLightYield(v float64)              { r.record("SetLightYield", v) }
func (r *Recorder) SetRiseTime(ns float64)               { r.record("SetRiseTime", ns) }
func (r *Recorder) SetDecayTime(ns float64)              { r.record("SetDecayTime", ns) }

func (r *Recorder) SetLateralDepolished(on bool) { r.record("SetLateralDepolished", on) }
func (r *Recorder) SetLateralSurfaceRoughness(nm float64) {
	r.record("SetLateralSurfaceRoughness", nm)
}
func (r *Recorder) SetLateralSurfaceSigmaAlpha(rad float64) {
	r.record("SetLateralSurfaceSigmaAlpha", rad)
}
func (r *Recorder) SetLateralSurfaceSpecularLobe(w float64) {
	r.record("SetLateralSurfaceSpecularLobe", w)
}
func (r *Recorder) SetLateralSurfaceSpecularSpike(w float64) {
	r.record("SetLateralSurfaceSpecularSpike", w)
}
func (r *Recorder) SetLateralSurfaceBackScattering(w float64) {
	r.record("SetLateralSurfaceBackScattering", w)
}

func (r *Recorder) SetRealDepolished(on bool)          { r.record("SetRealDepolished", on) }
func (r *Recorder) SetRealSurfaceRoughness(nm float64) { r.record("SetRealSurfaceRoughness", nm) }
func (r *Recorder) SetRealSurfaceSigmaAlpha(rad float64) {
	r.record("SetRealSurfaceSigmaAlpha", rad)
}
func (r *Recorder) SetRealSurfaceSpecularLobe(w float64) {
	r.record("SetRealSurfaceSpecularLobe", w)
}
func (r *Recorder) SetRealSurfaceSpecularSpike(w float64) {
	r.record("SetRealSurfaceSpecularSpike", w)
}
func (r *Recorder) SetRealSurfaceBackScattering(w float64) {
	r.record("SetRealSurfaceBackScattering", w)
}

func (r *Recorder) SetEsrTransmittance(t config.Transmittance) { r.record("SetEsrTransmittance", t) }
func (r *Recorder) SetSourceDistance(mm float64)               { r.record("SetSourceDistance", mm) }
func (r *Recorder) SetResolutionScale(s float64)               { r.record("SetResolutionScale", s) }
func (r *Recorder) SetQuantumEfficiency(qe float64)            { r.record("SetQuantumEfficiency", qe) }

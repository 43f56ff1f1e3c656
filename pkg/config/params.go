package config

import "fmt"

// Parameters is the fully resolved detector and run configuration.
// Lengths are in mm unless noted otherwise.
type Parameters struct {
	Run          RunSettings
	Geometry     Geometry
	Optics       OpticalStack
	Scintillator Scintillator
	// Lateral describes the crystal side faces.
	Lateral SurfaceFinish
	// Real describes the front and back crystal faces.
	Real     SurfaceFinish
	Response Response
}

// RunSettings are the only values the command line may override.
type RunSettings struct {
	Output  string
	Macro   string
	Seed    int64
	Threads int
}

// Geometry holds crystal and MPPC dimensions and array sizes.
type Geometry struct {
	CrystalX  float64
	CrystalY  float64
	CrystalZ  float64
	NCrystalX int
	NCrystalY int
	MppcX     float64
	MppcY     float64
	MppcZ     float64
	MppcGap   float64
	NMppcX    int
	NMppcY    int
}

// OpticalStack holds reflector, grease, glass, air and epoxy layers.
type OpticalStack struct {
	EsrThickness float64
	LateralEsr   bool
	BackEsr      bool
	GreaseFront1 float64
	GlassFront   float64
	GreaseFront2 float64
	Epoxy        float64
	GreaseBack   float64
	GlassBack    float64
	AirBack      float64
}

// Scintillator holds crystal light emission properties.
type Scintillator struct {
	LightYield      float64 // photons/MeV
	ResolutionScale float64
	RiseTime        float64 // ns
	DecayTime       float64 // ns
}

// SurfaceFinish describes a unified-model rough surface. The model
// parameters only take effect when Depolished is set.
type SurfaceFinish struct {
	Depolished     bool
	Roughness      float64 // nm
	SigmaAlpha     float64 // rad
	SpecularLobe   float64
	SpecularSpike  float64
	BackScattering float64
}

// Response holds detector response settings.
type Response struct {
	EsrTransmittance Transmittance
	QuantumEff       float64
	Distance         float64
}

// measuredTransmittance is the configuration value selecting measured ESR data.
const measuredTransmittance = -1

// Transmittance is either the measured ESR spectrum or a fixed value applied
// to every wavelength.
type Transmittance struct {
	measured bool
	value    float64
}

// MeasuredTransmittance selects the measured spectral data.
func MeasuredTransmittance() Transmittance { return Transmittance{measured: true} }

// FixedTransmittance applies v at all wavelengths.
func FixedTransmittance(v float64) Transmittance { return Transmittance{value: v} }

// TransmittanceFromValue maps the configuration value, where -1 means measured.
func TransmittanceFromValue(v float64) Transmittance {
	if v == measuredTransmittance {
		return MeasuredTransmittance()
	}
	return FixedTransmittance(v)
}

// Measured reports whether measured spectral data is used.
func (t Transmittance) Measured() bool { return t.measured }

// Fixed returns the fixed transmittance and whether one is set.
func (t Transmittance) Fixed() (float64, bool) { return t.value, !t.measured }

// Value returns the configuration-file form, -1 for measured data.
func (t Transmittance) Value() float64 {
	if t.measured {
		return measuredTransmittance
	}
	return t.value
}

func (t Transmittance) String() string {
	if t.measured {
		return "measured"
	}
	return fmt.Sprintf("fixed(%g)", t.value)
}

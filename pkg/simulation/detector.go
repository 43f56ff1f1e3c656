package simulation

import (
	"fmt"

	"github.com/lemwill/g4matrix/pkg/config"
)

// DetectorConstruction receives the resolved parameters one setter at a time.
// Lengths are in mm.
type DetectorConstruction interface {
	SetCrystalDimensions(x, y, z float64)
	SetNumberOfCrystals(nx, ny int)
	SetEsrThickness(t float64)
	SetLateralEsr(on bool)
	SetBackEsr(on bool)
	SetGreaseFrontOne(t float64)
	SetGreaseFrontTwo(t float64)
	SetGlassFront(t float64)
	SetEpoxy(t float64)
	SetMppcDimensions(x, y, z float64)
	SetMppcGap(gap float64)
	SetNumberOfMppc(nx, ny int)
	SetGreaseBack(t float64)
	SetGlassBack(t float64)
	SetAirBack(t float64)
	SetLightYield(photonsPerMeV float64)
	SetRiseTime(ns float64)
	SetDecayTime(ns float64)

	SetLateralDepolished(on bool)
	SetLateralSurfaceRoughness(nm float64)
	SetLateralSurfaceSigmaAlpha(rad float64)
	SetLateralSurfaceSpecularLobe(w float64)
	SetLateralSurfaceSpecularSpike(w float64)
	SetLateralSurfaceBackScattering(w float64)

	SetRealDepolished(on bool)
	SetRealSurfaceRoughness(nm float64)
	SetRealSurfaceSigmaAlpha(rad float64)
	SetRealSurfaceSpecularLobe(w float64)
	SetRealSurfaceSpecularSpike(w float64)
	SetRealSurfaceBackScattering(w float64)

	SetEsrTransmittance(t config.Transmittance)
	SetSourceDistance(mm float64)
	SetResolutionScale(s float64)
	SetQuantumEfficiency(qe float64)
}

// Handoff delivers p to d, calling every setter exactly once.
func Handoff(p *config.Parameters, d DetectorConstruction) error {
	if p == nil {
		return fmt.Errorf("parameters are nil")
	}
	if d == nil {
		return fmt.Errorf("detector construction is nil")
	}

	g, o, s := p.Geometry, p.Optics, p.Scintillator
	d.SetCrystalDimensions(g.CrystalX, g.CrystalY, g.CrystalZ)
	d.SetNumberOfCrystals(g.NCrystalX, g.NCrystalY)
	d.SetEsrThickness(o.EsrThickness)
	d.SetLateralEsr(o.LateralEsr)
	d.SetBackEsr(o.BackEsr)
	d.SetGreaseFrontOne(o.GreaseFront1)
	d.SetGreaseFrontTwo(o.GreaseFront2)
	d.SetGlassFront(o.GlassFront)
	d.SetEpoxy(o.Epoxy)
	d.SetMppcDimensions(g.MppcX, g.MppcY, g.MppcZ)
	d.SetMppcGap(g.MppcGap)
	d.SetNumberOfMppc(g.NMppcX, g.NMppcY)
	d.SetGreaseBack(o.GreaseBack)
	d.SetGlassBack(o.GlassBack)
	d.SetAirBack(o.AirBack)
	d.SetLightYield(s.LightYield)
	d.SetRiseTime(s.RiseTime)
	d.SetDecayTime(s.DecayTime)

	lat := p.Lateral
	d.SetLateralDepolished(lat.Depolished)
	d.SetLateralSurfaceRoughness(lat.Roughness)
	d.SetLateralSurfaceSigmaAlpha(lat.SigmaAlpha)
	d.SetLateralSurfaceSpecularLobe(lat.SpecularLobe)
	d.SetLateralSurfaceSpecularSpike(lat.SpecularSpike)
	d.SetLateralSurfaceBackScattering(lat.BackScattering)

	fb := p.Real
	d.SetRealDepolished(fb.Depolished)
	d.SetRealSurfaceRoughness(fb.Roughness)
	d.SetRealSurfaceSigmaAlpha(fb.SigmaAlpha)
	d.SetRealSurfaceSpecularLobe(fb.SpecularLobe)
	d.SetRealSurfaceSpecularSpike(fb.SpecularSpike)
	d.SetRealSurfaceBackScattering(fb.BackScattering)

	d.SetEsrTransmittance(p.Response.EsrTransmittance)
	d.SetSourceDistance(p.Response.Distance)
	d.SetResolutionScale(s.ResolutionScale)
	d.SetQuantumEfficiency(p.Response.QuantumEff)

	return nil
}

package config

import (
	"fmt"

	"github.com/lemwill/g4matrix/pkg/logger"
)

// Summarize renders every resolved value as labelled report lines.
func Summarize(p *Parameters) []string {
	if p == nil {
		return nil
	}

	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add("Reading macro '%s' ...", p.Run.Macro)
	add("Random seed : %d", p.Run.Seed)
	add("Output file '%s.root' ...", p.Run.Output)
	if p.Run.Threads > 0 {
		add("Worker threads: %d", p.Run.Threads)
	}

	g := p.Geometry
	add("Crystal x length [mm]: %g", g.CrystalX)
	add("Crystal y length [mm]: %g", g.CrystalY)
	add("Crystal z length [mm]: %g", g.CrystalZ)
	add("Number crystal in x direction: %d", g.NCrystalX)
	add("Number crystal in y direction: %d", g.NCrystalY)

	o := p.Optics
	add("ESR thickness [mm]: %g", o.EsrThickness)
	if o.LateralEsr {
		add("Crystal(s) with lateral ESR")
	} else {
		add("No lateral ESR")
	}
	if o.BackEsr {
		add("Crystal(s) with back ESR")
	} else {
		add("No back ESR")
	}
	add("Grease layer between matrix and front glass [mm]: %g", o.GreaseFront1)
	add("Front glass light guide thickness [mm]: %g", o.GlassFront)
	add("Grease layer between front glass and mppc [mm]: %g", o.GreaseFront2)
	add("Epoxy layer of mppc [mm]: %g", o.Epoxy)

	add("Mppc x dimension [mm]: %g", g.MppcX)
	add("Mppc y dimension [mm]: %g", g.MppcY)
	add("Mppc z dimension [mm]: %g", g.MppcZ)
	add("Gap between MPPC detectors [mm]: %g", g.MppcGap)
	add("Number mppc in x direction: %d", g.NMppcX)
	add("Number mppc in y direction: %d", g.NMppcY)

	add("Grease layer between matrix and back glass [mm]: %g", o.GreaseBack)
	add("Back glass light guide thickness [mm]: %g", o.GlassBack)
	add("Air layer between back glass and esr [mm]: %g", o.AirBack)

	s := p.Scintillator
	add("Scintillator Light Yield [Ph/MeV]: %g", s.LightYield)
	add("Scintillator rise time [ns]: %g", s.RiseTime)
	add("Scintillator decay time [ns]: %g", s.DecayTime)

	lines = append(lines, surfaceLines("Crystal surface finish", "Lateral", p.Lateral)...)
	lines = append(lines, surfaceLines("Front and Back crystal surfaces finish", "Front and Back", p.Real)...)

	if v, fixed := p.Response.EsrTransmittance.Fixed(); fixed {
		add("Esr transmittance fixed to %g for all wavelengths", v)
	} else {
		add("Using esr transmittance values from measurement")
	}

	add("Resolution Scale: %g", s.ResolutionScale)
	add("Quantum efficiency: %g", p.Response.QuantumEff)
	add("Source distance [mm]: %g", p.Response.Distance)

	return lines
}

func surfaceLines(heading, faces string, sf SurfaceFinish) []string {
	if !sf.Depolished {
		return []string{
			fmt.Sprintf("%s: %s: perfect polished", heading, faces),
			fmt.Sprintf("  unused %s model: roughness=%g sigmaalpha=%g lobe=%g spike=%g backscattering=%g",
				faces, sf.Roughness, sf.SigmaAlpha, sf.SpecularLobe, sf.SpecularSpike, sf.BackScattering),
		}
	}

	lines := []string{
		fmt.Sprintf("%s: %s depolishing:", heading, faces),
		fmt.Sprintf("Sigma Alpha [radiants]: %g", sf.SigmaAlpha),
		fmt.Sprintf("Specular Lobe: %g", sf.SpecularLobe),
		fmt.Sprintf("Specular Spike: %g", sf.SpecularSpike),
		fmt.Sprintf("Back Scattering: %g", sf.BackScattering),
	}
	if sf.Roughness != 0 {
		lines = append(lines, fmt.Sprintf("Surface roughness [nm]: %g", sf.Roughness))
	}
	return lines
}

// Print writes the configuration report to the console.
func Print(p *Parameters) {
	logger.LogSection("C O N F I G U R A T I O N")
	logger.LogLines(Summarize(p))
}

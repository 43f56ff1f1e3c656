package config

// Field declares one configuration key.
type Field struct {
	Key      string
	Kind     Kind
	Required bool
	Unit     string
	Label    string
	// Example is a reference value, used when writing template files.
	Example string
	// target returns the Parameters field the value is stored in.
	target func(p *Parameters) any
}

func field(key string, kind Kind, unit, label, example string, target func(p *Parameters) any) Field {
	return Field{
		Key:      key,
		Kind:     kind,
		Required: true,
		Unit:     unit,
		Label:    label,
		Example:  example,
		target:   target,
	}
}

// Schema lists every configuration key in resolution order.
var Schema = []Field{
	field("output", KindString, "", "Output file base name", "g4matrix", func(p *Parameters) any { return &p.Run.Output }),
	field("macro", KindString, "", "Run macro", "run.mac", func(p *Parameters) any { return &p.Run.Macro }),
	field("seed", KindInt64, "", "Random seed (-1 derives one)", "-1", func(p *Parameters) any { return &p.Run.Seed }),

	field("crystalx", KindFloat, "mm", "Crystal x length", "1.53", func(p *Parameters) any { return &p.Geometry.CrystalX }),
	field("crystaly", KindFloat, "mm", "Crystal y length", "1.53", func(p *Parameters) any { return &p.Geometry.CrystalY }),
	field("crystalz", KindFloat, "mm", "Crystal z length", "15", func(p *Parameters) any { return &p.Geometry.CrystalZ }),
	field("ncrystalx", KindInt, "", "Number of crystals in x", "4", func(p *Parameters) any { return &p.Geometry.NCrystalX }),
	field("ncrystaly", KindInt, "", "Number of crystals in y", "4", func(p *Parameters) any { return &p.Geometry.NCrystalY }),

	field("esrThickness", KindFloat, "mm", "ESR thickness", "0.07", func(p *Parameters) any { return &p.Optics.EsrThickness }),
	field("lateralEsr", KindFlag, "", "Lateral ESR present", "1", func(p *Parameters) any { return &p.Optics.LateralEsr }),
	field("backEsr", KindFlag, "", "Back ESR present", "1", func(p *Parameters) any { return &p.Optics.BackEsr }),
	field("greaseFront1", KindFloat, "mm", "Grease between matrix and front glass", "0.1", func(p *Parameters) any { return &p.Optics.GreaseFront1 }),
	field("glassFront", KindFloat, "mm", "Front glass light guide thickness", "0", func(p *Parameters) any { return &p.Optics.GlassFront }),
	field("greaseFront2", KindFloat, "mm", "Grease between front glass and MPPC", "0", func(p *Parameters) any { return &p.Optics.GreaseFront2 }),
	field("epoxy", KindFloat, "mm", "MPPC epoxy layer", "0.1", func(p *Parameters) any { return &p.Optics.Epoxy }),

	field("mppcx", KindFloat, "mm", "MPPC x dimension", "3", func(p *Parameters) any { return &p.Geometry.MppcX }),
	field("mppcy", KindFloat, "mm", "MPPC y dimension", "3", func(p *Parameters) any { return &p.Geometry.MppcY }),
	field("mppcz", KindFloat, "mm", "MPPC z dimension", "0.5", func(p *Parameters) any { return &p.Geometry.MppcZ }),
	field("mppcGap", KindFloat, "mm", "Gap between MPPC detectors", "0.2", func(p *Parameters) any { return &p.Geometry.MppcGap }),
	field("nmppcx", KindInt, "", "Number of MPPCs in x", "2", func(p *Parameters) any { return &p.Geometry.NMppcX }),
	field("nmppcy", KindInt, "", "Number of MPPCs in y", "2", func(p *Parameters) any { return &p.Geometry.NMppcY }),

	field("greaseBack", KindFloat, "mm", "Grease between matrix and back glass", "0", func(p *Parameters) any { return &p.Optics.GreaseBack }),
	field("glassBack", KindFloat, "mm", "Back glass light guide thickness", "0", func(p *Parameters) any { return &p.Optics.GlassBack }),
	field("airBack", KindFloat, "mm", "Air between back glass and ESR", "0", func(p *Parameters) any { return &p.Optics.AirBack }),

	field("lightyield", KindFloat, "ph/MeV", "Scintillator light yield", "40000", func(p *Parameters) any { return &p.Scintillator.LightYield }),
	field("resolutionScale", KindFloat, "", "Resolution scale", "1", func(p *Parameters) any { return &p.Scintillator.ResolutionScale }),
	field("risetime", KindFloat, "ns", "Scintillation rise time", "0.5", func(p *Parameters) any { return &p.Scintillator.RiseTime }),
	field("decaytime", KindFloat, "ns", "Scintillation decay time", "40", func(p *Parameters) any { return &p.Scintillator.DecayTime }),

	field("latdepolished", KindFlag, "", "Lateral faces depolished", "0", func(p *Parameters) any { return &p.Lateral.Depolished }),
	field("latsurfaceroughness", KindFloat, "nm", "Lateral surface roughness", "0", func(p *Parameters) any { return &p.Lateral.Roughness }),
	field("latsigmaalpha", KindFloat, "rad", "Lateral sigma alpha", "0.1", func(p *Parameters) any { return &p.Lateral.SigmaAlpha }),
	field("latspecularlobe", KindFloat, "", "Lateral specular lobe", "1", func(p *Parameters) any { return &p.Lateral.SpecularLobe }),
	field("latspecularspike", KindFloat, "", "Lateral specular spike", "0", func(p *Parameters) any { return &p.Lateral.SpecularSpike }),
	field("latbackscattering", KindFloat, "", "Lateral back scattering", "0", func(p *Parameters) any { return &p.Lateral.BackScattering }),

	field("realdepolished", KindFlag, "", "Front and back faces depolished", "0", func(p *Parameters) any { return &p.Real.Depolished }),
	field("realsurfaceroughness", KindFloat, "nm", "Front/back surface roughness", "0", func(p *Parameters) any { return &p.Real.Roughness }),
	field("realsigmaalpha", KindFloat, "rad", "Front/back sigma alpha", "0.1", func(p *Parameters) any { return &p.Real.SigmaAlpha }),
	field("realspecularlobe", KindFloat, "", "Front/back specular lobe", "1", func(p *Parameters) any { return &p.Real.SpecularLobe }),
	field("realspecularspike", KindFloat, "", "Front/back specular spike", "0", func(p *Parameters) any { return &p.Real.SpecularSpike }),
	field("realbackscattering", KindFloat, "", "Front/back back scattering", "0", func(p *Parameters) any { return &p.Real.BackScattering }),

	field("esrTransmittance", KindFloat, "", "ESR transmittance (-1 uses measured data)", "-1", func(p *Parameters) any { return &p.Response.EsrTransmittance }),
	field("quantumEff", KindFloat, "", "MPPC quantum efficiency", "0.3", func(p *Parameters) any { return &p.Response.QuantumEff }),
	field("distance", KindFloat, "mm", "Source distance from module back", "100", func(p *Parameters) any { return &p.Response.Distance }),
}

// Lookup returns the schema entry for key.
func Lookup(key string) (Field, bool) {
	for _, f := range Schema {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// ExampleConfig returns a RawConfig filled with every schema example value.
func ExampleConfig() *RawConfig {
	raw := NewRawConfig("example")
	for _, f := range Schema {
		raw.Set(f.Key, f.Example)
	}
	return raw
}

// Check reports whether raw converts to the field's type.
func (f Field) Check(raw string) error {
	r := NewRawConfig("check")
	r.Set(f.Key, raw)
	var p Parameters
	return f.assign(r, &p)
}

package config

import "sort"

// Preset overrides the pacing and waveform of the default parameters.
// Zero fields keep the default.
type Preset struct {
	Code                string
	PeriodMs            int
	JitterLevel         int
	Turbulent           bool
	TurbulenceIntensity int
}

var Presets = map[string]Preset{
	"default": {},
	"calm": {
		Code: "000100000010", PeriodMs: 32,
	},
	"swell": {
		Code: "0111", PeriodMs: 24,
	},
	"choppy": {
		PeriodMs: 12, JitterLevel: 2,
	},
	"squall": {
		PeriodMs: 10, JitterLevel: 1, Turbulent: true, TurbulenceIntensity: 24,
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the non-zero preset fields onto p.
func (pr Preset) Apply(p *Params) {
	if pr.Code != "" {
		p.Code = pr.Code
	}
	if pr.PeriodMs != 0 {
		p.PeriodMs = pr.PeriodMs
	}
	if pr.JitterLevel != 0 {
		p.JitterLevel = pr.JitterLevel
	}
	if pr.Turbulent {
		p.Turbulent = true
	}
	if pr.TurbulenceIntensity != 0 {
		p.TurbulenceIntensity = pr.TurbulenceIntensity
	}
}

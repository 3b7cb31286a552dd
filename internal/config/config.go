package config

import (
	"fmt"
	"time"

	"github.com/san-kum/bwave/internal/wave"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCode                = wave.DefaultCode
	DefaultSymbols             = wave.DefaultSymbols
	DefaultPeriodMs            = 16
	DefaultTurbulenceIntensity = 99
	DefaultJitterLevel         = 0
	DefaultMaxWidth            = 58
	DefaultMargin              = 6
	DefaultFallbackColumns     = 32
	DefaultTheme               = "plain"
	DefaultLogLevel            = "warn"
)

type Params struct {
	Code                string        `yaml:"code"`
	Symbols             string        `yaml:"symbols"`
	PeriodMs            int           `yaml:"period_ms"`
	JitterLevel         int           `yaml:"jitter_level"`
	TurbulenceIntensity int           `yaml:"turbulence_intensity"`
	Turbulent           bool          `yaml:"turbulent"`
	Display             DisplayConfig `yaml:"display"`
	LogLevel            string        `yaml:"log_level"`
}

type DisplayConfig struct {
	MaxWidth        int    `yaml:"max_width"`
	Margin          int    `yaml:"margin"`
	FallbackColumns int    `yaml:"fallback_columns"`
	Theme           string `yaml:"theme"`
}

func DefaultParams() *Params {
	return &Params{
		Code:                DefaultCode,
		Symbols:             DefaultSymbols,
		PeriodMs:            DefaultPeriodMs,
		JitterLevel:         DefaultJitterLevel,
		TurbulenceIntensity: DefaultTurbulenceIntensity,
		Display: DisplayConfig{
			MaxWidth:        DefaultMaxWidth,
			Margin:          DefaultMargin,
			FallbackColumns: DefaultFallbackColumns,
			Theme:           DefaultTheme,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Period returns the nominal frame period.
func (p *Params) Period() time.Duration {
	return time.Duration(p.PeriodMs) * time.Millisecond
}

// Validate checks the parameters a run cannot start without.
func (p *Params) Validate() error {
	if _, err := wave.NewCode(p.Code); err != nil {
		return fmt.Errorf("code: %w", err)
	}
	if _, err := wave.NewSymbolSet(p.Symbols); err != nil {
		return fmt.Errorf("symbols: %w", err)
	}
	if p.PeriodMs <= 0 {
		return fmt.Errorf("period must be positive, got %dms", p.PeriodMs)
	}
	if p.JitterLevel < 0 {
		return fmt.Errorf("jitter level must not be negative, got %d", p.JitterLevel)
	}
	if p.Turbulent && p.TurbulenceIntensity < 1 {
		return fmt.Errorf("turbulence intensity: %w", wave.ErrIntensity)
	}
	if p.Display.MaxWidth < 1 {
		return fmt.Errorf("max width must be positive, got %d", p.Display.MaxWidth)
	}
	if p.Display.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %d", p.Display.Margin)
	}
	return nil
}

// Marshal renders the parameters as YAML.
func (p *Params) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// Source returns the waveform source described by the parameters.
func (p *Params) Source(rng wave.IntSource) wave.Source {
	return wave.Source{
		Fixed:     p.Code,
		Intensity: p.TurbulenceIntensity,
		Rand:      rng,
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/san-kum/bwave/internal/anim"
	"github.com/san-kum/bwave/internal/config"
	"github.com/san-kum/bwave/internal/logging"
	"github.com/san-kum/bwave/internal/termio"
	"github.com/san-kum/bwave/internal/viz"
	"github.com/san-kum/bwave/internal/wave"
	"github.com/spf13/cobra"
)

var (
	turbulent bool
	periodMs  int
	jitter    int
	intensity int
	theme     string
	preset    string
	logLevel  string
	// Plot width
	plotWidth int
)

// main registers the commands and flags and runs the ripple by default.
// It exits with status 1 if a command returns an error; an interrupt is a
// normal exit.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	lenient := cobra.FParseErrWhitelist{UnknownFlags: true}

	rootCmd := &cobra.Command{
		Use:                "bwave",
		Short:              "ripple a braille wave across the terminal",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: lenient,
		SilenceUsage:       true,
		RunE:               runWave,
		// a stray "completion" argument ripples like any other
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	defaults := config.DefaultParams()
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&turbulent, "turbulence", "t", false, "ripple with a random waveform")
	pf.IntVar(&periodMs, "period", defaults.PeriodMs, "frame period in milliseconds")
	pf.IntVar(&jitter, "jitter", defaults.JitterLevel, "frame delay jitter level (0 = steady)")
	pf.IntVar(&intensity, "intensity", defaults.TurbulenceIntensity, "random waveform length with --turbulence")
	pf.StringVar(&theme, "theme", defaults.Display.Theme, "color theme")
	pf.StringVar(&preset, "preset", "", "use preset pacing")
	pf.StringVar(&logLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")

	tuiCmd := &cobra.Command{
		Use:                "tui",
		Short:              "interactive ripple view",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: lenient,
		RunE:               runLive,
	}

	plotCmd := &cobra.Command{
		Use:                "plot",
		Short:              "chart one waveform cycle",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: lenient,
		RunE:               plotWave,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "chart width")

	paramsCmd := &cobra.Command{
		Use:                "params",
		Short:              "print the effective parameters as yaml",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: lenient,
		RunE:               printParams,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, plotCmd, paramsCmd, presetsCmd)
	return rootCmd
}

// loadParams applies the preset, then any flag set on the command line.
func loadParams(cmd *cobra.Command) (*config.Params, error) {
	p := config.DefaultParams()

	if preset != "" {
		pr, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		pr.Apply(p)
	}

	flags := cmd.Flags()
	if flags.Changed("period") {
		p.PeriodMs = periodMs
	}
	if flags.Changed("jitter") {
		p.JitterLevel = jitter
	}
	if flags.Changed("intensity") {
		p.TurbulenceIntensity = intensity
	}
	if flags.Changed("theme") {
		p.Display.Theme = theme
	}
	if flags.Changed("log-level") {
		p.LogLevel = logLevel
	}
	if turbulent {
		p.Turbulent = true
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	return p, nil
}

func newLogger(p *config.Params) (*slog.Logger, error) {
	level, err := logging.ParseLevel(p.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// buildWave builds the waveform and symbols once for the whole run.
func buildWave(p *config.Params) (wave.Code, wave.SymbolSet, error) {
	code, err := p.Source(nil).Code(p.Turbulent)
	if err != nil {
		return wave.Code{}, wave.SymbolSet{}, err
	}
	symbols, err := wave.NewSymbolSet(p.Symbols)
	if err != nil {
		return wave.Code{}, wave.SymbolSet{}, err
	}
	return code, symbols, nil
}

func resolveTheme(p *config.Params) (viz.Theme, error) {
	th, ok := viz.GetTheme(p.Display.Theme)
	if !ok {
		return viz.ThemePlain, fmt.Errorf("unknown theme: %s (available: %v)", p.Display.Theme, viz.ThemeNames())
	}
	return th, nil
}

// displayWidth reads the live column count on every call, so a resize takes
// effect on the next frame.
func displayWidth(term *termio.Terminal, p *config.Params) anim.WidthFunc {
	return func() int {
		return anim.DisplayWidth(term.Columns(), p.Display.MaxWidth, p.Display.Margin)
	}
}

func runWave(cmd *cobra.Command, args []string) error {
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(p)
	if err != nil {
		return err
	}
	code, symbols, err := buildWave(p)
	if err != nil {
		return err
	}
	th, err := resolveTheme(p)
	if err != nil {
		return err
	}

	term := termio.New(cmd.OutOrStdout(), p.Display.FallbackColumns, log)
	if !term.ColorEnabled() {
		th = viz.ThemePlain
	}

	s, err := anim.New(code, symbols, term, displayWidth(term, p), anim.Config{
		Period:      p.Period(),
		JitterLevel: p.JitterLevel,
		Render:      th.Renderer(),
		Logger:      log,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term.HideCursor()
	defer term.ShowCursor()

	log.Info("rippling", "turbulent", p.Turbulent, "code_len", code.Len(), "theme", th.Name)
	return s.Run(ctx)
}

func runLive(cmd *cobra.Command, args []string) error {
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(p)
	if err != nil {
		return err
	}
	code, symbols, err := buildWave(p)
	if err != nil {
		return err
	}
	th, err := resolveTheme(p)
	if err != nil {
		return err
	}

	term := termio.New(cmd.OutOrStdout(), p.Display.FallbackColumns, log)
	return viz.RunLive(code, symbols, viz.LiveConfig{
		Period:      p.Period(),
		JitterLevel: p.JitterLevel,
		MaxWidth:    p.Display.MaxWidth,
		Margin:      p.Display.Margin,
		Columns:     term.Columns(),
		Theme:       th,
	})
}

func plotWave(cmd *cobra.Command, args []string) error {
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}
	code, symbols, err := buildWave(p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Plot(code, symbols, plotWidth))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.Preview(code, symbols, p.Display.MaxWidth))
	return nil
}

func printParams(cmd *cobra.Command, args []string) error {
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

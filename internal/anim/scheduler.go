package anim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/san-kum/bwave/internal/wave"
)

// WidthFunc reports the current display width in glyphs. It is called once
// per frame so a resized terminal takes effect on the next frame.
type WidthFunc func() int

// Observer is notified after each frame is written.
type Observer interface {
	OnFrame(counter int, glyphs []rune)
}

// RenderFunc styles one glyph line. crest runs parallel to glyphs and marks
// the glyphs emitted by a crest sweep.
type RenderFunc func(glyphs []rune, crest []bool) string

// Config tunes the loop. Render, when set, styles each glyph line before it
// is written.
type Config struct {
	Period      time.Duration
	JitterLevel int
	Rand        FloatSource
	Render      RenderFunc
	Logger      *slog.Logger
}

type Scheduler struct {
	code      wave.Code
	symbols   wave.SymbolSet
	out       io.Writer
	width     WidthFunc
	cfg       Config
	log       *slog.Logger
	state     wave.FrameState
	observers []Observer
}

func New(code wave.Code, symbols wave.SymbolSet, out io.Writer, width WidthFunc, cfg Config) (*Scheduler, error) {
	if err := validateConfig(code, symbols, out, width, cfg); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scheduler{
		code:      code,
		symbols:   symbols,
		out:       out,
		width:     width,
		cfg:       cfg,
		log:       log,
		observers: make([]Observer, 0),
	}, nil
}

func validateConfig(code wave.Code, symbols wave.SymbolSet, out io.Writer, width WidthFunc, cfg Config) error {
	if code.Len() == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, wave.ErrEmptyCode)
	}
	if symbols.Len() == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, wave.ErrEmptySymbols)
	}
	if out == nil {
		return fmt.Errorf("%w: nil output", ErrInvalidConfig)
	}
	if width == nil {
		return fmt.Errorf("%w: nil width func", ErrInvalidConfig)
	}
	if cfg.Period <= 0 {
		return fmt.Errorf("%w: period must be positive, got %v", ErrInvalidConfig, cfg.Period)
	}
	if cfg.JitterLevel < 0 {
		return fmt.Errorf("%w: jitter level must not be negative, got %d", ErrInvalidConfig, cfg.JitterLevel)
	}
	return nil
}

func (s *Scheduler) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// State returns a copy of the current frame state.
func (s *Scheduler) State() wave.FrameState {
	return wave.FrameState{
		Counter: s.state.Counter,
		Glyphs:  append([]rune(nil), s.state.Glyphs...),
		Crest:   append([]bool(nil), s.state.Crest...),
	}
}

// Run renders frames until ctx is done, then writes a single newline and
// returns nil. It only returns an error if the output fails.
func (s *Scheduler) Run(ctx context.Context) error {
	s.log.Debug("animation started",
		"code", s.code.String(),
		"period", s.cfg.Period,
		"jitter", s.cfg.JitterLevel)

	timer := time.NewTimer(s.cfg.Period)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return s.interrupt()
		default:
		}

		if err := s.Frame(); err != nil {
			return err
		}

		timer.Reset(Delay(s.cfg.Period, s.cfg.JitterLevel, s.cfg.Rand))
		select {
		case <-ctx.Done():
			return s.interrupt()
		case <-timer.C:
		}
	}
}

// Frame composes, writes and publishes one frame.
func (s *Scheduler) Frame() error {
	counter := s.state.Counter
	glyphs := s.state.Step(s.code, s.symbols, s.width())

	line := string(glyphs)
	if s.cfg.Render != nil {
		line = s.cfg.Render(glyphs, s.state.Crest)
	}
	if _, err := io.WriteString(s.out, "\r"+line); err != nil {
		return fmt.Errorf("%w: frame %d: %w", ErrWrite, counter, err)
	}

	for _, obs := range s.observers {
		obs.OnFrame(counter, glyphs)
	}
	return nil
}

func (s *Scheduler) interrupt() error {
	s.log.Debug("animation interrupted", "counter", s.state.Counter)
	if _, err := io.WriteString(s.out, "\n"); err != nil {
		return fmt.Errorf("%w: newline: %w", ErrWrite, err)
	}
	return nil
}

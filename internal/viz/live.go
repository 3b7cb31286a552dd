package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bwave/internal/anim"
	"github.com/san-kum/bwave/internal/wave"
)

type TickMsg time.Time

// LiveConfig holds the pacing and layout of the live view.
type LiveConfig struct {
	Period      time.Duration
	JitterLevel int
	Rand        anim.FloatSource
	MaxWidth    int
	Margin      int
	Columns     int
	Theme       Theme
}

// Model is the Bubble Tea view of the ripple. It shares the frame
// transition with the plain scheduler.
type Model struct {
	code     wave.Code
	symbols  wave.SymbolSet
	cfg      LiveConfig
	state    wave.FrameState
	columns  int
	theme    Theme
	render   anim.RenderFunc
	running  bool
	quitting bool
}

func NewModel(code wave.Code, symbols wave.SymbolSet, cfg LiveConfig) Model {
	return Model{
		code:    code,
		symbols: symbols,
		cfg:     cfg,
		columns: cfg.Columns,
		theme:   cfg.Theme,
		render:  cfg.Theme.Renderer(),
		running: true,
	}
}

func (m Model) tick() tea.Cmd {
	d := anim.Delay(m.cfg.Period, m.cfg.JitterLevel, m.cfg.Rand)
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys, resizes and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "t":
			m.theme = NextTheme(m.theme)
			m.render = m.theme.Renderer()
		}
	case tea.WindowSizeMsg:
		m.columns = msg.Width
	case TickMsg:
		if m.running {
			m.state.Step(m.code, m.symbols, m.Width())
		}
		return m, m.tick()
	}
	return m, nil
}

// Width is the glyph width for the last known terminal size.
func (m Model) Width() int {
	return anim.DisplayWidth(m.columns, m.cfg.MaxWidth, m.cfg.Margin)
}

func (m Model) State() wave.FrameState {
	return m.state
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	line := string(m.state.Glyphs)
	if m.render != nil {
		line = m.render(m.state.Glyphs, m.state.Crest)
	}

	status := statusRunning.Render("running")
	if !m.running {
		status = statusPaused.Render("paused")
	}
	var s strings.Builder
	s.WriteString(waveStyle.Render(line))
	s.WriteString("\n  ")
	s.WriteString(status)
	s.WriteString(keyHint.Render(fmt.Sprintf(" · frame %d/%d · theme %s · space pause · t theme · q quit",
		m.state.Counter, wave.Period(m.code, m.symbols), m.theme.Name)))
	return s.String()
}

// RunLive runs the live view until the user quits.
func RunLive(code wave.Code, symbols wave.SymbolSet, cfg LiveConfig) error {
	_, err := tea.NewProgram(NewModel(code, symbols, cfg)).Run()
	return err
}

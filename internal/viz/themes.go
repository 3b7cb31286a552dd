package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/bwave/internal/anim"
)

// Theme colours the ripple. Flat glyphs take Flat, crest glyphs take Crest.
// The plain theme leaves the line untouched.
type Theme struct {
	Name  string
	Crest lipgloss.Color
	Flat  lipgloss.Color
}

// Available themes
var (
	ThemePlain = Theme{Name: "plain"}

	ThemeOcean = Theme{
		Name:  "ocean",
		Crest: lipgloss.Color("#00a8cc"),
		Flat:  lipgloss.Color("#0077be"),
	}

	ThemeCyberpunk = Theme{
		Name:  "cyberpunk",
		Crest: lipgloss.Color("#ff00ff"), // Magenta
		Flat:  lipgloss.Color("#00ffff"), // Cyan
	}

	ThemeRetroGreen = Theme{
		Name:  "retro",
		Crest: lipgloss.Color("#88ff88"),
		Flat:  lipgloss.Color("#005500"),
	}

	ThemeSunset = Theme{
		Name:  "sunset",
		Crest: lipgloss.Color("#ff6b6b"), // Coral
		Flat:  lipgloss.Color("#feca57"),
	}

	// All available themes
	Themes = []Theme{
		ThemePlain,
		ThemeOcean,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemePlain, false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemePlain
}

// Renderer returns a line styler that colours each glyph by its crest flag.
// The plain theme returns nil.
func (t Theme) Renderer() anim.RenderFunc {
	if t.Crest == "" && t.Flat == "" {
		return nil
	}
	flatStyle := lipgloss.NewStyle().Foreground(t.Flat)
	crestStyle := lipgloss.NewStyle().Foreground(t.Crest)

	return func(glyphs []rune, crest []bool) string {
		var b strings.Builder
		var run []rune
		runCrest := false
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runCrest {
				b.WriteString(crestStyle.Render(string(run)))
			} else {
				b.WriteString(flatStyle.Render(string(run)))
			}
			run = run[:0]
		}
		for i, r := range glyphs {
			isCrest := i < len(crest) && crest[i]
			if len(run) > 0 && isCrest != runCrest {
				flush()
			}
			runCrest = isCrest
			run = append(run, r)
		}
		flush()
		return b.String()
	}
}

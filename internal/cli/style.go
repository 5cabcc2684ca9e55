package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/vaultpass/vaultpass-engine/internal/strength"
)

// Meter colours per tier.
var tierColors = map[strength.Tier]lipgloss.Color{
	strength.Weak:       lipgloss.Color("#ef4444"),
	strength.Medium:     lipgloss.Color("#eab308"),
	strength.Strong:     lipgloss.Color("#22c55e"),
	strength.VeryStrong: lipgloss.Color("#a855f7"),
}

// styles renders for a specific writer so colour is dropped when it is not
// a terminal.
type styles struct {
	r   *lipgloss.Renderer
	dim lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		r:   r,
		dim: r.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
	}
}

func (s styles) tier(t strength.Tier) string {
	return s.r.NewStyle().Bold(true).Foreground(tierColors[t]).Render(t.Label())
}

func (s styles) key(k string) string {
	return s.dim.Render(k)
}

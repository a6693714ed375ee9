package maze

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the per-symbol styles used by Render.
type Styles struct {
	Clear  lipgloss.Style
	Wall   lipgloss.Style
	Weight lipgloss.Style
	Path   lipgloss.Style
}

// DefaultStyles dims walls, highlights weighted cells and paints the path.
func DefaultStyles() Styles {
	return Styles{
		Clear:  lipgloss.NewStyle(),
		Wall:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")),
		Weight: lipgloss.NewStyle().Foreground(lipgloss.Color("#e3b341")),
		Path:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")),
	}
}

func (s Styles) style(symbol rune) lipgloss.Style {
	switch {
	case symbol == Wall:
		return s.Wall
	case symbol == PathMark:
		return s.Path
	case symbol >= '0' && symbol <= '9':
		return s.Weight
	default:
		return s.Clear
	}
}

// Render draws the maze like String, with each cell styled by its symbol.
func (m *Maze) Render(styles Styles) string {
	lines := make([]string, len(m.cells))
	cells := make([]string, 0, len(m.cells[0]))
	for i, row := range m.cells {
		cells = cells[:0]
		for _, symbol := range row {
			cells = append(cells, styles.style(symbol).Render(string(symbol)))
		}
		lines[i] = strings.Join(cells, " ")
	}
	return strings.Join(lines, "\n")
}

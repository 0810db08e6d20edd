package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/layerstack/pkg/multiplex"
	"github.com/matzehuels/layerstack/pkg/render/styles"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// LayerListModel - Interactive layer selection
// =============================================================================

// LayerSelection holds the result of the layer selection.
type LayerSelection struct {
	Index int
}

// LayerListModel is the bubbletea model for interactive layer browsing.
type LayerListModel struct {
	Graph    *multiplex.Graph
	Cursor   int
	Selected *LayerSelection
	Height   int
	Offset   int
}

// NewLayerListModel creates a new layer list model.
func NewLayerListModel(g *multiplex.Graph) LayerListModel {
	return LayerListModel{
		Graph:  g,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m LayerListModel) Init() tea.Cmd {
	return nil
}

func (m LayerListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < m.Graph.LayerCount()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = &LayerSelection{Index: m.Cursor}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m LayerListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Layer"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > m.Graph.LayerCount() {
		end = m.Graph.LayerCount()
	}

	all := layerRows(m.Graph)
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, append([]string{cursor}, all[i]...))
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Layer", "Color", "Non-zero", "Density", "Symmetric").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= m.Graph.LayerCount() {
				return lipgloss.NewStyle()
			}
			if col == 2 {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ColorFor(actualIdx, m.Graph.LayerCount()).Hex()))
			}
			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			if col == 1 {
				return listNormalStyle
			}
			return listDimStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.Graph.LayerCount())))

	return b.String()
}

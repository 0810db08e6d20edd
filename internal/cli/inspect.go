package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/layerstack/pkg/io"
	"github.com/matzehuels/layerstack/pkg/multiplex"
	"github.com/matzehuels/layerstack/pkg/render/styles"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	jsonOut     bool
	export      string
	interactive bool
	matrices    bool
}

// inspectCommand creates the inspect command for examining manifests.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect [manifest]",
		Short: "Summarize the layers of a multiplex graph",
		Long: `Summarize a multiplex graph manifest in the terminal.

The default output shows the graph dimensions and a per-layer table with the
layer name, its color in the rendered scene, the number of non-zero cells,
the density, and whether the matrix is symmetric. Use --matrices to print
the full adjacency matrices with non-zero cells tinted in the layer color,
or --interactive to browse layers with the arrow keys.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "write the normalized graph as JSON to stdout")
	cmd.Flags().StringVar(&opts.export, "export", "", "write the normalized graph as JSON to a file")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse layers interactively")
	cmd.Flags().BoolVar(&opts.matrices, "matrices", false, "print every layer matrix")

	return cmd
}

// runInspect loads the manifest and prints the requested view.
func (c *CLI) runInspect(ctx context.Context, input string, opts inspectOpts) error {
	g, err := multiplex.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load manifest %s: %w", input, err)
	}

	switch {
	case opts.jsonOut:
		return io.WriteGraph(g, os.Stdout)
	case opts.export != "":
		if err := io.ExportGraph(g, opts.export); err != nil {
			return fmt.Errorf("export graph: %w", err)
		}
		printSuccess("Graph exported")
		printFile(opts.export)
		return nil
	case opts.interactive:
		return c.browseLayers(ctx, g)
	}

	title := g.Title
	if title == "" {
		title = "—"
	}
	printKeyValue("Title", title)
	printKeyValue("Layers", strconv.Itoa(g.LayerCount()))
	printKeyValue("Nodes", strconv.Itoa(g.NodeCount()))
	printKeyValue("Edges", strconv.Itoa(g.EdgeCount()))
	printNewline()
	fmt.Println(layerSummaryTable(g))

	if opts.matrices {
		for i := range g.Layers {
			printNewline()
			fmt.Println(layerHeading(g, i))
			fmt.Println(matrixTable(g.Layers[i].Matrix, styles.ColorFor(i, g.LayerCount())))
		}
	}
	return nil
}

// browseLayers runs the interactive layer browser and prints the matrix of
// the selected layer.
func (c *CLI) browseLayers(ctx context.Context, g *multiplex.Graph) error {
	p := tea.NewProgram(NewLayerListModel(g), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("layer browser: %w", err)
	}

	result, ok := finalModel.(LayerListModel)
	if !ok || result.Selected == nil {
		return nil
	}

	i := result.Selected.Index
	printNewline()
	fmt.Println(layerHeading(g, i))
	fmt.Println(matrixTable(g.Layers[i].Matrix, styles.ColorFor(i, g.LayerCount())))
	return nil
}

// =============================================================================
// Layer Tables
// =============================================================================

// layerRows builds one summary row per layer: name, color, non-zero count,
// density, and symmetry.
func layerRows(g *multiplex.Graph) [][]string {
	rows := make([][]string, g.LayerCount())
	for i, layer := range g.Layers {
		symmetric := ""
		if layer.IsSymmetric() {
			symmetric = "✓"
		}
		rows[i] = []string{
			g.LayerName(i),
			"■ " + styles.ColorFor(i, g.LayerCount()).Hex(),
			strconv.Itoa(layer.NonZeroCount()),
			fmt.Sprintf("%.2f", layer.Density()),
			symmetric,
		}
	}
	return rows
}

// layerSummaryTable renders the per-layer summary used by inspect.
func layerSummaryTable(g *multiplex.Graph) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Layer", "Color", "Non-zero", "Density", "Symmetric").
		Rows(layerRows(g)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return listNormalStyle
			case 1:
				if row < g.LayerCount() {
					return lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ColorFor(row, g.LayerCount()).Hex()))
				}
				return StyleDim
			case 2, 3:
				return StyleNumber
			default:
				return StyleDim
			}
		})

	return t.Render()
}

// layerHeading renders a one-line heading with the layer's swatch and name.
func layerHeading(g *multiplex.Graph, i int) string {
	c := styles.ColorFor(i, g.LayerCount())
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("■")
	return swatch + " " + StyleHighlight.Render(g.LayerName(i)) + " " + StyleDim.Render(c.Hex())
}

// matrixTable renders an adjacency matrix with non-zero cells tinted in the
// layer color. Row and column headers carry the node indices.
func matrixTable(matrix [][]float64, c styles.Color) string {
	n := len(matrix)
	headers := make([]string, n+1)
	headers[0] = ""
	for j := 0; j < n; j++ {
		headers[j+1] = strconv.Itoa(j)
	}

	rows := make([][]string, n)
	for i, row := range matrix {
		cells := make([]string, n+1)
		cells[0] = strconv.Itoa(i)
		for j, v := range row {
			cells[j+1] = formatMatrixValue(v)
		}
		rows[i] = cells
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 || col == 0 {
				return headerStyle
			}
			if row >= 0 && row < n && col-1 < len(matrix[row]) && matrix[row][col-1] != 0 {
				return valueStyle
			}
			return StyleDim
		})

	return t.Render()
}

// formatMatrixValue formats a cell value without trailing zeros.
func formatMatrixValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

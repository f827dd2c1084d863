package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
)

// newInfoCmd creates the info command for summarizing a diagram: element
// counts by kind and per-process health metrics.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Summarize a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDiagram(args[0])
			if err != nil {
				return err
			}
			printDiagramInfo(args[0], d)
			return nil
		},
	}
}

// printDiagramInfo writes the summary: header, kind breakdown, and a table
// of process metrics for nodes that carry a payload.
func printDiagramInfo(path string, d diagram.Diagram) {
	fmt.Println(StyleTitle.Render(path))
	printStats(len(d.Nodes), len(d.ValidEdges()))
	printNewline()

	for _, line := range kindBreakdown(d) {
		printDetail("%s", line)
	}

	rows := metricRows(d)
	if len(rows) == 0 {
		return
	}

	printNewline()
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Process", "Cycle", "Changeover", "Uptime", "Health").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleValue
			}
			return StyleNumber
		})
	fmt.Println(t)
}

// kindBreakdown returns one "count kind" line per node kind, sorted by kind.
func kindBreakdown(d diagram.Diagram) []string {
	counts := map[diagram.Kind]int{}
	for _, n := range d.Nodes {
		counts[n.Kind]++
	}

	kinds := make([]diagram.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	lines := make([]string, 0, len(kinds))
	for _, k := range kinds {
		lines = append(lines, fmt.Sprintf("%3d %s", counts[k], k))
	}
	return lines
}

// metricRows builds table rows for every node with a non-zero payload.
func metricRows(d diagram.Diagram) [][]string {
	var rows [][]string
	for _, n := range d.Nodes {
		p := n.Payload
		if p == (diagram.Payload{}) {
			continue
		}
		rows = append(rows, []string{
			n.Label,
			fmt.Sprintf("%.0fs", p.CycleTime),
			fmt.Sprintf("%.0fs", p.ChangeoverTime),
			fmt.Sprintf("%.0f%%", p.Uptime),
			fmt.Sprintf("%.2f", diagram.PayloadHealth(p)),
		})
	}
	return rows
}

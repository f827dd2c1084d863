package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file path
	detailed    bool   // include process metrics in node labels
	leftToRight bool   // lay the graph out left to right
}

// newRenderCmd creates the render command for generating SVG visualizations
// of a diagram via Graphviz.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{leftToRight: true}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a diagram to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with .svg extension)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include process metrics in node labels")
	cmd.Flags().BoolVar(&opts.leftToRight, "left-to-right", opts.leftToRight, "lay the graph out left to right")

	return cmd
}

// runRender loads the diagram from input and renders it as SVG.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	d, err := readDiagram(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded diagram: %d nodes, %d edges", len(d.Nodes), len(d.Edges))

	dot := render.ToDOT(d, render.Options{
		Detailed:    opts.detailed,
		LeftToRight: opts.leftToRight,
	})
	logger.Debugf("Generated DOT: %d bytes", len(dot))

	spin := newSpinnerWithContext(ctx, "Rendering SVG")
	spin.Start()
	svg, err := render.RenderSVG(dot)
	if err != nil {
		spin.StopWithError("SVG rendering failed")
		return fmt.Errorf("rendering SVG: %w", err)
	}
	spin.Stop()

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}
	if err := writeOutput(outputPath, svg); err != nil {
		return err
	}

	printSuccess("Rendered %s", outputPath)
	return nil
}

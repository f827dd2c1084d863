package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/bpmn"
)

// newExportCmd creates the export command for serializing diagrams to BPMN
// XML with a full diagram-interchange section.
func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a diagram to BPMN XML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			return runExport(cmd.Context(), input, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func runExport(ctx context.Context, input, output string) error {
	logger := loggerFromContext(ctx)

	d, err := readDiagram(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded diagram: %d nodes, %d edges", len(d.Nodes), len(d.Edges))

	data, err := bpmn.Export(d)
	if err != nil {
		return err
	}
	if err := writeOutput(output, data); err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("Exported %d nodes to BPMN", len(d.Nodes)))
	return nil
}

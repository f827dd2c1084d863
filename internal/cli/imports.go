package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/bpmn"
	"github.com/flowcanvas/flowcanvas/pkg/diagram"
)

// newImportCmd creates the import command for reading BPMN XML into a
// diagram. Import is total: malformed or unrecognized input produces an
// empty diagram, never an error.
func newImportCmd() *cobra.Command {
	var output, prior string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import BPMN XML into a diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			return runImport(cmd.Context(), input, output, prior)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&prior, "prior", "", "prior diagram JSON for payload recovery")
	return cmd
}

func runImport(ctx context.Context, input, output, prior string) error {
	logger := loggerFromContext(ctx)

	data, err := readInput(input)
	if err != nil {
		return err
	}

	// A prior diagram lets matching node ids keep their process metrics,
	// which the BPMN wire format cannot carry.
	var prev *diagram.Diagram
	if prior != "" {
		p, err := readDiagram(prior)
		if err != nil {
			return err
		}
		prev = &p
	}

	d := bpmn.Import(data, prev)
	if len(d.Nodes) == 0 {
		printWarning("no recognizable BPMN content, produced an empty diagram")
	}
	logger.Debugf("Imported %d nodes, %d edges", len(d.Nodes), len(d.Edges))

	out, err := diagram.Marshal(d)
	if err != nil {
		return err
	}
	return writeOutput(output, out)
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/lift"
)

// liftScopeToVSM and friends name the cross-notation conversions on the CLI.
const (
	liftScopeToVSM  = "scope-to-vsm"
	liftScopeToFlow = "scope-to-flow"
	liftVSMToFlow   = "vsm-to-flow"
)

// newConvertCmd creates the convert command for cross-notation lifts.
// Scope lifts read a scope JSON document; the value-stream lift reads a
// diagram JSON document. The result is always a diagram JSON document.
func newConvertCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <lift> [file]",
		Short: "Convert between diagram notations",
		Long: `Convert runs one cross-notation lift:

  scope-to-vsm   project scope (JSON) to a value-stream map
  scope-to-flow  project scope (JSON) to a flow chart
  vsm-to-flow    value-stream map (diagram JSON) to a flow chart

Reads from the positional file or stdin, writes diagram JSON to --output or stdout.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 1 {
				input = args[1]
			}
			return runConvert(cmd.Context(), args[0], input, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// runConvert dispatches to the named lift and writes the resulting diagram.
func runConvert(ctx context.Context, name, input, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var out diagram.Diagram
	switch name {
	case liftScopeToVSM, liftScopeToFlow:
		data, err := readInput(input)
		if err != nil {
			return err
		}
		var sc lift.Scope
		if err := json.Unmarshal(data, &sc); err != nil {
			return fmt.Errorf("parsing scope: %w", err)
		}
		if name == liftScopeToVSM {
			out = lift.ScopeToValueStream(sc)
		} else {
			out = lift.ScopeToFlow(sc)
		}
	case liftVSMToFlow:
		src, err := readDiagram(input)
		if err != nil {
			return err
		}
		out = lift.ValueStreamToFlow(src)
	default:
		return fmt.Errorf("unknown lift: %s (must be '%s', '%s', or '%s')",
			name, liftScopeToVSM, liftScopeToFlow, liftVSMToFlow)
	}

	data, err := diagram.Marshal(out)
	if err != nil {
		return err
	}
	if err := writeOutput(output, data); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Converted %s: %d nodes, %d edges", name, len(out.Nodes), len(out.Edges)))
	if output != "" && output != "-" {
		printNextStep("Render it", "flowcanvas render "+output)
	}
	return nil
}

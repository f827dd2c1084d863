package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/editor"
	"github.com/flowcanvas/flowcanvas/pkg/errors"
	"github.com/flowcanvas/flowcanvas/pkg/genai"
)

// newGenerator builds the generative collaborator. Overridable in tests; the
// default has no backing service and fails every request, which callers
// treat as "keep the current diagram".
var newGenerator = func() genai.Generator {
	return genai.Unavailable{}
}

// newGenerateCmd creates the generate command, which asks the generative
// collaborator to synthesize a diagram from a description or event log.
// Failure never destroys anything: the base diagram (or an empty one)
// passes through unchanged.
func newGenerateCmd() *cobra.Command {
	var output, base, eventLog, notation string

	cmd := &cobra.Command{
		Use:   "generate [description...]",
		Short: "Generate a diagram from a description or event log",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), generateOpts{
				description: strings.Join(args, " "),
				eventLog:    eventLog,
				notation:    notation,
				base:        base,
				output:      output,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&base, "base", "", "diagram JSON kept when generation fails")
	cmd.Flags().StringVar(&eventLog, "from-log", "", "event log file to mine instead of a description")
	cmd.Flags().StringVar(&notation, "notation", string(genai.NotationFlow), "target notation: flow, value-stream, case")
	return cmd
}

type generateOpts struct {
	description string
	eventLog    string
	notation    string
	base        string
	output      string
}

func runGenerate(ctx context.Context, opts generateOpts) error {
	logger := loggerFromContext(ctx)

	notation := genai.Notation(opts.notation)
	if !genai.ValidNotation(notation) {
		return errors.New(errors.ErrCodeInvalidNotation, "unknown notation %q", opts.notation)
	}

	var base diagram.Diagram
	if opts.base != "" {
		d, err := readDiagram(opts.base)
		if err != nil {
			return err
		}
		base = d
	}

	var eventLog string
	if opts.eventLog != "" {
		data, err := readInput(opts.eventLog)
		if err != nil {
			return err
		}
		eventLog = string(data)
	}

	ed := editor.New(base, editor.Options{})
	if !ed.BeginGeneration() {
		return errors.New(errors.ErrCodeInternal, "generation already in flight")
	}

	result, err := newGenerator().Generate(ctx, genai.Request{
		Description: opts.description,
		EventLog:    eventLog,
		Notation:    notation,
	})
	if err != nil {
		ed.EndGeneration(nil)
		printWarning("generation failed, keeping the current diagram: %v", err)
	} else {
		ed.EndGeneration(result)
		logger.Infof("Generated %d nodes", len(ed.Diagram().Nodes))
	}

	data, err := diagram.Marshal(ed.Diagram())
	if err != nil {
		return err
	}
	return writeOutput(opts.output, data)
}

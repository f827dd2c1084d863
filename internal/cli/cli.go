// Package cli implements the flowcanvas command-line interface.
//
// This package provides commands for converting diagrams between notations,
// bridging diagrams to and from BPMN XML, rendering SVG visualizations, and
// serving the engine over HTTP. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - convert: Run a cross-notation lift (scope-to-vsm, scope-to-flow, vsm-to-flow)
//   - export: Serialize a diagram to BPMN XML
//   - import: Read BPMN XML into a diagram
//   - render: Generate an SVG visualization
//   - info: Summarize a diagram with per-process health metrics
//   - view: Open an interactive terminal canvas
//   - serve: Run the HTTP API
//   - snapshot: Move workspace snapshots in and out of the configured store
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"

	"github.com/flowcanvas/flowcanvas/internal/config"
	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/errors"
)

// configPath is set by the root --config flag.
var configPath string

// loadConfig reads the configured TOML file. A missing file yields defaults.
func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}

// readInput reads a positional input file, or stdin when path is "-" or empty.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading %s", path)
	}
	return data, nil
}

// writeOutput writes to the output file, or stdout when path is "-" or empty.
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "writing %s", path)
	}
	printFile(path)
	return nil
}

// readDiagram loads a diagram JSON document from path or stdin.
func readDiagram(path string) (diagram.Diagram, error) {
	data, err := readInput(path)
	if err != nil {
		return diagram.Diagram{}, err
	}
	return diagram.Unmarshal(data)
}

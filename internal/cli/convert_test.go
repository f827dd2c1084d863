package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
)

func testContext() context.Context {
	return withLogger(context.Background(), newLogger(io.Discard, log.InfoLevel))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunConvertScopeToFlow(t *testing.T) {
	input := writeFile(t, "scope.json", `{
		"inputs": ["Order"],
		"process": ["Pick", "Pack"],
		"outputs": ["Shipment"]
	}`)
	output := filepath.Join(t.TempDir(), "flow.json")

	if err := runConvert(testContext(), liftScopeToFlow, input, output); err != nil {
		t.Fatalf("runConvert: %v", err)
	}

	d, err := diagram.ReadFile(output)
	if err != nil {
		t.Fatalf("reading result: %v", err)
	}
	if len(d.Nodes) != 4 || len(d.Edges) != 3 {
		t.Errorf("got %d nodes / %d edges, want 4/3", len(d.Nodes), len(d.Edges))
	}
}

func TestRunConvertVSMToFlow(t *testing.T) {
	var vsm diagram.Diagram
	vsm = vsm.AddNode(diagram.Node{Kind: diagram.KindProcess, Label: "Weld"})
	input := filepath.Join(t.TempDir(), "vsm.json")
	if err := diagram.WriteFile(vsm, input); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(t.TempDir(), "flow.json")

	if err := runConvert(testContext(), liftVSMToFlow, input, output); err != nil {
		t.Fatalf("runConvert: %v", err)
	}

	d, err := diagram.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Nodes) != 3 {
		t.Errorf("got %d nodes, want start+task+end", len(d.Nodes))
	}
}

func TestRunConvertRejectsUnknownLift(t *testing.T) {
	input := writeFile(t, "scope.json", `{}`)
	if err := runConvert(testContext(), "flow-to-gantt", input, ""); err == nil {
		t.Error("unknown lift should fail")
	}
}

func TestRunConvertRejectsMalformedScope(t *testing.T) {
	input := writeFile(t, "scope.json", `{{{`)
	if err := runConvert(testContext(), liftScopeToVSM, input, ""); err == nil {
		t.Error("malformed scope should fail")
	}
}

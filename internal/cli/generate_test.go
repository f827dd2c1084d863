package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/genai"
)

// stubGenerator returns a fixed diagram, or an error when failing is set.
type stubGenerator struct {
	result  *diagram.Diagram
	failing bool
}

func (g stubGenerator) Generate(ctx context.Context, req genai.Request) (*diagram.Diagram, error) {
	if g.failing {
		return nil, context.DeadlineExceeded
	}
	return g.result, nil
}

func swapGenerator(t *testing.T, g genai.Generator) {
	t.Helper()
	old := newGenerator
	newGenerator = func() genai.Generator { return g }
	t.Cleanup(func() { newGenerator = old })
}

func TestRunGenerateReplacesDiagram(t *testing.T) {
	var gen diagram.Diagram
	gen = gen.AddNode(diagram.Node{ID: "g1", Kind: diagram.KindTask, Label: "Generated"})
	swapGenerator(t, stubGenerator{result: &gen})

	output := filepath.Join(t.TempDir(), "out.json")
	err := runGenerate(testContext(), generateOpts{
		description: "a packing line",
		notation:    string(genai.NotationFlow),
		output:      output,
	})
	if err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	d, err := diagram.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !d.HasNode("g1") {
		t.Error("output should be the generated diagram")
	}
}

func TestRunGenerateFailureKeepsBase(t *testing.T) {
	swapGenerator(t, stubGenerator{failing: true})

	var base diagram.Diagram
	base = base.AddNode(diagram.Node{ID: "b1", Kind: diagram.KindTask, Label: "Existing"})
	basePath := filepath.Join(t.TempDir(), "base.json")
	if err := diagram.WriteFile(base, basePath); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(t.TempDir(), "out.json")

	err := runGenerate(testContext(), generateOpts{
		description: "anything",
		notation:    string(genai.NotationFlow),
		base:        basePath,
		output:      output,
	})
	if err != nil {
		t.Fatalf("generation failure should not be an error: %v", err)
	}

	d, err := diagram.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !d.HasNode("b1") || len(d.Nodes) != 1 {
		t.Error("failed generation should pass the base diagram through unchanged")
	}
}

func TestRunGenerateRejectsUnknownNotation(t *testing.T) {
	err := runGenerate(testContext(), generateOpts{notation: "gantt"})
	if err == nil {
		t.Error("unknown notation should fail")
	}
}

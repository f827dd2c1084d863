package render

import (
	"strings"
	"testing"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
)

func TestToDOT(t *testing.T) {
	var d diagram.Diagram
	d = d.AddNode(diagram.Node{ID: "s", Kind: diagram.KindStart, Label: "Begin"})
	d = d.AddNode(diagram.Node{ID: "t", Kind: diagram.KindTask, Label: "Pack"})
	d = d.AddNode(diagram.Node{ID: "e", Kind: diagram.KindEnd})
	d = d.AddEdge("s", "t", diagram.EdgeSequence)
	d = d.AddEdge("t", "e", diagram.EdgeSequence)

	dot := ToDOT(d, Options{LeftToRight: true})

	for _, want := range []string{
		"rankdir=LR", `"s" [label="Begin", shape=circle]`,
		`"t" [label="Pack"]`, `"e" [label="end", shape=doublecircle]`,
		`"s" -> "t"`, `"t" -> "e"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDropsInvalidEdges(t *testing.T) {
	var d diagram.Diagram
	d = d.AddNode(diagram.Node{ID: "a", Kind: diagram.KindTask})
	d.Edges = append(d.Edges, diagram.Edge{ID: "x", SourceID: "a", TargetID: "ghost"})

	dot := ToDOT(d, Options{})
	if strings.Contains(dot, "ghost") {
		t.Error("dangling edge leaked into DOT output")
	}
}

func TestToDOTEdgeStyles(t *testing.T) {
	var d diagram.Diagram
	d = d.AddNode(diagram.Node{ID: "a", Kind: diagram.KindProcess, Label: "Cut"})
	d = d.AddNode(diagram.Node{ID: "b", Kind: diagram.KindProcess, Label: "Weld"})
	d = d.AddEdge("a", "b", diagram.EdgePull)

	dot := ToDOT(d, Options{})
	if !strings.Contains(dot, "style=dashed") {
		t.Error("pull connectors should render dashed")
	}

	// Kinds affect style only, never the edge's endpoints.
	if !strings.Contains(dot, `"a" -> "b"`) {
		t.Error("edge endpoints altered by kind")
	}
}

func TestToDOTDetailed(t *testing.T) {
	var d diagram.Diagram
	d = d.AddNode(diagram.Node{ID: "p", Kind: diagram.KindProcess, Label: "Cut",
		Payload: diagram.Payload{CycleTime: 45, Uptime: 99}})

	plain := ToDOT(d, Options{})
	if strings.Contains(plain, "ct:") {
		t.Error("metrics should be hidden by default")
	}
	detailed := ToDOT(d, Options{Detailed: true})
	if !strings.Contains(detailed, "ct:") {
		t.Error("detailed output should include metrics")
	}
}

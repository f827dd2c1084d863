// Package render generates Graphviz DOT from diagrams and rasterizes it
// to SVG for previews outside the interactive surface.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes metric payloads in node labels.
	Detailed bool
	// LeftToRight lays the graph out horizontally (execution flow);
	// the default is top-to-bottom.
	LeftToRight bool
}

// dotShapes maps node kinds to Graphviz shapes. Unlisted kinds fall back
// to a plain box.
var dotShapes = map[diagram.Kind]string{
	diagram.KindStart:     "circle",
	diagram.KindEnd:       "doublecircle",
	diagram.KindGateway:   "diamond",
	diagram.KindEvent:     "circle",
	diagram.KindMilestone: "hexagon",
	diagram.KindInventory: "triangle",
}

// dashedEdgeKinds are rendered with a dashed stroke. Kinds never change
// routing, only the stroke.
var dashedEdgeKinds = map[diagram.EdgeKind]bool{
	diagram.EdgePull:        true,
	diagram.EdgeManual:      true,
	diagram.EdgeAssociation: true,
}

// ToDOT converts a diagram to Graphviz DOT. Edges whose endpoints do not
// resolve are dropped, matching every other boundary.
func ToDOT(d diagram.Diagram, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.LeftToRight {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range d.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, e := range d.ValidEdges() {
		attrs := edgeAttrs(e)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.SourceID, e.TargetID)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.SourceID, e.TargetID, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n diagram.Node, detailed bool) []string {
	label := n.Label
	if label == "" {
		label = string(n.Kind)
	}
	if detailed && n.Payload != (diagram.Payload{}) {
		label += fmt.Sprintf("\nct: %v  co: %v  up: %v%%",
			n.Payload.CycleTime, n.Payload.ChangeoverTime, n.Payload.Uptime)
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	if shape, ok := dotShapes[n.Kind]; ok {
		attrs = append(attrs, fmt.Sprintf("shape=%s", shape))
	}
	if n.Kind == diagram.KindKaizen {
		attrs = append(attrs, "style=\"filled,dashed\"", "fillcolor=lightyellow")
	}
	return attrs
}

func edgeAttrs(e diagram.Edge) []string {
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	if dashedEdgeKinds[e.Kind] {
		attrs = append(attrs, "style=dashed")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the viewBox starts at the
// origin, which keeps embedding predictable.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

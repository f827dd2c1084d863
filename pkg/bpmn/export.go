package bpmn

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/geom"
	"github.com/flowcanvas/flowcanvas/pkg/route"
)

const (
	nsBPMN   = "http://www.omg.org/spec/BPMN/20100524/MODEL"
	nsBPMNDI = "http://www.omg.org/spec/BPMN/20100524/DI"
	nsDC     = "http://www.omg.org/spec/DD/20100524/DC"
	nsDI     = "http://www.omg.org/spec/DD/20100524/DI"

	targetNamespace = "http://flowcanvas.dev/bpmn"
)

// wireBounds returns the fixed diagram-interchange bounds for a node:
// per-kind dimensions at the node's stored position.
func wireBounds(n diagram.Node) geom.Rect {
	s := diagram.DefaultSize(n.Kind)
	return geom.Rect{X: n.Pos.X, Y: n.Pos.Y, W: s.W, H: s.H}
}

// Export serializes an execution-flow diagram as BPMN 2.0 XML with a
// diagram-interchange block. Edges with unresolved endpoints are dropped
// silently; labels are escaped by the encoder.
func Export(d diagram.Diagram) ([]byte, error) {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	processID := "Process_" + suffix

	def := xmlDefinitions{
		XMLNSBPMN:       nsBPMN,
		XMLNSBPMNDI:     nsBPMNDI,
		XMLNSDC:         nsDC,
		XMLNSDI:         nsDI,
		ID:              "Definitions_" + suffix,
		TargetNamespace: targetNamespace,
		Process:         xmlProcess{ID: processID, IsExecutable: false},
		Diagram: xmlDiagram{
			ID: "BPMNDiagram_" + suffix,
			Plane: xmlPlane{
				ID:          "BPMNPlane_" + suffix,
				BPMNElement: processID,
			},
		},
	}

	bounds := make(map[string]geom.Rect, len(d.Nodes))
	for _, n := range d.Nodes {
		el := xmlElement{ID: n.ID, Name: n.Label}
		switch n.Kind {
		case diagram.KindStart:
			def.Process.StartEvents = append(def.Process.StartEvents, el)
		case diagram.KindEnd:
			def.Process.EndEvents = append(def.Process.EndEvents, el)
		case diagram.KindGateway:
			def.Process.Gateways = append(def.Process.Gateways, el)
		default:
			// Anything else (task, imported case/VSM leftovers) exports as a task.
			def.Process.Tasks = append(def.Process.Tasks, el)
		}

		b := wireBounds(n)
		bounds[n.ID] = b
		def.Diagram.Plane.Shapes = append(def.Diagram.Plane.Shapes, xmlShape{
			ID:          n.ID + "_di",
			BPMNElement: n.ID,
			Bounds:      xmlBounds{X: b.X, Y: b.Y, W: b.W, H: b.H},
		})
	}

	for _, e := range d.ValidEdges() {
		def.Process.Flows = append(def.Process.Flows, xmlSeqFlow{
			ID:        e.ID,
			Name:      e.Label,
			SourceRef: e.SourceID,
			TargetRef: e.TargetID,
		})

		path := route.LeftToRight(bounds[e.SourceID], bounds[e.TargetID])
		wire := xmlEdge{ID: e.ID + "_di", BPMNElement: e.ID}
		for _, p := range path.Points() {
			wire.Waypoints = append(wire.Waypoints, xmlWaypoint{X: p.X, Y: p.Y})
		}
		def.Diagram.Plane.Edges = append(def.Diagram.Plane.Edges, wire)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(def); err != nil {
		return nil, fmt.Errorf("encode bpmn: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("flush bpmn: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

package bpmn

import (
	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/geom"
)

// RegistryElement is the shape every visual element of an external modeling
// widget must expose. The bridge depends on nothing beyond these fields.
type RegistryElement struct {
	ID                string
	ElementType       string
	X, Y              float64
	BusinessObjectRef string // for connectors: "sourceId->targetId", else ""
}

// Registry is the capability interface for an external widget's element
// store. Concrete widget types are never referenced.
type Registry interface {
	Elements() []RegistryElement
}

// ImportRegistry rebuilds a diagram from a widget registry using the same
// element classification as XML import. Unrecognized element types are
// skipped; connector elements (elementType "sequenceFlow" with a
// BusinessObjectRef of the form "source->target") become edges only when
// both endpoints resolve. Payloads are recovered from prev by id.
func ImportRegistry(reg Registry, prev *diagram.Diagram) diagram.Diagram {
	if reg == nil {
		return diagram.Diagram{}
	}

	var d diagram.Diagram
	type pendingEdge struct {
		id       string
		src, dst string
	}
	var edges []pendingEdge

	for _, el := range reg.Elements() {
		if el.ID == "" {
			continue
		}
		if src, dst, ok := splitConnectorRef(el.BusinessObjectRef); ok {
			edges = append(edges, pendingEdge{id: el.ID, src: src, dst: dst})
			continue
		}
		kind, ok := Classify(el.ElementType)
		if !ok {
			continue
		}
		d.Nodes = append(d.Nodes, diagram.Node{
			ID:      el.ID,
			Kind:    kind,
			Pos:     geom.Point{X: el.X, Y: el.Y},
			Payload: recoverPayload(prev, el.ID),
		})
	}

	for _, e := range edges {
		if !d.HasNode(e.src) || !d.HasNode(e.dst) {
			continue
		}
		d.Edges = append(d.Edges, diagram.Edge{
			ID:       e.id,
			SourceID: e.src,
			TargetID: e.dst,
			Kind:     diagram.EdgeSequence,
		})
	}

	return d
}

// splitConnectorRef parses "source->target" connector references.
func splitConnectorRef(ref string) (src, dst string, ok bool) {
	for i := 0; i+1 < len(ref); i++ {
		if ref[i] == '-' && ref[i+1] == '>' {
			src, dst = ref[:i], ref[i+2:]
			return src, dst, src != "" && dst != ""
		}
	}
	return "", "", false
}

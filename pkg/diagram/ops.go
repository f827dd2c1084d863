package diagram

import (
	"slices"

	"github.com/flowcanvas/flowcanvas/pkg/geom"
)

// clone returns a deep-enough copy: fresh slices, value-copied elements.
// Node.Size pointers are duplicated so callers can never alias a snapshot.
func (d Diagram) clone() Diagram {
	out := Diagram{
		Nodes: make([]Node, len(d.Nodes)),
		Edges: slices.Clone(d.Edges),
	}
	for i, n := range d.Nodes {
		if n.Size != nil {
			s := *n.Size
			n.Size = &s
		}
		out.Nodes[i] = n
	}
	return out
}

// Node returns the node with the given id.
func (d Diagram) Node(id string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// HasNode reports whether a node with the given id exists.
func (d Diagram) HasNode(id string) bool {
	_, ok := d.Node(id)
	return ok
}

// AddNode appends a node and returns the new snapshot. A node without an id
// is assigned a fresh one.
func (d Diagram) AddNode(n Node) Diagram {
	if n.ID == "" {
		n.ID = NewID()
	}
	out := d.clone()
	out.Nodes = append(out.Nodes, n)
	return out
}

// UpdateNode replaces the node with the given id by patch(node). Unknown ids
// are a no-op. The patch must not change the node's id.
func (d Diagram) UpdateNode(id string, patch func(Node) Node) Diagram {
	out := d.clone()
	for i, n := range out.Nodes {
		if n.ID == id {
			updated := patch(n)
			updated.ID = id
			out.Nodes[i] = updated
			break
		}
	}
	return out
}

// MoveNode is a convenience for the most common patch: repositioning.
func (d Diagram) MoveNode(id string, pos geom.Point) Diagram {
	return d.UpdateNode(id, func(n Node) Node {
		n.Pos = pos
		return n
	})
}

// RemoveNode deletes the node and cascades to every incident edge.
// Unknown ids are a no-op.
func (d Diagram) RemoveNode(id string) Diagram {
	out := Diagram{}
	for _, n := range d.clone().Nodes {
		if n.ID != id {
			out.Nodes = append(out.Nodes, n)
		}
	}
	for _, e := range d.Edges {
		if e.SourceID != id && e.TargetID != id {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}

// AddEdge connects source to target with the given kind and returns the new
// snapshot. Self-loops are rejected as a no-op.
func (d Diagram) AddEdge(sourceID, targetID string, kind EdgeKind) Diagram {
	if sourceID == targetID {
		return d
	}
	out := d.clone()
	out.Edges = append(out.Edges, Edge{
		ID:       NewID(),
		SourceID: sourceID,
		TargetID: targetID,
		Kind:     kind,
	})
	return out
}

// UpdateEdge replaces the edge with the given id by patch(edge). Unknown ids
// are a no-op. The patch must not change the edge's id.
func (d Diagram) UpdateEdge(id string, patch func(Edge) Edge) Diagram {
	out := d.clone()
	for i, e := range out.Edges {
		if e.ID == id {
			updated := patch(e)
			updated.ID = id
			out.Edges[i] = updated
			break
		}
	}
	return out
}

// RemoveEdge deletes the edge with the given id. Unknown ids are a no-op.
func (d Diagram) RemoveEdge(id string) Diagram {
	out := d.clone()
	out.Edges = slices.DeleteFunc(out.Edges, func(e Edge) bool { return e.ID == id })
	return out
}

// ValidEdges returns the edges whose endpoints both resolve to existing
// nodes. Render, wire export and import all go through this filter so a
// dangling reference degrades silently instead of crashing.
func (d Diagram) ValidEdges() []Edge {
	ids := make(map[string]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		ids[n.ID] = true
	}
	var out []Edge
	for _, e := range d.Edges {
		if ids[e.SourceID] && ids[e.TargetID] {
			out = append(out, e)
		}
	}
	return out
}

// NodesByKind returns the nodes matching kind, preserving diagram order.
func (d Diagram) NodesByKind(kind Kind) []Node {
	var out []Node
	for _, n := range d.Nodes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// ContentBounds returns the bounding rectangles of all nodes, in diagram
// order, for use with geom.FitToContent.
func (d Diagram) ContentBounds() []geom.Rect {
	out := make([]geom.Rect, len(d.Nodes))
	for i, n := range d.Nodes {
		out[i] = n.Bounds()
	}
	return out
}

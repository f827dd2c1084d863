package bpmn

import (
	"encoding/xml"
	"strings"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/geom"
)

// Classify maps an external element type tag to an internal node kind.
// The tag may carry a namespace prefix ("bpmn:userTask") and any case.
// Container, label and other unrecognized types report ok=false and are
// skipped by the importers.
func Classify(elementType string) (diagram.Kind, bool) {
	t := elementType
	if i := strings.LastIndex(t, ":"); i >= 0 {
		t = t[i+1:]
	}
	switch strings.ToLower(t) {
	case "task", "usertask", "servicetask", "scripttask", "manualtask":
		return diagram.KindTask, true
	case "startevent":
		return diagram.KindStart, true
	case "endevent":
		return diagram.KindEnd, true
	case "exclusivegateway", "inclusivegateway":
		return diagram.KindGateway, true
	default:
		return "", false
	}
}

// Import parses BPMN 2.0 XML into an execution-flow diagram. It never
// fails outward: malformed input yields an empty diagram. Node positions
// come from the diagram-interchange bounds; metric payloads are recovered
// from prev (a previous snapshot of the same diagram) by node id, else the
// zero payload is substituted. Edges are emitted only when both endpoint
// references resolve.
func Import(data []byte, prev *diagram.Diagram) diagram.Diagram {
	var def inDefinitions
	if err := xml.Unmarshal(data, &def); err != nil {
		return diagram.Diagram{}
	}

	positions := make(map[string]geom.Point, len(def.Diagram.Plane.Shapes))
	for _, s := range def.Diagram.Plane.Shapes {
		positions[s.BPMNElement] = geom.Point{X: s.Bounds.X, Y: s.Bounds.Y}
	}

	var d diagram.Diagram
	add := func(els []inElement, kind diagram.Kind) {
		for _, el := range els {
			if el.ID == "" {
				continue
			}
			d.Nodes = append(d.Nodes, diagram.Node{
				ID:      el.ID,
				Kind:    kind,
				Label:   el.Name,
				Pos:     positions[el.ID],
				Payload: recoverPayload(prev, el.ID),
			})
		}
	}

	add(def.Process.StartEvents, diagram.KindStart)
	add(def.Process.Tasks, diagram.KindTask)
	add(def.Process.UserTasks, diagram.KindTask)
	add(def.Process.ServiceTasks, diagram.KindTask)
	add(def.Process.ScriptTasks, diagram.KindTask)
	add(def.Process.ManualTasks, diagram.KindTask)
	add(def.Process.ExclusiveGateways, diagram.KindGateway)
	add(def.Process.InclusiveGateways, diagram.KindGateway)
	add(def.Process.EndEvents, diagram.KindEnd)

	for _, f := range def.Process.Flows {
		if !d.HasNode(f.SourceRef) || !d.HasNode(f.TargetRef) {
			continue
		}
		d.Edges = append(d.Edges, diagram.Edge{
			ID:       flowID(f.ID),
			SourceID: f.SourceRef,
			TargetID: f.TargetRef,
			Label:    f.Name,
			Kind:     diagram.EdgeSequence,
		})
	}

	return d
}

// recoverPayload returns the payload of the same-id node in prev, or the
// documented zero default when no prior snapshot carries the id.
func recoverPayload(prev *diagram.Diagram, id string) diagram.Payload {
	if prev == nil {
		return diagram.Payload{}
	}
	if n, ok := prev.Node(id); ok {
		return n.Payload
	}
	return diagram.Payload{}
}

// flowID keeps the external connector id when present and generates a
// fresh one otherwise.
func flowID(id string) string {
	if id != "" {
		return id
	}
	return diagram.NewID()
}

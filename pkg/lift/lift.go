// Package lift implements the deterministic cross-notation transformations:
// scope → value-stream, value-stream → execution-flow, and the direct
// scope → execution-flow shortcut.
//
// Each lift is a pure function of its source and produces a brand-new
// diagram with fresh ids and a synthetic fixed-spacing layout; prior
// positions are never preserved. None of the lifts consult interaction
// state.
package lift

import (
	"fmt"
	"math"
	"sort"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/geom"
)

// Layout constants for the synthetic placements.
const (
	vsmProcessSpacing = 200.0 // x-spacing between value-stream process steps
	vsmProcessStartX  = 200.0
	vsmProcessY       = 250.0
	vsmCustomerMinX   = 800.0

	flowSpacing = 180.0 // x-spacing between execution-flow elements
	flowStartX  = 150.0
	flowY       = 200.0
)

// Scope is the five-column boundary definition a scope diagram captures.
type Scope struct {
	Suppliers []string `json:"suppliers"`
	Inputs    []string `json:"inputs"`
	Process   []string `json:"process"`
	Outputs   []string `json:"outputs"`
	Customers []string `json:"customers"`
}

// firstOr returns the first element of list, or fallback when empty.
func firstOr(list []string, fallback string) string {
	if len(list) > 0 && list[0] != "" {
		return list[0]
	}
	return fallback
}

// processSteps returns the listed steps, or a single placeholder when none.
func processSteps(s Scope) []string {
	if len(s.Process) > 0 {
		return s.Process
	}
	return []string{"Process Step"}
}

// ScopeToValueStream lifts a scope definition into a value-stream diagram:
// one supplier, one customer and one production-control node frame a
// left-to-right chain of process nodes linked by push connectors, with a
// transport connector from the last step to the customer.
func ScopeToValueStream(s Scope) diagram.Diagram {
	var d diagram.Diagram

	supplier := diagram.Node{
		ID:    diagram.NewID(),
		Kind:  diagram.KindSupplier,
		Label: firstOr(s.Suppliers, "Supplier"),
		Pos:   geom.Point{X: 40, Y: 60},
	}
	d = d.AddNode(supplier)

	control := diagram.Node{
		ID:    diagram.NewID(),
		Kind:  diagram.KindProductionControl,
		Label: "Production Control",
		Pos:   geom.Point{X: 420, Y: 40},
	}
	d = d.AddNode(control)

	steps := processSteps(s)
	stepIDs := make([]string, len(steps))
	for i, label := range steps {
		n := diagram.Node{
			ID:    diagram.NewID(),
			Kind:  diagram.KindProcess,
			Label: label,
			Pos:   geom.Point{X: vsmProcessStartX + float64(i)*vsmProcessSpacing, Y: vsmProcessY},
		}
		stepIDs[i] = n.ID
		d = d.AddNode(n)
	}

	customerX := math.Max(vsmCustomerMinX, vsmProcessStartX+float64(len(steps))*vsmProcessSpacing)
	customer := diagram.Node{
		ID:    diagram.NewID(),
		Kind:  diagram.KindCustomer,
		Label: firstOr(s.Customers, "Customer"),
		Pos:   geom.Point{X: customerX, Y: 60},
	}
	d = d.AddNode(customer)

	for i := 1; i < len(stepIDs); i++ {
		d = d.AddEdge(stepIDs[i-1], stepIDs[i], diagram.EdgePush)
	}
	d = d.AddEdge(stepIDs[len(stepIDs)-1], customer.ID, diagram.EdgeTransport)

	return d
}

// ValueStreamToFlow lifts a value-stream diagram into an execution-flow
// diagram: process-role nodes sorted by x ascending (preserving the
// author's left-to-right order) become tasks chained between a synthetic
// start and end. Cycle times convert from seconds to minutes (÷60, rounded
// to two decimals); changeover time and uptime pass through unchanged.
func ValueStreamToFlow(src diagram.Diagram) diagram.Diagram {
	procs := src.NodesByKind(diagram.KindProcess)
	sort.SliceStable(procs, func(i, j int) bool { return procs[i].Pos.X < procs[j].Pos.X })

	var d diagram.Diagram
	x := flowStartX

	start := diagram.Node{
		ID:    diagram.NewID(),
		Kind:  diagram.KindStart,
		Label: "Start",
		Pos:   geom.Point{X: x, Y: flowY},
	}
	d = d.AddNode(start)
	prevID := start.ID

	for _, p := range procs {
		x += flowSpacing
		task := diagram.Node{
			ID:    diagram.NewID(),
			Kind:  diagram.KindTask,
			Label: p.Label,
			Pos:   geom.Point{X: x, Y: flowY},
			Payload: diagram.Payload{
				CycleTime:      secondsToMinutes(p.Payload.CycleTime),
				ChangeoverTime: p.Payload.ChangeoverTime,
				Uptime:         p.Payload.Uptime,
			},
		}
		d = d.AddNode(task)
		d = d.AddEdge(prevID, task.ID, diagram.EdgeSequence)
		prevID = task.ID
	}

	x += flowSpacing
	end := diagram.Node{
		ID:    diagram.NewID(),
		Kind:  diagram.KindEnd,
		Label: "End",
		Pos:   geom.Point{X: x, Y: flowY},
	}
	d = d.AddNode(end)
	d = d.AddEdge(prevID, end.ID, diagram.EdgeSequence)

	return d
}

// ScopeToFlow is the direct shortcut from a scope definition to an
// execution-flow diagram: a start node labeled from the first input, one
// task per process step, an end node labeled from the first output, and a
// linear chain. No metrics are synthesized.
func ScopeToFlow(s Scope) diagram.Diagram {
	var d diagram.Diagram
	x := flowStartX

	start := diagram.Node{
		ID:    diagram.NewID(),
		Kind:  diagram.KindStart,
		Label: fmt.Sprintf("Input: %s", firstOr(s.Inputs, "Input")),
		Pos:   geom.Point{X: x, Y: flowY},
	}
	d = d.AddNode(start)
	prevID := start.ID

	for _, label := range processSteps(s) {
		x += flowSpacing
		task := diagram.Node{
			ID:    diagram.NewID(),
			Kind:  diagram.KindTask,
			Label: label,
			Pos:   geom.Point{X: x, Y: flowY},
		}
		d = d.AddNode(task)
		d = d.AddEdge(prevID, task.ID, diagram.EdgeSequence)
		prevID = task.ID
	}

	x += flowSpacing
	end := diagram.Node{
		ID:    diagram.NewID(),
		Kind:  diagram.KindEnd,
		Label: fmt.Sprintf("Output: %s", firstOr(s.Outputs, "Output")),
		Pos:   geom.Point{X: x, Y: flowY},
	}
	d = d.AddNode(end)
	d = d.AddEdge(prevID, end.ID, diagram.EdgeSequence)

	return d
}

// secondsToMinutes converts a cycle time and rounds to two decimal places.
func secondsToMinutes(sec float64) float64 {
	return math.Round(sec/60*100) / 100
}

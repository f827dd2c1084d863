package lift

import (
	"strings"
	"testing"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/geom"
)

func TestScopeToValueStream(t *testing.T) {
	t.Run("FullScope", func(t *testing.T) {
		s := Scope{
			Suppliers: []string{"Acme Steel"},
			Process:   []string{"Cut", "Weld", "Paint"},
			Customers: []string{"BuildCo"},
		}
		d := ScopeToValueStream(s)

		// supplier + production control + 3 processes + customer
		if len(d.Nodes) != 6 {
			t.Fatalf("nodes = %d, want 6", len(d.Nodes))
		}
		if got := d.NodesByKind(diagram.KindSupplier); len(got) != 1 || got[0].Label != "Acme Steel" {
			t.Errorf("supplier = %+v, want one named from scope", got)
		}
		if got := d.NodesByKind(diagram.KindCustomer); len(got) != 1 || got[0].Label != "BuildCo" {
			t.Errorf("customer = %+v, want one named from scope", got)
		}
		if got := d.NodesByKind(diagram.KindProductionControl); len(got) != 1 {
			t.Errorf("production-control nodes = %d, want 1", len(got))
		}

		procs := d.NodesByKind(diagram.KindProcess)
		if len(procs) != 3 {
			t.Fatalf("process nodes = %d, want 3", len(procs))
		}
		for i := 1; i < len(procs); i++ {
			if dx := procs[i].Pos.X - procs[i-1].Pos.X; dx != 200 {
				t.Errorf("process spacing = %v, want 200", dx)
			}
		}

		// 2 push connectors + 1 transport to the customer.
		if len(d.Edges) != 3 {
			t.Fatalf("edges = %d, want 3", len(d.Edges))
		}
		push := 0
		for _, e := range d.Edges {
			if e.Kind == diagram.EdgePush {
				push++
			}
		}
		if push != 2 {
			t.Errorf("push edges = %d, want 2", push)
		}
		last := d.Edges[len(d.Edges)-1]
		if last.Kind != diagram.EdgeTransport {
			t.Errorf("final connector kind = %v, want transport", last.Kind)
		}

		customer := d.NodesByKind(diagram.KindCustomer)[0]
		if customer.Pos.X < 800 {
			t.Errorf("customer x = %v, want >= 800", customer.Pos.X)
		}
	})

	t.Run("EmptyScopeDefaults", func(t *testing.T) {
		d := ScopeToValueStream(Scope{})
		if got := d.NodesByKind(diagram.KindSupplier)[0].Label; got != "Supplier" {
			t.Errorf("supplier label = %q, want default", got)
		}
		if got := d.NodesByKind(diagram.KindCustomer)[0].Label; got != "Customer" {
			t.Errorf("customer label = %q, want default", got)
		}
		if got := d.NodesByKind(diagram.KindProcess); len(got) != 1 {
			t.Errorf("placeholder process steps = %d, want 1", len(got))
		}
	})
}

func TestValueStreamToFlow(t *testing.T) {
	var vsm diagram.Diagram
	// Deliberately inserted out of x order: the lift must sort by x.
	vsm = vsm.AddNode(diagram.Node{ID: "p2", Kind: diagram.KindProcess, Label: "Weld",
		Pos: geom.Point{X: 400, Y: 250}, Payload: diagram.Payload{CycleTime: 90, ChangeoverTime: 5, Uptime: 85}})
	vsm = vsm.AddNode(diagram.Node{ID: "p1", Kind: diagram.KindProcess, Label: "Cut",
		Pos: geom.Point{X: 200, Y: 250}, Payload: diagram.Payload{CycleTime: 45, Uptime: 99}})
	vsm = vsm.AddNode(diagram.Node{ID: "sup", Kind: diagram.KindSupplier, Label: "Acme"})
	vsm = vsm.AddNode(diagram.Node{ID: "inv", Kind: diagram.KindInventory})

	d := ValueStreamToFlow(vsm)

	// k process nodes → k+2 nodes, k+1 edges, one linear chain.
	if len(d.Nodes) != 4 {
		t.Fatalf("nodes = %d, want 4 (k+2)", len(d.Nodes))
	}
	if len(d.Edges) != 3 {
		t.Fatalf("edges = %d, want 3 (k+1)", len(d.Edges))
	}
	if d.Nodes[0].Kind != diagram.KindStart || d.Nodes[len(d.Nodes)-1].Kind != diagram.KindEnd {
		t.Error("chain should be bracketed by start and end")
	}

	// Chain order follows x: Cut before Weld.
	if d.Nodes[1].Label != "Cut" || d.Nodes[2].Label != "Weld" {
		t.Errorf("task order = %q, %q; want Cut, Weld", d.Nodes[1].Label, d.Nodes[2].Label)
	}

	// Edges form one linear chain start → … → end.
	for i, e := range d.Edges {
		if e.SourceID != d.Nodes[i].ID || e.TargetID != d.Nodes[i+1].ID {
			t.Errorf("edge %d does not chain consecutive nodes", i)
		}
		if e.Kind != diagram.EdgeSequence {
			t.Errorf("edge kind = %v, want sequence", e.Kind)
		}
	}

	// Unit conversion: seconds → minutes, 2dp; changeover/uptime untouched.
	cut := d.Nodes[1]
	if cut.Payload.CycleTime != 0.75 {
		t.Errorf("Cut cycle = %v min, want 0.75", cut.Payload.CycleTime)
	}
	weld := d.Nodes[2]
	if weld.Payload.CycleTime != 1.5 {
		t.Errorf("Weld cycle = %v min, want 1.5", weld.Payload.CycleTime)
	}
	if weld.Payload.ChangeoverTime != 5 || weld.Payload.Uptime != 85 {
		t.Errorf("changeover/uptime must pass through, got %+v", weld.Payload)
	}

	// Layout: fixed spacing from x=150, single y.
	if d.Nodes[0].Pos.X != 150 {
		t.Errorf("start x = %v, want 150", d.Nodes[0].Pos.X)
	}
	for i := 1; i < len(d.Nodes); i++ {
		if dx := d.Nodes[i].Pos.X - d.Nodes[i-1].Pos.X; dx != 180 {
			t.Errorf("spacing = %v, want 180", dx)
		}
		if d.Nodes[i].Pos.Y != d.Nodes[0].Pos.Y {
			t.Error("all flow nodes should share one y")
		}
	}
}

func TestValueStreamToFlowEmpty(t *testing.T) {
	d := ValueStreamToFlow(diagram.Diagram{})
	if len(d.Nodes) != 2 || len(d.Edges) != 1 {
		t.Errorf("empty stream should lift to start+end with one edge, got %d/%d", len(d.Nodes), len(d.Edges))
	}
}

func TestScopeToFlow(t *testing.T) {
	s := Scope{
		Process: []string{"Receive Order", "Pack", "Ship"},
		Inputs:  []string{"Order"},
		Outputs: []string{"Shipment"},
	}
	d := ScopeToFlow(s)

	if len(d.Nodes) != 5 {
		t.Fatalf("nodes = %d, want 5", len(d.Nodes))
	}
	if len(d.Edges) != 4 {
		t.Fatalf("edges = %d, want 4", len(d.Edges))
	}
	if d.Nodes[0].Label != "Input: Order" {
		t.Errorf("start label = %q, want \"Input: Order\"", d.Nodes[0].Label)
	}
	if d.Nodes[4].Label != "Output: Shipment" {
		t.Errorf("end label = %q, want \"Output: Shipment\"", d.Nodes[4].Label)
	}
	for i, want := range []string{"Receive Order", "Pack", "Ship"} {
		if d.Nodes[i+1].Label != want {
			t.Errorf("task %d = %q, want %q", i, d.Nodes[i+1].Label, want)
		}
	}
	for i, e := range d.Edges {
		if e.SourceID != d.Nodes[i].ID || e.TargetID != d.Nodes[i+1].ID {
			t.Errorf("edge %d does not chain consecutive nodes", i)
		}
	}
	// No metric synthesis.
	for _, n := range d.Nodes {
		if n.Payload != (diagram.Payload{}) {
			t.Errorf("node %q has non-zero metrics", n.Label)
		}
	}
}

func TestLiftsArePure(t *testing.T) {
	var vsm diagram.Diagram
	vsm = vsm.AddNode(diagram.Node{ID: "p", Kind: diagram.KindProcess, Label: "Cut",
		Pos: geom.Point{X: 200, Y: 250}})

	before, _ := diagram.Marshal(vsm)
	_ = ValueStreamToFlow(vsm)
	after, _ := diagram.Marshal(vsm)
	if string(before) != string(after) {
		t.Error("lift mutated its source diagram")
	}

	// Fresh ids every run.
	a := ValueStreamToFlow(vsm)
	b := ValueStreamToFlow(vsm)
	for _, n := range a.Nodes {
		if b.HasNode(n.ID) {
			t.Error("lifts must generate fresh ids per run")
		}
	}
	if strings.Join(labels(a), ",") != strings.Join(labels(b), ",") {
		t.Error("lifts should be deterministic up to ids")
	}
}

func labels(d diagram.Diagram) []string {
	out := make([]string, len(d.Nodes))
	for i, n := range d.Nodes {
		out[i] = n.Label
	}
	return out
}

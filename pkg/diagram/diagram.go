package diagram

import (
	"github.com/google/uuid"

	"github.com/flowcanvas/flowcanvas/pkg/geom"
)

// Kind classifies a node within its notation.
type Kind string

// Flow-graph node kinds.
const (
	KindStart   Kind = "start"
	KindTask    Kind = "task"
	KindGateway Kind = "gateway"
	KindEnd     Kind = "end"
)

// Value-stream node kinds.
const (
	KindSupplier          Kind = "supplier"
	KindCustomer          Kind = "customer"
	KindProcess           Kind = "process"
	KindInventory         Kind = "inventory"
	KindProductionControl Kind = "production-control"
	KindTransport         Kind = "transport"
	KindKaizen            Kind = "kaizen"
)

// Case-graph node kinds. Case tasks reuse [KindTask].
const (
	KindStage     Kind = "stage"
	KindMilestone Kind = "milestone"
	KindEvent     Kind = "event"
)

// EdgeKind classifies a connector. Kinds alter rendering (dashed vs. solid,
// markers) but never the routing algorithm.
type EdgeKind string

const (
	EdgeSequence    EdgeKind = "sequence"
	EdgePush        EdgeKind = "push"
	EdgePull        EdgeKind = "pull"
	EdgeManual      EdgeKind = "manual"
	EdgeElectronic  EdgeKind = "electronic"
	EdgeAssociation EdgeKind = "association"
	EdgeDependency  EdgeKind = "dependency"
	EdgeTransport   EdgeKind = "transport"
)

// defaultSizes maps node kinds to their default geometry. Consulted through
// [DefaultSize] wherever geometry is needed instead of inline conditionals.
var defaultSizes = map[Kind]geom.Size{
	KindStart:             {W: 36, H: 36},
	KindEnd:               {W: 36, H: 36},
	KindGateway:           {W: 50, H: 50},
	KindTask:              {W: 100, H: 80},
	KindSupplier:          {W: 120, H: 80},
	KindCustomer:          {W: 120, H: 80},
	KindProcess:           {W: 140, H: 100},
	KindInventory:         {W: 60, H: 60},
	KindProductionControl: {W: 140, H: 60},
	KindTransport:         {W: 80, H: 50},
	KindKaizen:            {W: 90, H: 70},
	KindStage:             {W: 180, H: 120},
	KindMilestone:         {W: 100, H: 40},
	KindEvent:             {W: 40, H: 40},
}

// fallbackSize is used for unknown kinds so geometry never degenerates.
var fallbackSize = geom.Size{W: 100, H: 80}

// DefaultSize returns the default geometry for a node kind.
func DefaultSize(k Kind) geom.Size {
	if s, ok := defaultSizes[k]; ok {
		return s
	}
	return fallbackSize
}

// Payload carries the kind-specific metrics attached to a node. The zero
// value is the documented default substituted when no prior data exists
// (for example on wire import of an externally created element).
//
// CycleTime is in seconds on value-stream nodes and minutes on flow nodes;
// the value-stream → flow lift performs the conversion.
type Payload struct {
	CycleTime      float64 `json:"cycle_time,omitempty" bson:"cycle_time,omitempty"`
	ChangeoverTime float64 `json:"changeover_time,omitempty" bson:"changeover_time,omitempty"`
	Uptime         float64 `json:"uptime,omitempty" bson:"uptime,omitempty"` // percent
	Inventory      float64 `json:"inventory,omitempty" bson:"inventory,omitempty"`
	Demand         float64 `json:"demand,omitempty" bson:"demand,omitempty"`
	AvailableTime  float64 `json:"available_time,omitempty" bson:"available_time,omitempty"`
}

// Node is a positioned diagram element.
type Node struct {
	ID      string     `json:"id" bson:"id"`
	Kind    Kind       `json:"kind" bson:"kind"`
	Label   string     `json:"label,omitempty" bson:"label,omitempty"`
	Pos     geom.Point `json:"pos" bson:"pos"`
	Size    *geom.Size `json:"size,omitempty" bson:"size,omitempty"` // nil = kind default
	Payload Payload    `json:"payload,omitempty" bson:"payload,omitempty"`
}

// EffectiveSize returns the explicit size if set, otherwise the kind default.
func (n Node) EffectiveSize() geom.Size {
	if n.Size != nil {
		return *n.Size
	}
	return DefaultSize(n.Kind)
}

// Bounds returns the node's rectangle with Pos as top-left corner.
func (n Node) Bounds() geom.Rect {
	s := n.EffectiveSize()
	return geom.Rect{X: n.Pos.X, Y: n.Pos.Y, W: s.W, H: s.H}
}

// Edge is a directed connector between two nodes.
type Edge struct {
	ID       string   `json:"id" bson:"id"`
	SourceID string   `json:"source_id" bson:"source_id"`
	TargetID string   `json:"target_id" bson:"target_id"`
	Label    string   `json:"label,omitempty" bson:"label,omitempty"`
	Kind     EdgeKind `json:"kind,omitempty" bson:"kind,omitempty"`
}

// Diagram is an ordered node-link graph. Node order is z-order.
//
// The zero value is a valid empty diagram.
type Diagram struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// NewID generates a fresh globally unique element id. Ids are never reused
// after deletion.
func NewID() string {
	return uuid.NewString()
}

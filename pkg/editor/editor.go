package editor

import (
	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/geom"
)

// State identifies the interaction machine's current gesture.
type State int

const (
	// Idle means no gesture is active.
	Idle State = iota
	// Panning accumulates viewport offset deltas from pointer movement.
	Panning
	// DraggingNode moves a grabbed node, snapping on release.
	DraggingNode
	// Connecting waits for a second node to complete an edge.
	Connecting
)

// String returns the state name for logs and test failure messages.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Panning:
		return "panning"
	case DraggingNode:
		return "dragging"
	case Connecting:
		return "connecting"
	default:
		return "unknown"
	}
}

// Editor owns one diagram surface: the current diagram snapshot, its
// viewport, the gesture state machine and the collaborator latches.
// All methods must be called from a single goroutine; there is no internal
// locking.
type Editor struct {
	diagram  diagram.Diagram
	viewport geom.Viewport
	viewSize geom.Size
	padding  float64
	grid     float64

	state     State
	selection string

	// Drag bookkeeping.
	dragID     string
	grabOffset geom.Point
	lastScreen geom.Point

	// Connect mode.
	connectMode   bool
	connectKind   diagram.EdgeKind
	connectSource string

	// Scoped global listeners: held only during Panning/DraggingNode.
	listenersHeld bool

	// Collaborator latches.
	generating bool
	sync       SyncState
}

// Options configures a new editor surface.
type Options struct {
	ViewSize geom.Size // surface size in screen units
	Padding  float64   // fit-to-content padding, model units
	Grid     float64   // snapping grid; 0 uses geom.GridSize
}

// New creates an editor for the given diagram with an identity viewport.
func New(d diagram.Diagram, opts Options) *Editor {
	grid := opts.Grid
	if grid <= 0 {
		grid = geom.GridSize
	}
	return &Editor{
		diagram:  d,
		viewport: geom.IdentityViewport(),
		viewSize: opts.ViewSize,
		padding:  opts.Padding,
		grid:     grid,
	}
}

// Diagram returns the current diagram snapshot.
func (e *Editor) Diagram() diagram.Diagram { return e.diagram }

// Viewport returns the current view transform.
func (e *Editor) Viewport() geom.Viewport { return e.viewport }

// State returns the current gesture state.
func (e *Editor) State() State { return e.state }

// Selection returns the selected node id, or "" when nothing is selected.
func (e *Editor) Selection() string { return e.selection }

// ListenersHeld reports whether global pointer listeners are acquired.
// Exposed so teardown paths can be verified.
func (e *Editor) ListenersHeld() bool { return e.listenersHeld }

// SetConnectMode arms or disarms connect mode with the given edge kind.
// Disarming while a connect gesture is mid-flight cancels it.
func (e *Editor) SetConnectMode(on bool, kind diagram.EdgeKind) {
	e.connectMode = on
	e.connectKind = kind
	if !on && e.state == Connecting {
		e.state = Idle
		e.connectSource = ""
	}
}

// HitTest returns the topmost node containing the model point, honoring
// z-order (later nodes render above earlier ones).
func (e *Editor) HitTest(model geom.Point) (diagram.Node, bool) {
	nodes := e.diagram.Nodes
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i].Bounds().Contains(model) {
			return nodes[i], true
		}
	}
	return diagram.Node{}, false
}

// PointerDown feeds a press at a screen position into the state machine.
func (e *Editor) PointerDown(screen geom.Point) {
	model := e.viewport.ToModel(screen)
	node, hit := e.HitTest(model)

	switch e.state {
	case Idle:
		if !hit {
			// Empty canvas: clear selection, start panning.
			e.selection = ""
			e.state = Panning
			e.lastScreen = screen
			e.acquire()
			return
		}
		if e.connectMode {
			e.state = Connecting
			e.connectSource = node.ID
			e.selection = node.ID
			return
		}
		e.state = DraggingNode
		e.dragID = node.ID
		e.selection = node.ID
		e.grabOffset = model.Sub(node.Pos)
		e.acquire()

	case Connecting:
		if !hit || node.ID == e.connectSource {
			// Cancel without creating an edge.
			e.state = Idle
			e.connectSource = ""
			if !hit {
				e.selection = ""
			}
			return
		}
		e.diagram = e.diagram.AddEdge(e.connectSource, node.ID, e.connectKind)
		e.noteLocalEdit()
		e.state = Idle
		e.connectSource = ""
	}
}

// PointerMove feeds pointer motion into the active gesture.
func (e *Editor) PointerMove(screen geom.Point) {
	switch e.state {
	case Panning:
		e.viewport = e.viewport.Pan(screen.X-e.lastScreen.X, screen.Y-e.lastScreen.Y)
		e.lastScreen = screen
	case DraggingNode:
		model := e.viewport.ToModel(screen)
		e.diagram = e.diagram.MoveNode(e.dragID, model.Sub(e.grabOffset))
	}
}

// PointerUp ends the active gesture. Node positions snap to the grid here,
// never during the drag itself.
func (e *Editor) PointerUp() {
	switch e.state {
	case Panning:
		e.state = Idle
		e.release()
	case DraggingNode:
		if n, ok := e.diagram.Node(e.dragID); ok {
			e.diagram = e.diagram.MoveNode(e.dragID, geom.Snap(n.Pos, e.grid))
			e.noteLocalEdit()
		}
		e.state = Idle
		e.dragID = ""
		e.release()
	}
}

// Cancel aborts any active gesture without committing further changes.
func (e *Editor) Cancel() {
	e.state = Idle
	e.dragID = ""
	e.connectSource = ""
	e.release()
}

// Close tears the surface down, releasing any held listeners. Safe to call
// in any state.
func (e *Editor) Close() {
	e.Cancel()
}

// Zoom applies a discrete zoom step (positive in, negative out).
func (e *Editor) Zoom(steps int) {
	e.viewport = e.viewport.Zoom(float64(steps) * geom.ZoomStep)
}

// Resize updates the surface size used for fit-to-content framing.
func (e *Editor) Resize(size geom.Size) { e.viewSize = size }

// FitToContent resets the viewport to frame the current diagram.
func (e *Editor) FitToContent() {
	e.viewport = geom.FitToContent(e.diagram.ContentBounds(), e.viewSize, e.padding)
}

// Replace swaps the diagram wholesale (pipeline conversion, import, or
// generation result) and resets the viewport to fit the new content.
func (e *Editor) Replace(d diagram.Diagram) {
	e.Cancel()
	e.diagram = d
	e.FitToContent()
}

// acquire takes the global pointer listeners for the current gesture.
func (e *Editor) acquire() { e.listenersHeld = true }

// release drops the global pointer listeners. Idempotent.
func (e *Editor) release() { e.listenersHeld = false }

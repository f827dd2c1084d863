package editor

import "github.com/flowcanvas/flowcanvas/pkg/diagram"

// SyncState tracks the direction of pending work between the local diagram
// and the external modeling widget, replacing ad hoc "internal update"
// flags. Exactly one direction can be pending at a time, which is what
// breaks re-entrant update loops.
type SyncState int

const (
	// Synced means local model and widget agree.
	Synced SyncState = iota
	// LocalEditPending means a local mutation awaits re-export to the widget.
	LocalEditPending
	// ImportPending means a widget change awaits local apply.
	ImportPending
)

// String returns the sync state name.
func (s SyncState) String() string {
	switch s {
	case Synced:
		return "synced"
	case LocalEditPending:
		return "local-edit-pending"
	case ImportPending:
		return "import-pending"
	default:
		return "unknown"
	}
}

// Sync returns the current sync state.
func (e *Editor) Sync() SyncState { return e.sync }

// noteLocalEdit marks a local mutation as pending re-export. Ignored while
// an import is being applied so the apply cannot trigger its own re-export.
func (e *Editor) noteLocalEdit() {
	if e.sync == ImportPending {
		return
	}
	e.sync = LocalEditPending
}

// MarkExported records that the widget has been handed the current state.
func (e *Editor) MarkExported() {
	if e.sync == LocalEditPending {
		e.sync = Synced
	}
}

// BeginImport marks an external widget change as pending local apply.
// Returns false while a local edit still awaits export; the caller should
// re-export first, then retry.
func (e *Editor) BeginImport() bool {
	if e.sync == LocalEditPending {
		return false
	}
	e.sync = ImportPending
	return true
}

// FinishImport applies an imported diagram and returns to Synced. A nil
// diagram (failed import) leaves the current diagram untouched.
func (e *Editor) FinishImport(d *diagram.Diagram) {
	if e.sync != ImportPending {
		return
	}
	if d != nil {
		e.Replace(*d)
	}
	e.sync = Synced
}

// Generating reports whether a generation request is in flight.
func (e *Editor) Generating() bool { return e.generating }

// BeginGeneration arms the non-reentrancy latch around the generative
// collaborator. Returns false when a request is already in flight; the
// caller must not issue another one.
func (e *Editor) BeginGeneration() bool {
	if e.generating {
		return false
	}
	e.generating = true
	return true
}

// EndGeneration releases the latch. A non-nil result replaces the diagram
// wholesale; nil (failure or unparseable content) is a no-op and the prior
// diagram stays intact.
func (e *Editor) EndGeneration(result *diagram.Diagram) {
	if !e.generating {
		return
	}
	e.generating = false
	if result != nil {
		e.Replace(*result)
	}
}

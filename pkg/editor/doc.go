// Package editor implements the pointer-interaction state machine that
// drives a diagram surface: pan, node drag with grid snapping, and
// edge-connect gestures, plus the viewport each surface owns.
//
// # States
//
// The machine has four states: Idle, Panning, DraggingNode and Connecting.
// Pointer events (down/move/up) feed transitions; every mutation goes
// through the copy-on-write operations of pkg/diagram, so each gesture step
// yields a clean snapshot.
//
// # Listener scoping
//
// Global pointer listeners are modeled as an explicit acquire/release pair.
// They are held only while a Panning or DraggingNode gesture is active and
// are released on every exit path, including [Editor.Close], so a torn-down
// surface can never leak a listener.
//
// # External collaborators
//
// The generation latch ([Editor.BeginGeneration] / [Editor.EndGeneration])
// is a simple non-reentrancy flag around the asynchronous generative
// collaborator: a result replaces the diagram wholesale (resetting the
// viewport via fit-to-content) or is discarded. [SyncState] tracks whether a
// local edit is pending re-export or an external import is pending local
// apply, replacing ad hoc "internal update" guards.
package editor

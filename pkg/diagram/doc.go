// Package diagram defines the graph model shared by every diagram notation:
// execution-flow graphs, value-stream graphs, case graphs and the scope
// boundary view all reduce to nodes and edges with a kind, a label, a model
// position and a metric payload.
//
// # Model
//
//   - [Node]: id, kind, label, position, optional explicit size, [Payload]
//   - [Edge]: id, source/target node ids, optional label and [EdgeKind]
//   - [Diagram]: ordered node and edge lists (insertion order = z-order)
//
// Every edge should reference existing nodes, but the model tolerates
// violations: [Diagram.ValidEdges] is the filter applied at every boundary
// (render, export, import) so a dangling reference can never crash the
// process.
//
// # Mutation discipline
//
// All operations are copy-on-write: they return a fresh Diagram and never
// alias or mutate their receiver's slices. This makes a Diagram value safe
// to hand across snapshot boundaries (undo stacks, pipeline lifts, wire
// export) without defensive copying by the caller.
//
// # Serialization
//
// Diagrams marshal to an indented node-link JSON document via [Marshal] and
// [WriteFile]; the same shape carries bson tags for document storage.
package diagram

// Package bpmn converts execution-flow diagrams to and from BPMN 2.0 XML,
// the interchange format spoken by external modeling widgets.
//
// # Export
//
// [Export] emits one process container holding a typed element per node
// (startEvent, task, exclusiveGateway, endEvent) and a sequenceFlow per
// connector whose endpoints both resolve, plus a diagram-interchange block:
// a BPMNShape with fixed per-kind bounds for every node and a BPMNEdge with
// forced left-to-right waypoints for every connector. Reserved markup
// characters in labels are escaped by the XML encoder.
//
// # Import
//
// [Import] is total: it never panics and never propagates a parse error as
// a crash. Malformed input yields an empty diagram; unrecognized element
// types are skipped; edges are dropped unless both endpoints resolve.
// Metric payloads are recovered from a previous-snapshot node with the same
// id when one exists, else the zero payload is substituted.
//
// # Widget registries
//
// External widgets are consumed through the narrow [Registry] capability
// interface rather than any concrete widget type; [ImportRegistry] rebuilds
// a diagram from the {id, elementType, x, y, businessObjectRef} tuples a
// widget exposes.
package bpmn

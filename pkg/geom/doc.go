// Package geom provides the pure coordinate math underlying the diagram
// surface: model/screen transforms, viewport pan and zoom, grid snapping,
// and bounding-box fitting.
//
// All coordinates are float64 model units unless a function name says
// otherwise. The render transform is translate(offset) ∘ scale(scale);
// [Viewport.ToModel] is its exact inverse.
//
// The package has no dependencies beyond the standard library and performs
// no I/O, which keeps every function trivially testable.
package geom

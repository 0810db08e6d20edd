// Package layout computes the shared 2D node placement for a multiplex graph.
//
// The placement is computed once per render and reused at every layer depth:
// a node keeps its (x, y) across all layers, only z changes. Everything
// downstream depends on that, so engines must be deterministic - the same
// (nodeCount, seed) pair always yields the same positions.
//
// # Engines
//
// The placement algorithm is a replaceable delegate behind the [Engine]
// interface. Two implementations ship:
//
//   - "force": force-directed placement (gonum EadesR2) over the complete
//     graph on n nodes, driven by a seeded PCG source. The default.
//   - "circle": nodes evenly spaced on a unit circle. Trivially
//     deterministic, useful as a fallback and in tests.
//
// Positions are normalized to a centered [-1, 1] box so geometry built on
// top is scale-stable regardless of engine.
//
// # Artifacts
//
// [Layout] is the serialization artifact: positions plus the engine and
// seed that produced them. It round-trips through JSON losslessly and is
// what the cache and the `layout` command store.
package layout

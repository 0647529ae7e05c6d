/*
Package inspect implements the recursive inspection engine: it walks an
arbitrary, possibly cyclic, possibly huge value graph and produces a
bounded, depth-safe tree of Nodes describing the value's type, shape and
contents.

Traversal is depth-first and pre-order. Three mechanisms keep it bounded:

  - per-category depth limits (with a dynamic fallback that shrinks as
    containers grow),
  - path-scoped cycle detection over reference identities,
  - uniform sampling of containers larger than the configured sample size.

The engine never mutates, awaits or invokes the values it inspects, and a
traversal fault never escapes Inspect: it is logged once and returned as a
structured error node.
*/
package inspect

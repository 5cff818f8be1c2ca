// Package graphio parses the name-based instance text format:
//
//	n m r          header: vertex, edge and red counts
//	s t            source and target vertex names
//	<n names>      one per line; a trailing '*' marks a red vertex
//	<m edges>      "u -- v" (undirected) or "u -> v" (directed)
//
// Blank lines are skipped anywhere. The declared red count r is kept
// for callers to cross-check but a mismatch with the discovered '*'
// markers is not an error: circulating data files are known to
// disagree, and rejecting them would make the tooling useless on the
// very inputs it exists for.
//
// Parse returns a ready core.Graph plus the source/target names; all
// structural validation (duplicate names, unknown edge endpoints) is
// delegated to the core builders.
package graphio

// Package redpath answers red-constrained simple-path queries over
// colored graphs: given a graph whose vertices are partitioned into
// "red" and non-red, a source and a target, it decides whether a simple
// s–t path exists that avoids red vertices (NONE), alternates red and
// non-red (ALTERNATE), contains at least one red vertex (SOME),
// minimizes the red count (FEW), or maximizes it (MANY).
//
// 🔴 What is redpath?
//
//	A pure-Go query library built around one structural trick:
//		• Vertex splitting: "each vertex at most once" becomes a
//		  unit-capacity arc, reusable by shortest-path and flow solvers
//		• Structural recognition: trees and DAGs are detected first and
//		  solved exactly in linear time
//		• Exact search: the NP-hard MANY variant runs branch-and-bound
//		  with an admissible reachable-red bound under a time budget
//		• Anytime heuristics: seeded greedy walks and beam search when
//		  an exact run is not affordable
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/     — colored Graph, Vertex, Edge types and adjacency building
//	split/    — the vertex-splitting transform to a capacitated network
//	classify/ — reachability, tree/DAG recognition, topological order
//	flow/     — residual networks and augmenting-path search
//	solve/    — the five variant solvers, dispatcher, and search engine
//	graphio/  — the name-based instance text format
//
// Quick ASCII example:
//
//	    s───a*──t      the unique s–t path crosses the red vertex a,
//	                   so SOME is true and NONE has no witness.
//
//	go get github.com/katalvlaran/redpath
package redpath

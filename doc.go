// Package edgentropy turns the local structure of undirected graphs into one
// entropy feature per edge.
//
// What does it compute?
//
//	For every node pair the motif counter classifies the neighbourhood shape
//	(closed triangles, wedges, pendant edges, isolated dyads, open triangles).
//	The distribution of those categories over a graph gives one entropy value
//	per category, and every edge is scored by the count-weighted average of
//	the categories it takes part in.
//
//	    edges ─▶ adjacency ─▶ motif ─▶ entropy (graph) ─▶ entropy (edges) ─▶ scores
//	                                  ▲
//	          partition (one graph per id / component) wraps the chain
//
// Packages:
//
//	adjacency/ — symmetric bitset adjacency matrix, boundary normalisation, gonum adapters
//	motif/     — category taxonomy, decision table, parallel pair counting
//	entropy/   — graph entropy vector and per-edge scores
//	partition/ — batches of graphs: split by graph id or component, scatter back
//	pipeline/  — end-to-end runner with slog logging, OpenTelemetry spans, Prometheus metrics
//	config/    — YAML + environment configuration
//	builder/   — deterministic graph fixtures for tests and benchmarks
//	cmd/edgentropy — command-line front end
//
// Quick example (triangle with a pendant leaf):
//
//	    0───1
//	     \ /
//	      2───3
//
//	r := pipeline.New()
//	scores, _ := r.Run(ctx, []adjacency.Edge{{0, 1}, {1, 2}, {2, 0}, {2, 3}}, 4)
//	// scores[0..2] ≈ 0.3631 (triangle edges), scores[3] ≈ 0.3347 (pendant edge)
//
//	go install github.com/katalvlaran/edgentropy/cmd/edgentropy@latest
package edgentropy

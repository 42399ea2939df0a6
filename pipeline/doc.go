// Package pipeline runs the edge-entropy computation end to end:
//
//	edges ─▶ adjacency.Build ─▶ motif.Count ─▶ entropy.Graph ─▶ entropy.Assign ─▶ scores
//
// and, for batches of graphs, wraps the same chain per partition and scatters
// the per-graph scores back into the order of the input edge list.
//
// What:
//
//   - Runner.Run:            one graph given as an edge list; one score per input edge.
//   - Runner.RunDense:       one graph given as a dense gonum matrix; the full Result.
//   - Runner.RunPartitioned: a batch split by a sorted graph-id array.
//   - Runner.RunComponents:  one graph split by connected component.
//   - Runner.Graph / Runner.GraphParts: the counting and scoring stages on
//     already built adjacency, for callers that need the intermediate tables.
//
// Observability:
//
//   - Every stage runs in its own OpenTelemetry span (adjacency.build,
//     motif.count, entropy.graph, entropy.assign, partition). The library never
//     installs an SDK; without one the global no-op provider is used.
//   - Metrics (optional) are Prometheus collectors registered on a caller
//     supplied Registerer, see NewMetrics.
//   - Logging goes through log/slog: stage completion at Debug, run summaries
//     at Info, failures at Error.
//
// Errors:
//
// Stage errors are returned wrapped with the entry point name; callers branch
// with errors.Is on the sentinels of adjacency, motif, entropy and partition.
// A failed run never returns partial scores.
package pipeline

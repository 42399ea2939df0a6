package main

import (
	"github.com/spf13/cobra"
)

// app holds the flag values of one invocation.
type app struct {
	configPath      string
	envFile         string
	logLevel        string
	logFormat       string
	metricsTextfile string
	trace           bool

	edgesPath    string
	matrixPath   string
	graphIDsPath string
	nodes        int
	indexBase    int
	partition    string
	mode         string
	kernel       string
	workers      int
	partWorkers  int

	output string
}

// newRootCmd builds a fresh command tree; every call has its own flag state.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "edgentropy",
		Short: "Motif-entropy edge features for undirected graphs",
		Long: `edgentropy enumerates small motifs around node pairs, turns the motif
category distribution of each graph into entropy values, and assigns every
edge a score from the motifs it takes part in.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.envFile, "env-file", "", "dotenv file exporting EDGENTROPY_* variables before the config is loaded")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format (text, json, auto)")
	pf.StringVar(&a.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file after the run")
	pf.BoolVar(&a.trace, "trace", false, "export OpenTelemetry spans to stderr")

	root.AddCommand(newScoreCmd(a), newMotifsCmd(a), newVersionCmd())

	return root
}

// bindInputFlags registers the graph input and counting flags on cmd.
func (a *app) bindInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&a.edgesPath, "edges", "e", "", "edge list file: one pair per line, whitespace or comma separated, # comments")
	f.StringVar(&a.matrixPath, "matrix", "", "dense adjacency matrix file (CSV); replaces --edges")
	f.StringVar(&a.graphIDsPath, "graph-ids", "", "graph id per node, one integer per line")
	f.IntVarP(&a.nodes, "nodes", "n", 0, "node count (default: highest id + 1, or the graph-id count)")
	f.IntVar(&a.indexBase, "index-base", 0, "index base of node ids in --edges (0 or 1)")
	f.StringVar(&a.partition, "partition", "none", "split into graphs: none, graph-id, components")
	f.StringVar(&a.mode, "mode", "edges", "pairs to count: edges, exhaustive")
	f.StringVar(&a.kernel, "kernel", "bitset", "shape kernel: bitset, scan")
	f.IntVarP(&a.workers, "workers", "w", 1, "goroutines counting motifs per graph")
	f.IntVar(&a.partWorkers, "partition-workers", 1, "graphs processed concurrently")
	cmd.MarkFlagsMutuallyExclusive("edges", "matrix")
	cmd.MarkFlagsOneRequired("edges", "matrix")
}

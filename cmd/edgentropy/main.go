// Command edgentropy computes motif-entropy edge features for undirected graphs.
//
// Usage:
//
//	edgentropy score  --edges graph.txt [--graph-ids ids.txt --partition graph-id] [--index-base 1]
//	edgentropy motifs --edges graph.txt
//	edgentropy score  --matrix adjacency.csv
//	edgentropy version
//
// Configuration is read from --config (YAML), then EDGENTROPY_* variables,
// then command-line flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "edgentropy:", err)
		stop()
		os.Exit(1)
	}
}

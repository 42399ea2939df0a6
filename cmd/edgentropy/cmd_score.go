package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgentropy/config"
	"github.com/katalvlaran/edgentropy/motif"
)

func newScoreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Print one entropy score per input edge",
		Long: `Score every edge of the input graph.

With --edges the output has one score per line, in the order of the edge
file. With --matrix every edge of the matrix is printed as "i j score".

Examples:
  edgentropy score --edges graph.txt
  edgentropy score --edges batch.txt --index-base 1 --graph-ids ids.txt --partition graph-id
  edgentropy score --edges graph.txt --partition components --workers 4 -o scores.txt`,
		Args: cobra.NoArgs,
		RunE: a.runScore,
	}
	a.bindInputFlags(cmd)
	cmd.Flags().StringVarP(&a.output, "output", "o", "", "write scores to this file instead of stdout")

	return cmd
}

// runScore loads the input, runs the selected entry point and writes scores.
func (a *app) runScore(cmd *cobra.Command, _ []string) (err error) {
	s, err := a.open(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := s.close(context.WithoutCancel(cmd.Context())); cErr != nil && err == nil {
			err = cErr
		}
	}()

	in, err := a.loadInput(s.cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.output != "" {
		f, err := os.Create(a.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	if err = a.score(cmd.Context(), s, in, w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	s.log.Info("scores written", slog.String("output", outputName(a.output)))

	return nil
}

func (a *app) score(ctx context.Context, s *session, in *graphInput, w io.Writer) error {
	if in.dense != nil {
		res, err := s.runner.RunDense(ctx, in.dense)
		if err != nil {
			return err
		}
		var wErr error
		res.Scores.Each(func(p motif.Pair, score float64) {
			if wErr == nil && res.Adjacency.At(p.I, p.J) {
				_, wErr = fmt.Fprintf(w, "%d %d %s\n", p.I, p.J, formatScore(score))
			}
		})

		return wErr
	}

	var scores []float64
	var err error
	switch s.cfg.Partition {
	case config.PartitionGraphID:
		scores, err = s.runner.RunPartitioned(ctx, in.edges, in.graphIDs)
	case config.PartitionComponents:
		scores, err = s.runner.RunComponents(ctx, in.edges, in.n)
	default:
		scores, err = s.runner.Run(ctx, in.edges, in.n)
	}
	if err != nil {
		return err
	}
	for _, sc := range scores {
		if _, err = io.WriteString(w, formatScore(sc)+"\n"); err != nil {
			return err
		}
	}

	return nil
}

// formatScore prints the shortest representation that round-trips.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}

	return path
}

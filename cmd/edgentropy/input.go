package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/edgentropy/adjacency"
	"github.com/katalvlaran/edgentropy/config"
)

// errMalformedInput indicates a line that is not in the expected format.
var errMalformedInput = errors.New("malformed input")

// errMissingGraphIDs indicates --partition graph-id without --graph-ids.
var errMissingGraphIDs = errors.New("--partition graph-id requires --graph-ids")

// graphInput is a fully materialised, 0-based graph.
type graphInput struct {
	edges    []adjacency.Edge // 0-based, input order
	raw      []adjacency.Edge // as read, for echoing ids back
	n        int
	graphIDs []int
	dense    *mat.Dense
}

// loadInput reads the files named by the flags and normalises ids to 0-based.
func (a *app) loadInput(cfg config.Config) (*graphInput, error) {
	in := &graphInput{}
	if a.matrixPath != "" {
		d, err := readFile(a.matrixPath, readMatrix)
		if err != nil {
			return nil, err
		}
		in.dense = d
		in.n, _ = d.Dims()

		return in, nil
	}

	raw, err := readFile(a.edgesPath, readEdges)
	if err != nil {
		return nil, err
	}
	in.raw = raw
	if in.edges, err = adjacency.Normalize(raw, cfg.IndexBase); err != nil {
		return nil, fmt.Errorf("%s: %w", a.edgesPath, err)
	}

	if a.graphIDsPath != "" {
		if in.graphIDs, err = readFile(a.graphIDsPath, readGraphIDs); err != nil {
			return nil, err
		}
	}
	if cfg.Partition == config.PartitionGraphID && in.graphIDs == nil {
		return nil, errMissingGraphIDs
	}

	switch {
	case a.nodes > 0:
		in.n = a.nodes
	case in.graphIDs != nil:
		in.n = len(in.graphIDs)
	default:
		in.n = nodeCount(in.edges)
	}
	if in.graphIDs != nil && len(in.graphIDs) != in.n {
		return nil, fmt.Errorf("%s: %d graph ids for %d nodes: %w", a.graphIDsPath, len(in.graphIDs), in.n, errMalformedInput)
	}

	return in, nil
}

// readFile opens path and hands it to parse, prefixing errors with the path.
func readFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// readEdges parses one integer pair per line. Fields are separated by
// whitespace or commas; blank lines and text after '#' are ignored.
func readEdges(r io.Reader) ([]adjacency.Edge, error) {
	var edges []adjacency.Edge
	err := scanLines(r, func(line int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("line %d: want 2 fields, got %d: %w", line, len(fields), errMalformedInput)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: %q: %w", line, fields[0], errMalformedInput)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("line %d: %q: %w", line, fields[1], errMalformedInput)
		}
		edges = append(edges, adjacency.Edge{U: u, V: v})

		return nil
	})

	return edges, err
}

// readGraphIDs parses one integer per line.
func readGraphIDs(r io.Reader) ([]int, error) {
	ids := []int{}
	err := scanLines(r, func(line int, fields []string) error {
		if len(fields) != 1 {
			return fmt.Errorf("line %d: want 1 field, got %d: %w", line, len(fields), errMalformedInput)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: %q: %w", line, fields[0], errMalformedInput)
		}
		ids = append(ids, id)

		return nil
	})

	return ids, err
}

// readMatrix parses a square CSV matrix of numbers.
func readMatrix(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errMalformedInput)
	}
	n := len(records)
	if n == 0 {
		return nil, fmt.Errorf("empty matrix: %w", errMalformedInput)
	}
	data := make([]float64, 0, n*n)
	for i, rec := range records {
		if len(rec) != n {
			return nil, fmt.Errorf("row %d: %d columns in a %d-row matrix: %w", i+1, len(rec), n, adjacency.ErrNonSquare)
		}
		for j, cell := range rec {
			x, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %q: %w", i+1, j+1, cell, errMalformedInput)
			}
			data = append(data, x)
		}
	}

	return mat.NewDense(n, n, data), nil
}

// scanLines calls fn with the fields of every non-empty line.
func scanLines(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if k := strings.IndexByte(text, '#'); k >= 0 {
			text = text[:k]
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t' || c == '\r'
		})
		if len(fields) == 0 {
			continue
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}

	return sc.Err()
}

// nodeCount returns the highest endpoint + 1.
func nodeCount(edges []adjacency.Edge) int {
	n := 0
	for _, e := range edges {
		n = max(n, e.U+1, e.V+1)
	}

	return n
}

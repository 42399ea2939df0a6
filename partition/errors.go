package partition

import "errors"

var (
	// ErrUnsortedPartition indicates that the graph ids of one graph are not a
	// contiguous, ascending run of node indices.
	ErrUnsortedPartition = errors.New("partition: graph ids are not sorted")

	// ErrCrossPartitionEdge indicates an edge whose endpoints lie in different parts.
	ErrCrossPartitionEdge = errors.New("partition: edge crosses partitions")

	// ErrScatterMismatch indicates per-part values that do not match the parts' edges.
	ErrScatterMismatch = errors.New("partition: values do not match parts")
)

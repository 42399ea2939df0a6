// Package config holds the run configuration of the edgentropy command.
//
// Sources, lowest priority first: built-in defaults (Default), a YAML file,
// EDGENTROPY_* environment variables (optionally exported from a dotenv file
// with LoadDotenv). Command-line flags are applied on top by the caller.
// Unknown YAML keys are rejected; field domains are checked with
// go-playground/validator rules keyed by the yaml names.
//
// Example file:
//
//	mode: edges            # edges | exhaustive
//	kernel: bitset         # bitset | scan
//	workers: 4
//	partition_workers: 2
//	index_base: 1          # ids in input files are 1-based
//	partition: graph-id    # none | graph-id | components
//	log:
//	  level: info          # debug | info | warn | error
//	  format: text         # text | json | auto
//	metrics:
//	  textfile: /var/lib/node_exporter/edgentropy.prom
//	tracing:
//	  stdout: false
package config

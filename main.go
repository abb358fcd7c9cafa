// Package main provides the entry point for cachesim.
// cachesim is a trace-driven set-associative cache simulator using the
// SRRIP replacement policy.
//
// For the full CLI, use: go run ./cmd/cachesim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("cachesim - SRRIP Cache Simulator")
	fmt.Println("")
	fmt.Println("Usage: cachesim [options] < trace_file")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -size      Cache size in KB")
	fmt.Println("  -assoc     Cache associativity (ways per set)")
	fmt.Println("  -line      Cache line size in bytes")
	fmt.Println("  -config    Path to cache geometry JSON file")
	fmt.Println("  -trace     Path to trace file (default stdin)")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/cachesim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/cachesim' instead.")
	}
}

// Package main provides the entry point for cachesim, a trace-driven
// set-associative cache simulator using the SRRIP replacement policy.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/trace"
)

var (
	sizeKB     = flag.Int("size", 32, "Cache size in KB")
	assoc      = flag.Int("assoc", 8, "Cache associativity (ways per set)")
	lineSize   = flag.Int("line", 64, "Cache line size in bytes")
	configPath = flag.String("config", "", "Path to cache geometry JSON file (overrides -size/-assoc/-line)")
	tracePath  = flag.String("trace", "", "Path to trace file (default stdin)")
	verbose    = flag.Bool("v", false, "Verbose output")
)

const sepTable = "#########################################"

func main() {
	flag.Parse()

	config := cache.Config{
		SizeKB:        *sizeKB,
		Associativity: *assoc,
		LineSize:      *lineSize,
	}
	if *configPath != "" {
		loaded, err := cache.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config = *loaded
	}

	c, err := cache.New(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	input := io.Reader(os.Stdin)
	if *tracePath != "" {
		f, err := os.Open(*tracePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening trace: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		input = f
	}

	start := time.Now()
	if err := run(c, trace.NewReader(input)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	printReport(config, c.Stats(), elapsed)

	if *verbose {
		fmt.Printf("%-30s%-10d\n", "SRRIP parameter M:", c.M())
		fmt.Printf("%-30s%-10d\n", "Sets touched:", c.PopulatedSets())
		fmt.Println()
	}
}

// run streams every trace record through the cache.
func run(c *cache.Cache, r *trace.Reader) error {
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		op := cache.OpLoad
		if rec.Store {
			op = cache.OpStore
		}
		c.Access(op, rec.Addr)
	}
}

// printReport prints the parameter and result tables.
func printReport(config cache.Config, stats cache.Stats, elapsed time.Duration) {
	fmt.Println()
	fmt.Println(sepTable)
	fmt.Println("# Cache parameters:")
	fmt.Printf("%-30s%-10d\n", "Cache size (KB):", config.SizeKB)
	fmt.Printf("%-30s%-10d\n", "Cache associativity:", config.Associativity)
	fmt.Printf("%-30s%-10d\n", "Cache line size:", config.LineSize)
	fmt.Println()

	fmt.Println(sepTable)
	fmt.Println("# Simulation results:")
	fmt.Printf("%-30s%-10.4f\n", "Overall miss rate:", stats.MissRate())
	fmt.Printf("%-30s%-10.4f\n", "Read miss rate:", stats.ReadMissRate())
	fmt.Printf("%-30s%-10d\n", "Dirty evictions:", stats.DirtyEvictions)
	fmt.Printf("%-30s%-10d\n", "Load misses:", stats.ReadMisses)
	fmt.Printf("%-30s%-10d\n", "Store misses:", stats.WriteMisses)
	fmt.Printf("%-30s%-10d\n", "Total misses:", stats.TotalMisses())
	fmt.Printf("%-30s%-10d\n", "Load hits:", stats.ReadHits)
	fmt.Printf("%-30s%-10d\n", "Store hits:", stats.WriteHits)
	fmt.Printf("%-30s%-10d\n", "Total hits:", stats.TotalHits())
	fmt.Printf("%-30s%-10d\n", "Total accesses:", stats.Accesses)
	fmt.Println()

	fmt.Println(sepTable)
	fmt.Printf("%-30s%-10d\n", "Simulation time (ms):", elapsed.Milliseconds())
	fmt.Println()
}

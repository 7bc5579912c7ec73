package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/heapkit/heapkit/heap"
	"github.com/heapkit/heapkit/heap/alloc"
	"github.com/heapkit/heapkit/heap/report"
	"github.com/spf13/cobra"
)

var (
	stressArenaSize uint64
	stressOps       int
	stressSeed      int64
	stressMaxSize   uint64
	stressLeak      int
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().Uint64Var(&stressArenaSize, "arena-size", heap.DefaultSize, "Arena size in bytes")
	cmd.Flags().IntVar(&stressOps, "ops", 10000, "Number of allocator operations")
	cmd.Flags().Int64Var(&stressSeed, "seed", 1, "Random seed")
	cmd.Flags().Uint64Var(&stressMaxSize, "max-size", 4096, "Maximum allocation size in bytes")
	cmd.Flags().IntVar(&stressLeak, "leak", 0, "Leave this many allocations unfreed")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run a randomized allocation workload",
		Long: `The stress command drives the allocator with a reproducible random mix
of malloc, calloc, realloc, and free, then prints the allocation statistics
and the leak report.

Example:
  heapctl stress
  heapctl stress --ops 100000 --max-size 65536
  heapctl stress --leak 3 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
	return cmd
}

// stressResult is the JSON output of the stress command.
type stressResult struct {
	Ops      int           `json:"ops"`
	Seed     int64         `json:"seed"`
	Duration time.Duration `json:"duration_ns"`
	Leaks    int           `json:"leaks"`
	Stats    alloc.Stats   `json:"stats"`
}

func runStress() error {
	if stressMaxSize == 0 {
		return fmt.Errorf("--max-size must be positive")
	}

	arena, err := heap.Reserve(stressArenaSize)
	if err != nil {
		return fmt.Errorf("failed to reserve arena: %w", err)
	}
	defer arena.Close()

	al := alloc.New(arena, nil)
	rng := rand.New(rand.NewSource(stressSeed))

	printVerbose("Arena: %d bytes, %d ops, seed %d\n", arena.Size(), stressOps, stressSeed)

	type live struct {
		ref  alloc.Ref
		size uint64
	}
	var blocks []live
	start := time.Now()

	for i := 0; i < stressOps; i++ {
		org := alloc.Origin{File: "stress.go", Line: i + 1}
		size := uint64(rng.Int63n(int64(stressMaxSize))) + 1

		switch {
		case len(blocks) == 0 || rng.Intn(10) < 5:
			var (
				ref alloc.Ref
				err error
			)
			if rng.Intn(4) == 0 {
				ref, _, err = al.Calloc(size, 1, org)
			} else {
				ref, _, err = al.Malloc(size, org)
			}
			if err != nil {
				if errors.Is(err, alloc.ErrNoSpace) {
					continue
				}
				return err
			}
			blocks = append(blocks, live{ref, size})

		case rng.Intn(3) == 0:
			j := rng.Intn(len(blocks))
			ref, _, err := al.Realloc(blocks[j].ref, size, org)
			if err != nil {
				if errors.Is(err, alloc.ErrNoSpace) {
					continue
				}
				return err
			}
			blocks[j] = live{ref, size}

		default:
			j := rng.Intn(len(blocks))
			al.Free(blocks[j].ref, org)
			blocks = append(blocks[:j], blocks[j+1:]...)
		}
	}

	// Free everything except the requested leak count.
	for len(blocks) > stressLeak {
		al.Free(blocks[len(blocks)-1].ref, alloc.Here())
		blocks = blocks[:len(blocks)-1]
	}
	elapsed := time.Since(start)

	if jsonOut {
		return printJSON(stressResult{
			Ops:      stressOps,
			Seed:     stressSeed,
			Duration: elapsed,
			Leaks:    len(al.Leaks()),
			Stats:    al.Stats(),
		})
	}

	printInfo("Completed %d ops in %s\n\n", stressOps, elapsed.Round(time.Microsecond))
	report.Statistics(os.Stdout, al.Stats())
	if verbose {
		fmt.Println()
		report.Summary(os.Stdout, al.Stats())
	}
	fmt.Println()
	if n := report.Leaks(os.Stdout, al); n == 0 {
		printInfo("No leaks.\n")
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/heapkit/heapkit/heap"
	"github.com/heapkit/heapkit/heap/alloc"
	"github.com/heapkit/heapkit/heap/report"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo <scenario>",
		Short: "Run a deliberately broken program to show the diagnostics",
		Long: `The demo command runs a small program with a known memory bug and
shows the diagnostic the allocator produces for it.

Scenarios:
  wild-write    write past the end of an allocation, then free it
  double-free   free the same allocation twice
  invalid-free  free a pointer that was never allocated
  inside-free   free a pointer into the middle of an allocation
  leak          exit without freeing, then run the leak check

Example:
  heapctl demo wild-write
  heapctl demo leak`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(args[0])
		},
	}
	return cmd
}

func runDemo(scenario string) error {
	arena, err := heap.Reserve(heap.DefaultSize)
	if err != nil {
		return fmt.Errorf("failed to reserve arena: %w", err)
	}
	defer arena.Close()

	al := alloc.New(arena, &alloc.Config{
		Output: os.Stdout,
		Fatal:  func() { os.Exit(2) },
	})

	switch scenario {
	case "wild-write":
		ref, buf, err := al.Malloc(100, alloc.Here())
		if err != nil {
			return err
		}
		printInfo("allocated 100 bytes at %#x, writing byte 104\n", ref)
		// One byte past the payload lands in the guard.
		al.Arena().Bytes()[ref+uint64(len(buf))+4] = 0xFF
		al.Free(ref, alloc.Here())

	case "double-free":
		ref, _, err := al.Malloc(64, alloc.Here())
		if err != nil {
			return err
		}
		al.Free(ref, alloc.Here())
		printInfo("freed %#x once, freeing again\n", ref)
		al.Free(ref, alloc.Here())

	case "invalid-free":
		printInfo("freeing a pointer outside the heap\n")
		al.Free(alloc.Ref(0xdeadbeef0000), alloc.Here())

	case "inside-free":
		ref, _, err := al.Malloc(1000, alloc.Here())
		if err != nil {
			return err
		}
		printInfo("allocated 1000 bytes at %#x, freeing %#x\n", ref, ref+160)
		al.Free(ref+160, alloc.Here())

	case "leak":
		for i, size := range []uint64{100, 300, 50} {
			if _, _, err := al.Malloc(size, alloc.Origin{File: "demo.go", Line: i + 1}); err != nil {
				return err
			}
		}
		printInfo("allocated 3 objects and freed none\n\n")
		report.Leaks(os.Stdout, al)
		return nil

	default:
		return fmt.Errorf("unknown scenario %q", scenario)
	}

	// Every scenario above should have died inside Free.
	return fmt.Errorf("scenario %q did not trigger a diagnostic", scenario)
}

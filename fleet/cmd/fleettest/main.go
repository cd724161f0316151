package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.lepak.sg/fleet/fleet"
	"go.lepak.sg/fleet/fleet/scenario"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var (
	seed    = flag.Int64("s", 0, "seed (default current unix time in ns)")
	size    = flag.Int("n", scenario.DefaultSize, "number of ships in the larger fleets")
	jobs    = flag.Int("j", runtime.GOMAXPROCS(0), "number of scenarios to run at once")
	verbose = flag.Bool("v", false, "print the reason for each failure and a census of a sample fleet")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	p := scenario.Params{
		Seed: *seed,
		Size: *size,
	}

	// every scenario owns its fleets, so they can run side by side
	results := make([]error, len(scenario.All))
	var g errgroup.Group
	if *jobs > 0 {
		g.SetLimit(*jobs)
	}

	for i, sc := range scenario.All {
		i, sc := i, sc
		g.Go(func() error {
			results[i] = sc.Run(p)
			return nil
		})
	}

	// scenario failures are in results; the group itself never fails
	_ = g.Wait()

	fmt.Println("seed:", *seed)

	failed := 0
	for i, sc := range scenario.All {
		status := "Passed"
		if results[i] != nil {
			status = "Failed"
			failed++
		}
		fmt.Printf("Testing %s: %s\n", sc.Name, status)

		if *verbose && results[i] != nil {
			fmt.Println("   ", results[i])
		}
	}

	if *verbose {
		printCensus(fleet.BuildRandom(fleet.AVL, *size, *seed))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d scenarios failed\n", failed, len(scenario.All))
		os.Exit(1)
	}
}

func printCensus(f *fleet.Fleet) {
	census := f.Census()
	types := maps.Keys(census)
	slices.Sort(types)

	fmt.Printf("sample %v fleet: %d ships, height %d\n", f.Type(), f.Len(), f.Height())
	for _, t := range types {
		fmt.Printf("    %-12v %d\n", t, census[t])
	}
}

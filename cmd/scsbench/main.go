// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scsbench runs the scs package's benchmark suite: it times
// serialisation of randomly generated values for a set of registered
// cases and reports mean/median/p99 elapsed time and peak encoded size
// per case. The cases do not deserialise what they write.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/solidcoredata/scs"
	"github.com/solidcoredata/scs/bench"
	"github.com/solidcoredata/scs/internal/start"
	"github.com/solidcoredata/scs/membuf"
)

func main() {
	iterations := flag.Int("iterations", 1000, "serialisations to run per case")
	tag := flag.String("tag", "", "only run cases carrying this tag (default: all cases)")
	seed := flag.Uint64("seed", 1, "seed for the per-case pseudo-random generators")
	policy := flag.String("policy", "growing", "buffer policy to benchmark: growing or fixed")
	fixedCapacity := flag.Int("fixed-capacity", 4096, "capacity in bytes for the fixed buffer policy")
	csvPath := flag.String("csv", "", "write CSV output to this path instead of stdout")
	stopTimeout := flag.Duration("stop-timeout", 5*time.Second, "grace period to finish an in-flight batch after SIGINT")
	flag.Parse()

	var newBuffer bench.NewBuffer
	switch *policy {
	case "growing":
		newBuffer = func() scs.Buffer { return membuf.NewGrowing(64) }
	case "fixed":
		newBuffer = func() scs.Buffer { return membuf.NewFixed(*fixedCapacity) }
	default:
		log.Fatalf("scsbench: unknown -policy %q, want \"growing\" or \"fixed\"", *policy)
	}

	cases := bench.Filter(bench.DefaultCases(), *tag)
	if len(cases) == 0 {
		log.Fatalf("scsbench: -tag %q matched no registered cases", *tag)
	}

	err := start.Start(context.Background(), *stopTimeout, func(ctx context.Context) error {
		reports, err := bench.Run(ctx, cases, *iterations, *seed, *policy, newBuffer)
		if err != nil {
			return err
		}
		out := os.Stdout
		if *csvPath != "" {
			f, err := os.Create(*csvPath)
			if err != nil {
				return err
			}
			defer f.Close()
			return bench.WriteCSV(f, reports)
		}
		return bench.WriteCSV(out, reports)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

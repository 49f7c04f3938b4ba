// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"context"
	"time"

	"github.com/solidcoredata/scs"
	"github.com/solidcoredata/scs/internal/start"
)

// Report is one case's timing summary, the row CSV output writes.
type Report struct {
	CaseName     string
	BufferPolicy string
	Iterations   int
	MaxBytes     int
	Mean         time.Duration
	P50          time.Duration
	P99          time.Duration
}

// NewBuffer builds a fresh scs.Buffer for one iteration. Run calls
// this once per iteration rather than once per case, since a buffer's
// logical size is reset by scs.Serialise's call to Initialise but a
// fixed buffer's capacity is set once at construction.
type NewBuffer func() scs.Buffer

// Filter returns the subset of cases matching tag, or all cases if tag
// is empty.
func Filter(cases []Case, tag string) []Case {
	if tag == "" {
		return cases
	}
	out := make([]Case, 0, len(cases))
	for _, c := range cases {
		if c.HasTag(tag) {
			out = append(out, c)
		}
	}
	return out
}

// Run executes every case in cases iterations times each,
// one goroutine per case via internal/start.RunAll, and returns one
// Report per case in input order. seed derives an independent, still
// reproducible Random per case so concurrent cases never share a
// *rand.Rand.
func Run(ctx context.Context, cases []Case, iterations int, seed uint64, policyName string, newBuffer NewBuffer) ([]Report, error) {
	reports := make([]Report, len(cases))
	runs := make([]func(ctx context.Context) error, len(cases))
	for i, c := range cases {
		i, c := i, c
		runs[i] = func(ctx context.Context) error {
			rnd := NewRandom(seed + uint64(i)*0x9e3779b97f4a7c15)
			var durs Durations
			maxBytes := 0
			for n := 0; n < iterations; n++ {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				buf := newBuffer()
				begin := time.Now()
				written, err := c.Run(rnd, buf)
				elapsed := time.Since(begin)
				if err != nil {
					return err
				}
				durs.Record(elapsed)
				if written > maxBytes {
					maxBytes = written
				}
			}
			reports[i] = Report{
				CaseName:     c.Name,
				BufferPolicy: policyName,
				Iterations:   iterations,
				MaxBytes:     maxBytes,
				Mean:         durs.Mean(),
				P50:          durs.Median(),
				P99:          durs.Percentile(0.99),
			}
			return nil
		}
	}
	if err := start.RunAll(ctx, runs...); err != nil {
		return nil, err
	}
	return reports, nil
}

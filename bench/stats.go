// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench is a small harness for timing scs serialisation: it
// registers named, tagged cases, drives them through randomly
// generated sources a configurable number of times, and reports
// mean/median/percentile elapsed time per case.
package bench

import (
	"slices"
	"time"
)

// Durations accumulates a batch of timing samples and reduces them to
// the summary statistics a benchmark report needs. Unlike the
// concurrent Mean/Median counters
// (internal/stats in the pack's protobuf library, not importable
// across module boundaries), a single benchmark case is run
// sequentially by one goroutine, so this holds a plain slice rather
// than atomics.
type Durations struct {
	samples []time.Duration
}

// Record appends one sample.
func (d *Durations) Record(sample time.Duration) {
	d.samples = append(d.samples, sample)
}

// Len returns the number of recorded samples.
func (d *Durations) Len() int { return len(d.samples) }

// Mean returns the arithmetic mean of all recorded samples.
func (d *Durations) Mean() time.Duration {
	if len(d.samples) == 0 {
		return 0
	}
	var total time.Duration
	for _, s := range d.samples {
		total += s
	}
	return total / time.Duration(len(d.samples))
}

// Median returns Percentile(0.5): the middle sample, or for an even
// number of samples the lower of the two middle ones.
func (d *Durations) Median() time.Duration {
	return d.Percentile(0.5)
}

// Percentile returns the sample at the given quantile q in [0,1]: the
// sorted sample at index floor(q*(n-1)), with no interpolation between
// neighbouring samples.
func (d *Durations) Percentile(q float64) time.Duration {
	n := len(d.samples)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(d.samples)
	slices.Sort(sorted)
	idx := int(q * float64(n-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return sorted[idx]
}

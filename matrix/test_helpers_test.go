// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for Dense, validators and generators.
//   - Keep fixture data finite so the numeric policy never interferes.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/perron/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At-based fallback paths in code under test.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or aborts the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustFrom builds a *Dense from row literals or aborts the test.
func mustFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		tb.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// fillDenseRand fills m with deterministic values in [-1, 1) from seed.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, 2*rng.Float64()-1); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

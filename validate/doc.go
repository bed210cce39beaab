// SPDX-License-Identifier: MIT

// Package validate holds tolerance comparisons and reference eigenpair checks
// used to verify similarity.Run results.
//
// Comparisons are absolute-or-relative (gonum floats semantics): a and b are
// close when |a-b| ≤ tol or |a-b| ≤ tol·max(|a|,|b|). Dominant delegates to
// gonum's general eigen solver and serves as the independent reference.
package validate

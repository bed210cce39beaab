// Package perron finds the dominant (Perron) eigenvalue and eigenvector of a
// square, entrywise-positive matrix on a data-parallel CPU "device".
//
// 🚀 What is perron?
//
//	Power iteration fused with a chain of diagonal similarity transforms
//	A ← Σ⁻¹·A·Σ, Σ = diag(row sums). The transforms keep the spectrum and
//	flatten the row sums; once every pair of neighbouring row sums agrees
//	within ε, the common row sum is the dominant eigenvalue and the
//	accumulated scaling is its eigenvector.
//
// ✨ How is it organized?
//
//	device/      Device, Queue, Event, NDRange/Group and atomic cells
//	kernels/     lane-cluster reductions, RowSum, Max, UpdateEigenvector,
//	             Transform and Converged stages
//	similarity/  Run: the event-ordered iteration driver, options, Result
//	matrix/      Dense storage, validators, generators, serial references
//	validate/    tolerance helpers and a gonum eigen reference
//	cmd/simbench dimension sweep benchmark
//
// Quick example:
//
//	m, _ := matrix.NewDenseFrom([][]float64{{1, 1, 2}, {2, 1, 3}, {2, 3, 5}})
//	res, _ := similarity.Run(m)
//	// res.Value ≈ 7.53114, res.Vector ≈ [0.394074 0.578844 0.997451]
//
//	go get github.com/katalvlaran/perron
package perron

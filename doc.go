// Package dpkit is a collection of classic dynamic-programming
// algorithms, each paired with full reconstruction of the decisions
// behind its optimum — not just the optimal value.
//
// 🚀 What is dpkit?
//
//	A small, pure-Go library covering the canonical tabulation
//	exercises, one package per problem:
//		• obst/        — Optimal Binary Search Trees (cost, weight and
//		  root tables + exact tree-shape reconstruction)
//		• lcs/         — Longest Common Subsequence (length + the
//		  subsequence itself)
//		• matrixchain/ — Matrix-Chain Multiplication (minimal scalar
//		  multiplications + optimal parenthesization)
//		• knapsack/    — 0/1 Knapsack (maximal value + selected items)
//		• rodcut/      — Rod Cutting (maximal revenue + cut lengths)
//
// ✨ Why choose dpkit?
//
//   - Reconstruction first – every solver keeps its decision tables and
//     can replay the optimal structure deterministically
//   - Rock-solid contracts – sentinel errors, fail-fast validation,
//     fresh tables per call, no shared mutable state
//   - Pure Go – no cgo, no hidden deps
//   - Documented invariants – each package states its recurrence,
//     base cases and tie-break rules in its doc.go
//
// The flagship is obst: a 3-dimensional recurrence (cost, weight and
// root-choice tables) with a pre-order reconstruction that places both
// real keys and the virtual leaves between them.
//
// Dive into each package's doc.go and example_test.go for walkthroughs.
//
//	go get github.com/katalvlaran/dpkit
package dpkit

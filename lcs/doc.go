// Package lcs computes the Longest Common Subsequence of two strings,
// with full reconstruction of one optimal subsequence.
//
// 🚀 What is an LCS?
//
//	The longest sequence of characters appearing (not necessarily
//	contiguously) in both inputs, in the same relative order. Classic
//	applications:
//	  • diff tools & version control
//	  • DNA / protein sequence comparison
//	  • plagiarism and similarity detection
//
// ✨ Key features:
//   - length table c[i][j] for every prefix pair (CLRS §15.4)
//   - arrow table of Direction marks for O(m+n) reconstruction
//   - deterministic tie-break: on equal lengths the "up" branch wins,
//     so repeated runs always reconstruct the same subsequence
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dpkit/lcs"
//
//	res := lcs.Solve("ABCBDAB", "BDCABA")
//	fmt.Println(res.Length)        // 4
//	fmt.Println(res.Subsequence()) // BCBA
//
// Matching is byte-wise; inputs are treated as raw byte strings.
//
// Performance:
//
//   - Time:   O(m·n)
//   - Memory: O(m·n)
package lcs

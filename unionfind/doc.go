// SPDX-License-Identifier: MIT

// Package unionfind provides a disjoint-set forest over the integer sites
// 0..N-1, used by cluster algorithms to group sites into equivalence classes.
//
// What & Why
//
//   - A Forest partitions sites into sets. Each set is a tree of parent links
//     whose root is the set's representative.
//   - Swendsen-Wang cluster updates bond aligned neighbours and then need to
//     answer "which cluster does site i belong to?" for every site. Union by
//     rank keeps every tree at most log2(N) deep, so each query is cheap.
//
// Policy
//
//   - Union by rank: the lower-rank root is attached under the higher-rank
//     root. On a tie, y's root goes under x's root and x's root rank grows by
//     one. Rank therefore bounds tree height.
//   - No path compression: FindRoot never mutates the forest, so it is safe to
//     call from read-only code paths and its results are referentially
//     transparent.
//   - Indices outside [0, Len()) return ErrIndexOutOfRange wrapped with the
//     operation name. The forest never panics on user input.
//
// Complexity
//
//   - New:      O(N) time and memory.
//   - FindRoot: O(log N) worst case (rank-bounded height).
//   - Unite:    O(log N).
//   - SameSet:  O(log N).
//
// Concurrency
//
//	A Forest is not safe for concurrent mutation. Build one per update pass.
//
// See example_test.go for runnable usage.
package unionfind

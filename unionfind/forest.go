// SPDX-License-Identifier: MIT

package unionfind

import (
	"fmt"
	"sort"
)

// New returns a forest of n singleton sets {0}, {1}, ..., {n-1}.
// n == 0 yields an empty forest on which every index is out of range.
//
// Complexity: O(n) time, O(n) memory.
func New(n int) (*Forest, error) {
	if n < 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrInvalidSize)
	}

	f := &Forest{
		parent: make([]int, n),
		rank:   make([]int, n), // zero ranks: every tree is a single node
	}
	for i := 0; i < n; i++ {
		f.parent[i] = i
	}

	return f, nil
}

// Len returns the number of sites tracked by the forest.
func (f *Forest) Len() int { return len(f.parent) }

// Unite merges the sets containing x and y.
//
// Steps:
//  1. Resolve both roots (read-only walks).
//  2. Same root: nothing to do.
//  3. Lower-rank root goes under the higher-rank root.
//  4. Equal ranks: y's root goes under x's root and x's root rank grows by one.
//
// Complexity: O(log N).
func (f *Forest) Unite(x, y int) error {
	if err := f.check(methodUnite, x); err != nil {
		return err
	}
	if err := f.check(methodUnite, y); err != nil {
		return err
	}

	// 1) Resolve representatives.
	rootX := f.root(x)
	rootY := f.root(y)
	// 2) Already in one set.
	if rootX == rootY {
		return nil
	}

	// 3) Shallower tree goes under the deeper one; heights are unchanged.
	if f.rank[rootX] < f.rank[rootY] {
		f.parent[rootX] = rootY
		return nil
	}
	f.parent[rootY] = rootX
	// 4) Tie: the merged tree is one level taller.
	if f.rank[rootX] == f.rank[rootY] {
		f.rank[rootX]++
	}

	return nil
}

// FindRoot returns the representative of x's set. It never mutates the forest.
//
// Complexity: O(log N).
func (f *Forest) FindRoot(x int) (int, error) {
	if err := f.check(methodFindRoot, x); err != nil {
		return 0, err
	}

	return f.root(x), nil
}

// SameSet reports whether x and y share a representative.
//
// Complexity: O(log N).
func (f *Forest) SameSet(x, y int) (bool, error) {
	if err := f.check(methodSameSet, x); err != nil {
		return false, err
	}
	if err := f.check(methodSameSet, y); err != nil {
		return false, err
	}

	return f.root(x) == f.root(y), nil
}

// Rank returns the rank stored for x. Only roots carry a meaningful rank.
func (f *Forest) Rank(x int) (int, error) {
	if err := f.check(methodRank, x); err != nil {
		return 0, err
	}

	return f.rank[x], nil
}

// Components groups all sites by representative.
// Groups are ordered by their smallest member; members are ascending.
//
// Complexity: O(N log N).
func (f *Forest) Components() [][]int {
	byRoot := make(map[int][]int)
	for i := range f.parent {
		r := f.root(i)
		byRoot[r] = append(byRoot[r], i) // i ascends, so members stay sorted
	}

	// Flatten and order groups by smallest member (members[0]).
	out := make([][]int, 0, len(byRoot))
	for _, members := range byRoot {
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// root walks parent links up to the root without compressing the path.
// The caller has already validated x.
func (f *Forest) root(x int) int {
	for f.parent[x] != x {
		x = f.parent[x]
	}

	return x
}

// check validates x against [0, Len()).
func (f *Forest) check(method string, x int) error {
	if x < 0 || x >= len(f.parent) {
		return fmt.Errorf("%s: index=%d, len=%d: %w", method, x, len(f.parent), ErrIndexOutOfRange)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package unionfind

import "errors"

// ErrIndexOutOfRange indicates a site index outside [0, Len()).
// Callers branch with errors.Is; the operation name is attached via %w.
var ErrIndexOutOfRange = errors.New("unionfind: index out of range")

// ErrInvalidSize indicates a negative forest size was requested.
var ErrInvalidSize = errors.New("unionfind: invalid size")

// Method tags used to give wrapped errors context.
const (
	methodUnite    = "Unite"
	methodFindRoot = "FindRoot"
	methodSameSet  = "SameSet"
	methodRank     = "Rank"
)

// Forest is a disjoint-set forest with union by rank.
//
// Invariants:
//   - len(parent) == len(rank) == N.
//   - Following parent from any x terminates at a root r with parent[r] == r.
//   - rank[r] bounds the height of the tree rooted at r and only grows when
//     two equal-rank trees merge.
type Forest struct {
	parent []int // parent[x] is x's parent; roots point to themselves
	rank   []int // rank[r] is an upper bound on the height of r's tree
}

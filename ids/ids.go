// Package ids mints and renumbers expression node ids.
//
// Node ids are positive int64 values unique within a single tree. The id 0
// is the "no id" sentinel: it is never minted and always passes through
// renumbering unchanged.
//
// Monotonic produces fresh, never-before-seen ids and is used when building
// a tree from scratch. Stable additionally remembers every renumbering it
// has performed, so repeated references to the same source id resolve to the
// same target id. That property is what makes subtree splicing work: a
// template whose internal ids repeat (or are all zero) can be grafted into a
// host tree without tearing apart its internal references.
package ids

import "fmt"

// Monotonic mints a strictly increasing id sequence starting at seed+1.
type Monotonic struct {
	id int64
}

// NewMonotonic returns a Monotonic generator whose first Next is seed+1.
// It panics if seed is negative.
func NewMonotonic(seed int64) *Monotonic {
	if seed < 0 {
		panic(fmt.Sprintf("ids: NewMonotonic with negative seed %d", seed))
	}
	return &Monotonic{id: seed}
}

// Next returns the next id in the sequence.
func (g *Monotonic) Next() int64 {
	g.id++
	return g.id
}

// Stable renumbers ids while remembering every mapping it has made. A given
// source id always renumbers to the same target id for the lifetime of the
// generator, and 0 always renumbers to 0.
type Stable struct {
	mono Monotonic
	seen map[int64]int64
}

// NewStable returns a Stable generator minting fresh ids from seed+1.
// It panics if seed is negative.
func NewStable(seed int64) *Stable {
	if seed < 0 {
		panic(fmt.Sprintf("ids: NewStable with negative seed %d", seed))
	}
	return &Stable{
		mono: Monotonic{id: seed},
		seen: map[int64]int64{},
	}
}

// Has reports whether id has already been renumbered.
func (g *Stable) Has(id int64) bool {
	_, ok := g.seen[id]
	return ok
}

// Renumber maps id to its stable replacement, minting one on first sight.
// 0 passes through unchanged. It panics if id is negative.
func (g *Stable) Renumber(id int64) int64 {
	if id < 0 {
		panic(fmt.Sprintf("ids: Renumber with negative id %d", id))
	}
	if id == 0 {
		return 0
	}
	if to, ok := g.seen[id]; ok {
		return to
	}
	to := g.mono.Next()
	g.seen[id] = to
	return to
}

// Memoize pre-seeds the mapping from old to new, so a later Renumber(old)
// returns new instead of minting. Used when a replacement subtree must line
// up with ids already assigned elsewhere.
func (g *Stable) Memoize(old, new int64) {
	g.seen[old] = new
}

// Package merkle implements fixed-depth binary Merkle authentication over
// either of the vault's field families. A Scheme pairs a 2-to-1 hash with
// the field's zero element; Root, Verify and the offline Tree builder are
// written once against it.
//
// The left/right convention is load-bearing: Flags[i] == true means the
// node at level i is the RIGHT operand, so the parent is Pair(sibling,
// node). The builder records flags as the complement of "index is even at
// this level", which makes builder output round-trip through Root.
package merkle

import (
	"errors"
	"fmt"
)

// Depth is the fixed height of the authentication path. The commitment set
// holds up to 2^Depth leaves.
const Depth = 20

var (
	ErrEmptyTree       = errors.New("merkle: tree needs at least one leaf")
	ErrTooManyLeaves   = errors.New("merkle: more than 2^20 leaves")
	ErrIndexOutOfRange = errors.New("merkle: leaf index out of range")
)

// Scheme is a depth-20 authentication scheme over element type E.
type Scheme[E comparable] struct {
	// Pair is the 2-to-1 hash combining two child nodes.
	Pair func(E, E) E
	// Zero is the neutral element used to pad odd layers and absent
	// siblings.
	Zero E
}

// Proof is an authentication path: one sibling and one side flag per level,
// bottom-up.
type Proof[E comparable] struct {
	Siblings [Depth]E
	Flags    [Depth]bool
}

// Root folds a leaf up the authentication path and returns the resulting
// root.
func (s Scheme[E]) Root(leaf E, p Proof[E]) E {
	current := leaf
	for i := 0; i < Depth; i++ {
		if p.Flags[i] {
			current = s.Pair(p.Siblings[i], current)
		} else {
			current = s.Pair(current, p.Siblings[i])
		}
	}
	return current
}

// Verify reports whether the path authenticates the leaf under root.
func (s Scheme[E]) Verify(leaf E, p Proof[E], root E) bool {
	return s.Root(leaf, p) == root
}

// Tree is the offline builder used by tests and tooling. It owns its layer
// slices exclusively during construction and is immutable afterwards.
type Tree[E comparable] struct {
	scheme Scheme[E]
	layers [][]E
}

// NewTree hashes the leaves pairwise, layer by layer, up to exactly Depth
// levels. An odd-length layer pads its last element by hashing it with the
// zero element; it is never duplicated.
func NewTree[E comparable](scheme Scheme[E], leaves []E) (*Tree[E], error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	if len(leaves) > 1<<Depth {
		return nil, fmt.Errorf("%w: %d", ErrTooManyLeaves, len(leaves))
	}
	layers := make([][]E, Depth+1)
	layers[0] = append([]E(nil), leaves...)
	for level := 0; level < Depth; level++ {
		current := layers[level]
		next := make([]E, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 < len(current) {
				next[i/2] = scheme.Pair(current[i], current[i+1])
			} else {
				next[i/2] = scheme.Pair(current[i], scheme.Zero)
			}
		}
		layers[level+1] = next
	}
	return &Tree[E]{scheme: scheme, layers: layers}, nil
}

// Root returns the depth-20 root.
func (t *Tree[E]) Root() E {
	return t.layers[Depth][0]
}

// NumLeaves returns the number of leaves the tree was built from.
func (t *Tree[E]) NumLeaves() int {
	return len(t.layers[0])
}

// Proof extracts the authentication path for the leaf at index. Absent
// siblings are the zero element; the flag at each level is the complement
// of "index is even at this level".
func (t *Tree[E]) Proof(index int) (Proof[E], error) {
	var p Proof[E]
	if index < 0 || index >= len(t.layers[0]) {
		return p, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(t.layers[0]))
	}
	idx := index
	for level := 0; level < Depth; level++ {
		layer := t.layers[level]
		sibling := idx ^ 1
		if sibling < len(layer) {
			p.Siblings[level] = layer[sibling]
		} else {
			p.Siblings[level] = t.scheme.Zero
		}
		p.Flags[level] = idx%2 == 1
		idx /= 2
	}
	return p, nil
}

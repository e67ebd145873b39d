package lib

import (
	"math/bits"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// HashTree hashes an ordered list of leaves into a single root under a
// recipe. Levels with an odd node count are balanced by inserting a
// synthetic sibling that is the recipe hash of an endpoint node: prepended
// hash-of-last when the level is even, appended hash-of-first when the level
// is odd. The synthetic sibling is indistinguishable in-band from a real
// node, which makes the tree asymmetric but fully deterministic.
type HashTree struct {
	Nodes  [][]byte
	Recipe *Recipe

	root        []byte
	lastElapsed time.Duration
}

func NewHashTree(recipe *Recipe) *HashTree {
	return &HashTree{Recipe: recipe}
}

// AddNode appends a leaf. The tree takes ownership of the slice.
func (tree *HashTree) AddNode(leaf []byte) {
	tree.Nodes = append(tree.Nodes, leaf)
}

// Root returns the root computed by the last ComputeRoot call, or nil when
// none has been computed.
func (tree *HashTree) Root() []byte {
	return tree.root
}

// LastElapsed reports the wall-clock duration of the last ComputeRoot call.
// It is informational only; the root itself is independent of time.
func (tree *HashTree) LastElapsed() time.Duration {
	return tree.lastElapsed
}

// ComputeRoot collapses the leaves into the root. With zero leaves the root
// stays absent; with one leaf the root is the recipe hash of that leaf.
func (tree *HashTree) ComputeRoot() error {
	started := time.Now()
	defer func() {
		tree.lastElapsed = time.Since(started)
	}()

	tree.root = nil
	if len(tree.Nodes) == 0 {
		return nil
	}
	if tree.Recipe == nil {
		return errors.Wrapf(ErrorInvalidConfig, "HashTree.ComputeRoot: no recipe set")
	}

	nodes := make([][]byte, len(tree.Nodes))
	copy(nodes, tree.Nodes)

	// level = ceil(log2(n)); the parity of the level decides the balance
	// side as the tree collapses.
	level := bits.Len(uint(len(nodes) - 1))

	for len(nodes) > 1 {
		for ii, node := range nodes {
			hashed, err := tree.Recipe.ComputeHash(node)
			if err != nil {
				return errors.Wrapf(err, "HashTree.ComputeRoot: hashing node %d at level %d: ", ii, level)
			}
			nodes[ii] = hashed
		}

		if len(nodes)%2 == 1 {
			if level%2 == 0 {
				sibling, err := tree.Recipe.ComputeHash(nodes[len(nodes)-1])
				if err != nil {
					return errors.Wrapf(err, "HashTree.ComputeRoot: left balance at level %d: ", level)
				}
				nodes = append([][]byte{sibling}, nodes...)
			} else {
				sibling, err := tree.Recipe.ComputeHash(nodes[0])
				if err != nil {
					return errors.Wrapf(err, "HashTree.ComputeRoot: right balance at level %d: ", level)
				}
				nodes = append(nodes, sibling)
			}
			glog.V(2).Infof("HashTree.ComputeRoot: balanced level %d to %d nodes", level, len(nodes))
		}

		paired := make([][]byte, 0, len(nodes)/2)
		for ii := 0; ii < len(nodes); ii += 2 {
			concat := make([]byte, 0, len(nodes[ii])+len(nodes[ii+1]))
			concat = append(concat, nodes[ii]...)
			concat = append(concat, nodes[ii+1]...)
			paired = append(paired, concat)
		}
		nodes = paired
		level--
	}

	root, err := tree.Recipe.ComputeHash(nodes[0])
	if err != nil {
		return errors.Wrapf(err, "HashTree.ComputeRoot: hashing root: ")
	}
	tree.root = root

	glog.V(1).Infof("HashTree.ComputeRoot: %d leaves -> %d-byte root in %v",
		len(tree.Nodes), len(tree.root), time.Since(started))
	return nil
}

// Package hashtree indexes the candidate itemsets of one mining round so the
// candidates supported by a transaction can be found without testing every
// candidate against it.
//
// A tree is a trie over the sorted candidates. Candidates sharing a sorted
// prefix share the internal nodes spelling that prefix and every complete
// path ends in a leaf holding the support count of that candidate. All the
// candidates in one tree have the same size.
package hashtree

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/itemset"
)

// node is either a leaf (count is meaningful) or internal (kids is).
type node struct {
	leaf  bool
	count int
	kids  map[itemset.Item]*node
}

func internal() *node {
	return &node{kids: make(map[itemset.Item]*node)}
}

type Tree struct {
	root   *node
	level  int
	leaves int
}

// Build a tree over the given candidates. Candidates must all be non-empty
// and of the same size. Repeated candidates share a single leaf.
func Build(candidates []itemset.Itemset) (*Tree, error) {
	t := &Tree{root: internal()}
	for _, c := range candidates {
		if err := t.add(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Tree) add(c itemset.Itemset) error {
	if len(c) == 0 {
		return errors.Errorf("cannot index the empty itemset")
	}
	if t.level == 0 {
		t.level = len(c)
	} else if len(c) != t.level {
		return errors.Errorf("candidate %v has size %d but the tree holds size %d candidates", c, len(c), t.level)
	}
	n := t.root
	for _, item := range c.Prefix() {
		kid, has := n.kids[item]
		if !has {
			kid = internal()
			n.kids[item] = kid
		}
		n = kid
	}
	if _, has := n.kids[c.Last()]; !has {
		n.kids[c.Last()] = &node{leaf: true}
		t.leaves++
	}
	return nil
}

// Level is the size of the candidates in the tree (0 when empty).
func (t *Tree) Level() int {
	return t.level
}

// Candidates is the number of distinct candidates indexed.
func (t *Tree) Candidates() int {
	return t.leaves
}

type frame struct {
	n     *node
	depth int
	start int
}

// Increment adds one to the count of every candidate contained in tx. Every
// sorted size k selection of the transaction's items is matched against the
// tree, each leaf is reached at most once per call. A transaction which is
// out of order or repeats items is normalized first.
func (t *Tree) Increment(tx itemset.Transaction) {
	if t.level == 0 {
		return
	}
	if !tx.Normalized() {
		tx = itemset.New(tx...)
	}
	if len(tx) < t.level {
		return
	}
	stack := make([]frame, 0, t.level*2)
	stack = append(stack, frame{n: t.root, depth: 0, start: 0})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// a kid at depth d+1 still needs level-(d+1) items after it
		end := len(tx) - (t.level - f.depth - 1)
		for i := f.start; i < end; i++ {
			kid, has := f.n.kids[tx[i]]
			if !has {
				continue
			}
			if kid.leaf {
				kid.count++
			} else {
				stack = append(stack, frame{n: kid, depth: f.depth + 1, start: i + 1})
			}
		}
	}
}

// Count looks up the support count of a candidate. has is false when the
// itemset is not a candidate in this tree. Looking up a proper prefix of a
// candidate is a bug in the caller and panics.
func (t *Tree) Count(items itemset.Itemset) (count int, has bool) {
	leaf := t.find(items)
	if leaf == nil {
		return 0, false
	}
	return leaf.count, true
}

func (t *Tree) find(items itemset.Itemset) *node {
	if len(items) == 0 {
		return nil
	}
	n := t.root
	for _, item := range items {
		if n.leaf {
			return nil
		}
		kid, has := n.kids[item]
		if !has {
			return nil
		}
		n = kid
	}
	if !n.leaf {
		panic(errors.Errorf("%v ends at an internal node of a level %d tree", items, t.level))
	}
	return n
}

// Do calls do on every candidate with its current count in sorted order of
// the candidates.
func (t *Tree) Do(do func(items itemset.Itemset, count int) error) error {
	return t.walk(t.root, make(itemset.Itemset, 0, t.level), do)
}

func (t *Tree) walk(n *node, path itemset.Itemset, do func(itemset.Itemset, int) error) error {
	for _, item := range sortedKeys(n.kids) {
		kid := n.kids[item]
		p := append(path, item)
		if kid.leaf {
			c := make(itemset.Itemset, len(p))
			copy(c, p)
			if err := do(c, kid.count); err != nil {
				return err
			}
		} else if err := t.walk(kid, p, do); err != nil {
			return err
		}
	}
	return nil
}

// Merge adds the counts of other into t. Both trees must index exactly the
// same candidates, as when the transactions are partitioned and each part is
// counted into its own tree.
func (t *Tree) Merge(other *Tree) error {
	if t.level != other.level || t.leaves != other.leaves {
		return errors.Errorf("cannot merge %v into %v", other, t)
	}
	return other.Do(func(items itemset.Itemset, count int) error {
		leaf := t.find(items)
		if leaf == nil {
			return errors.Errorf("candidate %v missing from %v", items, t)
		}
		leaf.count += count
		return nil
	})
}

func (t *Tree) String() string {
	return fmt.Sprintf("<HashTree level %d, %d candidates>", t.level, t.leaves)
}

func sortedKeys(kids map[itemset.Item]*node) []itemset.Item {
	keys := make([]itemset.Item, 0, len(kids))
	for item := range kids {
		keys = append(keys, item)
	}
	return itemset.New(keys...)
}

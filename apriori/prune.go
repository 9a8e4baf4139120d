package apriori

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/hashtree"
	"github.com/timtadh/apriori/itemset"
	"github.com/timtadh/apriori/transactions"
)

// Frequent is an itemset which survived pruning along with its support.
type Frequent struct {
	Items   itemset.Itemset
	Support int
}

func (f *Frequent) String() string {
	return fmt.Sprintf("<Frequent %v %d>", f.Items, f.Support)
}

// Comparison decides if a support count clears the support threshold.
type Comparison int

const (
	// AtLeast keeps count >= threshold. This is the usual minimum support.
	AtLeast Comparison = iota
	// MoreThan keeps count > threshold.
	MoreThan
)

func (c Comparison) Satisfied(count, threshold int) bool {
	switch c {
	case AtLeast:
		return count >= threshold
	case MoreThan:
		return count > threshold
	}
	panic(errors.Errorf("unknown comparison %d", c))
}

func (c Comparison) String() string {
	switch c {
	case AtLeast:
		return ">="
	case MoreThan:
		return ">"
	}
	return fmt.Sprintf("Comparison(%d)", int(c))
}

// Count streams every transaction in src through the tree once.
func Count(src transactions.Source, tree *hashtree.Tree) error {
	return src.Scan(func(tx itemset.Transaction) error {
		tree.Increment(tx)
		return nil
	})
}

// Prune keeps the candidates whose count in tree satisfies cmp against
// threshold. The candidates must be the ones the tree was built from.
func Prune(tree *hashtree.Tree, candidates []itemset.Itemset, threshold int, cmp Comparison) []*Frequent {
	survivors := make([]*Frequent, 0, len(candidates)/2+1)
	for _, c := range candidates {
		count, has := tree.Count(c)
		if !has {
			panic(errors.Errorf("candidate %v is not in %v", c, tree))
		}
		if cmp.Satisfied(count, threshold) {
			survivors = append(survivors, &Frequent{Items: c, Support: count})
		}
	}
	return survivors
}

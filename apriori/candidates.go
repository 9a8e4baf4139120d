package apriori

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/timtadh/apriori/itemset"
	"github.com/timtadh/apriori/transactions"
)

// Singletons are the first round candidates: one per distinct item
// appearing anywhere in the log.
func Singletons(src transactions.Source) ([]itemset.Itemset, error) {
	items := set.NewSortedSet(100)
	err := src.Scan(func(tx itemset.Transaction) error {
		for _, item := range tx {
			if err := items.Add(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	candidates := make([]itemset.Itemset, 0, items.Size())
	for i, next := items.Items()(); next != nil; i, next = next() {
		candidates = append(candidates, itemset.Itemset{i.(itemset.Item)})
	}
	return candidates, nil
}

// Generate joins the size k frequent itemsets into size k+1 candidates. Two
// itemsets join when they agree on everything but their last item. The
// candidates are not checked for infrequent subsets, counting weeds them out.
func Generate(frequent []itemset.Itemset) []itemset.Itemset {
	groups := make(map[string][]itemset.Itemset)
	order := make([]string, 0, len(frequent))
	for _, f := range frequent {
		if len(f) == 0 {
			continue
		}
		key := string(f.Prefix().Label())
		if _, has := groups[key]; !has {
			order = append(order, key)
		}
		groups[key] = append(groups[key], f)
	}
	candidates := set.NewSortedSet(len(frequent))
	for _, key := range order {
		group := groups[key]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				if a.Last() == b.Last() {
					continue
				}
				if err := candidates.Add(a.Union(b)); err != nil {
					panic(errors.Errorf("adding candidate %v: %v", a.Union(b), err))
				}
			}
		}
	}
	next := make([]itemset.Itemset, 0, candidates.Size())
	for c, n := candidates.Items()(); n != nil; c, n = n() {
		next = append(next, c.(itemset.Itemset))
	}
	return next
}

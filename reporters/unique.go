package reporters

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/apriori/apriori"
)

// Unique drops itemsets it has already passed along. Rules are not filtered.
type Unique struct {
	Seen     *set.SortedSet
	Reporter apriori.Reporter
}

func NewUnique(reporter apriori.Reporter) *Unique {
	return &Unique{
		Seen:     set.NewSortedSet(10),
		Reporter: reporter,
	}
}

func (r *Unique) ReportItemset(f *apriori.Frequent) error {
	label := types.ByteSlice(f.Items.Label())
	if r.Seen.Has(label) {
		return nil
	}
	if err := r.Seen.Add(label); err != nil {
		return err
	}
	return r.Reporter.ReportItemset(f)
}

func (r *Unique) ReportRule(rule *apriori.Rule) error {
	return r.Reporter.ReportRule(rule)
}

func (r *Unique) Close() error {
	return r.Reporter.Close()
}

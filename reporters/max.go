package reporters

import (
	"github.com/timtadh/apriori/apriori"
)

// Max only passes along the maximal frequent itemsets, those with no
// frequent superset. It must see every itemset first, so itemsets reach the
// inner reporter on Close. Rules pass straight through.
type Max struct {
	Reporter apriori.Reporter
	itemsets []*apriori.Frequent
}

func NewMax(reporter apriori.Reporter) (*Max, error) {
	m := &Max{
		Reporter: reporter,
	}
	return m, nil
}

func (r *Max) ReportItemset(f *apriori.Frequent) error {
	r.itemsets = append(r.itemsets, f)
	return nil
}

func (r *Max) ReportRule(rule *apriori.Rule) error {
	return r.Reporter.ReportRule(rule)
}

func (r *Max) maximal(f *apriori.Frequent) bool {
	for _, o := range r.itemsets {
		if o.Items.Size() > f.Items.Size() && o.Items.Contains(f.Items) {
			return false
		}
	}
	return true
}

func (r *Max) Close() error {
	for _, f := range r.itemsets {
		if r.maximal(f) {
			if err := r.Reporter.ReportItemset(f); err != nil {
				return err
			}
		}
	}
	return r.Reporter.Close()
}

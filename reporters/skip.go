package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/apriori"
)

// Skip passes along every Skip-th itemset and every Skip-th rule.
type Skip struct {
	Skip     int
	Reporter apriori.Reporter
	itemsets int
	rules    int
}

func NewSkip(n int, rptr apriori.Reporter) (*Skip, error) {
	if n <= 0 {
		return nil, errors.Errorf("skip must pass every n-th result for n > 0, got %d", n)
	}
	return &Skip{
		Skip:     n,
		Reporter: rptr,
	}, nil
}

func (r *Skip) ReportItemset(f *apriori.Frequent) error {
	r.itemsets++
	if r.itemsets%r.Skip == 0 {
		return r.Reporter.ReportItemset(f)
	}
	return nil
}

func (r *Skip) ReportRule(rule *apriori.Rule) error {
	r.rules++
	if r.rules%r.Skip == 0 {
		return r.Reporter.ReportRule(rule)
	}
	return nil
}

func (r *Skip) Close() error {
	return r.Reporter.Close()
}

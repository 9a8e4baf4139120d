package reporters

import (
	"github.com/timtadh/apriori/apriori"
)

type Collector struct {
	Itemsets []*apriori.Frequent
	Rules    []*apriori.Rule
}

func (c *Collector) ReportItemset(f *apriori.Frequent) error {
	c.Itemsets = append(c.Itemsets, f)
	return nil
}

func (c *Collector) ReportRule(r *apriori.Rule) error {
	c.Rules = append(c.Rules, r)
	return nil
}

func (c *Collector) Close() error {
	return nil
}

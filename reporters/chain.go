package reporters

import (
	"github.com/timtadh/apriori/apriori"
)

type Chain struct {
	Reporters []apriori.Reporter
}

func (r *Chain) ReportItemset(f *apriori.Frequent) error {
	for _, rpt := range r.Reporters {
		err := rpt.ReportItemset(f)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) ReportRule(rule *apriori.Rule) error {
	for _, rpt := range r.Reporters {
		err := rpt.ReportRule(rule)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

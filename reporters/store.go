package reporters

import (
	"github.com/timtadh/apriori/apriori"
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/stores/itemset_int"
)

// Store saves every itemset and its support in a B+Tree in the output
// directory (see cmd/list-itemsets). Rules are not stored.
type Store struct {
	Supports itemset_int.MultiMap
}

func NewStore(c *config.Config, name string) (*Store, error) {
	m, err := c.SupportMultiMap(name)
	if err != nil {
		return nil, err
	}
	return &Store{Supports: m}, nil
}

func (r *Store) ReportItemset(f *apriori.Frequent) error {
	return r.Supports.Add(f.Items, int32(f.Support))
}

func (r *Store) ReportRule(rule *apriori.Rule) error {
	return nil
}

func (r *Store) Close() error {
	return r.Supports.Close()
}

package apriori

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/hashtree"
	"github.com/timtadh/apriori/itemset"
	"github.com/timtadh/apriori/transactions"
)

// Reporter receives the results of a run. Close is called by whoever
// created the reporter.
type Reporter interface {
	ReportItemset(*Frequent) error
	ReportRule(*Rule) error
	Close() error
}

type state int

const (
	seed state = iota
	generate
	count
	prune
	check
	done
)

var stateNames = []string{"seed", "generate", "count", "prune", "check", "done"}

func (s state) String() string {
	return stateNames[s]
}

type Miner struct {
	Config *config.Config
	rounds int
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{Config: conf}
}

func (m *Miner) comparison() Comparison {
	if m.Config.Strict {
		return MoreThan
	}
	return AtLeast
}

// Rounds is the number of counting rounds completed by the last run.
func (m *Miner) Rounds() int {
	return m.rounds
}

// Itemsets finds every frequent itemset in src. The source is scanned once
// to seed the singletons and once per round. Rounds stop when nothing
// survives pruning, when no candidate can be generated, or at
// Config.MaxSize. If any scan fails nothing is returned.
func (m *Miner) Itemsets(src transactions.Source) ([]*Frequent, error) {
	if err := m.Config.Validate(); err != nil {
		return nil, err
	}
	m.rounds = 0
	cmp := m.comparison()
	var (
		k          int
		candidates []itemset.Itemset
		tree       *hashtree.Tree
		survivors  []*Frequent
		frequent   = make([]*Frequent, 0, 100)
		err        error
	)
	for s := seed; s != done; {
		errors.Logf("DEBUG", "level %d: %v", k, s)
		switch s {
		case seed:
			k = 1
			candidates, err = Singletons(src)
			if err != nil {
				return nil, errors.Errorf("seeding singletons: %v", err)
			}
			if len(candidates) == 0 {
				s = done
			} else {
				s = count
			}
		case generate:
			next := Generate(itemsets(survivors))
			if len(next) == 0 {
				s = done
			} else {
				k++
				candidates = next
				s = count
			}
		case count:
			tree, err = hashtree.Build(candidates)
			if err != nil {
				return nil, err
			}
			if err := Count(src, tree); err != nil {
				return nil, errors.Errorf("round %d: counting %d candidates: %v", k, len(candidates), err)
			}
			s = prune
		case prune:
			survivors = Prune(tree, candidates, m.Config.Support, cmp)
			tree = nil
			m.rounds++
			errors.Logf("INFO", "level %d: %d candidates, %d frequent (support %v %d)",
				k, len(candidates), len(survivors), cmp, m.Config.Support)
			s = check
		case check:
			frequent = append(frequent, survivors...)
			if len(survivors) == 0 || (m.Config.MaxSize > 0 && k >= m.Config.MaxSize) {
				s = done
			} else {
				s = generate
			}
		}
	}
	return frequent, nil
}

// Mine finds the frequent itemsets and the rules derived from them and
// reports both, itemsets first.
func (m *Miner) Mine(src transactions.Source, rptr Reporter) error {
	frequent, err := m.Itemsets(src)
	if err != nil {
		return err
	}
	for _, f := range frequent {
		if err := rptr.ReportItemset(f); err != nil {
			return err
		}
	}
	rules, undefined := GenerateRules(frequent, m.Config.Confidence)
	for _, u := range undefined {
		errors.Logf("WARN", "skipped rule: %v", u)
	}
	for _, r := range rules {
		if err := rptr.ReportRule(r); err != nil {
			return err
		}
	}
	errors.Logf("INFO", "%d frequent itemsets, %d rules with confidence > %g%%", len(frequent), len(rules), m.Config.Confidence)
	return nil
}

func itemsets(frequent []*Frequent) []itemset.Itemset {
	sets := make([]itemset.Itemset, 0, len(frequent))
	for _, f := range frequent {
		sets = append(sets, f.Items)
	}
	return sets
}

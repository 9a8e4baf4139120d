package apriori

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
)

import (
	"github.com/timtadh/apriori/itemset"
)

// Rule is antecedent => consequent. Confidence is the percentage of the
// transactions containing the antecedent which also contain the consequent.
type Rule struct {
	Antecedent itemset.Itemset
	Consequent itemset.Item
	// Support of the antecedent plus the consequent.
	Support    int
	Confidence float64
}

func (r *Rule) String() string {
	return fmt.Sprintf("<Rule %v => %d (support %d, confidence %.2f%%)>", r.Antecedent, r.Consequent, r.Support, r.Confidence)
}

// UndefinedConfidence is a split of a frequent itemset for which no
// confidence can be computed.
type UndefinedConfidence struct {
	Antecedent itemset.Itemset
	Consequent itemset.Item
	Reason     string
}

func (u *UndefinedConfidence) Error() string {
	return fmt.Sprintf("confidence of %v => %d is undefined: %s", u.Antecedent, u.Consequent, u.Reason)
}

// GenerateRules derives every rule with a single item consequent from the
// frequent itemsets whose confidence is strictly greater than confidence
// (a percentage). Every item of an itemset of size >= 2 is tried once as the
// consequent. Splits whose antecedent support is unknown, zero, or smaller
// than the itemset's own support are returned as undefined and skipped.
func GenerateRules(frequent []*Frequent, confidence float64) (rules []*Rule, undefined []*UndefinedConfidence) {
	supports := hashtable.NewLinearHash()
	for _, f := range frequent {
		if err := supports.Put(f.Items, f.Support); err != nil {
			panic(errors.Errorf("indexing the support of %v: %v", f.Items, err))
		}
	}
	rules = make([]*Rule, 0, len(frequent))
	for _, f := range frequent {
		if f.Items.Size() < 2 {
			continue
		}
		for _, consequent := range f.Items {
			antecedent := f.Items.Without(consequent)
			skip := func(reason string) {
				undefined = append(undefined, &UndefinedConfidence{
					Antecedent: antecedent,
					Consequent: consequent,
					Reason:     reason,
				})
			}
			if !supports.Has(antecedent) {
				skip("antecedent support unknown")
				continue
			}
			v, err := supports.Get(antecedent)
			if err != nil {
				skip(err.Error())
				continue
			}
			support := v.(int)
			if support == 0 {
				skip("antecedent support is zero")
				continue
			} else if support < f.Support {
				skip(fmt.Sprintf("antecedent support %d < itemset support %d", support, f.Support))
				continue
			}
			conf := 100 * float64(f.Support) / float64(support)
			if conf > confidence {
				rules = append(rules, &Rule{
					Antecedent: antecedent,
					Consequent: consequent,
					Support:    f.Support,
					Confidence: conf,
				})
			}
		}
	}
	return rules, undefined
}

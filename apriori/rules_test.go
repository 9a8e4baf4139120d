package apriori

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/itemset"
)

var example = []*Frequent{
	{Items: itemset.New(1), Support: 3},
	{Items: itemset.New(2), Support: 3},
	{Items: itemset.New(3), Support: 3},
	{Items: itemset.New(1, 2), Support: 2},
	{Items: itemset.New(1, 3), Support: 2},
	{Items: itemset.New(2, 3), Support: 2},
}

func TestRulesExample(x *testing.T) {
	t := assert.New(x)
	rules, undefined := GenerateRules(example, 50)
	t.Equal(0, len(undefined))
	t.Equal(6, len(rules))
	first := rules[0]
	t.Equal(itemset.New(2), first.Antecedent)
	t.Equal(itemset.Item(1), first.Consequent)
	t.InDelta(200.0/3.0, first.Confidence, 1e-9)

	rules, _ = GenerateRules(example, 70)
	t.Equal(0, len(rules))
}

func TestRulesThresholdIsStrict(x *testing.T) {
	t := assert.New(x)
	frequent := []*Frequent{
		{Items: itemset.New(1), Support: 4},
		{Items: itemset.New(2), Support: 2},
		{Items: itemset.New(1, 2), Support: 2},
	}
	rules, _ := GenerateRules(frequent, 50)
	// {1} => 2 is exactly 50% and is dropped, {2} => 1 is 100%
	t.Equal(1, len(rules))
	t.Equal(itemset.New(2), rules[0].Antecedent)
	t.Equal(100.0, rules[0].Confidence)
}

func TestRulesLargerItemsets(x *testing.T) {
	t := assert.New(x)
	frequent := []*Frequent{
		{Items: itemset.New(1, 2), Support: 4},
		{Items: itemset.New(1, 3), Support: 5},
		{Items: itemset.New(2, 3), Support: 8},
		{Items: itemset.New(1, 2, 3), Support: 4},
	}
	rules, undefined := GenerateRules(frequent, 0)
	bySplit := make(map[string]float64)
	for _, r := range rules {
		if r.Antecedent.Size() == 2 {
			bySplit[r.Antecedent.String()] = r.Confidence
		}
	}
	t.Equal(map[string]float64{"{1, 2}": 100, "{1, 3}": 80, "{2, 3}": 50}, bySplit)
	// the pairs have no singleton supports to divide by
	t.Equal(6, len(undefined))
}

func TestRulesUndefined(x *testing.T) {
	t := assert.New(x)
	frequent := []*Frequent{
		{Items: itemset.New(1), Support: 0},
		{Items: itemset.New(2), Support: 1},
		{Items: itemset.New(1, 2), Support: 3},
	}
	rules, undefined := GenerateRules(frequent, 0)
	t.Equal(0, len(rules))
	t.Equal(2, len(undefined))
	t.Equal(itemset.New(2), undefined[0].Antecedent)
	t.Contains(undefined[0].Reason, "antecedent support 1 < itemset support 3")
	t.Contains(undefined[0].Error(), "{2} => 1")
	t.Equal(itemset.New(1), undefined[1].Antecedent)
	t.Contains(undefined[1].Reason, "zero")
}

func TestRulesConfidenceRange(x *testing.T) {
	t := assert.New(x)
	for seed := int64(1); seed <= 3; seed++ {
		m := NewMiner(&config.Config{Support: 10})
		frequent, err := m.Itemsets(random(seed))
		t.Nil(err)
		rules, undefined := GenerateRules(frequent, 0)
		t.Equal(0, len(undefined))
		t.True(len(rules) > 0)
		for _, r := range rules {
			t.True(r.Confidence > 0 && r.Confidence <= 100, "%v", r)
		}
	}
}

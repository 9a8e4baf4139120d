package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/apriori"
)

type Log struct {
	fmtr     *Formatter
	level    string
	prefix   string
	itemsets int
	rules    int
}

func NewLog(fmtr *Formatter, level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{fmtr: fmtr, level: level, prefix: prefix}
}

func (lr *Log) ReportItemset(f *apriori.Frequent) error {
	lr.itemsets++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s itemset %v %v", lr.prefix, lr.itemsets, lr.fmtr.FormatItemset(f))
	} else {
		errors.Logf(lr.level, "itemset %v %v", lr.itemsets, lr.fmtr.FormatItemset(f))
	}
	return nil
}

func (lr *Log) ReportRule(r *apriori.Rule) error {
	lr.rules++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s rule %v %v", lr.prefix, lr.rules, lr.fmtr.FormatRule(r))
	} else {
		errors.Logf(lr.level, "rule %v %v", lr.rules, lr.fmtr.FormatRule(r))
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}

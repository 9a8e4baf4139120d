package reporters

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/apriori"
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/stats"
)

// Count writes the number of itemsets and rules reported, per itemset size,
// to a file in the output directory when closed. A summary of the supports
// and confidences is logged.
type Count struct {
	config      *config.Config
	filename    string
	Levels      []int
	Rules       int
	supports    [][]float64
	confidences []float64
}

func NewCount(c *config.Config, filename string) (*Count, error) {
	r := &Count{
		config:   c,
		filename: filename,
	}
	return r, nil
}

func (r *Count) ReportItemset(f *apriori.Frequent) error {
	for len(r.Levels) < f.Items.Size() {
		r.Levels = append(r.Levels, 0)
		r.supports = append(r.supports, nil)
	}
	level := f.Items.Size() - 1
	r.Levels[level]++
	r.supports[level] = append(r.supports[level], float64(f.Support))
	return nil
}

func (r *Count) ReportRule(rule *apriori.Rule) error {
	r.Rules++
	r.confidences = append(r.confidences, rule.Confidence)
	return nil
}

func (r *Count) Close() error {
	for i, supports := range r.supports {
		errors.Logf("INFO", "size %d support: %v", i+1, stats.Summarize(supports))
	}
	errors.Logf("INFO", "rule confidence: %v", stats.Summarize(r.confidences))
	f, err := os.Create(r.config.OutputFile(r.filename))
	if err != nil {
		return err
	}
	var perr error
	for i, count := range r.Levels {
		if _, perr = fmt.Fprintf(f, "size %d: %d\n", i+1, count); perr != nil {
			break
		}
	}
	if perr == nil {
		_, perr = fmt.Fprintf(f, "rules: %d\n", r.Rules)
	}
	err = f.Close()
	if perr != nil {
		return perr
	}
	return err
}

package reporters

import (
	"io"
	"os"
)

import (
	"github.com/timtadh/apriori/apriori"
	"github.com/timtadh/apriori/config"
)

type File struct {
	config   *config.Config
	fmt      *Formatter
	itemsets io.WriteCloser
	rules    io.WriteCloser
}

func NewFile(c *config.Config, fmt *Formatter, itemsetsFilename, rulesFilename string) (*File, error) {
	itemsets, err := os.Create(c.OutputFile(itemsetsFilename + fmt.FileExt()))
	if err != nil {
		return nil, err
	}
	rules, err := os.Create(c.OutputFile(rulesFilename + ".rules"))
	if err != nil {
		itemsets.Close()
		return nil, err
	}
	r := &File{
		config:   c,
		fmt:      fmt,
		itemsets: itemsets,
		rules:    rules,
	}
	return r, nil
}

func (r *File) ReportItemset(f *apriori.Frequent) error {
	return r.fmt.WriteItemset(r.itemsets, f)
}

func (r *File) ReportRule(rule *apriori.Rule) error {
	return r.fmt.WriteRule(r.rules, rule)
}

func (r *File) Close() error {
	err := r.itemsets.Close()
	if err != nil {
		return err
	}
	return r.rules.Close()
}

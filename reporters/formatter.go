package reporters

import (
	"fmt"
	"io"
	"strings"
)

import (
	"github.com/timtadh/apriori/apriori"
	"github.com/timtadh/apriori/transactions"
)

// Formatter renders results, resolving item ids through Dictionary when one
// was loaded.
type Formatter struct {
	Dictionary transactions.Dictionary
}

func (f *Formatter) FileExt() string {
	return ".items"
}

func (f *Formatter) items(n []string) string {
	return "{" + strings.Join(n, ", ") + "}"
}

func (f *Formatter) FormatItemset(s *apriori.Frequent) string {
	return fmt.Sprintf("%s %d", f.items(f.Dictionary.Labels(s.Items)), s.Support)
}

func (f *Formatter) FormatRule(r *apriori.Rule) string {
	return fmt.Sprintf("%s => %s (support %d, confidence %.2f%%)",
		f.items(f.Dictionary.Labels(r.Antecedent)), f.Dictionary.Label(r.Consequent), r.Support, r.Confidence)
}

func (f *Formatter) WriteItemset(w io.Writer, s *apriori.Frequent) error {
	_, err := fmt.Fprintln(w, f.FormatItemset(s))
	return err
}

func (f *Formatter) WriteRule(w io.Writer, r *apriori.Rule) error {
	_, err := fmt.Fprintln(w, f.FormatRule(r))
	return err
}

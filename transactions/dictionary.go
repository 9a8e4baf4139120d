package transactions

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/itemset"
)

// Dictionary maps item ids to human readable labels.
type Dictionary map[itemset.Item]string

// LoadDictionary reads "id::label[::rest...]" lines (the movielens
// movies.dat layout).
func LoadDictionary(input io.Reader) (Dictionary, error) {
	d := make(Dictionary)
	s := scanner(input)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		cols := strings.Split(text, "::")
		if len(cols) < 2 {
			return nil, errors.Errorf("line %d: expected 'id::label' got '%s'", line, text)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(cols[0]), 10, 32)
		if err != nil {
			return nil, errors.Errorf("line %d: item id '%s' is not an int32", line, cols[0])
		}
		d[itemset.Item(id)] = cols[1]
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d Dictionary) Label(item itemset.Item) string {
	if label, has := d[item]; has {
		return label
	}
	return fmt.Sprintf("%d", item)
}

func (d Dictionary) Labels(items itemset.Itemset) []string {
	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, d.Label(item))
	}
	return labels
}

package transactions

import (
	"bufio"
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

const maxLine = 16 * 1024 * 1024

func scanner(input io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(input)
	s.Buffer(make([]byte, 0, 64*1024), maxLine)
	return s
}

func parseItem(line int, col string) (itemset.Item, error) {
	item, err := strconv.ParseInt(strings.TrimSpace(col), 10, 32)
	if err != nil {
		return 0, errors.Errorf("line %d: item '%s' is not an int32", line, col)
	}
	return itemset.Item(item), nil
}

// Ratings reads "tx::item[::rest...]" records. Consecutive records with the
// same transaction id make up one transaction. Anything after the item id is
// ignored (ratings and timestamps in the movielens format). Separator
// defaults to "::".
type Ratings struct {
	Separator string
}

func (r Ratings) Parse(input io.Reader, do func(tx itemset.Transaction) error) error {
	sep := r.Separator
	if sep == "" {
		sep = "::"
	}
	s := scanner(input)
	line := 0
	started := false
	var cur int64
	items := make([]itemset.Item, 0, 10)
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		cols := strings.Split(text, sep)
		if len(cols) < 2 {
			return errors.Errorf("line %d: expected at least 2 '%s' separated fields got %d", line, sep, len(cols))
		}
		tx, err := strconv.ParseInt(strings.TrimSpace(cols[0]), 10, 64)
		if err != nil {
			return errors.Errorf("line %d: transaction id '%s' is not an int", line, cols[0])
		}
		item, err := parseItem(line, cols[1])
		if err != nil {
			return err
		}
		if started && tx != cur {
			if err := do(itemset.NewTransaction(items...)); err != nil {
				return err
			}
			items = items[:0]
		}
		started = true
		cur = tx
		items = append(items, item)
	}
	if err := s.Err(); err != nil {
		return err
	}
	if started {
		return do(itemset.NewTransaction(items...))
	}
	return nil
}

// Lines reads one transaction per line with whitespace separated integer
// items. A blank line is an empty transaction.
type Lines struct{}

func (Lines) Parse(input io.Reader, do func(tx itemset.Transaction) error) error {
	s := scanner(input)
	line := 0
	for s.Scan() {
		line++
		cols := strings.Fields(s.Text())
		items := make([]itemset.Item, 0, len(cols))
		for _, col := range cols {
			item, err := parseItem(line, col)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		if err := do(itemset.NewTransaction(items...)); err != nil {
			return err
		}
	}
	return s.Err()
}

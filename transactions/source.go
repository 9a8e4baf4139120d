package transactions

import (
	"io"
)

import (
	"github.com/timtadh/apriori/itemset"
)

// Source is a re-readable transaction log. Every call to Scan is a complete
// and independent pass starting at the first transaction. If do returns an
// error the pass stops and Scan returns that error.
type Source interface {
	Scan(do func(tx itemset.Transaction) error) error
}

// Input re-opens the underlying byte stream. The returned func closes it.
type Input func() (reader io.Reader, closer func(), err error)

type Parser interface {
	Parse(input io.Reader, do func(tx itemset.Transaction) error) error
}

// Slice is an in memory transaction log.
type Slice []itemset.Transaction

func (s Slice) Scan(do func(tx itemset.Transaction) error) error {
	for _, tx := range s {
		if err := do(tx); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the whole source into memory with a single pass.
func Load(src Source) (Slice, error) {
	txs := make(Slice, 0, 100)
	err := src.Scan(func(tx itemset.Transaction) error {
		txs = append(txs, tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}

type File struct {
	input  Input
	parser Parser
}

func NewFile(input Input, parser Parser) *File {
	return &File{
		input:  input,
		parser: parser,
	}
}

func (f *File) Scan(do func(tx itemset.Transaction) error) error {
	reader, closer, err := f.input()
	if err != nil {
		return err
	}
	defer closer()
	return f.parser.Parse(reader, do)
}

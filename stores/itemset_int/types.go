package itemset_int

import (
	"github.com/timtadh/apriori/itemset"
)

// MultiMap maps frequent itemsets to their support.
type MultiMap interface {
	Keys() (KeyIterator, error)
	Iterate() (Iterator, error)
	Find(key itemset.Itemset) (Iterator, error)
	Has(key itemset.Itemset) (bool, error)
	Count(key itemset.Itemset) (int, error)
	Add(key itemset.Itemset, value int32) error
	Remove(key itemset.Itemset, where func(int32) bool) error
	Size() int
	Close() error
	Delete() error
}

type Iterator func() (itemset.Itemset, int32, error, Iterator)
type KeyIterator func() (itemset.Itemset, error, KeyIterator)

func Do(run func() (Iterator, error), do func(key itemset.Itemset, value int32) error) error {
	kvi, err := run()
	if err != nil {
		return err
	}
	var key itemset.Itemset
	var value int32
	for key, value, err, kvi = kvi(); kvi != nil; key, value, err, kvi = kvi() {
		e := do(key, value)
		if e != nil {
			return e
		}
	}
	return err
}

func DoKey(run func() (KeyIterator, error), do func(itemset.Itemset) error) error {
	it, err := run()
	if err != nil {
		return err
	}
	var key itemset.Itemset
	for key, err, it = it(); it != nil; key, err, it = it() {
		e := do(key)
		if e != nil {
			return e
		}
	}
	return err
}

package itemset_int

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

import (
	"github.com/timtadh/apriori/itemset"
)

func fill(t *assert.Assertions, m MultiMap) {
	t.Nil(m.Add(itemset.New(1), 3))
	t.Nil(m.Add(itemset.New(2), 3))
	t.Nil(m.Add(itemset.New(1, 2), 2))
	t.Nil(m.Add(itemset.New(1, 2, 3), 1))
}

func TestAnonRoundTrip(x *testing.T) {
	t := assert.New(x)
	m, err := AnonBpTree()
	t.Nil(err)
	defer m.Delete()
	fill(t, m)
	t.Equal(4, m.Size())

	has, err := m.Has(itemset.New(2, 1))
	t.Nil(err)
	t.True(has)
	has, err = m.Has(itemset.New(3))
	t.Nil(err)
	t.False(has)

	found := make([]int32, 0, 1)
	t.Nil(Do(func() (Iterator, error) { return m.Find(itemset.New(1, 2)) }, func(k itemset.Itemset, v int32) error {
		t.Equal(itemset.New(1, 2), k)
		found = append(found, v)
		return nil
	}))
	t.Equal([]int32{2}, found)

	total := 0
	t.Nil(Do(m.Iterate, func(k itemset.Itemset, v int32) error {
		total += int(v)
		return nil
	}))
	t.Equal(9, total)

	keys := 0
	t.Nil(DoKey(m.Keys, func(k itemset.Itemset) error {
		keys++
		return nil
	}))
	t.Equal(4, keys)

	t.Nil(m.Remove(itemset.New(1, 2, 3), func(v int32) bool { return v == 1 }))
	has, err = m.Has(itemset.New(1, 2, 3))
	t.Nil(err)
	t.False(has)
}

func TestFileReopen(x *testing.T) {
	t := assert.New(x)
	dir, err := ioutil.TempDir("", "itemset_int")
	t.Nil(err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "support.bptree")

	m, err := NewBpTree(path)
	t.Nil(err)
	fill(t, m)
	t.Nil(m.Close())

	o, err := OpenBpTree(path)
	t.Nil(err)
	defer o.Close()
	t.Equal(4, o.Size())
	count, err := o.Count(itemset.New(1))
	t.Nil(err)
	t.Equal(1, count)
}

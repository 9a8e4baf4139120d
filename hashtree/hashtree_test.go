package hashtree

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"math/rand"
)

import (
	"github.com/timtadh/apriori/itemset"
)

var txs = []itemset.Transaction{
	itemset.New(0),
	itemset.New(1, 2, 3),
	itemset.New(1, 2, 3),
	itemset.New(2, 3, 4),
	itemset.New(7, 8, 9, 10),
	itemset.New(7, 8, 9, 11),
	itemset.New(1, 12),
	itemset.New(1, 8, 10),
	itemset.New(1, 9, 11),
	itemset.New(1, 2, 3, 4, 7, 8, 9, 10, 11, 12),
}

func bruteForce(txs []itemset.Transaction, c itemset.Itemset) int {
	count := 0
	for _, tx := range txs {
		if tx.Contains(c) {
			count++
		}
	}
	return count
}

// every size k subset of items
func combinations(items itemset.Itemset, k int) []itemset.Itemset {
	if k == 0 {
		return []itemset.Itemset{{}}
	}
	out := make([]itemset.Itemset, 0, 10)
	for i := range items {
		for _, rest := range combinations(items[i+1:], k-1) {
			out = append(out, itemset.New(append(itemset.Itemset{items[i]}, rest...)...))
		}
	}
	return out
}

func build(t *assert.Assertions, candidates []itemset.Itemset) *Tree {
	tree, err := Build(candidates)
	t.Nil(err)
	for _, tx := range txs {
		tree.Increment(tx)
	}
	return tree
}

func TestCountsMatchBruteForce(x *testing.T) {
	t := assert.New(x)
	items := itemset.New(0, 1, 2, 3, 4, 7, 8, 9, 10, 11, 12, 13)
	for k := 1; k <= 4; k++ {
		candidates := combinations(items, k)
		tree := build(t, candidates)
		t.Equal(k, tree.Level())
		t.Equal(len(candidates), tree.Candidates())
		for _, c := range candidates {
			count, has := tree.Count(c)
			t.True(has, "%v", c)
			t.Equal(bruteForce(txs, c), count, "%v", c)
		}
	}
}

func TestRandomCrossCheck(x *testing.T) {
	t := assert.New(x)
	r := rand.New(rand.NewSource(7))
	random := make([]itemset.Transaction, 0, 200)
	for i := 0; i < 200; i++ {
		items := make([]itemset.Item, 0, 8)
		for j := r.Intn(8); j > 0; j-- {
			items = append(items, itemset.Item(r.Intn(10)))
		}
		random = append(random, itemset.NewTransaction(items...))
	}
	candidates := combinations(itemset.New(0, 1, 2, 3, 4, 5, 6, 7, 8, 9), 3)
	tree, err := Build(candidates)
	t.Nil(err)
	for _, tx := range random {
		tree.Increment(tx)
	}
	for _, c := range candidates {
		count, _ := tree.Count(c)
		t.Equal(bruteForce(random, c), count, "%v", c)
	}
}

func TestSharedPrefixNoDoubleCount(x *testing.T) {
	t := assert.New(x)
	tree, err := Build([]itemset.Itemset{
		itemset.New(1, 2, 3),
		itemset.New(1, 2, 4),
		itemset.New(1, 3, 4),
		itemset.New(1, 2, 3),
	})
	t.Nil(err)
	t.Equal(3, tree.Candidates())
	tree.Increment(itemset.New(1, 2, 3, 4))
	for _, c := range []itemset.Itemset{itemset.New(1, 2, 3), itemset.New(1, 2, 4), itemset.New(1, 3, 4)} {
		count, has := tree.Count(c)
		t.True(has)
		t.Equal(1, count, "%v", c)
	}
}

func TestIncrementNormalizes(x *testing.T) {
	t := assert.New(x)
	tree, err := Build([]itemset.Itemset{
		itemset.New(1, 2),
		itemset.New(1, 3),
		itemset.New(2, 3),
		itemset.New(1, 4),
	})
	t.Nil(err)
	tree.Increment(itemset.Itemset{3, 1, 2, 1})
	tree.Increment(itemset.Itemset{1, 1})
	for _, c := range []itemset.Itemset{itemset.New(1, 2), itemset.New(1, 3), itemset.New(2, 3)} {
		count, _ := tree.Count(c)
		t.Equal(1, count, "%v", c)
	}
	count, _ := tree.Count(itemset.New(1, 4))
	t.Equal(0, count)
}

func TestCountingTwiceDoubles(x *testing.T) {
	t := assert.New(x)
	candidates := combinations(itemset.New(1, 2, 3, 4, 8, 9), 2)
	once := build(t, candidates)
	twice := build(t, candidates)
	for _, tx := range txs {
		twice.Increment(tx)
	}
	for _, c := range candidates {
		a, _ := once.Count(c)
		b, _ := twice.Count(c)
		t.Equal(2*a, b, "%v", c)
	}
}

func TestSmallTransactionsMatchNothing(x *testing.T) {
	t := assert.New(x)
	tree, err := Build([]itemset.Itemset{itemset.New(1, 2, 3)})
	t.Nil(err)
	tree.Increment(itemset.New(1, 2))
	tree.Increment(itemset.New())
	count, has := tree.Count(itemset.New(1, 2, 3))
	t.True(has)
	t.Equal(0, count)
}

func TestAbsent(x *testing.T) {
	t := assert.New(x)
	tree := build(t, []itemset.Itemset{itemset.New(1, 2), itemset.New(2, 3)})
	_, has := tree.Count(itemset.New(1, 3))
	t.False(has)
	_, has = tree.Count(itemset.New(5, 6))
	t.False(has)
	_, has = tree.Count(itemset.New(1, 2, 3))
	t.False(has)
	_, has = tree.Count(itemset.New())
	t.False(has)
}

func TestIncompletePathPanics(x *testing.T) {
	t := assert.New(x)
	tree := build(t, []itemset.Itemset{itemset.New(1, 2, 3)})
	t.Panics(func() {
		tree.Count(itemset.New(1, 2))
	})
}

func TestBuildErrors(x *testing.T) {
	t := assert.New(x)
	_, err := Build([]itemset.Itemset{itemset.New(1), itemset.New(1, 2)})
	t.NotNil(err)
	_, err = Build([]itemset.Itemset{itemset.New()})
	t.NotNil(err)
	tree, err := Build(nil)
	t.Nil(err)
	t.Equal(0, tree.Level())
	tree.Increment(itemset.New(1, 2))
}

func TestDo(x *testing.T) {
	t := assert.New(x)
	tree := build(t, []itemset.Itemset{itemset.New(2, 3), itemset.New(1, 3), itemset.New(1, 2)})
	seen := make([]itemset.Itemset, 0, 3)
	counts := make([]int, 0, 3)
	t.Nil(tree.Do(func(items itemset.Itemset, count int) error {
		seen = append(seen, items)
		counts = append(counts, count)
		return nil
	}))
	t.Equal([]itemset.Itemset{itemset.New(1, 2), itemset.New(1, 3), itemset.New(2, 3)}, seen)
	t.Equal([]int{3, 3, 4}, counts)
}

func TestMergeIsExactSum(x *testing.T) {
	t := assert.New(x)
	candidates := combinations(itemset.New(1, 2, 3, 4, 7, 8, 9), 2)
	whole := build(t, candidates)
	a, err := Build(candidates)
	t.Nil(err)
	b, err := Build(candidates)
	t.Nil(err)
	for i, tx := range txs {
		if i%2 == 0 {
			a.Increment(tx)
		} else {
			b.Increment(tx)
		}
	}
	t.Nil(a.Merge(b))
	for _, c := range candidates {
		expected, _ := whole.Count(c)
		got, _ := a.Count(c)
		t.Equal(expected, got, "%v", c)
	}
	other, err := Build([]itemset.Itemset{itemset.New(1, 2, 3)})
	t.Nil(err)
	t.NotNil(a.Merge(other))
}

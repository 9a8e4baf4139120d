package itemset

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/types"
)

// Item is an opaque item identifier. Nothing about its value is interpreted
// beyond ordering.
type Item int32

func (i Item) Equals(other types.Equatable) bool {
	if o, ok := other.(Item); ok {
		return i == o
	}
	return false
}

func (i Item) Less(other types.Sortable) bool {
	if o, ok := other.(Item); ok {
		return i < o
	}
	return false
}

func (i Item) Hash() int {
	return int(i)
}

// Itemset is a sorted set of distinct items. Every constructor in this
// package maintains that invariant; code building an Itemset literal by hand
// must do the same.
type Itemset []Item

// Transaction is the set of items bought (rated, seen...) together.
type Transaction = Itemset

func New(items ...Item) Itemset {
	s := make(Itemset, len(items))
	copy(s, items)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	j := 0
	for i := range s {
		if i > 0 && s[i] == s[j-1] {
			continue
		}
		s[j] = s[i]
		j++
	}
	return s[:j]
}

func NewTransaction(items ...Item) Transaction {
	return New(items...)
}

func FromSlice(items []int32) Itemset {
	s := make([]Item, 0, len(items))
	for _, item := range items {
		s = append(s, Item(item))
	}
	return New(s...)
}

// Normalized reports whether the items are strictly increasing, as every
// constructor leaves them.
func (s Itemset) Normalized() bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

func (s Itemset) Size() int {
	return len(s)
}

func (s Itemset) Has(item Item) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= item })
	return i < len(s) && s[i] == item
}

// Contains reports whether every item of o is in s.
func (s Itemset) Contains(o Itemset) bool {
	i := 0
	for _, item := range o {
		for i < len(s) && s[i] < item {
			i++
		}
		if i >= len(s) || s[i] != item {
			return false
		}
		i++
	}
	return true
}

func (s Itemset) Without(item Item) Itemset {
	n := make(Itemset, 0, len(s))
	for _, x := range s {
		if x != item {
			n = append(n, x)
		}
	}
	return n
}

func (s Itemset) Union(o Itemset) Itemset {
	n := make(Itemset, 0, len(s)+len(o))
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] < o[j]:
			n = append(n, s[i])
			i++
		case o[j] < s[i]:
			n = append(n, o[j])
			j++
		default:
			n = append(n, s[i])
			i++
			j++
		}
	}
	n = append(n, s[i:]...)
	n = append(n, o[j:]...)
	return n
}

// Prefix is every item but the last one.
func (s Itemset) Prefix() Itemset {
	if len(s) == 0 {
		return s
	}
	return s[:len(s)-1]
}

func (s Itemset) Last() Item {
	return s[len(s)-1]
}

func (s Itemset) Equals(other types.Equatable) bool {
	o, ok := other.(Itemset)
	if !ok || len(o) != len(s) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Less orders by size first and then lexicographically.
func (s Itemset) Less(other types.Sortable) bool {
	o, ok := other.(Itemset)
	if !ok {
		return false
	}
	if len(s) != len(o) {
		return len(s) < len(o)
	}
	for i := range s {
		if s[i] != o[i] {
			return s[i] < o[i]
		}
	}
	return false
}

func (s Itemset) Hash() int {
	h := 17
	for _, item := range s {
		h = h*31 + int(item)
	}
	return h
}

// Label is the canonical byte key of the set: the size followed by every
// item, all big endian.
func (s Itemset) Label() []byte {
	bytes := make([]byte, 4*(len(s)+1))
	binary.BigEndian.PutUint32(bytes[0:4], uint32(len(s)))
	o := 4
	for _, item := range s {
		binary.BigEndian.PutUint32(bytes[o:o+4], uint32(item))
		o += 4
	}
	return bytes
}

func (s Itemset) String() string {
	parts := make([]string, 0, len(s))
	for _, item := range s {
		parts = append(parts, fmt.Sprintf("%d", item))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

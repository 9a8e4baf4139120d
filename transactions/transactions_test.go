package transactions

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/itemset"
)

func stringInput(data string) (Input, *int) {
	opened := 0
	return func() (io.Reader, func(), error) {
		opened++
		return strings.NewReader(data), func() {}, nil
	}, &opened
}

const ratings = `1::1193::5::978300760
1::661::3::978302109
1::914::3::978301968
2::1357::5::978298709
2::1193::4::978298413
3::661::2::978297039
`

func TestRatingsGroupsConsecutiveIds(x *testing.T) {
	t := assert.New(x)
	input, _ := stringInput(ratings)
	txs, err := Load(NewFile(input, Ratings{}))
	t.Nil(err)
	t.Equal(Slice{
		itemset.New(661, 914, 1193),
		itemset.New(1193, 1357),
		itemset.New(661),
	}, txs)
}

func TestRatingsDuplicatesCollapse(x *testing.T) {
	t := assert.New(x)
	input, _ := stringInput("7::1\n7::1\n7::2\n")
	txs, err := Load(NewFile(input, Ratings{}))
	t.Nil(err)
	t.Equal(Slice{itemset.New(1, 2)}, txs)
}

func TestRatingsSeparator(x *testing.T) {
	t := assert.New(x)
	input, _ := stringInput("1,5\n1,6\n2,5\n")
	txs, err := Load(NewFile(input, Ratings{Separator: ","}))
	t.Nil(err)
	t.Equal(Slice{itemset.New(5, 6), itemset.New(5)}, txs)
}

func TestRatingsMalformed(x *testing.T) {
	t := assert.New(x)
	for _, data := range []string{
		"1::2\n3\n",
		"1::2\nx::3\n",
		"1::2\n2::y\n",
	} {
		input, _ := stringInput(data)
		txs, err := Load(NewFile(input, Ratings{}))
		t.NotNil(err, "%q", data)
		t.Nil(txs)
		t.Contains(err.Error(), "line 2")
	}
}

func TestLines(x *testing.T) {
	t := assert.New(x)
	input, _ := stringInput("10 1 5 7\n213 2 5 1\n\n3 4 1\n")
	txs, err := Load(NewFile(input, Lines{}))
	t.Nil(err)
	t.Equal(Slice{
		itemset.New(1, 5, 7, 10),
		itemset.New(1, 2, 5, 213),
		itemset.New(),
		itemset.New(1, 3, 4),
	}, txs)

	input, _ = stringInput("1 2\n1 a\n")
	_, err = Load(NewFile(input, Lines{}))
	t.NotNil(err)
}

func TestFileReopensEveryScan(x *testing.T) {
	t := assert.New(x)
	input, opened := stringInput("1 2\n2 3\n")
	f := NewFile(input, Lines{})
	for i := 0; i < 3; i++ {
		count := 0
		t.Nil(f.Scan(func(tx itemset.Transaction) error {
			count++
			return nil
		}))
		t.Equal(2, count)
	}
	t.Equal(3, *opened)
}

func TestScanStopsOnError(x *testing.T) {
	t := assert.New(x)
	stop := errors.Errorf("stop")
	src := Slice{itemset.New(1), itemset.New(2), itemset.New(3)}
	seen := 0
	err := src.Scan(func(tx itemset.Transaction) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})
	t.Equal(stop, err)
	t.Equal(2, seen)
}

func TestInputFailure(x *testing.T) {
	t := assert.New(x)
	f := NewFile(func() (io.Reader, func(), error) {
		return nil, nil, errors.Errorf("gone")
	}, Lines{})
	_, err := Load(f)
	t.NotNil(err)
}

func TestDictionary(x *testing.T) {
	t := assert.New(x)
	d, err := LoadDictionary(strings.NewReader("1::Toy Story (1995)::Animation\n2::Jumanji (1995)::Adventure\n\n"))
	t.Nil(err)
	t.Equal("Toy Story (1995)", d.Label(1))
	t.Equal("Jumanji (1995)", d.Label(2))
	t.Equal("3", d.Label(3))
	t.Equal([]string{"Toy Story (1995)", "3"}, d.Labels(itemset.New(3, 1)))

	_, err = LoadDictionary(strings.NewReader("1::A\nB\n"))
	t.NotNil(err)
	_, err = LoadDictionary(strings.NewReader("one::A\n"))
	t.NotNil(err)
}

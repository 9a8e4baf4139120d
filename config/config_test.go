package config

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
)

import (
	"github.com/timtadh/apriori/itemset"
)

func TestValidate(x *testing.T) {
	t := assert.New(x)
	t.Nil((&Config{Support: 2, Confidence: 50}).Validate())
	t.Nil((&Config{Support: 1, Confidence: 0, MaxSize: 3}).Validate())
	t.Nil((&Config{Support: 1, Confidence: 100}).Validate())
	t.NotNil((&Config{Support: 0, Confidence: 50}).Validate())
	t.NotNil((&Config{Support: -3, Confidence: 50}).Validate())
	t.NotNil((&Config{Support: 2, Confidence: -1}).Validate())
	t.NotNil((&Config{Support: 2, Confidence: 100.5}).Validate())
	t.NotNil((&Config{Support: 2, Confidence: 50, MaxSize: -1}).Validate())
	t.NotNil((&Config{Support: 1, Confidence: math.NaN()}).Validate())
	t.NotNil((&Config{Support: 1, Confidence: math.Inf(1)}).Validate())
}

func TestCopy(x *testing.T) {
	t := assert.New(x)
	c := &Config{Output: "/tmp/x", Support: 4, Confidence: 20, MaxSize: 2, Strict: true}
	d := c.Copy()
	t.Equal(c, d)
	d.Support = 5
	t.Equal(4, c.Support)
}

func TestSupportMultiMap(x *testing.T) {
	t := assert.New(x)
	anon, err := (&Config{}).SupportMultiMap("support")
	t.Nil(err)
	t.Nil(anon.Add(itemset.New(1), 1))
	t.Nil(anon.Delete())

	dir, err := ioutil.TempDir("", "config")
	t.Nil(err)
	defer os.RemoveAll(dir)
	c := &Config{Output: dir}
	m, err := c.SupportMultiMap("support")
	t.Nil(err)
	t.Nil(m.Close())
	_, err = os.Stat(filepath.Join(dir, "support.bptree"))
	t.Nil(err)
}

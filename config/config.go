package config

import (
	"math"
	"path/filepath"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/stores/itemset_int"
)

type Config struct {
	Output string
	// Support is an absolute transaction count.
	Support int
	// Confidence is a percentage in [0, 100].
	Confidence float64
	// MaxSize bounds the size of mined itemsets. 0 is unbounded.
	MaxSize int
	// Strict keeps itemsets with support > Support instead of >= Support.
	Strict bool
}

func (c *Config) Copy() *Config {
	return &Config{
		Output:     c.Output,
		Support:    c.Support,
		Confidence: c.Confidence,
		MaxSize:    c.MaxSize,
		Strict:     c.Strict,
	}
}

func (c *Config) Validate() error {
	if c.Support <= 0 {
		return errors.Errorf("support must be a positive transaction count, got %d", c.Support)
	}
	if math.IsNaN(c.Confidence) || c.Confidence < 0 || c.Confidence > 100 {
		return errors.Errorf("confidence must be a percentage in [0, 100], got %g", c.Confidence)
	}
	if c.MaxSize < 0 {
		return errors.Errorf("max size must be >= 0 (0 is unbounded), got %d", c.MaxSize)
	}
	return nil
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

func (c *Config) SupportMultiMap(name string) (itemset_int.MultiMap, error) {
	if c.Output == "" {
		return itemset_int.AnonBpTree()
	} else {
		return itemset_int.NewBpTree(c.OutputFile(name + ".bptree"))
	}
}

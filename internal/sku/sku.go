// Package sku generates shelf codes for new products.
package sku

import (
	"math/rand/v2"
	"strconv"
)

const (
	minCode = 100000
	maxCode = 999999
)

// Generator produces a fixed prefix followed by a random 6-digit number.
// Codes are not checked against the catalog.
type Generator struct {
	prefix string
	intN   func(n int) int
}

func NewGenerator(prefix string) *Generator {
	return &Generator{prefix: prefix, intN: rand.IntN}
}

// NewGeneratorWithSource uses r instead of the global random source.
func NewGeneratorWithSource(prefix string, r *rand.Rand) *Generator {
	return &Generator{prefix: prefix, intN: r.IntN}
}

func (g *Generator) Next() string {
	return g.prefix + strconv.Itoa(minCode+g.intN(maxCode-minCode+1))
}

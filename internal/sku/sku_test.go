package sku_test

import (
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/pos/internal/sku"
)

func TestGenerator(t *testing.T) {
	pattern := regexp.MustCompile(`^AGR-[1-9][0-9]{5}$`)

	t.Run("Should produce prefix plus six digits", func(t *testing.T) {
		g := sku.NewGenerator("AGR-")
		for range 1000 {
			assert.Regexp(t, pattern, g.Next())
		}
	})

	t.Run("Should be reproducible with a seeded source", func(t *testing.T) {
		a := sku.NewGeneratorWithSource("AGR-", rand.New(rand.NewPCG(1, 2)))
		b := sku.NewGeneratorWithSource("AGR-", rand.New(rand.NewPCG(1, 2)))
		assert.Equal(t, a.Next(), b.Next())
	})
}

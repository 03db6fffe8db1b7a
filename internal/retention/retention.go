// Package retention keeps sale history inside a rolling time window.
package retention

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/tuanvumaihuynh/pos/internal/model"
)

// Window is how far back sale history is kept.
const Window = 15 * 24 * time.Hour

var errEmptyDate = errors.New("empty date")

// Prune returns the sales dated at or after now-Window, in their original
// order. Sales whose date cannot be parsed are dropped. The input slice is
// not modified.
func Prune(sales []model.Sale, now time.Time) []model.Sale {
	cutoff := now.Add(-Window)

	kept := make([]model.Sale, 0, len(sales))
	for _, sale := range sales {
		t, err := ParseSaleDate(sale.Date)
		if err != nil || t.Before(cutoff) {
			continue
		}
		kept = append(kept, sale)
	}

	return kept
}

// ParseSaleDate parses a stored sale date. Dates without a zone are read as UTC.
func ParseSaleDate(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, errEmptyDate
	}

	t, err := dateparse.ParseIn(date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse sale date %q: %w", date, err)
	}

	return t, nil
}

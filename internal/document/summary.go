package document

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/pos/internal/model"
)

// Summary aggregates the sale history for the dashboard.
type Summary struct {
	Count   int
	Revenue decimal.Decimal
	Average decimal.Decimal
	Median  decimal.Decimal
	Largest decimal.Decimal
}

// Summarize computes totals over sales. Averages are rounded to 2 places.
func Summarize(sales []model.Sale) (Summary, error) {
	if len(sales) == 0 {
		return Summary{}, nil
	}

	revenue := decimal.Zero
	totals := make(stats.Float64Data, 0, len(sales))
	for _, sale := range sales {
		revenue = revenue.Add(sale.Total)
		totals = append(totals, sale.Total.InexactFloat64())
	}

	median, err := totals.Median()
	if err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}

	largest, err := totals.Max()
	if err != nil {
		return Summary{}, fmt.Errorf("max: %w", err)
	}

	return Summary{
		Count:   len(sales),
		Revenue: revenue,
		Average: revenue.Div(decimal.NewFromInt(int64(len(sales)))).Round(2),
		Median:  decimal.NewFromFloat(median).Round(2),
		Largest: decimal.NewFromFloat(largest).Round(2),
	}, nil
}

// InventoryValue is the sum of price * stock over the catalog.
func InventoryValue(products []model.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return total
}

package document

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/tealeg/xlsx"

	"github.com/tuanvumaihuynh/pos/internal/model"
)

type saleCSVRow struct {
	ID        string `csv:"sale_id"`
	Date      string `csv:"date"`
	Items     string `csv:"items"`
	ItemCount int    `csv:"item_count"`
	Total     string `csv:"total"`
}

// WriteSalesCSV writes one row per sale, most recent first as given.
func WriteSalesCSV(w io.Writer, sales []model.Sale) error {
	rows := make([]*saleCSVRow, 0, len(sales))
	for _, sale := range sales {
		count := 0
		for _, item := range sale.Items {
			count += item.Qty
		}

		rows = append(rows, &saleCSVRow{
			ID:        sale.ID.String(),
			Date:      sale.Date,
			Items:     ItemsSummary(sale.Items),
			ItemCount: count,
			Total:     sale.Total.StringFixed(2),
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("marshal sales csv: %w", err)
	}

	return nil
}

var inventoryHeaders = []string{"ID", "Name", "SKU", "Description", "Price", "Stock", "CreatedAt"}

// WriteInventoryXLSX writes the catalog as a single "Inventory" sheet.
func WriteInventoryXLSX(w io.Writer, products []model.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Inventory")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range inventoryHeaders {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()

		row.AddCell().SetString(p.ID.String())
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Sku)
		row.AddCell().SetString(p.Desc)
		row.AddCell().SetString(p.Price.StringFixed(2))
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}

	return nil
}

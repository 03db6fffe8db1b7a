// Package document renders labels, receipts and history reports as
// printable HTML. Rendering never touches catalog or sale state.
package document

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/pos/internal/config"
	"github.com/tuanvumaihuynh/pos/internal/model"
	"github.com/tuanvumaihuynh/pos/internal/retention"
)

//go:embed templates/*.html
var templateFS embed.FS

const displayTimeLayout = "02 Jan 2006 15:04"

type Renderer struct {
	shop config.Shop
	tmpl *template.Template
}

func NewRenderer(shop config.Shop) (*Renderer, error) {
	r := &Renderer{shop: shop}

	tmpl, err := template.New("documents").
		Funcs(template.FuncMap{"money": r.Money}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl

	return r, nil
}

// Money formats an amount with the shop currency symbol and two decimals.
func (r *Renderer) Money(d decimal.Decimal) string {
	return r.shop.CurrencySymbol + d.StringFixed(2)
}

// Receipt is the printable form of a finalized cart.
type Receipt struct {
	Date  string
	Lines []ReceiptLine
	Total decimal.Decimal
}

type ReceiptLine struct {
	Name   string
	Qty    int
	Amount decimal.Decimal
}

// ReceiptFromSale builds the receipt for a sale from its frozen items.
func ReceiptFromSale(sale model.Sale) Receipt {
	lines := make([]ReceiptLine, 0, len(sale.Items))
	for _, item := range sale.Items {
		lines = append(lines, ReceiptLine{
			Name:   item.Name,
			Qty:    item.Qty,
			Amount: item.Amount(),
		})
	}

	return Receipt{
		Date:  displayDate(sale.Date),
		Lines: lines,
		Total: sale.Total,
	}
}

func (r *Renderer) Label(product model.Product) ([]byte, error) {
	barcode, err := barcodeDataURI(product.Sku)
	if err != nil {
		return nil, fmt.Errorf("render barcode: %w", err)
	}

	return r.execute("label.html", struct {
		Shop    config.Shop
		Product model.Product
		Barcode template.URL
	}{
		Shop:    r.shop,
		Product: product,
		//nolint:gosec // generated locally from a base64 PNG
		Barcode: template.URL(barcode),
	})
}

func (r *Renderer) Receipt(receipt Receipt) ([]byte, error) {
	return r.execute("receipt.html", struct {
		Shop    config.Shop
		Receipt Receipt
	}{
		Shop:    r.shop,
		Receipt: receipt,
	})
}

type historyRow struct {
	Date  string
	Items string
	Total decimal.Decimal
}

func (r *Renderer) History(sales []model.Sale) ([]byte, error) {
	rows := make([]historyRow, 0, len(sales))
	for _, sale := range sales {
		rows = append(rows, historyRow{
			Date:  sale.Date,
			Items: ItemsSummary(sale.Items),
			Total: sale.Total,
		})
	}

	return r.execute("history.html", struct {
		Shop config.Shop
		Rows []historyRow
	}{
		Shop: r.shop,
		Rows: rows,
	})
}

// ItemsSummary lists items as "name xQty" joined by commas.
func ItemsSummary(items []model.SaleItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", item.Name, item.Qty))
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func displayDate(date string) string {
	t, err := retention.ParseSaleDate(date)
	if err != nil {
		return date
	}
	return t.In(time.Local).Format(displayTimeLayout)
}

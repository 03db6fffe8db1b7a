package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/tuanvumaihuynh/pos/internal/document"
	"github.com/tuanvumaihuynh/pos/internal/model"
	"github.com/tuanvumaihuynh/pos/internal/printer"
	"github.com/tuanvumaihuynh/pos/internal/service"
)

func (s *Shell) listProducts(ctx context.Context, _ string, out io.Writer) error {
	products := s.register.Products(ctx)
	if len(products) == 0 {
		fmt.Fprintln(out, "no products")
		return nil
	}

	tw := newTable(out)
	fmt.Fprintln(tw, "SKU\tNAME\tPRICE\tDESCRIPTION\tID")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Sku, p.Name, s.renderer.Money(p.Price), p.Desc, p.ID)
	}
	return tw.Flush()
}

func (s *Shell) addProduct(ctx context.Context, args string, out io.Writer) error {
	fields := strings.Split(args, "|")
	if len(fields) < 3 || len(fields) > 4 {
		return usageError("add <name> | <price> | <desc> [| <sku>]")
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	params := service.AddProductParams{
		Name:  fields[0],
		Price: fields[1],
		Desc:  fields[2],
	}
	if len(fields) == 4 && fields[3] != "" {
		params.Sku = fields[3]
	} else {
		params.Sku = s.skus.Next()
	}

	product, err := s.register.AddProduct(ctx, params)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "added %s (%s) at %s\n", product.Name, product.Sku, s.renderer.Money(product.Price))
	return nil
}

func (s *Shell) deleteProduct(ctx context.Context, args string, out io.Writer) error {
	id, err := uuid.Parse(args)
	if err != nil {
		return usageError("del <id>")
	}

	if s.register.DeleteProduct(ctx, id) {
		fmt.Fprintln(out, "deleted")
	} else {
		fmt.Fprintln(out, "no product with that id")
	}
	return nil
}

func (s *Shell) printLabel(ctx context.Context, args string, out io.Writer) error {
	if args == "" {
		return usageError("label <sku|id>")
	}

	var (
		product model.Product
		err     error
	)
	if id, parseErr := uuid.Parse(args); parseErr == nil {
		product, err = s.register.FindProductByID(ctx, id)
	} else {
		product, err = s.register.FindProduct(ctx, args)
	}
	if err != nil {
		return err
	}

	content, err := s.renderer.Label(product)
	if err != nil {
		return fmt.Errorf("render label: %w", err)
	}
	return s.print(ctx, printer.Document{Kind: printer.KindLabel, Ref: product.Sku, Content: content}, out)
}

func (s *Shell) scan(ctx context.Context, args string, out io.Writer) error {
	item, err := s.register.AddToCart(ctx, args)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "+ %s x%d  %s  (total %s)\n",
		item.Name, item.Qty, s.renderer.Money(item.Amount()), s.renderer.Money(s.register.CartTotal()))
	return nil
}

func (s *Shell) setQty(_ context.Context, args string, out io.Writer) error {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return usageError("qty <sku> <n>")
	}

	qty, err := parseQty(fields[1])
	if err != nil {
		return usageError("qty <sku> <n>")
	}

	if !s.register.SetCartQty(fields[0], qty) {
		fmt.Fprintf(out, "%s is not in the cart\n", fields[0])
		return nil
	}

	fmt.Fprintf(out, "total %s\n", s.renderer.Money(s.register.CartTotal()))
	return nil
}

func (s *Shell) removeFromCart(_ context.Context, args string, out io.Writer) error {
	if args == "" {
		return usageError("rm <sku>")
	}

	if !s.register.RemoveFromCart(args) {
		fmt.Fprintf(out, "%s is not in the cart\n", args)
		return nil
	}

	fmt.Fprintf(out, "total %s\n", s.renderer.Money(s.register.CartTotal()))
	return nil
}

func (s *Shell) showCart(_ context.Context, _ string, out io.Writer) error {
	items := s.register.CartItems()
	if len(items) == 0 {
		fmt.Fprintln(out, "cart is empty")
		return nil
	}

	tw := newTable(out)
	fmt.Fprintln(tw, "SKU\tNAME\tQTY\tPRICE\tAMOUNT")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			item.Sku, item.Name, item.Qty, s.renderer.Money(item.Price), s.renderer.Money(item.Amount()))
	}
	fmt.Fprintf(tw, "\t\t\tTOTAL\t%s\n", s.renderer.Money(s.register.CartTotal()))
	return tw.Flush()
}

func (s *Shell) cancel(_ context.Context, _ string, out io.Writer) error {
	s.register.ClearCart()
	fmt.Fprintln(out, "cart cleared")
	return nil
}

func (s *Shell) pay(ctx context.Context, _ string, out io.Writer) error {
	sale, err := s.register.FinalizeSale(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "sale %s recorded, total %s\n", sale.ID, s.renderer.Money(sale.Total))
	return nil
}

func (s *Shell) listSales(ctx context.Context, _ string, out io.Writer) error {
	sales := s.register.Sales(ctx)
	if len(sales) == 0 {
		fmt.Fprintln(out, "no sales yet")
		return nil
	}

	tw := newTable(out)
	fmt.Fprintln(tw, "DATE\tITEMS\tTOTAL")
	for _, sale := range sales {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", sale.Date, document.ItemsSummary(sale.Items), s.renderer.Money(sale.Total))
	}
	return tw.Flush()
}

func (s *Shell) printHistory(ctx context.Context, _ string, out io.Writer) error {
	content, err := s.renderer.History(s.register.Sales(ctx))
	if err != nil {
		return fmt.Errorf("render history: %w", err)
	}
	return s.print(ctx, printer.Document{Kind: printer.KindHistory, Content: content}, out)
}

func (s *Shell) summary(ctx context.Context, _ string, out io.Writer) error {
	sum, err := document.Summarize(s.register.Sales(ctx))
	if err != nil {
		return fmt.Errorf("summarize sales: %w", err)
	}
	products := s.register.Products(ctx)

	tw := newTable(out)
	fmt.Fprintf(tw, "sales\t%d\n", sum.Count)
	fmt.Fprintf(tw, "revenue\t%s\n", s.renderer.Money(sum.Revenue))
	fmt.Fprintf(tw, "average ticket\t%s\n", s.renderer.Money(sum.Average))
	fmt.Fprintf(tw, "median ticket\t%s\n", s.renderer.Money(sum.Median))
	fmt.Fprintf(tw, "largest ticket\t%s\n", s.renderer.Money(sum.Largest))
	fmt.Fprintf(tw, "products\t%d\n", len(products))
	fmt.Fprintf(tw, "inventory value\t%s\n", s.renderer.Money(document.InventoryValue(products)))
	return tw.Flush()
}

func (s *Shell) export(ctx context.Context, args string, out io.Writer) error {
	format, path, _ := strings.Cut(args, " ")
	path = strings.TrimSpace(path)
	if path == "" {
		return usageError("export csv|xlsx <path>")
	}

	var write func(io.Writer) error
	switch strings.ToLower(format) {
	case "csv":
		sales := s.register.Sales(ctx)
		write = func(w io.Writer) error { return document.WriteSalesCSV(w, sales) }
	case "xlsx":
		products := s.register.Products(ctx)
		write = func(w io.Writer) error { return document.WriteInventoryXLSX(w, products) }
	default:
		return usageError("export csv|xlsx <path>")
	}

	if err := writeFile(path, write); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	fmt.Fprintf(out, "exported %s\n", path)
	return nil
}

func (s *Shell) prune(ctx context.Context, _ string, out io.Writer) error {
	fmt.Fprintf(out, "pruned %d sales\n", s.register.PruneNow(ctx))
	return nil
}

func (s *Shell) print(ctx context.Context, doc printer.Document, out io.Writer) error {
	location, err := s.printer.Print(ctx, doc)
	if err != nil {
		return fmt.Errorf("print %s: %w", doc.Kind, err)
	}
	fmt.Fprintf(out, "printed %s: %s\n", doc.Kind, location)
	return nil
}

// parseQty reads a decimal count. Leading zeros are dropped so cast does
// not take them for an octal prefix.
func parseQty(s string) (int, error) {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}

	digits := strings.TrimLeft(s, "0")
	if digits == "" && s != "" {
		digits = "0"
	}
	return cast.ToIntE(sign + digits)
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return write(f)
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

// usageError reports a malformed command line.
type usageError string

func (e usageError) Error() string {
	return "usage: " + string(e)
}

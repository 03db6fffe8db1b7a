// Package shell is the terminal front end of the register. Each line is a
// command; a line that is not a command is treated as a scanned sku.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/tuanvumaihuynh/pos/internal/document"
	"github.com/tuanvumaihuynh/pos/internal/printer"
	"github.com/tuanvumaihuynh/pos/internal/service"
	"github.com/tuanvumaihuynh/pos/internal/sku"
)

const prompt = "> "

var errQuit = errors.New("quit")

type commandFunc func(ctx context.Context, args string, out io.Writer) error

type Shell struct {
	logger   *slog.Logger
	register *service.Register
	renderer *document.Renderer
	printer  printer.Printer
	skus     *sku.Generator

	commands map[string]commandFunc

	// mu is held while a line runs; closed refuses further lines.
	mu     sync.Mutex
	closed bool
}

func New(
	logger *slog.Logger,
	register *service.Register,
	renderer *document.Renderer,
	printer printer.Printer,
	skus *sku.Generator,
) *Shell {
	s := &Shell{
		logger:   logger.With(slog.String("service", "shell")),
		register: register,
		renderer: renderer,
		printer:  printer,
		skus:     skus,
	}

	s.commands = map[string]commandFunc{
		"help":     s.help,
		"products": s.listProducts,
		"add":      s.addProduct,
		"del":      s.deleteProduct,
		"label":    s.printLabel,
		"scan":     s.scan,
		"qty":      s.setQty,
		"rm":       s.removeFromCart,
		"cart":     s.showCart,
		"cancel":   s.cancel,
		"pay":      s.pay,
		"sales":    s.listSales,
		"history":  s.printHistory,
		"summary":  s.summary,
		"export":   s.export,
		"prune":    s.prune,
		"quit":     quit,
		"exit":     quit,
	}

	return s
}

// Run reads commands from in until EOF or quit.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		if quit := s.Exec(ctx, scanner.Text(), out); quit {
			return nil
		}
		fmt.Fprint(out, prompt)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// Exec runs a single line and reports whether the session should end.
// Command errors are printed, never returned.
func (s *Shell) Exec(ctx context.Context, line string, out io.Writer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return true
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	name, args, _ := strings.Cut(line, " ")
	cmd, ok := s.commands[strings.ToLower(name)]
	if !ok {
		// scanners type the code followed by Enter
		cmd, args = s.scan, line
	}

	err := cmd(ctx, strings.TrimSpace(args), out)
	if errors.Is(err, errQuit) {
		return true
	}
	if err != nil {
		s.logger.Log(ctx, errorLevel(err), "command failed", slog.String("command", name), slog.Any("error", err))
		fmt.Fprintln(out, describeError(err))
	}

	return false
}

// Close waits for the line in progress and makes every later Exec a quit.
// The register can be flushed safely once it returns.
func (s *Shell) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}

func quit(context.Context, string, io.Writer) error {
	return errQuit
}

func (s *Shell) help(_ context.Context, _ string, out io.Writer) error {
	fmt.Fprint(out, `commands:
  products                              list the catalog
  add <name> | <price> | <desc> [| <sku>]
                                        add a product (sku generated when omitted)
  del <id>                              delete a product
  label <sku|id>                        print a barcode label
  scan <sku>  or just <sku>             add one unit to the cart
  qty <sku> <n>                         set a cart quantity
  rm <sku>                              remove a cart line
  cart                                  show the cart
  cancel                                empty the cart
  pay                                   finalize the sale and print the receipt
  sales                                 list the sale history
  history                               print the sale history report
  summary                               sales and inventory figures
  export csv|xlsx <path>                export sales (csv) or inventory (xlsx)
  prune                                 drop sales older than 15 days
  quit
`)
	return nil
}

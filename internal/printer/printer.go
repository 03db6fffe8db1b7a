// Package printer hands rendered documents to the print surface.
package printer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tuanvumaihuynh/pos/internal/config"
)

// Kind identifies which document is being printed.
type Kind string

const (
	KindLabel   Kind = "label"
	KindReceipt Kind = "receipt"
	KindHistory Kind = "history"
)

type Document struct {
	Kind    Kind
	Ref     string
	Content []byte
}

// Printer presents a document. Callers treat failures as best-effort.
type Printer interface {
	// Print returns where the document was delivered.
	Print(ctx context.Context, doc Document) (string, error)
}

var _ Printer = (*FilePrinter)(nil)

// FilePrinter spools documents as HTML files for the browser to print.
type FilePrinter struct {
	dir string
	now func() time.Time
}

func NewFilePrinter(cfg config.Print) *FilePrinter {
	return &FilePrinter{dir: cfg.Dir, now: time.Now}
}

func (p *FilePrinter) Print(ctx context.Context, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return "", fmt.Errorf("create print dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s", doc.Kind, p.now().UTC().Format("20060102T150405.000"))
	if doc.Ref != "" {
		name += "-" + doc.Ref
	}
	path := filepath.Join(p.dir, name+".html")

	if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}

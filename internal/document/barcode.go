package document

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

const (
	barcodeWidth  = 320
	barcodeHeight = 64
)

// barcodeDataURI encodes value as a CODE128 PNG data URI.
func barcodeDataURI(value string) (string, error) {
	bc, err := code128.Encode(value)
	if err != nil {
		return "", fmt.Errorf("encode code128: %w", err)
	}

	// Scale cannot shrink, long codes keep their natural width
	width := max(barcodeWidth, bc.Bounds().Dx())
	scaled, err := barcode.Scale(bc, width, barcodeHeight)
	if err != nil {
		return "", fmt.Errorf("scale barcode: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Package qrcode wires the symbol encoder into a pixel-box rendering
// writer, shaped like a multi-format barcode writer but without a
// multi-format registry (decoding and other symbologies are out of scope
// here).
package qrcode

import (
	"fmt"

	"github.com/qrgo/qrencode/bitutil"
	"github.com/qrgo/qrencode/qrcode/encoder"
	"github.com/qrgo/qrencode/qrcode/symbol"
)

const defaultQuietZoneSize = 4

// EncodeOptions configures Writer.Encode.
type EncodeOptions struct {
	ErrorCorrection string // "L", "M", "Q", "H"; defaults to "L"
	Margin          *int   // quiet zone size in modules; defaults to 4
	Charset         string // declared content charset; defaults to UTF-8
	QRVersion       int    // forced version (1-40); 0 means unforced
	QRMaskPattern   int    // forced mask pattern (0-7); negative means unforced
}

// Writer encodes QR codes into pixel-box BitMatrices.
type Writer struct{}

// NewWriter creates a new QR code Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode encodes contents into a QR code BitMatrix scaled to fill at least
// width x height pixels.
func (w *Writer) Encode(contents string, width, height int, opts *EncodeOptions) (*bitutil.BitMatrix, error) {
	if contents == "" {
		return nil, fmt.Errorf("found empty contents")
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("requested dimensions are too small: %dx%d", width, height)
	}

	ecLevel := symbol.ECLevelL
	quietZone := defaultQuietZoneSize
	hints := &encoder.Hints{MaskPattern: -1}

	if opts != nil {
		if opts.ErrorCorrection != "" {
			switch opts.ErrorCorrection {
			case "L":
				ecLevel = symbol.ECLevelL
			case "M":
				ecLevel = symbol.ECLevelM
			case "Q":
				ecLevel = symbol.ECLevelQ
			case "H":
				ecLevel = symbol.ECLevelH
			default:
				return nil, fmt.Errorf("unknown error correction level: %s", opts.ErrorCorrection)
			}
		}
		if opts.Margin != nil {
			quietZone = *opts.Margin
		}
		hints.Charset = opts.Charset
		hints.ForcedVersion = opts.QRVersion
		if opts.QRMaskPattern >= 0 && opts.QRMaskPattern <= 7 {
			hints.MaskPattern = opts.QRMaskPattern
		}
	}

	code, err := encoder.Encode(contents, ecLevel, hints)
	if err != nil {
		return nil, err
	}
	return encoder.RenderResult(code, width, height, quietZone), nil
}

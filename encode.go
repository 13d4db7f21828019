package qrencode

import (
	"github.com/qrgo/qrencode/bitutil"
	"github.com/qrgo/qrencode/qrcode/encoder"
	"github.com/qrgo/qrencode/qrcode/symbol"
)

// Re-exported symbol-table types so callers never need to import
// qrcode/symbol or qrcode/encoder directly.
type (
	// ErrorCorrectionLevel is one of L, M, Q, H.
	ErrorCorrectionLevel = symbol.ErrorCorrectionLevel
	// Mode is the data encoding mode chosen for a symbol's payload.
	Mode = symbol.Mode
)

const (
	ECLevelL = symbol.ECLevelL
	ECLevelM = symbol.ECLevelM
	ECLevelQ = symbol.ECLevelQ
	ECLevelH = symbol.ECLevelH
)

// Hints carries optional caller-supplied encoding parameters.
type Hints struct {
	// Charset is the declared encoding for Byte/Kanji content. Empty means
	// UTF-8. When set to "Shift_JIS", Kanji mode becomes eligible.
	Charset string
	// ForcedVersion pins the symbol version (1-40); 0 means the encoder
	// picks the smallest version that fits.
	ForcedVersion int
	// MaskPattern pins the mask pattern (0-7); a negative value means the
	// encoder scores all eight and picks the minimum-penalty one.
	MaskPattern int
}

// QRCode is the immutable output of Encode: mode, error correction level,
// version, chosen mask pattern, and the rendered module matrix.
type QRCode struct {
	inner *encoder.QRCode
}

// Mode returns the data encoding mode used for the payload.
func (q *QRCode) Mode() Mode { return q.inner.Mode }

// ECLevel returns the error correction level the symbol was built at.
func (q *QRCode) ECLevel() ErrorCorrectionLevel { return q.inner.ECLevel }

// Version returns the symbol version (1-40).
func (q *QRCode) Version() int { return q.inner.Version.Number }

// MaskPattern returns the mask pattern applied (0-7).
func (q *QRCode) MaskPattern() int { return q.inner.MaskPattern }

// Dimension returns the module matrix's width (equal to its height).
func (q *QRCode) Dimension() int { return q.inner.Version.DimensionForVersion() }

// Matrix returns the module matrix as a BitMatrix (dark module = 1).
func (q *QRCode) Matrix() *bitutil.BitMatrix { return q.inner.ToBitMatrix() }

// String returns a visual representation of the symbol.
func (q *QRCode) String() string { return q.inner.String() }

// Render scales the module matrix into a quiet-zoned BitMatrix sized to at
// least width x height pixels, suitable for handing to an image encoder.
func (q *QRCode) Render(width, height, quietZone int) *bitutil.BitMatrix {
	return encoder.RenderResult(q.inner, width, height, quietZone)
}

// Encode builds a QR Code symbol for content at the given error correction
// level. hints may be nil to use the defaults (UTF-8 Byte/Numeric/
// Alphanumeric classification, unforced version, encoder-chosen mask).
func Encode(content string, ecLevel ErrorCorrectionLevel, hints *Hints) (*QRCode, error) {
	var h *encoder.Hints
	if hints != nil {
		h = &encoder.Hints{
			Charset:       hints.Charset,
			ForcedVersion: hints.ForcedVersion,
			MaskPattern:   hints.MaskPattern,
		}
	}
	code, err := encoder.Encode(content, ecLevel, h)
	if err != nil {
		return nil, err
	}
	return &QRCode{inner: code}, nil
}

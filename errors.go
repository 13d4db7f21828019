// Package qrencode implements QR Code symbol encoding per JIS X 0510:2004 /
// ISO/IEC 18004: mode selection, version fitting, Reed-Solomon error
// correction and matrix layout. Decoding, image rendering, and CLI/config
// plumbing are not part of this package.
package qrencode

import "github.com/qrgo/qrencode/qrcode/encoder"

// Sentinel errors returned by Encode. Use errors.Is to test for a specific
// kind; all are wrapped with additional context via fmt.Errorf("%w: ...").
var (
	// ErrInvalidContent indicates a character is not representable in the
	// selected mode.
	ErrInvalidContent = encoder.ErrInvalidContent

	// ErrCapacityExceeded indicates the payload exceeds the capacity of the
	// forced or maximum version at the chosen error correction level.
	ErrCapacityExceeded = encoder.ErrCapacityExceeded

	// ErrUnsupportedCharset indicates the declared charset cannot encode
	// the input, or is not recognized.
	ErrUnsupportedCharset = encoder.ErrUnsupportedCharset

	// ErrInternalInvariant indicates a sanity-check trip in the assembler
	// or interleaver; this signals a bug, not bad input.
	ErrInternalInvariant = encoder.ErrInternalInvariant
)

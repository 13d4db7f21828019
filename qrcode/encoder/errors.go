package encoder

import "errors"

var (
	// ErrInvalidContent indicates a character is not representable in the
	// selected mode (an invalid alphanumeric character, an odd-length or
	// out-of-range Kanji byte sequence).
	ErrInvalidContent = errors.New("qrcode/encoder: invalid content for mode")

	// ErrCapacityExceeded indicates the payload exceeds the capacity of the
	// forced or maximum version at the chosen error correction level.
	ErrCapacityExceeded = errors.New("qrcode/encoder: capacity exceeded")

	// ErrUnsupportedCharset indicates the declared charset cannot encode
	// the input, or is not a charset this encoder recognizes.
	ErrUnsupportedCharset = errors.New("qrcode/encoder: unsupported charset")

	// ErrInternalInvariant indicates a sanity-check trip (interleave
	// byte-count mismatch, termination-size mismatch). These indicate a
	// bug in the tables, not bad input.
	ErrInternalInvariant = errors.New("qrcode/encoder: internal invariant violated")
)

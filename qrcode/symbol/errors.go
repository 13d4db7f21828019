package symbol

import "errors"

var (
	errInvalidECLevel = errors.New("qrcode/symbol: invalid error correction level")
	errInvalidVersion = errors.New("qrcode/symbol: invalid version number")
)

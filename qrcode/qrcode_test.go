package qrcode

import (
	"testing"

	"github.com/qrgo/qrencode/qrcode/encoder"
	"github.com/qrgo/qrencode/qrcode/symbol"
)

func TestWriterEncode(t *testing.T) {
	w := NewWriter()
	result, err := w.Encode("Hello", 100, 100, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if result.Width() < 100 || result.Height() < 100 {
		t.Fatalf("result too small: %dx%d", result.Width(), result.Height())
	}
}

func TestWriterEncodeWithOptions(t *testing.T) {
	w := NewWriter()
	margin := 2
	opts := &EncodeOptions{
		ErrorCorrection: "H",
		Margin:          &margin,
	}
	result, err := w.Encode("Test", 200, 200, opts)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if result.Width() < 200 || result.Height() < 200 {
		t.Fatalf("result too small: %dx%d", result.Width(), result.Height())
	}
}

func TestWriterUnknownECLevel(t *testing.T) {
	w := NewWriter()
	_, err := w.Encode("Hello", 100, 100, &EncodeOptions{ErrorCorrection: "Z"})
	if err == nil {
		t.Fatal("expected error for unknown error correction level")
	}
}

func TestWriterEmptyContents(t *testing.T) {
	w := NewWriter()
	_, err := w.Encode("", 100, 100, nil)
	if err == nil {
		t.Fatal("expected error for empty contents")
	}
}

// positionDetectionPattern is the standard's fixed 7x7 finder pattern,
// duplicated here (rather than exported from encoder) to give the test an
// independent expectation to compare against.
var positionDetectionPattern = [7][7]byte{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

// TestFunctionModulesMatchVersionTable cross-checks the matrix builder's
// function-pattern placement against symbol.Version.BuildFunctionPattern,
// which independently derives the same fixed locations from the standard's
// tables, and against the standard's fixed finder pattern and dark module.
// This substitutes for a decoder round-trip, since decoding is out of scope.
func TestFunctionModulesMatchVersionTable(t *testing.T) {
	contents := map[int]string{
		1:  "HELLO WORLD",
		7:  "1234567890123456789012345678901234567890123456789012345678901234567890",
		27: "A somewhat longer message to force a version with version information bits",
	}
	for version, content := range contents {
		code, err := encoder.Encode(content, symbol.ECLevelM, &encoder.Hints{ForcedVersion: version, MaskPattern: 0})
		if err != nil {
			t.Fatalf("version %d: Encode failed: %v", version, err)
		}
		v, err := symbol.GetVersionForNumber(version)
		if err != nil {
			t.Fatalf("version %d: GetVersionForNumber failed: %v", version, err)
		}
		expected := v.BuildFunctionPattern()
		dim := v.DimensionForVersion()

		// No sentinel cells survive the build: every function AND data
		// module is assigned a concrete 0/1 value.
		for y := 0; y < dim; y++ {
			for x := 0; x < dim; x++ {
				if code.Matrix.Get(x, y) == 0xFF {
					t.Fatalf("version %d: cell (%d,%d) left unassigned", version, x, y)
				}
			}
		}

		// The top-left finder pattern is fixed regardless of mask/content.
		for y := 0; y < 7; y++ {
			for x := 0; x < 7; x++ {
				if !expected.Get(x, y) {
					t.Fatalf("version %d: (%d,%d) expected to be a function module", version, x, y)
				}
				if code.Matrix.Get(x, y) != positionDetectionPattern[y][x] {
					t.Errorf("version %d: finder cell (%d,%d) = %d, want %d",
						version, x, y, code.Matrix.Get(x, y), positionDetectionPattern[y][x])
				}
			}
		}

		// The dark module at (8, dim-8) is always set, independent of mask.
		if code.Matrix.Get(8, dim-8) != 1 {
			t.Errorf("version %d: dark module at (8,%d) = %d, want 1", version, dim-8, code.Matrix.Get(8, dim-8))
		}
	}
}

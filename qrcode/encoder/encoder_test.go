package encoder

import (
	"errors"
	"strings"
	"testing"

	"github.com/qrgo/qrencode/bitutil"
	"github.com/qrgo/qrencode/qrcode/symbol"
)

func TestScenarioHelloWorldByte(t *testing.T) {
	code, err := Encode("hello world", symbol.ECLevelL, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if code.Version.Number != 1 {
		t.Errorf("version = %d, want 1", code.Version.Number)
	}
	if code.Mode != symbol.ModeByte {
		t.Errorf("mode = %s, want Byte", code.Mode)
	}
	if code.MaskPattern != 6 {
		t.Errorf("mask = %d, want 6", code.MaskPattern)
	}
}

func TestScenarioHelloWorldAlphanumeric(t *testing.T) {
	code, err := Encode("HELLO WORLD", symbol.ECLevelQ, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if code.Version.Number != 1 {
		t.Errorf("version = %d, want 1", code.Version.Number)
	}
	if code.Mode != symbol.ModeAlphanumeric {
		t.Errorf("mode = %s, want Alphanumeric", code.Mode)
	}
	if code.MaskPattern != 4 {
		t.Errorf("mask = %d, want 4", code.MaskPattern)
	}
}

func TestScenarioNumeric(t *testing.T) {
	code, err := Encode("1234567890", symbol.ECLevelM, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if code.Version.Number != 1 {
		t.Errorf("version = %d, want 1", code.Version.Number)
	}
	if code.Mode != symbol.ModeNumeric {
		t.Errorf("mode = %s, want Numeric", code.Mode)
	}
	if code.MaskPattern != 2 {
		t.Errorf("mask = %d, want 2", code.MaskPattern)
	}
}

func TestScenarioRepeatedAlphanumeric(t *testing.T) {
	content := strings.Repeat("A", 100)
	code, err := Encode(content, symbol.ECLevelH, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if code.Version.Number != 6 {
		t.Errorf("version = %d, want 6", code.Version.Number)
	}
	if code.Mode != symbol.ModeAlphanumeric {
		t.Errorf("mode = %s, want Alphanumeric", code.Mode)
	}
}

func TestScenarioMaxNumericCapacity(t *testing.T) {
	content := strings.Repeat("0", 7089)
	code, err := Encode(content, symbol.ECLevelL, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if code.Version.Number != 40 {
		t.Errorf("version = %d, want 40", code.Version.Number)
	}
	if code.Mode != symbol.ModeNumeric {
		t.Errorf("mode = %s, want Numeric", code.Mode)
	}
}

func TestScenarioKanjiHint(t *testing.T) {
	// U+5343 U+79CB (千秋), both encodable as JIS X 0208 Kanji.
	content := "千秋"
	code, err := Encode(content, symbol.ECLevelL, &Hints{Charset: "Shift_JIS"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if code.Mode != symbol.ModeKanji {
		t.Errorf("mode = %s, want Kanji", code.Mode)
	}
	if code.Version.Number != 1 {
		t.Errorf("version = %d, want 1", code.Version.Number)
	}
}

func TestEmptyInputUsesByteMode(t *testing.T) {
	code, err := Encode("", symbol.ECLevelL, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if code.Mode != symbol.ModeByte {
		t.Errorf("mode = %s, want Byte", code.Mode)
	}
	if code.Version.Number != 1 {
		t.Errorf("version = %d, want 1", code.Version.Number)
	}
}

func TestForcedVersionTooSmall(t *testing.T) {
	content := strings.Repeat("0", 50)
	_, err := Encode(content, symbol.ECLevelH, &Hints{ForcedVersion: 1})
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}
}

func TestEncodeIsPure(t *testing.T) {
	content := "Two runs of the same input must match byte-for-byte."
	a, err := Encode(content, symbol.ECLevelM, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	b, err := Encode(content, symbol.ECLevelM, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !a.ToBitMatrix().Equals(b.ToBitMatrix()) {
		t.Fatal("two encode runs produced different matrices")
	}
}

func TestDimensionMatchesVersionFormula(t *testing.T) {
	for v := 1; v <= 40; v++ {
		version, err := symbol.GetVersionForNumber(v)
		if err != nil {
			t.Fatalf("GetVersionForNumber(%d) failed: %v", v, err)
		}
		if got, want := version.DimensionForVersion(), 17+4*v; got != want {
			t.Errorf("version %d: dimension = %d, want %d", v, got, want)
		}
	}
}

func TestNumericBitCountFormula(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 0}, {1, 4}, {2, 7}, {3, 10}, {4, 14}, {5, 17}, {6, 20}, {7, 24},
	}
	for _, c := range cases {
		bits := bitutil.NewBitArray(0)
		content := strings.Repeat("9", c.n)
		if err := appendNumericBytes(content, bits); err != nil {
			t.Fatalf("appendNumericBytes(%d digits) failed: %v", c.n, err)
		}
		if bits.Size() != c.want {
			t.Errorf("n=%d: bits = %d, want %d", c.n, bits.Size(), c.want)
		}
	}
}

func TestAlphanumericBitCountFormula(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 0}, {1, 6}, {2, 11}, {3, 17}, {4, 22}, {5, 28},
	}
	for _, c := range cases {
		bits := bitutil.NewBitArray(0)
		content := strings.Repeat("A", c.n)
		if err := appendAlphanumericBytes(content, bits); err != nil {
			t.Fatalf("appendAlphanumericBytes(%d chars) failed: %v", c.n, err)
		}
		if bits.Size() != c.want {
			t.Errorf("n=%d: bits = %d, want %d", c.n, bits.Size(), c.want)
		}
	}
}

func TestAppendAlphanumericInvalidCharacter(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	if err := appendAlphanumericBytes("HELLO!", bits); !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("err = %v, want ErrInvalidContent", err)
	}
}

func TestPackKanjiBytePairsOddLength(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	// A single raw byte can never be a valid Shift_JIS double-byte sequence.
	_, err := packKanjiBytePairs([]byte{0x82}, bits)
	if !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("err = %v, want ErrInvalidContent", err)
	}
}

func TestPackKanjiBytePairsOutOfRange(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	// 0x20 0x20 is outside both Kanji code ranges.
	_, err := packKanjiBytePairs([]byte{0x20, 0x20}, bits)
	if !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("err = %v, want ErrInvalidContent", err)
	}
}

func TestPackKanjiBytePairsKnownValue(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	// 0x935F falls in the first Kanji code range (0x8140-0x9FFC).
	n, err := packKanjiBytePairs([]byte{0x93, 0x5F}, bits)
	if err != nil {
		t.Fatalf("packKanjiBytePairs failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	if bits.Size() != 13 {
		t.Fatalf("bits.Size() = %d, want 13", bits.Size())
	}
	subtracted := 0x935F - 0x8140
	want := (subtracted>>8)*0xC0 + (subtracted & 0xFF)
	got := 0
	for i := 0; i < 13; i++ {
		got <<= 1
		if bits.Get(i) {
			got |= 1
		}
	}
	if got != want {
		t.Errorf("packed value = %#x, want %#x", got, want)
	}
}

func TestChooseModeClassification(t *testing.T) {
	cases := []struct {
		content string
		want    symbol.Mode
	}{
		{"12345", symbol.ModeNumeric},
		{"HELLO", symbol.ModeAlphanumeric},
		{"hello", symbol.ModeByte},
		{"", symbol.ModeByte},
	}
	for _, c := range cases {
		if got := ChooseMode(c.content, ""); got != c.want {
			t.Errorf("ChooseMode(%q) = %s, want %s", c.content, got, c.want)
		}
	}
}

func TestInterleaveLengthMatchesTotalBytes(t *testing.T) {
	for _, content := range []string{strings.Repeat("X", 30), strings.Repeat("7", 200), "short"} {
		code, err := Encode(content, symbol.ECLevelM, nil)
		if err != nil {
			t.Fatalf("Encode(%q) failed: %v", content, err)
		}
		ecBlocks := code.Version.ECBlocksForLevel(code.ECLevel)
		numDataBytes := code.Version.TotalCodewords - ecBlocks.TotalECCodewords()
		headerBits := bitutil.NewBitArray(0)
		headerBits.AppendBits(uint32(code.Mode.Bits()), 4)
		headerBits.AppendBits(uint32(len(content)), code.Mode.CharacterCountBits(code.Version))
		dataBits := bitutil.NewBitArray(0)
		if _, err := appendBytes(content, code.Mode, defaultCharsetName, dataBits); err != nil {
			t.Fatalf("appendBytes(%q) failed: %v", content, err)
		}
		headerBits.AppendBitArray(dataBits)
		if err := terminateBits(numDataBytes, headerBits); err != nil {
			t.Fatalf("terminateBits(%q) failed: %v", content, err)
		}
		interleaved, err := interleaveWithECBytes(headerBits, code.Version.TotalCodewords, numDataBytes, ecBlocks.NumBlocks())
		if err != nil {
			t.Fatalf("interleaveWithECBytes(%q) failed: %v", content, err)
		}
		if interleaved.SizeInBytes() != code.Version.TotalCodewords {
			t.Errorf("content %q: interleaved size = %d, want %d", content, interleaved.SizeInBytes(), code.Version.TotalCodewords)
		}
	}
}

func TestUnsupportedCharsetRejected(t *testing.T) {
	_, err := Encode("hello", symbol.ECLevelL, &Hints{Charset: "not-a-real-charset"})
	if !errors.Is(err, ErrUnsupportedCharset) {
		t.Fatalf("err = %v, want ErrUnsupportedCharset", err)
	}
}

func TestISO8859_1HintEncodesInByteMode(t *testing.T) {
	code, err := Encode("Café", symbol.ECLevelL, &Hints{Charset: "ISO-8859-1"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if code.Mode != symbol.ModeByte {
		t.Errorf("mode = %s, want Byte", code.Mode)
	}
}

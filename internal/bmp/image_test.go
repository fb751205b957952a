package bmp

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	xbmp "golang.org/x/image/bmp"
)

func encode(t *testing.T, m *Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return buf.Bytes()
}

func TestEncodeMatchesReferenceDecoder(t *testing.T) {
	for _, topDown := range []bool{false, true} {
		m, err := Synthesize("corners", 3, 2, White)
		if err != nil {
			t.Fatalf("Synthesize: %v", err)
		}
		m.TopDown = topDown
		data := encode(t, m)

		if len(data) != HeadersSize+ImageSize(3, 2) {
			t.Fatalf("encoded %d bytes, expected %d", len(data), HeadersSize+ImageSize(3, 2))
		}

		img, err := xbmp.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("x/image/bmp decode (topDown=%v): %v", topDown, err)
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				want := m.At(x, y)
				got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				if got.R != want.R || got.G != want.G || got.B != want.B {
					t.Errorf("topDown=%v (%d,%d): got %v, want %+v", topDown, x, y, got, want)
				}
			}
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	m, err := Synthesize("gradient", 5, 3, Black)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	got, err := Decode(bytes.NewReader(encode(t, m)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("decoded image differs (-want +got):\n%s", diff)
	}
}

func TestDecodeTruncatedPixels(t *testing.T) {
	m, _ := Synthesize("solid", 4, 4, Red)
	data := encode(t, m)
	_, err := Decode(bytes.NewReader(data[:len(data)-5]))
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
}

func TestGetInfo(t *testing.T) {
	m, _ := Synthesize("checker", 7, 3, White)
	m.TopDown = true
	data := encode(t, m)

	info, err := GetInfo(data)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.Width != 7 || info.Height != 3 || !info.TopDown {
		t.Errorf("unexpected geometry: %dx%d topDown=%v", info.Width, info.Height, info.TopDown)
	}
	if info.Padding != 3 || info.Stride != 24 {
		t.Errorf("padding=%d stride=%d, expected 3 and 24", info.Padding, info.Stride)
	}
	if info.Unsupported != nil {
		t.Errorf("unexpected unsupported reason: %v", info.Unsupported)
	}
	if info.Truncated() {
		t.Error("complete file reported as truncated")
	}

	info, err = GetInfo(data[:len(data)-1])
	if err != nil {
		t.Fatalf("GetInfo on short file: %v", err)
	}
	if !info.Truncated() {
		t.Error("short file not reported as truncated")
	}

	w, h, err := CheckDecodable(data)
	if err != nil {
		t.Fatalf("CheckDecodable: %v", err)
	}
	if w != 7 || h != 3 {
		t.Errorf("CheckDecodable bounds %dx%d, expected 7x3", w, h)
	}
}

func TestSynthesizeUnknownPattern(t *testing.T) {
	if _, err := Synthesize("plaid", 2, 2, White); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}

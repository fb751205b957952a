package bmp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeadersWireSize(t *testing.T) {
	h := NewHeaders(4, 4)
	var buf bytes.Buffer
	if err := h.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != HeadersSize {
		t.Fatalf("headers encode to %d bytes, expected %d", buf.Len(), HeadersSize)
	}
	if buf.Bytes()[0] != 'B' || buf.Bytes()[1] != 'M' {
		t.Errorf("missing BM signature, got % x", buf.Bytes()[:2])
	}

	got, err := ReadHeaders(&buf)
	if err != nil {
		t.Fatalf("ReadHeaders: %v", err)
	}
	if diff := cmp.Diff(h, *got); diff != "" {
		t.Errorf("headers changed across write/read (-want +got):\n%s", diff)
	}
}

func TestNewHeadersSizes(t *testing.T) {
	h := NewHeaders(3, -2)
	// 3 pixels = 9 bytes + 3 padding, two rows
	if h.Info.SizeImage != 24 {
		t.Errorf("SizeImage = %d, expected 24", h.Info.SizeImage)
	}
	if h.File.Size != 24+HeadersSize {
		t.Errorf("file size = %d, expected %d", h.File.Size, 24+HeadersSize)
	}
	if !h.TopDown() {
		t.Error("negative height should be top-down")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Headers)
		ok     bool
	}{
		{"valid", func(*Headers) {}, true},
		{"top-down", func(h *Headers) { h.Info.Height = -4 }, true},
		{"bad magic", func(h *Headers) { h.File.Type = 0x4D43 }, false},
		{"bad offset", func(h *Headers) { h.File.OffBits = 1078 }, false},
		{"v5 header", func(h *Headers) { h.Info.Size = 124 }, false},
		{"8 bit", func(h *Headers) { h.Info.BitCount = 8 }, false},
		{"32 bit", func(h *Headers) { h.Info.BitCount = 32 }, false},
		{"rle", func(h *Headers) { h.Info.Compression = 1 }, false},
		{"zero width", func(h *Headers) { h.Info.Width = 0 }, false},
		{"zero height", func(h *Headers) { h.Info.Height = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeaders(4, 4)
			tt.mutate(&h)
			err := h.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrUnsupportedFormat) {
				t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
			}
		})
	}
}

func TestReadHeadersTruncated(t *testing.T) {
	h := NewHeaders(2, 2)
	var buf bytes.Buffer
	if err := h.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	for _, n := range []int{0, 1, FileHeaderSize, HeadersSize - 1} {
		_, err := ReadHeaders(bytes.NewReader(buf.Bytes()[:n]))
		if !errors.Is(err, ErrTruncatedInput) {
			t.Errorf("%d bytes: expected ErrTruncatedInput, got %v", n, err)
		}
	}
}

func TestPadding(t *testing.T) {
	tests := []struct{ width, padding, stride int }{
		{1, 1, 4},
		{2, 2, 8},
		{3, 3, 12},
		{4, 0, 12},
		{5, 1, 16},
		{8, 0, 24},
		{101, 1, 304},
	}
	for _, tt := range tests {
		if got := Padding(tt.width); got != tt.padding {
			t.Errorf("Padding(%d) = %d, expected %d", tt.width, got, tt.padding)
		}
		if got := Stride(tt.width); got != tt.stride {
			t.Errorf("Stride(%d) = %d, expected %d", tt.width, got, tt.stride)
		}
		if Stride(tt.width)%4 != 0 {
			t.Errorf("Stride(%d) not a multiple of 4", tt.width)
		}
	}
}

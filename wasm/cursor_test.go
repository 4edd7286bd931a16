package wasm

import "testing"

func TestCursorReadStr(t *testing.T) {
	data := []byte{0x05, 'h', 'e', 'l', 'l', 'o', 0xFF}
	c := newCursor(data)
	s, err := c.readStr()
	if err != nil {
		t.Fatalf("readStr: %v", err)
	}
	if s != "hello" {
		t.Fatalf("got %q, want %q", s, "hello")
	}
	if c.offset != 6 {
		t.Fatalf("offset = %d, want 6", c.offset)
	}
}

func TestCursorReadStrInvalidUTF8(t *testing.T) {
	data := []byte{0x02, 0xFF, 0xFE}
	c := newCursor(data)
	if _, err := c.readStr(); err == nil {
		t.Fatal("expected invalid UTF-8 error")
	}
}

func TestCursorWindowBoundary(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	c := newCursor(data)
	prev := c.pushWindow(2)
	if _, err := c.readU8(); err != nil {
		t.Fatalf("first read: %v", err)
	}
	if _, err := c.readU8(); err != nil {
		t.Fatalf("second read: %v", err)
	}
	if _, err := c.readU8(); err == nil {
		t.Fatal("expected truncation past window end")
	}
	c.popWindow(prev)
	if c.readEnd != len(data) {
		t.Fatalf("readEnd = %d after popWindow, want %d", c.readEnd, len(data))
	}
}

func TestCursorReadByteVec(t *testing.T) {
	data := []byte{0x03, 0xAA, 0xBB, 0xCC}
	c := newCursor(data)
	b, err := c.readByteVec()
	if err != nil {
		t.Fatalf("readByteVec: %v", err)
	}
	if !bytesEqual(b, []byte{0xAA, 0xBB, 0xCC}) {
		t.Fatalf("got %x", b)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package wasm

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// cursor owns the input byte slice and a monotonically increasing read
// offset. It never mutates or copies the underlying bytes; every
// fixed-width or LEB read either advances offset by exactly the number of
// bytes consumed or fails without advancing it at all. Composite reads
// (readStr, readByteVec, readType) can fail after their leading LEB has
// already been consumed, leaving offset just past it.
//
// readEnd narrows as the decoder enters a section, then a code-body or
// custom-subsection window inside that section. Nested windows are
// managed by the caller saving and restoring readEnd around a decode
// call — cursor itself has no stack, since nesting never goes deeper
// than a section body containing at most one code-body or
// custom-subsection window at a time.
type cursor struct {
	data    []byte
	offset  int
	readEnd int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data, offset: 0, readEnd: len(data)}
}

func (c *cursor) atEnd() bool { return c.offset >= c.readEnd }

func (c *cursor) remaining() int { return c.readEnd - c.offset }

// pushWindow narrows readEnd to end and returns the previous value, to
// be restored with popWindow once the caller has verified offset == end.
func (c *cursor) pushWindow(end int) int {
	prev := c.readEnd
	c.readEnd = end
	return prev
}

func (c *cursor) popWindow(prev int) { c.readEnd = prev }

func (c *cursor) readU8() (byte, error) {
	if c.offset+1 > c.readEnd {
		return 0, errTruncation(c.offset, "u8")
	}
	b := c.data[c.offset]
	c.offset++
	return b, nil
}

// readU32LE reads a fixed 4-byte little-endian integer (used only for the
// module magic and version fields, which precede any LEB-encoded data).
func (c *cursor) readU32LE() (uint32, error) {
	if c.offset+4 > c.readEnd {
		return 0, errTruncation(c.offset, "u32")
	}
	v := binary.LittleEndian.Uint32(c.data[c.offset : c.offset+4])
	c.offset += 4
	return v, nil
}

func (c *cursor) readF32Bits() (float32, error) {
	if c.offset+4 > c.readEnd {
		return 0, errTruncation(c.offset, "f32")
	}
	bits := binary.LittleEndian.Uint32(c.data[c.offset : c.offset+4])
	c.offset += 4
	return math.Float32frombits(bits), nil
}

func (c *cursor) readF64Bits() (float64, error) {
	if c.offset+8 > c.readEnd {
		return 0, errTruncation(c.offset, "f64")
	}
	bits := binary.LittleEndian.Uint64(c.data[c.offset : c.offset+8])
	c.offset += 8
	return math.Float64frombits(bits), nil
}

func (c *cursor) readVarU32(what string) (uint32, error) {
	start := c.offset
	v, n, err := readVarU32(c.data[c.offset:c.readEnd])
	if err != nil {
		if err == errLEBTruncated {
			return 0, errTruncation(start, what)
		}
		return 0, errMalformedLEB(start, what)
	}
	c.offset += n
	return v, nil
}

func (c *cursor) readVarS32(what string) (int32, error) {
	start := c.offset
	v, n, err := readVarS32(c.data[c.offset:c.readEnd])
	if err != nil {
		if err == errLEBTruncated {
			return 0, errTruncation(start, what)
		}
		return 0, errMalformedLEB(start, what)
	}
	c.offset += n
	return v, nil
}

func (c *cursor) readVarS64(what string) (int64, error) {
	start := c.offset
	v, n, err := readVarS64(c.data[c.offset:c.readEnd])
	if err != nil {
		if err == errLEBTruncated {
			return 0, errTruncation(start, what)
		}
		return 0, errMalformedLEB(start, what)
	}
	c.offset += n
	return v, nil
}

// readIndex reads a u32 LEB used as an index into some table (types,
// functions, locals, globals, labels...).
func (c *cursor) readIndex(what string) (uint32, error) {
	return c.readVarU32(what)
}

// readType reads a value/block-signature type tag: a signed-32 LEB
// constrained to the single-byte range [-128, 127), reinterpreted as a
// type byte.
func (c *cursor) readType() (ValType, error) {
	start := c.offset
	v, err := c.readVarS32("type")
	if err != nil {
		return 0, err
	}
	if v < -128 || v >= 127 {
		return 0, errOutOfRange(start, "type tag %d out of single-byte range", v)
	}
	return ValType(int8(v)), nil
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || c.offset+n > c.readEnd {
		return nil, errTruncation(c.offset, "bytes")
	}
	b := c.data[c.offset : c.offset+n]
	c.offset += n
	return b, nil
}

// readByteVec reads a LEB-prefixed length followed by that many raw
// bytes, with no text validation (used for data segment payloads).
func (c *cursor) readByteVec() ([]byte, error) {
	n, err := c.readVarU32("byte vector length")
	if err != nil {
		return nil, err
	}
	return c.readBytes(int(n))
}

// readStr reads a LEB-prefixed length followed by a UTF-8 validated
// string view into the input buffer.
func (c *cursor) readStr() (string, error) {
	n, err := c.readVarU32("string length")
	if err != nil {
		return "", err
	}
	strStart := c.offset
	b, err := c.readBytes(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errInvalidUTF8(strStart)
	}
	return string(b), nil
}

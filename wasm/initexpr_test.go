package wasm

import "testing"

func newTestDecoder(data []byte) *decoder {
	return &decoder{
		c:                newCursor(data),
		sink:             BaseSink{},
		lastKnownSection: SectionInvalid,
	}
}

func TestDecodeInitExprI32Const(t *testing.T) {
	d := newTestDecoder([]byte{0x41, 0x2A, 0x0B}) // i32.const 42; end
	expr, err := d.decodeInitExpr()
	if err != nil {
		t.Fatalf("decodeInitExpr: %v", err)
	}
	if expr.Op != InitOpI32Const || expr.I32 != 42 {
		t.Fatalf("expr = %+v", expr)
	}
	if d.c.offset != 3 {
		t.Fatalf("offset = %d, want 3", d.c.offset)
	}
}

func TestDecodeInitExprGlobalGetRequiresImport(t *testing.T) {
	d := newTestDecoder([]byte{0x23, 0x00, 0x0B}) // global.get 0; end
	d.numGlobalImports = 0
	if _, err := d.decodeInitExpr(); err == nil {
		t.Fatal("expected error: global.get must reference an imported global")
	}
}

func TestDecodeInitExprGlobalGetOK(t *testing.T) {
	d := newTestDecoder([]byte{0x23, 0x00, 0x0B})
	d.numGlobalImports = 1
	expr, err := d.decodeInitExpr()
	if err != nil {
		t.Fatalf("decodeInitExpr: %v", err)
	}
	if expr.Op != InitOpGlobalGet || expr.Index != 0 {
		t.Fatalf("expr = %+v", expr)
	}
}

func TestDecodeInitExprRejectsSecondInstruction(t *testing.T) {
	d := newTestDecoder([]byte{0x41, 0x00, 0x41, 0x00}) // i32.const 0; i32.const 0
	if _, err := d.decodeInitExpr(); err == nil {
		t.Fatal("expected error: more than one instruction")
	}
}

func TestDecodeInitExprLeadingEndIsEmpty(t *testing.T) {
	d := newTestDecoder([]byte{0x0B}) // end
	expr, err := d.decodeInitExpr()
	if err != nil {
		t.Fatalf("decodeInitExpr: %v", err)
	}
	if expr.Op != InitOpEmpty {
		t.Fatalf("expr = %+v, want InitOpEmpty", expr)
	}
	if d.c.offset != 1 {
		t.Fatalf("offset = %d, want 1", d.c.offset)
	}
}

func TestDecodeInitExprRejectsUnknownOpcode(t *testing.T) {
	d := newTestDecoder([]byte{0x20, 0x00, 0x0B}) // local.get 0; end
	if _, err := d.decodeInitExpr(); err == nil {
		t.Fatal("expected error: local.get invalid in init expr")
	}
}

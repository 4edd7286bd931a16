package wasm

import "testing"

func TestReadOpcodePlain(t *testing.T) {
	d := newTestDecoder([]byte{0x01}) // nop
	op, err := d.readOpcode()
	if err != nil {
		t.Fatalf("readOpcode: %v", err)
	}
	if op != OpNop {
		t.Fatalf("op = %v, want OpNop", op)
	}
}

func TestReadOpcodeSaturatingTruncPrefix(t *testing.T) {
	d := newTestDecoder([]byte{0xFC, 0x02}) // i32.trunc_sat_f64_s
	op, err := d.readOpcode()
	if err != nil {
		t.Fatalf("readOpcode: %v", err)
	}
	if op != OpI32TruncSatF64S {
		t.Fatalf("op = %v, want OpI32TruncSatF64S", op)
	}
}

func TestReadOpcodeUnknownPrefixedSubOpcode(t *testing.T) {
	d := newTestDecoder([]byte{0xFC, 0x08}) // sub-opcode 8 is out of range
	if _, err := d.readOpcode(); err == nil {
		t.Fatal("expected error: unknown prefixed sub-opcode")
	}
}

func TestDecodeExprSaturatingTruncRejectedByDefault(t *testing.T) {
	d := newTestDecoder([]byte{0xFC, 0x00, 0x0B}) // i32.trunc_sat_f32_s; end
	d.sink = BaseSink{}
	if err := d.decodeExpr(); err == nil {
		t.Fatal("expected error: saturating truncation requires the feature")
	}
}

func TestDecodeExprSaturatingTruncAllowedWhenEnabled(t *testing.T) {
	d := newTestDecoder([]byte{0xFC, 0x00, 0x0B})
	d.sink = BaseSink{}
	d.opts.Features.SaturatingFloatToIntEnabled = true
	if err := d.decodeExpr(); err != nil {
		t.Fatalf("decodeExpr: %v", err)
	}
}

func TestDecodeExprThrowRejectedWithoutExceptions(t *testing.T) {
	d := newTestDecoder([]byte{0x08, 0x00, 0x0B}) // throw 0; end
	d.sink = BaseSink{}
	if err := d.decodeExpr(); err == nil {
		t.Fatal("expected error: throw requires the exceptions feature")
	}
}

func TestDecodeExprThrowOutOfRangeWithExceptions(t *testing.T) {
	d := newTestDecoder([]byte{0x08, 0x00, 0x0B}) // throw 0; end
	d.sink = BaseSink{}
	d.opts.Features.ExceptionsEnabled = true
	// no exceptions declared: numTotalExceptions() == 0
	if err := d.decodeExpr(); err == nil {
		t.Fatal("expected error: throw exception index out of range")
	}
}

func TestDecodeExprCatchAllRejectedWithoutExceptions(t *testing.T) {
	d := newTestDecoder([]byte{0x19, 0x0B}) // catch_all; end
	d.sink = BaseSink{}
	if err := d.decodeExpr(); err == nil {
		t.Fatal("expected error: catch_all requires the exceptions feature")
	}
}

func TestDecodeExprCatchAllAllowedWhenEnabled(t *testing.T) {
	d := newTestDecoder([]byte{0x19, 0x0B}) // catch_all; end
	d.sink = BaseSink{}
	d.opts.Features.ExceptionsEnabled = true
	if err := d.decodeExpr(); err != nil {
		t.Fatalf("decodeExpr: %v", err)
	}
}

func TestDecodeExprCallIndirectRequiresZeroReservedByte(t *testing.T) {
	d := newTestDecoder([]byte{0x11, 0x00, 0x01, 0x0B}) // call_indirect 0, reserved=1; end
	d.sink = BaseSink{}
	d.numSignatures = 1
	if err := d.decodeExpr(); err == nil {
		t.Fatal("expected error: call_indirect reserved byte must be 0")
	}
}

func TestDecodeExprLoadStoreMemArg(t *testing.T) {
	d := newTestDecoder([]byte{
		0x28, 0x02, 0x04, // i32.load align=2 offset=4
		0x36, 0x02, 0x04, // i32.store align=2 offset=4
		0x0B, // end
	})
	r := &recordingOpcodeSink{}
	d.sink = r
	if err := d.decodeExpr(); err != nil {
		t.Fatalf("decodeExpr: %v", err)
	}
	if r.loads != 1 || r.stores != 1 {
		t.Fatalf("loads=%d stores=%d, want 1 and 1", r.loads, r.stores)
	}
}

func TestDecodeExprBrTable(t *testing.T) {
	d := newTestDecoder([]byte{
		0x0E,       // br_table
		0x02,       // 2 targets
		0x00, 0x01, // targets
		0x00, // default
		0x0B, // end
	})
	r := &recordingOpcodeSink{}
	d.sink = r
	if err := d.decodeExpr(); err != nil {
		t.Fatalf("decodeExpr: %v", err)
	}
	if len(r.brTableTargets) != 2 {
		t.Fatalf("brTableTargets = %v, want 2 entries", r.brTableTargets)
	}
}

func TestDecodeExprNestedBlockEnd(t *testing.T) {
	// block; nop; end (nested); end (function boundary)
	d := newTestDecoder([]byte{0x02, 0x40, 0x01, 0x0B, 0x0B})
	r := &recordingOpcodeSink{}
	d.sink = r
	if err := d.decodeExpr(); err != nil {
		t.Fatalf("decodeExpr: %v", err)
	}
	if r.endExprCount != 1 || !r.sawEndFunc {
		t.Fatalf("endExprCount=%d sawEndFunc=%v", r.endExprCount, r.sawEndFunc)
	}
}

type recordingOpcodeSink struct {
	BaseSink
	loads, stores  int
	brTableTargets []uint32
	endExprCount   int
	sawEndFunc     bool
}

func (r *recordingOpcodeSink) OnLoad(Opcode, uint32, uint32) error  { r.loads++; return nil }
func (r *recordingOpcodeSink) OnStore(Opcode, uint32, uint32) error { r.stores++; return nil }
func (r *recordingOpcodeSink) OnBrTable(targets []uint32, _ uint32) error {
	r.brTableTargets = targets
	return nil
}
func (r *recordingOpcodeSink) OnEndExpr() error { r.endExprCount++; return nil }
func (r *recordingOpcodeSink) OnEndFunc() error { r.sawEndFunc = true; return nil }

package wasm

// decodeInitExpr reads the constrained instruction sequence used for
// global initializers and segment offsets: at most one constant-producing
// instruction, followed by End. Anything else is a decode error, not a
// sink decision, since neither globals nor segment offsets may reference
// runtime state.
func (d *decoder) decodeInitExpr() (InitExpr, error) {
	opStart := d.c.offset
	op, err := d.readOpcode()
	if err != nil {
		return InitExpr{}, err
	}

	var expr InitExpr
	switch op {
	case OpEnd:
		// A leading End is itself a complete, empty init expression;
		// there is no second opcode to read.
		if err := d.sinkCall("OnInitExprEnd", d.sink.OnInitExprEnd()); err != nil {
			return InitExpr{}, err
		}
		return InitExpr{Op: InitOpEmpty}, nil
	case OpI32Const:
		v, err := d.c.readVarS32("init i32.const")
		if err != nil {
			return InitExpr{}, err
		}
		expr = InitExpr{Op: InitOpI32Const, I32: v}
		if err := d.sinkCall("OnInitExprI32Const", d.sink.OnInitExprI32Const(v)); err != nil {
			return InitExpr{}, err
		}
	case OpI64Const:
		v, err := d.c.readVarS64("init i64.const")
		if err != nil {
			return InitExpr{}, err
		}
		expr = InitExpr{Op: InitOpI64Const, I64: v}
		if err := d.sinkCall("OnInitExprI64Const", d.sink.OnInitExprI64Const(v)); err != nil {
			return InitExpr{}, err
		}
	case OpF32Const:
		v, err := d.c.readF32Bits()
		if err != nil {
			return InitExpr{}, err
		}
		expr = InitExpr{Op: InitOpF32Const, F32: v}
		if err := d.sinkCall("OnInitExprF32Const", d.sink.OnInitExprF32Const(v)); err != nil {
			return InitExpr{}, err
		}
	case OpF64Const:
		v, err := d.c.readF64Bits()
		if err != nil {
			return InitExpr{}, err
		}
		expr = InitExpr{Op: InitOpF64Const, F64: v}
		if err := d.sinkCall("OnInitExprF64Const", d.sink.OnInitExprF64Const(v)); err != nil {
			return InitExpr{}, err
		}
	case OpGlobalGet:
		idx, err := d.c.readIndex("init global.get index")
		if err != nil {
			return InitExpr{}, err
		}
		if idx >= d.numGlobalImports {
			return InitExpr{}, errOutOfRange(opStart, "init expr global.get %d must reference an imported global (have %d)", idx, d.numGlobalImports)
		}
		expr = InitExpr{Op: InitOpGlobalGet, Index: idx}
		if err := d.sinkCall("OnInitExprGlobalGet", d.sink.OnInitExprGlobalGet(idx)); err != nil {
			return InitExpr{}, err
		}
	default:
		return InitExpr{}, errUnexpectedOpcode(opStart, "opcode 0x%X is not valid in an init expression", uint32(op))
	}

	endStart := d.c.offset
	end, err := d.readOpcode()
	if err != nil {
		return InitExpr{}, err
	}
	if end != OpEnd {
		return InitExpr{}, errUnexpectedOpcode(endStart, "init expression has more than one instruction")
	}
	if err := d.sinkCall("OnInitExprEnd", d.sink.OnInitExprEnd()); err != nil {
		return InitExpr{}, err
	}
	return expr, nil
}

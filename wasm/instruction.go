package wasm

// readOpcode reads a single-byte opcode, or, when the byte is the 0xFC
// prefix, a following u32 LEB sub-opcode folded into the saturating-trunc
// range.
func (d *decoder) readOpcode() (Opcode, error) {
	start := d.c.offset
	b, err := d.c.readU8()
	if err != nil {
		return 0, err
	}
	if b != opcodePrefix {
		return Opcode(b), nil
	}
	sub, err := d.c.readVarU32("prefixed opcode")
	if err != nil {
		return 0, err
	}
	if sub > 7 {
		return 0, errInvalidTag(start, "unknown prefixed sub-opcode %d", sub)
	}
	return prefixSaturatingTrunc + Opcode(sub), nil
}

func (d *decoder) decodeCodeSection() error {
	count, err := d.c.readVarU32("code entry count")
	if err != nil {
		return err
	}
	if count != d.numFunctionSigs {
		return errOutOfRange(d.c.offset, "code section has %d bodies, function section declared %d", count, d.numFunctionSigs)
	}
	if err := d.sinkCall("BeginCodeSection", d.sink.BeginCodeSection(count)); err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		if err := d.decodeFunctionBody(d.numFuncImports + i); err != nil {
			return err
		}
	}
	d.numFunctionBodies = count
	return d.sinkCall("EndCodeSection", d.sink.EndCodeSection())
}

func (d *decoder) decodeFunctionBody(funcIndex uint32) error {
	sizeStart := d.c.offset
	bodySize, err := d.c.readVarU32("function body size")
	if err != nil {
		return err
	}
	bodyEnd := d.c.offset + int(bodySize)
	if bodyEnd > d.c.readEnd {
		return errTruncation(sizeStart, "function body")
	}

	if err := d.sinkCall("BeginFunctionBody", d.sink.BeginFunctionBody(funcIndex, bodySize)); err != nil {
		return err
	}

	prevEnd := d.c.pushWindow(bodyEnd)

	numDecls, err := d.c.readVarU32("local decl count")
	if err != nil {
		d.c.popWindow(prevEnd)
		return err
	}
	for j := uint32(0); j < numDecls; j++ {
		declCount, err := d.c.readVarU32("local decl repeat count")
		if err != nil {
			d.c.popWindow(prevEnd)
			return err
		}
		declType, err := d.readConcreteType()
		if err != nil {
			d.c.popWindow(prevEnd)
			return err
		}
		decl := LocalDecl{Count: declCount, Type: declType}
		if err := d.sinkCall("OnLocalDecl", d.sink.OnLocalDecl(funcIndex, j, decl)); err != nil {
			d.c.popWindow(prevEnd)
			return err
		}
	}

	if err := d.decodeExpr(); err != nil {
		d.c.popWindow(prevEnd)
		return err
	}

	d.c.popWindow(prevEnd)
	if d.c.offset != bodyEnd {
		return errUnfinishedWindow(d.c.offset, "function body %d did not consume exactly its declared size", funcIndex)
	}
	return d.sinkCall("EndFunctionBody", d.sink.EndFunctionBody(funcIndex))
}

// decodeExpr drives the instruction stream of one function body, from
// just after its local declarations to the End that closes the body
// itself. depth tracks nested block/loop/if/try openers so the boundary
// End can be told apart from a nested one.
func (d *decoder) decodeExpr() error {
	depth := uint32(0)
	for {
		opStart := d.c.offset
		op, err := d.readOpcode()
		if err != nil {
			return err
		}
		if err := d.sinkCall("OnOpcode", d.sink.OnOpcode(op)); err != nil {
			return err
		}

		switch {
		case op == OpEnd:
			if depth == 0 {
				return d.sinkCall("OnEndFunc", d.sink.OnEndFunc())
			}
			depth--
			if err := d.sinkCall("OnEndExpr", d.sink.OnEndExpr()); err != nil {
				return err
			}

		case op == OpBlock:
			sig, err := d.readBlockSig()
			if err != nil {
				return err
			}
			depth++
			if err := d.sinkCall("OnBlock", d.sink.OnBlock(sig)); err != nil {
				return err
			}

		case op == OpLoop:
			sig, err := d.readBlockSig()
			if err != nil {
				return err
			}
			depth++
			if err := d.sinkCall("OnLoop", d.sink.OnLoop(sig)); err != nil {
				return err
			}

		case op == OpIf:
			sig, err := d.readBlockSig()
			if err != nil {
				return err
			}
			depth++
			if err := d.sinkCall("OnIf", d.sink.OnIf(sig)); err != nil {
				return err
			}

		case op == OpElse:
			if err := d.sinkCall("OnElse", d.sink.OnElse()); err != nil {
				return err
			}

		case op == OpTry:
			if !d.opts.Features.ExceptionsEnabled {
				return errUnexpectedOpcode(opStart, "try requires the exceptions feature")
			}
			sig, err := d.readBlockSig()
			if err != nil {
				return err
			}
			depth++
			if err := d.sinkCall("OnTry", d.sink.OnTry(sig)); err != nil {
				return err
			}

		case op == OpCatch:
			if !d.opts.Features.ExceptionsEnabled {
				return errUnexpectedOpcode(opStart, "catch requires the exceptions feature")
			}
			idxStart := d.c.offset
			idx, err := d.c.readIndex("catch exception index")
			if err != nil {
				return err
			}
			if idx >= d.numTotalExceptions() {
				return errOutOfRange(idxStart, "catch exception index %d out of range (have %d)", idx, d.numTotalExceptions())
			}
			if err := d.sinkCall("OnCatch", d.sink.OnCatch(idx)); err != nil {
				return err
			}

		case op == OpCatchAll:
			if !d.opts.Features.ExceptionsEnabled {
				return errUnexpectedOpcode(opStart, "catch_all requires the exceptions feature")
			}
			if err := d.sinkCall("OnCatchAll", d.sink.OnCatchAll()); err != nil {
				return err
			}

		case op == OpThrow:
			if !d.opts.Features.ExceptionsEnabled {
				return errUnexpectedOpcode(opStart, "throw requires the exceptions feature")
			}
			idxStart := d.c.offset
			idx, err := d.c.readIndex("throw exception index")
			if err != nil {
				return err
			}
			if idx >= d.numTotalExceptions() {
				return errOutOfRange(idxStart, "throw exception index %d out of range (have %d)", idx, d.numTotalExceptions())
			}
			if err := d.sinkCall("OnThrow", d.sink.OnThrow(idx)); err != nil {
				return err
			}

		case op == OpRethrow:
			if !d.opts.Features.ExceptionsEnabled {
				return errUnexpectedOpcode(opStart, "rethrow requires the exceptions feature")
			}
			rel, err := d.c.readIndex("rethrow relative depth")
			if err != nil {
				return err
			}
			if err := d.sinkCall("OnRethrow", d.sink.OnRethrow(rel)); err != nil {
				return err
			}

		case op == OpBr:
			rel, err := d.c.readIndex("br depth")
			if err != nil {
				return err
			}
			if err := d.sinkCall("OnBrDepth", d.sink.OnBrDepth(rel)); err != nil {
				return err
			}

		case op == OpBrIf:
			rel, err := d.c.readIndex("br_if depth")
			if err != nil {
				return err
			}
			if err := d.sinkCall("OnBrIfDepth", d.sink.OnBrIfDepth(rel)); err != nil {
				return err
			}

		case op == OpBrTable:
			n, err := d.c.readVarU32("br_table target count")
			if err != nil {
				return err
			}
			targets := make([]uint32, n)
			for k := uint32(0); k < n; k++ {
				targets[k], err = d.c.readIndex("br_table target depth")
				if err != nil {
					return err
				}
			}
			def, err := d.c.readIndex("br_table default depth")
			if err != nil {
				return err
			}
			if err := d.sinkCall("OnBrTable", d.sink.OnBrTable(targets, def)); err != nil {
				return err
			}

		case op == OpCall:
			idxStart := d.c.offset
			idx, err := d.c.readIndex("call function index")
			if err != nil {
				return err
			}
			if idx >= d.numTotalFuncs() {
				return errOutOfRange(idxStart, "call function index %d out of range (have %d)", idx, d.numTotalFuncs())
			}
			if err := d.sinkCall("OnCall", d.sink.OnCall(idx)); err != nil {
				return err
			}

		case op == OpCallIndirect:
			idxStart := d.c.offset
			idx, err := d.c.readIndex("call_indirect type index")
			if err != nil {
				return err
			}
			if idx >= d.numSignatures {
				return errOutOfRange(idxStart, "call_indirect type index %d out of range (have %d)", idx, d.numSignatures)
			}
			reservedStart := d.c.offset
			reserved, err := d.c.readU8()
			if err != nil {
				return err
			}
			if reserved != 0 {
				return errInvalidTag(reservedStart, "call_indirect reserved byte must be 0")
			}
			if err := d.sinkCall("OnCallIndirect", d.sink.OnCallIndirect(idx)); err != nil {
				return err
			}

		case op == OpLocalGet, op == OpLocalSet, op == OpLocalTee:
			idx, err := d.c.readIndex("local index")
			if err != nil {
				return err
			}
			switch op {
			case OpLocalGet:
				err = d.sinkCall("OnLocalGet", d.sink.OnLocalGet(idx))
			case OpLocalSet:
				err = d.sinkCall("OnLocalSet", d.sink.OnLocalSet(idx))
			default:
				err = d.sinkCall("OnLocalTee", d.sink.OnLocalTee(idx))
			}
			if err != nil {
				return err
			}

		case op == OpGlobalGet, op == OpGlobalSet:
			idxStart := d.c.offset
			idx, err := d.c.readIndex("global index")
			if err != nil {
				return err
			}
			if idx >= d.numTotalGlobals() {
				return errOutOfRange(idxStart, "global index %d out of range (have %d)", idx, d.numTotalGlobals())
			}
			if op == OpGlobalGet {
				err = d.sinkCall("OnGlobalGet", d.sink.OnGlobalGet(idx))
			} else {
				err = d.sinkCall("OnGlobalSet", d.sink.OnGlobalSet(idx))
			}
			if err != nil {
				return err
			}

		case isLoadOpcode(op):
			align, offset, err := d.readMemArg()
			if err != nil {
				return err
			}
			if err := d.sinkCall("OnLoad", d.sink.OnLoad(op, align, offset)); err != nil {
				return err
			}

		case isStoreOpcode(op):
			align, offset, err := d.readMemArg()
			if err != nil {
				return err
			}
			if err := d.sinkCall("OnStore", d.sink.OnStore(op, align, offset)); err != nil {
				return err
			}

		case op == OpCurrentMemory:
			if err := d.readMemoryReserved(); err != nil {
				return err
			}
			if err := d.sinkCall("OnMemorySize", d.sink.OnMemorySize()); err != nil {
				return err
			}

		case op == OpGrowMemory:
			if err := d.readMemoryReserved(); err != nil {
				return err
			}
			if err := d.sinkCall("OnMemoryGrow", d.sink.OnMemoryGrow()); err != nil {
				return err
			}

		case op == OpI32Const:
			v, err := d.c.readVarS32("i32.const")
			if err != nil {
				return err
			}
			if err := d.sinkCall("OnI32Const", d.sink.OnI32Const(v)); err != nil {
				return err
			}

		case op == OpI64Const:
			v, err := d.c.readVarS64("i64.const")
			if err != nil {
				return err
			}
			if err := d.sinkCall("OnI64Const", d.sink.OnI64Const(v)); err != nil {
				return err
			}

		case op == OpF32Const:
			v, err := d.c.readF32Bits()
			if err != nil {
				return err
			}
			if err := d.sinkCall("OnF32Const", d.sink.OnF32Const(v)); err != nil {
				return err
			}

		case op == OpF64Const:
			v, err := d.c.readF64Bits()
			if err != nil {
				return err
			}
			if err := d.sinkCall("OnF64Const", d.sink.OnF64Const(v)); err != nil {
				return err
			}

		case op == OpUnreachable, op == OpNop, op == OpDrop, op == OpSelect, op == OpReturn,
			op >= opNumericRangeStart && op <= opNumericRangeEnd:
			if err := d.sinkCall("OnBareOpcode", d.sink.OnBareOpcode(op)); err != nil {
				return err
			}

		case isSaturatingTrunc(op):
			if !d.opts.Features.SaturatingFloatToIntEnabled {
				return errUnexpectedOpcode(opStart, "saturating truncation requires the feature to be enabled")
			}
			if err := d.sinkCall("OnBareOpcode", d.sink.OnBareOpcode(op)); err != nil {
				return err
			}

		default:
			return errUnexpectedOpcode(opStart, "unknown opcode 0x%X", uint32(op))
		}
	}
}

func (d *decoder) readBlockSig() (ValType, error) {
	start := d.c.offset
	t, err := d.c.readType()
	if err != nil {
		return 0, err
	}
	if t != ValVoid && !t.IsConcrete() {
		return 0, errInvalidTag(start, "invalid block signature 0x%02X", t.wireByte())
	}
	return t, nil
}

func (d *decoder) readMemArg() (align, offset uint32, err error) {
	align, err = d.c.readVarU32("memarg align")
	if err != nil {
		return 0, 0, err
	}
	offset, err = d.c.readVarU32("memarg offset")
	if err != nil {
		return 0, 0, err
	}
	return align, offset, nil
}

func (d *decoder) readMemoryReserved() error {
	start := d.c.offset
	v, err := d.c.readVarU32("memory reserved")
	if err != nil {
		return err
	}
	if v != 0 {
		return errInvalidTag(start, "memory_size/memory_grow reserved value must be 0")
	}
	return nil
}

func isLoadOpcode(op Opcode) bool {
	return op >= OpI32Load && op <= OpI64Load32U
}

func isStoreOpcode(op Opcode) bool {
	return op >= OpI32Store && op <= OpI64Store32
}

func isSaturatingTrunc(op Opcode) bool {
	return op >= OpI32TruncSatF32S && op <= OpI64TruncSatF64U
}

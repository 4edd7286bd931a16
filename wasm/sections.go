package wasm

// This file implements the per-section decoders. Each follows the same
// shape: read a u32 count, emit a Begin* callback, loop emitting one
// On* per entry, emit the matching End* callback. The Start section is
// the exception: it holds a single function index and has no count.

func (d *decoder) decodeTypeSection() error {
	count, err := d.c.readVarU32("type count")
	if err != nil {
		return err
	}
	if err := d.sinkCall("BeginTypeSection", d.sink.BeginTypeSection(count)); err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		sig, err := d.readSignature()
		if err != nil {
			return err
		}
		if err := d.sinkCall("OnSignature", d.sink.OnSignature(i, sig)); err != nil {
			return err
		}
	}
	d.numSignatures = count
	return d.sinkCall("EndTypeSection", d.sink.EndTypeSection())
}

func (d *decoder) readSignature() (Signature, error) {
	formStart := d.c.offset
	form, err := d.c.readType()
	if err != nil {
		return Signature{}, err
	}
	if form != ValFunc {
		return Signature{}, errInvalidTag(formStart, "unexpected type form 0x%02X, want func (0x60)", form.wireByte())
	}
	params, err := d.readConcreteTypeVec("param count")
	if err != nil {
		return Signature{}, err
	}
	numResultsStart := d.c.offset
	numResults, err := d.c.readVarU32("result count")
	if err != nil {
		return Signature{}, err
	}
	if numResults > 1 {
		return Signature{}, errOutOfRange(numResultsStart, "function type has %d results, want 0 or 1", numResults)
	}
	var results []ValType
	if numResults == 1 {
		t, err := d.readConcreteType()
		if err != nil {
			return Signature{}, err
		}
		results = []ValType{t}
	}
	return Signature{Params: params, Results: results}, nil
}

func (d *decoder) readConcreteType() (ValType, error) {
	start := d.c.offset
	t, err := d.c.readType()
	if err != nil {
		return 0, err
	}
	if !t.IsConcrete() {
		return 0, errInvalidTag(start, "expected concrete value type, got 0x%02X", t.wireByte())
	}
	return t, nil
}

func (d *decoder) readConcreteTypeVec(what string) ([]ValType, error) {
	n, err := d.c.readVarU32(what)
	if err != nil {
		return nil, err
	}
	types := make([]ValType, n)
	for i := uint32(0); i < n; i++ {
		t, err := d.readConcreteType()
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}

func (d *decoder) readLimits(isMemory bool) (Limits, error) {
	flagsStart := d.c.offset
	flags, err := d.c.readU8()
	if err != nil {
		return Limits{}, err
	}
	if flags > 1 {
		return Limits{}, errOutOfRange(flagsStart, "invalid limits flags %d, want 0 or 1", flags)
	}
	hasMax := flags&0x01 != 0

	initStart := d.c.offset
	initial, err := d.c.readVarU32("limits initial")
	if err != nil {
		return Limits{}, err
	}
	l := Limits{Initial: initial, HasMax: hasMax}
	if isMemory && initial > MaxPages {
		return Limits{}, errOutOfRange(initStart, "memory initial %d exceeds max pages %d", initial, MaxPages)
	}
	if hasMax {
		maxStart := d.c.offset
		max, err := d.c.readVarU32("limits max")
		if err != nil {
			return Limits{}, err
		}
		if isMemory && max > MaxPages {
			return Limits{}, errOutOfRange(maxStart, "memory max %d exceeds max pages %d", max, MaxPages)
		}
		if initial > max {
			return Limits{}, errOutOfRange(maxStart, "limits initial %d exceeds max %d", initial, max)
		}
		l.Max = max
	}
	return l, nil
}

func (d *decoder) readTableDesc() (TableDesc, error) {
	elemStart := d.c.offset
	elemType, err := d.c.readType()
	if err != nil {
		return TableDesc{}, err
	}
	if elemType != ValAnyFunc {
		return TableDesc{}, errInvalidTag(elemStart, "unexpected table element type 0x%02X, want anyfunc (0x70)", elemType.wireByte())
	}
	limits, err := d.readLimits(false)
	if err != nil {
		return TableDesc{}, err
	}
	return TableDesc{ElemType: elemType, Limits: limits}, nil
}

func (d *decoder) readMemoryDesc() (MemoryDesc, error) {
	limits, err := d.readLimits(true)
	if err != nil {
		return MemoryDesc{}, err
	}
	return MemoryDesc{Limits: limits}, nil
}

func (d *decoder) readGlobalDesc() (GlobalDesc, error) {
	t, err := d.readConcreteType()
	if err != nil {
		return GlobalDesc{}, err
	}
	mutStart := d.c.offset
	mut, err := d.c.readU8()
	if err != nil {
		return GlobalDesc{}, err
	}
	if mut > 1 {
		return GlobalDesc{}, errOutOfRange(mutStart, "invalid mutability flag %d, want 0 or 1", mut)
	}
	return GlobalDesc{Type: t, Mutable: mut != 0}, nil
}

func (d *decoder) readExceptionDesc() (ExceptionDesc, error) {
	types, err := d.readConcreteTypeVec("exception param count")
	if err != nil {
		return ExceptionDesc{}, err
	}
	return ExceptionDesc{ParamTypes: types}, nil
}

func (d *decoder) decodeImportSection() error {
	count, err := d.c.readVarU32("import count")
	if err != nil {
		return err
	}
	if err := d.sinkCall("BeginImportSection", d.sink.BeginImportSection(count)); err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		module, err := d.c.readStr()
		if err != nil {
			return err
		}
		field, err := d.c.readStr()
		if err != nil {
			return err
		}
		kindStart := d.c.offset
		kindByte, err := d.c.readU8()
		if err != nil {
			return err
		}
		desc := ImportDesc{Kind: ExternalKind(kindByte)}
		switch desc.Kind {
		case ExternalFunc:
			idxStart := d.c.offset
			idx, err := d.c.readIndex("import type index")
			if err != nil {
				return err
			}
			if idx >= d.numSignatures {
				return errOutOfRange(idxStart, "import function type index %d out of range (have %d types)", idx, d.numSignatures)
			}
			desc.FuncTypeIdx = idx
			d.numFuncImports++
		case ExternalTable:
			t, err := d.readTableDesc()
			if err != nil {
				return err
			}
			desc.Table = t
			d.numTableImports++
		case ExternalMemory:
			m, err := d.readMemoryDesc()
			if err != nil {
				return err
			}
			desc.Memory = m
			d.numMemoryImports++
		case ExternalGlobal:
			g, err := d.readGlobalDesc()
			if err != nil {
				return err
			}
			desc.Global = g
			d.numGlobalImports++
		case ExternalException:
			if !d.opts.Features.ExceptionsEnabled {
				return errInvalidTag(kindStart, "exception imports require the exceptions feature")
			}
			e, err := d.readExceptionDesc()
			if err != nil {
				return err
			}
			desc.Exception = e
			d.numExceptionImports++
		default:
			return errInvalidTag(kindStart, "unknown import kind %d", kindByte)
		}
		if err := d.sinkCall("OnImport", d.sink.OnImport(i, module, field, desc)); err != nil {
			return err
		}
	}
	return d.sinkCall("EndImportSection", d.sink.EndImportSection())
}

func (d *decoder) decodeFunctionSection() error {
	count, err := d.c.readVarU32("function count")
	if err != nil {
		return err
	}
	if err := d.sinkCall("BeginFunctionSection", d.sink.BeginFunctionSection(count)); err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		sigStart := d.c.offset
		sigIdx, err := d.c.readIndex("function signature index")
		if err != nil {
			return err
		}
		if sigIdx >= d.numSignatures {
			return errOutOfRange(sigStart, "function signature index %d out of range (have %d types)", sigIdx, d.numSignatures)
		}
		funcIdx := d.numFuncImports + i
		if err := d.sinkCall("OnFunction", d.sink.OnFunction(funcIdx, sigIdx)); err != nil {
			return err
		}
	}
	d.numFunctionSigs = count
	return d.sinkCall("EndFunctionSection", d.sink.EndFunctionSection())
}

func (d *decoder) decodeTableSection() error {
	count, err := d.c.readVarU32("table count")
	if err != nil {
		return err
	}
	if d.numTableImports+count > 1 {
		return errOutOfRange(d.c.offset, "at most one table is allowed, have %d", d.numTableImports+count)
	}
	if err := d.sinkCall("BeginTableSection", d.sink.BeginTableSection(count)); err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		desc, err := d.readTableDesc()
		if err != nil {
			return err
		}
		if err := d.sinkCall("OnTable", d.sink.OnTable(d.numTableImports+i, desc)); err != nil {
			return err
		}
	}
	d.numTables = count
	return d.sinkCall("EndTableSection", d.sink.EndTableSection())
}

func (d *decoder) decodeMemorySection() error {
	count, err := d.c.readVarU32("memory count")
	if err != nil {
		return err
	}
	if d.numMemoryImports+count > 1 {
		return errOutOfRange(d.c.offset, "at most one memory is allowed, have %d", d.numMemoryImports+count)
	}
	if err := d.sinkCall("BeginMemorySection", d.sink.BeginMemorySection(count)); err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		desc, err := d.readMemoryDesc()
		if err != nil {
			return err
		}
		if err := d.sinkCall("OnMemory", d.sink.OnMemory(d.numMemoryImports+i, desc)); err != nil {
			return err
		}
	}
	d.numMemories = count
	return d.sinkCall("EndMemorySection", d.sink.EndMemorySection())
}

func (d *decoder) decodeGlobalSection() error {
	count, err := d.c.readVarU32("global count")
	if err != nil {
		return err
	}
	if err := d.sinkCall("BeginGlobalSection", d.sink.BeginGlobalSection(count)); err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		desc, err := d.readGlobalDesc()
		if err != nil {
			return err
		}
		init, err := d.decodeInitExpr()
		if err != nil {
			return err
		}
		if err := d.sinkCall("OnGlobal", d.sink.OnGlobal(d.numGlobalImports+i, desc, init)); err != nil {
			return err
		}
	}
	d.numGlobals = count
	return d.sinkCall("EndGlobalSection", d.sink.EndGlobalSection())
}

func (d *decoder) decodeExportSection() error {
	count, err := d.c.readVarU32("export count")
	if err != nil {
		return err
	}
	if err := d.sinkCall("BeginExportSection", d.sink.BeginExportSection(count)); err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		name, err := d.c.readStr()
		if err != nil {
			return err
		}
		kindStart := d.c.offset
		kindByte, err := d.c.readU8()
		if err != nil {
			return err
		}
		kind := ExternalKind(kindByte)
		idxStart := d.c.offset
		idx, err := d.c.readIndex("export target index")
		if err != nil {
			return err
		}
		switch kind {
		case ExternalFunc:
			if idx >= d.numTotalFuncs() {
				return errOutOfRange(idxStart, "export function index %d out of range (have %d)", idx, d.numTotalFuncs())
			}
		case ExternalTable:
			if idx >= d.numTotalTables() {
				return errOutOfRange(idxStart, "export table index %d out of range (have %d)", idx, d.numTotalTables())
			}
		case ExternalMemory:
			if idx >= d.numTotalMemories() {
				return errOutOfRange(idxStart, "export memory index %d out of range (have %d)", idx, d.numTotalMemories())
			}
		case ExternalGlobal:
			if idx >= d.numTotalGlobals() {
				return errOutOfRange(idxStart, "export global index %d out of range (have %d)", idx, d.numTotalGlobals())
			}
		case ExternalException:
			if !d.opts.Features.ExceptionsEnabled {
				return errInvalidTag(kindStart, "exception exports require the exceptions feature")
			}
			// Deferred: the exception section may still follow. See
			// verifyDeferredExceptionExports.
			d.pendingExceptionExports = append(d.pendingExceptionExports, idx)
		default:
			return errInvalidTag(kindStart, "unknown export kind %d", kindByte)
		}
		if err := d.sinkCall("OnExport", d.sink.OnExport(i, name, kind, idx)); err != nil {
			return err
		}
	}
	d.numExports = count
	return d.sinkCall("EndExportSection", d.sink.EndExportSection())
}

func (d *decoder) decodeStartSection() error {
	if err := d.sinkCall("BeginStartSection", d.sink.BeginStartSection()); err != nil {
		return err
	}
	idxStart := d.c.offset
	idx, err := d.c.readIndex("start function index")
	if err != nil {
		return err
	}
	if idx >= d.numTotalFuncs() {
		return errOutOfRange(idxStart, "start function index %d out of range (have %d)", idx, d.numTotalFuncs())
	}
	if err := d.sinkCall("OnStart", d.sink.OnStart(idx)); err != nil {
		return err
	}
	return d.sinkCall("EndStartSection", d.sink.EndStartSection())
}

func (d *decoder) decodeElementSection() error {
	count, err := d.c.readVarU32("element segment count")
	if err != nil {
		return err
	}
	if count > 0 && d.numTotalTables() == 0 {
		return errOutOfRange(d.c.offset, "element section requires at least one table")
	}
	if err := d.sinkCall("BeginElementSection", d.sink.BeginElementSection(count)); err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		tblStart := d.c.offset
		tableIdx, err := d.c.readIndex("element table index")
		if err != nil {
			return err
		}
		if tableIdx >= d.numTotalTables() {
			return errOutOfRange(tblStart, "element table index %d out of range (have %d)", tableIdx, d.numTotalTables())
		}
		offset, err := d.decodeInitExpr()
		if err != nil {
			return err
		}
		if err := d.sinkCall("BeginElementSegment", d.sink.BeginElementSegment(i, tableIdx, offset)); err != nil {
			return err
		}
		n, err := d.c.readVarU32("element function index count")
		if err != nil {
			return err
		}
		for j := uint32(0); j < n; j++ {
			fnStart := d.c.offset
			fnIdx, err := d.c.readIndex("element function index")
			if err != nil {
				return err
			}
			if fnIdx >= d.numTotalFuncs() {
				return errOutOfRange(fnStart, "element function index %d out of range (have %d)", fnIdx, d.numTotalFuncs())
			}
			if err := d.sinkCall("OnElementSegmentFuncIndex", d.sink.OnElementSegmentFuncIndex(i, j, fnIdx)); err != nil {
				return err
			}
		}
		if err := d.sinkCall("EndElementSegment", d.sink.EndElementSegment(i)); err != nil {
			return err
		}
	}
	return d.sinkCall("EndElementSection", d.sink.EndElementSection())
}

func (d *decoder) decodeDataSection() error {
	count, err := d.c.readVarU32("data segment count")
	if err != nil {
		return err
	}
	if count > 0 && d.numTotalMemories() == 0 {
		return errOutOfRange(d.c.offset, "data section requires at least one memory")
	}
	if err := d.sinkCall("BeginDataSection", d.sink.BeginDataSection(count)); err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		memStart := d.c.offset
		memIdx, err := d.c.readIndex("data memory index")
		if err != nil {
			return err
		}
		if memIdx >= d.numTotalMemories() {
			return errOutOfRange(memStart, "data memory index %d out of range (have %d)", memIdx, d.numTotalMemories())
		}
		offset, err := d.decodeInitExpr()
		if err != nil {
			return err
		}
		if err := d.sinkCall("BeginDataSegment", d.sink.BeginDataSegment(i, memIdx, offset)); err != nil {
			return err
		}
		data, err := d.c.readByteVec()
		if err != nil {
			return err
		}
		if err := d.sinkCall("OnDataSegmentData", d.sink.OnDataSegmentData(i, data)); err != nil {
			return err
		}
		if err := d.sinkCall("EndDataSegment", d.sink.EndDataSegment(i)); err != nil {
			return err
		}
	}
	return d.sinkCall("EndDataSection", d.sink.EndDataSection())
}

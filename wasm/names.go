package wasm

// decodeNameSection reads a sequence of (type, size)-framed subsections
// with strictly increasing, non-repeating types.
func (d *decoder) decodeNameSection() error {
	if err := d.sinkCall("BeginNameSection", d.sink.BeginNameSection(uint32(d.c.remaining()))); err != nil {
		return err
	}
	lastType := int(-1)
	for !d.c.atEnd() {
		typeStart := d.c.offset
		subType, err := d.c.readU8()
		if err != nil {
			return err
		}
		if int(subType) <= lastType {
			return errOrdering(typeStart, "name subsection type %d out of order", subType)
		}
		lastType = int(subType)

		size, err := d.c.readVarU32("name subsection size")
		if err != nil {
			return err
		}
		subEnd := d.c.offset + int(size)
		if subEnd > d.c.readEnd {
			return errTruncation(typeStart, "name subsection")
		}
		prev := d.c.pushWindow(subEnd)
		var subErr error
		switch NameSubsectionType(subType) {
		case NameSubsectionFunction:
			subErr = d.decodeFunctionNames()
		case NameSubsectionLocal:
			subErr = d.decodeLocalNames()
		default:
			_, subErr = d.c.readBytes(d.c.remaining())
		}
		d.c.popWindow(prev)
		if subErr != nil {
			return subErr
		}
		if d.c.offset != subEnd {
			return errUnfinishedWindow(d.c.offset, "name subsection %d did not consume exactly its declared size", subType)
		}
	}
	return d.sinkCall("EndNameSection", d.sink.EndNameSection())
}

func (d *decoder) decodeFunctionNames() error {
	count, err := d.c.readVarU32("function name count")
	if err != nil {
		return err
	}
	lastIdx := int64(-1)
	for i := uint32(0); i < count; i++ {
		idxStart := d.c.offset
		idx, err := d.c.readIndex("function name index")
		if err != nil {
			return err
		}
		if int64(idx) <= lastIdx {
			return errOrdering(idxStart, "function name index %d out of order", idx)
		}
		lastIdx = int64(idx)
		if idx >= d.numTotalFuncs() {
			return errOutOfRange(idxStart, "function name index %d out of range (have %d)", idx, d.numTotalFuncs())
		}
		name, err := d.c.readStr()
		if err != nil {
			return err
		}
		if err := d.sinkCall("OnFunctionName", d.sink.OnFunctionName(idx, name)); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) decodeLocalNames() error {
	numFuncs, err := d.c.readVarU32("local name function count")
	if err != nil {
		return err
	}
	lastFuncIdx := int64(-1)
	for i := uint32(0); i < numFuncs; i++ {
		funcIdxStart := d.c.offset
		funcIdx, err := d.c.readIndex("local name function index")
		if err != nil {
			return err
		}
		if int64(funcIdx) <= lastFuncIdx {
			return errOrdering(funcIdxStart, "local name function index %d out of order", funcIdx)
		}
		lastFuncIdx = int64(funcIdx)
		if funcIdx >= d.numTotalFuncs() {
			return errOutOfRange(funcIdxStart, "local name function index %d out of range (have %d)", funcIdx, d.numTotalFuncs())
		}

		numLocals, err := d.c.readVarU32("local name count")
		if err != nil {
			return err
		}
		lastLocalIdx := int64(-1)
		for j := uint32(0); j < numLocals; j++ {
			localIdxStart := d.c.offset
			localIdx, err := d.c.readIndex("local name index")
			if err != nil {
				return err
			}
			if int64(localIdx) <= lastLocalIdx {
				return errOrdering(localIdxStart, "local name index %d out of order", localIdx)
			}
			lastLocalIdx = int64(localIdx)
			name, err := d.c.readStr()
			if err != nil {
				return err
			}
			if err := d.sinkCall("OnLocalName", d.sink.OnLocalName(funcIdx, localIdx, name)); err != nil {
				return err
			}
		}
	}
	return nil
}

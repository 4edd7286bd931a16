package wasm

// decodeLinkingSection reads the "linking" custom section: (type, size)
// framed subsections whose relative order is not enforced, unlike the
// name section's strictly increasing types.
func (d *decoder) decodeLinkingSection() error {
	if err := d.sinkCall("BeginLinkingSection", d.sink.BeginLinkingSection(uint32(d.c.remaining()))); err != nil {
		return err
	}
	for !d.c.atEnd() {
		typeStart := d.c.offset
		subType, err := d.c.readU8()
		if err != nil {
			return err
		}
		size, err := d.c.readVarU32("linking subsection size")
		if err != nil {
			return err
		}
		subEnd := d.c.offset + int(size)
		if subEnd > d.c.readEnd {
			return errTruncation(typeStart, "linking subsection")
		}
		prev := d.c.pushWindow(subEnd)
		var subErr error
		switch LinkingSubsectionType(subType) {
		case LinkingStackPointer:
			var idx uint32
			idx, subErr = d.c.readIndex("stack pointer global index")
			if subErr == nil {
				subErr = d.sinkCall("OnStackPointerGlobal", d.sink.OnStackPointerGlobal(idx))
			}
		case LinkingSymbolInfo:
			subErr = d.decodeSymbolInfo()
		default:
			_, subErr = d.c.readBytes(d.c.remaining())
		}
		d.c.popWindow(prev)
		if subErr != nil {
			return subErr
		}
		if d.c.offset != subEnd {
			return errUnfinishedWindow(d.c.offset, "linking subsection %d did not consume exactly its declared size", subType)
		}
	}
	return d.sinkCall("EndLinkingSection", d.sink.EndLinkingSection())
}

func (d *decoder) decodeSymbolInfo() error {
	count, err := d.c.readVarU32("symbol info count")
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		name, err := d.c.readStr()
		if err != nil {
			return err
		}
		flags, err := d.c.readVarU32("symbol info flags")
		if err != nil {
			return err
		}
		if err := d.sinkCall("OnSymbolInfo", d.sink.OnSymbolInfo(name, flags)); err != nil {
			return err
		}
	}
	return nil
}

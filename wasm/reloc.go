package wasm

// decodeRelocSection reads a "reloc.*" custom section: the section the
// relocations target, then a count of entries.
func (d *decoder) decodeRelocSection() error {
	targetStart := d.c.offset
	targetVal, err := d.c.readVarU32("reloc target section")
	if err != nil {
		return err
	}
	if targetVal >= uint32(numKnownSections) {
		return errInvalidTag(targetStart, "unknown reloc target section %d", targetVal)
	}
	target := SectionID(targetVal)
	var targetName string
	if target == SectionCustom {
		targetName, err = d.c.readStr()
		if err != nil {
			return err
		}
	}

	count, err := d.c.readVarU32("reloc entry count")
	if err != nil {
		return err
	}
	if err := d.sinkCall("BeginRelocSection", d.sink.BeginRelocSection(target, targetName, count)); err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		relStart := d.c.offset
		relVal, err := d.c.readVarU32("reloc type")
		if err != nil {
			return err
		}
		if relVal > uint32(RelocGlobalAddressI32) {
			return errInvalidTag(relStart, "unknown reloc type %d", relVal)
		}
		relType := RelocType(relVal)

		offset, err := d.c.readVarU32("reloc offset")
		if err != nil {
			return err
		}
		index, err := d.c.readVarU32("reloc index")
		if err != nil {
			return err
		}
		var addend int32
		hasAddend := relType.hasRelocAddend()
		if hasAddend {
			addend, err = d.c.readVarS32("reloc addend")
			if err != nil {
				return err
			}
		}
		if err := d.sinkCall("OnReloc", d.sink.OnReloc(relType, offset, index, addend, hasAddend)); err != nil {
			return err
		}
	}
	return d.sinkCall("EndRelocSection", d.sink.EndRelocSection())
}

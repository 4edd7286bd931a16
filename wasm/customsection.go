package wasm

import "strings"

// decodeCustomSection reads the section name and dispatches by name to
// one of the recognized custom-section families; anything else,
// including "name" before ReadDebugNames or before Import has been
// seen, is skipped by draining the rest of the window.
func (d *decoder) decodeCustomSection() error {
	name, err := d.c.readStr()
	if err != nil {
		return err
	}
	if err := d.sinkCall("BeginCustomSection", d.sink.BeginCustomSection(name, uint32(d.c.remaining()))); err != nil {
		return err
	}

	switch {
	case name == "name" && d.opts.ReadDebugNames && d.nameSectionMayAppear():
		if err := d.decodeNameSection(); err != nil {
			return err
		}
	case strings.HasPrefix(name, "reloc."):
		if err := d.decodeRelocSection(); err != nil {
			return err
		}
	case name == "linking":
		if err := d.decodeLinkingSection(); err != nil {
			return err
		}
	case name == "exception" && d.opts.Features.ExceptionsEnabled:
		if err := d.decodeExceptionSection(); err != nil {
			return err
		}
	default:
		if _, err := d.c.readBytes(d.c.remaining()); err != nil {
			return err
		}
	}

	return d.sinkCall("EndCustomSection", d.sink.EndCustomSection())
}

// nameSectionMayAppear reports whether a non-custom section at or after
// Import has already been seen, per the binary spec's placement rule for
// the "name" custom section.
func (d *decoder) nameSectionMayAppear() bool {
	return d.lastKnownSection != SectionInvalid && d.lastKnownSection >= SectionImport
}

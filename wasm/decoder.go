package wasm

import (
	"fmt"

	"github.com/wippyai/wasm-decode/errors"
)

// decoder holds all reader state for one decode call. It is never
// reused across calls and never retains the input past the call that
// constructed it.
type decoder struct {
	c    *cursor
	sink Sink
	opts Options

	lastKnownSection SectionID

	numSignatures        uint32
	numFuncImports       uint32
	numTableImports      uint32
	numMemoryImports     uint32
	numGlobalImports     uint32
	numExceptionImports  uint32
	numFunctionSigs      uint32 // from the Function section
	numTables            uint32
	numMemories          uint32
	numGlobals           uint32
	numExports           uint32
	numFunctionBodies    uint32
	numExceptions        uint32 // from the "exception" custom section
	sawExceptionSection  bool

	// pendingExceptionExports holds export target indices for
	// ExternalException exports, deferred until EndModule, since the
	// exception section (a custom section) may appear after Export.
	pendingExceptionExports []uint32

	// scratch buffers, reused across entries and never observed by the
	// sink between calls.
	paramScratch []ValType
	depthScratch []uint32
}

func (d *decoder) numTotalFuncs() uint32     { return d.numFuncImports + d.numFunctionSigs }
func (d *decoder) numTotalTables() uint32    { return d.numTableImports + d.numTables }
func (d *decoder) numTotalMemories() uint32  { return d.numMemoryImports + d.numMemories }
func (d *decoder) numTotalGlobals() uint32   { return d.numGlobalImports + d.numGlobals }
func (d *decoder) numTotalExceptions() uint32 {
	return d.numExceptionImports + d.numExceptions
}

// Decode drives sink through one full parse of data. It returns the
// first error encountered, from a read, a validation check, or the sink
// itself; every error is terminal.
func Decode(data []byte, sink Sink, opts Options) error {
	if sink == nil {
		sink = BaseSink{}
	}
	if opts.LogStream != nil {
		sink = NewLoggingSink(sink, opts.LogStream)
	}
	d := &decoder{
		c:                newCursor(data),
		sink:             sink,
		opts:             opts,
		lastKnownSection: SectionInvalid,
	}
	err := d.decodeModule()
	if err != nil {
		if declined := sink.OnError(d.c.offset, err); declined != nil {
			// sink declined to handle it: fall back to printing.
			fmt.Fprintf(errStream, "wasm decode error: %v\n", declined)
		}
		return err
	}
	return nil
}

// errStream is a package variable so tests can capture the fallback
// error print; it defaults to standard error.
var errStream = defaultErrStream()

func (d *decoder) decodeModule() error {
	magic, err := d.c.readU32LE()
	if err != nil {
		return err
	}
	if magic != Magic {
		return errInvalidTag(0, "bad magic value")
	}
	version, err := d.c.readU32LE()
	if err != nil {
		return err
	}
	if version != Version {
		return errInvalidTag(4, "bad version: got %d, want %d", version, Version)
	}
	if err := d.sinkCall("BeginModule", d.sink.BeginModule(version)); err != nil {
		return err
	}

	for !d.c.atEnd() {
		if err := d.decodeSection(); err != nil {
			return err
		}
	}

	if err := d.verifyDeferredExceptionExports(); err != nil {
		return err
	}

	if err := d.sinkCall("EndModule", d.sink.EndModule()); err != nil {
		return err
	}
	if d.c.offset != len(d.c.data) {
		return errUnfinishedWindow(d.c.offset, "trailing bytes after module")
	}
	return nil
}

func (d *decoder) verifyDeferredExceptionExports() error {
	if len(d.pendingExceptionExports) == 0 {
		return nil
	}
	total := d.numTotalExceptions()
	for _, idx := range d.pendingExceptionExports {
		if idx >= total {
			return errOutOfRange(d.c.offset, "exception export index %d out of range (have %d)", idx, total)
		}
	}
	return nil
}

// sinkCall turns a Sink callback's error into a positioned sink-failure
// decode error, so every failure the caller sees carries an offset
// regardless of which layer produced it.
func (d *decoder) sinkCall(name string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*errors.Error); ok {
		// already a positioned decode error (propagated from a nested
		// Decode call the sink made, e.g. a validator); pass it through.
		return err
	}
	return errSinkFailure(d.c.offset, name, err)
}

func (d *decoder) decodeSection() error {
	secStart := d.c.offset
	idVal, err := d.c.readVarU32("section id")
	if err != nil {
		return err
	}
	if idVal >= uint32(numKnownSections) {
		return errInvalidTag(secStart, "unknown section code %d", idVal)
	}
	id := SectionID(idVal)

	sizeStart := d.c.offset
	size, err := d.c.readVarU32("section size")
	if err != nil {
		return err
	}
	sectionEnd := d.c.offset + int(size)
	if sectionEnd > len(d.c.data) {
		return errTruncation(sizeStart, "section payload")
	}

	if id != SectionCustom {
		if d.lastKnownSection != SectionInvalid && id <= d.lastKnownSection {
			return errOrdering(secStart, "section %s out of order", sectionName(id))
		}
	}

	if err := d.sinkCall("BeginSection", d.sink.BeginSection(id, size)); err != nil {
		return err
	}

	prevEnd := d.c.pushWindow(sectionEnd)
	var decodeErr error
	switch id {
	case SectionCustom:
		decodeErr = d.decodeCustomSection()
	case SectionType:
		decodeErr = d.decodeTypeSection()
	case SectionImport:
		decodeErr = d.decodeImportSection()
	case SectionFunction:
		decodeErr = d.decodeFunctionSection()
	case SectionTable:
		decodeErr = d.decodeTableSection()
	case SectionMemory:
		decodeErr = d.decodeMemorySection()
	case SectionGlobal:
		decodeErr = d.decodeGlobalSection()
	case SectionExport:
		decodeErr = d.decodeExportSection()
	case SectionStart:
		decodeErr = d.decodeStartSection()
	case SectionElement:
		decodeErr = d.decodeElementSection()
	case SectionCode:
		decodeErr = d.decodeCodeSection()
	case SectionData:
		decodeErr = d.decodeDataSection()
	}
	d.c.popWindow(prevEnd)
	if decodeErr != nil {
		return decodeErr
	}

	if d.c.offset != sectionEnd {
		return errUnfinishedWindow(d.c.offset, "section %s did not consume exactly its declared size", sectionName(id))
	}

	if err := d.sinkCall("EndSection", d.sink.EndSection(id)); err != nil {
		return err
	}
	if id != SectionCustom {
		d.lastKnownSection = id
	}
	return nil
}

func sectionName(id SectionID) string {
	switch id {
	case SectionCustom:
		return "Custom"
	case SectionType:
		return "Type"
	case SectionImport:
		return "Import"
	case SectionFunction:
		return "Function"
	case SectionTable:
		return "Table"
	case SectionMemory:
		return "Memory"
	case SectionGlobal:
		return "Global"
	case SectionExport:
		return "Export"
	case SectionStart:
		return "Start"
	case SectionElement:
		return "Element"
	case SectionCode:
		return "Code"
	case SectionData:
		return "Data"
	default:
		return fmt.Sprintf("Unknown(%d)", id)
	}
}

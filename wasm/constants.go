package wasm

// WebAssembly binary format magic number and version.
const (
	// Magic is the WebAssembly binary magic number ("\0asm" read little-endian).
	Magic uint32 = 0x6D736100

	// Version is the only binary format version this decoder accepts.
	Version uint32 = 0x01
)

// SectionID identifies a top-level module section.
type SectionID byte

// Section ids. Custom is id 0 and is exempt from ordering; ids 1..11 must
// appear, when present, in this increasing order.
const (
	SectionCustom   SectionID = 0
	SectionType     SectionID = 1
	SectionImport   SectionID = 2
	SectionFunction SectionID = 3
	SectionTable    SectionID = 4
	SectionMemory   SectionID = 5
	SectionGlobal   SectionID = 6
	SectionExport   SectionID = 7
	SectionStart    SectionID = 8
	SectionElement  SectionID = 9
	SectionCode     SectionID = 10
	SectionData     SectionID = 11

	// SectionInvalid is the sentinel last_known_section value before any
	// non-custom section has been seen.
	SectionInvalid SectionID = 0xFF

	// numKnownSections bounds section ids accepted by the dispatcher;
	// matches the source's BinarySectionCount.
	numKnownSections = SectionData + 1
)

// ExternalKind identifies the kind of an import or export.
type ExternalKind byte

const (
	ExternalFunc   ExternalKind = 0
	ExternalTable  ExternalKind = 1
	ExternalMemory ExternalKind = 2
	ExternalGlobal ExternalKind = 3
	// ExternalException is only valid when Features.ExceptionsEnabled.
	ExternalException ExternalKind = 4
)

// ValType is a WebAssembly value type tag. Type tags are encoded on the
// wire as a single-byte signed LEB128 (varint7): the wire byte 0x7F, read
// through the signed decoder, is the value -1, not 127. The constants
// below hold that decoded value, matching what cursor.readType actually
// produces; wireByte recovers the original encoded byte for messages.
type ValType int8

const (
	ValVoid    ValType = -0x40 // wire byte 0x40; only valid as a block signature or 0-result function
	ValI32     ValType = -0x01 // wire byte 0x7F
	ValI64     ValType = -0x02 // wire byte 0x7E
	ValF32     ValType = -0x03 // wire byte 0x7D
	ValF64     ValType = -0x04 // wire byte 0x7C
	ValAnyFunc ValType = -0x10 // wire byte 0x70, table element type
	ValFunc    ValType = -0x20 // wire byte 0x60, function type form tag
)

// IsConcrete reports whether t is one of {I32, I64, F32, F64}.
func (t ValType) IsConcrete() bool {
	switch t {
	case ValI32, ValI64, ValF32, ValF64:
		return true
	default:
		return false
	}
}

// wireByte recovers the single-byte wire encoding of t, the inverse of
// the signed LEB128 decode that produced it.
func (t ValType) wireByte() byte { return byte(int8(t)) & 0x7F }

// MaxPages caps the number of 64KiB pages a memory or memory import may
// declare for either its initial size or its maximum.
const MaxPages = 65536

// Opcode is a single WebAssembly instruction opcode. Two-byte (prefixed)
// opcodes are represented with the prefix folded into a value above 0xFF;
// readOpcode is the only place that constructs one.
type Opcode uint32

// Control-flow and miscellaneous opcodes.
const (
	OpUnreachable  Opcode = 0x00
	OpNop          Opcode = 0x01
	OpBlock        Opcode = 0x02
	OpLoop         Opcode = 0x03
	OpIf           Opcode = 0x04
	OpElse         Opcode = 0x05
	OpTry          Opcode = 0x06 // feature: exceptions
	OpCatch        Opcode = 0x07 // feature: exceptions
	OpThrow        Opcode = 0x08 // feature: exceptions
	OpRethrow      Opcode = 0x09 // feature: exceptions
	OpEnd          Opcode = 0x0B
	OpBr           Opcode = 0x0C
	OpBrIf         Opcode = 0x0D
	OpBrTable      Opcode = 0x0E
	OpReturn       Opcode = 0x0F
	OpCall         Opcode = 0x10
	OpCallIndirect Opcode = 0x11
	OpCatchAll     Opcode = 0x19 // feature: exceptions
)

// Parametric opcodes.
const (
	OpDrop   Opcode = 0x1A
	OpSelect Opcode = 0x1B
)

// Variable access opcodes.
const (
	OpLocalGet  Opcode = 0x20
	OpLocalSet  Opcode = 0x21
	OpLocalTee  Opcode = 0x22
	OpGlobalGet Opcode = 0x23
	OpGlobalSet Opcode = 0x24
)

// Memory access opcodes. Each takes an (align, offset) immediate pair.
const (
	OpI32Load    Opcode = 0x28
	OpI64Load    Opcode = 0x29
	OpF32Load    Opcode = 0x2A
	OpF64Load    Opcode = 0x2B
	OpI32Load8S  Opcode = 0x2C
	OpI32Load8U  Opcode = 0x2D
	OpI32Load16S Opcode = 0x2E
	OpI32Load16U Opcode = 0x2F
	OpI64Load8S  Opcode = 0x30
	OpI64Load8U  Opcode = 0x31
	OpI64Load16S Opcode = 0x32
	OpI64Load16U Opcode = 0x33
	OpI64Load32S Opcode = 0x34
	OpI64Load32U Opcode = 0x35
	OpI32Store   Opcode = 0x36
	OpI64Store   Opcode = 0x37
	OpF32Store   Opcode = 0x38
	OpF64Store   Opcode = 0x39
	OpI32Store8  Opcode = 0x3A
	OpI32Store16 Opcode = 0x3B
	OpI64Store8  Opcode = 0x3C
	OpI64Store16 Opcode = 0x3D
	OpI64Store32 Opcode = 0x3E
)

// Memory-size opcodes. Each takes a single reserved-zero u32 immediate.
const (
	OpCurrentMemory Opcode = 0x3F
	OpGrowMemory    Opcode = 0x40
)

// Numeric constant opcodes.
const (
	OpI32Const Opcode = 0x41
	OpI64Const Opcode = 0x42
	OpF32Const Opcode = 0x43
	OpF64Const Opcode = 0x44
)

// Comparison, arithmetic, and conversion opcodes take no immediate. The
// exact range 0x45..0xBF (minus the saturating-truncation prefix below)
// covers every i32/i64/f32/f64 test, relop, unop, binop, and cvtop in the
// MVP opcode table; they are dispatched as a single contiguous range
// rather than named individually (see instruction.go).
const (
	opNumericRangeStart Opcode = 0x45
	opNumericRangeEnd   Opcode = 0xBF
)

// Saturating float-to-int truncation opcodes, feature-gated behind
// Features.SaturatingFloatToIntEnabled. Encoded with the 0xFC prefix and
// sub-opcodes 0..7.
const (
	prefixSaturatingTrunc Opcode = 0xFC00
	OpI32TruncSatF32S     Opcode = prefixSaturatingTrunc + 0
	OpI32TruncSatF32U     Opcode = prefixSaturatingTrunc + 1
	OpI32TruncSatF64S     Opcode = prefixSaturatingTrunc + 2
	OpI32TruncSatF64U     Opcode = prefixSaturatingTrunc + 3
	OpI64TruncSatF32S     Opcode = prefixSaturatingTrunc + 4
	OpI64TruncSatF32U     Opcode = prefixSaturatingTrunc + 5
	OpI64TruncSatF64S     Opcode = prefixSaturatingTrunc + 6
	OpI64TruncSatF64U     Opcode = prefixSaturatingTrunc + 7
)

// opcodePrefix is a one-byte opcode that introduces a u32-LEB-encoded
// sub-opcode. 0xFC is the only prefix this decoder recognizes.
const opcodePrefix byte = 0xFC

// Relocation entry types (R_WASM_*), used by the "reloc." custom section.
type RelocType byte

const (
	RelocFunctionIndexLEB RelocType = 0
	RelocTableIndexSLEB   RelocType = 1
	RelocTableIndexI32    RelocType = 2
	RelocMemoryAddrLEB    RelocType = 3
	RelocMemoryAddrSLEB   RelocType = 4
	RelocMemoryAddrI32    RelocType = 5
	RelocTypeIndexLEB     RelocType = 6
	RelocGlobalIndexLEB   RelocType = 7
	RelocGlobalAddressLEB RelocType = 8
	RelocGlobalAddressSLEB RelocType = 9
	RelocGlobalAddressI32 RelocType = 10
)

// hasRelocAddend reports whether a relocation of this type carries a
// trailing signed-32 LEB addend. Only the three GlobalAddress* kinds do;
// the rest encode a plain index or offset with nothing appended.
func (t RelocType) hasRelocAddend() bool {
	switch t {
	case RelocGlobalAddressLEB, RelocGlobalAddressSLEB, RelocGlobalAddressI32:
		return true
	default:
		return false
	}
}

// Linking sub-section types, used by the "linking" custom section.
type LinkingSubsectionType byte

const (
	LinkingStackPointer LinkingSubsectionType = 1
	LinkingSymbolInfo   LinkingSubsectionType = 2
)

// Name sub-section types, used by the "name" custom section.
type NameSubsectionType byte

const (
	NameSubsectionFunction NameSubsectionType = 1
	NameSubsectionLocal    NameSubsectionType = 2
)

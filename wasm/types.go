package wasm

// Options controls optional decoder behavior. Every field has a useful
// zero value: an Options{} decodes the MVP feature set with no
// extensions enabled, the "name" custom section skipped like any other
// unrecognized custom section, and no trace output.
type Options struct {
	// LogStream, if non-nil, receives one line per Sink callback via a
	// LoggingSink wrapped transparently around the caller's Sink.
	LogStream Logger

	// ReadDebugNames controls whether the "name" custom section is
	// decoded (true) or skipped like any other unrecognized custom
	// section (false).
	ReadDebugNames bool

	Features Features
}

// Features gates opcodes and section entries that are not part of the
// WebAssembly MVP.
type Features struct {
	ExceptionsEnabled              bool
	SaturatingFloatToIntEnabled bool
}

// Signature is a function type: an ordered parameter list and 0-or-1
// result types.
type Signature struct {
	Params  []ValType
	Results []ValType // length 0 or 1
}

// Limits describes the size bounds of a table or memory.
type Limits struct {
	Initial uint32
	Max     uint32 // meaningful only if HasMax
	HasMax  bool
}

// TableDesc describes a table's element type and size limits.
type TableDesc struct {
	ElemType ValType // always ValAnyFunc
	Limits   Limits
}

// MemoryDesc describes a memory's page-count limits.
type MemoryDesc struct {
	Limits Limits
}

// GlobalDesc describes a global's value type and mutability.
type GlobalDesc struct {
	Type    ValType
	Mutable bool
}

// ExceptionDesc describes an exception's parameter signature (feature:
// exceptions).
type ExceptionDesc struct {
	ParamTypes []ValType
}

// ImportDesc is the tagged union of what an import can bring in.
type ImportDesc struct {
	Kind ExternalKind

	FuncTypeIdx uint32       // Kind == ExternalFunc
	Table       TableDesc    // Kind == ExternalTable
	Memory      MemoryDesc   // Kind == ExternalMemory
	Global      GlobalDesc   // Kind == ExternalGlobal
	Exception   ExceptionDesc // Kind == ExternalException
}

// InitOp is the opcode of an init expression's single constant-producing
// instruction.
type InitOp byte

const (
	InitOpI32Const   InitOp = iota // value: int32
	InitOpI64Const                 // value: int64
	InitOpF32Const                 // value: float32
	InitOpF64Const                 // value: float64
	InitOpGlobalGet                // value: global index (uint32)
	InitOpEmpty                    // an init expr consisting of only End
)

// InitExpr is the decoded result of the constrained instruction sequence
// used for global initializers and segment offsets: at most one
// constant-producing instruction followed by End.
type InitExpr struct {
	Op    InitOp
	I32   int32
	I64   int64
	F32   float32
	F64   float64
	Index uint32 // global index, when Op == InitOpGlobalGet
}

// LocalDecl is one (count, type) run from a function body's local
// declarations.
type LocalDecl struct {
	Count uint32
	Type  ValType
}

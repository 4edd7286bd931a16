package wasm

// Sink is the event consumer the decoder drives. It has one method per
// structural element of the module: a Begin/End pair around every
// counted sequence, and one On* call per leaf entry.
//
// Any method may return a non-nil error to abort decoding; the decoder
// treats that as terminal and does not attempt to resume or skip ahead.
// A Sink that only cares about a handful of callbacks should embed
// BaseSink and override just those methods.
type Sink interface {
	BeginModule(version uint32) error
	EndModule() error

	BeginSection(id SectionID, size uint32) error
	EndSection(id SectionID) error

	BeginTypeSection(count uint32) error
	OnSignature(index uint32, sig Signature) error
	EndTypeSection() error

	BeginImportSection(count uint32) error
	OnImport(index uint32, module, field string, desc ImportDesc) error
	EndImportSection() error

	BeginFunctionSection(count uint32) error
	OnFunction(funcIndex uint32, sigIndex uint32) error
	EndFunctionSection() error

	BeginTableSection(count uint32) error
	OnTable(index uint32, desc TableDesc) error
	EndTableSection() error

	BeginMemorySection(count uint32) error
	OnMemory(index uint32, desc MemoryDesc) error
	EndMemorySection() error

	BeginGlobalSection(count uint32) error
	OnGlobal(index uint32, desc GlobalDesc, init InitExpr) error
	EndGlobalSection() error

	BeginExportSection(count uint32) error
	OnExport(index uint32, name string, kind ExternalKind, targetIdx uint32) error
	EndExportSection() error

	BeginStartSection() error
	OnStart(funcIndex uint32) error
	EndStartSection() error

	BeginElementSection(count uint32) error
	BeginElementSegment(index uint32, tableIndex uint32, offset InitExpr) error
	OnElementSegmentFuncIndex(segmentIndex uint32, elemIndex uint32, funcIndex uint32) error
	EndElementSegment(index uint32) error
	EndElementSection() error

	BeginCodeSection(count uint32) error
	BeginFunctionBody(index uint32, bodySize uint32) error
	OnLocalDecl(funcIndex uint32, declIndex uint32, decl LocalDecl) error
	InstructionSink
	EndFunctionBody(index uint32) error
	EndCodeSection() error

	BeginDataSection(count uint32) error
	BeginDataSegment(index uint32, memIndex uint32, offset InitExpr) error
	OnDataSegmentData(index uint32, data []byte) error
	EndDataSegment(index uint32) error
	EndDataSection() error

	BeginCustomSection(name string, size uint32) error
	EndCustomSection() error

	BeginNameSection(size uint32) error
	OnFunctionName(funcIndex uint32, name string) error
	OnLocalName(funcIndex uint32, localIndex uint32, name string) error
	EndNameSection() error

	BeginRelocSection(targetSection SectionID, targetSectionName string, count uint32) error
	OnReloc(relType RelocType, offset uint32, index uint32, addend int32, hasAddend bool) error
	EndRelocSection() error

	BeginLinkingSection(size uint32) error
	OnStackPointerGlobal(globalIndex uint32) error
	OnSymbolInfo(name string, flags uint32) error
	EndLinkingSection() error

	BeginExceptionSection(count uint32) error
	OnExceptionType(index uint32, paramTypes []ValType) error
	EndExceptionSection() error

	// OnError is called once, before a terminal decode error is
	// returned. A Sink that has nothing useful to do with it should
	// return the error unchanged (BaseSink does this), which tells the
	// decoder to fall back to printing it to stderr.
	OnError(offset int, err error) error
}

// InstructionSink is the subset of Sink driven by the instruction
// decoder, split out because both function bodies and, indirectly,
// init expressions dispatch through it.
type InstructionSink interface {
	// OnOpcode is called for every instruction before its
	// shape-specific callback (if any).
	OnOpcode(op Opcode) error

	OnBareOpcode(op Opcode) error // no immediate: nop, drop, select, return, all numeric ops
	OnBlock(sig ValType) error
	OnLoop(sig ValType) error
	OnIf(sig ValType) error
	OnElse() error
	OnTry(sig ValType) error
	OnEndExpr() error // End closing a nested block/loop/if/try
	OnEndFunc() error // End aligned with the function body's window boundary

	OnBrDepth(depth uint32) error
	OnBrIfDepth(depth uint32) error
	OnBrTable(targetDepths []uint32, defaultDepth uint32) error
	OnCatch(exceptionIndex uint32) error
	OnCatchAll() error
	OnThrow(exceptionIndex uint32) error
	OnRethrow(relativeDepth uint32) error

	OnCall(funcIndex uint32) error
	OnCallIndirect(sigIndex uint32) error

	OnLocalGet(localIndex uint32) error
	OnLocalSet(localIndex uint32) error
	OnLocalTee(localIndex uint32) error
	OnGlobalGet(globalIndex uint32) error
	OnGlobalSet(globalIndex uint32) error

	OnLoad(op Opcode, align uint32, offset uint32) error
	OnStore(op Opcode, align uint32, offset uint32) error
	OnMemorySize() error
	OnMemoryGrow() error

	OnI32Const(v int32) error
	OnI64Const(v int64) error
	OnF32Const(v float32) error
	OnF64Const(v float64) error

	// OnInitExprI32Const and friends are the init-expression-only
	// counterparts of the constants above, distinguished because an
	// init expression is not inside a function body window and a Sink
	// commonly wants to treat the two differently (e.g. to evaluate a
	// global initializer rather than emit code for it).
	OnInitExprI32Const(v int32) error
	OnInitExprI64Const(v int64) error
	OnInitExprF32Const(v float32) error
	OnInitExprF64Const(v float64) error
	OnInitExprGlobalGet(globalIndex uint32) error
	OnInitExprEnd() error
}

// BaseSink is a no-op, always-succeeding Sink. Embed it to implement
// only the callbacks a particular consumer cares about.
type BaseSink struct{}

var _ Sink = BaseSink{}

func (BaseSink) BeginModule(uint32) error { return nil }
func (BaseSink) EndModule() error         { return nil }

func (BaseSink) BeginSection(SectionID, uint32) error { return nil }
func (BaseSink) EndSection(SectionID) error           { return nil }

func (BaseSink) BeginTypeSection(uint32) error       { return nil }
func (BaseSink) OnSignature(uint32, Signature) error { return nil }
func (BaseSink) EndTypeSection() error               { return nil }

func (BaseSink) BeginImportSection(uint32) error                          { return nil }
func (BaseSink) OnImport(uint32, string, string, ImportDesc) error        { return nil }
func (BaseSink) EndImportSection() error                                  { return nil }

func (BaseSink) BeginFunctionSection(uint32) error   { return nil }
func (BaseSink) OnFunction(uint32, uint32) error     { return nil }
func (BaseSink) EndFunctionSection() error           { return nil }

func (BaseSink) BeginTableSection(uint32) error      { return nil }
func (BaseSink) OnTable(uint32, TableDesc) error     { return nil }
func (BaseSink) EndTableSection() error              { return nil }

func (BaseSink) BeginMemorySection(uint32) error     { return nil }
func (BaseSink) OnMemory(uint32, MemoryDesc) error   { return nil }
func (BaseSink) EndMemorySection() error             { return nil }

func (BaseSink) BeginGlobalSection(uint32) error                    { return nil }
func (BaseSink) OnGlobal(uint32, GlobalDesc, InitExpr) error        { return nil }
func (BaseSink) EndGlobalSection() error                            { return nil }

func (BaseSink) BeginExportSection(uint32) error                        { return nil }
func (BaseSink) OnExport(uint32, string, ExternalKind, uint32) error    { return nil }
func (BaseSink) EndExportSection() error                                { return nil }

func (BaseSink) BeginStartSection() error { return nil }
func (BaseSink) OnStart(uint32) error     { return nil }
func (BaseSink) EndStartSection() error   { return nil }

func (BaseSink) BeginElementSection(uint32) error                       { return nil }
func (BaseSink) BeginElementSegment(uint32, uint32, InitExpr) error     { return nil }
func (BaseSink) OnElementSegmentFuncIndex(uint32, uint32, uint32) error { return nil }
func (BaseSink) EndElementSegment(uint32) error                        { return nil }
func (BaseSink) EndElementSection() error                              { return nil }

func (BaseSink) BeginCodeSection(uint32) error                    { return nil }
func (BaseSink) BeginFunctionBody(uint32, uint32) error           { return nil }
func (BaseSink) OnLocalDecl(uint32, uint32, LocalDecl) error      { return nil }
func (BaseSink) EndFunctionBody(uint32) error                     { return nil }
func (BaseSink) EndCodeSection() error                            { return nil }

func (BaseSink) BeginDataSection(uint32) error                 { return nil }
func (BaseSink) BeginDataSegment(uint32, uint32, InitExpr) error { return nil }
func (BaseSink) OnDataSegmentData(uint32, []byte) error        { return nil }
func (BaseSink) EndDataSegment(uint32) error                   { return nil }
func (BaseSink) EndDataSection() error                         { return nil }

func (BaseSink) BeginCustomSection(string, uint32) error { return nil }
func (BaseSink) EndCustomSection() error                 { return nil }

func (BaseSink) BeginNameSection(uint32) error              { return nil }
func (BaseSink) OnFunctionName(uint32, string) error        { return nil }
func (BaseSink) OnLocalName(uint32, uint32, string) error   { return nil }
func (BaseSink) EndNameSection() error                      { return nil }

func (BaseSink) BeginRelocSection(SectionID, string, uint32) error   { return nil }
func (BaseSink) OnReloc(RelocType, uint32, uint32, int32, bool) error { return nil }
func (BaseSink) EndRelocSection() error                               { return nil }

func (BaseSink) BeginLinkingSection(uint32) error      { return nil }
func (BaseSink) OnStackPointerGlobal(uint32) error     { return nil }
func (BaseSink) OnSymbolInfo(string, uint32) error     { return nil }
func (BaseSink) EndLinkingSection() error              { return nil }

func (BaseSink) BeginExceptionSection(uint32) error        { return nil }
func (BaseSink) OnExceptionType(uint32, []ValType) error   { return nil }
func (BaseSink) EndExceptionSection() error                { return nil }

// OnError declines to handle the error: returning it unchanged tells the
// decoder to fall back to printing it to stderr itself.
func (BaseSink) OnError(_ int, err error) error { return err }

func (BaseSink) OnOpcode(Opcode) error      { return nil }
func (BaseSink) OnBareOpcode(Opcode) error  { return nil }
func (BaseSink) OnBlock(ValType) error      { return nil }
func (BaseSink) OnLoop(ValType) error       { return nil }
func (BaseSink) OnIf(ValType) error         { return nil }
func (BaseSink) OnElse() error              { return nil }
func (BaseSink) OnTry(ValType) error        { return nil }
func (BaseSink) OnEndExpr() error           { return nil }
func (BaseSink) OnEndFunc() error           { return nil }

func (BaseSink) OnBrDepth(uint32) error               { return nil }
func (BaseSink) OnBrIfDepth(uint32) error             { return nil }
func (BaseSink) OnBrTable([]uint32, uint32) error     { return nil }
func (BaseSink) OnCatch(uint32) error                 { return nil }
func (BaseSink) OnCatchAll() error                    { return nil }
func (BaseSink) OnThrow(uint32) error                 { return nil }
func (BaseSink) OnRethrow(uint32) error               { return nil }

func (BaseSink) OnCall(uint32) error         { return nil }
func (BaseSink) OnCallIndirect(uint32) error { return nil }

func (BaseSink) OnLocalGet(uint32) error  { return nil }
func (BaseSink) OnLocalSet(uint32) error  { return nil }
func (BaseSink) OnLocalTee(uint32) error  { return nil }
func (BaseSink) OnGlobalGet(uint32) error { return nil }
func (BaseSink) OnGlobalSet(uint32) error { return nil }

func (BaseSink) OnLoad(Opcode, uint32, uint32) error  { return nil }
func (BaseSink) OnStore(Opcode, uint32, uint32) error { return nil }
func (BaseSink) OnMemorySize() error                  { return nil }
func (BaseSink) OnMemoryGrow() error                  { return nil }

func (BaseSink) OnI32Const(int32) error   { return nil }
func (BaseSink) OnI64Const(int64) error   { return nil }
func (BaseSink) OnF32Const(float32) error { return nil }
func (BaseSink) OnF64Const(float64) error { return nil }

func (BaseSink) OnInitExprI32Const(int32) error    { return nil }
func (BaseSink) OnInitExprI64Const(int64) error    { return nil }
func (BaseSink) OnInitExprF32Const(float32) error  { return nil }
func (BaseSink) OnInitExprF64Const(float64) error  { return nil }
func (BaseSink) OnInitExprGlobalGet(uint32) error  { return nil }
func (BaseSink) OnInitExprEnd() error              { return nil }

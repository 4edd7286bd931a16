package wasm

import "go.uber.org/zap"

// Logger is the trace sink for LoggingSink. *zap.Logger satisfies it
// directly; pass zap.NewNop() (what NewLoggingSink uses when given a nil
// Logger) to discard trace output entirely. Decode installs no
// LoggingSink at all when Options.LogStream is nil.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
}

// LoggingSink wraps a Sink and writes one Debug line per callback before
// forwarding the call, the same transparent-wrapper idiom an optional
// pretty-printer or tracer would use. It implements Sink itself, so it
// composes: wrap once at the top and every decoder callback is traced
// regardless of how deep in the module it fires.
type LoggingSink struct {
	Sink
	log Logger
}

// NewLoggingSink wraps next so every callback is traced to log before
// being forwarded. A nil log discards all trace output.
func NewLoggingSink(next Sink, log Logger) *LoggingSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingSink{Sink: next, log: log}
}

func (l *LoggingSink) BeginModule(version uint32) error {
	l.log.Debug("BeginModule", zap.Uint32("version", version))
	return l.Sink.BeginModule(version)
}

func (l *LoggingSink) EndModule() error {
	l.log.Debug("EndModule")
	return l.Sink.EndModule()
}

func (l *LoggingSink) BeginSection(id SectionID, size uint32) error {
	l.log.Debug("BeginSection", zap.Uint8("id", uint8(id)), zap.Uint32("size", size))
	return l.Sink.BeginSection(id, size)
}

func (l *LoggingSink) EndSection(id SectionID) error {
	l.log.Debug("EndSection", zap.Uint8("id", uint8(id)))
	return l.Sink.EndSection(id)
}

func (l *LoggingSink) BeginTypeSection(count uint32) error {
	l.log.Debug("BeginTypeSection", zap.Uint32("count", count))
	return l.Sink.BeginTypeSection(count)
}

func (l *LoggingSink) OnSignature(index uint32, sig Signature) error {
	l.log.Debug("OnSignature", zap.Uint32("index", index))
	return l.Sink.OnSignature(index, sig)
}

func (l *LoggingSink) EndTypeSection() error {
	l.log.Debug("EndTypeSection")
	return l.Sink.EndTypeSection()
}

func (l *LoggingSink) BeginImportSection(count uint32) error {
	l.log.Debug("BeginImportSection", zap.Uint32("count", count))
	return l.Sink.BeginImportSection(count)
}

func (l *LoggingSink) OnImport(index uint32, module, field string, desc ImportDesc) error {
	l.log.Debug("OnImport", zap.Uint32("index", index), zap.String("module", module), zap.String("field", field))
	return l.Sink.OnImport(index, module, field, desc)
}

func (l *LoggingSink) EndImportSection() error {
	l.log.Debug("EndImportSection")
	return l.Sink.EndImportSection()
}

func (l *LoggingSink) BeginFunctionSection(count uint32) error {
	l.log.Debug("BeginFunctionSection", zap.Uint32("count", count))
	return l.Sink.BeginFunctionSection(count)
}

func (l *LoggingSink) OnFunction(funcIndex, sigIndex uint32) error {
	l.log.Debug("OnFunction", zap.Uint32("funcIndex", funcIndex), zap.Uint32("sigIndex", sigIndex))
	return l.Sink.OnFunction(funcIndex, sigIndex)
}

func (l *LoggingSink) EndFunctionSection() error {
	l.log.Debug("EndFunctionSection")
	return l.Sink.EndFunctionSection()
}

func (l *LoggingSink) BeginTableSection(count uint32) error {
	l.log.Debug("BeginTableSection", zap.Uint32("count", count))
	return l.Sink.BeginTableSection(count)
}

func (l *LoggingSink) OnTable(index uint32, desc TableDesc) error {
	l.log.Debug("OnTable", zap.Uint32("index", index))
	return l.Sink.OnTable(index, desc)
}

func (l *LoggingSink) EndTableSection() error {
	l.log.Debug("EndTableSection")
	return l.Sink.EndTableSection()
}

func (l *LoggingSink) BeginMemorySection(count uint32) error {
	l.log.Debug("BeginMemorySection", zap.Uint32("count", count))
	return l.Sink.BeginMemorySection(count)
}

func (l *LoggingSink) OnMemory(index uint32, desc MemoryDesc) error {
	l.log.Debug("OnMemory", zap.Uint32("index", index))
	return l.Sink.OnMemory(index, desc)
}

func (l *LoggingSink) EndMemorySection() error {
	l.log.Debug("EndMemorySection")
	return l.Sink.EndMemorySection()
}

func (l *LoggingSink) BeginGlobalSection(count uint32) error {
	l.log.Debug("BeginGlobalSection", zap.Uint32("count", count))
	return l.Sink.BeginGlobalSection(count)
}

func (l *LoggingSink) OnGlobal(index uint32, desc GlobalDesc, init InitExpr) error {
	l.log.Debug("OnGlobal", zap.Uint32("index", index))
	return l.Sink.OnGlobal(index, desc, init)
}

func (l *LoggingSink) EndGlobalSection() error {
	l.log.Debug("EndGlobalSection")
	return l.Sink.EndGlobalSection()
}

func (l *LoggingSink) BeginExportSection(count uint32) error {
	l.log.Debug("BeginExportSection", zap.Uint32("count", count))
	return l.Sink.BeginExportSection(count)
}

func (l *LoggingSink) OnExport(index uint32, name string, kind ExternalKind, targetIdx uint32) error {
	l.log.Debug("OnExport", zap.Uint32("index", index), zap.String("name", name), zap.Uint8("kind", uint8(kind)))
	return l.Sink.OnExport(index, name, kind, targetIdx)
}

func (l *LoggingSink) EndExportSection() error {
	l.log.Debug("EndExportSection")
	return l.Sink.EndExportSection()
}

func (l *LoggingSink) BeginStartSection() error {
	l.log.Debug("BeginStartSection")
	return l.Sink.BeginStartSection()
}

func (l *LoggingSink) OnStart(funcIndex uint32) error {
	l.log.Debug("OnStart", zap.Uint32("funcIndex", funcIndex))
	return l.Sink.OnStart(funcIndex)
}

func (l *LoggingSink) EndStartSection() error {
	l.log.Debug("EndStartSection")
	return l.Sink.EndStartSection()
}

func (l *LoggingSink) BeginElementSection(count uint32) error {
	l.log.Debug("BeginElementSection", zap.Uint32("count", count))
	return l.Sink.BeginElementSection(count)
}

func (l *LoggingSink) BeginElementSegment(index, tableIndex uint32, offset InitExpr) error {
	l.log.Debug("BeginElementSegment", zap.Uint32("index", index), zap.Uint32("tableIndex", tableIndex))
	return l.Sink.BeginElementSegment(index, tableIndex, offset)
}

func (l *LoggingSink) OnElementSegmentFuncIndex(segmentIndex, elemIndex, funcIndex uint32) error {
	l.log.Debug("OnElementSegmentFuncIndex",
		zap.Uint32("segmentIndex", segmentIndex), zap.Uint32("elemIndex", elemIndex), zap.Uint32("funcIndex", funcIndex))
	return l.Sink.OnElementSegmentFuncIndex(segmentIndex, elemIndex, funcIndex)
}

func (l *LoggingSink) EndElementSegment(index uint32) error {
	l.log.Debug("EndElementSegment", zap.Uint32("index", index))
	return l.Sink.EndElementSegment(index)
}

func (l *LoggingSink) EndElementSection() error {
	l.log.Debug("EndElementSection")
	return l.Sink.EndElementSection()
}

func (l *LoggingSink) BeginCodeSection(count uint32) error {
	l.log.Debug("BeginCodeSection", zap.Uint32("count", count))
	return l.Sink.BeginCodeSection(count)
}

func (l *LoggingSink) BeginFunctionBody(index, bodySize uint32) error {
	l.log.Debug("BeginFunctionBody", zap.Uint32("index", index), zap.Uint32("bodySize", bodySize))
	return l.Sink.BeginFunctionBody(index, bodySize)
}

func (l *LoggingSink) OnLocalDecl(funcIndex, declIndex uint32, decl LocalDecl) error {
	l.log.Debug("OnLocalDecl", zap.Uint32("funcIndex", funcIndex), zap.Uint32("declIndex", declIndex))
	return l.Sink.OnLocalDecl(funcIndex, declIndex, decl)
}

func (l *LoggingSink) EndFunctionBody(index uint32) error {
	l.log.Debug("EndFunctionBody", zap.Uint32("index", index))
	return l.Sink.EndFunctionBody(index)
}

func (l *LoggingSink) EndCodeSection() error {
	l.log.Debug("EndCodeSection")
	return l.Sink.EndCodeSection()
}

func (l *LoggingSink) BeginDataSection(count uint32) error {
	l.log.Debug("BeginDataSection", zap.Uint32("count", count))
	return l.Sink.BeginDataSection(count)
}

func (l *LoggingSink) BeginDataSegment(index, memIndex uint32, offset InitExpr) error {
	l.log.Debug("BeginDataSegment", zap.Uint32("index", index), zap.Uint32("memIndex", memIndex))
	return l.Sink.BeginDataSegment(index, memIndex, offset)
}

func (l *LoggingSink) OnDataSegmentData(index uint32, data []byte) error {
	l.log.Debug("OnDataSegmentData", zap.Uint32("index", index), zap.Int("size", len(data)))
	return l.Sink.OnDataSegmentData(index, data)
}

func (l *LoggingSink) EndDataSegment(index uint32) error {
	l.log.Debug("EndDataSegment", zap.Uint32("index", index))
	return l.Sink.EndDataSegment(index)
}

func (l *LoggingSink) EndDataSection() error {
	l.log.Debug("EndDataSection")
	return l.Sink.EndDataSection()
}

func (l *LoggingSink) BeginCustomSection(name string, size uint32) error {
	l.log.Debug("BeginCustomSection", zap.String("name", name), zap.Uint32("size", size))
	return l.Sink.BeginCustomSection(name, size)
}

func (l *LoggingSink) EndCustomSection() error {
	l.log.Debug("EndCustomSection")
	return l.Sink.EndCustomSection()
}

func (l *LoggingSink) BeginNameSection(size uint32) error {
	l.log.Debug("BeginNameSection", zap.Uint32("size", size))
	return l.Sink.BeginNameSection(size)
}

func (l *LoggingSink) OnFunctionName(funcIndex uint32, name string) error {
	l.log.Debug("OnFunctionName", zap.Uint32("funcIndex", funcIndex), zap.String("name", name))
	return l.Sink.OnFunctionName(funcIndex, name)
}

func (l *LoggingSink) OnLocalName(funcIndex, localIndex uint32, name string) error {
	l.log.Debug("OnLocalName", zap.Uint32("funcIndex", funcIndex), zap.Uint32("localIndex", localIndex), zap.String("name", name))
	return l.Sink.OnLocalName(funcIndex, localIndex, name)
}

func (l *LoggingSink) EndNameSection() error {
	l.log.Debug("EndNameSection")
	return l.Sink.EndNameSection()
}

func (l *LoggingSink) BeginRelocSection(targetSection SectionID, targetSectionName string, count uint32) error {
	l.log.Debug("BeginRelocSection", zap.Uint8("targetSection", uint8(targetSection)), zap.Uint32("count", count))
	return l.Sink.BeginRelocSection(targetSection, targetSectionName, count)
}

func (l *LoggingSink) OnReloc(relType RelocType, offset, index uint32, addend int32, hasAddend bool) error {
	l.log.Debug("OnReloc", zap.Uint8("relType", uint8(relType)), zap.Uint32("offset", offset), zap.Uint32("index", index))
	return l.Sink.OnReloc(relType, offset, index, addend, hasAddend)
}

func (l *LoggingSink) EndRelocSection() error {
	l.log.Debug("EndRelocSection")
	return l.Sink.EndRelocSection()
}

func (l *LoggingSink) BeginLinkingSection(size uint32) error {
	l.log.Debug("BeginLinkingSection", zap.Uint32("size", size))
	return l.Sink.BeginLinkingSection(size)
}

func (l *LoggingSink) OnStackPointerGlobal(globalIndex uint32) error {
	l.log.Debug("OnStackPointerGlobal", zap.Uint32("globalIndex", globalIndex))
	return l.Sink.OnStackPointerGlobal(globalIndex)
}

func (l *LoggingSink) OnSymbolInfo(name string, flags uint32) error {
	l.log.Debug("OnSymbolInfo", zap.String("name", name), zap.Uint32("flags", flags))
	return l.Sink.OnSymbolInfo(name, flags)
}

func (l *LoggingSink) EndLinkingSection() error {
	l.log.Debug("EndLinkingSection")
	return l.Sink.EndLinkingSection()
}

func (l *LoggingSink) BeginExceptionSection(count uint32) error {
	l.log.Debug("BeginExceptionSection", zap.Uint32("count", count))
	return l.Sink.BeginExceptionSection(count)
}

func (l *LoggingSink) OnExceptionType(index uint32, paramTypes []ValType) error {
	l.log.Debug("OnExceptionType", zap.Uint32("index", index), zap.Int("numParams", len(paramTypes)))
	return l.Sink.OnExceptionType(index, paramTypes)
}

func (l *LoggingSink) EndExceptionSection() error {
	l.log.Debug("EndExceptionSection")
	return l.Sink.EndExceptionSection()
}

func (l *LoggingSink) OnError(offset int, err error) error {
	l.log.Debug("OnError", zap.Int("offset", offset), zap.Error(err))
	return l.Sink.OnError(offset, err)
}

func (l *LoggingSink) OnOpcode(op Opcode) error {
	l.log.Debug("OnOpcode", zap.Uint32("op", uint32(op)))
	return l.Sink.OnOpcode(op)
}

func (l *LoggingSink) OnBareOpcode(op Opcode) error {
	l.log.Debug("OnBareOpcode", zap.Uint32("op", uint32(op)))
	return l.Sink.OnBareOpcode(op)
}

func (l *LoggingSink) OnBlock(sig ValType) error {
	l.log.Debug("OnBlock", zap.Int8("sig", int8(sig)))
	return l.Sink.OnBlock(sig)
}

func (l *LoggingSink) OnLoop(sig ValType) error {
	l.log.Debug("OnLoop", zap.Int8("sig", int8(sig)))
	return l.Sink.OnLoop(sig)
}

func (l *LoggingSink) OnIf(sig ValType) error {
	l.log.Debug("OnIf", zap.Int8("sig", int8(sig)))
	return l.Sink.OnIf(sig)
}

func (l *LoggingSink) OnElse() error {
	l.log.Debug("OnElse")
	return l.Sink.OnElse()
}

func (l *LoggingSink) OnTry(sig ValType) error {
	l.log.Debug("OnTry", zap.Int8("sig", int8(sig)))
	return l.Sink.OnTry(sig)
}

func (l *LoggingSink) OnEndExpr() error {
	l.log.Debug("OnEndExpr")
	return l.Sink.OnEndExpr()
}

func (l *LoggingSink) OnEndFunc() error {
	l.log.Debug("OnEndFunc")
	return l.Sink.OnEndFunc()
}

func (l *LoggingSink) OnBrDepth(depth uint32) error {
	l.log.Debug("OnBrDepth", zap.Uint32("depth", depth))
	return l.Sink.OnBrDepth(depth)
}

func (l *LoggingSink) OnBrIfDepth(depth uint32) error {
	l.log.Debug("OnBrIfDepth", zap.Uint32("depth", depth))
	return l.Sink.OnBrIfDepth(depth)
}

func (l *LoggingSink) OnBrTable(targetDepths []uint32, defaultDepth uint32) error {
	l.log.Debug("OnBrTable", zap.Int("numTargets", len(targetDepths)), zap.Uint32("defaultDepth", defaultDepth))
	return l.Sink.OnBrTable(targetDepths, defaultDepth)
}

func (l *LoggingSink) OnCatch(exceptionIndex uint32) error {
	l.log.Debug("OnCatch", zap.Uint32("exceptionIndex", exceptionIndex))
	return l.Sink.OnCatch(exceptionIndex)
}

func (l *LoggingSink) OnCatchAll() error {
	l.log.Debug("OnCatchAll")
	return l.Sink.OnCatchAll()
}

func (l *LoggingSink) OnThrow(exceptionIndex uint32) error {
	l.log.Debug("OnThrow", zap.Uint32("exceptionIndex", exceptionIndex))
	return l.Sink.OnThrow(exceptionIndex)
}

func (l *LoggingSink) OnRethrow(relativeDepth uint32) error {
	l.log.Debug("OnRethrow", zap.Uint32("relativeDepth", relativeDepth))
	return l.Sink.OnRethrow(relativeDepth)
}

func (l *LoggingSink) OnCall(funcIndex uint32) error {
	l.log.Debug("OnCall", zap.Uint32("funcIndex", funcIndex))
	return l.Sink.OnCall(funcIndex)
}

func (l *LoggingSink) OnCallIndirect(sigIndex uint32) error {
	l.log.Debug("OnCallIndirect", zap.Uint32("sigIndex", sigIndex))
	return l.Sink.OnCallIndirect(sigIndex)
}

func (l *LoggingSink) OnLocalGet(localIndex uint32) error {
	l.log.Debug("OnLocalGet", zap.Uint32("localIndex", localIndex))
	return l.Sink.OnLocalGet(localIndex)
}

func (l *LoggingSink) OnLocalSet(localIndex uint32) error {
	l.log.Debug("OnLocalSet", zap.Uint32("localIndex", localIndex))
	return l.Sink.OnLocalSet(localIndex)
}

func (l *LoggingSink) OnLocalTee(localIndex uint32) error {
	l.log.Debug("OnLocalTee", zap.Uint32("localIndex", localIndex))
	return l.Sink.OnLocalTee(localIndex)
}

func (l *LoggingSink) OnGlobalGet(globalIndex uint32) error {
	l.log.Debug("OnGlobalGet", zap.Uint32("globalIndex", globalIndex))
	return l.Sink.OnGlobalGet(globalIndex)
}

func (l *LoggingSink) OnGlobalSet(globalIndex uint32) error {
	l.log.Debug("OnGlobalSet", zap.Uint32("globalIndex", globalIndex))
	return l.Sink.OnGlobalSet(globalIndex)
}

func (l *LoggingSink) OnLoad(op Opcode, align, offset uint32) error {
	l.log.Debug("OnLoad", zap.Uint32("op", uint32(op)), zap.Uint32("align", align), zap.Uint32("offset", offset))
	return l.Sink.OnLoad(op, align, offset)
}

func (l *LoggingSink) OnStore(op Opcode, align, offset uint32) error {
	l.log.Debug("OnStore", zap.Uint32("op", uint32(op)), zap.Uint32("align", align), zap.Uint32("offset", offset))
	return l.Sink.OnStore(op, align, offset)
}

func (l *LoggingSink) OnMemorySize() error {
	l.log.Debug("OnMemorySize")
	return l.Sink.OnMemorySize()
}

func (l *LoggingSink) OnMemoryGrow() error {
	l.log.Debug("OnMemoryGrow")
	return l.Sink.OnMemoryGrow()
}

func (l *LoggingSink) OnI32Const(v int32) error {
	l.log.Debug("OnI32Const", zap.Int32("v", v))
	return l.Sink.OnI32Const(v)
}

func (l *LoggingSink) OnI64Const(v int64) error {
	l.log.Debug("OnI64Const", zap.Int64("v", v))
	return l.Sink.OnI64Const(v)
}

func (l *LoggingSink) OnF32Const(v float32) error {
	l.log.Debug("OnF32Const", zap.Float32("v", v))
	return l.Sink.OnF32Const(v)
}

func (l *LoggingSink) OnF64Const(v float64) error {
	l.log.Debug("OnF64Const", zap.Float64("v", v))
	return l.Sink.OnF64Const(v)
}

func (l *LoggingSink) OnInitExprI32Const(v int32) error {
	l.log.Debug("OnInitExprI32Const", zap.Int32("v", v))
	return l.Sink.OnInitExprI32Const(v)
}

func (l *LoggingSink) OnInitExprI64Const(v int64) error {
	l.log.Debug("OnInitExprI64Const", zap.Int64("v", v))
	return l.Sink.OnInitExprI64Const(v)
}

func (l *LoggingSink) OnInitExprF32Const(v float32) error {
	l.log.Debug("OnInitExprF32Const", zap.Float32("v", v))
	return l.Sink.OnInitExprF32Const(v)
}

func (l *LoggingSink) OnInitExprF64Const(v float64) error {
	l.log.Debug("OnInitExprF64Const", zap.Float64("v", v))
	return l.Sink.OnInitExprF64Const(v)
}

func (l *LoggingSink) OnInitExprGlobalGet(globalIndex uint32) error {
	l.log.Debug("OnInitExprGlobalGet", zap.Uint32("globalIndex", globalIndex))
	return l.Sink.OnInitExprGlobalGet(globalIndex)
}

func (l *LoggingSink) OnInitExprEnd() error {
	l.log.Debug("OnInitExprEnd")
	return l.Sink.OnInitExprEnd()
}

package wasm

// Module is the in-memory result of running Collect over a decode call:
// one field per module entity the decoder can emit. It exists to give
// the decoder's own test suite something to assert against besides raw
// callback order, the way wabt pairs its BinaryReader with a delegate
// that materializes a reference Module.
type Module struct {
	Version uint32

	Types []Signature

	Imports    []Import
	Tables     []TableDesc
	Memories   []MemoryDesc
	Globals    []Global
	Exceptions []ExceptionDesc

	Functions []uint32 // signature index per non-imported function
	Bodies    []FunctionBody

	Exports []Export
	Start   *uint32

	Elements []ElementSegment
	Data     []DataSegment

	Names Names
}

// Import is one entry of the import section, module/field name plus its
// tagged descriptor.
type Import struct {
	Module string
	Field  string
	Desc   ImportDesc
}

// Global is one entry of the global section: its header and constant
// initializer.
type Global struct {
	Desc GlobalDesc
	Init InitExpr
}

// Export is one entry of the export section.
type Export struct {
	Name      string
	Kind      ExternalKind
	TargetIdx uint32
}

// ElementSegment is one table-initializer segment.
type ElementSegment struct {
	TableIndex uint32
	Offset     InitExpr
	FuncIndices []uint32
}

// DataSegment is one memory-initializer segment.
type DataSegment struct {
	MemoryIndex uint32
	Offset      InitExpr
	Data        []byte
}

// FunctionBody is one code-section entry: its local declarations and how
// many instructions it contained. Collect does not build a full
// instruction AST — a consumer that needs one supplies its own Sink.
type FunctionBody struct {
	Index           uint32
	Locals          []LocalDecl
	NumInstructions int
}

// Names holds the debug-name custom section's contents, keyed by index.
type Names struct {
	Functions map[uint32]string
	Locals    map[uint32]map[uint32]string
}

// Collect is a reference Sink that materializes a *Module from a decode
// call. It embeds BaseSink so it only overrides the callbacks that carry
// data worth keeping.
type Collect struct {
	BaseSink

	m           Module
	curBody     *FunctionBody
	curBodyIdx  uint32
}

// NewCollect returns a Collect ready to be driven by Decode.
func NewCollect() *Collect {
	return &Collect{m: Module{
		Names: Names{
			Functions: map[uint32]string{},
			Locals:    map[uint32]map[uint32]string{},
		},
	}}
}

// Module returns the module assembled so far. Call it only after Decode
// returns successfully.
func (c *Collect) Module() *Module { return &c.m }

func (c *Collect) BeginModule(version uint32) error {
	c.m.Version = version
	return nil
}

func (c *Collect) OnSignature(_ uint32, sig Signature) error {
	c.m.Types = append(c.m.Types, sig)
	return nil
}

func (c *Collect) OnImport(_ uint32, module, field string, desc ImportDesc) error {
	c.m.Imports = append(c.m.Imports, Import{Module: module, Field: field, Desc: desc})
	return nil
}

func (c *Collect) OnFunction(_ uint32, sigIndex uint32) error {
	c.m.Functions = append(c.m.Functions, sigIndex)
	return nil
}

func (c *Collect) OnTable(_ uint32, desc TableDesc) error {
	c.m.Tables = append(c.m.Tables, desc)
	return nil
}

func (c *Collect) OnMemory(_ uint32, desc MemoryDesc) error {
	c.m.Memories = append(c.m.Memories, desc)
	return nil
}

func (c *Collect) OnGlobal(_ uint32, desc GlobalDesc, init InitExpr) error {
	c.m.Globals = append(c.m.Globals, Global{Desc: desc, Init: init})
	return nil
}

func (c *Collect) OnExport(_ uint32, name string, kind ExternalKind, targetIdx uint32) error {
	c.m.Exports = append(c.m.Exports, Export{Name: name, Kind: kind, TargetIdx: targetIdx})
	return nil
}

func (c *Collect) OnStart(funcIndex uint32) error {
	idx := funcIndex
	c.m.Start = &idx
	return nil
}

func (c *Collect) BeginElementSegment(_ uint32, tableIndex uint32, offset InitExpr) error {
	c.m.Elements = append(c.m.Elements, ElementSegment{TableIndex: tableIndex, Offset: offset})
	return nil
}

func (c *Collect) OnElementSegmentFuncIndex(segmentIndex uint32, _ uint32, funcIndex uint32) error {
	seg := &c.m.Elements[segmentIndex]
	seg.FuncIndices = append(seg.FuncIndices, funcIndex)
	return nil
}

func (c *Collect) BeginFunctionBody(index uint32, _ uint32) error {
	c.curBody = &FunctionBody{Index: index}
	c.curBodyIdx = index
	return nil
}

func (c *Collect) OnLocalDecl(_ uint32, _ uint32, decl LocalDecl) error {
	c.curBody.Locals = append(c.curBody.Locals, decl)
	return nil
}

func (c *Collect) OnOpcode(Opcode) error {
	c.curBody.NumInstructions++
	return nil
}

func (c *Collect) EndFunctionBody(uint32) error {
	c.m.Bodies = append(c.m.Bodies, *c.curBody)
	c.curBody = nil
	return nil
}

func (c *Collect) BeginDataSegment(_ uint32, memIndex uint32, offset InitExpr) error {
	c.m.Data = append(c.m.Data, DataSegment{MemoryIndex: memIndex, Offset: offset})
	return nil
}

func (c *Collect) OnDataSegmentData(index uint32, data []byte) error {
	seg := &c.m.Data[index]
	seg.Data = append([]byte(nil), data...)
	return nil
}

func (c *Collect) OnExceptionType(_ uint32, paramTypes []ValType) error {
	c.m.Exceptions = append(c.m.Exceptions, ExceptionDesc{ParamTypes: paramTypes})
	return nil
}

func (c *Collect) OnFunctionName(funcIndex uint32, name string) error {
	c.m.Names.Functions[funcIndex] = name
	return nil
}

func (c *Collect) OnLocalName(funcIndex uint32, localIndex uint32, name string) error {
	locals, ok := c.m.Names.Locals[funcIndex]
	if !ok {
		locals = map[uint32]string{}
		c.m.Names.Locals[funcIndex] = locals
	}
	locals[localIndex] = name
	return nil
}

var _ Sink = (*Collect)(nil)

// ParseModule runs the decoder against a fresh Collect and returns the
// assembled Module, a convenience entry point for callers that want the
// whole module in memory rather than streaming callbacks.
func ParseModule(data []byte, opts Options) (*Module, error) {
	c := NewCollect()
	if err := Decode(data, c, opts); err != nil {
		return nil, err
	}
	return c.Module(), nil
}

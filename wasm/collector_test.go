package wasm

import "testing"

// buildSimpleModule assembles: one (i32)->i32 type, one function of that
// type exporting itself as "add_one", body `local.get 0; i32.const 1;
// i32.add; end`. i32.add lives in the collapsed numeric range so it
// round-trips through OnBareOpcode without a dedicated case.
func buildSimpleModule(t *testing.T) []byte {
	t.Helper()
	typePayload := []byte{
		0x01,                 // count
		ValFunc.wireByte(),   // form
		0x01, ValI32.wireByte(), // 1 param: i32
		0x01, ValI32.wireByte(), // 1 result: i32
	}
	funcPayload := []byte{0x01, 0x00} // 1 function, sig index 0
	exportPayload := []byte{
		0x01,                                    // count
		0x07, 'a', 'd', 'd', '_', 'o', 'n', 'e', // name "add_one"
		byte(ExternalFunc), 0x00, // kind=func, index=0
	}
	body := []byte{
		0x00,       // 0 local decl groups
		0x20, 0x00, // local.get 0
		0x41, 0x01, // i32.const 1
		0x6A, // i32.add
		0x0B, // end
	}
	codePayload := append([]byte{0x01, byte(len(body))}, body...)

	data := moduleHeader()
	data = appendSection(data, SectionType, typePayload)
	data = appendSection(data, SectionFunction, funcPayload)
	data = appendSection(data, SectionExport, exportPayload)
	data = appendSection(data, SectionCode, codePayload)
	return data
}

func appendSection(data []byte, id SectionID, payload []byte) []byte {
	data = append(data, byte(id), byte(len(payload)))
	return append(data, payload...)
}

func TestCollectorParsesModule(t *testing.T) {
	data := buildSimpleModule(t)
	mod, err := ParseModule(data, Options{})
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	if len(mod.Types) != 1 {
		t.Fatalf("Types = %v, want 1 entry", mod.Types)
	}
	if len(mod.Types[0].Params) != 1 || mod.Types[0].Params[0] != ValI32 {
		t.Fatalf("Types[0].Params = %v", mod.Types[0].Params)
	}
	if len(mod.Functions) != 1 || mod.Functions[0] != 0 {
		t.Fatalf("Functions = %v", mod.Functions)
	}
	if len(mod.Exports) != 1 || mod.Exports[0].Name != "add_one" {
		t.Fatalf("Exports = %v", mod.Exports)
	}
	if len(mod.Bodies) != 1 {
		t.Fatalf("Bodies = %v", mod.Bodies)
	}
	if mod.Bodies[0].NumInstructions != 4 {
		t.Fatalf("NumInstructions = %d, want 4", mod.Bodies[0].NumInstructions)
	}
}

func TestCollectorRejectsExportOfMissingFunction(t *testing.T) {
	exportPayload := []byte{
		0x01,
		0x01, 'x',
		byte(ExternalFunc), 0x00, // no functions declared at all
	}
	data := moduleHeader()
	data = appendSection(data, SectionExport, exportPayload)

	if _, err := ParseModule(data, Options{}); err == nil {
		t.Fatal("expected out-of-range export error")
	}
}

package wasm

import (
	"strings"
	"testing"
)

// buildNameSection wraps a "name" custom section payload with a module
// declaring one imported function (so function index 0 is valid) and
// that has already seen the Import section, satisfying
// nameSectionMayAppear.
func buildNameSection(t *testing.T, payload []byte) []byte {
	t.Helper()
	typePayload := []byte{0x01, ValFunc.wireByte(), 0x00, 0x00} // 1 type: () -> ()
	importPayload := []byte{
		0x01,                     // count
		0x01, 'm',                // module "m"
		0x01, 'f',                // field "f"
		byte(ExternalFunc), 0x00, // kind=func, type index 0
	}
	data := moduleHeader()
	data = appendSection(data, SectionType, typePayload)
	data = appendSection(data, SectionImport, importPayload)
	nameSec := append([]byte{0x04, 'n', 'a', 'm', 'e'}, payload...)
	data = appendSection(data, SectionCustom, nameSec)
	return data
}

func TestDecodeNameSectionFunctionNames(t *testing.T) {
	// function names subsection: index 0 -> "main"
	sub := []byte{0x01, 0x00, 0x04, 'm', 'a', 'i', 'n'}
	payload := append([]byte{byte(NameSubsectionFunction), byte(len(sub))}, sub...)
	data := buildNameSection(t, payload)

	r := &recordingSink{}
	if err := Decode(data, r, Options{ReadDebugNames: true}); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	found := false
	for _, e := range r.events {
		if e == "BeginCustomSection:name" {
			found = true
		}
	}
	if !found {
		t.Fatalf("events = %v, want BeginCustomSection:name", r.events)
	}
}

func TestDecodeNameSectionSkippedWithoutOption(t *testing.T) {
	sub := []byte{0x00} // 0 function names
	payload := append([]byte{byte(NameSubsectionFunction), byte(len(sub))}, sub...)
	data := buildNameSection(t, payload)

	if err := Decode(data, nil, Options{ReadDebugNames: false}); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}

func TestDecodeNameSectionOutOfOrderSubsections(t *testing.T) {
	// Local subsection (type 2) before function subsection (type 1):
	// out of order since types must strictly increase.
	localSub := []byte{0x00} // 0 entries
	funcSub := []byte{0x00}  // 0 entries
	payload := append([]byte{byte(NameSubsectionLocal), byte(len(localSub))}, localSub...)
	payload = append(payload, byte(NameSubsectionFunction), byte(len(funcSub)))
	payload = append(payload, funcSub...)
	data := buildNameSection(t, payload)

	err := Decode(data, nil, Options{ReadDebugNames: true})
	if err == nil {
		t.Fatal("expected error: name subsections out of order")
	}
}

func TestDecodeNameSectionNonAscendingFunctionIndex(t *testing.T) {
	// Two function names, second index (0) not greater than first (0).
	// Only one function is declared, so both indices must be 0 to get
	// past the range check and reach the ordering check.
	sub := []byte{0x02, 0x00, 0x01, 'a', 0x00, 0x01, 'b'}
	payload := append([]byte{byte(NameSubsectionFunction), byte(len(sub))}, sub...)
	data := buildNameSection(t, payload)

	err := Decode(data, nil, Options{ReadDebugNames: true})
	if err == nil || !strings.Contains(err.Error(), "out of order") {
		t.Fatalf("err = %v, want function name indices out of order", err)
	}
}

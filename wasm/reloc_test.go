package wasm

import "testing"

func buildRelocSection(payload []byte) []byte {
	data := moduleHeader()
	relocSec := append([]byte{0x06, 'r', 'e', 'l', 'o', 'c', '.'}, payload...)
	return appendSection(data, SectionCustom, relocSec)
}

func TestDecodeRelocSectionNoAddend(t *testing.T) {
	payload := []byte{
		byte(SectionData), // target section
		0x01,              // entry count
		byte(RelocFunctionIndexLEB), // reloc type: no addend
		0x04,                        // offset
		0x00,                        // index
	}
	data := buildRelocSection(payload)
	if err := Decode(data, nil, Options{}); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}

func TestDecodeRelocSectionWithAddend(t *testing.T) {
	payload := []byte{
		byte(SectionData),
		0x01,
		byte(RelocGlobalAddressLEB), // carries a signed addend
		0x04,
		0x00,
		0x2A, // addend 42 (single-byte signed LEB)
	}
	data := buildRelocSection(payload)
	if err := Decode(data, nil, Options{}); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}

func TestDecodeRelocSectionUnknownType(t *testing.T) {
	payload := []byte{
		byte(SectionData),
		0x01,
		0x7F, // far beyond the last known reloc type
		0x00,
		0x00,
	}
	data := buildRelocSection(payload)
	if err := Decode(data, nil, Options{}); err == nil {
		t.Fatal("expected error: unknown reloc type")
	}
}

func TestDecodeRelocSectionCustomTarget(t *testing.T) {
	payload := []byte{
		byte(SectionCustom), // target is itself a custom section: name follows
		0x03, 'f', 'o', 'o',
		0x00, // 0 entries
	}
	data := buildRelocSection(payload)
	if err := Decode(data, nil, Options{}); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}

// Package wasm decodes the WebAssembly 1.0 binary module format.
//
// The decoder is a streaming, event-driven reader: it never builds an
// in-memory module by itself. Instead it walks the byte stream once and
// drives a caller-supplied Sink through an ordered sequence of Begin/End
// and On callbacks, one per structural element discovered — sections,
// types, imports, functions, instructions, data segments, and so on.
//
// Callers that want a conventional parsed module can use Collect, a
// reference Sink that assembles the callback stream into a *Module:
//
//	m, err := wasm.ParseModule(data, wasm.Options{})
//
// Callers that want to stream (validate, translate, or interpret without
// materializing a module) implement Sink directly, typically by embedding
// BaseSink and overriding only the callbacks they need.
//
// String and byte-slice values handed to the Sink are views into the
// caller's input buffer. They are valid only for the duration of the
// callback that receives them; a Sink that needs to keep one must copy
// it.
package wasm

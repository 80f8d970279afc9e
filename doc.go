package treedec

// Package treedec decodes dynamically-typed trees (the canonical JSON value
// model) into strongly-typed application values, accumulating structured,
// path-aware diagnostics on failure.
//
// The engine is a context-threaded, side-effect-free computation: a Decoder
// reads an immutable DecodeCtx (current subtree, path so far, error
// Strategy, opaque Extra) and produces either a value or an accumulated
// error. The caller picks the shape of the error type by supplying a
// Strategy; the engine supplies only the occasions on which errors occur.
//
// Design policy:
// - Keep the engine core in the root package; put structural decoders and
//   the record builder under dsl/, input materialization under source/,
//   ready-made field codecs under codec/, and the CLI under cmd/treedec.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	d := dsl.Record[treedec.TreeError, dsl.Overrides]().
//	        Field("name", dsl.Adapt(treedec.AsString[treedec.TreeError, dsl.Overrides]())).Required().
//	        Build()
//	v, err := source.JSONBytes(data)
//	r := treedec.Decode(treedec.TreeStrategy(), nil, v, d)
//	if r.IsErr() {
//	        fmt.Println(treedec.Render(r.Err()))
//	}

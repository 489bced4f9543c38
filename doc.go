// Package jsonvalue provides:
//
// - An in-memory JSON value model (Value) covering string, number, bool,
//   null, array and object, with kind-guarded accessors and mutation
// - A strict tokenizer and tree builder (Parse/ParseString/ParseBytes/
//   ParseReader/ParseFile) with a precise, fail-fast error model (Issues)
// - Compact and indented serialization (Dump/DumpIndent) plus file helpers
// - Runtime enforcement for duplicate keys, nesting depth and input size
//   via ParseOpt
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations
//   under internal/.
// - Place alternative token drivers under source/, YAML import under
//   yamlconv/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := jsonvalue.ParseString(`{"a":1,"b":[true,null]}`)
//	n, err := v.Get("a")
//	out := jsonvalue.DumpIndent(v, "  ")
package jsonvalue

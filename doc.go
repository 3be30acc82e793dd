// Package wktcrs parses and writes coordinate reference systems in the
// bracketed Well-Known Text grammar, KEYWORD[attr, attr, NODE[...], ...].
//
// Design policy:
// - Parsing runs scan -> index -> typed factories; the flat element list
//   lives under internal/engine and is discarded after each call.
// - Every failure is an Issues error; the first one ends the parse.
// - Numbers, identifier codes and free text keep their written form, so
//   Serialize(Parse(s), "", "") == s for canonical compact input.
// - JSON/YAML rendering lives under export/, literal codecs under codec/
//   and the CLI under cmd/wktcrs.
//
// Typical usage:
//
//	crs, err := wktcrs.Parse(text)
//	if iss, ok := wktcrs.AsIssues(err); ok { ... }
//	fmt.Println(wktcrs.Pretty(crs))
//	fmt.Println(wktcrs.Serialize(crs, "\n", "\t"))
package wktcrs

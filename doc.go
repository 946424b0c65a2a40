// Package jsonflat flattens nested JSON objects into one-level objects.
//
// Every leaf of the input (string, number, boolean, null or array) becomes
// one member of the output, keyed by the "."-joined object keys on the path
// from the root:
//
//	{"a":1,"c":{"d":3,"e":"test"}}  ->  {"a":1,"c.d":3,"c.e":"test"}
//
// Arrays are opaque leaves and are never expanded. Members keep document
// order and numbers keep their literal text.
//
// Typical usage:
//
//	f := jsonflat.New(jsonflat.Options{})
//	out, err := f.FlattenToText(`{"x":{"y":{"z":"deep"}}}`)
//	if errors.Is(err, jsonflat.ErrMalformedInput) {
//		// not JSON
//	}
//
// Parsing goes through a token Source produced by a JSONDriver. The default
// driver uses encoding/json; package source/gojson provides one backed by
// goccy/go-json, and package source looks drivers up by name.
package jsonflat

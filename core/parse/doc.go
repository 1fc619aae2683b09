// Package parse normalizes raw deserialization input. An input is either a
// textual JSON encoding (string, []byte, json.RawMessage) or an
// already-parsed structural value; both are reduced to a single structural
// form (map, slice, or scalar) that the validation and instantiation layers
// operate on.
//
// Decoding is strict: malformed text fails with a [*Error] carrying the
// underlying syntax error. The separate [Repair] helper exists for the
// provider boundary, where model output frequently arrives wrapped in code
// fences or with minor syntax damage.
package parse

// Package schema provides a small declarative object schema: per field, an
// expected primitive type, an optional closed enumeration of allowed values,
// and whether the field is required.
//
// A [Schema] validates in a single pass and reports every violation it finds
// at once (see [AggregateError]), in both a raising form ([Schema.Validate])
// and a non-raising form ([Schema.Check]). Schemas can be declared directly
// with [New] or derived from struct tags with [FromStruct], and expose their
// standard JSON Schema wire form for providers via [Schema.JSONSchema].
//
// Schemas are immutable after construction and safe for concurrent reuse;
// the intended pattern is one package-level schema per target type.
package schema

// Package deserialize converts untyped JSON payloads — text or already-parsed
// values, single objects or arrays — into instances of a target type.
//
// Three strategy families are offered, each with a single-object and a slice
// form:
//
//   - [JSON] / [JSONSlice]: parse and instantiate with no checking.
//   - [JSONChecked] / [JSONCheckedSlice]: run a [validate.Validator]
//     (typically a hand-written, first-violation rule checker) before
//     instantiating.
//   - [JSONWithSchema] / [JSONWithSchemaSlice]: validate against a
//     declarative [schema.Schema], which aggregates every violation;
//     [SafeJSONWithSchema] is the non-raising variant returning an [Outcome].
//
// All slice forms require the input to be a JSON array ("Input must be an
// array") before touching any element, process elements in input order, and
// abort on the first failing element. Instantiation never happens before
// validation has succeeded, so callers never observe a partially-built value.
package deserialize

// Package validate defines the validator abstraction shared by the checked
// deserialization strategies: validate a structural input, return the mapping
// of recognized fields or an error.
//
// Two implementation families sit behind the [Validator] interface. Imperative
// validators (see providers/validator/feedback) inspect fields one by one and
// stop at the first violation; the declarative schema in core/schema runs one
// pass and aggregates everything it finds. Both are deliberate, distinct
// contracts.
package validate

// Package feedback is the repository's worked example of a deserialization
// target: a two-field record classifying customer feedback by sentiment and
// urgency, both closed enumerations.
//
// It ships both validator shapes for the type — the imperative
// first-violation [Validator] and the declarative, violation-aggregating
// [Schema] — so every deserialization strategy can be exercised against the
// same target.
package feedback

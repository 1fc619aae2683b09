package feedback

import (
	"github.com/mfalcone/typed/core/schema"
	"github.com/mfalcone/typed/core/validate"
)

// Sentiments is the closed set of allowed sentiment values.
var Sentiments = []string{"positive", "negative", "neutral"}

// Urgencies is the closed set of allowed urgency values.
var Urgencies = []string{"low", "medium", "high"}

// Feedback is a classified piece of customer feedback as returned by the
// model: an overall sentiment and how urgently it needs attention.
type Feedback struct {
	Sentiment string `json:"sentiment" jsonschema:"required,enum=positive,enum=negative,enum=neutral,description=Overall sentiment of the feedback"`
	Urgency   string `json:"urgency" jsonschema:"required,enum=low,enum=medium,enum=high,description=How urgently the feedback needs attention"`
}

// feedbackSchema is built once from the struct tags and reused for every
// call; schemas are immutable and concurrency-safe.
var feedbackSchema = schema.MustFromStruct[Feedback]()

// Schema returns the declarative schema for [Feedback]. Use it with
// deserialize.JSONWithSchema to get every violation reported at once, or
// pass its JSONSchema form to a provider to constrain model output.
func Schema() *schema.Schema {
	return feedbackSchema
}

// Validator is the hand-written rule checker for [Feedback]. It inspects
// fields in declaration order (sentiment, then urgency) and fails on the
// first violation: presence, then primitive type, then domain membership.
// Unrecognized input fields are silently dropped.
//
// For a report of all violations in one pass, use [Schema] instead; the two
// stopping behaviors are distinct contracts, both intentional.
type Validator struct{}

var _ validate.Validator = Validator{}

// Validate implements [validate.Validator].
func (Validator) Validate(input any) (map[string]any, error) {
	fields, verr := validate.AsObject(input)
	if verr != nil {
		return nil, verr
	}

	sentiment, verr := validate.EnumField(fields, "sentiment", Sentiments)
	if verr != nil {
		return nil, verr
	}
	urgency, verr := validate.EnumField(fields, "urgency", Urgencies)
	if verr != nil {
		return nil, verr
	}

	return map[string]any{
		"sentiment": sentiment,
		"urgency":   urgency,
	}, nil
}

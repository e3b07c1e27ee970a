package outcome

// Outcome is the immutable result of evaluating one condition: whether it
// matched, and a message explaining why.
type Outcome struct {
	// Matched reports whether the condition matched.
	Matched bool `json:"matched"`

	// Message explains the decision. It may be empty for purely boolean
	// sub-results.
	Message Message `json:"message"`
}

// Match returns a matching outcome with the given message.
func Match(message Message) Outcome {
	return Outcome{Matched: true, Message: message}
}

// NoMatch returns a non-matching outcome with the given message.
func NoMatch(message Message) Outcome {
	return Outcome{Matched: false, Message: message}
}

// And returns the conjunction of the receiver and other. The messages are
// joined with "; "; empty messages contribute no text.
func (o Outcome) And(other Outcome) Outcome {
	return Outcome{
		Matched: o.Matched && other.Matched,
		Message: o.Message.Join(other.Message),
	}
}

// Or returns the disjunction of the receiver and other. The messages are
// joined with "; "; empty messages contribute no text.
func (o Outcome) Or(other Outcome) Outcome {
	return Outcome{
		Matched: o.Matched || other.Matched,
		Message: o.Message.Join(other.Message),
	}
}

// String renders the outcome for logs and reports.
func (o Outcome) String() string {
	prefix := "no match"
	if o.Matched {
		prefix = "match"
	}
	if o.Message.IsEmpty() {
		return prefix
	}
	return prefix + ": " + o.Message.String()
}

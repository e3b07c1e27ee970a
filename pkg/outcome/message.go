package outcome

import "strings"

// Style controls how individual items are rendered inside a Message.
type Style int

const (
	// StylePlain renders items as-is.
	StylePlain Style = iota

	// StyleQuote wraps each item in single quotes.
	StyleQuote
)

// apply renders a single item according to the style.
func (s Style) apply(item string) string {
	if s == StyleQuote {
		return "'" + item + "'"
	}
	return item
}

// Message is an immutable human-readable explanation of a condition outcome.
// The zero value is the empty message.
type Message struct {
	text string
}

// Empty returns the empty message.
func Empty() Message {
	return Message{}
}

// Of returns a message containing the given text.
func Of(text string) Message {
	return Message{text: text}
}

// IsEmpty reports whether the message has no text.
func (m Message) IsEmpty() bool {
	return m.text == ""
}

// String returns the rendered message text.
func (m Message) String() string {
	return m.text
}

// MarshalText implements encoding.TextMarshaler.
func (m Message) MarshalText() ([]byte, error) {
	return []byte(m.text), nil
}

// Append returns a message with the given text appended after a single
// space. Appending empty text returns the receiver unchanged; appending to
// the empty message returns a message of just the given text.
func (m Message) Append(text string) Message {
	if text == "" {
		return m
	}
	if m.text == "" {
		return Message{text: text}
	}
	return Message{text: m.text + " " + text}
}

// Join returns a message combining the receiver and other with "; ".
// Empty sides contribute no text.
func (m Message) Join(other Message) Message {
	switch {
	case m.text == "":
		return other
	case other.text == "":
		return m
	default:
		return Message{text: m.text + "; " + other.text}
	}
}

// AndCondition starts a new clause for the named condition, to be appended
// to the receiver once the clause is completed.
func (m Message) AndCondition(name string) Builder {
	return Builder{base: m, condition: name}
}

// ForCondition starts a message clause attributed to the named condition.
// An empty name produces a clause with no leading condition text.
func ForCondition(name string) Builder {
	return Builder{condition: name}
}

// Builder accumulates one clause of a Message. Builders are values; each
// call derives the final Message without mutating shared state.
type Builder struct {
	base      Message
	condition string
}

// Because completes the clause with a free-form reason.
func (b Builder) Because(reason string) Message {
	return b.finish(reason)
}

// Found starts a "found <noun> <items>" phrase. The plural form is derived
// by appending "s"; use FoundExactly when that is not the correct plural.
func (b Builder) Found(noun string) ItemsReporter {
	return b.FoundExactly(noun, noun+"s")
}

// FoundExactly starts a "found" phrase with explicit singular and plural
// noun forms.
func (b Builder) FoundExactly(singular, plural string) ItemsReporter {
	return ItemsReporter{builder: b, verb: "found", singular: singular, plural: plural}
}

// DidNotFind starts a "did not find <noun> <items>" phrase. The plural form
// is derived by appending "s"; use DidNotFindExactly otherwise.
func (b Builder) DidNotFind(noun string) ItemsReporter {
	return b.DidNotFindExactly(noun, noun+"s")
}

// DidNotFindExactly starts a "did not find" phrase with explicit singular
// and plural noun forms.
func (b Builder) DidNotFindExactly(singular, plural string) ItemsReporter {
	return ItemsReporter{builder: b, verb: "did not find", singular: singular, plural: plural}
}

// Available completes the clause noting that the named capability or item
// was available.
func (b Builder) Available(item string) Message {
	return b.finish(item + " is available")
}

// NotAvailable completes the clause noting that the named capability or
// item was not available.
func (b Builder) NotAvailable(item string) Message {
	return b.finish(item + " is not available")
}

// ResultedIn completes the clause with "resulted in <result>".
func (b Builder) ResultedIn(result string) Message {
	return b.finish("resulted in " + result)
}

// finish renders the clause and appends it to the base message.
func (b Builder) finish(phrase string) Message {
	clause := b.condition
	if phrase != "" {
		if clause != "" {
			clause += " "
		}
		clause += phrase
	}
	return b.base.Join(Message{text: clause})
}

// ItemsReporter completes a found / did-not-find phrase with the items that
// were (or were not) discovered.
type ItemsReporter struct {
	builder  Builder
	verb     string
	singular string
	plural   string
}

// Items completes the phrase with plainly rendered items.
func (r ItemsReporter) Items(items ...string) Message {
	return r.StyledItems(StylePlain, items...)
}

// Quoted completes the phrase with each item wrapped in single quotes.
func (r ItemsReporter) Quoted(items ...string) Message {
	return r.StyledItems(StyleQuote, items...)
}

// StyledItems completes the phrase rendering each item with the given
// style. The singular noun form is used for exactly one item, the plural
// form otherwise; items are joined with ", ".
func (r ItemsReporter) StyledItems(style Style, items ...string) Message {
	noun := r.plural
	if len(items) == 1 {
		noun = r.singular
	}
	phrase := r.verb + " " + noun
	if len(items) > 0 {
		styled := make([]string, len(items))
		for i, item := range items {
			styled[i] = style.apply(item)
		}
		phrase += " " + strings.Join(styled, ", ")
	}
	return r.builder.finish(phrase)
}
